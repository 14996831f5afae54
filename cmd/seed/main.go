package main

import (
	"context"
	"database/sql"
	"fmt"
	"log"
	"math/rand"
	"os"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/joho/godotenv"
	"github.com/urfave/cli/v2"
)

func newDBURLFlag() *cli.StringFlag {
	return &cli.StringFlag{
		Name:     "db-url",
		Usage:    "Database connection string",
		Required: true,
		EnvVars:  []string{"DATABASE_URL"},
	}
}

type dbKeyType struct{}

var dbKey dbKeyType

func initDB(c *cli.Context) error {
	db, err := sql.Open("pgx", c.String("db-url"))
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}

	if err := db.Ping(); err != nil {
		return fmt.Errorf("failed to ping database: %w", err)
	}

	c.Context = context.WithValue(c.Context, dbKey, db)
	return nil
}

func closeDB(c *cli.Context) error {
	if db, ok := c.Context.Value(dbKey).(*sql.DB); ok && db != nil {
		return db.Close()
	}
	return nil
}

func contextDB(c *cli.Context) *sql.DB {
	db, _ := c.Context.Value(dbKey).(*sql.DB)
	return db
}

func main() {
	if err := godotenv.Load(".env"); err != nil {
		log.Printf("warning: could not load .env file: %v", err)
	}

	app := &cli.App{
		Name:  "seed",
		Usage: "Seed the database with demo data",
		Commands: []*cli.Command{
			{
				Name:  "demo",
				Usage: "Seed a demo tenant with its product catalog",
				Flags: []cli.Flag{
					newDBURLFlag(),
				},
				Before: initDB,
				After:  closeDB,
				Action: seedDemo,
			},
			{
				Name:  "sales",
				Usage: "Generate randomized sales transactions for a tenant",
				Flags: []cli.Flag{
					newDBURLFlag(),
					&cli.Int64Flag{
						Name:  "tenant",
						Usage: "Tenant (owner) id to generate sales for",
						Value: 1,
					},
					&cli.IntFlag{
						Name:  "transactions",
						Usage: "Number of transactions to generate",
						Value: 200,
					},
					&cli.Int64Flag{
						Name:  "rand-seed",
						Usage: "Seed for the transaction generator",
						Value: 42,
					},
				},
				Before: initDB,
				After:  closeDB,
				Action: seedSales,
			},
		},
	}

	if err := app.Run(os.Args); err != nil {
		log.Fatal(err)
	}
}

var demoProducts = []struct {
	name  string
	price float64
	stock int
}{
	{"Burger Original", 15000, 50},
	{"Burger Keju", 18000, 45},
	{"Burger Special", 25000, 30},
	{"French Fries", 12000, 60},
	{"Iced Tea", 5000, 100},
	{"Chicken Wings", 20000, 25},
	{"Milkshake", 14000, 40},
	{"Onion Rings", 10000, 35},
}

func seedDemo(c *cli.Context) error {
	db := contextDB(c)
	ctx := c.Context

	var ownerID int64
	err := db.QueryRowContext(ctx, `
		INSERT INTO users (name, email, role)
		VALUES ($1, $2, $3)
		ON CONFLICT (email) DO UPDATE SET name = EXCLUDED.name
		RETURNING id
	`, "Demo Owner", "demo@owner.com", "owner").Scan(&ownerID)
	if err != nil {
		return fmt.Errorf("failed to create demo owner: %w", err)
	}

	for _, p := range demoProducts {
		if _, err := db.ExecContext(ctx, `
			INSERT INTO products (owner_id, name, price, stock)
			VALUES ($1, $2, $3, $4)
			ON CONFLICT (owner_id, name) DO UPDATE SET price = EXCLUDED.price
		`, ownerID, p.name, p.price, p.stock); err != nil {
			return fmt.Errorf("failed to seed product %q: %w", p.name, err)
		}
	}

	log.Printf("Seeded tenant %d with %d products", ownerID, len(demoProducts))
	return nil
}

func seedSales(c *cli.Context) error {
	db := contextDB(c)
	ctx := c.Context
	tenantID := c.Int64("tenant")
	count := c.Int("transactions")
	rng := rand.New(rand.NewSource(c.Int64("rand-seed")))

	type product struct {
		id    int64
		price float64
	}

	rows, err := db.QueryContext(ctx, `SELECT id, price FROM products WHERE owner_id = $1 ORDER BY id`, tenantID)
	if err != nil {
		return fmt.Errorf("failed to list products: %w", err)
	}
	defer rows.Close()

	var products []product
	for rows.Next() {
		var p product
		if err := rows.Scan(&p.id, &p.price); err != nil {
			return fmt.Errorf("failed to scan product: %w", err)
		}
		products = append(products, p)
	}
	if err := rows.Err(); err != nil {
		return err
	}
	if len(products) == 0 {
		return fmt.Errorf("tenant %d has no products, run `seed demo` first", tenantID)
	}

	for i := 0; i < count; i++ {
		// Skew toward the first products so segmentation has a clear
		// High/Medium/Low structure to find.
		itemCount := 1 + rng.Intn(3)
		var total float64

		tx, err := db.BeginTx(ctx, nil)
		if err != nil {
			return fmt.Errorf("failed to begin transaction: %w", err)
		}

		var txID int64
		if err := tx.QueryRowContext(ctx, `
			INSERT INTO transactions (owner_id, total_price)
			VALUES ($1, 0)
			RETURNING id
		`, tenantID).Scan(&txID); err != nil {
			tx.Rollback()
			return fmt.Errorf("failed to create transaction: %w", err)
		}

		for j := 0; j < itemCount; j++ {
			idx := rng.Intn(len(products))
			if skewed := rng.Intn(len(products) * 2); skewed < len(products) {
				idx = skewed / 2
			}
			p := products[idx]
			qty := 1 + rng.Intn(5)
			subtotal := float64(qty) * p.price
			total += subtotal

			if _, err := tx.ExecContext(ctx, `
				INSERT INTO transaction_items (transaction_id, product_id, quantity, subtotal)
				VALUES ($1, $2, $3, $4)
			`, txID, p.id, qty, subtotal); err != nil {
				tx.Rollback()
				return fmt.Errorf("failed to create transaction item: %w", err)
			}
		}

		if _, err := tx.ExecContext(ctx, `UPDATE transactions SET total_price = $1 WHERE id = $2`, total, txID); err != nil {
			tx.Rollback()
			return fmt.Errorf("failed to update transaction total: %w", err)
		}

		if err := tx.Commit(); err != nil {
			return fmt.Errorf("failed to commit transaction: %w", err)
		}
	}

	log.Printf("Generated %d transactions for tenant %d", count, tenantID)
	return nil
}
