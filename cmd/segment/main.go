// cmd/segment/main.go
//
// Batch runner: executes a segmentation run for one tenant (or every tenant)
// outside the HTTP server, for cron-style scheduling.
package main

import (
	"context"
	"flag"
	"log"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/jmoiron/sqlx"
	"github.com/tokostock/backend-go/internal/cache"
	"github.com/tokostock/backend-go/internal/repository/postgres"
	"github.com/tokostock/backend-go/internal/service"
)

func main() {
	dbURL := flag.String("db-url", "", "Database connection string")
	tenantID := flag.Int64("tenant", 0, "Tenant (owner) id to segment; 0 segments all tenants")
	flag.Parse()

	if *dbURL == "" {
		log.Fatal("Database URL is required (use -db-url flag)")
	}

	db, err := sqlx.Connect("pgx", *dbURL)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer db.Close()

	salesRepo := postgres.NewSalesRepository(db)
	productRepo := postgres.NewProductRepositoryFromSqlx(db)
	runRepo := postgres.NewRunRepository(db)
	svc := service.NewSegmentationService(salesRepo, productRepo, runRepo, cache.NewNoopRestockCache())

	ctx := context.Background()

	var tenants []int64
	if *tenantID > 0 {
		tenants = []int64{*tenantID}
	} else {
		if err := db.SelectContext(ctx, &tenants, `SELECT id FROM users ORDER BY id`); err != nil {
			log.Fatalf("Failed to list tenants: %v", err)
		}
	}

	for _, tenant := range tenants {
		start := time.Now()
		summary, err := svc.Run(ctx, tenant)
		if err != nil {
			log.Printf("Tenant %d: segmentation skipped: %v", tenant, err)
			continue
		}
		log.Printf("Tenant %d: %d products labeled (high=%d medium=%d low=%d) in %v",
			tenant, summary.ProductCount, summary.HighCount, summary.MediumCount,
			summary.LowCount, time.Since(start))
	}
}
