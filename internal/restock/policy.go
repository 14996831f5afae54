// backend-go/internal/restock/policy.go
package restock

import (
	"sort"

	"github.com/tokostock/backend-go/internal/domain"
)

// Rule is one row of the restock policy: products carrying Label (or any
// label, when MatchAny is set) with stock strictly below Threshold get an
// alert with the given priority and message.
type Rule struct {
	Label     domain.SegmentLabel
	MatchAny  bool
	Threshold int
	Priority  domain.AlertPriority
	Message   string
}

// rules is the ordered policy table. A product matches at most one rule: the
// first whose label and threshold both apply. The final row is the shared
// fallback for Low-labeled and never-clustered products.
var rules = []Rule{
	{
		Label:     domain.LabelHigh,
		Threshold: 15,
		Priority:  domain.PriorityUrgent,
		Message:   "Best-selling product, stock critical - restock immediately",
	},
	{
		Label:     domain.LabelMedium,
		Threshold: 10,
		Priority:  domain.PriorityMedium,
		Message:   "Popular product, stock running low",
	},
	{
		MatchAny:  true,
		Threshold: 5,
		Priority:  domain.PriorityLow,
		Message:   "Stock nearly depleted",
	},
}

// Rules returns a copy of the policy table, mainly for auditing and tests.
func Rules() []Rule {
	out := make([]Rule, len(rules))
	copy(out, rules)
	return out
}

// Evaluate derives restock alerts from current stock levels and the latest
// segment labels. It is a pure function: no state, no I/O. Alerts come back
// ordered by current stock ascending, stable for ties.
func Evaluate(products []domain.ProductStock) []domain.RestockAlert {
	alerts := make([]domain.RestockAlert, 0)
	for _, p := range products {
		rule, ok := match(p)
		if !ok {
			continue
		}
		alerts = append(alerts, domain.RestockAlert{
			ProductID:    p.ProductID,
			Name:         p.Name,
			CurrentStock: p.Stock,
			Label:        p.Label,
			Priority:     rule.Priority,
			Message:      rule.Message,
		})
	}

	sort.SliceStable(alerts, func(i, j int) bool {
		return alerts[i].CurrentStock < alerts[j].CurrentStock
	})
	return alerts
}

func match(p domain.ProductStock) (Rule, bool) {
	for _, r := range rules {
		if !r.MatchAny && r.Label != p.Label {
			continue
		}
		if p.Stock < r.Threshold {
			return r, true
		}
	}
	return Rule{}, false
}
