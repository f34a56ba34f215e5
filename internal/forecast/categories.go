package forecast

import (
	"sort"

	"github.com/shopspring/decimal"

	"github.com/Dan9191/finance-service/internal/models"
)

var hundred = decimal.NewFromInt(100)

// TopCategories ranks a breakdown by amount and expresses each entry as a
// percentage of total. Percentages need not add up to 100. n <= 0 keeps all.
func TopCategories(breakdown map[string]decimal.Decimal, total decimal.Decimal, n int) []models.CategoryShare {
	shares := make([]models.CategoryShare, 0, len(breakdown))
	for cat, amount := range breakdown {
		pct := decimal.Zero
		if !total.IsZero() {
			pct = amount.Div(total).Mul(hundred).Round(2)
		}
		shares = append(shares, models.CategoryShare{Category: cat, Amount: amount, Percent: pct})
	}
	sort.Slice(shares, func(i, j int) bool {
		if c := shares[i].Amount.Cmp(shares[j].Amount); c != 0 {
			return c > 0
		}
		return shares[i].Category < shares[j].Category
	})
	if n > 0 && len(shares) > n {
		shares = shares[:n]
	}
	return shares
}
