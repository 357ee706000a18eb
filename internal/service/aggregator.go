package service

import (
	"sort"

	"github.com/shopspring/decimal"

	"cardsight/internal/models"
)

// Aggregate computes per-category and per-merchant debit totals and ranks
// the top three merchants by spend. Credit transactions never contribute.
// Both summaries preserve first-seen ordering; the merchant ranking is a
// stable descending sort on spend, so ties keep accumulation order.
func Aggregate(txns []models.Transaction) ([]models.CategoryTotal, []models.MerchantSpend) {
	catSums := map[models.Category]decimal.Decimal{}
	merchSums := map[string]decimal.Decimal{}
	var catOrder []models.Category
	var merchOrder []string

	for _, tx := range txns {
		if tx.Type != models.TypeDebit {
			continue
		}
		amount, err := parseAmount(tx.Amount)
		if err != nil {
			continue
		}
		if _, ok := catSums[tx.Category]; !ok {
			catOrder = append(catOrder, tx.Category)
		}
		catSums[tx.Category] = catSums[tx.Category].Add(amount)
		if _, ok := merchSums[tx.Merchant]; !ok {
			merchOrder = append(merchOrder, tx.Merchant)
		}
		merchSums[tx.Merchant] = merchSums[tx.Merchant].Add(amount)
	}

	summary := make([]models.CategoryTotal, 0, len(catOrder))
	for _, c := range catOrder {
		total, _ := catSums[c].Round(2).Float64()
		summary = append(summary, models.CategoryTotal{Category: c, Total: total})
	}

	merchants := make([]models.MerchantSpend, 0, len(merchOrder))
	for _, m := range merchOrder {
		if merchSums[m].IsZero() {
			continue
		}
		spent, _ := merchSums[m].Round(2).Float64()
		merchants = append(merchants, models.MerchantSpend{Merchant: m, Spent: spent})
	}
	sort.SliceStable(merchants, func(i, j int) bool {
		return merchants[i].Spent > merchants[j].Spent
	})
	if len(merchants) > 3 {
		merchants = merchants[:3]
	}

	return summary, merchants
}
