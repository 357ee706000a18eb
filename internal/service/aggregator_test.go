package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cardsight/internal/models"
)

func debit(merchant string, amount string, category models.Category) models.Transaction {
	return models.Transaction{
		Date:     "01-05-2025",
		Merchant: merchant,
		Amount:   amount,
		Type:     models.TypeDebit,
		Category: category,
	}
}

func TestAggregateExcludesCredits(t *testing.T) {
	txns := []models.Transaction{
		debit("Zomato", "₹100.00", models.CategoryFood),
		{Merchant: "Zomato", Amount: "₹50.00", Type: models.TypeCredit, Category: models.CategoryFood},
	}

	summary, merchants := Aggregate(txns)
	require.Len(t, summary, 1)
	assert.Equal(t, models.CategoryTotal{Category: models.CategoryFood, Total: 100.00}, summary[0])
	require.Len(t, merchants, 1)
	assert.Equal(t, 100.00, merchants[0].Spent)
}

func TestAggregateCategoryFirstSeenOrder(t *testing.T) {
	txns := []models.Transaction{
		debit("Uber", "₹300.00", models.CategoryTravel),
		debit("Amazon", "₹1,500.00", models.CategoryShopping),
		debit("Ola", "₹200.00", models.CategoryTravel),
	}

	summary, _ := Aggregate(txns)
	require.Len(t, summary, 2)
	assert.Equal(t, models.CategoryTravel, summary[0].Category)
	assert.Equal(t, 500.00, summary[0].Total)
	assert.Equal(t, models.CategoryShopping, summary[1].Category)
}

func TestAggregateTopMerchants(t *testing.T) {
	txns := []models.Transaction{
		debit("A", "₹10.00", models.CategoryOther),
		debit("B", "₹40.00", models.CategoryOther),
		debit("C", "₹20.00", models.CategoryOther),
		debit("D", "₹30.00", models.CategoryOther),
	}

	_, merchants := Aggregate(txns)
	require.Len(t, merchants, 3)
	assert.Equal(t, "B", merchants[0].Merchant)
	assert.Equal(t, "D", merchants[1].Merchant)
	assert.Equal(t, "C", merchants[2].Merchant)
}

func TestAggregateTiesKeepAccumulationOrder(t *testing.T) {
	txns := []models.Transaction{
		debit("First", "₹50.00", models.CategoryOther),
		debit("Second", "₹50.00", models.CategoryOther),
	}

	_, merchants := Aggregate(txns)
	require.Len(t, merchants, 2)
	assert.Equal(t, "First", merchants[0].Merchant)
	assert.Equal(t, "Second", merchants[1].Merchant)
}

func TestAggregateZeroSpendMerchantExcluded(t *testing.T) {
	txns := []models.Transaction{
		debit("Waived Fee", "₹0.00", models.CategoryOther),
		debit("Amazon", "₹100.00", models.CategoryShopping),
	}

	summary, merchants := Aggregate(txns)
	require.Len(t, merchants, 1)
	assert.Equal(t, "Amazon", merchants[0].Merchant)
	// The zero-amount debit still contributes a category entry.
	require.Len(t, summary, 2)
	assert.Equal(t, 0.00, summary[0].Total)
}

func TestAggregateEmpty(t *testing.T) {
	summary, merchants := Aggregate(nil)
	assert.Empty(t, summary)
	assert.Empty(t, merchants)
}
