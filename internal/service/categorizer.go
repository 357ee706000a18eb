package service

import (
	"strings"

	"cardsight/internal/models"
)

// categoryRules are checked in priority order; the first keyword hit wins.
var categoryRules = []struct {
	category models.Category
	keywords []string
}{
	{models.CategoryShopping, []string{"amazon", "flipkart", "myntra"}},
	{models.CategoryFood, []string{"zomato", "swiggy", "restaurant", "food"}},
	{models.CategoryTravel, []string{"train", "flight", "airlines", "air", "hotel", "trip", "travel"}},
	{models.CategoryBills, []string{"recharge", "electricity", "bill", "mobile", "upi"}},
	{models.CategoryRewards, []string{"reward", "cashback"}},
}

// Categorize maps a transaction description to one of the six fixed
// categories by case-insensitive keyword containment.
func Categorize(description string) models.Category {
	d := strings.ToLower(description)
	for _, rule := range categoryRules {
		for _, keyword := range rule.keywords {
			if strings.Contains(d, keyword) {
				return rule.category
			}
		}
	}
	return models.CategoryOther
}
