package ledger

import (
	"fmt"
	"strings"
)

type Category string

const (
	CategoryDaily   Category = "daily"
	CategoryWeekly  Category = "weekly"
	CategoryMonthly Category = "monthly"
)

// Categories lists all habit categories in display order.
var Categories = []Category{CategoryDaily, CategoryWeekly, CategoryMonthly}

func (c Category) IsValid() bool {
	switch c {
	case CategoryDaily, CategoryWeekly, CategoryMonthly:
		return true
	default:
		return false
	}
}

// ParseCategory normalizes untrusted input (e.g. a URL segment) into a Category.
func ParseCategory(input string) (Category, error) {
	c := Category(strings.TrimSpace(strings.ToLower(input)))
	if !c.IsValid() {
		return "", fmt.Errorf("invalid habit category: %q", input)
	}
	return c, nil
}
