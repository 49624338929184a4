package domain

import (
	"errors"
	"fmt"

	"github.com/shopspring/decimal"
)

// MaxDescriptionLen is the longest description the console editor keeps
const MaxDescriptionLen = 50

var ErrNegativePrice = errors.New("price must be >= 0")

// MenuItem represents one orderable dish on the menu
type MenuItem struct {
	ID          int64           `json:"id"`
	Name        string          `json:"name"`
	Category    string          `json:"category"`
	Price       decimal.Decimal `json:"price"`
	Description string          `json:"description"`
}

// Validate checks the field constraints shared by every variant
func (m MenuItem) Validate() error {
	if m.Price.IsNegative() {
		return fmt.Errorf("item %d (%s): %w", m.ID, m.Name, ErrNegativePrice)
	}
	return nil
}

// PriceLabel formats the price with two decimals and a dollar sign, e.g. "$4.50"
func (m MenuItem) PriceLabel() string {
	return "$" + m.Price.StringFixed(2)
}

// ListLabel is the "name | $price" entry shown in the orderer's item list
func (m MenuItem) ListLabel() string {
	return m.Name + " | " + m.PriceLabel()
}

func (m MenuItem) String() string {
	return m.Name + " - " + m.PriceLabel()
}

// TruncateDescription cuts s to at most MaxDescriptionLen characters
func TruncateDescription(s string) string {
	r := []rune(s)
	if len(r) <= MaxDescriptionLen {
		return s
	}
	return string(r[:MaxDescriptionLen])
}
