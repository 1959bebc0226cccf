package model

import (
	"strings"

	"github.com/shopspring/decimal"
)

type Product struct {
	Name      string
	BasePrice decimal.Decimal
}

type Size string

const (
	SizeSmall  Size = "small"
	SizeMedium Size = "medium"
	SizeLarge  Size = "large"
)

// ParseSize accepts full size names and the s/m/l shorthands,
// case-insensitively.
func ParseSize(raw string) (Size, bool) {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "small", "s":
		return SizeSmall, true
	case "medium", "m":
		return SizeMedium, true
	case "large", "l":
		return SizeLarge, true
	default:
		return "", false
	}
}

// Delta returns the surcharge added to a product's base price for this size.
// Unknown sizes carry no surcharge.
func (s Size) Delta() decimal.Decimal {
	switch s {
	case SizeMedium:
		return decimal.NewFromFloat(0.5)
	case SizeLarge:
		return decimal.NewFromInt(1)
	default:
		return decimal.Zero
	}
}

// Title renders the size for display ("Small", "Medium", "Large").
func (s Size) Title() string {
	if s == "" {
		return ""
	}
	return strings.ToUpper(string(s[:1])) + string(s[1:])
}
