package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// Receipt is the immutable snapshot of a completed checkout, built once at
// payment acceptance and handed to the formatter and the persistence sink.
type Receipt struct {
	OrderID    string
	CustomerID string
	FirstName  string
	LastName   string
	Email      string
	IssuedAt   time.Time
	Items      []LineItem
	Subtotal   decimal.Decimal
	Discount   decimal.Decimal
	Total      decimal.Decimal
	Paid       decimal.Decimal
	Change     decimal.Decimal
}

func (r *Receipt) FullName() string {
	return r.FirstName + " " + r.LastName
}
