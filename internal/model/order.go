package model

import "github.com/shopspring/decimal"

type Order struct {
	CustomerID string
	FirstName  string
	LastName   string
	Email      string
	Items      []LineItem
}

type LineItem struct {
	Name      string
	Size      Size
	UnitPrice decimal.Decimal
	Quantity  int
}

func (i LineItem) LineTotal() decimal.Decimal {
	return i.UnitPrice.Mul(decimal.NewFromInt(int64(i.Quantity)))
}

func (o *Order) FullName() string {
	return o.FirstName + " " + o.LastName
}
