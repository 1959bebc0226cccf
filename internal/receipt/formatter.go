// Package receipt renders orders and receipts as text. All functions are
// pure: they read their inputs and never touch order state.
package receipt

import (
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/shihankaari/coffee-ordering/internal/model"
)

// Format renders the per-order receipt written after a completed checkout.
func Format(r *model.Receipt) string {
	var b strings.Builder

	b.WriteString("🧾 Coffee Order Receipt\n")
	b.WriteString(strings.Repeat("=", 40) + "\n")
	fmt.Fprintf(&b, "Order ID: %s\n", r.OrderID)
	fmt.Fprintf(&b, "Customer ID: %s\n", r.CustomerID)
	fmt.Fprintf(&b, "Name: %s\n", r.FullName())
	if r.Email != "" {
		fmt.Fprintf(&b, "Email: %s\n", r.Email)
	}
	fmt.Fprintf(&b, "Time: %s\n", r.IssuedAt.Format("2006-01-02 15:04:05"))
	b.WriteString(strings.Repeat("=", 40) + "\n")

	fmt.Fprintf(&b, "%-5s %-12s %-8s %-7s %-7s\n", "Qty", "Item", "Size", "Price", "Total")
	b.WriteString(strings.Repeat("-", 40) + "\n")
	for _, item := range r.Items {
		fmt.Fprintf(&b, "%-5d %-12s %-8s $%-6s $%s\n",
			item.Quantity, item.Name, item.Size.Title(),
			item.UnitPrice.StringFixed(2), item.LineTotal().StringFixed(2))
	}
	b.WriteString(strings.Repeat("-", 40) + "\n")

	fmt.Fprintf(&b, "%-30s $%s\n", "Subtotal:", r.Subtotal.StringFixed(2))
	if r.Discount.IsPositive() {
		fmt.Fprintf(&b, "%-30s -$%s\n", "Discount (10%):", r.Discount.StringFixed(2))
	}
	fmt.Fprintf(&b, "%-30s $%s\n", "Total:", r.Total.StringFixed(2))
	fmt.Fprintf(&b, "%-30s $%s\n", "Paid:", r.Paid.StringFixed(2))
	fmt.Fprintf(&b, "%-30s $%s\n", "Change:", r.Change.StringFixed(2))
	b.WriteString(strings.Repeat("=", 40) + "\n")
	b.WriteString("Thank you for your order!\n")

	return b.String()
}

// FormatSummary renders the cart review shown before payment.
func FormatSummary(items []model.LineItem, subtotal, discount, total decimal.Decimal) string {
	if len(items) == 0 {
		return "No items in order.\n"
	}

	var b strings.Builder

	b.WriteString("\n🧾 Your Order:\n")
	b.WriteString(strings.Repeat("=", 60) + "\n")
	fmt.Fprintf(&b, "%-5s %-15s %-10s %-10s %-10s\n", "Qty", "Item", "Size", "Price", "Total")
	b.WriteString(strings.Repeat("-", 60) + "\n")
	for _, item := range items {
		fmt.Fprintf(&b, "%-5d %-15s %-10s $%-9s $%s\n",
			item.Quantity, item.Name, item.Size.Title(),
			item.UnitPrice.StringFixed(2), item.LineTotal().StringFixed(2))
	}
	b.WriteString(strings.Repeat("-", 60) + "\n")

	fmt.Fprintf(&b, "%-45s $%s\n", "Subtotal:", subtotal.StringFixed(2))
	if discount.IsPositive() {
		fmt.Fprintf(&b, "%-45s -$%s\n", "Discount (10%):", discount.StringFixed(2))
	}
	fmt.Fprintf(&b, "%-45s $%s\n", "Total to pay:", total.StringFixed(2))
	b.WriteString(strings.Repeat("=", 60) + "\n")

	return b.String()
}

// FormatLogEntry renders one order for the cumulative log. The trailing
// total is the pre-discount subtotal.
func FormatLogEntry(o *model.Order, subtotal decimal.Decimal) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Customer: %s\n", o.FullName())
	for _, item := range o.Items {
		fmt.Fprintf(&b, "%d x %s %s @ $%s each\n",
			item.Quantity, item.Size.Title(), item.Name, item.UnitPrice.StringFixed(2))
	}
	fmt.Fprintf(&b, "Total: $%s\n", subtotal.StringFixed(2))
	b.WriteString(strings.Repeat("-", 30) + "\n")

	return b.String()
}

// Filename derives the receipt file name from the customer name and the
// checkout time.
func Filename(firstName, lastName string, t time.Time) string {
	name := fmt.Sprintf("receipt_%s_%s_%s.txt", firstName, lastName, t.Format("06-01-02_15-04-05"))
	return strings.ReplaceAll(name, " ", "_")
}
