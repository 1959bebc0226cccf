package service

import (
	"errors"
	"strings"
	"testing"

	"github.com/shopspring/decimal"

	"github.com/shihankaari/coffee-ordering/internal/model"
)

type fixedIDs struct {
	id string
}

func (g fixedIDs) NextID() string {
	return g.id
}

func newTestOrder() (*OrderService, *CatalogService) {
	catalog := NewCatalogService()
	orders := NewOrderService(fixedIDs{id: "CUST-TEST0001"}, "Ada", "Lovelace", "ada@example.com")
	return orders, catalog
}

func TestOrderService_AddItem(t *testing.T) {
	orders, catalog := newTestOrder()
	latte, _ := catalog.Get("Latte")

	item, err := orders.AddItem(catalog, latte, model.SizeMedium, 2)
	if err != nil {
		t.Fatalf("Expected no error, got: %v", err)
	}

	if item.Name != "Latte" {
		t.Errorf("Expected item name Latte, got %s", item.Name)
	}

	if !item.UnitPrice.Equal(decimal.NewFromFloat(4.0)) {
		t.Errorf("Expected unit price 4.00, got %s", item.UnitPrice)
	}

	if len(orders.Items()) != 1 {
		t.Errorf("Expected 1 item in cart, got %d", len(orders.Items()))
	}
}

func TestOrderService_AddItem_PreservesInsertionOrder(t *testing.T) {
	orders, catalog := newTestOrder()
	latte, _ := catalog.Get("Latte")
	espresso, _ := catalog.Get("Espresso")

	orders.AddItem(catalog, latte, model.SizeMedium, 2)
	orders.AddItem(catalog, espresso, model.SizeSmall, 1)

	items := orders.Items()
	if items[0].Name != "Latte" || items[1].Name != "Espresso" {
		t.Errorf("Expected [Latte Espresso], got [%s %s]", items[0].Name, items[1].Name)
	}
}

func TestOrderService_AddItem_RejectsBadQuantity(t *testing.T) {
	orders, catalog := newTestOrder()
	latte, _ := catalog.Get("Latte")

	for _, quantity := range []int{0, -3} {
		_, err := orders.AddItem(catalog, latte, model.SizeSmall, quantity)

		var verr *model.ValidationError
		if !errors.As(err, &verr) {
			t.Fatalf("Expected ValidationError for quantity %d, got: %v", quantity, err)
		}

		if verr.Field != "quantity" {
			t.Errorf("Expected quantity validation, got %s", verr.Field)
		}
	}

	if !orders.IsEmpty() {
		t.Error("Expected cart to be unchanged after rejections")
	}
}

func TestOrderService_AddItem_RejectsUnknownSize(t *testing.T) {
	orders, catalog := newTestOrder()
	latte, _ := catalog.Get("Latte")

	_, err := orders.AddItem(catalog, latte, model.Size("venti"), 1)

	var verr *model.ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("Expected ValidationError, got: %v", err)
	}

	if verr.Field != "size" {
		t.Errorf("Expected size validation, got %s", verr.Field)
	}

	if !orders.IsEmpty() {
		t.Error("Expected cart to be unchanged after rejection")
	}
}

func TestOrderService_Subtotal_EmptyCart(t *testing.T) {
	orders, _ := newTestOrder()

	if !orders.Subtotal().IsZero() {
		t.Errorf("Expected zero subtotal for empty cart, got %s", orders.Subtotal())
	}

	if !orders.FinalTotal().IsZero() {
		t.Errorf("Expected zero total for empty cart, got %s", orders.FinalTotal())
	}
}

func TestOrderService_Totals_BelowDiscountThreshold(t *testing.T) {
	orders, catalog := newTestOrder()
	latte, _ := catalog.Get("Latte")
	espresso, _ := catalog.Get("Espresso")

	// 2x Medium Latte @ 4.00 + 1x Small Espresso @ 2.50
	orders.AddItem(catalog, latte, model.SizeMedium, 2)
	orders.AddItem(catalog, espresso, model.SizeSmall, 1)

	if got := orders.Subtotal().StringFixed(2); got != "10.50" {
		t.Errorf("Expected subtotal 10.50, got %s", got)
	}

	if !orders.Discount().IsZero() {
		t.Errorf("Expected no discount below threshold, got %s", orders.Discount())
	}

	if got := orders.FinalTotal().StringFixed(2); got != "10.50" {
		t.Errorf("Expected total 10.50, got %s", got)
	}
}

func TestOrderService_Discount_ExactlyAtThreshold(t *testing.T) {
	orders, catalog := newTestOrder()
	espresso, _ := catalog.Get("Espresso")

	// 20x Small Espresso @ 2.50 = exactly 50.00
	orders.AddItem(catalog, espresso, model.SizeSmall, 20)

	if got := orders.Subtotal().StringFixed(2); got != "50.00" {
		t.Fatalf("Expected subtotal 50.00, got %s", got)
	}

	if got := orders.Discount().StringFixed(2); got != "5.00" {
		t.Errorf("Expected discount 5.00 at threshold, got %s", got)
	}

	if got := orders.FinalTotal().StringFixed(2); got != "45.00" {
		t.Errorf("Expected total 45.00, got %s", got)
	}
}

func TestOrderService_Discount_JustBelowThreshold(t *testing.T) {
	orders, catalog := newTestOrder()
	espresso, _ := catalog.Get("Espresso")

	// 19x Small Espresso = 47.50
	orders.AddItem(catalog, espresso, model.SizeSmall, 19)

	if !orders.Discount().IsZero() {
		t.Errorf("Expected no discount below 50.00, got %s", orders.Discount())
	}
}

func TestOrderService_Clear_KeepsIdentity(t *testing.T) {
	orders, catalog := newTestOrder()
	latte, _ := catalog.Get("Latte")
	orders.AddItem(catalog, latte, model.SizeLarge, 1)

	orders.Clear()

	if !orders.IsEmpty() {
		t.Error("Expected cart to be empty after Clear")
	}

	order := orders.Order()
	if order.CustomerID != "CUST-TEST0001" {
		t.Errorf("Expected customer ID to survive Clear, got %s", order.CustomerID)
	}

	if order.FullName() != "Ada Lovelace" {
		t.Errorf("Expected name to survive Clear, got %s", order.FullName())
	}
}

func TestCustomerIDs_Format(t *testing.T) {
	id := CustomerIDs{}.NextID()

	if !strings.HasPrefix(id, "CUST-") {
		t.Errorf("Expected CUST- prefix, got %s", id)
	}

	if len(id) != len("CUST-")+8 {
		t.Errorf("Expected 8-character suffix, got %s", id)
	}
}
