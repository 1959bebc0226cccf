package main

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/shihankaari/coffee-ordering/internal/checkout"
	"github.com/shihankaari/coffee-ordering/internal/model"
	"github.com/shihankaari/coffee-ordering/internal/receipt"
	"github.com/shihankaari/coffee-ordering/internal/service"
	"github.com/shihankaari/coffee-ordering/internal/storage"
)

func main() {
	in := bufio.NewReader(os.Stdin)

	first := prompt(in, "Enter your first name: ")
	last := prompt(in, "Enter your last name: ")
	email := prompt(in, "Enter your email (optional): ")

	fmt.Printf("\nWelcome, %s!\n", first)

	catalog := service.NewCatalogService()
	orders := service.NewOrderService(service.CustomerIDs{}, first, last, email)
	store := storage.NewFileStore(".")

	menu := catalog.Products()

	for {
		fmt.Println("\n--- Coffee Menu ---")
		for i, product := range menu {
			fmt.Printf("%d. %s - Base price: $%s\n", i+1, product.Name, product.BasePrice.StringFixed(2))
		}
		fmt.Printf("%d. View Order\n", len(menu)+1)
		fmt.Printf("%d. Checkout\n", len(menu)+2)
		fmt.Printf("%d. Exit\n", len(menu)+3)

		choice, err := strconv.Atoi(prompt(in, "Choose an option: "))
		switch {
		case err == nil && choice >= 1 && choice <= len(menu):
			addItem(in, catalog, orders, menu[choice-1])
		case err == nil && choice == len(menu)+1:
			fmt.Print(receipt.FormatSummary(orders.Items(), orders.Subtotal(), orders.Discount(), orders.FinalTotal()))
		case err == nil && choice == len(menu)+2:
			runCheckout(in, orders, store)
		case err == nil && choice == len(menu)+3:
			fmt.Println("Thanks for visiting. Goodbye!")
			return
		default:
			fmt.Println("❌ Invalid choice. Try again.")
		}
	}
}

func addItem(in *bufio.Reader, catalog *service.CatalogService, orders *service.OrderService, product model.Product) {
	size, ok := model.ParseSize(prompt(in, "Choose size (S/M/L): "))
	if !ok {
		fmt.Println("❌ Invalid size selected. Please try again.")
		return
	}

	quantity, err := strconv.Atoi(prompt(in, "How many would you like?: "))
	if err != nil {
		fmt.Println("❌ Invalid quantity. Please enter a number.")
		return
	}

	item, err := orders.AddItem(catalog, product, size, quantity)
	if err != nil {
		fmt.Printf("❌ %v\n", err)
		return
	}

	fmt.Printf("✅ Added %d %s %s(s) to your order.\n", item.Quantity, item.Size.Title(), item.Name)
}

func runCheckout(in *bufio.Reader, orders *service.OrderService, store checkout.Store) {
	wf := checkout.NewWorkflow(orders, store, checkout.SystemClock{}, service.OrderIDs{})

	review, err := wf.Begin()
	if errors.Is(err, checkout.ErrEmptyCart) {
		fmt.Println("Your cart is empty.")
		return
	}
	if err != nil {
		fmt.Printf("❌ %v\n", err)
		return
	}

	fmt.Print(receipt.FormatSummary(review.Items, review.Subtotal, review.Discount, review.Total))

	proceed := prompt(in, "Proceed to checkout? (yes/no): ") == "yes"
	if err := wf.Confirm(proceed); err != nil {
		fmt.Printf("❌ %v\n", err)
		return
	}
	if !proceed {
		fmt.Println("Checkout cancelled.")
		return
	}

	for {
		raw := prompt(in, fmt.Sprintf("Your total is $%s. Enter payment amount: $", review.Total.StringFixed(2)))
		paid, err := decimal.NewFromString(raw)
		if err != nil {
			fmt.Println("❌ Invalid input. Please enter a number.")
			continue
		}

		result, err := wf.SubmitPayment(paid)
		if err == nil {
			fmt.Printf("✅ Payment accepted. Your change is $%s\n", result.Change.StringFixed(2))
			for _, warn := range result.Warnings {
				fmt.Printf("Failed to save order record: %v\n", warn)
			}
			return
		}

		var short *model.InsufficientPaymentError
		switch {
		case errors.As(err, &short):
			fmt.Printf("❌ Insufficient payment. You still owe $%s\n", short.Shortfall.StringFixed(2))
			if prompt(in, "Do you want to try again? (yes/no): ") != "yes" {
				wf.Cancel()
				fmt.Println("❌ Payment cancelled.")
				return
			}
		default:
			fmt.Printf("❌ %v\n", err)
		}
	}
}

func prompt(in *bufio.Reader, label string) string {
	fmt.Print(label)
	line, _ := in.ReadString('\n')
	return strings.TrimSpace(line)
}
