package checkout

import (
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/shopspring/decimal"

	"github.com/shihankaari/coffee-ordering/internal/model"
	"github.com/shihankaari/coffee-ordering/internal/service"
)

type State string

const (
	StateIdle            State = "idle"
	StateReviewing       State = "reviewing"
	StateAwaitingPayment State = "awaiting_payment"
	StateCompleted       State = "completed"
	StateCancelled       State = "cancelled"
)

var (
	ErrEmptyCart    = errors.New("order is empty")
	ErrInvalidState = errors.New("invalid checkout state")
)

// Store is the persistence sink for completed checkouts. The two writes are
// independent: one receipt file per order, one shared append-only log.
type Store interface {
	WriteReceipt(r *model.Receipt) error
	AppendLog(o *model.Order, subtotal decimal.Decimal) error
}

type Clock interface {
	Now() time.Time
}

type SystemClock struct{}

func (SystemClock) Now() time.Time {
	return time.Now()
}

// Review carries the order contents presented for confirmation.
type Review struct {
	Items    []model.LineItem
	Subtotal decimal.Decimal
	Discount decimal.Decimal
	Total    decimal.Decimal
}

// Result is the outcome of an accepted payment. Warnings hold persistence
// failures; the checkout itself has already completed when they are
// reported.
type Result struct {
	Receipt  *model.Receipt
	Change   decimal.Decimal
	Warnings []error
}

// Workflow drives one checkout through
// Idle → Reviewing → AwaitingPayment → {Completed, Cancelled}.
// Completed and Cancelled are terminal; start a new Workflow for the next
// checkout of the same session.
type Workflow struct {
	mu     sync.Mutex
	orders *service.OrderService
	store  Store
	clock  Clock
	ids    service.IDGenerator
	state  State
}

func NewWorkflow(orders *service.OrderService, store Store, clock Clock, ids service.IDGenerator) *Workflow {
	return &Workflow{
		orders: orders,
		store:  store,
		clock:  clock,
		ids:    ids,
		state:  StateIdle,
	}
}

func (w *Workflow) State() State {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.state
}

// Begin moves the workflow to Reviewing and returns the order contents for
// confirmation. An empty cart is rejected and the workflow stays Idle.
func (w *Workflow) Begin() (*Review, error) {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.state != StateIdle {
		return nil, fmt.Errorf("%w: cannot begin checkout from %s", ErrInvalidState, w.state)
	}

	if w.orders.IsEmpty() {
		return nil, ErrEmptyCart
	}

	w.state = StateReviewing
	return &Review{
		Items:    w.orders.Items(),
		Subtotal: w.orders.Subtotal(),
		Discount: w.orders.Discount(),
		Total:    w.orders.FinalTotal(),
	}, nil
}

// Confirm resolves the review step. Declining cancels the checkout with no
// side effects.
func (w *Workflow) Confirm(proceed bool) error {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.state != StateReviewing {
		return fmt.Errorf("%w: cannot confirm from %s", ErrInvalidState, w.state)
	}

	if !proceed {
		w.state = StateCancelled
		return nil
	}

	w.state = StateAwaitingPayment
	return nil
}

// SubmitPayment validates the tendered amount against the final total.
// Negative amounts and shortfalls leave the workflow in AwaitingPayment so
// the caller can retry. A sufficient amount completes the checkout: change
// is computed, the receipt and log are written best-effort, and the cart is
// cleared.
func (w *Workflow) SubmitPayment(amount decimal.Decimal) (*Result, error) {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.state != StateAwaitingPayment {
		return nil, fmt.Errorf("%w: cannot accept payment from %s", ErrInvalidState, w.state)
	}

	if amount.IsNegative() {
		return nil, &model.ValidationError{Field: "payment", Reason: "must be a non-negative amount"}
	}

	total := w.orders.FinalTotal()
	if amount.LessThan(total) {
		return nil, &model.InsufficientPaymentError{Shortfall: total.Sub(amount)}
	}

	order := w.orders.Order()
	subtotal := w.orders.Subtotal()

	rcpt := &model.Receipt{
		OrderID:    w.ids.NextID(),
		CustomerID: order.CustomerID,
		FirstName:  order.FirstName,
		LastName:   order.LastName,
		Email:      order.Email,
		IssuedAt:   w.clock.Now(),
		Items:      order.Items,
		Subtotal:   subtotal,
		Discount:   w.orders.Discount(),
		Total:      total,
		Paid:       amount,
		Change:     amount.Sub(total),
	}

	result := &Result{Receipt: rcpt, Change: rcpt.Change}

	// Best-effort persistence: failures are reported, never rolled back,
	// and the log append is attempted even when the receipt write failed.
	if err := w.store.WriteReceipt(rcpt); err != nil {
		result.Warnings = append(result.Warnings, err)
	}
	if err := w.store.AppendLog(order, subtotal); err != nil {
		result.Warnings = append(result.Warnings, err)
	}

	w.orders.Clear()
	w.state = StateCompleted
	return result, nil
}

// Cancel ends the checkout with the cart intact. Used when the customer
// declines to retry an insufficient payment.
func (w *Workflow) Cancel() error {
	w.mu.Lock()
	defer w.mu.Unlock()

	switch w.state {
	case StateReviewing, StateAwaitingPayment:
		w.state = StateCancelled
		return nil
	default:
		return fmt.Errorf("%w: cannot cancel from %s", ErrInvalidState, w.state)
	}
}
