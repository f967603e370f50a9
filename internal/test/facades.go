package test

import (
	"context"
	"sync"
	"time"

	"github.com/polkiloo/pressdesk/internal/domain/model"
)

// CustomerFacadeStub provides controllable behaviour for customer endpoints.
type CustomerFacadeStub struct {
	CustomersFn func(context.Context) ([]model.Customer, error)
	AddFn       func(context.Context, model.CustomerDraft) (*model.Customer, error)
	UpdateFn    func(context.Context, string, model.CustomerPatch) error
	DeleteFn    func(context.Context, string) error
}

// Customers returns configured customers or a single default one.
func (s CustomerFacadeStub) Customers(ctx context.Context) ([]model.Customer, error) {
	if s.CustomersFn != nil {
		return s.CustomersFn(ctx)
	}
	return []model.Customer{{ID: "CUS-1", Name: "John Smith", CreatedAt: time.Unix(0, 0).UTC()}}, nil
}

// AddCustomer echoes the draft back as a stored customer.
func (s CustomerFacadeStub) AddCustomer(ctx context.Context, draft model.CustomerDraft) (*model.Customer, error) {
	if s.AddFn != nil {
		return s.AddFn(ctx, draft)
	}
	return &model.Customer{ID: "CUS-1", Name: draft.Name, Email: draft.Email, CreatedAt: time.Unix(0, 0).UTC()}, nil
}

// UpdateCustomer delegates to override.
func (s CustomerFacadeStub) UpdateCustomer(ctx context.Context, id string, patch model.CustomerPatch) error {
	if s.UpdateFn != nil {
		return s.UpdateFn(ctx, id, patch)
	}
	return nil
}

// DeleteCustomer delegates to override.
func (s CustomerFacadeStub) DeleteCustomer(ctx context.Context, id string) error {
	if s.DeleteFn != nil {
		return s.DeleteFn(ctx, id)
	}
	return nil
}

// EmployeeFacadeStub serves staff.
type EmployeeFacadeStub struct {
	EmployeesFn func(context.Context) ([]model.Employee, error)
}

// Employees returns configured employees.
func (s EmployeeFacadeStub) Employees(ctx context.Context) ([]model.Employee, error) {
	if s.EmployeesFn != nil {
		return s.EmployeesFn(ctx)
	}
	return []model.Employee{{ID: "EMP-1", Name: "Alice Chen", PerformanceRating: 4.5}}, nil
}

// OrderFacadeStub provides controllable behaviour for order endpoints.
type OrderFacadeStub struct {
	OrdersFn func(context.Context) ([]model.Order, error)
	PlaceFn  func(context.Context, model.OrderDraft) (*model.Order, *model.Payment, error)
	UpdateFn func(context.Context, string, model.OrderPatch) error
}

// Orders returns predefined orders.
func (s OrderFacadeStub) Orders(ctx context.Context) ([]model.Order, error) {
	if s.OrdersFn != nil {
		return s.OrdersFn(ctx)
	}
	return []model.Order{{ID: "ORD-1", Status: model.OrderStatusOrdered, PaymentStatus: model.PaymentStatusBid}}, nil
}

// PlaceOrder delegates to override or returns an order built from draft.
func (s OrderFacadeStub) PlaceOrder(ctx context.Context, draft model.OrderDraft) (*model.Order, *model.Payment, error) {
	if s.PlaceFn != nil {
		return s.PlaceFn(ctx, draft)
	}
	total := model.TotalPrice(draft.Quantity, draft.UnitPrice)
	order := &model.Order{ID: "ORD-1", CustomerID: draft.CustomerID, Quantity: draft.Quantity, UnitPrice: draft.UnitPrice, TotalPrice: total}
	payment := &model.Payment{ID: "PAY-1", OrderID: "ORD-1", Amount: total, OutstandingAmount: total, Status: model.PaymentStateUnpaidBid}
	return order, payment, nil
}

// UpdateOrder delegates to override.
func (s OrderFacadeStub) UpdateOrder(ctx context.Context, id string, patch model.OrderPatch) error {
	if s.UpdateFn != nil {
		return s.UpdateFn(ctx, id, patch)
	}
	return nil
}

// PaymentFacadeStub simulates payment operations.
type PaymentFacadeStub struct {
	PaymentsFn func(context.Context) ([]model.Payment, error)
	RecordFn   func(context.Context, string, float64, model.PaymentMethod) error
}

// Payments returns configured payments.
func (s PaymentFacadeStub) Payments(ctx context.Context) ([]model.Payment, error) {
	if s.PaymentsFn != nil {
		return s.PaymentsFn(ctx)
	}
	return []model.Payment{{ID: "PAY-1", OrderID: "ORD-1", Amount: 10, OutstandingAmount: 10, Status: model.PaymentStateUnpaidBid}}, nil
}

// RecordPayment delegates to override.
func (s PaymentFacadeStub) RecordPayment(ctx context.Context, id string, amount float64, method model.PaymentMethod) error {
	if s.RecordFn != nil {
		return s.RecordFn(ctx, id, amount, method)
	}
	return nil
}

// ReportFacadeStub serves canned dashboard figures.
type ReportFacadeStub struct {
	SummaryFn   func(context.Context) (model.DashboardStats, error)
	BreakdownFn func(context.Context) (model.Breakdown, error)
	ExportFn    func(context.Context, string) (*model.Table, error)
}

// Summary returns configured stats.
func (s ReportFacadeStub) Summary(ctx context.Context) (model.DashboardStats, error) {
	if s.SummaryFn != nil {
		return s.SummaryFn(ctx)
	}
	return model.DashboardStats{TotalOrders: 1, AverageOrderValue: 10}, nil
}

// Breakdown returns configured buckets.
func (s ReportFacadeStub) Breakdown(ctx context.Context) (model.Breakdown, error) {
	if s.BreakdownFn != nil {
		return s.BreakdownFn(ctx)
	}
	return model.Breakdown{}, nil
}

// Export returns configured table.
func (s ReportFacadeStub) Export(ctx context.Context, kind string) (*model.Table, error) {
	if s.ExportFn != nil {
		return s.ExportFn(ctx, kind)
	}
	return &model.Table{Title: kind, Columns: []string{"ID"}, Rows: [][]string{{"1"}}}, nil
}

// HealthFacadeStub reports configured health.
type HealthFacadeStub struct {
	Err error
}

// HealthCheck returns configured error.
func (s HealthFacadeStub) HealthCheck(context.Context) error {
	return s.Err
}

// DashboardFacadeStub combines all handler facades.
type DashboardFacadeStub struct {
	CustomerFacadeStub
	EmployeeFacadeStub
	OrderFacadeStub
	PaymentFacadeStub
	ReportFacadeStub
	HealthFacadeStub
}

// OverdueMark stores information about MarkOverdue invocations.
type OverdueMark struct {
	PaymentID string
	Overdue   bool
}

// SweeperFacadeStub mimics sweeper interactions with the dashboard facade.
type SweeperFacadeStub struct {
	Payments     []model.Payment
	CandidatesFn func(context.Context) ([]model.Payment, error)
	MarkFn       func(context.Context, string, bool) error
	Marks        []OverdueMark
	mu           sync.Mutex
}

// Lock exposes internal mutex for external synchronization.
func (s *SweeperFacadeStub) Lock() { s.mu.Lock() }

// Unlock releases previously acquired lock.
func (s *SweeperFacadeStub) Unlock() { s.mu.Unlock() }

// OverdueCandidates returns configured payments with marks applied.
func (s *SweeperFacadeStub) OverdueCandidates(ctx context.Context) ([]model.Payment, error) {
	if s.CandidatesFn != nil {
		return s.CandidatesFn(ctx)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]model.Payment(nil), s.Payments...), nil
}

// MarkOverdue records the call and updates the stored payment.
func (s *SweeperFacadeStub) MarkOverdue(ctx context.Context, paymentID string, overdue bool) error {
	if s.MarkFn != nil {
		return s.MarkFn(ctx, paymentID, overdue)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.Marks = append(s.Marks, OverdueMark{PaymentID: paymentID, Overdue: overdue})
	for i := range s.Payments {
		if s.Payments[i].ID == paymentID {
			s.Payments[i].IsOverdue = overdue
		}
	}
	return nil
}
