package app

import (
	"context"
	"errors"
	"math"
	"testing"
	"time"

	domainErrors "github.com/polkiloo/pressdesk/internal/domain/errors"
	"github.com/polkiloo/pressdesk/internal/domain/model"
	"github.com/polkiloo/pressdesk/internal/server/http/handlers"
	"github.com/polkiloo/pressdesk/internal/storage/memory"
	testhelpers "github.com/polkiloo/pressdesk/internal/test"
	"github.com/polkiloo/pressdesk/internal/usecase"
	"github.com/polkiloo/pressdesk/internal/worker"
)

var (
	_ handlers.DashboardFacade = (*DashboardFacade)(nil)
	_ worker.PaymentFacade     = (*DashboardFacade)(nil)
)

func newFacade(health HealthChecker) (*DashboardFacade, *memory.Storage) {
	store := memory.New()
	ids := &testhelpers.SequentialIDs{}
	facade := NewDashboardFacade(
		usecase.NewCustomerUseCase(store.Customers(), ids),
		usecase.NewEmployeeUseCase(store.Employees()),
		usecase.NewOrderUseCase(store.Orders(), store.Customers(), store.Employees(), ids, 24*time.Hour),
		usecase.NewPaymentUseCase(store.Payments(), ids),
		usecase.NewReportUseCase(store.Customers(), store.Employees(), store.Orders(), store.Payments()),
		health,
	)
	return facade, store
}

func TestDashboardFacadeCustomers(t *testing.T) {
	facade, _ := newFacade(testhelpers.HealthFacadeStub{})
	ctx := context.Background()

	customer, err := facade.AddCustomer(ctx, model.CustomerDraft{Name: "John Smith"})
	if err != nil {
		t.Fatalf("add customer: %v", err)
	}
	name := "Jane Smith"
	if err := facade.UpdateCustomer(ctx, customer.ID, model.CustomerPatch{Name: &name}); err != nil {
		t.Fatalf("update customer: %v", err)
	}
	customers, err := facade.Customers(ctx)
	if err != nil || len(customers) != 1 || customers[0].Name != name {
		t.Fatalf("unexpected customers %+v err=%v", customers, err)
	}
	if err := facade.DeleteCustomer(ctx, customer.ID); err != nil {
		t.Fatalf("delete customer: %v", err)
	}
	customers, _ = facade.Customers(ctx)
	if len(customers) != 0 {
		t.Fatalf("expected no customers, got %+v", customers)
	}
}

func TestDashboardFacadeOrdersAndPayments(t *testing.T) {
	facade, store := newFacade(testhelpers.HealthFacadeStub{})
	ctx := context.Background()
	_ = store.Seed(ctx, model.Snapshot{Employees: []model.Employee{{ID: "EMP-1", Name: "Alice Chen"}}})

	order, payment, err := facade.PlaceOrder(ctx, model.OrderDraft{
		CustomerID:         "CUS-404",
		CustomerName:       "Walk-in",
		Quantity:           4,
		UnitPrice:          25,
		AssignedEmployeeID: "EMP-1",
	})
	if err != nil {
		t.Fatalf("place order: %v", err)
	}
	if order.AssignedEmployeeName != "Alice Chen" || payment.Amount != 100 || payment.DueDate == nil {
		t.Fatalf("unexpected order %+v payment %+v", order, payment)
	}

	full := model.PaymentStatusFullPayment
	if err := facade.UpdateOrder(ctx, order.ID, model.OrderPatch{PaymentStatus: &full}); err != nil {
		t.Fatalf("update order: %v", err)
	}
	payments, _ := facade.Payments(ctx)
	if payments[0].Status != model.PaymentStatePaidFull || payments[0].OutstandingAmount != 0 {
		t.Fatalf("expected full payment, got %+v", payments[0])
	}

	if err := facade.RecordPayment(ctx, payment.ID, 0, model.PaymentMethodCash); !errors.Is(err, domainErrors.ErrInvalidAmount) {
		t.Fatalf("expected invalid amount, got %v", err)
	}

	if err := facade.MarkOverdue(ctx, payment.ID, true); err != nil {
		t.Fatalf("mark overdue: %v", err)
	}
	candidates, err := facade.OverdueCandidates(ctx)
	if err != nil || len(candidates) != 0 {
		t.Fatalf("settled payment must not be flagged, got %+v err=%v", candidates, err)
	}

	orders, _ := facade.Orders(ctx)
	employees, _ := facade.Employees(ctx)
	if len(orders) != 1 || len(employees) != 1 {
		t.Fatalf("unexpected collections: %d orders %d employees", len(orders), len(employees))
	}
}

func TestDashboardFacadeReports(t *testing.T) {
	facade, _ := newFacade(testhelpers.HealthFacadeStub{})
	ctx := context.Background()

	stats, err := facade.Summary(ctx)
	if err != nil || !math.IsNaN(stats.AverageOrderValue) {
		t.Fatalf("expected NaN average on empty store, got %+v err=%v", stats, err)
	}
	if _, err := facade.Breakdown(ctx); err != nil {
		t.Fatalf("breakdown: %v", err)
	}
	table, err := facade.Export(ctx, "summary")
	if err != nil || len(table.Rows) == 0 {
		t.Fatalf("unexpected summary table %+v err=%v", table, err)
	}
	if _, err := facade.Export(ctx, "invoices"); !errors.Is(err, domainErrors.ErrUnknownReportKind) {
		t.Fatalf("expected unknown report kind, got %v", err)
	}
}

func TestDashboardFacadeHealth(t *testing.T) {
	facade, _ := newFacade(testhelpers.HealthFacadeStub{Err: errors.New("down")})
	if err := facade.HealthCheck(context.Background()); err == nil {
		t.Fatal("expected health error")
	}
}
