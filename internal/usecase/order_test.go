package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/polkiloo/pressdesk/internal/domain/model"
	"github.com/polkiloo/pressdesk/internal/domain/repository"
	"github.com/polkiloo/pressdesk/internal/storage/memory"
	testhelpers "github.com/polkiloo/pressdesk/internal/test"
)

type orderFixture struct {
	store     *memory.Storage
	orders    *OrderUseCase
	customers *CustomerUseCase
	clock     time.Time
}

func newOrderFixture(t *testing.T) *orderFixture {
	t.Helper()
	store := memory.New()
	ids := &testhelpers.SequentialIDs{}
	f := &orderFixture{
		store:     store,
		orders:    NewOrderUseCase(store.Orders(), store.Customers(), store.Employees(), ids, 30*24*time.Hour),
		customers: NewCustomerUseCase(store.Customers(), ids),
		clock:     time.Date(2024, 5, 1, 9, 0, 0, 0, time.UTC),
	}
	f.orders.now = func() time.Time { return f.clock }
	f.customers.now = func() time.Time { return f.clock }
	return f
}

func (f *orderFixture) payment(t *testing.T, orderID string) model.Payment {
	t.Helper()
	payments, err := f.store.Payments().List(context.Background())
	if err != nil {
		t.Fatalf("list payments: %v", err)
	}
	for _, p := range payments {
		if p.OrderID == orderID {
			return p
		}
	}
	t.Fatalf("no payment for order %s", orderID)
	return model.Payment{}
}

func TestOrderPaymentLifecycle(t *testing.T) {
	f := newOrderFixture(t)
	ctx := context.Background()

	order, payment, err := f.orders.Create(ctx, model.OrderDraft{
		CustomerID:    "CUS-1",
		CustomerName:  "John Smith",
		OrderType:     "Book Printing",
		Quantity:      10,
		UnitPrice:     5,
		PaymentStatus: model.PaymentStatusBid,
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if order.TotalPrice != 50 || !order.OrderDate.Equal(f.clock) {
		t.Fatalf("unexpected order %+v", order)
	}
	if payment.Amount != 50 || payment.PaidAmount != 0 || payment.OutstandingAmount != 50 ||
		payment.Status != model.PaymentStateUnpaidBid || payment.PaymentDate != nil {
		t.Fatalf("unexpected payment %+v", payment)
	}
	if payment.OrderID != order.ID || payment.DueDate == nil || !payment.DueDate.Equal(f.clock.Add(30*24*time.Hour)) {
		t.Fatalf("unexpected payment linkage %+v", payment)
	}

	f.clock = f.clock.Add(time.Hour)
	full := model.PaymentStatusFullPayment
	if err := f.orders.Update(ctx, order.ID, model.OrderPatch{PaymentStatus: &full}); err != nil {
		t.Fatalf("update full: %v", err)
	}
	got := f.payment(t, order.ID)
	if got.PaidAmount != 50 || got.OutstandingAmount != 0 || got.Status != model.PaymentStatePaidFull ||
		got.PaymentDate == nil || !got.PaymentDate.Equal(f.clock) {
		t.Fatalf("unexpected payment after full payment %+v", got)
	}

	credit := model.PaymentStatusCredit
	if err := f.orders.Update(ctx, order.ID, model.OrderPatch{PaymentStatus: &credit}); err != nil {
		t.Fatalf("update credit: %v", err)
	}
	got = f.payment(t, order.ID)
	if got.PaidAmount != 0 || got.OutstandingAmount != 50 || got.Status != model.PaymentStateUnpaidCredit || got.PaymentDate != nil {
		t.Fatalf("unexpected payment after credit %+v", got)
	}
}

func TestOrderCreatePrependsAndSnapshotsNames(t *testing.T) {
	f := newOrderFixture(t)
	ctx := context.Background()
	_ = f.store.Seed(ctx, model.Snapshot{Employees: []model.Employee{{ID: "EMP-1", Name: "Alice Chen"}}})

	customer, _ := f.customers.Add(ctx, model.CustomerDraft{Name: "Sarah Johnson"})
	first, _, err := f.orders.Create(ctx, model.OrderDraft{CustomerID: customer.ID, CustomerName: "stale", Quantity: 1, UnitPrice: 1})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	second, _, err := f.orders.Create(ctx, model.OrderDraft{CustomerID: "CUS-404", CustomerName: "Walk-in", AssignedEmployeeID: "EMP-1", Quantity: 1, UnitPrice: 1})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	if first.CustomerName != "Sarah Johnson" {
		t.Fatalf("expected customer name snapshot, got %q", first.CustomerName)
	}
	if second.CustomerName != "Walk-in" || second.AssignedEmployeeName != "Alice Chen" {
		t.Fatalf("unexpected snapshots %+v", second)
	}
	if first.Status != model.OrderStatusOrdered || first.PaymentStatus != model.PaymentStatusBid {
		t.Fatalf("expected default statuses, got %q %q", first.Status, first.PaymentStatus)
	}

	orders, _ := f.orders.List(ctx)
	payments, _ := f.store.Payments().List(ctx)
	if len(orders) != 2 || orders[0].ID != second.ID || len(payments) != 2 || payments[0].OrderID != second.ID {
		t.Fatalf("expected newest first in lockstep: %+v %+v", orders, payments)
	}
}

func TestOrderCreateAdvanceAndFull(t *testing.T) {
	f := newOrderFixture(t)
	ctx := context.Background()

	_, payment, err := f.orders.Create(ctx, model.OrderDraft{Quantity: 2, UnitPrice: 30, PaymentStatus: model.PaymentStatusFullPayment})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if payment.PaidAmount != 60 || payment.Status != model.PaymentStatePaidFull || payment.PaymentDate == nil {
		t.Fatalf("unexpected full payment %+v", payment)
	}

	_, payment, err = f.orders.Create(ctx, model.OrderDraft{Quantity: 2, UnitPrice: 30, PaymentStatus: model.PaymentStatusAdvance})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if payment.PaidAmount != 0 || payment.OutstandingAmount != 60 || payment.Status != model.PaymentStatePaidAdvance || payment.PaymentDate == nil {
		t.Fatalf("unexpected advance payment %+v", payment)
	}
}

func TestOrderCreateDefaultsStatuses(t *testing.T) {
	f := newOrderFixture(t)
	order, payment, err := f.orders.Create(context.Background(), model.OrderDraft{Quantity: 2, UnitPrice: 3})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if order.Status != model.OrderStatusOrdered || order.PaymentStatus != model.PaymentStatusBid {
		t.Fatalf("unexpected default statuses %q %q", order.Status, order.PaymentStatus)
	}
	if payment.Status != model.PaymentStateUnpaidBid || payment.OutstandingAmount != 6 {
		t.Fatalf("unexpected payment %+v", payment)
	}
}

func TestOrderCreateStoresUncheckedInput(t *testing.T) {
	f := newOrderFixture(t)
	ctx := context.Background()

	order, payment, err := f.orders.Create(ctx, model.OrderDraft{Quantity: 0, UnitPrice: 4, Status: "lost", PaymentStatus: model.PaymentStatusCredit})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if order.TotalPrice != 0 || order.Status != "lost" || payment.Amount != 0 {
		t.Fatalf("unexpected order %+v payment %+v", order, payment)
	}

	orders, _ := f.orders.List(ctx)
	if len(orders) != 1 {
		t.Fatalf("expected stored order, got %d", len(orders))
	}
}

func TestOrderUpdateUnknownIDIsNoop(t *testing.T) {
	f := newOrderFixture(t)
	ctx := context.Background()
	order, _, _ := f.orders.Create(ctx, model.OrderDraft{Quantity: 1, UnitPrice: 10})

	full := model.PaymentStatusFullPayment
	desc := "changed"
	if err := f.orders.Update(ctx, "ORD-404", model.OrderPatch{PaymentStatus: &full, Description: &desc}); err != nil {
		t.Fatalf("expected silent no-op, got %v", err)
	}

	orders, _ := f.orders.List(ctx)
	if len(orders) != 1 || orders[0].Description != "" || orders[0].ID != order.ID {
		t.Fatalf("orders changed: %+v", orders)
	}
	if p := f.payment(t, order.ID); p.Status != model.PaymentStateUnpaidBid {
		t.Fatalf("payment changed: %+v", p)
	}
}

func TestOrderUpdateWithoutPaymentStatusLeavesPayment(t *testing.T) {
	f := newOrderFixture(t)
	ctx := context.Background()
	order, _, _ := f.orders.Create(ctx, model.OrderDraft{Quantity: 1, UnitPrice: 10, PaymentStatus: model.PaymentStatusFullPayment})
	before := f.payment(t, order.ID)

	shipped := model.OrderStatusShipped
	delivered := f.clock.Add(48 * time.Hour)
	if err := f.orders.Update(ctx, order.ID, model.OrderPatch{Status: &shipped, ActualDelivery: &delivered}); err != nil {
		t.Fatalf("update: %v", err)
	}

	orders, _ := f.orders.List(ctx)
	if orders[0].Status != shipped || orders[0].ActualDelivery == nil || !orders[0].ActualDelivery.Equal(delivered) {
		t.Fatalf("unexpected order %+v", orders[0])
	}
	after := f.payment(t, order.ID)
	if after.PaidAmount != before.PaidAmount || after.Status != before.Status || !after.PaymentDate.Equal(*before.PaymentDate) {
		t.Fatalf("payment changed without payment status: %+v -> %+v", before, after)
	}
	if !orders[0].OrderDate.Equal(f.clock) {
		t.Fatalf("order date must never change, got %v", orders[0].OrderDate)
	}
}

func TestOrderPriceChangeKeepsPaymentAmount(t *testing.T) {
	f := newOrderFixture(t)
	ctx := context.Background()
	order, _, _ := f.orders.Create(ctx, model.OrderDraft{Quantity: 10, UnitPrice: 5})

	qty := 20
	if err := f.orders.Update(ctx, order.ID, model.OrderPatch{Quantity: &qty}); err != nil {
		t.Fatalf("update: %v", err)
	}
	orders, _ := f.orders.List(ctx)
	if orders[0].TotalPrice != 100 {
		t.Fatalf("expected total price recomputed to 100, got %v", orders[0].TotalPrice)
	}
	if p := f.payment(t, order.ID); p.Amount != 50 || p.OutstandingAmount != 50 {
		t.Fatalf("payment amount must stay at creation snapshot, got %+v", p)
	}

	full := model.PaymentStatusFullPayment
	if err := f.orders.Update(ctx, order.ID, model.OrderPatch{PaymentStatus: &full}); err != nil {
		t.Fatalf("update: %v", err)
	}
	if p := f.payment(t, order.ID); p.Amount != 50 || p.PaidAmount != 50 {
		t.Fatalf("full payment must settle the recorded amount, got %+v", p)
	}
}

func TestOrderUpdateResnapshotsNames(t *testing.T) {
	f := newOrderFixture(t)
	ctx := context.Background()
	_ = f.store.Seed(ctx, model.Snapshot{
		Customers: []model.Customer{{ID: "CUS-1", Name: "John Smith"}},
		Employees: []model.Employee{{ID: "EMP-2", Name: "Bob Martinez"}},
	})
	order, _, _ := f.orders.Create(ctx, model.OrderDraft{CustomerID: "CUS-1", Quantity: 1})

	customerID, employeeID := "CUS-404", "EMP-2"
	if err := f.orders.Update(ctx, order.ID, model.OrderPatch{CustomerID: &customerID, AssignedEmployeeID: &employeeID}); err != nil {
		t.Fatalf("update: %v", err)
	}
	orders, _ := f.orders.List(ctx)
	if orders[0].CustomerID != "CUS-404" || orders[0].CustomerName != "John Smith" || orders[0].AssignedEmployeeName != "Bob Martinez" {
		t.Fatalf("unexpected names %+v", orders[0])
	}
}

func TestOrderUpdateUnknownPaymentStatusOnlyRecomputesOutstanding(t *testing.T) {
	f := newOrderFixture(t)
	ctx := context.Background()
	order, _, err := f.orders.Create(ctx, model.OrderDraft{Quantity: 1, UnitPrice: 10, PaymentStatus: model.PaymentStatusAdvance})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	bad := model.PaymentStatus("barter")
	if err := f.orders.Update(ctx, order.ID, model.OrderPatch{PaymentStatus: &bad}); err != nil {
		t.Fatalf("update: %v", err)
	}
	p := f.payment(t, order.ID)
	if p.Status != model.PaymentStatePaidAdvance || p.OutstandingAmount != 10 {
		t.Fatalf("unexpected payment %+v", p)
	}
}

func TestOrderUpdateClearsActualDelivery(t *testing.T) {
	f := newOrderFixture(t)
	ctx := context.Background()
	delivered := f.clock.Add(72 * time.Hour)
	order, _, err := f.orders.Create(ctx, model.OrderDraft{Quantity: 1, ActualDelivery: &delivered})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	if err := f.orders.Update(ctx, order.ID, model.OrderPatch{ClearActualDelivery: true}); err != nil {
		t.Fatalf("update: %v", err)
	}
	orders, _ := f.orders.List(ctx)
	if orders[0].ActualDelivery != nil {
		t.Fatalf("expected delivery date cleared, got %v", orders[0].ActualDelivery)
	}
}

func TestOrderUseCasePropagatesRepositoryErrors(t *testing.T) {
	boom := errors.New("boom")
	ids := &testhelpers.SequentialIDs{}
	ctx := context.Background()

	orders := &testhelpers.OrderRepositoryStub{
		CreateFn: func(context.Context, model.Order, model.Payment) error { return boom },
		UpdateFn: func(context.Context, string, repository.OrderMutation) error { return boom },
	}
	uc := NewOrderUseCase(orders, &testhelpers.CustomerRepositoryStub{}, &testhelpers.EmployeeRepositoryStub{}, ids, 0)
	if _, _, err := uc.Create(ctx, model.OrderDraft{Quantity: 1}); !errors.Is(err, boom) {
		t.Fatalf("expected create error, got %v", err)
	}
	if err := uc.Update(ctx, "ORD-1", model.OrderPatch{}); !errors.Is(err, boom) {
		t.Fatalf("expected update error, got %v", err)
	}

	customers := &testhelpers.CustomerRepositoryStub{Err: boom}
	uc = NewOrderUseCase(&testhelpers.OrderRepositoryStub{}, customers, &testhelpers.EmployeeRepositoryStub{}, ids, 0)
	if _, _, err := uc.Create(ctx, model.OrderDraft{CustomerID: "CUS-1", Quantity: 1}); !errors.Is(err, boom) {
		t.Fatalf("expected customer lookup error, got %v", err)
	}

	employees := &testhelpers.EmployeeRepositoryStub{Err: boom}
	uc = NewOrderUseCase(&testhelpers.OrderRepositoryStub{}, &testhelpers.CustomerRepositoryStub{}, employees, ids, 0)
	employeeID := "EMP-1"
	if err := uc.Update(ctx, "ORD-1", model.OrderPatch{AssignedEmployeeID: &employeeID}); !errors.Is(err, boom) {
		t.Fatalf("expected employee lookup error, got %v", err)
	}
}

func TestOrderCreateWithoutPaymentTerms(t *testing.T) {
	var stored model.Payment
	orders := &testhelpers.OrderRepositoryStub{
		CreateFn: func(_ context.Context, _ model.Order, p model.Payment) error {
			stored = p
			return nil
		},
	}
	uc := NewOrderUseCase(orders, &testhelpers.CustomerRepositoryStub{}, &testhelpers.EmployeeRepositoryStub{}, &testhelpers.SequentialIDs{}, 0)
	if _, _, err := uc.Create(context.Background(), model.OrderDraft{Quantity: 1, UnitPrice: 2}); err != nil {
		t.Fatalf("create: %v", err)
	}
	if stored.DueDate != nil {
		t.Fatalf("expected no due date without payment terms, got %v", stored.DueDate)
	}
	if stored.ID != "PAY-2" || stored.OrderID != "ORD-1" {
		t.Fatalf("unexpected identifiers %+v", stored)
	}
}

func TestOrderResetToBidDropsRecordedReceipts(t *testing.T) {
	f := newOrderFixture(t)
	ctx := context.Background()
	payments := NewPaymentUseCase(f.store.Payments(), &testhelpers.SequentialIDs{})
	payments.now = func() time.Time { return f.clock }

	order, payment, err := f.orders.Create(ctx, model.OrderDraft{
		CustomerName:  "John Smith",
		Quantity:      10,
		UnitPrice:     5,
		PaymentStatus: model.PaymentStatusAdvance,
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if err := payments.RecordPayment(ctx, payment.ID, 20, model.PaymentMethodCash); err != nil {
		t.Fatalf("record: %v", err)
	}
	recorded := f.payment(t, order.ID)
	if recorded.PaidAmount != 20 || len(recorded.History) != 1 || recorded.PaymentMethod == nil {
		t.Fatalf("unexpected recorded payment %+v", recorded)
	}

	bid := model.PaymentStatusBid
	if err := f.orders.Update(ctx, order.ID, model.OrderPatch{PaymentStatus: &bid}); err != nil {
		t.Fatalf("update: %v", err)
	}
	reset := f.payment(t, order.ID)
	if reset.PaidAmount != 0 || reset.OutstandingAmount != 50 || reset.Status != model.PaymentStateUnpaidBid {
		t.Fatalf("unexpected amounts after reset %+v", reset)
	}
	if reset.PaymentDate != nil || reset.PaymentMethod != nil || len(reset.History) != 0 {
		t.Fatalf("expected receipts cleared after reset, got %+v", reset)
	}
}
