package app

import (
	"context"

	"github.com/polkiloo/pressdesk/internal/domain/model"
	"github.com/polkiloo/pressdesk/internal/usecase"
)

// HealthChecker reports whether storage is reachable.
type HealthChecker interface {
	HealthCheck(ctx context.Context) error
}

// DashboardFacade is the single entry point the HTTP layer and the
// background sweeper use to reach business operations.
type DashboardFacade struct {
	customers *usecase.CustomerUseCase
	employees *usecase.EmployeeUseCase
	orders    *usecase.OrderUseCase
	payments  *usecase.PaymentUseCase
	reports   *usecase.ReportUseCase
	health    HealthChecker
}

func NewDashboardFacade(
	customers *usecase.CustomerUseCase,
	employees *usecase.EmployeeUseCase,
	orders *usecase.OrderUseCase,
	payments *usecase.PaymentUseCase,
	reports *usecase.ReportUseCase,
	health HealthChecker,
) *DashboardFacade {
	return &DashboardFacade{
		customers: customers,
		employees: employees,
		orders:    orders,
		payments:  payments,
		reports:   reports,
		health:    health,
	}
}

func (f *DashboardFacade) Customers(ctx context.Context) ([]model.Customer, error) {
	return f.customers.List(ctx)
}

func (f *DashboardFacade) AddCustomer(ctx context.Context, draft model.CustomerDraft) (*model.Customer, error) {
	return f.customers.Add(ctx, draft)
}

func (f *DashboardFacade) UpdateCustomer(ctx context.Context, id string, patch model.CustomerPatch) error {
	return f.customers.Update(ctx, id, patch)
}

func (f *DashboardFacade) DeleteCustomer(ctx context.Context, id string) error {
	return f.customers.Delete(ctx, id)
}

func (f *DashboardFacade) Employees(ctx context.Context) ([]model.Employee, error) {
	return f.employees.List(ctx)
}

func (f *DashboardFacade) Orders(ctx context.Context) ([]model.Order, error) {
	return f.orders.List(ctx)
}

func (f *DashboardFacade) PlaceOrder(ctx context.Context, draft model.OrderDraft) (*model.Order, *model.Payment, error) {
	return f.orders.Create(ctx, draft)
}

func (f *DashboardFacade) UpdateOrder(ctx context.Context, id string, patch model.OrderPatch) error {
	return f.orders.Update(ctx, id, patch)
}

func (f *DashboardFacade) Payments(ctx context.Context) ([]model.Payment, error) {
	return f.payments.List(ctx)
}

func (f *DashboardFacade) RecordPayment(ctx context.Context, id string, amount float64, method model.PaymentMethod) error {
	return f.payments.RecordPayment(ctx, id, amount, method)
}

func (f *DashboardFacade) OverdueCandidates(ctx context.Context) ([]model.Payment, error) {
	return f.payments.OverdueCandidates(ctx)
}

func (f *DashboardFacade) MarkOverdue(ctx context.Context, paymentID string, overdue bool) error {
	return f.payments.MarkOverdue(ctx, paymentID, overdue)
}

func (f *DashboardFacade) Summary(ctx context.Context) (model.DashboardStats, error) {
	return f.reports.Summary(ctx)
}

func (f *DashboardFacade) Breakdown(ctx context.Context) (model.Breakdown, error) {
	return f.reports.Breakdown(ctx)
}

func (f *DashboardFacade) Export(ctx context.Context, kind string) (*model.Table, error) {
	return f.reports.Export(ctx, usecase.ReportKind(kind))
}

func (f *DashboardFacade) HealthCheck(ctx context.Context) error {
	return f.health.HealthCheck(ctx)
}
