package handlers

import (
	"context"

	"github.com/polkiloo/pressdesk/internal/domain/model"
)

// CustomerFacade covers customer commands and queries exposed via HTTP.
type CustomerFacade interface {
	Customers(ctx context.Context) ([]model.Customer, error)
	AddCustomer(ctx context.Context, draft model.CustomerDraft) (*model.Customer, error)
	UpdateCustomer(ctx context.Context, id string, patch model.CustomerPatch) error
	DeleteCustomer(ctx context.Context, id string) error
}

// EmployeeFacade gives read access to staff.
type EmployeeFacade interface {
	Employees(ctx context.Context) ([]model.Employee, error)
}

// OrderFacade encapsulates order operations exposed via HTTP.
type OrderFacade interface {
	Orders(ctx context.Context) ([]model.Order, error)
	PlaceOrder(ctx context.Context, draft model.OrderDraft) (*model.Order, *model.Payment, error)
	UpdateOrder(ctx context.Context, id string, patch model.OrderPatch) error
}

// PaymentFacade provides payment related operations.
type PaymentFacade interface {
	Payments(ctx context.Context) ([]model.Payment, error)
	RecordPayment(ctx context.Context, id string, amount float64, method model.PaymentMethod) error
}

// ReportFacade serves dashboard figures and export tables.
type ReportFacade interface {
	Summary(ctx context.Context) (model.DashboardStats, error)
	Breakdown(ctx context.Context) (model.Breakdown, error)
	Export(ctx context.Context, kind string) (*model.Table, error)
}

// HealthFacade reports storage availability.
type HealthFacade interface {
	HealthCheck(ctx context.Context) error
}

// DashboardFacade aggregates the full set of operations used across handlers.
type DashboardFacade interface {
	CustomerFacade
	EmployeeFacade
	OrderFacade
	PaymentFacade
	ReportFacade
	HealthFacade
}
