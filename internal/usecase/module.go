package usecase

import (
	"go.uber.org/fx"

	"github.com/polkiloo/pressdesk/internal/config"
	"github.com/polkiloo/pressdesk/internal/domain/repository"
)

// Module provides core business use cases to the fx container.
var Module = fx.Provide(
	NewCustomerUseCase,
	NewEmployeeUseCase,
	newOrderUseCase,
	NewPaymentUseCase,
	NewReportUseCase,
)

type orderParams struct {
	fx.In

	Orders    repository.OrderRepository
	Customers repository.CustomerRepository
	Employees repository.EmployeeRepository
	IDs       IDGenerator
	Config    *config.Config
}

func newOrderUseCase(p orderParams) *OrderUseCase {
	return NewOrderUseCase(p.Orders, p.Customers, p.Employees, p.IDs, p.Config.PaymentTerms)
}
