package usecase

import (
	"context"
	"errors"
	"time"

	"github.com/polkiloo/pressdesk/internal/domain/billing"
	domainErrors "github.com/polkiloo/pressdesk/internal/domain/errors"
	"github.com/polkiloo/pressdesk/internal/domain/model"
	"github.com/polkiloo/pressdesk/internal/domain/repository"
	"github.com/polkiloo/pressdesk/internal/idgen"
)

// OrderUseCase encapsulates order lifecycle logic and keeps payments in sync.
type OrderUseCase struct {
	orders       repository.OrderRepository
	customers    repository.CustomerRepository
	employees    repository.EmployeeRepository
	ids          IDGenerator
	paymentTerms time.Duration
	now          func() time.Time
}

// NewOrderUseCase constructs OrderUseCase. With positive paymentTerms new
// payments fall due paymentTerms after the order date.
func NewOrderUseCase(
	orders repository.OrderRepository,
	customers repository.CustomerRepository,
	employees repository.EmployeeRepository,
	ids IDGenerator,
	paymentTerms time.Duration,
) *OrderUseCase {
	return &OrderUseCase{
		orders:       orders,
		customers:    customers,
		employees:    employees,
		ids:          ids,
		paymentTerms: paymentTerms,
		now:          time.Now,
	}
}

// Create places a new order and opens its payment record in the same unit of work.
func (u *OrderUseCase) Create(ctx context.Context, draft model.OrderDraft) (*model.Order, *model.Payment, error) {
	applyOrderDefaults(&draft)

	customerName, err := u.customerName(ctx, draft.CustomerID, draft.CustomerName)
	if err != nil {
		return nil, nil, err
	}
	employeeName, err := u.employeeName(ctx, draft.AssignedEmployeeID, draft.AssignedEmployeeName)
	if err != nil {
		return nil, nil, err
	}

	now := u.now()
	order := model.Order{
		ID:                   u.ids.Next(idgen.PrefixOrder),
		CustomerID:           draft.CustomerID,
		CustomerName:         customerName,
		OrderType:            draft.OrderType,
		Description:          draft.Description,
		Quantity:             draft.Quantity,
		UnitPrice:            draft.UnitPrice,
		TotalPrice:           model.TotalPrice(draft.Quantity, draft.UnitPrice),
		OrderDate:            now,
		Status:               draft.Status,
		PaymentStatus:        draft.PaymentStatus,
		AssignedEmployeeID:   draft.AssignedEmployeeID,
		AssignedEmployeeName: employeeName,
		EstimatedDelivery:    draft.EstimatedDelivery,
		ActualDelivery:       draft.ActualDelivery,
	}

	var due *time.Time
	if u.paymentTerms > 0 {
		d := now.Add(u.paymentTerms)
		due = &d
	}
	payment := billing.Open(u.ids.Next(idgen.PrefixPayment), order, due, now)

	if err := u.orders.CreateWithPayment(ctx, order, payment); err != nil {
		return nil, nil, err
	}
	return &order, &payment, nil
}

// Update merges patch into the order with id. When the patch carries a payment
// status every payment of the order is re-derived from its recorded amount.
// Unknown ids are ignored.
func (u *OrderUseCase) Update(ctx context.Context, id string, patch model.OrderPatch) error {
	if patch.CustomerID != nil {
		fallback := ""
		if patch.CustomerName != nil {
			fallback = *patch.CustomerName
		}
		name, err := u.customerName(ctx, *patch.CustomerID, fallback)
		if err != nil {
			return err
		}
		if name != "" {
			patch.CustomerName = &name
		}
	}
	if patch.AssignedEmployeeID != nil {
		fallback := ""
		if patch.AssignedEmployeeName != nil {
			fallback = *patch.AssignedEmployeeName
		}
		name, err := u.employeeName(ctx, *patch.AssignedEmployeeID, fallback)
		if err != nil {
			return err
		}
		if name != "" {
			patch.AssignedEmployeeName = &name
		}
	}

	now := u.now()
	return u.orders.Update(ctx, id, func(order *model.Order, payments []model.Payment) bool {
		patch.Apply(order)
		if patch.PaymentStatus == nil {
			return false
		}
		for i := range payments {
			payments[i] = billing.Derive(payments[i], *patch.PaymentStatus, now)
		}
		return true
	})
}

// List returns orders newest first.
func (u *OrderUseCase) List(ctx context.Context) ([]model.Order, error) {
	return u.orders.List(ctx)
}

func (u *OrderUseCase) customerName(ctx context.Context, id, fallback string) (string, error) {
	if id == "" {
		return fallback, nil
	}
	customer, err := u.customers.Get(ctx, id)
	if err != nil {
		if errors.Is(err, domainErrors.ErrNotFound) {
			return fallback, nil
		}
		return "", err
	}
	return customer.Name, nil
}

func (u *OrderUseCase) employeeName(ctx context.Context, id, fallback string) (string, error) {
	if id == "" {
		return fallback, nil
	}
	employee, err := u.employees.Get(ctx, id)
	if err != nil {
		if errors.Is(err, domainErrors.ErrNotFound) {
			return fallback, nil
		}
		return "", err
	}
	return employee.Name, nil
}

// applyOrderDefaults fills the statuses a new order starts with when the
// draft leaves them empty.
func applyOrderDefaults(draft *model.OrderDraft) {
	if draft.Status == "" {
		draft.Status = model.OrderStatusOrdered
	}
	if draft.PaymentStatus == "" {
		draft.PaymentStatus = model.PaymentStatusBid
	}
}
