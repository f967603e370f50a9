package repository

import (
	"context"

	"github.com/polkiloo/pressdesk/internal/domain/model"
)

// OrderMutation changes an order and the payments referencing it within a
// single unit of work. It reports whether payments were modified.
type OrderMutation func(order *model.Order, payments []model.Payment) bool

// OrderRepository describes persistence operations with orders.
type OrderRepository interface {
	List(ctx context.Context) ([]model.Order, error)
	// CreateWithPayment stores an order together with its payment record.
	CreateWithPayment(ctx context.Context, order model.Order, payment model.Payment) error
	// Update applies mutate to the order with the given id. Unknown ids are a no-op.
	Update(ctx context.Context, id string, mutate OrderMutation) error
}
