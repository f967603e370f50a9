package repository

import (
	"context"

	"github.com/polkiloo/pressdesk/internal/domain/model"
)

// PaymentMutation changes a payment within a single unit of work. A non-nil
// error discards the change and is returned from Update.
type PaymentMutation func(payment *model.Payment) error

// PaymentRepository describes persistence operations with payments.
type PaymentRepository interface {
	List(ctx context.Context) ([]model.Payment, error)
	// Update applies mutate to the payment with the given id. Unknown ids are a no-op.
	Update(ctx context.Context, id string, mutate PaymentMutation) error
}
