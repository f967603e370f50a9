package repository

import (
	"context"

	"github.com/polkiloo/pressdesk/internal/domain/model"
)

// CustomerRepository describes persistence operations for customers.
// Update and Delete on an unknown identifier succeed without effect.
type CustomerRepository interface {
	List(ctx context.Context) ([]model.Customer, error)
	Get(ctx context.Context, id string) (*model.Customer, error)
	Create(ctx context.Context, customer model.Customer) error
	Update(ctx context.Context, id string, mutate func(*model.Customer)) error
	Delete(ctx context.Context, id string) error
}
