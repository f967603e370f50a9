package usecase

import (
	"context"
	"time"

	"github.com/polkiloo/pressdesk/internal/domain/model"
	"github.com/polkiloo/pressdesk/internal/domain/repository"
	"github.com/polkiloo/pressdesk/internal/idgen"
)

// CustomerUseCase manages the customer directory.
type CustomerUseCase struct {
	customers repository.CustomerRepository
	ids       IDGenerator
	now       func() time.Time
}

// NewCustomerUseCase constructs CustomerUseCase.
func NewCustomerUseCase(customers repository.CustomerRepository, ids IDGenerator) *CustomerUseCase {
	return &CustomerUseCase{customers: customers, ids: ids, now: time.Now}
}

// Add registers a new customer ahead of existing ones.
func (u *CustomerUseCase) Add(ctx context.Context, draft model.CustomerDraft) (*model.Customer, error) {
	customer := model.Customer{
		ID:            u.ids.Next(idgen.PrefixCustomer),
		Name:          draft.Name,
		AccountNumber: draft.AccountNumber,
		CompanyName:   draft.CompanyName,
		ContactNumber: draft.ContactNumber,
		Email:         draft.Email,
		CreatedAt:     u.now(),
	}
	if err := u.customers.Create(ctx, customer); err != nil {
		return nil, err
	}
	return &customer, nil
}

// Update merges patch into the customer with id. Unknown ids are ignored.
func (u *CustomerUseCase) Update(ctx context.Context, id string, patch model.CustomerPatch) error {
	return u.customers.Update(ctx, id, patch.Apply)
}

// Delete removes the customer with id. Orders referencing it are kept.
func (u *CustomerUseCase) Delete(ctx context.Context, id string) error {
	return u.customers.Delete(ctx, id)
}

// List returns customers newest first.
func (u *CustomerUseCase) List(ctx context.Context) ([]model.Customer, error) {
	return u.customers.List(ctx)
}
