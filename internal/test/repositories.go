package test

import (
	"context"
	"strconv"
	"sync"

	domainErrors "github.com/polkiloo/pressdesk/internal/domain/errors"
	"github.com/polkiloo/pressdesk/internal/domain/model"
	"github.com/polkiloo/pressdesk/internal/domain/repository"
)

// CustomerRepositoryStub keeps customers in a slice unless overridden.
type CustomerRepositoryStub struct {
	Customers []model.Customer
	Err       error
	GetFn     func(context.Context, string) (*model.Customer, error)
}

// List returns stored customers.
func (s *CustomerRepositoryStub) List(ctx context.Context) ([]model.Customer, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	return append([]model.Customer(nil), s.Customers...), nil
}

// Get returns customer by id or not found.
func (s *CustomerRepositoryStub) Get(ctx context.Context, id string) (*model.Customer, error) {
	if s.GetFn != nil {
		return s.GetFn(ctx, id)
	}
	if s.Err != nil {
		return nil, s.Err
	}
	for _, c := range s.Customers {
		if c.ID == id {
			found := c
			return &found, nil
		}
	}
	return nil, domainErrors.ErrNotFound
}

// Create prepends customer.
func (s *CustomerRepositoryStub) Create(ctx context.Context, customer model.Customer) error {
	if s.Err != nil {
		return s.Err
	}
	s.Customers = append([]model.Customer{customer}, s.Customers...)
	return nil
}

// Update mutates matching customer.
func (s *CustomerRepositoryStub) Update(ctx context.Context, id string, mutate func(*model.Customer)) error {
	if s.Err != nil {
		return s.Err
	}
	for i := range s.Customers {
		if s.Customers[i].ID == id {
			mutate(&s.Customers[i])
		}
	}
	return nil
}

// Delete removes matching customer.
func (s *CustomerRepositoryStub) Delete(ctx context.Context, id string) error {
	if s.Err != nil {
		return s.Err
	}
	kept := make([]model.Customer, 0, len(s.Customers))
	for _, c := range s.Customers {
		if c.ID != id {
			kept = append(kept, c)
		}
	}
	s.Customers = kept
	return nil
}

// EmployeeRepositoryStub serves a fixed staff list.
type EmployeeRepositoryStub struct {
	Employees []model.Employee
	Err       error
}

// List returns configured employees.
func (s *EmployeeRepositoryStub) List(ctx context.Context) ([]model.Employee, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	return append([]model.Employee(nil), s.Employees...), nil
}

// Get returns employee by id or not found.
func (s *EmployeeRepositoryStub) Get(ctx context.Context, id string) (*model.Employee, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	for _, e := range s.Employees {
		if e.ID == id {
			found := e
			return &found, nil
		}
	}
	return nil, domainErrors.ErrNotFound
}

// OrderRepositoryStub allows tests to customize behaviour.
type OrderRepositoryStub struct {
	ListFn   func(context.Context) ([]model.Order, error)
	CreateFn func(context.Context, model.Order, model.Payment) error
	UpdateFn func(context.Context, string, repository.OrderMutation) error
}

// List delegates to override or returns nothing.
func (s *OrderRepositoryStub) List(ctx context.Context) ([]model.Order, error) {
	if s.ListFn != nil {
		return s.ListFn(ctx)
	}
	return nil, nil
}

// CreateWithPayment delegates to override.
func (s *OrderRepositoryStub) CreateWithPayment(ctx context.Context, order model.Order, payment model.Payment) error {
	if s.CreateFn != nil {
		return s.CreateFn(ctx, order, payment)
	}
	return nil
}

// Update delegates to override.
func (s *OrderRepositoryStub) Update(ctx context.Context, id string, mutate repository.OrderMutation) error {
	if s.UpdateFn != nil {
		return s.UpdateFn(ctx, id, mutate)
	}
	return nil
}

// PaymentRepositoryStub allows tests to customize behaviour.
type PaymentRepositoryStub struct {
	ListFn   func(context.Context) ([]model.Payment, error)
	UpdateFn func(context.Context, string, repository.PaymentMutation) error
}

// List delegates to override or returns nothing.
func (s *PaymentRepositoryStub) List(ctx context.Context) ([]model.Payment, error) {
	if s.ListFn != nil {
		return s.ListFn(ctx)
	}
	return nil, nil
}

// Update delegates to override.
func (s *PaymentRepositoryStub) Update(ctx context.Context, id string, mutate repository.PaymentMutation) error {
	if s.UpdateFn != nil {
		return s.UpdateFn(ctx, id, mutate)
	}
	return nil
}

// SequentialIDs hands out predictable identifiers of the form PREFIX-n.
type SequentialIDs struct {
	mu   sync.Mutex
	next int
}

// Next returns the next identifier for prefix.
func (g *SequentialIDs) Next(prefix string) string {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.next++
	return prefix + "-" + strconv.Itoa(g.next)
}
