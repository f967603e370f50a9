// Package memory keeps all collections in process memory.
package memory

import (
	"context"
	"sync"

	domainErrors "github.com/polkiloo/pressdesk/internal/domain/errors"
	"github.com/polkiloo/pressdesk/internal/domain/model"
	"github.com/polkiloo/pressdesk/internal/domain/repository"
)

// Storage holds the four collections newest first. Every mutation runs under
// a single write lock, so an order and its payment change together.
type Storage struct {
	mu        sync.RWMutex
	customers []model.Customer
	employees []model.Employee
	orders    []model.Order
	payments  []model.Payment
}

type customerRepository struct {
	storage *Storage
}

type employeeRepository struct {
	storage *Storage
}

type orderRepository struct {
	storage *Storage
}

type paymentRepository struct {
	storage *Storage
}

// New creates empty storage.
func New() *Storage {
	return &Storage{}
}

// Factory methods for domain repositories.
func (s *Storage) Customers() repository.CustomerRepository {
	return &customerRepository{storage: s}
}

func (s *Storage) Employees() repository.EmployeeRepository {
	return &employeeRepository{storage: s}
}

func (s *Storage) Orders() repository.OrderRepository {
	return &orderRepository{storage: s}
}

func (s *Storage) Payments() repository.PaymentRepository {
	return &paymentRepository{storage: s}
}

// Seed replaces storage contents with snapshot.
func (s *Storage) Seed(_ context.Context, snapshot model.Snapshot) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.customers = append([]model.Customer(nil), snapshot.Customers...)
	s.employees = append([]model.Employee(nil), snapshot.Employees...)
	s.orders = make([]model.Order, 0, len(snapshot.Orders))
	for _, o := range snapshot.Orders {
		s.orders = append(s.orders, cloneOrder(o))
	}
	s.payments = make([]model.Payment, 0, len(snapshot.Payments))
	for _, p := range snapshot.Payments {
		s.payments = append(s.payments, p.Clone())
	}
	return nil
}

// HealthCheck always succeeds for in-memory storage.
func (s *Storage) HealthCheck(context.Context) error {
	return nil
}

// Close is a no-op kept for parity with durable backends.
func (s *Storage) Close() {}

// --- CustomerRepository implementation ---

func (r *customerRepository) List(context.Context) ([]model.Customer, error) {
	r.storage.mu.RLock()
	defer r.storage.mu.RUnlock()
	return append([]model.Customer(nil), r.storage.customers...), nil
}

func (r *customerRepository) Get(_ context.Context, id string) (*model.Customer, error) {
	r.storage.mu.RLock()
	defer r.storage.mu.RUnlock()
	for _, c := range r.storage.customers {
		if c.ID == id {
			found := c
			return &found, nil
		}
	}
	return nil, domainErrors.ErrNotFound
}

func (r *customerRepository) Create(_ context.Context, customer model.Customer) error {
	r.storage.mu.Lock()
	defer r.storage.mu.Unlock()
	r.storage.customers = prepend(r.storage.customers, customer)
	return nil
}

func (r *customerRepository) Update(_ context.Context, id string, mutate func(*model.Customer)) error {
	r.storage.mu.Lock()
	defer r.storage.mu.Unlock()
	for i := range r.storage.customers {
		if r.storage.customers[i].ID == id {
			mutate(&r.storage.customers[i])
		}
	}
	return nil
}

func (r *customerRepository) Delete(_ context.Context, id string) error {
	r.storage.mu.Lock()
	defer r.storage.mu.Unlock()
	kept := r.storage.customers[:0]
	for _, c := range r.storage.customers {
		if c.ID != id {
			kept = append(kept, c)
		}
	}
	r.storage.customers = kept
	return nil
}

// --- EmployeeRepository implementation ---

func (r *employeeRepository) List(context.Context) ([]model.Employee, error) {
	r.storage.mu.RLock()
	defer r.storage.mu.RUnlock()
	return append([]model.Employee(nil), r.storage.employees...), nil
}

func (r *employeeRepository) Get(_ context.Context, id string) (*model.Employee, error) {
	r.storage.mu.RLock()
	defer r.storage.mu.RUnlock()
	for _, e := range r.storage.employees {
		if e.ID == id {
			found := e
			return &found, nil
		}
	}
	return nil, domainErrors.ErrNotFound
}

// --- OrderRepository implementation ---

func (r *orderRepository) List(context.Context) ([]model.Order, error) {
	r.storage.mu.RLock()
	defer r.storage.mu.RUnlock()
	result := make([]model.Order, 0, len(r.storage.orders))
	for _, o := range r.storage.orders {
		result = append(result, cloneOrder(o))
	}
	return result, nil
}

func (r *orderRepository) CreateWithPayment(_ context.Context, order model.Order, payment model.Payment) error {
	r.storage.mu.Lock()
	defer r.storage.mu.Unlock()
	r.storage.orders = prepend(r.storage.orders, cloneOrder(order))
	r.storage.payments = prepend(r.storage.payments, payment.Clone())
	return nil
}

func (r *orderRepository) Update(_ context.Context, id string, mutate repository.OrderMutation) error {
	r.storage.mu.Lock()
	defer r.storage.mu.Unlock()

	idx := -1
	for i := range r.storage.orders {
		if r.storage.orders[i].ID == id {
			idx = i
			break
		}
	}
	if idx < 0 {
		return nil
	}

	var (
		positions []int
		payments  []model.Payment
	)
	for i, p := range r.storage.payments {
		if p.OrderID == id {
			positions = append(positions, i)
			payments = append(payments, p.Clone())
		}
	}

	order := cloneOrder(r.storage.orders[idx])
	changed := mutate(&order, payments)
	r.storage.orders[idx] = order
	if changed {
		for i, pos := range positions {
			r.storage.payments[pos] = payments[i]
		}
	}
	return nil
}

// --- PaymentRepository implementation ---

func (r *paymentRepository) List(context.Context) ([]model.Payment, error) {
	r.storage.mu.RLock()
	defer r.storage.mu.RUnlock()
	result := make([]model.Payment, 0, len(r.storage.payments))
	for _, p := range r.storage.payments {
		result = append(result, p.Clone())
	}
	return result, nil
}

func (r *paymentRepository) Update(_ context.Context, id string, mutate repository.PaymentMutation) error {
	r.storage.mu.Lock()
	defer r.storage.mu.Unlock()
	for i := range r.storage.payments {
		if r.storage.payments[i].ID == id {
			p := r.storage.payments[i].Clone()
			if err := mutate(&p); err != nil {
				return err
			}
			r.storage.payments[i] = p
		}
	}
	return nil
}

func prepend[T any](items []T, item T) []T {
	result := make([]T, 0, len(items)+1)
	result = append(result, item)
	return append(result, items...)
}

func cloneOrder(o model.Order) model.Order {
	if o.ActualDelivery != nil {
		d := *o.ActualDelivery
		o.ActualDelivery = &d
	}
	return o
}
