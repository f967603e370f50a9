package repository

import (
	"context"

	"github.com/polkiloo/pressdesk/internal/domain/model"
)

// Factory describes access to different domain repositories.
type Factory interface {
	Customers() CustomerRepository
	Employees() EmployeeRepository
	Orders() OrderRepository
	Payments() PaymentRepository
}

// Seeder loads an initial snapshot into empty storage.
type Seeder interface {
	Seed(ctx context.Context, snapshot model.Snapshot) error
}
