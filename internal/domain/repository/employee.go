package repository

import (
	"context"

	"github.com/polkiloo/pressdesk/internal/domain/model"
)

// EmployeeRepository gives read access to the staff directory.
type EmployeeRepository interface {
	List(ctx context.Context) ([]model.Employee, error)
	Get(ctx context.Context, id string) (*model.Employee, error)
}
