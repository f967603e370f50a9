package usecase

import (
	"context"

	"github.com/polkiloo/pressdesk/internal/domain/model"
	"github.com/polkiloo/pressdesk/internal/domain/repository"
)

// EmployeeUseCase exposes the read-only staff directory.
type EmployeeUseCase struct {
	employees repository.EmployeeRepository
}

// NewEmployeeUseCase constructs EmployeeUseCase.
func NewEmployeeUseCase(employees repository.EmployeeRepository) *EmployeeUseCase {
	return &EmployeeUseCase{employees: employees}
}

// List returns all employees.
func (u *EmployeeUseCase) List(ctx context.Context) ([]model.Employee, error) {
	return u.employees.List(ctx)
}
