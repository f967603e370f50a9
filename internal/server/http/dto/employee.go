package dto

import "github.com/polkiloo/pressdesk/internal/domain/model"

// Employee is the wire form of a staff member.
type Employee struct {
	ID                string  `json:"id"`
	Name              string  `json:"name"`
	Role              string  `json:"role"`
	Responsibility    string  `json:"responsibility"`
	AssignedOrders    int     `json:"assignedOrders"`
	CompletedTasks    int     `json:"completedTasks"`
	PerformanceRating float64 `json:"performanceRating"`
}

// FromEmployee converts a domain employee.
func FromEmployee(e model.Employee) Employee {
	return Employee(e)
}

// Model converts e back into the domain type.
func (e Employee) Model() model.Employee {
	return model.Employee(e)
}
