package model

// Employee is a staff member orders can be assigned to.
type Employee struct {
	ID                string
	Name              string
	Role              string
	Responsibility    string
	AssignedOrders    int
	CompletedTasks    int
	PerformanceRating float64
}
