package model

// DashboardStats aggregates headline figures over all collections.
// AverageOrderValue is NaN when there are no orders.
type DashboardStats struct {
	TotalCustomers    int
	TotalOrders       int
	CompletedOrders   int
	PendingPayments   int
	OverduePayments   int
	ActiveEmployees   int
	TotalRevenue      float64
	AverageOrderValue float64
}

// Bucket is a named count used by breakdown charts.
type Bucket struct {
	Name  string
	Count int
}

// Point is a named amount in a chart series.
type Point struct {
	Name  string
	Value float64
}

// Breakdown groups orders and payments by their categorical fields and
// carries the revenue trends and staff ranking shown next to them.
//
// DailyRevenue covers the seven days ending today, oldest first.
// MonthlyRevenue covers January to December of the current year.
type Breakdown struct {
	OrdersByStatus   []Bucket
	PaymentsByStatus []Bucket
	OrdersByType     []Bucket
	DailyRevenue     []Point
	MonthlyRevenue   []Point
	TopEmployees     []Point
	OrdersThisMonth  int
}

// Table is a tabular projection of a collection ready for export.
type Table struct {
	Title   string
	Columns []string
	Rows    [][]string
}

// Snapshot holds the contents of all four collections, newest first.
type Snapshot struct {
	Customers []Customer
	Employees []Employee
	Orders    []Order
	Payments  []Payment
}
