package dto

import (
	"math"

	"github.com/polkiloo/pressdesk/internal/domain/model"
)

// Stats is the wire form of dashboard statistics. AverageOrderValue is null
// when there are no orders to average.
type Stats struct {
	TotalCustomers    int      `json:"totalCustomers"`
	TotalOrders       int      `json:"totalOrders"`
	CompletedOrders   int      `json:"completedOrders"`
	PendingPayments   int      `json:"pendingPayments"`
	OverduePayments   int      `json:"overduePayments"`
	ActiveEmployees   int      `json:"activeEmployees"`
	TotalRevenue      float64  `json:"totalRevenue"`
	AverageOrderValue *float64 `json:"averageOrderValue"`
}

// FromStats converts domain statistics.
func FromStats(s model.DashboardStats) Stats {
	out := Stats{
		TotalCustomers:  s.TotalCustomers,
		TotalOrders:     s.TotalOrders,
		CompletedOrders: s.CompletedOrders,
		PendingPayments: s.PendingPayments,
		OverduePayments: s.OverduePayments,
		ActiveEmployees: s.ActiveEmployees,
		TotalRevenue:    s.TotalRevenue,
	}
	if avg := s.AverageOrderValue; !math.IsNaN(avg) && !math.IsInf(avg, 0) {
		out.AverageOrderValue = &avg
	}
	return out
}

// Bucket is a named count.
type Bucket struct {
	Name  string `json:"name"`
	Count int    `json:"count"`
}

// Point is a named chart value.
type Point struct {
	Name  string  `json:"name"`
	Value float64 `json:"value"`
}

// Breakdown groups chart buckets and series.
type Breakdown struct {
	OrdersByStatus   []Bucket `json:"ordersByStatus"`
	PaymentsByStatus []Bucket `json:"paymentsByStatus"`
	OrdersByType     []Bucket `json:"ordersByType"`
	DailyRevenue     []Point  `json:"dailyRevenue"`
	MonthlyRevenue   []Point  `json:"monthlyRevenue"`
	TopEmployees     []Point  `json:"topEmployees"`
	OrdersThisMonth  int      `json:"ordersThisMonth"`
}

// FromBreakdown converts a domain breakdown.
func FromBreakdown(b model.Breakdown) Breakdown {
	return Breakdown{
		OrdersByStatus:   buckets(b.OrdersByStatus),
		PaymentsByStatus: buckets(b.PaymentsByStatus),
		OrdersByType:     buckets(b.OrdersByType),
		DailyRevenue:     points(b.DailyRevenue),
		MonthlyRevenue:   points(b.MonthlyRevenue),
		TopEmployees:     points(b.TopEmployees),
		OrdersThisMonth:  b.OrdersThisMonth,
	}
}

func points(in []model.Point) []Point {
	out := make([]Point, 0, len(in))
	for _, p := range in {
		out = append(out, Point(p))
	}
	return out
}

func buckets(in []model.Bucket) []Bucket {
	out := make([]Bucket, 0, len(in))
	for _, b := range in {
		out = append(out, Bucket(b))
	}
	return out
}

// Table is an export table.
type Table struct {
	Title   string     `json:"title"`
	Columns []string   `json:"columns"`
	Rows    [][]string `json:"rows"`
}

// FromTable converts a domain table.
func FromTable(t model.Table) Table {
	rows := t.Rows
	if rows == nil {
		rows = [][]string{}
	}
	return Table{Title: t.Title, Columns: t.Columns, Rows: rows}
}
