package usecase

import (
	"context"
	"sort"
	"strings"
	"time"

	domainErrors "github.com/polkiloo/pressdesk/internal/domain/errors"
	"github.com/polkiloo/pressdesk/internal/domain/model"
	"github.com/polkiloo/pressdesk/internal/domain/repository"
)

// ReportKind names an exportable table.
type ReportKind string

const (
	ReportCustomers ReportKind = "customers"
	ReportOrders    ReportKind = "orders"
	ReportPayments  ReportKind = "payments"
	ReportEmployees ReportKind = "employees"
	ReportSummary   ReportKind = "summary"
)

const topEmployeesLimit = 5

// ReportUseCase derives read-only figures from all collections.
type ReportUseCase struct {
	customers repository.CustomerRepository
	employees repository.EmployeeRepository
	orders    repository.OrderRepository
	payments  repository.PaymentRepository
	now       func() time.Time
}

// NewReportUseCase constructs ReportUseCase.
func NewReportUseCase(
	customers repository.CustomerRepository,
	employees repository.EmployeeRepository,
	orders repository.OrderRepository,
	payments repository.PaymentRepository,
) *ReportUseCase {
	return &ReportUseCase{customers: customers, employees: employees, orders: orders, payments: payments, now: time.Now}
}

// Summary computes dashboard statistics.
func (u *ReportUseCase) Summary(ctx context.Context) (model.DashboardStats, error) {
	snap, err := u.snapshot(ctx)
	if err != nil {
		return model.DashboardStats{}, err
	}
	return Summarize(snap), nil
}

// Breakdown groups orders and payments for charts and computes revenue
// trends relative to the current time.
func (u *ReportUseCase) Breakdown(ctx context.Context) (model.Breakdown, error) {
	snap, err := u.snapshot(ctx)
	if err != nil {
		return model.Breakdown{}, err
	}
	now := u.now()

	byStatus := make(map[model.OrderStatus]int)
	byType := make(map[string]int)
	var b model.Breakdown
	for _, o := range snap.Orders {
		byStatus[o.Status]++
		byType[o.OrderType]++
		if sameMonth(o.OrderDate, now) {
			b.OrdersThisMonth++
		}
	}
	byState := make(map[model.PaymentState]int)
	for _, p := range snap.Payments {
		byState[p.Status]++
	}

	for _, s := range model.OrderStatuses {
		b.OrdersByStatus = append(b.OrdersByStatus, model.Bucket{Name: string(s), Count: byStatus[s]})
	}
	for _, s := range model.PaymentStates {
		b.PaymentsByStatus = append(b.PaymentsByStatus, model.Bucket{Name: string(s), Count: byState[s]})
	}
	for name, count := range byType {
		b.OrdersByType = append(b.OrdersByType, model.Bucket{Name: name, Count: count})
	}
	sort.Slice(b.OrdersByType, func(i, j int) bool {
		if b.OrdersByType[i].Count != b.OrdersByType[j].Count {
			return b.OrdersByType[i].Count > b.OrdersByType[j].Count
		}
		return b.OrdersByType[i].Name < b.OrdersByType[j].Name
	})

	b.DailyRevenue = DailyRevenue(snap.Payments, now)
	b.MonthlyRevenue = MonthlyRevenue(snap.Payments, now)
	b.TopEmployees = TopEmployees(snap.Employees, topEmployeesLimit)
	return b, nil
}

// DailyRevenue sums paid amounts by payment day over the seven days ending
// on now's day, oldest first. Points are named by short weekday.
func DailyRevenue(payments []model.Payment, now time.Time) []model.Point {
	loc := now.Location()
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, loc)
	points := make([]model.Point, 7)
	for i := range points {
		points[i].Name = today.AddDate(0, 0, i-6).Format("Mon")
	}
	for _, p := range payments {
		if p.PaymentDate == nil {
			continue
		}
		paid := p.PaymentDate.In(loc)
		day := time.Date(paid.Year(), paid.Month(), paid.Day(), 0, 0, 0, 0, loc)
		offset := int(today.Sub(day).Hours()/24 + 0.5)
		if day.After(today) || offset > 6 {
			continue
		}
		points[6-offset].Value += p.PaidAmount
	}
	return points
}

// MonthlyRevenue sums paid amounts by payment month over the calendar year
// of now. Points are named by short month.
func MonthlyRevenue(payments []model.Payment, now time.Time) []model.Point {
	loc := now.Location()
	points := make([]model.Point, 12)
	for i := range points {
		points[i].Name = time.Month(i + 1).String()[:3]
	}
	for _, p := range payments {
		if p.PaymentDate == nil {
			continue
		}
		paid := p.PaymentDate.In(loc)
		if paid.Year() != now.Year() {
			continue
		}
		points[paid.Month()-1].Value += p.PaidAmount
	}
	return points
}

// TopEmployees ranks employees by completed tasks and returns at most limit
// of them, named by first name. Ties keep collection order.
func TopEmployees(employees []model.Employee, limit int) []model.Point {
	ranked := append([]model.Employee(nil), employees...)
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].CompletedTasks > ranked[j].CompletedTasks
	})
	if len(ranked) > limit {
		ranked = ranked[:limit]
	}
	points := make([]model.Point, 0, len(ranked))
	for _, e := range ranked {
		name, _, _ := strings.Cut(e.Name, " ")
		points = append(points, model.Point{Name: name, Value: float64(e.CompletedTasks)})
	}
	return points
}

func sameMonth(t, now time.Time) bool {
	t = t.In(now.Location())
	return t.Year() == now.Year() && t.Month() == now.Month()
}

// Export renders the table of the given kind.
func (u *ReportUseCase) Export(ctx context.Context, kind ReportKind) (*model.Table, error) {
	snap, err := u.snapshot(ctx)
	if err != nil {
		return nil, err
	}
	switch kind {
	case ReportCustomers:
		return CustomersTable(snap.Customers), nil
	case ReportOrders:
		return OrdersTable(snap.Orders), nil
	case ReportPayments:
		return PaymentsTable(snap.Payments), nil
	case ReportEmployees:
		return EmployeesTable(snap.Employees), nil
	case ReportSummary:
		return SummaryTable(Summarize(snap)), nil
	default:
		return nil, domainErrors.ErrUnknownReportKind
	}
}

func (u *ReportUseCase) snapshot(ctx context.Context) (model.Snapshot, error) {
	var (
		snap model.Snapshot
		err  error
	)
	if snap.Customers, err = u.customers.List(ctx); err != nil {
		return snap, err
	}
	if snap.Employees, err = u.employees.List(ctx); err != nil {
		return snap, err
	}
	if snap.Orders, err = u.orders.List(ctx); err != nil {
		return snap, err
	}
	if snap.Payments, err = u.payments.List(ctx); err != nil {
		return snap, err
	}
	return snap, nil
}

// Summarize computes dashboard statistics over snap. The average order value
// is a plain division and therefore NaN for an empty order list.
func Summarize(snap model.Snapshot) model.DashboardStats {
	stats := model.DashboardStats{
		TotalCustomers:  len(snap.Customers),
		TotalOrders:     len(snap.Orders),
		ActiveEmployees: len(snap.Employees),
	}

	var orderTotal float64
	for _, o := range snap.Orders {
		orderTotal += o.TotalPrice
		if o.Status.Done() {
			stats.CompletedOrders++
		}
	}
	for _, p := range snap.Payments {
		stats.TotalRevenue += p.PaidAmount
		if p.OutstandingAmount > 0 {
			stats.PendingPayments++
		}
		if p.IsOverdue {
			stats.OverduePayments++
		}
	}

	count := float64(len(snap.Orders))
	stats.AverageOrderValue = orderTotal / count
	return stats
}
