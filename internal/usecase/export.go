package usecase

import (
	"fmt"
	"strconv"
	"time"

	"github.com/polkiloo/pressdesk/internal/domain/model"
)

const exportDateLayout = "Jan 2, 2006"

// CustomersTable projects customers into export rows.
func CustomersTable(customers []model.Customer) *model.Table {
	t := &model.Table{
		Title:   "Customers Report",
		Columns: []string{"Customer ID", "Name", "Account Number", "Company Name", "Contact Number", "Email", "Created Date"},
		Rows:    make([][]string, 0, len(customers)),
	}
	for _, c := range customers {
		t.Rows = append(t.Rows, []string{
			c.ID, c.Name, c.AccountNumber, c.CompanyName, c.ContactNumber, c.Email, formatDate(c.CreatedAt),
		})
	}
	return t
}

// OrdersTable projects orders into export rows.
func OrdersTable(orders []model.Order) *model.Table {
	t := &model.Table{
		Title: "Orders Report",
		Columns: []string{
			"Order ID", "Customer Name", "Order Type", "Description", "Quantity", "Unit Price", "Total Price",
			"Order Date", "Status", "Payment Status", "Assigned Employee", "Estimated Delivery", "Actual Delivery",
		},
		Rows: make([][]string, 0, len(orders)),
	}
	for _, o := range orders {
		actual := "Pending"
		if o.ActualDelivery != nil {
			actual = formatDate(*o.ActualDelivery)
		}
		t.Rows = append(t.Rows, []string{
			o.ID,
			o.CustomerName,
			o.OrderType,
			o.Description,
			strconv.Itoa(o.Quantity),
			formatMoney(o.UnitPrice),
			formatMoney(o.TotalPrice),
			formatDate(o.OrderDate),
			string(o.Status),
			string(o.PaymentStatus),
			o.AssignedEmployeeName,
			formatDate(o.EstimatedDelivery),
			actual,
		})
	}
	return t
}

// PaymentsTable projects payments into export rows.
func PaymentsTable(payments []model.Payment) *model.Table {
	t := &model.Table{
		Title: "Payments Report",
		Columns: []string{
			"Payment ID", "Order ID", "Total Amount", "Paid Amount", "Outstanding Amount", "Payment Date", "Status", "Payment Method",
		},
		Rows: make([][]string, 0, len(payments)),
	}
	for _, p := range payments {
		paidAt := "Not Paid"
		if p.PaymentDate != nil {
			paidAt = formatDate(*p.PaymentDate)
		}
		method := "N/A"
		if p.PaymentMethod != nil {
			method = string(*p.PaymentMethod)
		}
		t.Rows = append(t.Rows, []string{
			p.ID,
			p.OrderID,
			formatMoney(p.Amount),
			formatMoney(p.PaidAmount),
			formatMoney(p.OutstandingAmount),
			paidAt,
			string(p.Status),
			method,
		})
	}
	return t
}

// EmployeesTable projects employees into export rows.
func EmployeesTable(employees []model.Employee) *model.Table {
	t := &model.Table{
		Title: "Employees Report",
		Columns: []string{
			"Employee ID", "Name", "Role", "Responsibility", "Assigned Orders", "Completed Tasks", "Performance Rating",
		},
		Rows: make([][]string, 0, len(employees)),
	}
	for _, e := range employees {
		t.Rows = append(t.Rows, []string{
			e.ID,
			e.Name,
			e.Role,
			e.Responsibility,
			strconv.Itoa(e.AssignedOrders),
			strconv.Itoa(e.CompletedTasks),
			strconv.FormatFloat(e.PerformanceRating, 'f', 1, 64),
		})
	}
	return t
}

// SummaryTable renders headline statistics as metric rows.
func SummaryTable(stats model.DashboardStats) *model.Table {
	return &model.Table{
		Title:   "Business Summary Report",
		Columns: []string{"Metric", "Value", "Details"},
		Rows: [][]string{
			{"Total Customers", strconv.Itoa(stats.TotalCustomers), "Active customer accounts"},
			{"Total Orders", strconv.Itoa(stats.TotalOrders), "All orders placed"},
			{"Total Revenue", formatMoney(stats.TotalRevenue), "Total payments received"},
			{"Pending Payments", strconv.Itoa(stats.PendingPayments), "Orders with outstanding balance"},
			{"Overdue Payments", strconv.Itoa(stats.OverduePayments), "Outstanding balance past due date"},
			{"Active Employees", strconv.Itoa(stats.ActiveEmployees), "Current workforce"},
			{"Completed Orders", strconv.Itoa(stats.CompletedOrders), "Successfully delivered orders"},
		},
	}
}

func formatMoney(v float64) string {
	return fmt.Sprintf("$%.2f", v)
}

func formatDate(t time.Time) string {
	if t.IsZero() {
		return "N/A"
	}
	return t.Format(exportDateLayout)
}
