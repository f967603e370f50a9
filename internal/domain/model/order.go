package model

import "time"

// OrderStatus describes production lifecycle of an order.
type OrderStatus string

const (
	OrderStatusOrdered    OrderStatus = "ordered"
	OrderStatusInProgress OrderStatus = "in-progress"
	OrderStatusOnSchedule OrderStatus = "on-schedule"
	OrderStatusCompleted  OrderStatus = "completed"
	OrderStatusShipped    OrderStatus = "shipped"
)

// OrderStatuses lists statuses in lifecycle order.
var OrderStatuses = []OrderStatus{
	OrderStatusOrdered,
	OrderStatusInProgress,
	OrderStatusOnSchedule,
	OrderStatusCompleted,
	OrderStatusShipped,
}

// Valid reports whether s is a known order status.
func (s OrderStatus) Valid() bool {
	for _, known := range OrderStatuses {
		if s == known {
			return true
		}
	}
	return false
}

// Done reports whether the order counts as completed for reporting.
func (s OrderStatus) Done() bool {
	return s == OrderStatusCompleted || s == OrderStatusShipped
}

// PaymentStatus is the billing arrangement agreed for an order.
type PaymentStatus string

const (
	PaymentStatusBid         PaymentStatus = "bid"
	PaymentStatusAdvance     PaymentStatus = "advance"
	PaymentStatusFullPayment PaymentStatus = "full-payment"
	PaymentStatusCredit      PaymentStatus = "credit"
)

// PaymentStatuses lists all billing arrangements.
var PaymentStatuses = []PaymentStatus{
	PaymentStatusBid,
	PaymentStatusAdvance,
	PaymentStatusFullPayment,
	PaymentStatusCredit,
}

// Valid reports whether s is a known payment status.
func (s PaymentStatus) Valid() bool {
	for _, known := range PaymentStatuses {
		if s == known {
			return true
		}
	}
	return false
}

// Order is a customer job with pricing, schedule and assignment.
// CustomerName and AssignedEmployeeName are snapshots taken at write time.
type Order struct {
	ID                   string
	CustomerID           string
	CustomerName         string
	OrderType            string
	Description          string
	Quantity             int
	UnitPrice            float64
	TotalPrice           float64
	OrderDate            time.Time
	Status               OrderStatus
	PaymentStatus        PaymentStatus
	AssignedEmployeeID   string
	AssignedEmployeeName string
	EstimatedDelivery    time.Time
	ActualDelivery       *time.Time
}

// OrderDraft is an order payload without identifier and order date.
type OrderDraft struct {
	CustomerID           string
	CustomerName         string
	OrderType            string
	Description          string
	Quantity             int
	UnitPrice            float64
	Status               OrderStatus
	PaymentStatus        PaymentStatus
	AssignedEmployeeID   string
	AssignedEmployeeName string
	EstimatedDelivery    time.Time
	ActualDelivery       *time.Time
}

// OrderPatch is a partial order update. Nil fields are left untouched.
// ClearActualDelivery removes a recorded delivery date and takes precedence
// over ActualDelivery.
type OrderPatch struct {
	CustomerID           *string
	CustomerName         *string
	OrderType            *string
	Description          *string
	Quantity             *int
	UnitPrice            *float64
	Status               *OrderStatus
	PaymentStatus        *PaymentStatus
	AssignedEmployeeID   *string
	AssignedEmployeeName *string
	EstimatedDelivery    *time.Time
	ActualDelivery       *time.Time
	ClearActualDelivery  bool
}

// Apply merges present fields into o and keeps TotalPrice consistent
// with Quantity and UnitPrice.
func (p OrderPatch) Apply(o *Order) {
	if p.CustomerID != nil {
		o.CustomerID = *p.CustomerID
	}
	if p.CustomerName != nil {
		o.CustomerName = *p.CustomerName
	}
	if p.OrderType != nil {
		o.OrderType = *p.OrderType
	}
	if p.Description != nil {
		o.Description = *p.Description
	}
	if p.Quantity != nil {
		o.Quantity = *p.Quantity
	}
	if p.UnitPrice != nil {
		o.UnitPrice = *p.UnitPrice
	}
	if p.Status != nil {
		o.Status = *p.Status
	}
	if p.PaymentStatus != nil {
		o.PaymentStatus = *p.PaymentStatus
	}
	if p.AssignedEmployeeID != nil {
		o.AssignedEmployeeID = *p.AssignedEmployeeID
	}
	if p.AssignedEmployeeName != nil {
		o.AssignedEmployeeName = *p.AssignedEmployeeName
	}
	if p.EstimatedDelivery != nil {
		o.EstimatedDelivery = *p.EstimatedDelivery
	}
	switch {
	case p.ClearActualDelivery:
		o.ActualDelivery = nil
	case p.ActualDelivery != nil:
		delivered := *p.ActualDelivery
		o.ActualDelivery = &delivered
	}
	if p.Quantity != nil || p.UnitPrice != nil {
		o.TotalPrice = TotalPrice(o.Quantity, o.UnitPrice)
	}
}

// TotalPrice returns the order total for quantity units at unitPrice.
func TotalPrice(quantity int, unitPrice float64) float64 {
	return float64(quantity) * unitPrice
}
