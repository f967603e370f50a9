package dto

import (
	"encoding/json"
	"time"

	"github.com/polkiloo/pressdesk/internal/domain/model"
)

// Order is the wire form of an order.
type Order struct {
	ID                   string              `json:"id"`
	CustomerID           string              `json:"customerId"`
	CustomerName         string              `json:"customerName"`
	OrderType            string              `json:"orderType"`
	Description          string              `json:"description"`
	Quantity             int                 `json:"quantity"`
	UnitPrice            float64             `json:"unitPrice"`
	TotalPrice           float64             `json:"totalPrice"`
	OrderDate            time.Time           `json:"orderDate"`
	Status               model.OrderStatus   `json:"status"`
	PaymentStatus        model.PaymentStatus `json:"paymentStatus"`
	AssignedEmployeeID   string              `json:"assignedEmployee"`
	AssignedEmployeeName string              `json:"assignedEmployeeName"`
	EstimatedDelivery    time.Time           `json:"estimatedDelivery"`
	ActualDelivery       *time.Time          `json:"actualDelivery,omitempty"`
}

// FromOrder converts a domain order.
func FromOrder(o model.Order) Order {
	return Order(o)
}

// Model converts o back into the domain type.
func (o Order) Model() model.Order {
	return model.Order(o)
}

// OrderRequest describes the payload of a new order. Identifier, order date
// and total price are assigned by the server.
type OrderRequest struct {
	CustomerID           string              `json:"customerId"`
	CustomerName         string              `json:"customerName"`
	OrderType            string              `json:"orderType"`
	Description          string              `json:"description"`
	Quantity             int                 `json:"quantity"`
	UnitPrice            float64             `json:"unitPrice"`
	Status               model.OrderStatus   `json:"status"`
	PaymentStatus        model.PaymentStatus `json:"paymentStatus"`
	AssignedEmployeeID   string              `json:"assignedEmployee"`
	AssignedEmployeeName string              `json:"assignedEmployeeName"`
	EstimatedDelivery    time.Time           `json:"estimatedDelivery"`
	ActualDelivery       *time.Time          `json:"actualDelivery"`
}

// Draft converts the request into a domain draft.
func (r OrderRequest) Draft() model.OrderDraft {
	return model.OrderDraft(r)
}

// OrderPatch carries the fields present in a partial order update.
type OrderPatch struct {
	CustomerID           *string              `json:"customerId"`
	CustomerName         *string              `json:"customerName"`
	OrderType            *string              `json:"orderType"`
	Description          *string              `json:"description"`
	Quantity             *int                 `json:"quantity"`
	UnitPrice            *float64             `json:"unitPrice"`
	Status               *model.OrderStatus   `json:"status"`
	PaymentStatus        *model.PaymentStatus `json:"paymentStatus"`
	AssignedEmployeeID   *string              `json:"assignedEmployee"`
	AssignedEmployeeName *string              `json:"assignedEmployeeName"`
	EstimatedDelivery    *time.Time           `json:"estimatedDelivery"`
	ActualDelivery       NullableTime         `json:"actualDelivery"`
}

// Patch converts the request into a domain patch. An explicit null
// actualDelivery clears the recorded delivery date.
func (p OrderPatch) Patch() model.OrderPatch {
	return model.OrderPatch{
		CustomerID:           p.CustomerID,
		CustomerName:         p.CustomerName,
		OrderType:            p.OrderType,
		Description:          p.Description,
		Quantity:             p.Quantity,
		UnitPrice:            p.UnitPrice,
		Status:               p.Status,
		PaymentStatus:        p.PaymentStatus,
		AssignedEmployeeID:   p.AssignedEmployeeID,
		AssignedEmployeeName: p.AssignedEmployeeName,
		EstimatedDelivery:    p.EstimatedDelivery,
		ActualDelivery:       p.ActualDelivery.Value,
		ClearActualDelivery:  p.ActualDelivery.Set && p.ActualDelivery.Value == nil,
	}
}

// NullableTime is a timestamp field of a partial update that tells an
// absent field apart from an explicit null.
type NullableTime struct {
	Set   bool
	Value *time.Time
}

// UnmarshalJSON records presence and decodes the timestamp unless it is null.
func (n *NullableTime) UnmarshalJSON(data []byte) error {
	n.Set = true
	if string(data) == "null" {
		n.Value = nil
		return nil
	}
	var t time.Time
	if err := json.Unmarshal(data, &t); err != nil {
		return err
	}
	n.Value = &t
	return nil
}

// PlacedOrder is returned after an order is created together with its payment.
type PlacedOrder struct {
	Order   Order   `json:"order"`
	Payment Payment `json:"payment"`
}
