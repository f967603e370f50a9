package dto

import (
	"time"

	"github.com/polkiloo/pressdesk/internal/domain/model"
)

// Payment is the wire form of a payment record.
type Payment struct {
	ID                string               `json:"id"`
	CustomerID        string               `json:"customerId"`
	OrderID           string               `json:"orderId"`
	Amount            float64              `json:"amount"`
	PaidAmount        float64              `json:"paidAmount"`
	OutstandingAmount float64              `json:"outstandingAmount"`
	PaymentDate       *time.Time           `json:"paymentDate"`
	Status            model.PaymentState   `json:"status"`
	PaymentMethod     *model.PaymentMethod `json:"paymentMethod"`
	DueDate           *time.Time           `json:"dueDate,omitempty"`
	IsOverdue         bool                 `json:"isOverdue"`
	History           []Transaction        `json:"paymentHistory"`
}

// Transaction is a single recorded receipt of money.
type Transaction struct {
	ID     string              `json:"id"`
	Amount float64             `json:"amount"`
	Date   time.Time           `json:"date"`
	Method model.PaymentMethod `json:"method"`
}

// FromPayment converts a domain payment.
func FromPayment(p model.Payment) Payment {
	out := Payment{
		ID:                p.ID,
		CustomerID:        p.CustomerID,
		OrderID:           p.OrderID,
		Amount:            p.Amount,
		PaidAmount:        p.PaidAmount,
		OutstandingAmount: p.OutstandingAmount,
		PaymentDate:       p.PaymentDate,
		Status:            p.Status,
		PaymentMethod:     p.PaymentMethod,
		DueDate:           p.DueDate,
		IsOverdue:         p.IsOverdue,
		History:           make([]Transaction, 0, len(p.History)),
	}
	for _, t := range p.History {
		out.History = append(out.History, Transaction(t))
	}
	return out
}

// Model converts p back into the domain type.
func (p Payment) Model() model.Payment {
	out := model.Payment{
		ID:                p.ID,
		CustomerID:        p.CustomerID,
		OrderID:           p.OrderID,
		Amount:            p.Amount,
		PaidAmount:        p.PaidAmount,
		OutstandingAmount: p.OutstandingAmount,
		PaymentDate:       p.PaymentDate,
		Status:            p.Status,
		PaymentMethod:     p.PaymentMethod,
		DueDate:           p.DueDate,
		IsOverdue:         p.IsOverdue,
	}
	for _, t := range p.History {
		out.History = append(out.History, model.PaymentTransaction(t))
	}
	return out
}

// TransactionRequest describes money received against a payment.
type TransactionRequest struct {
	Amount float64             `json:"amount"`
	Method model.PaymentMethod `json:"method" binding:"required"`
}
