package model

import "time"

// PaymentState tracks how much of an order has been collected.
type PaymentState string

const (
	PaymentStatePaidFull     PaymentState = "paid-full"
	PaymentStatePaidAdvance  PaymentState = "paid-advance"
	PaymentStateUnpaidBid    PaymentState = "unpaid-bid"
	PaymentStateUnpaidCredit PaymentState = "unpaid-credit"
)

// PaymentStates lists all payment record states.
var PaymentStates = []PaymentState{
	PaymentStatePaidFull,
	PaymentStatePaidAdvance,
	PaymentStateUnpaidBid,
	PaymentStateUnpaidCredit,
}

// PaymentMethod names the channel money was received through.
type PaymentMethod string

const (
	PaymentMethodCreditCard   PaymentMethod = "credit-card"
	PaymentMethodBankTransfer PaymentMethod = "bank-transfer"
	PaymentMethodCheck        PaymentMethod = "check"
	PaymentMethodCash         PaymentMethod = "cash"
	PaymentMethodOnline       PaymentMethod = "online"
)

// PaymentMethods lists accepted payment channels.
var PaymentMethods = []PaymentMethod{
	PaymentMethodCreditCard,
	PaymentMethodBankTransfer,
	PaymentMethodCheck,
	PaymentMethodCash,
	PaymentMethodOnline,
}

// Valid reports whether m is a known payment method.
func (m PaymentMethod) Valid() bool {
	for _, known := range PaymentMethods {
		if m == known {
			return true
		}
	}
	return false
}

// Payment is the financial record of a single order.
// Amount is the order total captured when the order was created.
type Payment struct {
	ID                string
	CustomerID        string
	OrderID           string
	Amount            float64
	PaidAmount        float64
	OutstandingAmount float64
	PaymentDate       *time.Time
	Status            PaymentState
	PaymentMethod     *PaymentMethod
	DueDate           *time.Time
	IsOverdue         bool
	History           []PaymentTransaction
}

// PaymentTransaction is a single recorded receipt of money.
type PaymentTransaction struct {
	ID     string
	Amount float64
	Date   time.Time
	Method PaymentMethod
}

// Clone returns a copy of p that shares no mutable state with it.
func (p Payment) Clone() Payment {
	if p.PaymentDate != nil {
		d := *p.PaymentDate
		p.PaymentDate = &d
	}
	if p.PaymentMethod != nil {
		m := *p.PaymentMethod
		p.PaymentMethod = &m
	}
	if p.DueDate != nil {
		d := *p.DueDate
		p.DueDate = &d
	}
	if p.History != nil {
		p.History = append([]PaymentTransaction(nil), p.History...)
	}
	return p
}
