// Package billing keeps payment records in step with the billing
// arrangement chosen on their orders.
package billing

import (
	"time"

	"github.com/polkiloo/pressdesk/internal/domain/model"
)

// Derive re-computes paid and outstanding amounts, state and payment date of
// p for the given order payment status. Amount is never changed.
//
// full-payment and advance only ever set PaymentDate forward from unset.
// bid and credit return the record to a never-paid state: PaymentDate,
// PaymentMethod and the receipt History are cleared along with PaidAmount.
func Derive(p model.Payment, status model.PaymentStatus, now time.Time) model.Payment {
	switch status {
	case model.PaymentStatusFullPayment:
		p.PaidAmount = p.Amount
		p.Status = model.PaymentStatePaidFull
		p.PaymentDate = stamp(p.PaymentDate, now)
	case model.PaymentStatusAdvance:
		p.Status = model.PaymentStatePaidAdvance
		p.PaymentDate = stamp(p.PaymentDate, now)
	case model.PaymentStatusBid:
		p.PaidAmount = 0
		p.Status = model.PaymentStateUnpaidBid
		unpaid(&p)
	case model.PaymentStatusCredit:
		p.PaidAmount = 0
		p.Status = model.PaymentStateUnpaidCredit
		unpaid(&p)
	}
	p.OutstandingAmount = p.Amount - p.PaidAmount
	return p
}

// Open builds the payment record of a freshly created order.
func Open(id string, order model.Order, dueDate *time.Time, now time.Time) model.Payment {
	p := model.Payment{
		ID:         id,
		CustomerID: order.CustomerID,
		OrderID:    order.ID,
		Amount:     order.TotalPrice,
		DueDate:    dueDate,
	}
	return Derive(p, order.PaymentStatus, now)
}

func unpaid(p *model.Payment) {
	p.PaymentDate = nil
	p.PaymentMethod = nil
	p.History = nil
}

func stamp(current *time.Time, now time.Time) *time.Time {
	if current != nil {
		return current
	}
	t := now
	return &t
}
