package usecase

import (
	"context"
	"fmt"
	"time"

	domainErrors "github.com/polkiloo/pressdesk/internal/domain/errors"
	"github.com/polkiloo/pressdesk/internal/domain/model"
	"github.com/polkiloo/pressdesk/internal/domain/repository"
	"github.com/polkiloo/pressdesk/internal/idgen"
)

// PaymentUseCase manages collection of money against payment records.
type PaymentUseCase struct {
	payments repository.PaymentRepository
	ids      IDGenerator
	now      func() time.Time
}

// NewPaymentUseCase constructs PaymentUseCase.
func NewPaymentUseCase(payments repository.PaymentRepository, ids IDGenerator) *PaymentUseCase {
	return &PaymentUseCase{payments: payments, ids: ids, now: time.Now}
}

// List returns payments newest first.
func (u *PaymentUseCase) List(ctx context.Context) ([]model.Payment, error) {
	return u.payments.List(ctx)
}

// settleTolerance absorbs float rounding below half a cent when comparing
// amounts against the outstanding balance.
const settleTolerance = 0.005

// RecordPayment books amount received through method against payment id.
// The amount may not exceed the outstanding balance. A payment that becomes
// settled moves to paid-full, a partly collected one to paid-advance.
func (u *PaymentUseCase) RecordPayment(ctx context.Context, id string, amount float64, method model.PaymentMethod) error {
	if amount <= 0 {
		return domainErrors.ErrInvalidAmount
	}
	if !method.Valid() {
		return domainErrors.ErrInvalidStatus
	}

	now := u.now()
	txn := model.PaymentTransaction{
		ID:     u.ids.Next(idgen.PrefixTransaction),
		Amount: amount,
		Date:   now,
		Method: method,
	}
	return u.payments.Update(ctx, id, func(p *model.Payment) error {
		if amount > p.OutstandingAmount+settleTolerance {
			return fmt.Errorf("%w: %.2f exceeds outstanding %.2f", domainErrors.ErrInvalidAmount, amount, p.OutstandingAmount)
		}
		p.PaidAmount += amount
		if p.Amount-p.PaidAmount < settleTolerance {
			p.PaidAmount = p.Amount
			p.Status = model.PaymentStatePaidFull
		} else {
			p.Status = model.PaymentStatePaidAdvance
		}
		p.OutstandingAmount = p.Amount - p.PaidAmount
		p.IsOverdue = p.IsOverdue && IsOverdue(*p, now)
		used := method
		p.PaymentMethod = &used
		if p.PaymentDate == nil {
			paidAt := now
			p.PaymentDate = &paidAt
		}
		p.History = append(p.History, txn)
		return nil
	})
}

// MarkOverdue sets the overdue flag of payment id. The flag is only written
// when it agrees with the payment's balance and due date at the time of the
// write, so a request based on an outdated read is ignored.
func (u *PaymentUseCase) MarkOverdue(ctx context.Context, id string, overdue bool) error {
	now := u.now()
	return u.payments.Update(ctx, id, func(p *model.Payment) error {
		if IsOverdue(*p, now) == overdue {
			p.IsOverdue = overdue
		}
		return nil
	})
}

// OverdueCandidates returns payments with a due date whose overdue flag may
// need to change: those with money outstanding and those still flagged.
func (u *PaymentUseCase) OverdueCandidates(ctx context.Context) ([]model.Payment, error) {
	all, err := u.payments.List(ctx)
	if err != nil {
		return nil, err
	}
	candidates := make([]model.Payment, 0, len(all))
	for _, p := range all {
		if p.DueDate != nil && (p.OutstandingAmount > 0 || p.IsOverdue) {
			candidates = append(candidates, p)
		}
	}
	return candidates, nil
}

// IsOverdue reports whether p should be flagged overdue at now.
func IsOverdue(p model.Payment, now time.Time) bool {
	return p.OutstandingAmount > 0 && p.DueDate != nil && p.DueDate.Before(now)
}
