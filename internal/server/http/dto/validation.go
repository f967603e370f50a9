package dto

import domainErrors "github.com/polkiloo/pressdesk/internal/domain/errors"

// Validate checks enum values and pricing of a new order. Empty statuses are
// accepted and defaulted when the order is placed.
func (r OrderRequest) Validate() error {
	if r.Status != "" && !r.Status.Valid() {
		return domainErrors.ErrInvalidStatus
	}
	if r.PaymentStatus != "" && !r.PaymentStatus.Valid() {
		return domainErrors.ErrInvalidStatus
	}
	return validatePricing(&r.Quantity, &r.UnitPrice)
}

// Validate checks the present fields of a partial order update.
func (p OrderPatch) Validate() error {
	if p.Status != nil && !p.Status.Valid() {
		return domainErrors.ErrInvalidStatus
	}
	if p.PaymentStatus != nil && !p.PaymentStatus.Valid() {
		return domainErrors.ErrInvalidStatus
	}
	return validatePricing(p.Quantity, p.UnitPrice)
}

func validatePricing(quantity *int, unitPrice *float64) error {
	if quantity != nil && *quantity <= 0 {
		return domainErrors.ErrInvalidQuantity
	}
	if unitPrice != nil && *unitPrice < 0 {
		return domainErrors.ErrInvalidAmount
	}
	return nil
}
