package dto

import (
	"time"

	"github.com/polkiloo/pressdesk/internal/domain/model"
)

// Customer is the wire form of a customer record.
type Customer struct {
	ID            string    `json:"id"`
	Name          string    `json:"name"`
	AccountNumber string    `json:"accountNumber"`
	CompanyName   string    `json:"companyName"`
	ContactNumber string    `json:"contactNumber"`
	Email         string    `json:"email"`
	CreatedAt     time.Time `json:"createdAt"`
}

// FromCustomer converts a domain customer.
func FromCustomer(c model.Customer) Customer {
	return Customer{
		ID:            c.ID,
		Name:          c.Name,
		AccountNumber: c.AccountNumber,
		CompanyName:   c.CompanyName,
		ContactNumber: c.ContactNumber,
		Email:         c.Email,
		CreatedAt:     c.CreatedAt,
	}
}

// Model converts c back into the domain type.
func (c Customer) Model() model.Customer {
	return model.Customer{
		ID:            c.ID,
		Name:          c.Name,
		AccountNumber: c.AccountNumber,
		CompanyName:   c.CompanyName,
		ContactNumber: c.ContactNumber,
		Email:         c.Email,
		CreatedAt:     c.CreatedAt,
	}
}

// CustomerRequest describes the payload of a new customer.
type CustomerRequest struct {
	Name          string `json:"name"`
	AccountNumber string `json:"accountNumber"`
	CompanyName   string `json:"companyName"`
	ContactNumber string `json:"contactNumber"`
	Email         string `json:"email"`
}

// Draft converts the request into a domain draft.
func (r CustomerRequest) Draft() model.CustomerDraft {
	return model.CustomerDraft{
		Name:          r.Name,
		AccountNumber: r.AccountNumber,
		CompanyName:   r.CompanyName,
		ContactNumber: r.ContactNumber,
		Email:         r.Email,
	}
}

// CustomerPatch carries the fields present in a partial customer update.
type CustomerPatch struct {
	Name          *string `json:"name"`
	AccountNumber *string `json:"accountNumber"`
	CompanyName   *string `json:"companyName"`
	ContactNumber *string `json:"contactNumber"`
	Email         *string `json:"email"`
}

// Patch converts the request into a domain patch.
func (p CustomerPatch) Patch() model.CustomerPatch {
	return model.CustomerPatch{
		Name:          p.Name,
		AccountNumber: p.AccountNumber,
		CompanyName:   p.CompanyName,
		ContactNumber: p.ContactNumber,
		Email:         p.Email,
	}
}
