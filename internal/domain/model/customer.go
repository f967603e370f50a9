package model

import "time"

// Customer represents a client account of the publishing house.
type Customer struct {
	ID            string
	Name          string
	AccountNumber string
	CompanyName   string
	ContactNumber string
	Email         string
	CreatedAt     time.Time
}

// CustomerDraft carries the caller supplied fields of a new customer.
type CustomerDraft struct {
	Name          string
	AccountNumber string
	CompanyName   string
	ContactNumber string
	Email         string
}

// CustomerPatch is a partial customer update. Nil fields are left untouched.
type CustomerPatch struct {
	Name          *string
	AccountNumber *string
	CompanyName   *string
	ContactNumber *string
	Email         *string
}

// Apply merges present fields into c.
func (p CustomerPatch) Apply(c *Customer) {
	if p.Name != nil {
		c.Name = *p.Name
	}
	if p.AccountNumber != nil {
		c.AccountNumber = *p.AccountNumber
	}
	if p.CompanyName != nil {
		c.CompanyName = *p.CompanyName
	}
	if p.ContactNumber != nil {
		c.ContactNumber = *p.ContactNumber
	}
	if p.Email != nil {
		c.Email = *p.Email
	}
}
