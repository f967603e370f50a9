package dto

import "github.com/polkiloo/pressdesk/internal/domain/model"

// Snapshot is the document format of a seed file. Collections are listed
// newest first, the same way the API returns them.
type Snapshot struct {
	Customers []Customer `json:"customers"`
	Employees []Employee `json:"employees"`
	Orders    []Order    `json:"orders"`
	Payments  []Payment  `json:"payments"`
}

// Model converts the document into a domain snapshot.
func (s Snapshot) Model() model.Snapshot {
	out := model.Snapshot{
		Customers: make([]model.Customer, 0, len(s.Customers)),
		Employees: make([]model.Employee, 0, len(s.Employees)),
		Orders:    make([]model.Order, 0, len(s.Orders)),
		Payments:  make([]model.Payment, 0, len(s.Payments)),
	}
	for _, c := range s.Customers {
		out.Customers = append(out.Customers, c.Model())
	}
	for _, e := range s.Employees {
		out.Employees = append(out.Employees, e.Model())
	}
	for _, o := range s.Orders {
		out.Orders = append(out.Orders, o.Model())
	}
	for _, p := range s.Payments {
		out.Payments = append(out.Payments, p.Model())
	}
	return out
}
