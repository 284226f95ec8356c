package mocks

import (
	"github.com/web420/restapi/internal/domain"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func removeID(ids []primitive.ObjectID, id primitive.ObjectID) []primitive.ObjectID {
	out := ids[:0]
	for _, existing := range ids {
		if existing != id {
			out = append(out, existing)
		}
	}
	return out
}

// The copy helpers below keep callers from sharing slices with the map.

func copyPerson(p domain.Person) domain.Person {
	p.Roles = append([]domain.Role{}, p.Roles...)
	p.Dependents = append([]domain.Dependent{}, p.Dependents...)
	return p
}

func copyCustomer(c domain.Customer) domain.Customer {
	invoices := make([]domain.Invoice, len(c.Invoices))
	for i, inv := range c.Invoices {
		inv.LineItems = append([]domain.LineItem{}, inv.LineItems...)
		invoices[i] = inv
	}
	c.Invoices = invoices
	return c
}

func copyTeam(t domain.Team) domain.Team {
	t.Players = append([]domain.Player{}, t.Players...)
	return t
}
