package store

import (
	"context"

	"github.com/web420/restapi/internal/domain"
)

// CustomerStore defines the interface for customer persistence.
// Customers are looked up by user name, not by identifier.
type CustomerStore interface {
	// Create inserts a new customer and sets its ID.
	Create(ctx context.Context, customer *domain.Customer) error

	// GetByUserName retrieves the first customer with the given user name.
	// Returns ErrCustomerNotFound if there is none.
	GetByUserName(ctx context.Context, userName string) (*domain.Customer, error)

	// AppendInvoice loads the customer, appends invoice to its invoices and
	// saves the whole document. There is no version check, so concurrent
	// appends to the same customer may lose one of the writes.
	// Returns ErrCustomerNotFound if there is no such customer.
	AppendInvoice(ctx context.Context, userName string, invoice domain.Invoice) (*domain.Customer, error)
}
