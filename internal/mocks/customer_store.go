package mocks

import (
	"context"
	"sync"

	"github.com/web420/restapi/internal/domain"
	"github.com/web420/restapi/internal/store"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// MockCustomerStore implements store.CustomerStore for testing.
// Like the real store, lookups return the first customer with a user name.
type MockCustomerStore struct {
	callCounter

	CreateFn        func(ctx context.Context, customer *domain.Customer) error
	GetByUserNameFn func(ctx context.Context, userName string) (*domain.Customer, error)
	AppendInvoiceFn func(ctx context.Context, userName string, invoice domain.Invoice) (*domain.Customer, error)

	mu        sync.RWMutex
	customers []domain.Customer
}

// Ensure MockCustomerStore implements store.CustomerStore interface
var _ store.CustomerStore = (*MockCustomerStore)(nil)

// NewMockCustomerStore creates a new mock store with initialized defaults
func NewMockCustomerStore() *MockCustomerStore {
	return &MockCustomerStore{}
}

// Create implements the CustomerStore interface
func (m *MockCustomerStore) Create(ctx context.Context, customer *domain.Customer) error {
	m.record()
	if m.CreateFn != nil {
		return m.CreateFn(ctx, customer)
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	customer.ID = primitive.NewObjectID()
	m.customers = append(m.customers, copyCustomer(*customer))
	return nil
}

// GetByUserName implements the CustomerStore interface
func (m *MockCustomerStore) GetByUserName(ctx context.Context, userName string) (*domain.Customer, error) {
	m.record()
	if m.GetByUserNameFn != nil {
		return m.GetByUserNameFn(ctx, userName)
	}

	m.mu.RLock()
	defer m.mu.RUnlock()

	i := m.indexOf(userName)
	if i < 0 {
		return nil, store.ErrCustomerNotFound
	}
	c := copyCustomer(m.customers[i])
	return &c, nil
}

// AppendInvoice implements the CustomerStore interface
func (m *MockCustomerStore) AppendInvoice(
	ctx context.Context,
	userName string,
	invoice domain.Invoice,
) (*domain.Customer, error) {
	m.record()
	if m.AppendInvoiceFn != nil {
		return m.AppendInvoiceFn(ctx, userName, invoice)
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	i := m.indexOf(userName)
	if i < 0 {
		return nil, store.ErrCustomerNotFound
	}

	invoice.LineItems = append([]domain.LineItem{}, invoice.LineItems...)
	m.customers[i].AddInvoice(invoice)

	c := copyCustomer(m.customers[i])
	return &c, nil
}

// indexOf returns the position of the first customer named userName, or -1.
// Callers must hold m.mu.
func (m *MockCustomerStore) indexOf(userName string) int {
	for i, c := range m.customers {
		if c.UserName == userName {
			return i
		}
	}
	return -1
}
