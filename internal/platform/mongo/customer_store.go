package mongo

import (
	"context"
	"log/slog"

	"github.com/web420/restapi/internal/domain"
	"github.com/web420/restapi/internal/store"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// MongoCustomerStore implements store.CustomerStore on the customers collection.
type MongoCustomerStore struct {
	collection
}

// NewMongoCustomerStore creates a customer store on db.
func NewMongoCustomerStore(db *mongo.Database, logger *slog.Logger, observer Observer) *MongoCustomerStore {
	return &MongoCustomerStore{collection: newCollection(db, CustomersCollection, logger, observer)}
}

// Ensure MongoCustomerStore implements store.CustomerStore interface
var _ store.CustomerStore = (*MongoCustomerStore)(nil)

// Create implements store.CustomerStore.Create
func (s *MongoCustomerStore) Create(ctx context.Context, customer *domain.Customer) error {
	normalizeCustomer(customer)

	customer.ID = primitive.NilObjectID
	res, err := s.coll.InsertOne(ctx, customer)
	if err != nil {
		return s.done(ctx, "create", MapError(err))
	}

	customer.ID = insertedID(res)
	return s.done(ctx, "create", nil)
}

// GetByUserName implements store.CustomerStore.GetByUserName
func (s *MongoCustomerStore) GetByUserName(ctx context.Context, userName string) (*domain.Customer, error) {
	customer, err := s.findByUserName(ctx, userName)
	return customer, s.done(ctx, "get", err)
}

// AppendInvoice implements store.CustomerStore.AppendInvoice
func (s *MongoCustomerStore) AppendInvoice(
	ctx context.Context,
	userName string,
	invoice domain.Invoice,
) (*domain.Customer, error) {
	customer, err := s.findByUserName(ctx, userName)
	if err != nil {
		return nil, s.done(ctx, "append", err)
	}

	if invoice.LineItems == nil {
		invoice.LineItems = []domain.LineItem{}
	}
	customer.AddInvoice(invoice)

	if err := replaceByID(ctx, s.coll, customer.ID, customer, store.ErrCustomerNotFound); err != nil {
		return nil, s.done(ctx, "append", err)
	}

	return customer, s.done(ctx, "append", nil)
}

func (s *MongoCustomerStore) findByUserName(ctx context.Context, userName string) (*domain.Customer, error) {
	var customer domain.Customer
	err := s.coll.FindOne(ctx, bson.M{"userName": userName}).Decode(&customer)
	if err != nil {
		return nil, notFoundAs(err, store.ErrCustomerNotFound)
	}

	normalizeCustomer(&customer)
	return &customer, nil
}

func normalizeCustomer(c *domain.Customer) {
	if c.Invoices == nil {
		c.Invoices = []domain.Invoice{}
	}
	for i := range c.Invoices {
		if c.Invoices[i].LineItems == nil {
			c.Invoices[i].LineItems = []domain.LineItem{}
		}
	}
}
