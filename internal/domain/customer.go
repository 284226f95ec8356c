package domain

import "go.mongodb.org/mongo-driver/bson/primitive"

// LineItem is a single purchased item on an invoice.
// All fields are kept as strings, matching what clients submit.
type LineItem struct {
	Name     string `bson:"name"     json:"name"`
	Price    string `bson:"price"    json:"price"`
	Quantity string `bson:"quantity" json:"quantity"`
}

// Invoice is embedded in a Customer and owns its line items.
type Invoice struct {
	Subtotal    float64    `bson:"subtotal"    json:"subtotal"`
	Tax         float64    `bson:"tax"         json:"tax"`
	DateCreated string     `bson:"dateCreated" json:"dateCreated"`
	DateShipped string     `bson:"dateShipped" json:"dateShipped"`
	LineItems   []LineItem `bson:"lineItems"   json:"lineItems"`
}

// Customer is a document in the customers collection.
// Customers are addressed by UserName rather than by identifier.
type Customer struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"_id"`
	FirstName string             `bson:"firstName"     json:"firstName"`
	LastName  string             `bson:"lastName"      json:"lastName"`
	UserName  string             `bson:"userName"      json:"userName"`
	Invoices  []Invoice          `bson:"invoices"      json:"invoices"`
}

// NewCustomer builds a customer with no invoices.
func NewCustomer(firstName, lastName, userName string) *Customer {
	return &Customer{
		FirstName: firstName,
		LastName:  lastName,
		UserName:  userName,
		Invoices:  []Invoice{},
	}
}

// NewInvoice builds an invoice from the submitted fields.
func NewInvoice(subtotal, tax float64, dateCreated, dateShipped string, lineItems []LineItem) Invoice {
	if lineItems == nil {
		lineItems = []LineItem{}
	}

	return Invoice{
		Subtotal:    subtotal,
		Tax:         tax,
		DateCreated: dateCreated,
		DateShipped: dateShipped,
		LineItems:   lineItems,
	}
}

// AddInvoice appends inv to the end of the customer's invoices.
// Duplicates are kept.
func (c *Customer) AddInvoice(inv Invoice) {
	c.Invoices = append(c.Invoices, inv)
}
