package api

import "github.com/web420/restapi/internal/domain"

// Request payloads. Documents are only ever built from the fields named
// here; anything else a client sends, including _id, is ignored.

// ComposerRequest is the body of POST /composers and PUT /composers/{id}.
type ComposerRequest struct {
	FirstName string `json:"firstName" validate:"required"`
	LastName  string `json:"lastName"  validate:"required"`
}

// RoleRequest is one entry of PersonRequest.Roles.
type RoleRequest struct {
	Text string `json:"text"`
}

// DependentRequest is one entry of PersonRequest.Dependents.
type DependentRequest struct {
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
}

// PersonRequest is the body of POST /people. No field is required.
type PersonRequest struct {
	FirstName  string             `json:"firstName"`
	LastName   string             `json:"lastName"`
	Roles      []RoleRequest      `json:"roles"      validate:"omitempty,dive"`
	Dependents []DependentRequest `json:"dependents" validate:"omitempty,dive"`
	BirthDate  string             `json:"birthDate"`
}

// CustomerRequest is the body of POST /customers.
type CustomerRequest struct {
	FirstName string `json:"firstName" validate:"required"`
	LastName  string `json:"lastName"  validate:"required"`
	UserName  string `json:"userName"  validate:"required"`
}

// LineItemRequest is one entry of InvoiceRequest.LineItems.
type LineItemRequest struct {
	Name     string `json:"name"`
	Price    string `json:"price"`
	Quantity string `json:"quantity"`
}

// InvoiceRequest is the body of POST /customers/{userName}/invoices.
type InvoiceRequest struct {
	Subtotal    float64           `json:"subtotal"`
	Tax         float64           `json:"tax"`
	DateCreated string            `json:"dateCreated"`
	DateShipped string            `json:"dateShipped"`
	LineItems   []LineItemRequest `json:"lineItems"   validate:"omitempty,dive"`
}

// TeamRequest is the body of POST /teams.
type TeamRequest struct {
	Name   string `json:"name"   validate:"required"`
	Mascot string `json:"mascot" validate:"required"`
}

// PlayerRequest is the body of POST /teams/{id}/players.
type PlayerRequest struct {
	FirstName string  `json:"firstName"`
	LastName  string  `json:"lastName"`
	Salary    float64 `json:"salary"`
}

// SignupRequest is the body of POST /signup.
type SignupRequest struct {
	UserName     string `json:"userName"     validate:"required"`
	Password     string `json:"password"     validate:"required"`
	EmailAddress string `json:"emailAddress" validate:"omitempty,email"`
}

// LoginRequest is the body of POST /login.
type LoginRequest struct {
	UserName string `json:"userName" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// toDomain builds the person document from the named fields only.
func (p PersonRequest) toDomain() *domain.Person {
	roles := make([]domain.Role, 0, len(p.Roles))
	for _, r := range p.Roles {
		roles = append(roles, domain.Role{Text: r.Text})
	}

	dependents := make([]domain.Dependent, 0, len(p.Dependents))
	for _, d := range p.Dependents {
		dependents = append(dependents, domain.Dependent{FirstName: d.FirstName, LastName: d.LastName})
	}

	return domain.NewPerson(p.FirstName, p.LastName, p.BirthDate, roles, dependents)
}

func (i InvoiceRequest) toDomain() domain.Invoice {
	items := make([]domain.LineItem, 0, len(i.LineItems))
	for _, li := range i.LineItems {
		items = append(items, domain.LineItem{Name: li.Name, Price: li.Price, Quantity: li.Quantity})
	}

	return domain.NewInvoice(i.Subtotal, i.Tax, i.DateCreated, i.DateShipped, items)
}

func (p PlayerRequest) toDomain() domain.Player {
	return domain.NewPlayer(p.FirstName, p.LastName, p.Salary)
}
