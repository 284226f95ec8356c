package api

import (
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/web420/restapi/internal/api/openapi"
)

// Document metadata published at /api-docs.
const (
	DocumentTitle   = "WEB 420 RESTful APIs"
	DocumentVersion = "1.0.0"
)

// Route is one API endpoint together with the documentation published for it.
// Pattern is relative to the prefix the routes are mounted under.
type Route struct {
	Method    string
	Pattern   string
	Handler   http.HandlerFunc
	Operation openapi.Operation
}

// Handlers bundles the resource handlers served under /api.
type Handlers struct {
	Composers *ComposerHandler
	People    *PersonHandler
	Customers *CustomerHandler
	Teams     *TeamHandler
	Sessions  *SessionHandler
}

// Routes returns the route table. Mount and Document both consume it.
func (h *Handlers) Routes() []Route {
	return []Route{
		// Composers
		{
			Method: http.MethodGet, Pattern: "/composers", Handler: h.Composers.List,
			Operation: openapi.Operation{
				Tags: []string{"Composers"}, OperationID: "findAllComposers",
				Summary:   "Returns a list of composer documents",
				Responses: responses("200", "Array of composer documents", "500", "Server Exception"),
			},
		},
		{
			Method: http.MethodGet, Pattern: "/composers/{id}", Handler: h.Composers.Get,
			Operation: openapi.Operation{
				Tags: []string{"Composers"}, OperationID: "findComposerById",
				Summary: "Returns a composer document",
				Responses: responses("200", "Composer document", "404", msgComposerNotFound,
					"500", "Server Exception"),
			},
		},
		{
			Method: http.MethodPost, Pattern: "/composers", Handler: h.Composers.Create,
			Operation: openapi.Operation{
				Tags: []string{"Composers"}, OperationID: "createComposer",
				Summary: "Creates a new composer object",
				Body:    ComposerRequest{},
				Responses: responses("200", "Composer added", "400", "Invalid composer",
					"500", "Server Exception", "501", msgStoreException),
			},
		},
		{
			Method: http.MethodPut, Pattern: "/composers/{id}", Handler: h.Composers.Update,
			Operation: openapi.Operation{
				Tags: []string{"Composers"}, OperationID: "updateComposerById",
				Summary: "Updates a composer document",
				Body:    ComposerRequest{},
				Responses: responses("200", "Composer updated", "400", "Invalid composer",
					"401", msgInvalidComposer, "404", msgComposerNotFound, "500", "Server Exception"),
			},
		},
		{
			Method: http.MethodDelete, Pattern: "/composers/{id}", Handler: h.Composers.Delete,
			Operation: openapi.Operation{
				Tags: []string{"Composers"}, OperationID: "deleteComposerById",
				Summary: "Deletes a composer document",
				Responses: responses("200", "Deleted composer document", "404", msgComposerNotFound,
					"500", "Server Exception", "501", msgStoreException),
			},
		},

		// People
		{
			Method: http.MethodGet, Pattern: "/people", Handler: h.People.List,
			Operation: openapi.Operation{
				Tags: []string{"People"}, OperationID: "findAllPersons",
				Summary:   "Returns a list of person documents",
				Responses: responses("200", "Array of person documents", "500", "Server Exception"),
			},
		},
		{
			Method: http.MethodPost, Pattern: "/people", Handler: h.People.Create,
			Operation: openapi.Operation{
				Tags: []string{"People"}, OperationID: "createPerson",
				Summary: "Creates a new person object",
				Body:    PersonRequest{},
				Responses: responses("200", "Person added", "400", "Invalid person",
					"500", "Server Exception", "501", msgStoreException),
			},
		},

		// Customers
		{
			Method: http.MethodPost, Pattern: "/customers", Handler: h.Customers.Create,
			Operation: openapi.Operation{
				Tags: []string{"Customers"}, OperationID: "createCustomer",
				Summary: "Creates a new customer object",
				Body:    CustomerRequest{},
				Responses: responses("200", "Customer added", "400", "Invalid customer",
					"500", "Server Exception", "501", msgStoreException),
			},
		},
		{
			Method: http.MethodPost, Pattern: "/customers/{userName}/invoices", Handler: h.Customers.CreateInvoice,
			Operation: openapi.Operation{
				Tags: []string{"Customers"}, OperationID: "createInvoiceByUserName",
				Summary: "Appends an invoice to a customer",
				Body:    InvoiceRequest{},
				Responses: responses("200", "Customer with the new invoice", "400", "Invalid invoice",
					"500", "Server Exception", "501", msgStoreException),
			},
		},
		{
			Method: http.MethodGet, Pattern: "/customers/{userName}/invoices", Handler: h.Customers.ListInvoices,
			Operation: openapi.Operation{
				Tags: []string{"Customers"}, OperationID: "findAllInvoicesByUserName",
				Summary: "Returns a customer document with its invoices",
				Responses: responses("200", "Customer document", "500", "Server Exception",
					"501", msgStoreException),
			},
		},

		// Teams
		{
			Method: http.MethodGet, Pattern: "/teams", Handler: h.Teams.List,
			Operation: openapi.Operation{
				Tags: []string{"Teams"}, OperationID: "findAllTeams",
				Summary:   "Returns a list of team documents",
				Responses: responses("200", "Array of team documents", "500", "Server Exception"),
			},
		},
		{
			Method: http.MethodPost, Pattern: "/teams", Handler: h.Teams.Create,
			Operation: openapi.Operation{
				Tags: []string{"Teams"}, OperationID: "createTeam",
				Summary: "Creates a new team object",
				Body:    TeamRequest{},
				Responses: responses("200", "Team added", "400", "Invalid team",
					"500", "Server Exception", "501", msgStoreException),
			},
		},
		{
			Method: http.MethodPost, Pattern: "/teams/{id}/players", Handler: h.Teams.AssignPlayer,
			Operation: openapi.Operation{
				Tags: []string{"Teams"}, OperationID: "assignPlayerToTeam",
				Summary: "Appends a player to a team",
				Body:    PlayerRequest{},
				Responses: responses("200", "Team with the new player", "400", "Invalid player",
					"404", msgTeamNotFound, "500", "Server Exception", "501", msgStoreException),
			},
		},
		{
			Method: http.MethodGet, Pattern: "/teams/{id}/players", Handler: h.Teams.ListPlayers,
			Operation: openapi.Operation{
				Tags: []string{"Teams"}, OperationID: "findAllPlayersByTeamId",
				Summary: "Returns the players of a team",
				Responses: responses("200", "Array of player documents", "404", msgTeamNotFound,
					"500", "Server Exception", "501", msgStoreException),
			},
		},
		{
			Method: http.MethodDelete, Pattern: "/teams/{id}", Handler: h.Teams.Delete,
			Operation: openapi.Operation{
				Tags: []string{"Teams"}, OperationID: "deleteTeamById",
				Summary: "Deletes a team document",
				Responses: responses("200", "Deleted team document", "404", msgTeamNotFound,
					"500", "Server Exception", "501", msgStoreException),
			},
		},

		// Session
		{
			Method: http.MethodPost, Pattern: "/signup", Handler: h.Sessions.Signup,
			Operation: openapi.Operation{
				Tags: []string{"Session"}, OperationID: "signup",
				Summary: "Registers a new user",
				Body:    SignupRequest{},
				Responses: responses("200", "Registered user", "400", "Invalid user",
					"401", msgUserNameInUse, "500", "Server Exception"),
			},
		},
		{
			Method: http.MethodPost, Pattern: "/login", Handler: h.Sessions.Login,
			Operation: openapi.Operation{
				Tags: []string{"Session"}, OperationID: "login",
				Summary: "Checks a user name and password",
				Body:    LoginRequest{},
				Responses: responses("200", msgUserLoggedIn, "400", "Invalid request",
					"401", msgInvalidLogin, "500", "Server Exception"),
			},
		},
	}
}

// Mount registers every route on r.
func Mount(r chi.Router, routes []Route) {
	for _, rt := range routes {
		r.Method(rt.Method, rt.Pattern, rt.Handler)
	}
}

// Document builds the OpenAPI document for routes mounted under prefix.
func Document(prefix string, routes []Route) (*openapi.Document, error) {
	doc := openapi.New(DocumentTitle, DocumentVersion)
	for _, rt := range routes {
		if err := doc.AddOperation(rt.Method, prefix+rt.Pattern, rt.Operation); err != nil {
			return nil, fmt.Errorf("failed to document route: %w", err)
		}
	}
	return doc, nil
}

// responses builds a response map from status/description pairs.
func responses(pairs ...string) map[string]string {
	out := make(map[string]string, len(pairs)/2)
	for i := 0; i+1 < len(pairs); i += 2 {
		out[pairs[i]] = pairs[i+1]
	}
	return out
}
