// Package domain contains the documents served by the API: composers,
// people, customers with their invoices, teams with their players, and
// users. Each type carries both bson and json tags because the same value
// is persisted in the document store and written to HTTP responses.
//
// Embedded collections (roles, dependents, invoices, line items, players)
// have no identity of their own. They live inside the parent document and
// are only ever appended to.
package domain
