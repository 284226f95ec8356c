// Package api serves the composer, person, customer, team and session
// resources over HTTP. Handlers translate requests into store calls and
// render the legacy status codes and error bodies existing clients rely on.
// Routes carries the route table that both the router and the published
// OpenAPI document are built from.
package api
