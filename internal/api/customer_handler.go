package api

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/web420/restapi/internal/api/shared"
	"github.com/web420/restapi/internal/domain"
	"github.com/web420/restapi/internal/store"
)

// CustomerHandler handles the customer and invoice routes.
// Customers are addressed by user name rather than identifier.
type CustomerHandler struct {
	customers store.CustomerStore
	logger    *slog.Logger
}

// NewCustomerHandler creates a new CustomerHandler
func NewCustomerHandler(customers store.CustomerStore, logger *slog.Logger) *CustomerHandler {
	if logger == nil {
		// ALLOW-PANIC: Constructor enforcing required dependency
		panic("logger cannot be nil for CustomerHandler")
	}

	return &CustomerHandler{
		customers: customers,
		logger:    logger.With(slog.String("component", "customer_handler")),
	}
}

// Create handles POST /customers (createCustomer).
func (h *CustomerHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req CustomerRequest
	if !decodeAndValidate(w, r, shared.MessageKey, &req) {
		return
	}

	customer := domain.NewCustomer(req.FirstName, req.LastName, req.UserName)
	if err := h.customers.Create(r.Context(), customer); err != nil {
		respondWriteFailure(w, r, shared.MessageKey, err)
		return
	}

	requestLogger(r, h.logger).Debug("customer created", slog.String("customer_id", customer.ID.Hex()))
	shared.RespondWithJSON(w, r, http.StatusOK, customer)
}

// CreateInvoice handles POST /customers/{userName}/invoices (createInvoiceByUserName).
// The invoice is appended to the customer's invoices and the updated
// customer is returned.
func (h *CustomerHandler) CreateInvoice(w http.ResponseWriter, r *http.Request) {
	userName := chi.URLParam(r, "userName")

	var req InvoiceRequest
	if !decodeAndValidate(w, r, shared.MessageKey, &req) {
		return
	}

	customer, err := h.customers.AppendInvoice(r.Context(), userName, req.toDomain())
	if err != nil {
		respondParentFailure(w, r, err)
		return
	}

	requestLogger(r, h.logger).Debug("invoice appended",
		slog.String("customer_id", customer.ID.Hex()),
		slog.Int("invoice_count", len(customer.Invoices)))
	shared.RespondWithJSON(w, r, http.StatusOK, customer)
}

// ListInvoices handles GET /customers/{userName}/invoices (findAllInvoicesByUserName).
// It answers with the whole customer document, invoices included.
func (h *CustomerHandler) ListInvoices(w http.ResponseWriter, r *http.Request) {
	customer, err := h.customers.GetByUserName(r.Context(), chi.URLParam(r, "userName"))
	if err != nil {
		respondParentFailure(w, r, err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, customer)
}

// respondParentFailure answers a failed nested-collection operation:
// 501 when the parent document is missing, 500 otherwise.
func respondParentFailure(w http.ResponseWriter, r *http.Request, err error) {
	if store.IsNotFoundError(err) {
		shared.RespondWithErrorAndLog(w, r, http.StatusNotImplemented, shared.MessageKey, msgStoreException, err)
		return
	}
	shared.RespondWithErrorAndLog(w, r, http.StatusInternalServerError, shared.MessageKey,
		serverException(err), err)
}
