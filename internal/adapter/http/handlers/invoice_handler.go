package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"repairdeck/internal/adapter/http/dto/request"
	"repairdeck/internal/adapter/http/dto/response"
	"repairdeck/internal/domain/approval"
	"repairdeck/internal/domain/entities"
	"repairdeck/internal/usecase"
	"repairdeck/pkg"

	"github.com/gin-gonic/gin"
)

// ActorRoleHeader carries the authenticated actor's role, resolved upstream
// by the identity provider. Authentication itself is not this service's job.
const ActorRoleHeader = "X-Employee-Role"

var errInvalidInvoicePayload = pkg.NewDomainErrorSimple("INVALID_INVOICE_INPUT", "Invalid invoice payload", http.StatusBadRequest)

// InvoiceHandler handles invoice creation (with the price-change approval
// gate) and payment recording.
type InvoiceHandler struct {
	usecase usecase.IInvoiceUseCase
}

func NewInvoiceHandler(uc usecase.IInvoiceUseCase) *InvoiceHandler {
	return &InvoiceHandler{usecase: uc}
}

func (h *InvoiceHandler) CreateInvoice(c *gin.Context) {
	var payload request.CreateInvoiceRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidInvoicePayload.HTTPStatus, errInvalidInvoicePayload.ToHTTPError())
		return
	}

	cmd := usecase.CreateInvoiceCommand{
		TicketID:     c.Param("ticket_id"),
		ActorRole:    entities.EmployeeRole(strings.TrimSpace(c.GetHeader(ActorRoleHeader))),
		AdminPIN:     payload.AdminPIN,
		FromEstimate: payload.FromEstimate,
		IncludeNotes: payload.IncludeNotes,
		LineItems:    request.ToLineItems(payload.LineItems),
	}

	invoice, err := h.usecase.CreateFromTicket(c.Request.Context(), cmd)
	if err != nil {
		appErr := mapInvoiceError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, response.FromInvoice(invoice))
}

func (h *InvoiceHandler) GetInvoice(c *gin.Context) {
	invoice, err := h.usecase.GetByID(c.Request.Context(), c.Param("invoice_id"))
	if err != nil {
		appErr := mapInvoiceError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromInvoice(invoice))
}

// RecordPayment charges the invoice through the payment gateway. The body is
// passed through to the gateway as-is; the amount always comes from the
// stored invoice.
func (h *InvoiceHandler) RecordPayment(c *gin.Context) {
	payload, err := readPaymentPayload(c)
	if err != nil {
		c.JSON(errInvalidInvoicePayload.HTTPStatus, errInvalidInvoicePayload.ToHTTPError())
		return
	}

	invoice, err := h.usecase.RecordPayment(c.Request.Context(), c.Param("invoice_id"), payload)
	if err != nil {
		appErr := mapInvoiceError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromInvoice(invoice))
}

func readPaymentPayload(c *gin.Context) (json.RawMessage, error) {
	raw, err := c.GetRawData()
	if err != nil {
		return nil, err
	}
	if len(raw) == 0 {
		return json.RawMessage("{}"), nil
	}
	if !json.Valid(raw) {
		return nil, errors.New("payment payload is not valid JSON")
	}
	return json.RawMessage(raw), nil
}

func mapInvoiceError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrApprovalRequired):
		return pkg.NewDomainErrorSimple("APPROVAL_REQUIRED", "Line item prices were changed; an admin PIN is required", http.StatusForbidden)
	case errors.Is(err, approval.ErrPINRejected):
		return pkg.NewDomainErrorSimple("PIN_REJECTED", "Incorrect PIN. Please try again.", http.StatusUnauthorized)
	case isLineItemValidationError(err):
		return pkg.NewDomainError("VALIDATION_ERROR", err.Error(), err, http.StatusBadRequest)
	case errors.Is(err, usecase.ErrInvalidTicketID), errors.Is(err, usecase.ErrInvalidInvoiceID):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrTicketNotFound):
		return pkg.NewDomainErrorSimple("TICKET_NOT_FOUND", "Ticket not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrEstimateNotFound):
		return pkg.NewDomainErrorSimple("ESTIMATE_NOT_FOUND", "Estimate not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrInvoiceNotFound):
		return pkg.NewDomainErrorSimple("INVOICE_NOT_FOUND", "Invoice not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrInvoiceAlreadyPaid):
		return pkg.NewDomainErrorSimple("INVOICE_ALREADY_PAID", "Invoice is already paid", http.StatusConflict)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
