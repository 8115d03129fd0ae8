package handlers

import (
	"errors"
	"net/http"

	"repairdeck/internal/adapter/http/dto/request"
	"repairdeck/internal/adapter/http/dto/response"
	"repairdeck/internal/domain/entities"
	"repairdeck/internal/domain/pricing"
	"repairdeck/internal/usecase"
	"repairdeck/pkg"

	"github.com/gin-gonic/gin"
)

var errInvalidTicketPayload = pkg.NewDomainErrorSimple("INVALID_TICKET_INPUT", "Invalid ticket payload", http.StatusBadRequest)

// TicketHandler handles ticket creation and the guarded status transition.
type TicketHandler struct {
	usecase usecase.ITicketUseCase
}

func NewTicketHandler(uc usecase.ITicketUseCase) *TicketHandler {
	return &TicketHandler{usecase: uc}
}

func (h *TicketHandler) CreateTicket(c *gin.Context) {
	var payload request.CreateTicketRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidTicketPayload.HTTPStatus, errInvalidTicketPayload.ToHTTPError())
		return
	}

	ticket, err := h.usecase.CreateTicket(c.Request.Context(), entities.Ticket{
		CustomerID:   payload.CustomerID,
		CustomerName: payload.CustomerName,
		Vehicle:      payload.Vehicle,
		Issue:        payload.Issue,
	})
	if err != nil {
		appErr := mapTicketError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, response.FromTicket(ticket))
}

func (h *TicketHandler) GetTicket(c *gin.Context) {
	ticket, err := h.usecase.GetByID(c.Request.Context(), c.Param("ticket_id"))
	if err != nil {
		appErr := mapTicketError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromTicket(ticket))
}

// UpdateStatus moves a ticket to a new status. Guard rejections come back as
// 409 with the blocking invoice's id and outstanding amount so the UI can
// show a balance-due message rather than a generic error.
func (h *TicketHandler) UpdateStatus(c *gin.Context) {
	var payload request.UpdateTicketStatusRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidTicketPayload.HTTPStatus, errInvalidTicketPayload.ToHTTPError())
		return
	}

	ticket, err := h.usecase.UpdateStatus(c.Request.Context(), c.Param("ticket_id"), entities.TicketStatus(payload.ResolveStatus()))
	if err != nil {
		appErr := mapTicketError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromTicket(ticket))
}

func mapTicketError(err error) *pkg.AppError {
	var balanceDue *usecase.BalanceDueError
	switch {
	case errors.As(err, &balanceDue):
		return pkg.NewDomainError("BALANCE_DUE", balanceDue.Error(), err, http.StatusConflict).
			WithDetails(map[string]interface{}{
				"invoice_id":     balanceDue.InvoiceID,
				"amount":         balanceDue.Amount,
				"amount_display": pricing.FormatUSD(balanceDue.Amount),
			})
	case errors.Is(err, usecase.ErrInvoiceRequired):
		return pkg.NewDomainErrorSimple("INVOICE_REQUIRED", "An invoice must be created and paid before this ticket can be completed", http.StatusConflict)
	case errors.Is(err, usecase.ErrInvalidStatus):
		return pkg.NewDomainErrorSimple("INVALID_STATUS", "Invalid ticket status", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrInvalidTicketID), errors.Is(err, usecase.ErrInvalidTicketInput):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrTicketNotFound):
		return pkg.NewDomainErrorSimple("TICKET_NOT_FOUND", "Ticket not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrInvoiceNotFound):
		return pkg.NewDomainErrorSimple("INVOICE_NOT_FOUND", "Invoice not found", http.StatusNotFound)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
