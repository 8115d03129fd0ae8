package routes

import (
	"repairdeck/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathTickets  = "/tickets"
	PathInvoices = "/invoices"
	PathSettings = "/settings"
)

func addShopRoutes(rg *gin.RouterGroup, ticketHandler *handlers.TicketHandler, estimateHandler *handlers.EstimateHandler, invoiceHandler *handlers.InvoiceHandler, settingsHandler *handlers.SettingsHandler) {
	tickets := rg.Group(PathTickets)
	{
		tickets.POST("", ticketHandler.CreateTicket)
		tickets.GET("/:ticket_id", ticketHandler.GetTicket)
		tickets.PATCH("/:ticket_id/status", ticketHandler.UpdateStatus)

		// The estimate rides on the ticket: one per ticket, replaced on save.
		tickets.PUT("/:ticket_id/estimate", estimateHandler.SaveEstimate)
		tickets.GET("/:ticket_id/estimate", estimateHandler.GetEstimate)

		tickets.POST("/:ticket_id/invoices", invoiceHandler.CreateInvoice)
	}

	invoices := rg.Group(PathInvoices)
	{
		invoices.GET("/:invoice_id", invoiceHandler.GetInvoice)
		invoices.POST("/:invoice_id/payments", invoiceHandler.RecordPayment)
	}

	settings := rg.Group(PathSettings)
	{
		settings.GET("/tax-rates", settingsHandler.GetTaxRates)
		settings.PUT("/tax-rates", settingsHandler.UpdateTaxRates)
	}
}
