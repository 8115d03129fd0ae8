package request

import "strings"

type CreateTicketRequest struct {
	CustomerID   string `json:"customer_id"`
	CustomerName string `json:"customer_name" binding:"required"`
	Vehicle      string `json:"vehicle" binding:"required"`
	Issue        string `json:"issue"`
}

type UpdateTicketStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

func (r UpdateTicketStatusRequest) ResolveStatus() string {
	return strings.TrimSpace(r.Status)
}
