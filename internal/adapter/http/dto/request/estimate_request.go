package request

// SaveEstimateRequest replaces the ticket's estimate with the posted rows.
type SaveEstimateRequest struct {
	LineItems []LineItemRequest `json:"line_items" binding:"required"`
}
