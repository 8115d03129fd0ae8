package request

// CreateInvoiceRequest builds an invoice for a ticket. With FromEstimate set
// the stored estimate's rows are imported and LineItems is ignored;
// otherwise LineItems is the edited set. AdminPIN is only needed when the
// save changes unit prices and the actor is not an Admin.
type CreateInvoiceRequest struct {
	FromEstimate bool              `json:"from_estimate"`
	IncludeNotes bool              `json:"include_notes"`
	AdminPIN     string            `json:"admin_pin,omitempty"`
	LineItems    []LineItemRequest `json:"line_items,omitempty"`
}
