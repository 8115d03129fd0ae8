package entities

import (
	"errors"
	"strings"

	"github.com/google/uuid"
)

var (
	ErrEmptyDescription = errors.New("line item description is empty")
	ErrNegativePrice    = errors.New("line item price is negative")
	ErrInvalidQuantity  = errors.New("line item quantity is below 1")
)

// LineItem is one billable row on an estimate or invoice. It has no identity
// outside its parent document; ids only need to be unique within one document.
type LineItem struct {
	ID          string  `json:"id"`
	Description string  `json:"description"`
	UnitPrice   float64 `json:"unit_price"`
	Quantity    int     `json:"quantity"`
}

// LineItems is the in-memory ordered collection both document editors work on.
// Order is insertion order; removal closes the gap.
type LineItems []LineItem

// Add appends a new item with a freshly generated id. A quantity below 1 is
// normalized to the default of 1.
func (l *LineItems) Add(description string, unitPrice float64, quantity int) LineItem {
	if quantity < 1 {
		quantity = 1
	}
	item := LineItem{
		ID:          uuid.NewString(),
		Description: description,
		UnitPrice:   unitPrice,
		Quantity:    quantity,
	}
	*l = append(*l, item)
	return item
}

// UpdateQuantity replaces the quantity of the item with the given id.
// Values below 1 are silently rejected and the collection is left unchanged;
// callers rely on this when a form field is cleared mid-edit.
func (l LineItems) UpdateQuantity(id string, newQuantity int) {
	if newQuantity < 1 {
		return
	}
	for i := range l {
		if l[i].ID == id {
			l[i].Quantity = newQuantity
			return
		}
	}
}

// UpdateDescription replaces the description of the item with the given id.
func (l LineItems) UpdateDescription(id, description string) {
	for i := range l {
		if l[i].ID == id {
			l[i].Description = description
			return
		}
	}
}

// UpdatePrice replaces the unit price of the item with the given id.
func (l LineItems) UpdatePrice(id string, unitPrice float64) {
	for i := range l {
		if l[i].ID == id {
			l[i].UnitPrice = unitPrice
			return
		}
	}
}

// Remove deletes the item with the given id, preserving the order of the
// remaining items. Removing an absent id is a no-op.
func (l *LineItems) Remove(id string) {
	items := *l
	for i := range items {
		if items[i].ID == id {
			*l = append(items[:i], items[i+1:]...)
			return
		}
	}
}

// EnsureIDs assigns a fresh id to any item that arrived without one, e.g.
// rows posted by a client that has not round-tripped through the editor.
func (l LineItems) EnsureIDs() {
	for i := range l {
		if l[i].ID == "" {
			l[i].ID = uuid.NewString()
		}
	}
}

// Validate applies the save-time checks. The editor itself never validates;
// these rules gate the final save of an estimate or invoice.
func (l LineItems) Validate() error {
	for _, item := range l {
		if strings.TrimSpace(item.Description) == "" {
			return ErrEmptyDescription
		}
		if item.UnitPrice < 0 {
			return ErrNegativePrice
		}
		if item.Quantity < 1 {
			return ErrInvalidQuantity
		}
	}
	return nil
}

// Clone returns an independent copy, so a pending edit never aliases the
// saved snapshot it will later be diffed against.
func (l LineItems) Clone() LineItems {
	if l == nil {
		return nil
	}
	out := make(LineItems, len(l))
	copy(out, l)
	return out
}
