package request

import "testing"

func TestToLineItems(t *testing.T) {
	rows := []LineItemRequest{
		{ID: "a", Description: "Brake pads", UnitPrice: 89.99, Quantity: 2},
		{Description: "Labor", UnitPrice: 40.00},
		{Description: "Disposal fee", UnitPrice: 5.00, Quantity: -3},
	}

	items := ToLineItems(rows)
	if len(items) != 3 {
		t.Fatalf("expected 3 items, got %d", len(items))
	}
	if items[0].ID != "a" || items[0].Quantity != 2 {
		t.Fatalf("unexpected first item: %+v", items[0])
	}
	if items[1].Quantity != 1 {
		t.Fatalf("expected omitted quantity to default to 1, got %d", items[1].Quantity)
	}
	// Negative quantities pass through so the save can reject them.
	if items[2].Quantity != -3 {
		t.Fatalf("expected negative quantity preserved, got %d", items[2].Quantity)
	}
}

func TestToLineItemsEmpty(t *testing.T) {
	if items := ToLineItems(nil); len(items) != 0 {
		t.Fatalf("expected empty collection, got %d", len(items))
	}
}
