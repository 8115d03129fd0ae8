package entities

import (
	"errors"
	"testing"
)

func TestLineItemsAdd(t *testing.T) {
	t.Run("generates unique ids", func(t *testing.T) {
		var items LineItems
		a := items.Add("Brake pads", 89.99, 1)
		b := items.Add("Labor", 40.00, 2)
		if a.ID == "" || b.ID == "" || a.ID == b.ID {
			t.Fatalf("expected distinct non-empty ids, got %q and %q", a.ID, b.ID)
		}
		if len(items) != 2 {
			t.Fatalf("expected 2 items, got %d", len(items))
		}
	})

	t.Run("quantity below 1 defaults to 1", func(t *testing.T) {
		var items LineItems
		zero := items.Add("Oil", 9.5, 0)
		negative := items.Add("Filter", 12, -5)
		if zero.Quantity != 1 || negative.Quantity != 1 {
			t.Fatalf("expected defaulted quantities, got %d and %d", zero.Quantity, negative.Quantity)
		}
	})
}

func TestLineItemsUpdateQuantity(t *testing.T) {
	items := LineItems{{ID: "a", Description: "Labor", UnitPrice: 40, Quantity: 2}}

	t.Run("valid quantity is applied", func(t *testing.T) {
		items.UpdateQuantity("a", 5)
		if items[0].Quantity != 5 {
			t.Fatalf("expected quantity 5, got %d", items[0].Quantity)
		}
	})

	t.Run("zero and negative are silent no-ops", func(t *testing.T) {
		items.UpdateQuantity("a", 0)
		items.UpdateQuantity("a", -3)
		if items[0].Quantity != 5 {
			t.Fatalf("expected quantity to stay 5, got %d", items[0].Quantity)
		}
	})

	t.Run("unknown id is ignored", func(t *testing.T) {
		items.UpdateQuantity("missing", 9)
		if items[0].Quantity != 5 {
			t.Fatalf("expected quantity to stay 5, got %d", items[0].Quantity)
		}
	})
}

func TestLineItemsRemove(t *testing.T) {
	build := func() LineItems {
		return LineItems{
			{ID: "a", Description: "one", UnitPrice: 1, Quantity: 1},
			{ID: "b", Description: "two", UnitPrice: 2, Quantity: 1},
			{ID: "c", Description: "three", UnitPrice: 3, Quantity: 1},
		}
	}

	t.Run("preserves order of the rest", func(t *testing.T) {
		items := build()
		items.Remove("b")
		if len(items) != 2 || items[0].ID != "a" || items[1].ID != "c" {
			t.Fatalf("unexpected items after remove: %+v", items)
		}
	})

	t.Run("absent id is a no-op", func(t *testing.T) {
		items := build()
		items.Remove("missing")
		items.Remove("missing")
		if len(items) != 3 {
			t.Fatalf("expected all items kept, got %d", len(items))
		}
	})
}

func TestLineItemsValidate(t *testing.T) {
	t.Run("valid collection passes", func(t *testing.T) {
		items := LineItems{{ID: "a", Description: "Labor", UnitPrice: 0, Quantity: 1}}
		if err := items.Validate(); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("blank description", func(t *testing.T) {
		items := LineItems{{ID: "a", Description: "   ", UnitPrice: 10, Quantity: 1}}
		if err := items.Validate(); !errors.Is(err, ErrEmptyDescription) {
			t.Fatalf("expected ErrEmptyDescription, got %v", err)
		}
	})

	t.Run("negative price", func(t *testing.T) {
		items := LineItems{{ID: "a", Description: "Labor", UnitPrice: -1, Quantity: 1}}
		if err := items.Validate(); !errors.Is(err, ErrNegativePrice) {
			t.Fatalf("expected ErrNegativePrice, got %v", err)
		}
	})

	t.Run("quantity below 1", func(t *testing.T) {
		items := LineItems{{ID: "a", Description: "Labor", UnitPrice: 10, Quantity: 0}}
		if err := items.Validate(); !errors.Is(err, ErrInvalidQuantity) {
			t.Fatalf("expected ErrInvalidQuantity, got %v", err)
		}
	})
}

func TestLineItemsEnsureIDs(t *testing.T) {
	items := LineItems{
		{ID: "keep", Description: "one", UnitPrice: 1, Quantity: 1},
		{Description: "two", UnitPrice: 2, Quantity: 1},
	}
	items.EnsureIDs()
	if items[0].ID != "keep" {
		t.Fatalf("expected existing id kept, got %q", items[0].ID)
	}
	if items[1].ID == "" {
		t.Fatalf("expected generated id for blank entry")
	}
}

func TestLineItemsClone(t *testing.T) {
	items := LineItems{{ID: "a", Description: "Labor", UnitPrice: 40, Quantity: 1}}
	clone := items.Clone()
	clone.UpdatePrice("a", 99)
	if items[0].UnitPrice != 40 {
		t.Fatalf("expected original untouched, got %v", items[0].UnitPrice)
	}
	if LineItems(nil).Clone() != nil {
		t.Fatalf("expected nil clone of nil collection")
	}
}
