package services

import (
	"errors"
	"testing"

	"cafe-counter-api/models"
)

func TestAddItemAuthorization(t *testing.T) {
	env := newTestEnv(t)
	item := models.MenuItem{Name: "Latte", Category: "Drink", Price: 3.50}

	for _, sess := range []models.Session{aliceSession, employeeSession} {
		t.Run(string(sess.Role), func(t *testing.T) {
			if _, err := env.menu.AddItem(sess, item); !errors.Is(err, models.ErrUnauthorized) {
				t.Fatalf("AddItem() error = %v, want ErrUnauthorized", err)
			}
			// No mutation on a refused call.
			if items, _ := env.menu.ListAll(); len(items) != 0 {
				t.Errorf("catalog mutated by unauthorized call: %d items", len(items))
			}
		})
	}
}

func TestAddItemDuplicate(t *testing.T) {
	env := newTestEnv(t)
	seedMenu(t, env)

	_, err := env.menu.AddItem(managerSession, models.MenuItem{Name: "Latte", Category: "Drink", Price: 9.99})
	if !errors.Is(err, models.ErrDuplicateItem) {
		t.Fatalf("AddItem() error = %v, want ErrDuplicateItem", err)
	}
	item, err := env.menuRepo.FindByName(env.db, "Latte")
	if err != nil {
		t.Fatal(err)
	}
	if !almostEqual(item.Price, 3.50) {
		t.Errorf("duplicate add changed the stored item: price = %v", item.Price)
	}
}

func TestAddItemValidation(t *testing.T) {
	env := newTestEnv(t)

	tests := []struct {
		name    string
		item    models.MenuItem
		wantErr error
	}{
		{name: "blank name", item: models.MenuItem{Name: "  ", Price: 1}, wantErr: models.ErrInvalidItemName},
		{name: "negative price", item: models.MenuItem{Name: "Latte", Price: -0.5}, wantErr: models.ErrInvalidPrice},
		{name: "zero price allowed", item: models.MenuItem{Name: "Tap Water", Price: 0}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := env.menu.AddItem(managerSession, tt.item); !errors.Is(err, tt.wantErr) {
				t.Errorf("AddItem() error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestUpdateItemSingleField(t *testing.T) {
	env := newTestEnv(t)
	seedMenu(t, env)

	item, err := env.menu.UpdateItem(managerSession, "Latte", "description", "iced latte")
	if err != nil {
		t.Fatalf("UpdateItem() error = %v", err)
	}
	if item.Description != "iced latte" {
		t.Errorf("description = %q", item.Description)
	}
	if item.Category != "Drink" || !almostEqual(item.Price, 3.50) {
		t.Error("other fields changed by a single-field update")
	}

	if _, err := env.menu.UpdateItem(managerSession, "Latte", "calories", "120"); !errors.Is(err, models.ErrUnknownField) {
		t.Errorf("unknown field error = %v, want ErrUnknownField", err)
	}
	if _, err := env.menu.UpdateItem(managerSession, "Ghost", "price", "1.00"); !errors.Is(err, models.ErrItemNotFound) {
		t.Errorf("missing item error = %v, want ErrItemNotFound", err)
	}
	if _, err := env.menu.UpdateItem(aliceSession, "Latte", "price", "1.00"); !errors.Is(err, models.ErrUnauthorized) {
		t.Errorf("customer update error = %v, want ErrUnauthorized", err)
	}
}

func TestUpdateItemRenameCascadesToOrderLines(t *testing.T) {
	env := newTestEnv(t)
	seedMenu(t, env)

	if _, err := env.cart.AddItem(aliceSession, "Latte"); err != nil {
		t.Fatal(err)
	}

	if _, err := env.menu.UpdateItem(managerSession, "Latte", "itemname", "Flat White"); err != nil {
		t.Fatalf("rename error = %v", err)
	}

	draft, err := env.cart.Open(aliceSession)
	if err != nil {
		t.Fatal(err)
	}
	if len(draft.Lines) != 1 || draft.Lines[0].ItemName != "Flat White" {
		t.Errorf("order line not renamed: %+v", draft.Lines)
	}
	if !almostEqual(draft.Total, 3.50) {
		t.Errorf("rename changed the total: %v", draft.Total)
	}

	// Renaming onto an existing name must be refused.
	if _, err := env.menu.UpdateItem(managerSession, "Flat White", "itemname", "Bagel"); !errors.Is(err, models.ErrDuplicateItem) {
		t.Errorf("rename onto existing name error = %v, want ErrDuplicateItem", err)
	}
}

func TestUpdateItemPriceRepricesUnpaidOrders(t *testing.T) {
	env := newTestEnv(t)
	seedMenu(t, env)

	if _, err := env.cart.AddItem(aliceSession, "Latte"); err != nil {
		t.Fatal(err)
	}
	if _, err := env.cart.AddItem(aliceSession, "Bagel"); err != nil {
		t.Fatal(err)
	}
	placed, err := env.cart.Place(aliceSession)
	if err != nil {
		t.Fatal(err)
	}

	// Bob's paid order must stay frozen.
	if _, err := env.cart.AddItem(bobSession, "Latte"); err != nil {
		t.Fatal(err)
	}
	bobOrder, err := env.cart.Place(bobSession)
	if err != nil {
		t.Fatal(err)
	}
	if _, err := env.payments.SetPaid(employeeSession, bobOrder.OrderID, true); err != nil {
		t.Fatal(err)
	}

	if _, err := env.menu.UpdateItem(managerSession, "Latte", "price", "4.25"); err != nil {
		t.Fatalf("price update error = %v", err)
	}

	view, err := env.admin.Get(aliceSession, placed.OrderID)
	if err != nil {
		t.Fatal(err)
	}
	if !almostEqual(view.Total, 4.25+4.00) {
		t.Errorf("unpaid order total = %v, want %v", view.Total, 4.25+4.00)
	}

	frozen, err := env.admin.Get(employeeSession, bobOrder.OrderID)
	if err != nil {
		t.Fatal(err)
	}
	if !almostEqual(frozen.Total, 3.50) {
		t.Errorf("paid order total = %v, want 3.50", frozen.Total)
	}

	if _, err := env.menu.UpdateItem(managerSession, "Latte", "price", "-1"); !errors.Is(err, models.ErrInvalidPrice) {
		t.Errorf("negative price error = %v, want ErrInvalidPrice", err)
	}
}

func TestDeleteItem(t *testing.T) {
	env := newTestEnv(t)
	seedMenu(t, env)

	if err := env.menu.DeleteItem(aliceSession, "Latte"); !errors.Is(err, models.ErrUnauthorized) {
		t.Errorf("customer delete error = %v, want ErrUnauthorized", err)
	}
	if err := env.menu.DeleteItem(managerSession, "Ghost"); !errors.Is(err, models.ErrItemNotFound) {
		t.Errorf("missing item delete error = %v, want ErrItemNotFound", err)
	}

	// Referenced items cannot be deleted, so no line ever goes orphaned.
	if _, err := env.cart.AddItem(aliceSession, "Latte"); err != nil {
		t.Fatal(err)
	}
	if err := env.menu.DeleteItem(managerSession, "Latte"); !errors.Is(err, models.ErrItemInUse) {
		t.Errorf("referenced item delete error = %v, want ErrItemInUse", err)
	}

	if err := env.menu.DeleteItem(managerSession, "Espresso"); err != nil {
		t.Fatalf("DeleteItem() error = %v", err)
	}
	if _, err := env.menuRepo.FindByName(env.db, "Espresso"); !errors.Is(err, models.ErrItemNotFound) {
		t.Error("item still present after delete")
	}
}

func TestSearch(t *testing.T) {
	env := newTestEnv(t)
	seedMenu(t, env)

	tests := []struct {
		name      string
		term      string
		wantCount int
	}{
		{name: "category match wins", term: "Drink", wantCount: 3},
		{name: "name fallback", term: "Bagel", wantCount: 1},
		{name: "no match is empty not error", term: "Sushi", wantCount: 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			items, err := env.menu.Search(tt.term)
			if err != nil {
				t.Fatalf("Search() error = %v", err)
			}
			if len(items) != tt.wantCount {
				t.Errorf("Search(%q) returned %d items, want %d", tt.term, len(items), tt.wantCount)
			}
		})
	}

	all, err := env.menu.ListAll()
	if err != nil {
		t.Fatal(err)
	}
	if len(all) != 4 {
		t.Errorf("ListAll() returned %d items, want 4", len(all))
	}
}
