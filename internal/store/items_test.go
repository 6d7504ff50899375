package store

import (
	"context"
	"errors"
	"testing"

	"github.com/naufalh/mapala/internal/db"
)

func TestCreateAndGetItem(t *testing.T) {
	database := db.NewTestDB(t)
	ctx := context.Background()

	item, err := CreateItem(ctx, database, "Tenda dome", 4, "4-person dome tent")
	if err != nil {
		t.Fatalf("CreateItem: %v", err)
	}
	if item.ItemName != "Tenda dome" {
		t.Errorf("expected item_name 'Tenda dome', got %q", item.ItemName)
	}
	if item.Quantity != 4 {
		t.Errorf("expected quantity 4, got %d", item.Quantity)
	}

	got, err := GetItem(ctx, database, item.ID)
	if err != nil {
		t.Fatalf("GetItem: %v", err)
	}
	if got == nil || got.Description != "4-person dome tent" {
		t.Errorf("unexpected item: %+v", got)
	}
}

func TestCreateItemEmptyFieldsAccepted(t *testing.T) {
	database := db.NewTestDB(t)
	ctx := context.Background()

	// The catalog accepts sparse records; nothing is required.
	item, err := CreateItem(ctx, database, "", 0, "")
	if err != nil {
		t.Fatalf("CreateItem: %v", err)
	}
	if item.ItemName != "" || item.Quantity != 0 {
		t.Errorf("expected zero-valued item, got %+v", item)
	}
}

func TestListItems(t *testing.T) {
	database := db.NewTestDB(t)
	ctx := context.Background()

	CreateItem(ctx, database, "Carabiner", 20, "")
	CreateItem(ctx, database, "Rope 50m", 3, "")

	items, err := ListItems(ctx, database)
	if err != nil {
		t.Fatalf("ListItems: %v", err)
	}
	if len(items) != 2 {
		t.Errorf("expected 2 items, got %d", len(items))
	}
}

func TestUpdateItem(t *testing.T) {
	database := db.NewTestDB(t)
	ctx := context.Background()

	item, _ := CreateItem(ctx, database, "Stove", 2, "")

	if err := UpdateItem(ctx, database, item.ID, "Camping stove", 3, "gas stove"); err != nil {
		t.Fatalf("UpdateItem: %v", err)
	}

	got, _ := GetItem(ctx, database, item.ID)
	if got.ItemName != "Camping stove" || got.Quantity != 3 || got.Description != "gas stove" {
		t.Errorf("unexpected item after update: %+v", got)
	}
}

func TestUpdateItemNotFound(t *testing.T) {
	database := db.NewTestDB(t)
	ctx := context.Background()

	err := UpdateItem(ctx, database, 999, "Ghost", 1, "")
	if !errors.Is(err, ErrItemNotFound) {
		t.Errorf("expected ErrItemNotFound, got %v", err)
	}
}

func TestDeleteItem(t *testing.T) {
	database := db.NewTestDB(t)
	ctx := context.Background()

	item, _ := CreateItem(ctx, database, "Headlamp", 6, "")

	if err := DeleteItem(ctx, database, item.ID); err != nil {
		t.Fatalf("DeleteItem: %v", err)
	}

	got, _ := GetItem(ctx, database, item.ID)
	if got != nil {
		t.Error("expected item to be gone after delete")
	}
}

func TestDeleteItemNotFoundLeavesRows(t *testing.T) {
	database := db.NewTestDB(t)
	ctx := context.Background()

	CreateItem(ctx, database, "Compass", 5, "")

	err := DeleteItem(ctx, database, 999)
	if !errors.Is(err, ErrItemNotFound) {
		t.Errorf("expected ErrItemNotFound, got %v", err)
	}

	items, _ := ListItems(ctx, database)
	if len(items) != 1 {
		t.Errorf("expected 1 item untouched, got %d", len(items))
	}
}

func TestItemImageRoundTrip(t *testing.T) {
	database := db.NewTestDB(t)
	ctx := context.Background()

	item, _ := CreateItem(ctx, database, "Tent", 1, "")

	if err := SetItemImage(ctx, database, item.ID, []byte{0xff, 0xd8, 0x01}, "image/jpeg"); err != nil {
		t.Fatalf("SetItemImage: %v", err)
	}

	data, mime, err := GetItemImage(ctx, database, item.ID)
	if err != nil {
		t.Fatalf("GetItemImage: %v", err)
	}
	if mime != "image/jpeg" || len(data) != 3 {
		t.Errorf("unexpected image: mime=%q len=%d", mime, len(data))
	}

	if err := SetItemImage(ctx, database, 999, []byte{1}, "image/jpeg"); !errors.Is(err, ErrItemNotFound) {
		t.Errorf("expected ErrItemNotFound, got %v", err)
	}

	data, _, err = GetItemImage(ctx, database, 999)
	if err != nil || data != nil {
		t.Errorf("expected nil image for missing item, got data=%v err=%v", data, err)
	}
}
