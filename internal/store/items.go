package store

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/naufalh/mapala/internal/model"
)

// CreateItem creates a new catalog item. Fields are stored as given; the
// caller decides how much validation the catalog gets.
func CreateItem(ctx context.Context, db *sql.DB, itemName string, quantity int64, description string) (*model.Item, error) {
	result, err := db.ExecContext(ctx,
		`INSERT INTO logistics (item_name, quantity, description) VALUES (?, ?, ?)`,
		itemName, quantity, description,
	)
	if err != nil {
		return nil, fmt.Errorf("creating item: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return nil, fmt.Errorf("getting item id: %w", err)
	}

	return GetItem(ctx, db, id)
}

// GetItem returns an item by ID, or nil if none exists.
func GetItem(ctx context.Context, db *sql.DB, id int64) (*model.Item, error) {
	item := &model.Item{}
	var itemName, description, imageMime sql.NullString
	err := db.QueryRowContext(ctx,
		`SELECT id, item_name, quantity, description, image_mime FROM logistics WHERE id = ?`, id,
	).Scan(&item.ID, &itemName, &item.Quantity, &description, &imageMime)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("getting item: %w", err)
	}
	item.ItemName = itemName.String
	item.Description = description.String
	item.ImageMime = imageMime.String
	return item, nil
}

// ListItems returns all catalog items in storage order.
func ListItems(ctx context.Context, db *sql.DB) ([]model.Item, error) {
	rows, err := db.QueryContext(ctx,
		`SELECT id, item_name, quantity, description, image_mime FROM logistics`,
	)
	if err != nil {
		return nil, fmt.Errorf("listing items: %w", err)
	}
	defer rows.Close()

	var items []model.Item
	for rows.Next() {
		var item model.Item
		var itemName, description, imageMime sql.NullString
		if err := rows.Scan(&item.ID, &itemName, &item.Quantity, &description, &imageMime); err != nil {
			return nil, fmt.Errorf("scanning item: %w", err)
		}
		item.ItemName = itemName.String
		item.Description = description.String
		item.ImageMime = imageMime.String
		items = append(items, item)
	}
	return items, rows.Err()
}

// UpdateItem replaces an item's fields. Returns ErrItemNotFound if the ID
// does not exist.
func UpdateItem(ctx context.Context, db *sql.DB, id int64, itemName string, quantity int64, description string) error {
	result, err := db.ExecContext(ctx,
		`UPDATE logistics SET item_name = ?, quantity = ?, description = ? WHERE id = ?`,
		itemName, quantity, description, id,
	)
	if err != nil {
		return fmt.Errorf("updating item: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("checking updated rows: %w", err)
	}
	if affected == 0 {
		return ErrItemNotFound
	}
	return nil
}

// DeleteItem removes an item from the catalog. Returns ErrItemNotFound if
// the ID does not exist. Borrowings referencing the item are kept.
func DeleteItem(ctx context.Context, db *sql.DB, id int64) error {
	result, err := db.ExecContext(ctx, `DELETE FROM logistics WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("deleting item: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("checking deleted rows: %w", err)
	}
	if affected == 0 {
		return ErrItemNotFound
	}
	return nil
}

// SetItemImage stores an item's photo. Returns ErrItemNotFound if the ID
// does not exist.
func SetItemImage(ctx context.Context, db *sql.DB, id int64, image []byte, mime string) error {
	result, err := db.ExecContext(ctx,
		`UPDATE logistics SET image = ?, image_mime = ? WHERE id = ?`,
		image, mime, id,
	)
	if err != nil {
		return fmt.Errorf("setting item image: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("checking updated rows: %w", err)
	}
	if affected == 0 {
		return ErrItemNotFound
	}
	return nil
}

// GetItemImage returns an item's photo and MIME type. Returns nil data when
// the item does not exist or has no photo.
func GetItemImage(ctx context.Context, db *sql.DB, id int64) ([]byte, string, error) {
	var image []byte
	var mime sql.NullString
	err := db.QueryRowContext(ctx,
		`SELECT image, image_mime FROM logistics WHERE id = ?`, id,
	).Scan(&image, &mime)
	if err == sql.ErrNoRows {
		return nil, "", nil
	}
	if err != nil {
		return nil, "", fmt.Errorf("getting item image: %w", err)
	}
	return image, mime.String, nil
}
