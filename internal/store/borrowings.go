package store

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/naufalh/mapala/internal/model"
)

// BorrowItem records a borrowing and decrements the item's stock in a single
// transaction. The decrement is conditional on sufficient stock and is the
// first statement in the transaction, so two concurrent borrows against the
// same item can never drive the quantity negative.
func BorrowItem(ctx context.Context, db *sql.DB, itemID int64, borrowerName string, quantity int64) (*model.Borrowing, error) {
	if quantity <= 0 {
		return nil, fmt.Errorf("quantity must be positive")
	}

	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback()

	// Writing first also takes the database write lock up front, so the
	// transaction never has to upgrade from a read.
	result, err := tx.ExecContext(ctx,
		`UPDATE logistics SET quantity = quantity - ? WHERE id = ? AND quantity >= ?`,
		quantity, itemID, quantity,
	)
	if err != nil {
		return nil, fmt.Errorf("decrementing stock: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return nil, fmt.Errorf("checking decremented rows: %w", err)
	}
	if affected == 0 {
		// Either the item does not exist or it has too little stock left.
		var available int64
		err := tx.QueryRowContext(ctx,
			`SELECT quantity FROM logistics WHERE id = ?`, itemID,
		).Scan(&available)
		if err == sql.ErrNoRows {
			return nil, ErrItemNotFound
		}
		if err != nil {
			return nil, fmt.Errorf("checking available quantity: %w", err)
		}
		return nil, fmt.Errorf("%w: have %d, need %d", ErrInsufficientStock, available, quantity)
	}

	result, err = tx.ExecContext(ctx,
		`INSERT INTO borrowings (item_id, borrower_name, quantity) VALUES (?, ?, ?)`,
		itemID, borrowerName, quantity,
	)
	if err != nil {
		return nil, fmt.Errorf("recording borrowing: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return nil, fmt.Errorf("getting borrowing id: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("committing borrowing: %w", err)
	}

	return GetBorrowing(ctx, db, id)
}

// GetBorrowing returns a borrowing by ID, or nil if none exists.
func GetBorrowing(ctx context.Context, db *sql.DB, id int64) (*model.Borrowing, error) {
	b := &model.Borrowing{}
	err := db.QueryRowContext(ctx,
		`SELECT id, item_id, borrower_name, quantity, borrow_date FROM borrowings WHERE id = ?`, id,
	).Scan(&b.ID, &b.ItemID, &b.BorrowerName, &b.Quantity, &b.BorrowDate)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("getting borrowing: %w", err)
	}
	return b, nil
}

// RecentBorrowings returns the most recent borrowings annotated with their
// item's name, newest first. Borrowings of deleted items are skipped by the
// join. The insertion ID breaks ties between same-second borrowings.
func RecentBorrowings(ctx context.Context, db *sql.DB, limit int) ([]model.BorrowingRecord, error) {
	if limit <= 0 {
		limit = 10
	}

	rows, err := db.QueryContext(ctx,
		`SELECT b.id, b.borrower_name, b.quantity, b.borrow_date, l.item_name
		 FROM borrowings b
		 JOIN logistics l ON l.id = b.item_id
		 ORDER BY b.borrow_date DESC, b.id DESC
		 LIMIT ?`, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("listing recent borrowings: %w", err)
	}
	defer rows.Close()

	var records []model.BorrowingRecord
	for rows.Next() {
		var rec model.BorrowingRecord
		var itemName sql.NullString
		if err := rows.Scan(&rec.ID, &rec.BorrowerName, &rec.Quantity, &rec.BorrowDate, &itemName); err != nil {
			return nil, fmt.Errorf("scanning borrowing: %w", err)
		}
		rec.ItemName = itemName.String
		records = append(records, rec)
	}
	return records, rows.Err()
}
