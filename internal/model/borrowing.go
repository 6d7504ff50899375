package model

import "time"

// Borrowing is one ledger entry: somebody took some quantity of an item.
// The ledger is append-only; there is no return operation.
type Borrowing struct {
	ID           int64     `json:"id"`
	ItemID       int64     `json:"item_id"`
	BorrowerName string    `json:"borrower_name"`
	Quantity     int64     `json:"quantity"`
	BorrowDate   time.Time `json:"borrow_date"`
}

// BorrowingRecord is a Borrowing annotated with its item's current name,
// as returned by the recent-borrowings report. Borrowings whose item has
// since been deleted do not appear in the report.
type BorrowingRecord struct {
	ID           int64     `json:"id"`
	BorrowerName string    `json:"borrower_name"`
	Quantity     int64     `json:"quantity"`
	BorrowDate   time.Time `json:"borrow_date"`
	ItemName     string    `json:"item_name"`
}
