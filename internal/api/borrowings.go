package api

import (
	"database/sql"
	"errors"
	"net/http"
	"strconv"

	"github.com/naufalh/mapala/internal/model"
	"github.com/naufalh/mapala/internal/store"
)

// BorrowingsHandler handles the borrowing ledger endpoints.
type BorrowingsHandler struct {
	DB *sql.DB
}

type borrowRequest struct {
	ItemID       int64  `json:"item_id"`
	BorrowerName string `json:"borrower_name"`
	Quantity     int64  `json:"quantity"`
}

// maxReportLimit caps the recent-borrowings report size.
const maxReportLimit = 100

// Borrow handles POST /borrow. The endpoint is open: equipment is handed
// out at the storeroom without an account.
func (h *BorrowingsHandler) Borrow(w http.ResponseWriter, r *http.Request) {
	var req borrowRequest
	if err := decodeJSON(r, &req); err != nil {
		jsonError(w, http.StatusBadRequest, "All fields are required")
		return
	}

	if req.ItemID == 0 || req.BorrowerName == "" || req.Quantity <= 0 {
		jsonError(w, http.StatusBadRequest, "All fields are required")
		return
	}

	borrowing, err := store.BorrowItem(r.Context(), h.DB, req.ItemID, req.BorrowerName, req.Quantity)
	if errors.Is(err, store.ErrItemNotFound) {
		jsonError(w, http.StatusNotFound, "Item not found")
		return
	}
	if errors.Is(err, store.ErrInsufficientStock) {
		jsonError(w, http.StatusBadRequest, "Not enough quantity available")
		return
	}
	if err != nil {
		jsonError(w, http.StatusInternalServerError, "Server error")
		return
	}

	jsonResponse(w, http.StatusOK, borrowing)
}

// Recent handles GET /borrowings. Accepts an optional ?limit= parameter,
// defaulting to 10.
func (h *BorrowingsHandler) Recent(w http.ResponseWriter, r *http.Request) {
	limit := 10
	if v := r.URL.Query().Get("limit"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n <= 0 {
			jsonError(w, http.StatusBadRequest, "Invalid limit")
			return
		}
		limit = n
	}
	if limit > maxReportLimit {
		limit = maxReportLimit
	}

	records, err := store.RecentBorrowings(r.Context(), h.DB, limit)
	if err != nil {
		jsonError(w, http.StatusInternalServerError, "Server error")
		return
	}
	if records == nil {
		records = []model.BorrowingRecord{}
	}
	jsonResponse(w, http.StatusOK, records)
}
