package api

import (
	"database/sql"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/naufalh/mapala/internal/imaging"
	"github.com/naufalh/mapala/internal/model"
	"github.com/naufalh/mapala/internal/store"
)

// ItemsHandler handles logistics catalog endpoints.
type ItemsHandler struct {
	DB *sql.DB
}

type itemRequest struct {
	ItemName    string `json:"item_name"`
	Quantity    int64  `json:"quantity"`
	Description string `json:"description"`
}

// List handles GET /logistics. Open to guests.
func (h *ItemsHandler) List(w http.ResponseWriter, r *http.Request) {
	items, err := store.ListItems(r.Context(), h.DB)
	if err != nil {
		jsonError(w, http.StatusInternalServerError, "Server error")
		return
	}
	if items == nil {
		items = []model.Item{}
	}
	jsonResponse(w, http.StatusOK, items)
}

// Create handles POST /logistics. Absent fields are stored as-is: the
// catalog is deliberately permissive about what an item record carries.
func (h *ItemsHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req itemRequest
	if err := decodeJSON(r, &req); err != nil {
		jsonError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	item, err := store.CreateItem(r.Context(), h.DB, req.ItemName, req.Quantity, req.Description)
	if err != nil {
		jsonError(w, http.StatusInternalServerError, "Server error")
		return
	}

	if claims := GetSession(r.Context()); claims != nil {
		slog.Info("item created", "item", item.ID, "user", claims.Username)
	}
	jsonResponse(w, http.StatusOK, item)
}

// Update handles PUT /logistics/{id}.
func (h *ItemsHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		jsonError(w, http.StatusBadRequest, "Invalid item id")
		return
	}

	var req itemRequest
	if err := decodeJSON(r, &req); err != nil {
		jsonError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	err = store.UpdateItem(r.Context(), h.DB, id, req.ItemName, req.Quantity, req.Description)
	if errors.Is(err, store.ErrItemNotFound) {
		jsonError(w, http.StatusNotFound, "Item not found")
		return
	}
	if err != nil {
		jsonError(w, http.StatusInternalServerError, "Server error")
		return
	}

	item, err := store.GetItem(r.Context(), h.DB, id)
	if err != nil {
		jsonError(w, http.StatusInternalServerError, "Server error")
		return
	}
	jsonResponse(w, http.StatusOK, item)
}

// Delete handles DELETE /logistics/{id}. Borrowing history for the item is
// kept; the report join drops it.
func (h *ItemsHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		jsonError(w, http.StatusBadRequest, "Invalid item id")
		return
	}

	err = store.DeleteItem(r.Context(), h.DB, id)
	if errors.Is(err, store.ErrItemNotFound) {
		jsonError(w, http.StatusNotFound, "Item not found")
		return
	}
	if err != nil {
		jsonError(w, http.StatusInternalServerError, "Server error")
		return
	}

	if claims := GetSession(r.Context()); claims != nil {
		slog.Info("item deleted", "item", id, "user", claims.Username)
	}
	jsonResponse(w, http.StatusOK, map[string]string{"message": "Item deleted"})
}

// UploadImage handles PUT /logistics/{id}/image.
func (h *ItemsHandler) UploadImage(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		jsonError(w, http.StatusBadRequest, "Invalid item id")
		return
	}

	// Limit to 5 MB.
	r.Body = http.MaxBytesReader(w, r.Body, 5<<20)

	if err := r.ParseMultipartForm(5 << 20); err != nil {
		jsonError(w, http.StatusBadRequest, "File too large or invalid multipart form")
		return
	}

	file, _, err := r.FormFile("image")
	if err != nil {
		jsonError(w, http.StatusBadRequest, "Image file required")
		return
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		jsonError(w, http.StatusInternalServerError, "Server error")
		return
	}

	processed, mime, err := imaging.Normalize(data)
	if err != nil {
		jsonError(w, http.StatusBadRequest, "Image must be JPEG or PNG")
		return
	}

	err = store.SetItemImage(r.Context(), h.DB, id, processed, mime)
	if errors.Is(err, store.ErrItemNotFound) {
		jsonError(w, http.StatusNotFound, "Item not found")
		return
	}
	if err != nil {
		jsonError(w, http.StatusInternalServerError, "Server error")
		return
	}

	jsonResponse(w, http.StatusOK, map[string]string{"message": "Image uploaded"})
}

// GetImage handles GET /logistics/{id}/image. Open to guests, like the
// catalog listing.
func (h *ItemsHandler) GetImage(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		jsonError(w, http.StatusBadRequest, "Invalid item id")
		return
	}

	data, mime, err := store.GetItemImage(r.Context(), h.DB, id)
	if err != nil {
		jsonError(w, http.StatusInternalServerError, "Server error")
		return
	}
	if data == nil {
		jsonError(w, http.StatusNotFound, "No image")
		return
	}

	w.Header().Set("Content-Type", mime)
	w.Header().Set("Cache-Control", "public, max-age=3600")
	w.Write(data)
}
