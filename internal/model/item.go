package model

// Item is a logistics catalog entry. Quantity is decremented by borrowings
// and never drops below zero.
type Item struct {
	ID          int64  `json:"id"`
	ItemName    string `json:"item_name"`
	Quantity    int64  `json:"quantity"`
	Description string `json:"description"`
	ImageMime   string `json:"image_mime,omitempty"`
}
