package api

import (
	"database/sql"
	"net/http"
)

// NewRouter creates the API router with all endpoints registered.
func NewRouter(db *sql.DB, sessionSecret string) http.Handler {
	mux := http.NewServeMux()

	authHandler := &AuthHandler{DB: db, Secret: sessionSecret}
	itemsHandler := &ItemsHandler{DB: db}
	borrowingsHandler := &BorrowingsHandler{DB: db}

	sessionMW := RequireSession(sessionSecret, db)

	// Accounts and sessions.
	mux.HandleFunc("POST /register", authHandler.Register)
	mux.HandleFunc("POST /login", authHandler.Login)
	mux.HandleFunc("POST /logout", authHandler.Logout)

	// Catalog: reads are open to guests, writes need a session.
	mux.HandleFunc("GET /logistics", itemsHandler.List)
	mux.Handle("POST /logistics", sessionMW(http.HandlerFunc(itemsHandler.Create)))
	mux.Handle("PUT /logistics/{id}", sessionMW(http.HandlerFunc(itemsHandler.Update)))
	mux.Handle("DELETE /logistics/{id}", sessionMW(http.HandlerFunc(itemsHandler.Delete)))
	mux.Handle("PUT /logistics/{id}/image", sessionMW(http.HandlerFunc(itemsHandler.UploadImage)))
	mux.HandleFunc("GET /logistics/{id}/image", itemsHandler.GetImage)

	// Borrowing: recording is open (walk-up borrowers have no account),
	// the report is not.
	mux.HandleFunc("POST /borrow", borrowingsHandler.Borrow)
	mux.Handle("GET /borrowings", sessionMW(http.HandlerFunc(borrowingsHandler.Recent)))

	return mux
}
