package api

import (
	"database/sql"
	"errors"
	"log/slog"
	"net/http"

	"golang.org/x/crypto/bcrypt"

	"github.com/naufalh/mapala/internal/auth"
	"github.com/naufalh/mapala/internal/store"
)

// AuthHandler handles registration, login and logout.
type AuthHandler struct {
	DB     *sql.DB
	Secret string
}

type credentialsRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// Register handles POST /register.
func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req credentialsRequest
	if err := decodeJSON(r, &req); err != nil {
		jsonError(w, http.StatusBadRequest, "Username and password required")
		return
	}

	if req.Username == "" || req.Password == "" {
		jsonError(w, http.StatusBadRequest, "Username and password required")
		return
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		jsonError(w, http.StatusInternalServerError, "Server error")
		return
	}

	user, err := store.CreateUser(r.Context(), h.DB, req.Username, string(hash))
	if errors.Is(err, store.ErrUsernameTaken) {
		jsonError(w, http.StatusBadRequest, "Username already exists")
		return
	}
	if err != nil {
		jsonError(w, http.StatusInternalServerError, "Server error")
		return
	}

	slog.Info("user registered", "user", user.Username)
	jsonResponse(w, http.StatusOK, map[string]string{"message": "User registered successfully"})
}

// Login handles POST /login. A successful login sets the session cookie.
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req credentialsRequest
	if err := decodeJSON(r, &req); err != nil {
		jsonError(w, http.StatusBadRequest, "Invalid username or password")
		return
	}

	user, err := store.GetUserByUsername(r.Context(), h.DB, req.Username)
	if err != nil {
		jsonError(w, http.StatusInternalServerError, "Server error")
		return
	}
	if user == nil {
		jsonError(w, http.StatusBadRequest, "Invalid username or password")
		return
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		slog.Warn("login failed", "username", req.Username, "remote", r.RemoteAddr)
		jsonError(w, http.StatusBadRequest, "Invalid username or password")
		return
	}

	token, err := auth.NewSessionToken(h.Secret, user.ID, user.Username)
	if err != nil {
		jsonError(w, http.StatusInternalServerError, "Server error")
		return
	}

	http.SetCookie(w, &http.Cookie{
		Name:     SessionCookie,
		Value:    token,
		Path:     "/",
		HttpOnly: true,
		Secure:   false,
		SameSite: http.SameSiteLaxMode,
		MaxAge:   int(auth.SessionExpiry.Seconds()),
	})

	slog.Info("user logged in", "user", user.Username)
	jsonResponse(w, http.StatusOK, map[string]string{"message": "Login successful"})
}

// Logout handles POST /logout. Logging out without a session, or twice, is
// not an error.
func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	if cookie, err := r.Cookie(SessionCookie); err == nil && cookie.Value != "" {
		if claims, err := auth.ValidateSessionToken(h.Secret, cookie.Value); err == nil && claims.ID != "" {
			if err := store.RevokeSession(r.Context(), h.DB, claims.ID, claims.ExpiresAt.Time); err != nil {
				slog.Error("failed to revoke session", "error", err)
			}
		}
	}

	http.SetCookie(w, &http.Cookie{
		Name:     SessionCookie,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
	})

	jsonResponse(w, http.StatusOK, map[string]string{"message": "Logged out"})
}
