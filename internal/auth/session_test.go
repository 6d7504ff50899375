package auth

import (
	"testing"
	"time"
)

func TestNewAndValidateSessionToken(t *testing.T) {
	secret := "test-secret-key"

	token, err := NewSessionToken(secret, 1, "andi")
	if err != nil {
		t.Fatalf("NewSessionToken: %v", err)
	}
	if token == "" {
		t.Fatal("expected non-empty token")
	}

	claims, err := ValidateSessionToken(secret, token)
	if err != nil {
		t.Fatalf("ValidateSessionToken: %v", err)
	}

	if claims.UserID != 1 {
		t.Errorf("expected user_id 1, got %d", claims.UserID)
	}
	if claims.Username != "andi" {
		t.Errorf("expected username 'andi', got %q", claims.Username)
	}
	if claims.ID == "" {
		t.Error("expected a JTI for revocation")
	}
}

func TestValidateSessionTokenWrongSecret(t *testing.T) {
	token, _ := NewSessionToken("secret1", 1, "andi")

	_, err := ValidateSessionToken("secret2", token)
	if err == nil {
		t.Error("expected error for wrong secret")
	}
}

func TestValidateSessionTokenInvalid(t *testing.T) {
	_, err := ValidateSessionToken("secret", "not-a-token")
	if err == nil {
		t.Error("expected error for invalid token")
	}
}

func TestSessionTokenExpiry(t *testing.T) {
	// Just verify the 24-hour expiry window is set correctly.
	secret := "test"
	token, _ := NewSessionToken(secret, 1, "test")
	claims, _ := ValidateSessionToken(secret, token)

	expiresAt := claims.ExpiresAt.Time
	expectedExpiry := time.Now().Add(SessionExpiry)

	// Should be within a few seconds.
	diff := expectedExpiry.Sub(expiresAt)
	if diff < -5*time.Second || diff > 5*time.Second {
		t.Errorf("session expiry too far from expected: diff=%v", diff)
	}
}
