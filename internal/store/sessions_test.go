package store

import (
	"context"
	"testing"
	"time"

	"github.com/naufalh/mapala/internal/db"
)

func TestRevokeAndCheckSession(t *testing.T) {
	database := db.NewTestDB(t)
	ctx := context.Background()

	revoked, err := IsSessionRevoked(ctx, database, "jti-1")
	if err != nil {
		t.Fatalf("IsSessionRevoked: %v", err)
	}
	if revoked {
		t.Error("expected session not to be revoked initially")
	}

	if err := RevokeSession(ctx, database, "jti-1", time.Now().Add(time.Hour)); err != nil {
		t.Fatalf("RevokeSession: %v", err)
	}

	revoked, err = IsSessionRevoked(ctx, database, "jti-1")
	if err != nil {
		t.Fatalf("IsSessionRevoked: %v", err)
	}
	if !revoked {
		t.Error("expected session to be revoked")
	}

	revoked, _ = IsSessionRevoked(ctx, database, "jti-2")
	if revoked {
		t.Error("expected different session not to be revoked")
	}
}

func TestRevokeSessionIdempotent(t *testing.T) {
	database := db.NewTestDB(t)
	ctx := context.Background()

	// Destroying the same session twice must not error.
	if err := RevokeSession(ctx, database, "jti-1", time.Now().Add(time.Hour)); err != nil {
		t.Fatalf("first RevokeSession: %v", err)
	}
	if err := RevokeSession(ctx, database, "jti-1", time.Now().Add(time.Hour)); err != nil {
		t.Fatalf("second RevokeSession: %v", err)
	}
}
