package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/go-redis/redis/v8"
)

func TestTokenService_IssueAndAuthenticate(t *testing.T) {
	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	auth := NewAuthService(rdb)
	ctx := context.Background()

	token, err := auth.IssueToken(ctx, 42, time.Hour)
	if err != nil {
		t.Fatalf("IssueToken: %v", err)
	}
	if !mr.Exists("pt:token:" + token) {
		t.Fatalf("expected token key in redis")
	}

	uid, err := auth.Authenticate(ctx, token)
	if err != nil {
		t.Fatalf("Authenticate: %v", err)
	}
	if uid != 42 {
		t.Fatalf("expected 42, got %d", uid)
	}

	// 过期后失效
	mr.FastForward(2 * time.Hour)
	if _, err := auth.Authenticate(ctx, token); !errors.Is(err, ErrTokenInvalid) {
		t.Fatalf("expected ErrTokenInvalid after ttl, got %v", err)
	}
}

func TestTokenService_RevokeAll(t *testing.T) {
	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	auth := NewAuthService(rdb)
	ctx := context.Background()

	t1, _ := auth.IssueToken(ctx, 7, 0)
	t2, _ := auth.IssueToken(ctx, 7, 0)

	if err := auth.RevokeToken(ctx, t1); err != nil {
		t.Fatalf("RevokeToken: %v", err)
	}
	if _, err := auth.Authenticate(ctx, t1); err == nil {
		t.Fatalf("expected revoked token to fail")
	}
	if _, err := auth.Authenticate(ctx, t2); err != nil {
		t.Fatalf("other token should still work: %v", err)
	}

	if err := auth.RevokeAllTokensByUser(ctx, 7); err != nil {
		t.Fatalf("RevokeAllTokensByUser: %v", err)
	}
	if _, err := auth.Authenticate(ctx, t2); err == nil {
		t.Fatalf("expected all tokens revoked")
	}
}

func TestAuthService_Authenticate_Missing(t *testing.T) {
	auth := NewAuthService(nil)
	if _, err := auth.Authenticate(context.Background(), "  "); !errors.Is(err, ErrTokenMissing) {
		t.Fatalf("expected ErrTokenMissing, got %v", err)
	}
}
