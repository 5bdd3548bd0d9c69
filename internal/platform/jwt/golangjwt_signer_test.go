package jwt_test

import (
	"strings"
	"testing"
	"time"

	"github.com/lumyn/showdown/internal/config"
	"github.com/lumyn/showdown/internal/game"
	"github.com/lumyn/showdown/internal/platform/jwt"
)

const testKey = "0123456789abcdef0123456789abcdef"

func newTestSigner() jwt.Signer {
	cfg := &config.JWT{
		JTILength: 16,
		Issuer:    "showdown",
	}
	return jwt.NewGolangJWTSigner(cfg, testKey)
}

func TestGolangJWTSigner_SignAndVerify(t *testing.T) {
	t.Parallel()

	signer := newTestSigner()
	claims := jwt.Claims{
		PlayerID: "abc123",
		Room:     "room1",
		Role:     game.RolePlayer1,
	}

	token, err := signer.Sign(claims, time.Hour)
	if err != nil {
		t.Fatalf("signer.Sign() error = %v", err)
	}
	if token == "" {
		t.Fatal("signer.Sign() returned an empty token")
	}

	got, err := signer.Verify(token)
	if err != nil {
		t.Fatalf("signer.Verify() error = %v", err)
	}

	if got.PlayerID != claims.PlayerID {
		t.Errorf("got.PlayerID = %q, want: %q", got.PlayerID, claims.PlayerID)
	}
	if got.Room != claims.Room {
		t.Errorf("got.Room = %q, want: %q", got.Room, claims.Room)
	}
	if got.Role != claims.Role {
		t.Errorf("got.Role = %q, want: %q", got.Role, claims.Role)
	}
}

func TestGolangJWTSigner_VerifyExpired(t *testing.T) {
	t.Parallel()

	signer := newTestSigner()
	claims := jwt.Claims{PlayerID: "abc123", Room: "room1", Role: game.RolePlayer2}

	token, err := signer.Sign(claims, -time.Minute)
	if err != nil {
		t.Fatalf("signer.Sign() error = %v", err)
	}

	if _, err := signer.Verify(token); err == nil {
		t.Error("signer.Verify() error = nil, want: token expired error")
	}
}

func TestGolangJWTSigner_VerifyTampered(t *testing.T) {
	t.Parallel()

	signer := newTestSigner()
	claims := jwt.Claims{PlayerID: "abc123", Room: "room1", Role: game.RolePlayer1}

	token, err := signer.Sign(claims, time.Hour)
	if err != nil {
		t.Fatalf("signer.Sign() error = %v", err)
	}

	tampered := token[:len(token)-2] + "xx"
	if tampered == token {
		tampered = strings.TrimSuffix(token, "a") + "b"
	}

	if _, err := signer.Verify(tampered); err == nil {
		t.Error("signer.Verify() error = nil, want: signature error")
	}
}

func TestGolangJWTSigner_VerifyGarbage(t *testing.T) {
	t.Parallel()

	signer := newTestSigner()
	if _, err := signer.Verify("not-a-token"); err == nil {
		t.Error("signer.Verify() error = nil, want: parse error")
	}
}
