package hash_test

import (
	"testing"

	"github.com/lumyn/showdown/internal/config"
	"github.com/lumyn/showdown/internal/platform/hash"
)

func newTestHasher() *hash.Argon2Hasher {
	cfg := &config.Argon2{
		Memory:     8192,
		Iterations: 1,
		Threads:    1,
		SaltLength: 16,
		KeyLength:  32,
	}
	return hash.NewArgon2Hasher(cfg, "test-pepper")
}

func TestArgon2Hasher_HashAndVerify(t *testing.T) {
	t.Parallel()

	hasher := newTestHasher()

	const passcode = "hunter2"
	hashed, err := hasher.Hash(passcode)
	if err != nil {
		t.Fatalf("hasher.Hash() error = %v", err)
	}

	ok, err := hasher.Verify(passcode, hashed)
	if err != nil {
		t.Fatalf("hasher.Verify() error = %v", err)
	}
	if !ok {
		t.Error("hasher.Verify() = false, want: true")
	}

	ok, err = hasher.Verify("wrong", hashed)
	if err != nil {
		t.Fatalf("hasher.Verify() error = %v", err)
	}
	if ok {
		t.Error("hasher.Verify() with wrong passcode = true, want: false")
	}
}

func TestArgon2Hasher_HashIsSalted(t *testing.T) {
	t.Parallel()

	hasher := newTestHasher()

	first, err := hasher.Hash("hunter2")
	if err != nil {
		t.Fatalf("hasher.Hash() error = %v", err)
	}
	second, err := hasher.Hash("hunter2")
	if err != nil {
		t.Fatalf("hasher.Hash() error = %v", err)
	}

	if first == second {
		t.Error("two hashes of the same passcode are equal, want: different salts")
	}
}

func TestArgon2Hasher_VerifyMalformed(t *testing.T) {
	t.Parallel()

	hasher := newTestHasher()

	if _, err := hasher.Verify("hunter2", "not-a-hash"); err == nil {
		t.Error("hasher.Verify() error = nil, want: format error")
	}
}
