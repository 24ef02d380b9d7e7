package auth

import (
	"strings"
	"testing"
)

func TestHashPassword_RoundTrip(t *testing.T) {
	hash, err := HashPassword("secret1")
	if err != nil {
		t.Fatalf("HashPassword() error = %v", err)
	}

	if hash == "secret1" {
		t.Fatal("hash equals plaintext")
	}
	if !strings.HasPrefix(hash, "$2") {
		t.Errorf("hash %q is not a bcrypt hash", hash)
	}

	if !CheckPassword("secret1", hash) {
		t.Error("CheckPassword() = false for correct password")
	}
	if CheckPassword("wrong", hash) {
		t.Error("CheckPassword() = true for wrong password")
	}
}

func TestHashPassword_FreshSaltPerCall(t *testing.T) {
	h1, err := HashPassword("secret1")
	if err != nil {
		t.Fatalf("HashPassword() error = %v", err)
	}
	h2, err := HashPassword("secret1")
	if err != nil {
		t.Fatalf("HashPassword() error = %v", err)
	}

	if h1 == h2 {
		t.Error("two hashes of the same password are identical, salt is not fresh")
	}

	if !CheckPassword("secret1", h1) || !CheckPassword("secret1", h2) {
		t.Error("CheckPassword() failed against independently salted hashes")
	}
}

func TestCheckPassword_GarbageHash(t *testing.T) {
	if CheckPassword("secret1", "not-a-bcrypt-hash") {
		t.Error("CheckPassword() = true for garbage hash")
	}
	if CheckPassword("secret1", "") {
		t.Error("CheckPassword() = true for empty hash")
	}
}
