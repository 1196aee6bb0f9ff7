package service

import "testing"

func TestHashPassword_Salted(t *testing.T) {
	h1, err := HashPassword("secret123")
	if err != nil {
		t.Fatalf("hash failed: %v", err)
	}
	h2, err := HashPassword("secret123")
	if err != nil {
		t.Fatalf("hash failed: %v", err)
	}
	if h1 == h2 {
		t.Fatalf("expected different hashes for equal inputs, got identical")
	}
	if h1 == "secret123" {
		t.Fatalf("hash must not equal the plaintext")
	}
}

func TestVerifyPassword(t *testing.T) {
	hash, err := HashPassword("secret123")
	if err != nil {
		t.Fatalf("hash failed: %v", err)
	}

	if !VerifyPassword("secret123", hash) {
		t.Fatalf("expected match for correct password")
	}
	if VerifyPassword("wrong", hash) {
		t.Fatalf("expected mismatch for wrong password")
	}
	if VerifyPassword("secret123", "not-a-bcrypt-hash") {
		t.Fatalf("expected mismatch for malformed hash")
	}
}
