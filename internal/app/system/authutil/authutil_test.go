package authutil

import (
	"testing"

	"golang.org/x/crypto/bcrypt"
)

func TestHashPassword_Valid(t *testing.T) {
	password := "SecurePassword123"

	hash, err := HashPassword(password)
	if err != nil {
		t.Fatalf("HashPassword failed: %v", err)
	}

	if len(hash) == 0 {
		t.Error("expected hash to be non-empty")
	}
	if string(hash) == password {
		t.Error("hash should not equal plain password")
	}
	// bcrypt hashes start with $2a$ or $2b$
	if hash[0] != '$' {
		t.Error("expected bcrypt hash to start with $")
	}
}

func TestHashPassword_DifferentHashesForSamePassword(t *testing.T) {
	password := "SecurePassword123"

	hash1, err := HashPassword(password)
	if err != nil {
		t.Fatalf("HashPassword failed: %v", err)
	}

	hash2, err := HashPassword(password)
	if err != nil {
		t.Fatalf("HashPassword failed: %v", err)
	}

	// bcrypt uses random salt, so hashes should be different
	if string(hash1) == string(hash2) {
		t.Error("expected different hashes for same password (random salt)")
	}
}

func TestCheckPassword_Correct(t *testing.T) {
	password := "SecurePassword123"

	hash, err := HashPassword(password)
	if err != nil {
		t.Fatalf("HashPassword failed: %v", err)
	}

	if !CheckPassword(hash, password) {
		t.Error("expected correct password to verify")
	}
}

func TestCheckPassword_Wrong(t *testing.T) {
	hash, err := HashPassword("SecurePassword123")
	if err != nil {
		t.Fatalf("HashPassword failed: %v", err)
	}

	if CheckPassword(hash, "WrongPassword") {
		t.Error("expected wrong password to fail verification")
	}
}

func TestCheckPassword_GarbageHash(t *testing.T) {
	if CheckPassword([]byte("not-a-bcrypt-hash"), "whatever") {
		t.Error("expected garbage hash to fail verification")
	}
}

func TestConfigure_OutOfRangeKeepsCurrent(t *testing.T) {
	orig := Cost()
	defer Configure(orig, nil)

	Configure(bcrypt.MaxCost+1, nil)
	if Cost() != orig {
		t.Errorf("cost changed after out-of-range Configure: got %d, want %d", Cost(), orig)
	}

	Configure(bcrypt.MinCost, nil)
	if Cost() != bcrypt.MinCost {
		t.Errorf("cost not applied: got %d, want %d", Cost(), bcrypt.MinCost)
	}
}
