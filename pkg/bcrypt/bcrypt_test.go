package bcrypt

import (
	"testing"

	"golang.org/x/crypto/bcrypt"
)

func TestHashAndCompare(t *testing.T) {
	hash, err := HashPasswordCost("hunter22", bcrypt.MinCost)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !VerifyHash(hash) {
		t.Errorf("hash %q does not look like bcrypt", hash)
	}
	if err := ComparePassword(hash, "hunter22"); err != nil {
		t.Errorf("unexpected error: %v", err)
	}
	if err := ComparePassword(hash, "wrong"); err == nil {
		t.Error("expected mismatch error")
	}
}

func TestVerifyHash_RejectsPlainText(t *testing.T) {
	if VerifyHash("password") {
		t.Error("plain text should not verify as a hash")
	}
}
