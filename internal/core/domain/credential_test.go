package domain

import (
	"strings"
	"testing"
)

func TestHashCredential_VerifyRoundTrip(t *testing.T) {
	stored, err := HashCredential("s3cret")
	if err != nil {
		t.Fatalf("HashCredential returned error: %v", err)
	}
	if !strings.Contains(stored, ":") {
		t.Fatalf("expected salt:key form, got %q", stored)
	}
	if stored == "s3cret" {
		t.Fatalf("credential stored in the clear")
	}

	if !VerifyCredential("s3cret", stored) {
		t.Fatalf("correct password rejected")
	}
	if VerifyCredential("wrong", stored) {
		t.Fatalf("wrong password accepted")
	}
}

func TestHashCredential_FreshSaltPerCall(t *testing.T) {
	a, err := HashCredential("same")
	if err != nil {
		t.Fatalf("HashCredential returned error: %v", err)
	}
	b, err := HashCredential("same")
	if err != nil {
		t.Fatalf("HashCredential returned error: %v", err)
	}
	if a == b {
		t.Fatalf("two hashes of the same password are identical")
	}
	if !VerifyCredential("same", a) || !VerifyCredential("same", b) {
		t.Fatalf("both hashes must verify the original password")
	}
}

func TestVerifyCredential_PlaintextFallback(t *testing.T) {
	// Stored values without a separator are legacy plaintext and compare
	// exactly.
	if !VerifyCredential("12345", "12345") {
		t.Fatalf("plaintext match rejected")
	}
	if VerifyCredential("12346", "12345") {
		t.Fatalf("plaintext mismatch accepted")
	}
}

func TestVerifyCredential_MalformedHash(t *testing.T) {
	if VerifyCredential("pw", "salt:not-hex") {
		t.Fatalf("malformed stored hash accepted")
	}
}

func TestIsHashedCredential(t *testing.T) {
	stored, err := HashCredential("pw")
	if err != nil {
		t.Fatalf("HashCredential returned error: %v", err)
	}
	if !IsHashedCredential(stored) {
		t.Fatalf("hashed credential not recognised")
	}
	if IsHashedCredential("12345") {
		t.Fatalf("plaintext recognised as hashed")
	}
}
