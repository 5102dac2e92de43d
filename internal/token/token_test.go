package token

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

func TestIssueAndVerify(t *testing.T) {
	svc := New("test-secret", time.Hour)

	signed, expiresAt, err := svc.Issue("Poovarasan")
	if err != nil {
		t.Fatalf("issue: %v", err)
	}
	if signed == "" {
		t.Fatal("expected a token")
	}
	if remaining := time.Until(expiresAt); remaining < 59*time.Minute || remaining > time.Hour {
		t.Fatalf("unexpected expiry %v", expiresAt)
	}

	username, err := svc.Verify(signed)
	if err != nil {
		t.Fatalf("verify: %v", err)
	}
	if username != "Poovarasan" {
		t.Fatalf("expected subject Poovarasan, got %q", username)
	}
}

func TestVerifyTamperedSignature(t *testing.T) {
	svc := New("test-secret", time.Hour)
	signed, _, err := svc.Issue("Poovarasan")
	if err != nil {
		t.Fatalf("issue: %v", err)
	}

	last := signed[len(signed)-1]
	flipped := byte('A')
	if last == 'A' {
		flipped = 'B'
	}
	tampered := signed[:len(signed)-1] + string(flipped)

	if _, err := svc.Verify(tampered); err != ErrInvalidToken {
		t.Fatalf("expected ErrInvalidToken, got %v", err)
	}
}

func TestVerifyWrongSecret(t *testing.T) {
	signed, _, err := New("secret-one", time.Hour).Issue("Poovarasan")
	if err != nil {
		t.Fatalf("issue: %v", err)
	}
	if _, err := New("secret-two", time.Hour).Verify(signed); err != ErrInvalidToken {
		t.Fatalf("expected ErrInvalidToken, got %v", err)
	}
}

func TestVerifyExpired(t *testing.T) {
	signed, _, err := New("test-secret", -time.Minute).Issue("Poovarasan")
	if err != nil {
		t.Fatalf("issue: %v", err)
	}
	if _, err := New("test-secret", -time.Minute).Verify(signed); err != ErrInvalidToken {
		t.Fatalf("expected ErrInvalidToken, got %v", err)
	}
}

func TestVerifyExpiryBoundary(t *testing.T) {
	svc := New("test-secret", 24*time.Hour)
	issuedAt := time.Now().UTC().Add(-24 * time.Hour)

	cases := []struct {
		name      string
		expiresAt time.Time
		valid     bool
	}{
		{"one minute left", issuedAt.Add(24*time.Hour + time.Minute), true},
		{"one minute past", issuedAt.Add(24*time.Hour - time.Minute), false},
	}

	for _, tt := range cases {
		signed := signAt(t, "test-secret", "Poovarasan", issuedAt, tt.expiresAt)
		_, err := svc.Verify(signed)
		if tt.valid && err != nil {
			t.Fatalf("%s: expected valid, got %v", tt.name, err)
		}
		if !tt.valid && err != ErrInvalidToken {
			t.Fatalf("%s: expected ErrInvalidToken, got %v", tt.name, err)
		}
	}
}

func TestVerifyMissingSubject(t *testing.T) {
	now := time.Now().UTC()
	signed := signAt(t, "test-secret", "", now, now.Add(time.Hour))
	if _, err := New("test-secret", time.Hour).Verify(signed); err != ErrInvalidToken {
		t.Fatalf("expected ErrInvalidToken, got %v", err)
	}
}

func TestVerifyRejectsUnsignedAlgorithm(t *testing.T) {
	unsigned := jwt.NewWithClaims(jwt.SigningMethodNone, jwt.RegisteredClaims{
		Subject:   "Poovarasan",
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
	})
	signed, err := unsigned.SignedString(jwt.UnsafeAllowNoneSignatureType)
	if err != nil {
		t.Fatalf("sign: %v", err)
	}
	if _, err := New("test-secret", time.Hour).Verify(signed); err != ErrInvalidToken {
		t.Fatalf("expected ErrInvalidToken, got %v", err)
	}
}

func signAt(t *testing.T, secret, subject string, issuedAt, expiresAt time.Time) string {
	t.Helper()
	claims := jwt.RegisteredClaims{
		Subject:   subject,
		IssuedAt:  jwt.NewNumericDate(issuedAt),
		ExpiresAt: jwt.NewNumericDate(expiresAt),
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
	if err != nil {
		t.Fatalf("sign: %v", err)
	}
	return signed
}
