package utils

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt"
)

func initTestKey(t *testing.T) {
	t.Helper()
	t.Setenv("ACCESS_TOKEN_SECRET", "test-secret")
	if err := InitJWT(); err != nil {
		t.Fatalf("InitJWT: %v", err)
	}
}

func TestInitJWTMissingSecret(t *testing.T) {
	t.Setenv("ACCESS_TOKEN_SECRET", "")
	if err := InitJWT(); err == nil {
		t.Error("expected error for missing secret")
	}
}

func TestGenerateAndValidate(t *testing.T) {
	initTestKey(t)

	token, err := GenerateJWT("user@example.com", "Test User")
	if err != nil {
		t.Fatalf("GenerateJWT: %v", err)
	}

	claims, err := ValidateJWT(token)
	if err != nil {
		t.Fatalf("ValidateJWT: %v", err)
	}
	if claims.Email != "user@example.com" {
		t.Errorf("email = %q, want user@example.com", claims.Email)
	}
	if claims.Name != "Test User" {
		t.Errorf("name = %q, want Test User", claims.Name)
	}

	remaining := time.Until(time.Unix(claims.ExpiresAt, 0))
	if remaining < 55*time.Minute || remaining > 65*time.Minute {
		t.Errorf("expiry %v from now, want about 1h", remaining)
	}
}

func TestValidateTamperedToken(t *testing.T) {
	initTestKey(t)

	token, err := GenerateJWT("user@example.com", "")
	if err != nil {
		t.Fatalf("GenerateJWT: %v", err)
	}

	if _, err := ValidateJWT(token + "x"); err == nil {
		t.Error("expected error for tampered token")
	}
}

func TestValidateMalformedToken(t *testing.T) {
	initTestKey(t)

	if _, err := ValidateJWT("not-a-token"); err == nil {
		t.Error("expected error for malformed token")
	}
}

func TestValidateExpiredToken(t *testing.T) {
	initTestKey(t)

	claims := &Claims{
		Email: "user@example.com",
		StandardClaims: jwt.StandardClaims{
			ExpiresAt: time.Now().Add(-1 * time.Hour).Unix(),
			IssuedAt:  time.Now().Add(-2 * time.Hour).Unix(),
		},
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("test-secret"))
	if err != nil {
		t.Fatalf("signing expired token: %v", err)
	}

	if _, err := ValidateJWT(token); err == nil {
		t.Error("expected error for expired token")
	}
}

func TestValidateWrongKey(t *testing.T) {
	initTestKey(t)

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, &Claims{
		Email: "user@example.com",
		StandardClaims: jwt.StandardClaims{
			ExpiresAt: time.Now().Add(time.Hour).Unix(),
		},
	}).SignedString([]byte("other-secret"))
	if err != nil {
		t.Fatalf("signing token: %v", err)
	}

	if _, err := ValidateJWT(token); err == nil {
		t.Error("expected error for token signed with wrong key")
	}
}
