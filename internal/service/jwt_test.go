package service

import (
	"strings"
	"testing"
	"time"
)

const (
	testSecret = "this-is-a-test-secret-with-32-bytes!"
	testExpiry = 24 * time.Hour
)

func TestNewJWTService_EmptySecret(t *testing.T) {
	_, err := NewJWTService("", testExpiry)
	if err == nil {
		t.Error("NewJWTService() should reject an empty secret")
	}
}

func TestGenerate_ValidateRoundTrip(t *testing.T) {
	svc, err := NewJWTService(testSecret, testExpiry)
	if err != nil {
		t.Fatalf("NewJWTService() error = %v", err)
	}

	token, err := svc.Generate(42, "testuser", false)
	if err != nil {
		t.Fatalf("Generate() error = %v", err)
	}
	if token == "" {
		t.Fatal("Generate() returned empty token")
	}

	claims, err := svc.ValidateToken(token)
	if err != nil {
		t.Fatalf("ValidateToken() error = %v", err)
	}

	if claims.UserID != 42 {
		t.Errorf("claims.UserID = %d, want 42", claims.UserID)
	}
	if claims.Username != "testuser" {
		t.Errorf("claims.Username = %s, want testuser", claims.Username)
	}
	if claims.IsAdmin {
		t.Error("claims.IsAdmin = true, want false")
	}
	if claims.ID == "" {
		t.Error("claims.ID (jti) should not be empty")
	}
}

func TestGenerate_UniqueTokenID(t *testing.T) {
	svc, _ := NewJWTService(testSecret, testExpiry)

	first, err := svc.Generate(1, "user", false)
	if err != nil {
		t.Fatalf("Generate() error = %v", err)
	}
	second, err := svc.Generate(1, "user", false)
	if err != nil {
		t.Fatalf("Generate() error = %v", err)
	}

	firstClaims, _ := svc.ValidateToken(first)
	secondClaims, _ := svc.ValidateToken(second)

	if firstClaims.ID == secondClaims.ID {
		t.Error("two tokens for the same identity should carry distinct identifiers")
	}
}

func TestValidateToken_WrongSecret(t *testing.T) {
	svc, _ := NewJWTService(testSecret, testExpiry)
	other, _ := NewJWTService("a-completely-different-signing-secret", testExpiry)

	token, err := svc.Generate(1, "user", false)
	if err != nil {
		t.Fatalf("Generate() error = %v", err)
	}

	if _, err := other.ValidateToken(token); err == nil {
		t.Error("ValidateToken() should reject a token signed with another secret")
	}
}

func TestValidateToken_Expired(t *testing.T) {
	svc, _ := NewJWTService(testSecret, -time.Minute)

	token, err := svc.Generate(1, "user", false)
	if err != nil {
		t.Fatalf("Generate() error = %v", err)
	}

	if _, err := svc.ValidateToken(token); err == nil {
		t.Error("ValidateToken() should reject an expired token")
	}
}

func TestValidateToken_Garbage(t *testing.T) {
	svc, _ := NewJWTService(testSecret, testExpiry)

	tests := []string{
		"",
		"not-a-token",
		strings.Repeat("a.", 10),
	}

	for _, tt := range tests {
		if _, err := svc.ValidateToken(tt); err == nil {
			t.Errorf("ValidateToken(%q) should fail", tt)
		}
	}
}

func TestGetExpiry(t *testing.T) {
	svc, _ := NewJWTService(testSecret, testExpiry)
	if svc.GetExpiry() != testExpiry {
		t.Errorf("GetExpiry() = %v, want %v", svc.GetExpiry(), testExpiry)
	}
}
