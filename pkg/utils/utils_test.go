package utils

import (
	"testing"
	"time"
)

func TestTokenRoundTrip(t *testing.T) {
	token, err := GenerateToken("secret", "ws-123", time.Hour)
	if err != nil {
		t.Fatal(err)
	}

	claims, err := ValidateToken("secret", token)
	if err != nil {
		t.Fatalf("ValidateToken: %v", err)
	}
	if claims.WorkspaceID != "ws-123" {
		t.Fatalf("WorkspaceID = %q", claims.WorkspaceID)
	}
}

func TestValidateTokenRejectsWrongKey(t *testing.T) {
	token, _ := GenerateToken("secret", "ws-123", time.Hour)
	if _, err := ValidateToken("other", token); err == nil {
		t.Fatal("expected signature error")
	}
}

func TestValidateTokenRejectsExpired(t *testing.T) {
	token, _ := GenerateToken("secret", "ws-123", -time.Minute)
	if _, err := ValidateToken("secret", token); err == nil {
		t.Fatal("expected expiry error")
	}
}

func TestGenerateRandomKey(t *testing.T) {
	a, err := GenerateRandomKey(32)
	if err != nil {
		t.Fatal(err)
	}
	b, _ := GenerateRandomKey(32)
	if a == b || len(a) != 44 {
		t.Fatalf("keys %q %q", a, b)
	}
}
