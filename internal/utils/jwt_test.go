package utils

import "testing"

func TestGenerateAndParseToken(t *testing.T) {
	Configure("test_secret", 1)

	token, err := GenerateToken(42)
	if err != nil {
		t.Fatalf("GenerateToken: %v", err)
	}

	claims, err := ParseToken(token)
	if err != nil {
		t.Fatalf("ParseToken: %v", err)
	}
	if claims.UserID != 42 {
		t.Fatalf("expected user id 42, got %d", claims.UserID)
	}
}

func TestParseTokenRejectsGarbage(t *testing.T) {
	Configure("test_secret", 1)

	if _, err := ParseToken("not.a.token"); err == nil {
		t.Fatalf("expected parse failure")
	}
}

func TestParseTokenRejectsWrongSecret(t *testing.T) {
	Configure("secret_one", 1)
	token, err := GenerateToken(7)
	if err != nil {
		t.Fatalf("GenerateToken: %v", err)
	}

	Configure("secret_two", 1)
	if _, err := ParseToken(token); err == nil {
		t.Fatalf("expected token signed with another secret to fail")
	}
}
