package crypto

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

const testSessionID = "4f6c1b2e-8d7a-4c55-9a51-2b9b0c1e7f10"

func signClaims(t *testing.T, claims Claims, secret string) string {
	t.Helper()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	s, err := token.SignedString([]byte(secret))
	if err != nil {
		t.Fatalf("SignedString() unexpected error: %v", err)
	}
	return s
}

func TestGenerateToken(t *testing.T) {
	token, err := GenerateToken(testSessionID, "test-secret", time.Hour)
	if err != nil {
		t.Fatalf("GenerateToken() unexpected error: %v", err)
	}
	if token == "" {
		t.Fatal("GenerateToken() returned empty string")
	}
}

func TestValidateTokenValid(t *testing.T) {
	secret := "test-secret"

	token, err := GenerateToken(testSessionID, secret, time.Hour)
	if err != nil {
		t.Fatalf("GenerateToken() unexpected error: %v", err)
	}

	claims, err := ValidateToken(token, secret)
	if err != nil {
		t.Fatalf("ValidateToken() unexpected error: %v", err)
	}
	if claims.SessionID() != testSessionID {
		t.Errorf("ValidateToken() SessionID = %q, want %q", claims.SessionID(), testSessionID)
	}
}

func TestValidateTokenInvalid(t *testing.T) {
	_, err := ValidateToken("not-a-valid-token", "test-secret")
	if err == nil {
		t.Error("ValidateToken() expected error for invalid token")
	}
}

func TestValidateTokenWrongSecret(t *testing.T) {
	token, err := GenerateToken(testSessionID, "correct-secret", time.Hour)
	if err != nil {
		t.Fatalf("GenerateToken() unexpected error: %v", err)
	}

	_, err = ValidateToken(token, "wrong-secret")
	if err == nil {
		t.Error("ValidateToken() expected error for wrong secret")
	}
}

func TestValidateTokenExpired(t *testing.T) {
	token, err := GenerateToken(testSessionID, "test-secret", -time.Minute)
	if err != nil {
		t.Fatalf("GenerateToken() unexpected error: %v", err)
	}

	_, err = ValidateToken(token, "test-secret")
	if err == nil {
		t.Error("ValidateToken() expected error for expired token")
	}
}

func TestValidateTokenRejectsBadClaims(t *testing.T) {
	secret := "test-secret"
	valid := func() Claims {
		return Claims{RegisteredClaims: jwt.RegisteredClaims{
			ID:        testSessionID,
			Subject:   "operator",
			Issuer:    "fortipass",
			Audience:  jwt.ClaimStrings{"fortipass-api"},
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		}}
	}

	tests := []struct {
		name   string
		mutate func(c *Claims)
	}{
		{"wrong issuer", func(c *Claims) { c.Issuer = "wrong-issuer" }},
		{"wrong audience", func(c *Claims) { c.Audience = jwt.ClaimStrings{"wrong-audience"} }},
		{"wrong subject", func(c *Claims) { c.Subject = "someone-else" }},
		{"missing session id", func(c *Claims) { c.ID = "" }},
		{"missing expiry", func(c *Claims) { c.ExpiresAt = nil }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			claims := valid()
			tt.mutate(&claims)

			if _, err := ValidateToken(signClaims(t, claims, secret), secret); err == nil {
				t.Errorf("ValidateToken() expected error for %s", tt.name)
			}
		})
	}
}
