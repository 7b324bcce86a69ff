package utils

import (
	"errors"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

func TestGenerateJWTToken_Success(t *testing.T) {
	issuer := "test-issuer"
	userID := int64(123)
	duration := time.Hour
	key := "secret-key"

	token, err := GenerateJWTToken(issuer, userID, duration, key)

	if err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}
	if token.SignedString == "" {
		t.Error("expected non-empty SignedString")
	}
	if token.UserID != userID {
		t.Errorf("expected UserID %d, got %d", userID, token.UserID)
	}

	claims := &jwt.RegisteredClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token.SignedString, claims); err != nil {
		t.Fatalf("could not parse generated token: %v", err)
	}
	if claims.Issuer != issuer {
		t.Errorf("expected issuer %s, got %s", issuer, claims.Issuer)
	}
	if claims.Subject != "123" {
		t.Errorf("expected subject '123', got %s", claims.Subject)
	}
}

func TestGenerateJWTToken_InvalidParams(t *testing.T) {
	tests := []struct {
		name     string
		issuer   string
		duration time.Duration
		key      string
	}{
		{"empty issuer", "", time.Hour, "key"},
		{"zero duration", "iss", 0, "key"},
		{"negative duration", "iss", -time.Minute, "key"},
		{"empty key", "iss", time.Hour, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := GenerateJWTToken(tt.issuer, 1, tt.duration, tt.key)
			if err == nil {
				t.Error("expected error for invalid parameters, got nil")
			}
		})
	}
}

func TestValidateAndParseJWTToken_RoundTrip(t *testing.T) {
	token, err := GenerateJWTToken("vault", 7, time.Hour, "key")
	if err != nil {
		t.Fatalf("generate: %v", err)
	}

	parsed, err := ValidateAndParseJWTToken(token.SignedString, "key", "vault")
	if err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}
	if parsed.UserID != 7 {
		t.Errorf("expected UserID 7, got %d", parsed.UserID)
	}
	if parsed.ExpiresAt.IsZero() {
		t.Error("expected ExpiresAt to be set")
	}
}

func TestValidateAndParseJWTToken_Rejects(t *testing.T) {
	valid, err := GenerateJWTToken("vault", 7, time.Hour, "key")
	if err != nil {
		t.Fatalf("generate: %v", err)
	}

	expired := signClaims(t, jwt.SigningMethodHS256, &jwt.RegisteredClaims{
		Issuer:    "vault",
		Subject:   "7",
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Minute)),
	}, "key")

	noExpiry := signClaims(t, jwt.SigningMethodHS256, &jwt.RegisteredClaims{
		Issuer:  "vault",
		Subject: "7",
	}, "key")

	badSubject := signClaims(t, jwt.SigningMethodHS256, &jwt.RegisteredClaims{
		Issuer:    "vault",
		Subject:   "not-a-number",
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
	}, "key")

	emptySubject := signClaims(t, jwt.SigningMethodHS256, &jwt.RegisteredClaims{
		Issuer:    "vault",
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
	}, "key")

	otherAlg := signClaims(t, jwt.SigningMethodHS512, &jwt.RegisteredClaims{
		Issuer:    "vault",
		Subject:   "7",
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
	}, "key")

	tests := []struct {
		name   string
		token  string
		key    string
		issuer string
	}{
		{"garbage", "not.a.token", "key", "vault"},
		{"empty", "", "key", "vault"},
		{"wrong key", valid.SignedString, "other", "vault"},
		{"wrong issuer", valid.SignedString, "key", "someone-else"},
		{"expired", expired, "key", "vault"},
		{"no expiry", noExpiry, "key", "vault"},
		{"bad subject", badSubject, "key", "vault"},
		{"empty subject", emptySubject, "key", "vault"},
		{"unexpected algorithm", otherAlg, "key", "vault"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := ValidateAndParseJWTToken(tt.token, tt.key, tt.issuer); err == nil {
				t.Error("expected error, got nil")
			}
		})
	}
}

func TestParseBearerToken(t *testing.T) {
	tests := []struct {
		name    string
		header  string
		want    string
		wantErr bool
	}{
		{"valid", "Bearer abc.def.ghi", "abc.def.ghi", false},
		{"lower-case scheme", "bearer abc", "abc", false},
		{"extra spaces", "  Bearer   abc  ", "abc", false},
		{"empty", "", "", true},
		{"scheme only", "Bearer", "", true},
		{"wrong scheme", "Basic abc", "", true},
		{"too many parts", "Bearer a b", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseBearerToken(tt.header)
			if tt.wantErr {
				if !errors.Is(err, ErrInvalidAuthorizationHeader) {
					t.Errorf("expected ErrInvalidAuthorizationHeader, got %v", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.want {
				t.Errorf("expected %q, got %q", tt.want, got)
			}
		})
	}
}

func signClaims(t *testing.T, method jwt.SigningMethod, claims jwt.Claims, key string) string {
	t.Helper()
	s, err := jwt.NewWithClaims(method, claims).SignedString([]byte(key))
	if err != nil {
		t.Fatalf("sign: %v", err)
	}
	return s
}
