package auth

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/dgrijalva/jwt-go"
)

const testSecret = "test-secret"

func signToken(t *testing.T, email string, expiry time.Time) string {
	t.Helper()
	claims := jwt.MapClaims{
		"sub":   "00000000-0000-0000-0000-000000000001",
		"email": email,
		"exp":   expiry.Unix(),
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(testSecret))
	if err != nil {
		t.Fatalf("sign token: %v", err)
	}
	return token
}

func guardedRequest(t *testing.T, authHeader string) *httptest.ResponseRecorder {
	t.Helper()
	authorizer := NewAuthorizer([]string{"owner@example.com"})
	var gotEmail string
	handler := Middleware(testSecret, authorizer)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotEmail = EmailFromContext(r.Context())
		w.WriteHeader(http.StatusOK)
	}))

	req := httptest.NewRequest(http.MethodGet, "/api/v1/menu", nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if rec.Code == http.StatusOK && gotEmail == "" {
		t.Error("handler ran without email in context")
	}
	return rec
}

func TestMiddlewareAllowsWhitelistedEmail(t *testing.T) {
	token := signToken(t, "Owner@Example.COM", time.Now().Add(time.Hour))
	rec := guardedRequest(t, "Bearer "+token)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
}

func TestMiddlewareForbidsNonWhitelistedEmail(t *testing.T) {
	token := signToken(t, "intruder@example.com", time.Now().Add(time.Hour))
	rec := guardedRequest(t, "Bearer "+token)
	if rec.Code != http.StatusForbidden {
		t.Fatalf("status = %d, want 403", rec.Code)
	}
}

func TestMiddlewareRejectsMissingToken(t *testing.T) {
	rec := guardedRequest(t, "")
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("status = %d, want 401", rec.Code)
	}
}

func TestMiddlewareRejectsExpiredToken(t *testing.T) {
	token := signToken(t, "owner@example.com", time.Now().Add(-time.Hour))
	rec := guardedRequest(t, "Bearer "+token)
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("status = %d, want 401", rec.Code)
	}
}

func TestMiddlewareRejectsTokenSignedWithWrongSecret(t *testing.T) {
	claims := jwt.MapClaims{"email": "owner@example.com", "exp": time.Now().Add(time.Hour).Unix()}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("other-secret"))
	if err != nil {
		t.Fatalf("sign token: %v", err)
	}
	rec := guardedRequest(t, "Bearer "+token)
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("status = %d, want 401", rec.Code)
	}
}
