package api

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

func signToken(t *testing.T, secret []byte, staff bool, expiresIn time.Duration) string {
	t.Helper()
	claims := jwt.MapClaims{
		"sub":   "owner",
		"staff": staff,
		"exp":   time.Now().Add(expiresIn).Unix(),
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(secret)
	if err != nil {
		t.Fatalf("sign token: %v", err)
	}
	return signed
}

func TestRequireStaff(t *testing.T) {
	secret := []byte("test-secret")
	middleware := newAuthMiddleware(secret)

	var gotSubject string
	protected := middleware.requireStaff(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotSubject = ctxUserID(r.Context())
		w.WriteHeader(http.StatusNoContent)
	}))

	cases := []struct {
		name       string
		authHeader string
		wantStatus int
	}{
		{"no header", "", http.StatusUnauthorized},
		{"wrong scheme", "Basic abc", http.StatusUnauthorized},
		{"garbage token", "Bearer not-a-token", http.StatusUnauthorized},
		{"wrong secret", "Bearer " + signToken(t, []byte("other"), true, time.Hour), http.StatusUnauthorized},
		{"expired", "Bearer " + signToken(t, secret, true, -time.Hour), http.StatusUnauthorized},
		{"not staff", "Bearer " + signToken(t, secret, false, time.Hour), http.StatusForbidden},
		{"staff", "Bearer " + signToken(t, secret, true, time.Hour), http.StatusNoContent},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/admin/projects", nil)
			if c.authHeader != "" {
				req.Header.Set("Authorization", c.authHeader)
			}
			rec := httptest.NewRecorder()
			protected.ServeHTTP(rec, req)
			if rec.Code != c.wantStatus {
				t.Errorf("status = %d, want %d (body %s)", rec.Code, c.wantStatus, rec.Body.String())
			}
		})
	}

	if gotSubject != "owner" {
		t.Errorf("subject in context = %q, want owner", gotSubject)
	}
}
