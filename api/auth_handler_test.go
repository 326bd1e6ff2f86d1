package api

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"golang.org/x/crypto/bcrypt"
)

func performLogin(t *testing.T, handler http.HandlerFunc, username, password string) *httptest.ResponseRecorder {
	t.Helper()
	body, _ := json.Marshal(loginRequest{Username: username, Password: password})
	req := httptest.NewRequest(http.MethodPost, "/auth/login", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	return rec
}

func TestLoginWithHashedPassword(t *testing.T) {
	hash, err := bcrypt.GenerateFromPassword([]byte("hunter2"), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("hash password: %v", err)
	}

	secret := []byte("test-secret")
	handler := newAuthHandler(secret, map[string]string{
		"ADMIN_USERNAME":      "owner",
		"ADMIN_PASSWORD_HASH": string(hash),
	})
	login := handler.login()

	rec := performLogin(t, login, "owner", "hunter2")
	if rec.Code != http.StatusOK {
		t.Fatalf("login status = %d, body %s", rec.Code, rec.Body.String())
	}

	var resp loginResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if resp.Token == "" {
		t.Fatal("login returned an empty token")
	}

	// The issued token must pass the staff gate.
	middleware := newAuthMiddleware(secret)
	protected := middleware.requireStaff(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	}))
	req := httptest.NewRequest(http.MethodGet, "/admin/profile", nil)
	req.Header.Set("Authorization", "Bearer "+resp.Token)
	gate := httptest.NewRecorder()
	protected.ServeHTTP(gate, req)
	if gate.Code != http.StatusNoContent {
		t.Errorf("issued token rejected by staff gate: %d", gate.Code)
	}

	for _, bad := range []struct{ username, password string }{
		{"owner", "wrong"},
		{"stranger", "hunter2"},
		{"owner", ""},
	} {
		rec := performLogin(t, login, bad.username, bad.password)
		if rec.Code != http.StatusUnauthorized {
			t.Errorf("login(%q, %q) status = %d, want 401", bad.username, bad.password, rec.Code)
		}
	}
}

func TestLoginWithPlaintextFallback(t *testing.T) {
	handler := newAuthHandler([]byte("test-secret"), map[string]string{
		"ADMIN_USERNAME": "owner",
		"ADMIN_PASSWORD": "devpass",
	})
	login := handler.login()

	if rec := performLogin(t, login, "owner", "devpass"); rec.Code != http.StatusOK {
		t.Errorf("login status = %d, want 200", rec.Code)
	}
	if rec := performLogin(t, login, "owner", "wrong"); rec.Code != http.StatusUnauthorized {
		t.Errorf("login status = %d, want 401", rec.Code)
	}
}

func TestLoginWithoutConfiguredPassword(t *testing.T) {
	handler := newAuthHandler([]byte("test-secret"), map[string]string{
		"ADMIN_USERNAME": "owner",
	})
	login := handler.login()

	// No password configured means nobody gets in, not everybody.
	if rec := performLogin(t, login, "owner", ""); rec.Code != http.StatusUnauthorized {
		t.Errorf("login status = %d, want 401", rec.Code)
	}
	if rec := performLogin(t, login, "owner", "anything"); rec.Code != http.StatusUnauthorized {
		t.Errorf("login status = %d, want 401", rec.Code)
	}
}
