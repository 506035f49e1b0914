package authapi

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/rs/zerolog"

	"example.com/fitdash/internal/identity"
)

func newTestHandler() *Handler {
	return NewHandler(zerolog.Nop())
}

func TestLoginAcceptsDemoCredentials(t *testing.T) {
	handler := newTestHandler()

	req := httptest.NewRequest(http.MethodPost, "/api/auth/login",
		strings.NewReader(`{"email":"thale@gartland.dev","password":"demo"}`))
	rr := httptest.NewRecorder()
	handler.login(rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("expected 200 got %d: %s", rr.Code, rr.Body.String())
	}

	var resp loginResponse
	if err := json.Unmarshal(rr.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if resp.Token != "mock-jwt-token" {
		t.Fatalf("unexpected token %q", resp.Token)
	}
	if resp.User.Role != identity.RoleAthlete {
		t.Fatalf("unexpected role %q", resp.User.Role)
	}
}

func TestLoginRejectsUnknownCredentials(t *testing.T) {
	handler := newTestHandler()

	req := httptest.NewRequest(http.MethodPost, "/api/auth/login",
		strings.NewReader(`{"email":"someone@example.com","password":"guess"}`))
	rr := httptest.NewRecorder()
	handler.login(rr, req)

	if rr.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 got %d", rr.Code)
	}

	var resp map[string]string
	if err := json.Unmarshal(rr.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if resp["message"] != "Invalid credentials" {
		t.Fatalf("unexpected message %q", resp["message"])
	}
}

func TestLoginRejectsMalformedBody(t *testing.T) {
	handler := newTestHandler()

	req := httptest.NewRequest(http.MethodPost, "/api/auth/login", strings.NewReader("{not json"))
	rr := httptest.NewRecorder()
	handler.login(rr, req)

	if rr.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 got %d", rr.Code)
	}
}

func TestLoginRejectsWrongMethod(t *testing.T) {
	handler := newTestHandler()

	req := httptest.NewRequest(http.MethodGet, "/api/auth/login", nil)
	rr := httptest.NewRecorder()
	handler.login(rr, req)

	if rr.Code != http.StatusMethodNotAllowed {
		t.Fatalf("expected 405 got %d", rr.Code)
	}
}

func TestCurrentUserRequiresBearerHeader(t *testing.T) {
	handler := newTestHandler()

	for _, header := range []string{"", "Basic abc", "bearer-ish"} {
		req := httptest.NewRequest(http.MethodGet, "/api/auth/user", nil)
		if header != "" {
			req.Header.Set("Authorization", header)
		}
		rr := httptest.NewRecorder()
		handler.currentUser(rr, req)

		if rr.Code != http.StatusUnauthorized {
			t.Fatalf("header %q: expected 401 got %d", header, rr.Code)
		}
	}
}

func TestCurrentUserReturnsRecord(t *testing.T) {
	handler := newTestHandler()

	req := httptest.NewRequest(http.MethodGet, "/api/auth/user", nil)
	req.Header.Set("Authorization", "Bearer mock-jwt-token")
	rr := httptest.NewRecorder()
	handler.currentUser(rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("expected 200 got %d", rr.Code)
	}

	var user identity.User
	if err := json.Unmarshal(rr.Body.Bytes(), &user); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if user.ID != "1" || user.Role != identity.RoleAthlete {
		t.Fatalf("unexpected user %+v", user)
	}
}
