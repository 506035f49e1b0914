// Package authapi implements the credential endpoint consumed by the session
// manager. Authentication is mocked: a single demo account is accepted.
package authapi

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/rs/zerolog"

	"example.com/fitdash/internal/identity"
)

// Demo account accepted by the mock endpoint.
const (
	demoEmail    = "thale@gartland.dev"
	demoPassword = "demo"
	demoToken    = "mock-jwt-token"
)

func demoUser() identity.User {
	return identity.User{
		ID:    "1",
		Email: "demo@example.com",
		Name:  "Demo User",
		Role:  identity.RoleAthlete,
	}
}

// Handler serves the auth endpoints.
type Handler struct {
	log zerolog.Logger
}

// NewHandler builds a Handler.
func NewHandler(log zerolog.Logger) *Handler {
	return &Handler{log: log.With().Str("component", "authapi").Logger()}
}

// RegisterRoutes wires endpoints to the mux.
func (h *Handler) RegisterRoutes(mux *http.ServeMux) {
	mux.HandleFunc("/api/auth/login", h.login)
	mux.HandleFunc("/api/auth/user", h.currentUser)
	mux.HandleFunc("/healthz", healthz)
}

// healthz reports a simple OK status for container health checks.
func healthz(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("ok"))
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type loginResponse struct {
	Token string        `json:"token"`
	User  identity.User `json:"user"`
}

func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		writeError(w, http.StatusMethodNotAllowed, "unsupported method")
		return
	}

	var req loginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "unable to parse body")
		return
	}

	if req.Email != demoEmail || req.Password != demoPassword {
		h.log.Warn().Str("email", req.Email).Msg("rejected login")
		writeError(w, http.StatusUnauthorized, "Invalid credentials")
		return
	}

	writeJSON(w, http.StatusOK, loginResponse{Token: demoToken, User: demoUser()})
}

func (h *Handler) currentUser(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeError(w, http.StatusMethodNotAllowed, "unsupported method")
		return
	}

	header := r.Header.Get("Authorization")
	if !strings.HasPrefix(header, "Bearer ") {
		writeError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	writeJSON(w, http.StatusOK, demoUser())
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]string{"message": message})
}

func writeJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}
