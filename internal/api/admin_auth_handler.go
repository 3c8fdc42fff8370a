package api

import (
	"encoding/json"
	"net/http"

	errs "solbooking/internal/errors"
	"solbooking/internal/service"
)

type AdminAuthHandler struct {
	auth service.AdminAuthService
}

func NewAdminAuthHandler(auth service.AdminAuthService) *AdminAuthHandler {
	return &AdminAuthHandler{auth: auth}
}

func (h *AdminAuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, errs.ErrBadRequest("Invalid request body"))
		return
	}
	token, err := h.auth.Login(req.Email, req.Password)
	if err != nil {
		writeError(w, errs.ErrUnauthorized("Invalid credentials"))
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(LoginResponse{Token: token})
}

// writeError sends an HTTPError as a JSON error body with its status.
func writeError(w http.ResponseWriter, httpErr *errs.HTTPError) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(httpErr.Code)
	json.NewEncoder(w).Encode(map[string]string{"error": httpErr.Message})
}
