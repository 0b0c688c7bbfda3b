package handlers

import (
	"crypto/subtle"
	"encoding/json"
	"net/http"

	"eris-api/internal/config"
)

// AuthHandler validates login requests against the single configured admin
// credential pair. No session or token is issued; every other route stays
// unauthenticated.
type AuthHandler struct {
	admin config.AdminConfig
}

// NewAuthHandler creates a new auth handler
func NewAuthHandler(admin config.AdminConfig) *AuthHandler {
	return &AuthHandler{admin: admin}
}

type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// Login checks the submitted credentials
// @Summary Log in
// @Description Compare credentials against the configured admin pair
// @Tags Auth
// @Accept json
// @Produce json
// @Param credentials body loginRequest true "Credentials"
// @Success 200 {object} map[string]bool
// @Failure 401 {object} map[string]bool
// @Router /Login [post]
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if body, err := readBody(w, r); err == nil && len(body) > 0 {
		// a malformed body falls through to the credential check and fails it
		_ = json.Unmarshal(body, &req)
	}

	userOK := subtle.ConstantTimeCompare([]byte(req.Username), []byte(h.admin.User)) == 1
	passOK := subtle.ConstantTimeCompare([]byte(req.Password), []byte(h.admin.Password)) == 1
	if userOK && passOK {
		JSONResponse(w, http.StatusOK, map[string]bool{"ok": true})
		return
	}

	JSONResponse(w, http.StatusUnauthorized, map[string]bool{"ok": false})
}
