package server

import (
	"net/http"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"

	"github.com/varlikapp/varlik/internal/storage/badger"
)

// pinHashKey is the KV key holding the bcrypt hash of the device PIN.
const pinHashKey = "pin_hash"

type pinRequest struct {
	PIN string `json:"pin"`
}

type loginResponse struct {
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expires_at"`
}

// handleAuthSetPIN handles POST /api/auth/pin. Setting the first PIN is open;
// once one exists, the auth middleware requires a valid session to change it.
func (s *Server) handleAuthSetPIN(w http.ResponseWriter, r *http.Request) {
	if !RequireMethod(w, r, http.MethodPost) {
		return
	}

	var req pinRequest
	if !DecodeJSON(w, r, &req) {
		return
	}
	if len(req.PIN) < 4 {
		WriteError(w, http.StatusBadRequest, "PIN must be at least 4 characters")
		return
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.PIN), bcrypt.DefaultCost)
	if err != nil {
		WriteError(w, http.StatusInternalServerError, "Failed to hash PIN")
		return
	}
	if err := s.app.KV.Set(r.Context(), pinHashKey, string(hash)); err != nil {
		s.logger.Error().Err(err).Msg("Failed to store PIN hash")
		WriteError(w, http.StatusInternalServerError, "Failed to store PIN")
		return
	}

	s.logger.Info().Msg("Device PIN updated")
	WriteJSON(w, http.StatusOK, map[string]bool{"pin_set": true})
}

// handleAuthLogin handles POST /api/auth/login: verifies the PIN and issues
// a session token.
func (s *Server) handleAuthLogin(w http.ResponseWriter, r *http.Request) {
	if !RequireMethod(w, r, http.MethodPost) {
		return
	}

	var req pinRequest
	if !DecodeJSON(w, r, &req) {
		return
	}

	hash, err := s.app.KV.Get(r.Context(), pinHashKey)
	if err != nil {
		if badger.IsNotFound(err) {
			WriteError(w, http.StatusBadRequest, "No PIN configured")
			return
		}
		s.logger.Error().Err(err).Msg("PIN lookup failed")
		WriteError(w, http.StatusInternalServerError, "PIN lookup failed")
		return
	}

	if bcrypt.CompareHashAndPassword([]byte(hash), []byte(req.PIN)) != nil {
		WriteError(w, http.StatusUnauthorized, "Incorrect PIN")
		return
	}

	expiresAt := time.Now().Add(s.app.Config.Auth.GetTokenExpiry())
	claims := jwt.RegisteredClaims{
		Subject:   "device",
		IssuedAt:  jwt.NewNumericDate(time.Now()),
		ExpiresAt: jwt.NewNumericDate(expiresAt),
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).
		SignedString([]byte(s.app.Config.Auth.JWTSecret))
	if err != nil {
		WriteError(w, http.StatusInternalServerError, "Failed to sign session token")
		return
	}

	WriteJSON(w, http.StatusOK, loginResponse{Token: token, ExpiresAt: expiresAt})
}
