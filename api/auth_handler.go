package api

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"golang.org/x/crypto/bcrypt"

	"github.com/rpupo63/portfolio-cms-backend/config"
	"github.com/rpupo63/portfolio-cms-backend/errs"
)

// tokenLifetime is how long an issued admin token stays valid.
const tokenLifetime = 24 * time.Hour

type authHandler struct {
	responder Responder
	logger    zerolog.Logger
	secret    []byte
	config    map[string]string
}

func newAuthHandler(secret []byte, c map[string]string) authHandler {
	logger := log.With().Str("handlerName", "authHandler").Logger()

	return authHandler{
		responder: NewResponder(logger),
		logger:    logger,
		secret:    secret,
		config:    c,
	}
}

type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type loginResponse struct {
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expires_at"`
}

// login authenticates the site owner and issues a signed admin token
// @Summary Admin login
// @Description Verifies the configured admin credentials and returns a bearer token for the admin routes
// @Tags Auth
// @Accept json
// @Produce json
// @Param credentials body loginRequest true "Admin credentials"
// @Success 200 {object} loginResponse "Signed token"
// @Failure 400 {object} ErrorResponse "Bad Request - Malformed credentials"
// @Failure 401 {object} ErrorResponse "Unauthorized - Wrong username or password"
// @Router /auth/login [post]
func (h authHandler) login() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		bodyBytes, err := io.ReadAll(r.Body)
		if err != nil {
			h.logger.Error().Err(err).Msg("Failed to read request body")
			h.responder.WriteError(w, errs.NewBadRequestError("failed to read request body"))
			return
		}

		var req loginRequest
		if err := json.NewDecoder(bytes.NewReader(bodyBytes)).Decode(&req); err != nil {
			h.logger.Error().Err(err).Msg("Failed to decode login request body")
			h.responder.WriteError(w, errs.NewInvalidJSONError(err))
			return
		}

		if !h.credentialsValid(req) {
			h.logger.Warn().Str("username", req.Username).Msg("Rejected admin login attempt")
			h.responder.WriteError(w, errs.NewUnauthorizedError("wrong username or password"))
			return
		}

		now := time.Now()
		expiresAt := now.Add(tokenLifetime)
		claims := jwt.MapClaims{
			"sub":   req.Username,
			"staff": true,
			"iat":   now.Unix(),
			"exp":   expiresAt.Unix(),
		}

		signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(h.secret)
		if err != nil {
			h.logger.Error().Err(err).Msg("Failed to sign admin token")
			h.responder.WriteError(w, errs.NewInternalError("could not issue token"))
			return
		}

		h.responder.WriteJSON(w, loginResponse{Token: signed, ExpiresAt: expiresAt})
	}
}

// credentialsValid checks the submitted credentials against the configured
// admin account. A bcrypt hash takes precedence over a plaintext password;
// the plaintext form exists for local development only.
func (h authHandler) credentialsValid(req loginRequest) bool {
	username := config.GetString(h.config, "ADMIN_USERNAME", "admin")
	if req.Username != username || req.Password == "" {
		return false
	}

	if hash := config.GetString(h.config, "ADMIN_PASSWORD_HASH", ""); hash != "" {
		return bcrypt.CompareHashAndPassword([]byte(hash), []byte(req.Password)) == nil
	}

	plain := config.GetString(h.config, "ADMIN_PASSWORD", "")
	return plain != "" && req.Password == plain
}
