// Package auth HTTP layer: decodes the JSON bodies for /signup and /login,
// delegates to the Service, and writes the `{message}` responses.
package auth

import (
	"encoding/json"
	"log"
	"net/http"

	"github.com/swiftfix/swiftfix-go/apperror"
)

// Handlers wraps the credential Service to provide HTTP handlers.
type Handlers struct {
	service Service
}

// NewHandlers creates a new Handlers instance.
func NewHandlers(service Service) *Handlers {
	return &Handlers{service: service}
}

// HandleSignup godoc
// @Summary Register credential
// @Description Creates a credential record for a new account. The password is stored only as a salted hash and is never echoed back.
// @Tags auth
// @Accept json
// @Produce json
// @Param signupBody body auth.SignupRequest true "Signup details"
// @Success 201 {object} auth.MessageResponse "User created successfully"
// @Failure 400 {object} apperror.ErrorResponse "Username already exists, or malformed body"
// @Failure 500 {object} apperror.ErrorResponse "Server error"
// @Router /signup [post]
func (h *Handlers) HandleSignup() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req SignupRequest
		decoder := json.NewDecoder(r.Body)
		decoder.DisallowUnknownFields()
		if err := decoder.Decode(&req); err != nil {
			WriteError(w, r, apperror.NewBadRequestError("invalid request body: "+err.Error(), nil))
			return
		}
		defer r.Body.Close()

		if req.Username == "" || req.Password == "" {
			WriteError(w, r, apperror.NewBadRequestError("username and password are required", nil))
			return
		}

		if err := h.service.Signup(r.Context(), req); err != nil {
			WriteError(w, r, err)
			return
		}

		writeJSON(w, http.StatusCreated, MessageResponse{Message: "User created successfully"})
	}
}

// HandleLogin godoc
// @Summary Authenticate credential
// @Description Verifies a username/password pair. A missing user and a bad password produce the same response. No session or token is issued.
// @Tags auth
// @Accept json
// @Produce json
// @Param loginBody body auth.LoginRequest true "Login credentials"
// @Success 200 {object} auth.MessageResponse "Login successful"
// @Failure 400 {object} apperror.ErrorResponse "Invalid credentials, or malformed body"
// @Failure 500 {object} apperror.ErrorResponse "Server error"
// @Router /login [post]
func (h *Handlers) HandleLogin() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req LoginRequest
		decoder := json.NewDecoder(r.Body)
		decoder.DisallowUnknownFields()
		if err := decoder.Decode(&req); err != nil {
			WriteError(w, r, apperror.NewBadRequestError("invalid request body: "+err.Error(), nil))
			return
		}
		defer r.Body.Close()

		if req.Username == "" || req.Password == "" {
			WriteError(w, r, apperror.NewBadRequestError("username and password are required", nil))
			return
		}

		if err := h.service.Login(r.Context(), req); err != nil {
			WriteError(w, r, err)
			return
		}

		writeJSON(w, http.StatusOK, MessageResponse{Message: "Login successful"})
	}
}

// writeJSON serializes data to JSON with the given status code.
func writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if data != nil {
		if err := json.NewEncoder(w).Encode(data); err != nil {
			http.Error(w, `{"message":"failed to encode response"}`, http.StatusInternalServerError)
		}
	}
}

// WriteError converts any error into the standardized `{message}` error
// response. Non-AppError values become a generic 500; internals are logged,
// never sent to the client.
func WriteError(w http.ResponseWriter, r *http.Request, err error) {
	appErr, ok := apperror.FromError(err)
	if !ok {
		appErr = apperror.NewInternalError("Server error", err)
	}

	if appErr.StatusCode() >= http.StatusInternalServerError {
		log.Printf("Error processing request %s %s: %v", r.Method, r.URL.Path, appErr)
	}

	writeJSON(w, appErr.StatusCode(), appErr.ToResponse())
}
