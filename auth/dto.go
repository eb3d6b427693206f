// Package auth request/response payloads for the signup and login endpoints.
package auth

// SignupRequest represents the signup request payload.
// Phone number and address are optional; everything else is required.
type SignupRequest struct {
	Username    string  `json:"username" example:"newworker"`
	Password    string  `json:"password" example:"strongpassword123"`
	PhoneNumber *string `json:"phoneNumber,omitempty" example:"5551234567"`
	Address     *string `json:"address,omitempty" example:"1 Main St"`
}

// LoginRequest represents the login request payload.
type LoginRequest struct {
	Username string `json:"username" example:"newworker"`
	Password string `json:"password" example:"strongpassword123"`
}

// MessageResponse is the confirmation payload every auth endpoint returns.
// Login deliberately issues no session or token; a confirmation message is
// the whole contract.
type MessageResponse struct {
	Message string `json:"message" example:"Login successful"`
}
