// Package auth is responsible for the credential records behind the worker
// portal: signup and login. This file defines the Credential entity as stored
// in the users table.
package auth

import "time"

// Credential represents a stored username/password record.
// The password is kept only as a salted bcrypt hash and is excluded from JSON
// so it can never leak into a response.
type Credential struct {
	ID             int       `json:"id"`
	Username       string    `json:"username"`
	HashedPassword string    `json:"-"`
	PhoneNumber    *string   `json:"phoneNumber,omitempty"`
	Address        *string   `json:"address,omitempty"`
	CreatedAt      time.Time `json:"created_at"`
}
