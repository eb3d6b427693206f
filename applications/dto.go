// Package applications request/response payloads for the intake and listing
// endpoints.
package applications

import "io"

// Submission carries the parsed multipart fields of one application attempt,
// plus the certificate file part. PccFile is nil when no file part was sent.
type Submission struct {
	FirstName    string
	MiddleName   string
	Surname      string
	DateOfBirth  string // YYYY-MM-DD as sent by the form
	Gender       string
	Email        string
	PhoneNumber  string
	Address      string
	ReferralCode string
	Profession   string

	PccFileName string
	PccFile     io.Reader
}

// Summary is the redacted projection served to anonymous visitors: nothing
// beyond first name, surname, and profession leaves the server.
type Summary struct {
	FirstName  string `json:"firstName" example:"Jane"`
	Surname    string `json:"surname" example:"Doe"`
	Profession string `json:"profession" example:"Electrical"`
}

// MessageResponse is the confirmation payload for a successful submission.
type MessageResponse struct {
	Message string `json:"message" example:"Application submitted successfully"`
}
