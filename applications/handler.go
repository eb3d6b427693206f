// Package applications HTTP layer: the multipart /apply endpoint and the
// public /applications listing.
package applications

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/swiftfix/swiftfix-go/apperror"
	"github.com/swiftfix/swiftfix-go/auth"
)

// maxSubmissionSize caps a multipart submission (certificate included) at 32MB.
const maxSubmissionSize = 32 << 20

// Handler handles HTTP requests for applications.
type Handler struct {
	service Service
}

// NewHandler creates a new Handler.
func NewHandler(service Service) *Handler {
	return &Handler{service: service}
}

// HandleSubmit godoc
// @Summary Submit application
// @Description Accepts a multipart worker application with one clearance-certificate file part (pccFile). The file is stored server-side and the record persisted referencing it.
// @Tags applications
// @Accept mpfd
// @Produce json
// @Param firstName formData string true "First name"
// @Param middleName formData string false "Middle name"
// @Param surname formData string true "Surname"
// @Param dateOfBirth formData string true "Date of birth (YYYY-MM-DD)"
// @Param gender formData string true "Gender"
// @Param email formData string true "Email address"
// @Param phoneNumber formData string true "10-digit phone number"
// @Param address formData string true "Address"
// @Param referralCode formData string false "Referral code"
// @Param profession formData string true "Profession (fixed set)"
// @Param pccFile formData file true "Clearance certificate"
// @Success 201 {object} applications.MessageResponse "Application submitted successfully"
// @Failure 400 {object} apperror.ErrorResponse "Schema validation failure"
// @Failure 500 {object} apperror.ErrorResponse "Server error"
// @Router /apply [post]
func (h *Handler) HandleSubmit() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		r.Body = http.MaxBytesReader(w, r.Body, maxSubmissionSize)
		if err := r.ParseMultipartForm(maxSubmissionSize); err != nil {
			auth.WriteError(w, r, apperror.NewBadRequestError("invalid multipart body: "+err.Error(), nil))
			return
		}

		// Known fields only; anything extra in the form is ignored.
		sub := Submission{
			FirstName:    r.FormValue("firstName"),
			MiddleName:   r.FormValue("middleName"),
			Surname:      r.FormValue("surname"),
			DateOfBirth:  r.FormValue("dateOfBirth"),
			Gender:       r.FormValue("gender"),
			Email:        r.FormValue("email"),
			PhoneNumber:  r.FormValue("phoneNumber"),
			Address:      r.FormValue("address"),
			ReferralCode: r.FormValue("referralCode"),
			Profession:   r.FormValue("profession"),
		}

		file, header, err := r.FormFile("pccFile")
		switch {
		case err == nil:
			defer file.Close()
			sub.PccFile = file
			sub.PccFileName = header.Filename
		case errors.Is(err, http.ErrMissingFile):
			// Left nil; the service reports the missing certificate as a
			// field error instead of writing a partial record.
		default:
			auth.WriteError(w, r, apperror.NewBadRequestError("invalid file part: "+err.Error(), nil))
			return
		}

		if err := h.service.Submit(r.Context(), sub); err != nil {
			auth.WriteError(w, r, err)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(MessageResponse{Message: "Application submitted successfully"})
	}
}

// HandleList godoc
// @Summary List applications (redacted)
// @Description Returns every application projected to first name, surname, and profession, in insertion order. No pagination or filtering.
// @Tags applications
// @Produce json
// @Success 200 {array} applications.Summary
// @Failure 500 {object} apperror.ErrorResponse "Server error"
// @Router /applications [get]
func (h *Handler) HandleList() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		summaries, err := h.service.List(r.Context())
		if err != nil {
			auth.WriteError(w, r, err)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(summaries)
	}
}
