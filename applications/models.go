// Package applications implements the worker-application intake pipeline:
// multipart submission, schema-validated persistence, and the redacted public
// listing. This file defines the Application record and its persistence-time
// validation.
package applications

import (
	"errors"
	"fmt"
	"reflect"
	"regexp"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"

	"github.com/swiftfix/swiftfix-go/apperror"
)

// Application represents one submitted worker application.
// Records are created once at submission time and never updated or deleted.
// All fields except middle name and referral code are required at persistence
// time; the validate tags are the schema.
type Application struct {
	ID           int       `json:"id"`
	FirstName    string    `json:"firstName" validate:"required"`
	MiddleName   *string   `json:"middleName,omitempty"`
	Surname      string    `json:"surname" validate:"required"`
	DateOfBirth  time.Time `json:"dateOfBirth" validate:"required"`
	Gender       string    `json:"gender" validate:"required"`
	Email        string    `json:"email" validate:"required"`
	PhoneNumber  string    `json:"phoneNumber" validate:"required"`
	Address      string    `json:"address" validate:"required"`
	ReferralCode *string   `json:"referralCode,omitempty"`
	// PccFile is the stored name of the clearance certificate, opaque to
	// clients except as a /uploads URL suffix.
	PccFile    string    `json:"pccFile" validate:"required"`
	Profession string    `json:"profession" validate:"required,profession"`
	CreatedAt  time.Time `json:"created_at"`
}

// Professions is the fixed set of services workers can apply for.
var Professions = []string{
	"Plumbing",
	"Carpentry",
	"Electrical",
	"Cleaning services",
	"Painting",
	"Appliance repair",
	"AC Services",
	"Pest Control",
	"Landscaping",
	"Roofing",
}

// IsValidProfession reports whether p is one of the fixed profession set.
func IsValidProfession(p string) bool {
	for _, known := range Professions {
		if p == known {
			return true
		}
	}
	return false
}

// EmailPattern and PhonePattern are the format rules shared with the client
// form, kept identical on both sides of the wire.
var (
	EmailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
	PhonePattern = regexp.MustCompile(`^[0-9]{10}$`)
)

// validate is the schema validator for Application records. Field names in
// error messages come from the json tags so they match what clients sent.
var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" || name == "" {
			return fld.Name
		}
		return name
	})
	if err := v.RegisterValidation("profession", func(fl validator.FieldLevel) bool {
		return IsValidProfession(fl.Field().String())
	}); err != nil {
		panic(err)
	}
	return v
}

// Validate enforces the record schema: required fields, the profession set,
// and the email/phone format patterns. It returns a ValidationError whose
// message names every failing field.
func (a *Application) Validate() error {
	var problems []string

	if err := validate.Struct(a); err != nil {
		var verrs validator.ValidationErrors
		if !errors.As(err, &verrs) {
			return apperror.NewInternalError("Server error", err)
		}
		for _, fe := range verrs {
			switch fe.Tag() {
			case "profession":
				problems = append(problems, fmt.Sprintf("%s must be one of the listed professions", fe.Field()))
			default:
				problems = append(problems, fmt.Sprintf("%s is required", fe.Field()))
			}
		}
	}

	if a.Email != "" && !EmailPattern.MatchString(a.Email) {
		problems = append(problems, "email format is invalid")
	}
	if a.PhoneNumber != "" && !PhonePattern.MatchString(a.PhoneNumber) {
		problems = append(problems, "phoneNumber must be exactly 10 digits")
	}

	if len(problems) > 0 {
		return apperror.NewValidationError(strings.Join(problems, "; "), nil)
	}
	return nil
}
