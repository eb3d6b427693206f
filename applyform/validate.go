package applyform

import (
	"github.com/swiftfix/swiftfix-go/applications"
)

// GenericSubmitError is shown when a submission fails without a usable server
// message.
const GenericSubmitError = "Error submitting application."

// Validate checks the form fields client-side and returns one message per
// offending field, keyed by field name. An empty map means the form may be
// submitted.
func Validate(f Fields) map[string]string {
	errs := map[string]string{}

	if f.FirstName == "" {
		errs["firstName"] = "First name is required."
	}
	if f.Surname == "" {
		errs["surname"] = "Surname is required."
	}
	if f.DateOfBirth == "" {
		errs["dateOfBirth"] = "Date of birth is required."
	}
	if f.Gender == "" {
		errs["gender"] = "Gender is required."
	}
	if f.Profession == "" {
		errs["profession"] = "Profession is required."
	}

	switch {
	case f.Email == "":
		errs["email"] = "Email is required."
	case !applications.EmailPattern.MatchString(f.Email):
		errs["email"] = "Invalid email format."
	}

	switch {
	case f.PhoneNumber == "":
		errs["phoneNumber"] = "Phone number is required."
	case !applications.PhonePattern.MatchString(f.PhoneNumber):
		errs["phoneNumber"] = "Invalid phone number format. Should be 10 digits."
	}

	if f.Address == "" {
		errs["address"] = "Address is required."
	}
	if len(f.PccFile) == 0 {
		errs["pccFile"] = "Police Clearance Certificate is required."
	}

	return errs
}
