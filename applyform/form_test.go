package applyform

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func filledFields() Fields {
	return Fields{
		FirstName:   "Jane",
		Surname:     "Doe",
		DateOfBirth: "1990-01-01",
		Gender:      "female",
		Email:       "jane@x.com",
		PhoneNumber: "5551234567",
		Address:     "1 Main St",
		Profession:  "Electrical",
		PccFileName: "pcc.pdf",
		PccFile:     []byte("%PDF-1.4"),
	}
}

func filledState() State {
	s := NewState()
	s.Fields = filledFields()
	return s
}

func TestFieldChangedUpdatesOnlyThatField(t *testing.T) {
	s := NewState()
	next := Reduce(s, FieldChanged{Name: "firstName", Value: "Jane"})

	assert.Equal(t, "Jane", next.Fields.FirstName)
	assert.Equal(t, "", next.Fields.Surname)
	// The original snapshot is untouched.
	assert.Equal(t, "", s.Fields.FirstName)
}

func TestFieldChangedUnknownNameIsIgnored(t *testing.T) {
	s := filledState()
	next := Reduce(s, FieldChanged{Name: "isAdmin", Value: "true"})
	assert.Equal(t, s.Fields, next.Fields)
}

func TestFileChosenSetsCertificate(t *testing.T) {
	next := Reduce(NewState(), FileChosen{Name: "cert.pdf", Content: []byte("data")})
	assert.Equal(t, "cert.pdf", next.Fields.PccFileName)
	assert.Equal(t, []byte("data"), next.Fields.PccFile)
}

func TestSubmitValidFormMovesToSubmitting(t *testing.T) {
	next := Reduce(filledState(), SubmitRequested{})
	assert.Equal(t, PhaseSubmitting, next.Phase)
	assert.Empty(t, next.Errors)
}

func TestSubmitInvalidFormStaysEditingWithErrors(t *testing.T) {
	s := filledState()
	s.Fields.Email = "a@b"
	s.Fields.Surname = ""

	next := Reduce(s, SubmitRequested{})
	assert.Equal(t, PhaseEditing, next.Phase)
	assert.Equal(t, "Invalid email format.", next.Errors["email"])
	assert.Equal(t, "Surname is required.", next.Errors["surname"])
}

func TestSubmitClearsStaleErrorsOnceFixed(t *testing.T) {
	s := filledState()
	s.Fields.Email = "a@b"
	withErrors := Reduce(s, SubmitRequested{})
	require.NotEmpty(t, withErrors.Errors)

	fixed := Reduce(withErrors, FieldChanged{Name: "email", Value: "a@b.com"})
	next := Reduce(fixed, SubmitRequested{})
	assert.Equal(t, PhaseSubmitting, next.Phase)
	assert.Empty(t, next.Errors)
}

func TestInputIgnoredWhileSubmitting(t *testing.T) {
	submitting := Reduce(filledState(), SubmitRequested{})
	require.Equal(t, PhaseSubmitting, submitting.Phase)

	assert.Equal(t, submitting, Reduce(submitting, FieldChanged{Name: "firstName", Value: "Evil"}))
	assert.Equal(t, submitting, Reduce(submitting, FileChosen{Name: "x", Content: []byte("x")}))
	// A second submit press while in flight is a no-op too.
	assert.Equal(t, submitting, Reduce(submitting, SubmitRequested{}))
}

func TestSubmissionSucceededAdvances(t *testing.T) {
	submitting := Reduce(filledState(), SubmitRequested{})
	next := Reduce(submitting, SubmissionSucceeded{})
	assert.Equal(t, PhaseSucceeded, next.Phase)
}

func TestSubmissionFailedReturnsToEditingWithAlert(t *testing.T) {
	submitting := Reduce(filledState(), SubmitRequested{})

	next := Reduce(submitting, SubmissionFailed{Message: "Server error"})
	assert.Equal(t, PhaseEditing, next.Phase)
	assert.Equal(t, "Server error", next.Alert)

	// Fields survive the failure so the user can retry without retyping.
	assert.Equal(t, "Jane", next.Fields.FirstName)
}

func TestSubmissionFailedWithoutMessageUsesFallback(t *testing.T) {
	submitting := Reduce(filledState(), SubmitRequested{})
	next := Reduce(submitting, SubmissionFailed{})
	assert.Equal(t, GenericSubmitError, next.Alert)
}

func TestResultEventsIgnoredOutsideSubmitting(t *testing.T) {
	s := filledState()
	assert.Equal(t, s, Reduce(s, SubmissionSucceeded{}))
	assert.Equal(t, s, Reduce(s, SubmissionFailed{Message: "late"}))
}

func TestValidateMessages(t *testing.T) {
	errs := Validate(Fields{})
	assert.Equal(t, "First name is required.", errs["firstName"])
	assert.Equal(t, "Surname is required.", errs["surname"])
	assert.Equal(t, "Date of birth is required.", errs["dateOfBirth"])
	assert.Equal(t, "Gender is required.", errs["gender"])
	assert.Equal(t, "Profession is required.", errs["profession"])
	assert.Equal(t, "Email is required.", errs["email"])
	assert.Equal(t, "Phone number is required.", errs["phoneNumber"])
	assert.Equal(t, "Address is required.", errs["address"])
	assert.Equal(t, "Police Clearance Certificate is required.", errs["pccFile"])
	// Optional fields never produce errors.
	assert.NotContains(t, errs, "middleName")
	assert.NotContains(t, errs, "referralCode")
}

func TestValidateFormats(t *testing.T) {
	f := filledFields()
	f.Email = "a@b"
	f.PhoneNumber = "12345"
	errs := Validate(f)
	assert.Equal(t, "Invalid email format.", errs["email"])
	assert.Equal(t, "Invalid phone number format. Should be 10 digits.", errs["phoneNumber"])

	f.Email = "a@b.com"
	f.PhoneNumber = "1234567890"
	assert.Empty(t, Validate(f))
}
