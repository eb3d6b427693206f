// Package applyform models the worker application form as an explicit
// immutable state plus a pure reducer. Rendering is out of scope; the package
// owns field state, client-side validation, and the submission lifecycle:
//
//	editing -> validating -> (editing with errors | submitting)
//	submitting -> (succeeded: advance | editing with alert)
package applyform

// Phase is the form's position in the submission lifecycle.
type Phase int

const (
	// PhaseEditing: the user is filling fields; Errors may carry messages
	// from the last failed validation and Alert from the last failed submit.
	PhaseEditing Phase = iota
	// PhaseSubmitting: a request is in flight; input events are ignored so a
	// double submit cannot happen.
	PhaseSubmitting
	// PhaseSucceeded: the application was accepted; the flow advances to the
	// next screen.
	PhaseSucceeded
)

// Fields holds everything the applicant entered, including the chosen
// certificate file content.
type Fields struct {
	FirstName    string
	MiddleName   string
	Surname      string
	DateOfBirth  string
	Gender       string
	Email        string
	PhoneNumber  string
	Address      string
	ReferralCode string
	Profession   string

	PccFileName string
	PccFile     []byte
}

// State is an immutable snapshot of the form. Reduce returns a fresh State;
// callers never mutate one in place.
type State struct {
	Fields Fields
	// Errors maps field name to its validation message, shown inline.
	Errors map[string]string
	Phase  Phase
	// Alert is the blocking notification text after a failed submission.
	Alert string
}

// NewState returns an empty form in the editing phase.
func NewState() State {
	return State{Errors: map[string]string{}}
}

// Event is a user or network occurrence the reducer folds into the state.
type Event interface{ isEvent() }

// FieldChanged carries a new value for a named text field.
type FieldChanged struct {
	Name  string
	Value string
}

// FileChosen carries the certificate file the user picked.
type FileChosen struct {
	Name    string
	Content []byte
}

// SubmitRequested is the submit-button press. Validation runs here; only a
// clean form moves to submitting.
type SubmitRequested struct{}

// SubmissionSucceeded is the server's 201.
type SubmissionSucceeded struct{}

// SubmissionFailed carries the server-supplied (or fallback) message.
type SubmissionFailed struct {
	Message string
}

func (FieldChanged) isEvent()        {}
func (FileChosen) isEvent()          {}
func (SubmitRequested) isEvent()     {}
func (SubmissionSucceeded) isEvent() {}
func (SubmissionFailed) isEvent()    {}

// Reduce produces the next state for an event. It is pure: the input state is
// never modified.
func Reduce(s State, ev Event) State {
	switch ev := ev.(type) {
	case FieldChanged:
		if s.Phase != PhaseEditing {
			return s
		}
		next := s
		next.Fields = setField(s.Fields, ev.Name, ev.Value)
		return next

	case FileChosen:
		if s.Phase != PhaseEditing {
			return s
		}
		next := s
		next.Fields.PccFileName = ev.Name
		next.Fields.PccFile = ev.Content
		return next

	case SubmitRequested:
		if s.Phase == PhaseSubmitting {
			return s
		}
		next := s
		next.Errors = Validate(s.Fields)
		next.Alert = ""
		if len(next.Errors) == 0 {
			next.Phase = PhaseSubmitting
		} else {
			next.Phase = PhaseEditing
		}
		return next

	case SubmissionSucceeded:
		if s.Phase != PhaseSubmitting {
			return s
		}
		next := s
		next.Phase = PhaseSucceeded
		return next

	case SubmissionFailed:
		if s.Phase != PhaseSubmitting {
			return s
		}
		next := s
		next.Phase = PhaseEditing
		next.Alert = ev.Message
		if next.Alert == "" {
			next.Alert = GenericSubmitError
		}
		return next
	}
	return s
}

// setField maps form field names to Fields members. Unknown names are
// ignored, mirroring how the form only wires known inputs.
func setField(f Fields, name, value string) Fields {
	switch name {
	case "firstName":
		f.FirstName = value
	case "middleName":
		f.MiddleName = value
	case "surname":
		f.Surname = value
	case "dateOfBirth":
		f.DateOfBirth = value
	case "gender":
		f.Gender = value
	case "email":
		f.Email = value
	case "phoneNumber":
		f.PhoneNumber = value
	case "address":
		f.Address = value
	case "referralCode":
		f.ReferralCode = value
	case "profession":
		f.Profession = value
	}
	return f
}
