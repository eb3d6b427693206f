// Package applications service layer: the intake pipeline from parsed
// submission to stored file plus persisted record, and the redacted listing.
package applications

import (
	"context"
	"log"
	"time"

	"github.com/swiftfix/swiftfix-go/apperror"
	"github.com/swiftfix/swiftfix-go/uploads"
)

// Service defines the application operations exposed to the HTTP layer.
type Service interface {
	// Submit stores the certificate file, validates the record against the
	// schema, and persists it. The file is written before the record; a
	// failure after the write leaves the file orphaned (no reconciliation
	// exists, matching the documented gap).
	Submit(ctx context.Context, sub Submission) error
	// List returns the redacted projection of all applications.
	List(ctx context.Context) ([]Summary, error)
}

type service struct {
	repo  Repository
	store *uploads.FileStore
}

// NewService creates the intake service from its storage dependencies.
func NewService(repo Repository, store *uploads.FileStore) Service {
	return &service{repo: repo, store: store}
}

func (s *service) Submit(ctx context.Context, sub Submission) error {
	// A missing file part is the one shape problem caught before any side
	// effect: without it there is nothing to store and no valid record.
	if sub.PccFile == nil {
		return apperror.NewValidationError("pccFile is required", nil)
	}

	storedName, err := s.store.Save(sub.PccFileName, sub.PccFile)
	if err != nil {
		log.Printf("Error storing certificate file: %v", err)
		return apperror.NewInternalError("Server error", err)
	}

	app, err := sub.toRecord(storedName)
	if err != nil {
		return err
	}
	if err := app.Validate(); err != nil {
		return err
	}

	return s.persist(ctx, app)
}

// persist writes the validated record. A record is only valid while its
// certificate is in the store, so a missing file refuses the insert rather
// than persisting a dangling reference.
func (s *service) persist(ctx context.Context, app *Application) error {
	if !s.store.Exists(app.PccFile) {
		log.Printf("Error submitting application: certificate %q missing from store", app.PccFile)
		return apperror.NewInternalError("Server error", nil)
	}
	if err := s.repo.Insert(ctx, app); err != nil {
		log.Printf("Error submitting application: %v", err)
		return apperror.NewDatabaseError("Server error", err)
	}
	return nil
}

func (s *service) List(ctx context.Context) ([]Summary, error) {
	summaries, err := s.repo.ListSummaries(ctx)
	if err != nil {
		log.Printf("Error fetching applications: %v", err)
		return nil, apperror.NewDatabaseError("Server error", err)
	}
	return summaries, nil
}

// toRecord converts the raw submission fields into an Application referencing
// the stored certificate name. Empty optional fields become NULLs.
func (sub Submission) toRecord(storedName string) (*Application, error) {
	app := &Application{
		FirstName:   sub.FirstName,
		Surname:     sub.Surname,
		Gender:      sub.Gender,
		Email:       sub.Email,
		PhoneNumber: sub.PhoneNumber,
		Address:     sub.Address,
		Profession:  sub.Profession,
		PccFile:     storedName,
	}
	if sub.MiddleName != "" {
		app.MiddleName = &sub.MiddleName
	}
	if sub.ReferralCode != "" {
		app.ReferralCode = &sub.ReferralCode
	}
	if sub.DateOfBirth != "" {
		dob, err := time.Parse(time.DateOnly, sub.DateOfBirth)
		if err != nil {
			return nil, apperror.NewValidationError("dateOfBirth must be a valid date (YYYY-MM-DD)", err)
		}
		app.DateOfBirth = dob
	}
	return app, nil
}
