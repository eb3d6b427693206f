// Package applications persistence layer: the pgx-backed repository for the
// applications table.
package applications

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"
)

// Repository is the storage boundary for application records.
type Repository interface {
	// Insert persists a validated record and fills in its generated ID.
	Insert(ctx context.Context, app *Application) error
	// ListSummaries returns the redacted projection of every record in
	// insertion order.
	ListSummaries(ctx context.Context) ([]Summary, error)
}

type pgRepository struct {
	db *pgxpool.Pool
}

// NewRepository creates the pgx-backed repository.
func NewRepository(db *pgxpool.Pool) Repository {
	return &pgRepository{db: db}
}

func (r *pgRepository) Insert(ctx context.Context, app *Application) error {
	query := `INSERT INTO applications
	              (first_name, middle_name, surname, date_of_birth, gender,
	               email, phone_number, address, referral_code, pcc_file, profession)
	          VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
	          RETURNING id, created_at`
	return r.db.QueryRow(ctx, query,
		app.FirstName, app.MiddleName, app.Surname, app.DateOfBirth, app.Gender,
		app.Email, app.PhoneNumber, app.Address, app.ReferralCode, app.PccFile, app.Profession,
	).Scan(&app.ID, &app.CreatedAt)
}

func (r *pgRepository) ListSummaries(ctx context.Context) ([]Summary, error) {
	// Serial id order is insertion order, the only ordering the listing
	// promises.
	query := `SELECT first_name, surname, profession FROM applications ORDER BY id`
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	summaries := make([]Summary, 0)
	for rows.Next() {
		var s Summary
		if err := rows.Scan(&s.FirstName, &s.Surname, &s.Profession); err != nil {
			return nil, err
		}
		summaries = append(summaries, s)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return summaries, nil
}
