package postgres

import (
	"context"
	"fmt"

	"northern-forge-site/internal/domain"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// querier is the subset of *pgxpool.Pool the repository needs
type querier interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

const leadSchema = `
	CREATE TABLE IF NOT EXISTS contact_leads (
		id               UUID PRIMARY KEY,
		name             TEXT NOT NULL,
		business_name    TEXT NOT NULL,
		email            TEXT NOT NULL,
		phone            TEXT NOT NULL DEFAULT '',
		service_interest TEXT NOT NULL,
		message          TEXT NOT NULL,
		consultation     BOOLEAN NOT NULL DEFAULT FALSE,
		submitted_at     TIMESTAMPTZ NOT NULL
	)`

type LeadStore struct {
	db querier
}

// NewLeadStore creates the lead store. It also serves as a contact sink
// so every accepted submission lands in the table.
func NewLeadStore(db querier) *LeadStore {
	return &LeadStore{db: db}
}

// EnsureSchema creates the leads table if it does not exist
func (r *LeadStore) EnsureSchema(ctx context.Context) error {
	if _, err := r.db.Exec(ctx, leadSchema); err != nil {
		return fmt.Errorf("create contact_leads: %w", err)
	}
	return nil
}

func (r *LeadStore) Name() string { return "leads" }

func (r *LeadStore) Deliver(ctx context.Context, sub *domain.ContactSubmission) error {
	return r.Save(ctx, sub)
}

// Save inserts the submission; a repeated id is ignored
func (r *LeadStore) Save(ctx context.Context, sub *domain.ContactSubmission) error {
	query := `
		INSERT INTO contact_leads (id, name, business_name, email, phone,
		                           service_interest, message, consultation, submitted_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		ON CONFLICT (id) DO NOTHING`

	_, err := r.db.Exec(ctx, query,
		sub.ID, sub.Name, sub.BusinessName, sub.Email, sub.Phone,
		sub.ServiceInterest, sub.Message, sub.Consultation, sub.SubmittedAt,
	)
	if err != nil {
		return fmt.Errorf("insert contact lead: %w", err)
	}
	return nil
}

// GetByID loads a stored lead
func (r *LeadStore) GetByID(ctx context.Context, id string) (*domain.ContactSubmission, error) {
	query := `
		SELECT id, name, business_name, email, phone,
		       service_interest, message, consultation, submitted_at
		FROM contact_leads
		WHERE id = $1`

	var sub domain.ContactSubmission
	err := r.db.QueryRow(ctx, query, id).Scan(
		&sub.ID, &sub.Name, &sub.BusinessName, &sub.Email, &sub.Phone,
		&sub.ServiceInterest, &sub.Message, &sub.Consultation, &sub.SubmittedAt,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return &sub, nil
}
