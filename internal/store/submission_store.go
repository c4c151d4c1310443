// internal/store/submission_store.go
package store

import (
	"context"
	"database/sql"

	"github.com/Navashanmugam888/engagement-scoping-tool/internal/common/database"
	"github.com/Navashanmugam888/engagement-scoping-tool/internal/common/errors"
	"github.com/Navashanmugam888/engagement-scoping-tool/internal/common/logger"
	"github.com/Navashanmugam888/engagement-scoping-tool/internal/models"
)

// SubmissionStore persists submission records. Records are create-only;
// nothing updates or deletes a stored submission. Payload and result are
// stored as raw bytes so reads return exactly what was written.
type SubmissionStore struct {
	db  *database.PostgresClient
	log logger.Logger
}

func NewSubmissionStore(db *database.PostgresClient, log logger.Logger) *SubmissionStore {
	return &SubmissionStore{
		db:  db,
		log: log.WithFields(map[string]interface{}{"component": "submission-store"}),
	}
}

// Create inserts a submission record with its payload and result bytes.
func (s *SubmissionStore) Create(ctx context.Context, rec *models.SubmissionRecord) error {
	_, err := s.db.Exec(ctx,
		`INSERT INTO scoping_submissions
		 (id, user_email, user_name, client_name, project_name, comments,
		  submitted_at, created_at, payload, result)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`,
		rec.ID, rec.UserEmail, rec.UserName, rec.ClientName, rec.ProjectName,
		rec.Comments, rec.SubmittedAt, rec.CreatedAt, rec.Payload, rec.Result)
	if err != nil {
		return errors.NewUnavailable("postgres", err)
	}
	return nil
}

// Get fetches one submission record by id.
func (s *SubmissionStore) Get(ctx context.Context, id string) (*models.SubmissionRecord, error) {
	var rec models.SubmissionRecord
	err := s.db.QueryRow(ctx,
		`SELECT id, user_email, user_name, client_name, project_name, comments,
		        submitted_at, created_at, payload, result
		 FROM scoping_submissions WHERE id = $1`, id).
		Scan(&rec.ID, &rec.UserEmail, &rec.UserName, &rec.ClientName,
			&rec.ProjectName, &rec.Comments, &rec.SubmittedAt, &rec.CreatedAt,
			&rec.Payload, &rec.Result)
	if err == sql.ErrNoRows {
		return nil, errors.NewNotFound("submission", id)
	}
	if err != nil {
		return nil, errors.NewUnavailable("postgres", err)
	}
	return &rec, nil
}

// ListByEmail returns a submitter's records most-recent-first. Ties on the
// submission instant break on id so the order is stable.
func (s *SubmissionStore) ListByEmail(ctx context.Context, email string) ([]*models.SubmissionRecord, error) {
	rows, err := s.db.Query(ctx,
		`SELECT id, user_email, user_name, client_name, project_name, comments,
		        submitted_at, created_at, payload, result
		 FROM scoping_submissions
		 WHERE user_email = $1
		 ORDER BY submitted_at DESC, id DESC`, email)
	if err != nil {
		return nil, errors.NewUnavailable("postgres", err)
	}
	defer rows.Close()

	var recs []*models.SubmissionRecord
	for rows.Next() {
		var rec models.SubmissionRecord
		if err := rows.Scan(&rec.ID, &rec.UserEmail, &rec.UserName, &rec.ClientName,
			&rec.ProjectName, &rec.Comments, &rec.SubmittedAt, &rec.CreatedAt,
			&rec.Payload, &rec.Result); err != nil {
			return nil, errors.NewInconsistent("submission row scan failed", err)
		}
		recs = append(recs, &rec)
	}
	if err := rows.Err(); err != nil {
		return nil, errors.NewUnavailable("postgres", err)
	}
	return recs, nil
}

// EnsureSchema creates the submissions table when it does not exist.
func (s *SubmissionStore) EnsureSchema(ctx context.Context) error {
	_, err := s.db.Exec(ctx, `
		CREATE TABLE IF NOT EXISTS scoping_submissions (
			id           UUID PRIMARY KEY,
			user_email   TEXT NOT NULL,
			user_name    TEXT NOT NULL DEFAULT '',
			client_name  TEXT NOT NULL DEFAULT '',
			project_name TEXT NOT NULL DEFAULT '',
			comments     TEXT NOT NULL DEFAULT '',
			submitted_at TIMESTAMPTZ NOT NULL,
			created_at   TIMESTAMPTZ NOT NULL,
			payload      BYTEA NOT NULL,
			result       BYTEA NOT NULL
		)`)
	if err != nil {
		return errors.NewUnavailable("postgres", err)
	}
	_, err = s.db.Exec(ctx, `
		CREATE INDEX IF NOT EXISTS scoping_submissions_email_idx
		ON scoping_submissions (user_email, submitted_at DESC)`)
	if err != nil {
		return errors.NewUnavailable("postgres", err)
	}
	return nil
}
