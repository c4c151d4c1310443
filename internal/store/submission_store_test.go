// internal/store/submission_store_test.go
package store

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Navashanmugam888/engagement-scoping-tool/internal/common/errors"
	"github.com/Navashanmugam888/engagement-scoping-tool/internal/common/logger"
	"github.com/Navashanmugam888/engagement-scoping-tool/internal/models"
)

var submissionColumns = []string{
	"id", "user_email", "user_name", "client_name", "project_name",
	"comments", "submitted_at", "created_at", "payload", "result",
}

func testRecord() *models.SubmissionRecord {
	return &models.SubmissionRecord{
		ID:          "7f9c20e4-1f7d-4f6a-9be1-0c8f7a9d3b11",
		UserEmail:   "consultant@example.com",
		UserName:    "Dana",
		ClientName:  "Acme Corp",
		ProjectName: "FCC Rollout",
		Comments:    "phase one",
		SubmittedAt: time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC),
		CreatedAt:   time.Date(2026, 3, 1, 10, 0, 1, 0, time.UTC),
		Payload:     []byte(`{"userEmail":"consultant@example.com"}`),
		Result:      []byte(`{"tier":"Tier 1"}`),
	}
}

func recordRow(rec *models.SubmissionRecord) *sqlmock.Rows {
	return sqlmock.NewRows(submissionColumns).AddRow(
		rec.ID, rec.UserEmail, rec.UserName, rec.ClientName, rec.ProjectName,
		rec.Comments, rec.SubmittedAt, rec.CreatedAt, rec.Payload, rec.Result,
	)
}

func TestSubmissionStore_Create(t *testing.T) {
	pg, mock := setupMockDB(t)
	s := NewSubmissionStore(pg, logger.NewNoOpLogger())
	rec := testRecord()

	mock.ExpectExec("INSERT INTO scoping_submissions").
		WithArgs(rec.ID, rec.UserEmail, rec.UserName, rec.ClientName, rec.ProjectName,
			rec.Comments, rec.SubmittedAt, rec.CreatedAt, rec.Payload, rec.Result).
		WillReturnResult(sqlmock.NewResult(0, 1))

	require.NoError(t, s.Create(context.Background(), rec))
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestSubmissionStore_Create_Unavailable(t *testing.T) {
	pg, mock := setupMockDB(t)
	s := NewSubmissionStore(pg, logger.NewNoOpLogger())

	mock.ExpectExec("INSERT INTO scoping_submissions").WillReturnError(sql.ErrConnDone)

	err := s.Create(context.Background(), testRecord())
	require.Error(t, err)
	assert.True(t, errors.IsCode(err, errors.CodeUnavailable))
}

func TestSubmissionStore_Get(t *testing.T) {
	pg, mock := setupMockDB(t)
	s := NewSubmissionStore(pg, logger.NewNoOpLogger())
	rec := testRecord()

	mock.ExpectQuery("FROM scoping_submissions WHERE id").
		WithArgs(rec.ID).
		WillReturnRows(recordRow(rec))

	got, err := s.Get(context.Background(), rec.ID)
	require.NoError(t, err)
	assert.Equal(t, rec.UserEmail, got.UserEmail)
	// stored result bytes come back untouched
	assert.Equal(t, rec.Result, got.Result)
}

func TestSubmissionStore_Get_NotFound(t *testing.T) {
	pg, mock := setupMockDB(t)
	s := NewSubmissionStore(pg, logger.NewNoOpLogger())

	mock.ExpectQuery("FROM scoping_submissions WHERE id").
		WithArgs("missing").
		WillReturnError(sql.ErrNoRows)

	_, err := s.Get(context.Background(), "missing")
	require.Error(t, err)
	assert.True(t, errors.IsCode(err, errors.CodeNotFound))
}

func TestSubmissionStore_ListByEmail_OrdersMostRecentFirst(t *testing.T) {
	pg, mock := setupMockDB(t)
	s := NewSubmissionStore(pg, logger.NewNoOpLogger())

	newer := testRecord()
	newer.ID = "b0000000-0000-0000-0000-000000000002"
	newer.SubmittedAt = newer.SubmittedAt.Add(time.Hour)
	older := testRecord()

	rows := recordRow(newer).AddRow(
		older.ID, older.UserEmail, older.UserName, older.ClientName, older.ProjectName,
		older.Comments, older.SubmittedAt, older.CreatedAt, older.Payload, older.Result,
	)
	mock.ExpectQuery("ORDER BY submitted_at DESC, id DESC").
		WithArgs("consultant@example.com").
		WillReturnRows(rows)

	recs, err := s.ListByEmail(context.Background(), "consultant@example.com")
	require.NoError(t, err)
	require.Len(t, recs, 2)
	assert.Equal(t, newer.ID, recs[0].ID)
	assert.Equal(t, older.ID, recs[1].ID)
}

func TestSubmissionStore_ListByEmail_Empty(t *testing.T) {
	pg, mock := setupMockDB(t)
	s := NewSubmissionStore(pg, logger.NewNoOpLogger())

	mock.ExpectQuery("ORDER BY submitted_at DESC, id DESC").
		WithArgs("nobody@example.com").
		WillReturnRows(sqlmock.NewRows(submissionColumns))

	recs, err := s.ListByEmail(context.Background(), "nobody@example.com")
	require.NoError(t, err)
	assert.Empty(t, recs)
}
