// internal/store/config_store_test.go
package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Navashanmugam888/engagement-scoping-tool/internal/common/database"
	"github.com/Navashanmugam888/engagement-scoping-tool/internal/common/errors"
	"github.com/Navashanmugam888/engagement-scoping-tool/internal/common/logger"
	"github.com/Navashanmugam888/engagement-scoping-tool/internal/seed"
)

// ==========================
// Test Helper Functions
// ==========================

func setupMockDB(t *testing.T) (*database.PostgresClient, sqlmock.Sqlmock) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to create mock db: %v", err)
	}
	t.Cleanup(func() { db.Close() })
	return &database.PostgresClient{DB: db}, mock
}

func seedDocuments(t *testing.T) map[string][]byte {
	docs := map[string]interface{}{
		DocTaxonomy: seed.Taxonomy(),
		DocTemplate: seed.Template(),
		DocTiers:    seed.Tiers(),
		DocRoles:    seed.Roles(),
		DocMatrix:   seed.Matrix(),
	}
	out := make(map[string][]byte, len(docs))
	for name, doc := range docs {
		body, err := json.Marshal(doc)
		require.NoError(t, err)
		out[name] = body
	}
	return out
}

func expectConfigRows(mock sqlmock.Sqlmock, docs map[string][]byte) {
	rows := sqlmock.NewRows([]string{"name", "doc", "version", "updated_at"})
	for name, body := range docs {
		rows.AddRow(name, body, int64(1), time.Now().UTC())
	}
	mock.ExpectQuery("SELECT name, doc, version, updated_at FROM scoping_config").WillReturnRows(rows)
}

func loadedStore(t *testing.T, docs map[string][]byte) (*ConfigStore, sqlmock.Sqlmock) {
	pg, mock := setupMockDB(t)
	s := NewConfigStore(pg, logger.NewNoOpLogger())
	expectConfigRows(mock, docs)
	require.NoError(t, s.Load(context.Background()))
	return s, mock
}

// ==========================
// Snapshot
// ==========================

func TestConfigStore_Snapshot_NotSeeded(t *testing.T) {
	s, _ := loadedStore(t, nil)

	_, err := s.Snapshot(context.Background())
	require.Error(t, err)
	assert.True(t, errors.IsCode(err, errors.CodeNotFound))
}

func TestConfigStore_Snapshot_PartialSeed(t *testing.T) {
	docs := seedDocuments(t)
	delete(docs, DocMatrix)
	s, _ := loadedStore(t, docs)

	_, err := s.Snapshot(context.Background())
	require.Error(t, err)
	assert.True(t, errors.IsCode(err, errors.CodeNotFound))
}

func TestConfigStore_Snapshot_Complete(t *testing.T) {
	s, _ := loadedStore(t, seedDocuments(t))

	snap, err := s.Snapshot(context.Background())
	require.NoError(t, err)
	assert.Len(t, snap.Taxonomy.Sections, 14)
	assert.Len(t, snap.Template.Categories, 17)
	assert.Len(t, snap.Tiers.Bands, 5)
	assert.Len(t, snap.Roles.Roles, 13)
}

// ==========================
// Documents
// ==========================

func TestConfigStore_GetDocument(t *testing.T) {
	s, _ := loadedStore(t, seedDocuments(t))

	doc, err := s.GetDocument(context.Background(), DocTiers)
	require.NoError(t, err)
	assert.Equal(t, DocTiers, doc.Name)
	assert.Equal(t, int64(1), doc.Version)

	_, err = s.GetDocument(context.Background(), "no-such-doc")
	require.Error(t, err)
	assert.True(t, errors.IsCode(err, errors.CodeNotFound))
}

func TestConfigStore_PutDocument_BumpsVersionAndSnapshot(t *testing.T) {
	s, mock := loadedStore(t, seedDocuments(t))

	body, err := json.Marshal(seed.Tiers())
	require.NoError(t, err)

	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO scoping_config").
		WithArgs(DocTiers, body, int64(2), sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	doc, err := s.PutDocument(context.Background(), DocTiers, body)
	require.NoError(t, err)
	assert.Equal(t, int64(2), doc.Version)

	snap, err := s.Snapshot(context.Background())
	require.NoError(t, err)
	assert.Len(t, snap.Tiers.Bands, 5)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestConfigStore_PutDocument_RejectsInvalid(t *testing.T) {
	tests := []struct {
		name string
		doc  string
		body string
	}{
		{"malformed json", DocTiers, `{"bands": [`},
		{"overlapping bands", DocTiers, `{"bands": [
			{"tier_name": "T1", "min_weightage": 0, "max_weightage": 50, "effort_multiplier": 1},
			{"tier_name": "T2", "min_weightage": 50, "max_weightage": 100, "effort_multiplier": 1.1}
		]}`},
		{"negative weight", DocTaxonomy, `{"sections": [
			{"title": "S", "items": [{"id": "a", "label": "A", "weight": -1, "count_weight": 0}]}
		]}`},
		{"duplicate role id", DocRoles, `{"roles": [
			{"id": "r1", "role_name": "A"}, {"id": "r1", "role_name": "B"}
		]}`},
		{"percent above 100", DocMatrix, `{"allocations": {"Design": {"r1": 150}}}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, mock := loadedStore(t, seedDocuments(t))

			_, err := s.PutDocument(context.Background(), tt.doc, json.RawMessage(tt.body))
			require.Error(t, err)
			assert.True(t, errors.IsCode(err, errors.CodeValidationFailed), "got %v", err)
			// nothing reached the database
			require.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestConfigStore_PutDocument_MatrixKeysMustExist(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"unknown category", `{"allocations": {"Underwater Basket Weaving": {"pm_usa": 50}}}`},
		{"unknown role", `{"allocations": {"Design": {"ghost_role": 50}}}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, mock := loadedStore(t, seedDocuments(t))

			_, err := s.PutDocument(context.Background(), DocMatrix, json.RawMessage(tt.body))
			require.Error(t, err)
			assert.True(t, errors.IsCode(err, errors.CodeValidationFailed), "got %v", err)
			require.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestConfigStore_PutDocument_MatrixCheckSkippedWhileUnseeded(t *testing.T) {
	// Roles and template not installed yet: key references cannot be
	// checked, so the write goes through on cell validation alone.
	s, mock := loadedStore(t, nil)

	body := json.RawMessage(`{"allocations": {"Design": {"anyone": 50}}}`)
	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO scoping_config").
		WithArgs(DocMatrix, []byte(body), int64(1), sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	doc, err := s.PutDocument(context.Background(), DocMatrix, body)
	require.NoError(t, err)
	assert.Equal(t, int64(1), doc.Version)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestConfigStore_PutDocument_UnknownName(t *testing.T) {
	s, _ := loadedStore(t, nil)

	_, err := s.PutDocument(context.Background(), "mystery", json.RawMessage(`{}`))
	require.Error(t, err)
	assert.True(t, errors.IsCode(err, errors.CodeNotFound))
}

func TestConfigStore_Load_QueryFailure(t *testing.T) {
	pg, mock := setupMockDB(t)
	s := NewConfigStore(pg, logger.NewNoOpLogger())

	mock.ExpectQuery("SELECT name, doc, version, updated_at FROM scoping_config").
		WillReturnError(sql.ErrConnDone)

	err := s.Load(context.Background())
	require.Error(t, err)
	assert.True(t, errors.IsCode(err, errors.CodeUnavailable))
}
