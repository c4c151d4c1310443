// internal/store/config_store.go
package store

import (
	"context"
	"encoding/json"
	"sync"
	"time"

	"github.com/Navashanmugam888/engagement-scoping-tool/internal/common/database"
	"github.com/Navashanmugam888/engagement-scoping-tool/internal/common/errors"
	"github.com/Navashanmugam888/engagement-scoping-tool/internal/common/logger"
	"github.com/Navashanmugam888/engagement-scoping-tool/internal/common/metrics"
	"github.com/Navashanmugam888/engagement-scoping-tool/internal/models"
)

// Configuration document names. Each is a single row in scoping_config.
const (
	DocTaxonomy = "scoping_taxonomy"
	DocTemplate = "effort_template"
	DocTiers    = "tier_thresholds"
	DocRoles    = "role_catalog"
	DocMatrix   = "allocation_matrix"
)

var documentNames = []string{DocTaxonomy, DocTemplate, DocTiers, DocRoles, DocMatrix}

// Document is a raw configuration document plus its write version.
type Document struct {
	Name      string          `json:"name"`
	Body      json.RawMessage `json:"body"`
	Version   int64           `json:"version"`
	UpdatedAt time.Time       `json:"updatedAt"`
}

// ConfigStore keeps the five configuration documents in Postgres and serves
// reads from an in-memory snapshot. Writes are serialized; a snapshot handed
// out to a caller is never mutated afterwards.
type ConfigStore struct {
	db  *database.PostgresClient
	log logger.Logger

	mu   sync.RWMutex
	docs map[string]Document
	snap *models.ConfigSnapshot
}

func NewConfigStore(db *database.PostgresClient, log logger.Logger) *ConfigStore {
	return &ConfigStore{
		db:   db,
		log:  log.WithFields(map[string]interface{}{"component": "config-store"}),
		docs: make(map[string]Document),
	}
}

// Load reads every configuration document from Postgres and installs the
// in-memory snapshot. Missing documents are not an error here; Snapshot
// reports them when the pipeline asks.
func (s *ConfigStore) Load(ctx context.Context) error {
	rows, err := s.db.Query(ctx,
		`SELECT name, doc, version, updated_at FROM scoping_config`)
	if err != nil {
		return errors.NewUnavailable("postgres", err)
	}
	defer rows.Close()

	docs := make(map[string]Document)
	for rows.Next() {
		var d Document
		var body []byte
		if err := rows.Scan(&d.Name, &body, &d.Version, &d.UpdatedAt); err != nil {
			return errors.NewInconsistent("configuration row scan failed", err)
		}
		d.Body = body
		docs[d.Name] = d
	}
	if err := rows.Err(); err != nil {
		return errors.NewUnavailable("postgres", err)
	}

	snap, err := buildSnapshot(docs)
	if err != nil {
		return err
	}

	s.mu.Lock()
	s.docs = docs
	s.snap = snap
	s.mu.Unlock()

	s.log.Info("configuration loaded", map[string]interface{}{
		"documents": len(docs),
		"complete":  snap != nil,
	})
	return nil
}

// Snapshot returns the current immutable configuration snapshot. It fails
// with NotFound until every document has been seeded.
func (s *ConfigStore) Snapshot(ctx context.Context) (*models.ConfigSnapshot, error) {
	s.mu.RLock()
	snap := s.snap
	s.mu.RUnlock()

	if snap == nil {
		return nil, errors.NewNotFound("configuration", missingDocuments(s))
	}
	return snap, nil
}

// GetDocument returns one configuration document as stored.
func (s *ConfigStore) GetDocument(ctx context.Context, name string) (*Document, error) {
	if !knownDocument(name) {
		return nil, errors.NewNotFound("configuration document", name)
	}

	s.mu.RLock()
	d, ok := s.docs[name]
	s.mu.RUnlock()

	if !ok {
		return nil, errors.NewNotFound("configuration document", name)
	}
	return &d, nil
}

// PutDocument validates and replaces one configuration document, bumping
// its version, then reinstalls the in-memory snapshot. Concurrent readers
// keep whichever snapshot they already hold.
func (s *ConfigStore) PutDocument(ctx context.Context, name string, body json.RawMessage) (*Document, error) {
	if !knownDocument(name) {
		return nil, errors.NewNotFound("configuration document", name)
	}
	if err := validateDocument(name, body); err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.crossValidateLocked(name, body); err != nil {
		return nil, err
	}

	version := s.docs[name].Version + 1
	now := time.Now().UTC()

	tx, err := s.db.DB.BeginTx(ctx, nil)
	if err != nil {
		return nil, errors.NewUnavailable("postgres", err)
	}
	_, err = tx.ExecContext(ctx,
		`INSERT INTO scoping_config (name, doc, version, updated_at)
		 VALUES ($1, $2, $3, $4)
		 ON CONFLICT (name)
		 DO UPDATE SET doc = $2, version = $3, updated_at = $4`,
		name, []byte(body), version, now)
	if err != nil {
		tx.Rollback()
		return nil, errors.NewUnavailable("postgres", err)
	}
	if err := tx.Commit(); err != nil {
		return nil, errors.NewUnavailable("postgres", err)
	}

	doc := Document{Name: name, Body: body, Version: version, UpdatedAt: now}

	docs := make(map[string]Document, len(s.docs)+1)
	for k, v := range s.docs {
		docs[k] = v
	}
	docs[name] = doc

	snap, err := buildSnapshot(docs)
	if err != nil {
		return nil, err
	}
	s.docs = docs
	s.snap = snap

	metrics.ConfigWrites.WithLabelValues(name).Inc()
	s.log.Info("configuration document updated", map[string]interface{}{
		"document": name,
		"version":  version,
	})
	return &doc, nil
}

func knownDocument(name string) bool {
	for _, n := range documentNames {
		if n == name {
			return true
		}
	}
	return false
}

func missingDocuments(s *ConfigStore) string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	missing := ""
	for _, n := range documentNames {
		if _, ok := s.docs[n]; !ok {
			if missing != "" {
				missing += ","
			}
			missing += n
		}
	}
	if missing == "" {
		missing = "incomplete"
	}
	return missing
}

// asValidation normalizes model-level validation errors to the error
// taxonomy so they surface as client errors.
func asValidation(err error) error {
	if err == nil {
		return nil
	}
	if e := errors.As(err); e != nil {
		return e
	}
	return errors.NewValidationFailed(err.Error())
}

// crossValidateLocked rejects an allocation matrix whose category or role
// keys do not exist in the stored effort template and role catalog. The
// check is skipped while either referenced document is still unseeded.
// Caller holds s.mu.
func (s *ConfigStore) crossValidateLocked(name string, body json.RawMessage) error {
	if name != DocMatrix {
		return nil
	}
	tmplDoc, haveTemplate := s.docs[DocTemplate]
	rolesDoc, haveRoles := s.docs[DocRoles]
	if !haveTemplate || !haveRoles {
		return nil
	}

	var tmpl models.EffortTemplate
	if err := json.Unmarshal(tmplDoc.Body, &tmpl); err != nil {
		return errors.NewInconsistent("stored effort template is unreadable", err)
	}
	var roles models.RoleCatalog
	if err := json.Unmarshal(rolesDoc.Body, &roles); err != nil {
		return errors.NewInconsistent("stored role catalog is unreadable", err)
	}
	var matrix models.AllocationMatrix
	if err := json.Unmarshal(body, &matrix); err != nil {
		return errors.NewValidationFailedf("malformed allocation matrix: %v", err)
	}

	categories := make(map[string]bool, len(tmpl.Categories))
	for _, c := range tmpl.Categories {
		categories[c.Name] = true
	}
	for category, row := range matrix.Allocations {
		if !categories[category] {
			return errors.NewValidationFailedf("allocation matrix references unknown category %q", category)
		}
		for roleID := range row {
			if roles.ByID(roleID) == nil {
				return errors.NewValidationFailedf("allocation matrix references unknown role %q", roleID)
			}
		}
	}
	return nil
}

// validateDocument parses a document into its typed form and runs the
// model-level checks before anything touches the database.
func validateDocument(name string, body json.RawMessage) error {
	switch name {
	case DocTaxonomy:
		var t models.Taxonomy
		if err := json.Unmarshal(body, &t); err != nil {
			return errors.NewValidationFailedf("malformed taxonomy document: %v", err)
		}
		return asValidation(t.Validate())
	case DocTemplate:
		var t models.EffortTemplate
		if err := json.Unmarshal(body, &t); err != nil {
			return errors.NewValidationFailedf("malformed effort template: %v", err)
		}
		return asValidation(t.Validate())
	case DocTiers:
		var t models.TierTable
		if err := json.Unmarshal(body, &t); err != nil {
			return errors.NewValidationFailedf("malformed tier table: %v", err)
		}
		return asValidation(t.Validate())
	case DocRoles:
		var c models.RoleCatalog
		if err := json.Unmarshal(body, &c); err != nil {
			return errors.NewValidationFailedf("malformed role catalog: %v", err)
		}
		return asValidation(c.Validate())
	case DocMatrix:
		var m models.AllocationMatrix
		if err := json.Unmarshal(body, &m); err != nil {
			return errors.NewValidationFailedf("malformed allocation matrix: %v", err)
		}
		return asValidation(m.Validate())
	}
	return errors.NewNotFound("configuration document", name)
}

// buildSnapshot assembles a typed snapshot from the raw documents. It
// returns a nil snapshot (no error) while any document is missing.
func buildSnapshot(docs map[string]Document) (*models.ConfigSnapshot, error) {
	for _, n := range documentNames {
		if _, ok := docs[n]; !ok {
			return nil, nil
		}
	}

	snap := &models.ConfigSnapshot{
		Taxonomy: &models.Taxonomy{},
		Template: &models.EffortTemplate{},
		Tiers:    &models.TierTable{},
		Roles:    &models.RoleCatalog{},
		Matrix:   &models.AllocationMatrix{},
	}
	targets := map[string]interface{}{
		DocTaxonomy: snap.Taxonomy,
		DocTemplate: snap.Template,
		DocTiers:    snap.Tiers,
		DocRoles:    snap.Roles,
		DocMatrix:   snap.Matrix,
	}
	for name, target := range targets {
		if err := json.Unmarshal(docs[name].Body, target); err != nil {
			return nil, errors.NewInconsistent("stored configuration document "+name+" is unreadable", err)
		}
		snap.Version += docs[name].Version
	}
	return snap, nil
}

// EnsureSchema creates the configuration table when it does not exist.
func (s *ConfigStore) EnsureSchema(ctx context.Context) error {
	_, err := s.db.Exec(ctx, `
		CREATE TABLE IF NOT EXISTS scoping_config (
			name       TEXT PRIMARY KEY,
			doc        JSONB NOT NULL,
			version    BIGINT NOT NULL DEFAULT 1,
			updated_at TIMESTAMPTZ NOT NULL DEFAULT now()
		)`)
	if err != nil {
		return errors.NewUnavailable("postgres", err)
	}
	return nil
}
