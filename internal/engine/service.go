// internal/engine/service.go
package engine

import (
	"context"
	"encoding/json"
	"time"

	"github.com/google/uuid"

	"github.com/Navashanmugam888/engagement-scoping-tool/internal/common/errors"
	"github.com/Navashanmugam888/engagement-scoping-tool/internal/common/logger"
	"github.com/Navashanmugam888/engagement-scoping-tool/internal/common/metrics"
	"github.com/Navashanmugam888/engagement-scoping-tool/internal/common/observability"
	"github.com/Navashanmugam888/engagement-scoping-tool/internal/models"
)

// ConfigSource yields one consistent snapshot of every configuration
// document. A single Submit reads everything from one snapshot.
type ConfigSource interface {
	Snapshot(ctx context.Context) (*models.ConfigSnapshot, error)
}

// SubmissionStore persists create-only submission records.
type SubmissionStore interface {
	Create(ctx context.Context, rec *models.SubmissionRecord) error
	Get(ctx context.Context, id string) (*models.SubmissionRecord, error)
	ListByEmail(ctx context.Context, email string) ([]*models.SubmissionRecord, error)
}

// Service orchestrates the scoring, tiering, effort-shaping and allocation
// pipeline and owns submission persistence.
type Service struct {
	configs ConfigSource
	subs    SubmissionStore
	obs     *observability.Observability
	log     logger.Logger
}

func NewService(configs ConfigSource, subs SubmissionStore, obs *observability.Observability, log logger.Logger) *Service {
	return &Service{
		configs: configs,
		subs:    subs,
		obs:     obs,
		log:     log.WithFields(map[string]interface{}{"component": "scoping-engine"}),
	}
}

// SubmitOutcome pairs the new submission id with the result bytes persisted
// for it. The bytes are serialized exactly once; later reads return them
// unchanged.
type SubmitOutcome struct {
	SubmissionID string
	Result       json.RawMessage
}

// Submit validates the intake, runs the pipeline against one configuration
// snapshot, persists the record and returns the computed result. On any
// error no submission record exists.
func (s *Service) Submit(ctx context.Context, payload *models.SubmitPayload) (*SubmitOutcome, error) {
	started := time.Now()

	outcome, err := s.submit(ctx, payload)
	if err != nil {
		code := errors.CodeInconsistent
		if e := errors.As(err); e != nil {
			code = e.Code
		}
		metrics.SubmissionErrors.WithLabelValues(string(code)).Inc()
		s.obs.RecordRequest(ctx, string(code))
		return nil, err
	}

	metrics.SubmissionsProcessed.Inc()
	metrics.SubmissionDuration.Observe(time.Since(started).Seconds())
	s.obs.RecordRequest(ctx, "ok")
	return outcome, nil
}

func (s *Service) submit(ctx context.Context, payload *models.SubmitPayload) (*SubmitOutcome, error) {
	if err := validatePayload(payload); err != nil {
		return nil, err
	}

	snap, err := s.configs.Snapshot(ctx)
	if err != nil {
		return nil, err
	}

	selected, err := resolveRoles(snap.Roles, payload.SelectedRoles)
	if err != nil {
		return nil, err
	}

	stage := time.Now()
	score, err := ComputeWeightage(snap.Taxonomy, payload.ScopingData)
	if err != nil {
		return nil, err
	}
	s.obs.RecordStage(ctx, "scoring", time.Since(stage))

	stage = time.Now()
	band, err := ClassifyTier(snap.Tiers, score.TotalWeightage)
	if err != nil {
		return nil, err
	}

	inScope := InScopeCategories(snap.Taxonomy, payload.ScopingData)
	if len(inScope) == 0 {
		return nil, errors.NewValidationFailed("no effort category is in scope for this submission")
	}

	effort := ShapeEffort(snap.Template, band, inScope)
	s.obs.RecordStage(ctx, "effort", time.Since(stage))

	stage = time.Now()
	fte, warnings := AllocateFTE(effort.Categories, snap.Matrix, selected)
	s.obs.RecordStage(ctx, "allocation", time.Since(stage))

	if warnings == nil {
		warnings = []errors.Warning{}
	}

	roleNames := make([]string, len(selected))
	for i, r := range selected {
		roleNames[i] = r.RoleName
	}

	result := models.Result{
		TotalWeightage:   score.TotalWeightage,
		Tier:             band.Name,
		EffortEstimation: effort,
		FTEAllocation:    fte,
		ScopeDefinition: models.ScopeDefinition{
			TierName:        band.Name,
			TierRange:       [2]int64{band.MinWeightage, band.MaxWeightage},
			TotalWeightage:  score.TotalWeightage,
			SelectedRoles:   roleNames,
			InScopeCount:    score.InScopeCount,
			OutOfScopeCount: score.OutOfScopeCount,
		},
		Warnings: warnings,
	}

	resultBytes, err := json.Marshal(&result)
	if err != nil {
		return nil, errors.NewInconsistent("result serialization failed", err)
	}
	payloadBytes, err := json.Marshal(payload)
	if err != nil {
		return nil, errors.NewInconsistent("payload serialization failed", err)
	}

	rec := &models.SubmissionRecord{
		ID:          uuid.NewString(),
		UserEmail:   payload.UserEmail,
		UserName:    payload.UserName,
		ClientName:  payload.ClientName,
		ProjectName: payload.ProjectName,
		Comments:    payload.Comments,
		SubmittedAt: payload.SubmittedTime(),
		CreatedAt:   time.Now().UTC(),
		Payload:     payloadBytes,
		Result:      resultBytes,
	}

	if err := s.subs.Create(ctx, rec); err != nil {
		correlation := uuid.NewString()
		s.log.WithError(err).Error("submission persist failed", map[string]interface{}{
			"submissionId": rec.ID,
			"correlation":  correlation,
		})
		return nil, err
	}

	s.log.Info("submission processed", map[string]interface{}{
		"submissionId": rec.ID,
		"userEmail":    payload.UserEmail,
		"tier":         band.Name,
		"weightage":    score.TotalWeightage.String(),
	})

	return &SubmitOutcome{SubmissionID: rec.ID, Result: resultBytes}, nil
}

// GetResult returns the persisted result bytes for a submission.
func (s *Service) GetResult(ctx context.Context, id string) (json.RawMessage, error) {
	rec, err := s.subs.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	return rec.Result, nil
}

// GetRecord returns the full persisted submission record.
func (s *Service) GetRecord(ctx context.Context, id string) (*models.SubmissionRecord, error) {
	return s.subs.Get(ctx, id)
}

// History lists a submitter's results most-recent-first.
func (s *Service) History(ctx context.Context, email string) ([]models.HistoryEntry, error) {
	if email == "" {
		return nil, errors.NewValidationFailed("email parameter is required")
	}

	recs, err := s.subs.ListByEmail(ctx, email)
	if err != nil {
		return nil, err
	}

	entries := make([]models.HistoryEntry, 0, len(recs))
	for _, rec := range recs {
		var res struct {
			Tier           string  `json:"tier"`
			TotalWeightage float64 `json:"total_weightage"`
			EffortEstimation struct {
				Summary struct {
					TotalHours  float64 `json:"total_hours"`
					TotalMonths float64 `json:"total_months"`
				} `json:"summary"`
			} `json:"effort_estimation"`
		}
		if err := json.Unmarshal(rec.Result, &res); err != nil {
			return nil, errors.NewInconsistent("stored result is unreadable", err)
		}
		entries = append(entries, models.HistoryEntry{
			ID:             rec.ID,
			UserName:       rec.UserName,
			ClientName:     rec.ClientName,
			ProjectName:    rec.ProjectName,
			SubmittedAt:    rec.SubmittedAt.Format(time.RFC3339),
			Tier:           res.Tier,
			TotalWeightage: res.TotalWeightage,
			TotalHours:     res.EffortEstimation.Summary.TotalHours,
			TotalMonths:    res.EffortEstimation.Summary.TotalMonths,
			Comments:       rec.Comments,
		})
	}
	return entries, nil
}

func validatePayload(p *models.SubmitPayload) error {
	if p.UserEmail == "" {
		return errors.NewValidationFailed("user email is required")
	}
	if len(p.SelectedRoles) == 0 {
		return errors.NewValidationFailed("at least one role must be selected")
	}
	anyYes := false
	for id, resp := range p.ScopingData {
		if resp.Count != nil && *resp.Count < 0 {
			return errors.NewValidationFailedf("item %q has negative count %d", id, *resp.Count)
		}
		if resp.IsYes() {
			anyYes = true
		}
	}
	if !anyYes {
		return errors.NewValidationFailed("at least one scoping item must be marked YES")
	}
	return nil
}

func resolveRoles(catalog *models.RoleCatalog, names []string) ([]models.Role, error) {
	seen := make(map[string]bool, len(names))
	roles := make([]models.Role, 0, len(names))
	for _, name := range names {
		role := catalog.ByName(name)
		if role == nil {
			return nil, errors.NewValidationFailedf("unknown role %q", name)
		}
		if seen[role.ID] {
			continue
		}
		seen[role.ID] = true
		roles = append(roles, *role)
	}
	return roles, nil
}
