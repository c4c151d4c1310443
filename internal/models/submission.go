// internal/models/submission.go
package models

import (
	"time"
)

// Intake values as they appear on the wire.
const (
	AnswerYes = "YES"
	AnswerNo  = "NO"
)

// ItemResponse is one form answer: a YES/NO/unset selection with an optional
// count for items that carry one.
type ItemResponse struct {
	Value *string `json:"value"`
	Count *int64  `json:"count"`
}

// IsYes reports whether the item was affirmatively selected.
func (r ItemResponse) IsYes() bool {
	return r.Value != nil && *r.Value == AnswerYes
}

// SubmitPayload is the intake form as posted by the client.
type SubmitPayload struct {
	UserEmail     string                  `json:"userEmail"`
	UserName      string                  `json:"userName"`
	ClientName    string                  `json:"clientName"`
	ProjectName   string                  `json:"projectName"`
	ScopingData   map[string]ItemResponse `json:"scopingData"`
	SelectedRoles []string                `json:"selectedRoles"`
	Comments      string                  `json:"comments"`
	SubmittedAt   string                  `json:"submittedAt"`
}

// SubmittedTime parses the client timestamp, falling back to now (UTC) when
// absent or malformed.
func (p *SubmitPayload) SubmittedTime() time.Time {
	if p.SubmittedAt != "" {
		if ts, err := time.Parse(time.RFC3339, p.SubmittedAt); err == nil {
			return ts.UTC()
		}
	}
	return time.Now().UTC()
}

// SubmissionRecord is the persisted, immutable pairing of an intake payload
// with its computed result. Result holds the exact bytes serialized at
// submission time; reads return them unmodified.
type SubmissionRecord struct {
	ID          string    `json:"id"`
	UserEmail   string    `json:"user_email"`
	UserName    string    `json:"user_name"`
	ClientName  string    `json:"client_name"`
	ProjectName string    `json:"project_name"`
	Comments    string    `json:"comments"`
	SubmittedAt time.Time `json:"submitted_at"`
	CreatedAt   time.Time `json:"created_at"`
	Payload     []byte    `json:"-"`
	Result      []byte    `json:"-"`
}

// HistoryEntry is the list view of a submission: enough to render a history
// row without fetching the full result.
type HistoryEntry struct {
	ID             string  `json:"id"`
	UserName       string  `json:"user_name"`
	ClientName     string  `json:"client_name"`
	ProjectName    string  `json:"project_name"`
	SubmittedAt    string  `json:"submitted_at"`
	Tier           string  `json:"tier"`
	TotalWeightage float64 `json:"total_weightage"`
	TotalHours     float64 `json:"total_hours"`
	TotalMonths    float64 `json:"total_months"`
	Comments       string  `json:"comments,omitempty"`
}
