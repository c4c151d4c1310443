// internal/report/renderer.go
package report

import (
	"encoding/json"
	"fmt"
	"sort"
	"time"

	"github.com/Navashanmugam888/engagement-scoping-tool/internal/common/errors"
	"github.com/Navashanmugam888/engagement-scoping-tool/internal/models"
)

// resultView mirrors the persisted result document. Decimals arrive as JSON
// numbers; float64 is fine for display.
type resultView struct {
	TotalWeightage float64 `json:"total_weightage"`
	Tier           string  `json:"tier"`
	Effort         struct {
		Categories map[string]float64 `json:"categories"`
		Summary    struct {
			TotalHours  float64 `json:"total_hours"`
			TotalDays   float64 `json:"total_days"`
			TotalMonths float64 `json:"total_months"`
		} `json:"summary"`
	} `json:"effort_estimation"`
	FTE struct {
		ByRole map[string]struct {
			Hours          float64 `json:"hours"`
			PercentOfTotal float64 `json:"percent_of_total"`
		} `json:"by_role"`
		TotalHours float64 `json:"total_hours"`
	} `json:"fte_allocation"`
	Scope struct {
		TierName        string   `json:"tier_name"`
		TierRange       [2]int64 `json:"tier_range"`
		SelectedRoles   []string `json:"selected_roles"`
		InScopeCount    int      `json:"in_scope_count"`
		OutOfScopeCount int      `json:"out_of_scope_count"`
	} `json:"scope_definition"`
	Warnings []struct {
		Kind   string `json:"kind"`
		Detail string `json:"detail"`
	} `json:"warnings"`
}

// Render produces the scoping report for a stored submission. The same
// record always renders to the same bytes.
func Render(rec *models.SubmissionRecord, roles *models.RoleCatalog) ([]byte, error) {
	var res resultView
	if err := json.Unmarshal(rec.Result, &res); err != nil {
		return nil, errors.NewInconsistent("stored result is unreadable", err)
	}

	b := &docBuilder{}
	b.para("Title", "Engagement Scoping Report")
	b.para("", fmt.Sprintf("Client: %s", orDash(rec.ClientName)))
	b.para("", fmt.Sprintf("Project: %s", orDash(rec.ProjectName)))
	b.para("", fmt.Sprintf("Prepared by: %s (%s)", orDash(rec.UserName), rec.UserEmail))
	b.para("", fmt.Sprintf("Submitted: %s", rec.SubmittedAt.UTC().Format(time.RFC1123)))
	b.para("", "")

	b.para("Heading1", "Scope Summary")
	b.table([]string{"Metric", "Value"}, [][]string{
		{"Complexity tier", res.Tier},
		{"Tier range", fmt.Sprintf("%d - %d", res.Scope.TierRange[0], res.Scope.TierRange[1])},
		{"Total weightage", trimFloat(res.TotalWeightage)},
		{"Items in scope", fmt.Sprintf("%d", res.Scope.InScopeCount)},
		{"Items out of scope", fmt.Sprintf("%d", res.Scope.OutOfScopeCount)},
	})
	b.para("", "")

	b.para("Heading1", "Effort by Category")
	var names []string
	for name := range res.Effort.Categories {
		names = append(names, name)
	}
	sort.Strings(names)
	var catRows [][]string
	for _, name := range names {
		catRows = append(catRows, []string{name, trimFloat(res.Effort.Categories[name])})
	}
	b.table([]string{"Category", "Hours"}, catRows)
	b.para("", "")

	b.para("Heading1", "Effort Summary")
	b.table([]string{"Total Hours", "Total Days", "Total Months"}, [][]string{{
		trimFloat(res.Effort.Summary.TotalHours),
		trimFloat(res.Effort.Summary.TotalDays),
		trimFloat(res.Effort.Summary.TotalMonths),
	}})
	b.para("", "")

	b.para("Heading1", "Team Allocation")
	var roleIDs []string
	for id := range res.FTE.ByRole {
		roleIDs = append(roleIDs, id)
	}
	sort.Strings(roleIDs)
	var roleRows [][]string
	for _, id := range roleIDs {
		alloc := res.FTE.ByRole[id]
		name, location := id, ""
		if roles != nil {
			if r := roles.ByID(id); r != nil {
				name, location = r.RoleName, r.Location
			}
		}
		roleRows = append(roleRows, []string{
			name, location, trimFloat(alloc.Hours), trimFloat(alloc.PercentOfTotal) + "%",
		})
	}
	b.table([]string{"Role", "Location", "Hours", "Share"}, roleRows)
	b.para("", "")

	if len(res.Warnings) > 0 {
		b.para("Heading1", "Warnings")
		for _, w := range res.Warnings {
			b.para("", fmt.Sprintf("%s: %s", w.Kind, w.Detail))
		}
		b.para("", "")
	}

	if rec.Comments != "" {
		b.para("Heading1", "Comments")
		b.para("", rec.Comments)
	}

	out, err := pack(b.document())
	if err != nil {
		return nil, errors.NewInconsistent("report packaging failed", err)
	}
	return out, nil
}

// Filename is the attachment name for a submission's report.
func Filename(submissionID string) string {
	return fmt.Sprintf("scoping_report_%s.docx", submissionID)
}

func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}

func trimFloat(f float64) string {
	return fmt.Sprintf("%.2f", f)
}
