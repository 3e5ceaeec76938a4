package models

import (
	"fmt"
	"strings"
	"time"
)

// ActionRun represents a Gitea Actions workflow run.
type ActionRun struct {
	ID           int64      `json:"id"`
	DisplayTitle string     `json:"display_title,omitempty"`
	Status       string     `json:"status"`
	Conclusion   string     `json:"conclusion,omitempty"`
	HeadSHA      string     `json:"head_sha,omitempty"`
	HeadBranch   string     `json:"head_branch,omitempty"`
	Event        string     `json:"event,omitempty"`
	Path         string     `json:"path,omitempty"`
	RunNumber    int        `json:"run_number,omitempty"`
	StartedAt    *time.Time `json:"started_at,omitempty"`
	CompletedAt  *time.Time `json:"completed_at,omitempty"`
}

// DisplayName returns the run title, falling back to the workflow file name
// extracted from a path like "ci.yml@refs/heads/main".
func (r *ActionRun) DisplayName() string {
	if r.DisplayTitle != "" {
		return r.DisplayTitle
	}
	if r.Path != "" {
		name, _, _ := strings.Cut(r.Path, "@")
		name = strings.TrimSuffix(name, ".yml")
		name = strings.TrimSuffix(name, ".yaml")
		return name
	}
	if r.RunNumber > 0 {
		return fmt.Sprintf("Workflow #%d", r.RunNumber)
	}
	return fmt.Sprintf("Workflow #%d", r.ID)
}

// IsInProgress reports whether the run has not finished yet.
func (r *ActionRun) IsInProgress() bool {
	return r.Status == "running" || r.Status == "waiting" || r.Status == "queued"
}

// IsCompleted reports whether the run has a conclusion.
func (r *ActionRun) IsCompleted() bool {
	return r.Conclusion != ""
}

// ActionRunsResponse wraps the Actions runs list endpoint response.
type ActionRunsResponse struct {
	TotalCount   int64       `json:"total_count"`
	WorkflowRuns []ActionRun `json:"workflow_runs"`
}
