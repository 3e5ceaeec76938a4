package deeplink

import (
	"net/url"
	"sync"

	"github.com/ternarybob/arbor"
)

// ActionType discriminates pending navigation actions.
type ActionType string

const (
	ActionCreatePullRequest ActionType = "create_pull_request"
	ActionViewRepository    ActionType = "view_repository"
	ActionViewIssue         ActionType = "view_issue"
	ActionViewPullRequest   ActionType = "view_pull_request"
)

// Action is a typed navigation intent produced from an external URL or a
// programmatic navigation call.
type Action struct {
	Type   ActionType
	Owner  string
	Repo   string
	Number int

	// Pull request composer fields.
	BaseBranch string
	HeadBranch string
	Title      string
	Body       string
}

// Handler classifies incoming URLs and holds at most one pending action.
// The slot is last-write-wins: a later URL overwrites an unconsumed
// action. The consumer clears it explicitly after acting on it.
type Handler struct {
	logger arbor.ILogger

	mu      sync.Mutex
	pending *Action
}

// NewHandler creates a deep link handler.
func NewHandler(logger arbor.ILogger) *Handler {
	return &Handler{logger: logger}
}

// HandleURL classifies a URL against the configured server URL and stores
// the resulting action. It returns false when the URL does not belong to
// the server or matches no known shape; unhandled URLs cause no state
// change. Classification order: compare URL, then issue, then pull
// request.
func (h *Handler) HandleURL(u *url.URL, serverURL *url.URL) bool {
	if serverURL == nil || !BelongsToServer(u, serverURL) {
		return false
	}

	if IsCompareURL(u) {
		if compare, ok := ParseCompareURL(u); ok {
			h.setPending(&Action{
				Type:       ActionCreatePullRequest,
				Owner:      compare.Owner,
				Repo:       compare.Repo,
				BaseBranch: compare.BaseBranch,
				HeadBranch: compare.HeadBranch,
				Title:      compare.Title,
				Body:       compare.Body,
			})
			return true
		}
	}

	if IsIssueURL(u) {
		if owner, repo, number, ok := ParseIssueOrPRNumber(u); ok {
			h.setPending(&Action{Type: ActionViewIssue, Owner: owner, Repo: repo, Number: number})
			return true
		}
	}

	if IsPullRequestURL(u) {
		if owner, repo, number, ok := ParseIssueOrPRNumber(u); ok {
			h.setPending(&Action{Type: ActionViewPullRequest, Owner: owner, Repo: repo, Number: number})
			return true
		}
	}

	if h.logger != nil {
		h.logger.Debug().Str("path", u.Path).Msg("Unhandled deep link")
	}
	return false
}

// PendingAction returns the unconsumed action, or nil.
func (h *Handler) PendingAction() *Action {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.pending
}

// ClearPendingAction clears the pending action after it has been handled.
func (h *Handler) ClearPendingAction() {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.pending = nil
}

// NavigateToRepository sets a programmatic repository navigation action.
func (h *Handler) NavigateToRepository(owner, repo string) {
	h.setPending(&Action{Type: ActionViewRepository, Owner: owner, Repo: repo})
}

// NavigateToIssue sets a programmatic issue navigation action.
func (h *Handler) NavigateToIssue(owner, repo string, number int) {
	h.setPending(&Action{Type: ActionViewIssue, Owner: owner, Repo: repo, Number: number})
}

// NavigateToPullRequest sets a programmatic pull request navigation action.
func (h *Handler) NavigateToPullRequest(owner, repo string, number int) {
	h.setPending(&Action{Type: ActionViewPullRequest, Owner: owner, Repo: repo, Number: number})
}

func (h *Handler) setPending(action *Action) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.pending = action
}
