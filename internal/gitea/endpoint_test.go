package gitea

import (
	"net/http"
	"testing"
)

func TestEndpointFactories(t *testing.T) {
	tests := []struct {
		name       string
		endpoint   Endpoint
		wantPath   string
		wantMethod string
		wantParams []Param
		wantBody   bool
	}{
		{
			name:       "current user",
			endpoint:   CurrentUser(),
			wantPath:   "/user",
			wantMethod: http.MethodGet,
		},
		{
			name:       "repositories",
			endpoint:   Repositories(2, 50),
			wantPath:   "/user/repos",
			wantMethod: http.MethodGet,
			wantParams: []Param{{"page", "2"}, {"limit", "50"}},
		},
		{
			name:       "repository",
			endpoint:   GetRepository("acme", "widgets"),
			wantPath:   "/repos/acme/widgets",
			wantMethod: http.MethodGet,
		},
		{
			name:       "issues defaults in factory",
			endpoint:   Issues("acme", "widgets", "open", 1, 20),
			wantPath:   "/repos/acme/widgets/issues",
			wantMethod: http.MethodGet,
			wantParams: []Param{{"state", "open"}, {"page", "1"}, {"limit", "20"}, {"type", "issues"}},
		},
		{
			name:       "create issue",
			endpoint:   CreateIssue("acme", "widgets", struct{}{}),
			wantPath:   "/repos/acme/widgets/issues",
			wantMethod: http.MethodPost,
			wantBody:   true,
		},
		{
			name:       "update pull request",
			endpoint:   UpdatePullRequest("acme", "widgets", 12, struct{}{}),
			wantPath:   "/repos/acme/widgets/pulls/12",
			wantMethod: http.MethodPatch,
			wantBody:   true,
		},
		{
			name:       "merge pull request",
			endpoint:   MergePullRequest("acme", "widgets", 12, struct{}{}),
			wantPath:   "/repos/acme/widgets/pulls/12/merge",
			wantMethod: http.MethodPost,
			wantBody:   true,
		},
		{
			name:       "watch repository",
			endpoint:   WatchRepository("acme", "widgets"),
			wantPath:   "/repos/acme/widgets/subscription",
			wantMethod: http.MethodPut,
		},
		{
			name:       "delete comment attachment",
			endpoint:   DeleteCommentAttachment("acme", "widgets", 31, 7),
			wantPath:   "/repos/acme/widgets/issues/comments/31/assets/7",
			wantMethod: http.MethodDelete,
		},
		{
			name:       "commit status",
			endpoint:   CommitStatus("acme", "widgets", "abc123"),
			wantPath:   "/repos/acme/widgets/commits/abc123/status",
			wantMethod: http.MethodGet,
		},
		{
			name:       "notifications unread only",
			endpoint:   Notifications(false, 1, 20),
			wantPath:   "/notifications",
			wantMethod: http.MethodGet,
			wantParams: []Param{{"all", "false"}, {"page", "1"}, {"limit", "20"}},
		},
		{
			name:       "mark notification read",
			endpoint:   MarkNotificationRead("99"),
			wantPath:   "/notifications/threads/99",
			wantMethod: http.MethodPatch,
			wantParams: []Param{{"to-status", "read"}},
		},
		{
			name:       "search pull requests",
			endpoint:   SearchPullRequests("fix", "all", 1, 20),
			wantPath:   "/repos/issues/search",
			wantMethod: http.MethodGet,
			wantParams: []Param{{"q", "fix"}, {"state", "all"}, {"type", "pulls"}, {"page", "1"}, {"limit", "20"}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.endpoint.Path != tt.wantPath {
				t.Errorf("Path = %q, want %q", tt.endpoint.Path, tt.wantPath)
			}
			if tt.endpoint.Method != tt.wantMethod {
				t.Errorf("Method = %q, want %q", tt.endpoint.Method, tt.wantMethod)
			}
			if tt.wantBody != (tt.endpoint.Body != nil) {
				t.Errorf("Body presence = %v, want %v", tt.endpoint.Body != nil, tt.wantBody)
			}
			if tt.wantParams != nil {
				if len(tt.endpoint.Params) != len(tt.wantParams) {
					t.Fatalf("Params = %v, want %v", tt.endpoint.Params, tt.wantParams)
				}
				for i, p := range tt.wantParams {
					if tt.endpoint.Params[i] != p {
						t.Errorf("Params[%d] = %v, want %v", i, tt.endpoint.Params[i], p)
					}
				}
			}
		})
	}
}
