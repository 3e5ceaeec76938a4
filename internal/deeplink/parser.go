// Package deeplink classifies externally received URLs belonging to the
// configured server into typed navigation actions.
package deeplink

import (
	"net/url"
	"strconv"
	"strings"
)

// CompareURL is a parsed compare (pull request composer) URL.
// Format: https://git.example.com/owner/repo/compare/base...head?title=...&body=...
type CompareURL struct {
	Owner      string
	Repo       string
	BaseBranch string
	HeadBranch string
	Title      string
	Body       string
}

// BelongsToServer reports whether the URL's host matches the server host
// exactly. The comparison is case-sensitive with no subdomain or scheme
// leniency.
func BelongsToServer(u, serverURL *url.URL) bool {
	return u.Host == serverURL.Host
}

// IsCompareURL reports whether the URL looks like a branch comparison.
func IsCompareURL(u *url.URL) bool {
	path := u.Path
	return strings.Contains(path, "/compare/") &&
		(strings.Contains(path, "...") || strings.Contains(path, ".."))
}

// ParseCompareURL decomposes a compare URL. The two path segments before
// /compare/ are owner and repo; everything after it is the branch
// comparison expression. The expression splits on "..." when present,
// falling back to "..", so branch names containing "/" survive. A branch
// name that itself contains ".." cannot be disambiguated from the two-dot
// form; server-generated URLs always use three dots.
func ParseCompareURL(u *url.URL) (*CompareURL, bool) {
	path := u.Path

	before, expression, found := strings.Cut(path, "/compare/")
	if !found {
		return nil, false
	}

	segments := splitPath(before)
	if len(segments) < 2 {
		return nil, false
	}
	owner, repo := segments[0], segments[1]

	var base, head string
	if strings.Contains(expression, "...") {
		parts := strings.SplitN(expression, "...", 2)
		base, head = parts[0], parts[1]
	} else if strings.Contains(expression, "..") {
		parts := strings.SplitN(expression, "..", 2)
		base, head = parts[0], parts[1]
	} else {
		return nil, false
	}
	if base == "" || head == "" {
		return nil, false
	}

	// url.Query percent-decodes values.
	query := u.Query()

	return &CompareURL{
		Owner:      owner,
		Repo:       repo,
		BaseBranch: base,
		HeadBranch: head,
		Title:      query.Get("title"),
		Body:       query.Get("body"),
	}, true
}

// IsIssueURL reports whether the URL has the /owner/repo/issues/<n> shape.
func IsIssueURL(u *url.URL) bool {
	segments := splitPath(u.Path)
	return len(segments) >= 4 && segments[2] == "issues"
}

// IsPullRequestURL reports whether the URL has the /owner/repo/pulls/<n>
// shape.
func IsPullRequestURL(u *url.URL) bool {
	segments := splitPath(u.Path)
	return len(segments) >= 4 && segments[2] == "pulls"
}

// ParseIssueOrPRNumber extracts owner, repo, and number from an issue or
// pull request URL.
func ParseIssueOrPRNumber(u *url.URL) (owner, repo string, number int, ok bool) {
	segments := splitPath(u.Path)
	if len(segments) < 4 {
		return "", "", 0, false
	}
	if segments[2] != "issues" && segments[2] != "pulls" {
		return "", "", 0, false
	}
	number, err := strconv.Atoi(segments[3])
	if err != nil {
		return "", "", 0, false
	}
	return segments[0], segments[1], number, true
}

func splitPath(path string) []string {
	var segments []string
	for _, s := range strings.Split(path, "/") {
		if s != "" {
			segments = append(segments, s)
		}
	}
	return segments
}
