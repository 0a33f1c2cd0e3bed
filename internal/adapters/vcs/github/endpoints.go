package github

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
)

const (
	// compareFileCap is the most files GitHub returns for one comparison
	compareFileCap = 300
	// pullFileCap is the most files GitHub lists for one pull request
	pullFileCap = 3000
)

// Compare lists what head adds over the merge base with base
// GitHub returns at most compareFileCap files and only on the first page
func (c *Client) Compare(ctx context.Context, owner, repo, base, head string) (Comparison, error) {
	p := fmt.Sprintf("/repos/%s/%s/compare/%s...%s?per_page=1",
		url.PathEscape(owner), url.PathEscape(repo), url.PathEscape(base), url.PathEscape(head))
	resp, err := c.Do(ctx, http.MethodGet, p)
	if err != nil {
		return Comparison{}, err
	}
	var out Comparison
	if err := c.decodeJSON(resp, 16<<20, &out); err != nil {
		return Comparison{}, err
	}
	return out, nil
}

// PullFiles returns one page of the files a pull request changes
func (c *Client) PullFiles(ctx context.Context, owner, repo string, number, page, perPage int) ([]File, error) {
	p := fmt.Sprintf("/repos/%s/%s/pulls/%d/files?page=%d&per_page=%d",
		url.PathEscape(owner), url.PathEscape(repo), number, page, perPage)
	resp, err := c.Do(ctx, http.MethodGet, p)
	if err != nil {
		return nil, err
	}
	var out []File
	if err := c.decodeJSON(resp, 16<<20, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// RawContent streams the bytes of path at ref
// the caller must close the returned reader
func (c *Client) RawContent(ctx context.Context, owner, repo, path, ref string) (io.ReadCloser, error) {
	p := fmt.Sprintf("/repos/%s/%s/contents/%s?ref=%s",
		url.PathEscape(owner), url.PathEscape(repo), escapePath(path), url.QueryEscape(ref))
	resp, err := c.Do(ctx, http.MethodGet, p, WithAccept(mediaRaw))
	if err != nil {
		return nil, err
	}
	return resp.Body, nil
}

// ClosePull closes a pull request without merging it
func (c *Client) ClosePull(ctx context.Context, owner, repo string, number int) (PullRequest, error) {
	p := fmt.Sprintf("/repos/%s/%s/pulls/%d", url.PathEscape(owner), url.PathEscape(repo), number)
	resp, err := c.Do(ctx, http.MethodPatch, p, WithJSON(map[string]string{"state": "closed"}))
	if err != nil {
		return PullRequest{}, err
	}
	var out PullRequest
	if err := c.decodeJSON(resp, 4<<20, &out); err != nil {
		return PullRequest{}, err
	}
	return out, nil
}

// Comment adds a comment to an issue or pull request conversation
func (c *Client) Comment(ctx context.Context, owner, repo string, number int, body string) (IssueComment, error) {
	p := fmt.Sprintf("/repos/%s/%s/issues/%d/comments", url.PathEscape(owner), url.PathEscape(repo), number)
	resp, err := c.Do(ctx, http.MethodPost, p, WithJSON(map[string]string{"body": body}))
	if err != nil {
		return IssueComment{}, err
	}
	var out IssueComment
	if err := c.decodeJSON(resp, 1<<20, &out); err != nil {
		return IssueComment{}, err
	}
	return out, nil
}

// escapePath escapes each segment of a repository path
func escapePath(p string) string {
	segs := strings.Split(strings.TrimPrefix(p, "/"), "/")
	for i, s := range segs {
		segs[i] = url.PathEscape(s)
	}
	return strings.Join(segs, "/")
}

// Repository fetches repository metadata
func (c *Client) Repository(ctx context.Context, owner, repo string) (Repo, error) {
	p := fmt.Sprintf("/repos/%s/%s", url.PathEscape(owner), url.PathEscape(repo))
	resp, err := c.Do(ctx, http.MethodGet, p)
	if err != nil {
		return Repo{}, err
	}
	var out Repo
	if err := c.decodeJSON(resp, 1<<20, &out); err != nil {
		return Repo{}, err
	}
	return out, nil
}
