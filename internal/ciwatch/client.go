package ciwatch

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/hashicorp/go-cleanhttp"
)

const (
	defaultBaseURL = "https://api.github.com"

	// requestTimeout bounds the runs-listing request. The GitHub API is
	// normally fast; anything slower is treated as a failed check.
	requestTimeout = 15 * time.Second

	maxResponseBodySize = 1 << 20 // 1MB
)

// RunStatus is the subset of a workflow run that the monitor reports.
type RunStatus struct {
	RunNumber  int
	Status     string
	Conclusion string
	CreatedAt  time.Time
	HTMLURL    string
}

// Client fetches workflow run history from the GitHub Actions API.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// NewClient creates a runs API client.
//
// baseURL overrides the API host (used by tests); empty means the
// public GitHub API. httpClient overrides the HTTP client; nil means a
// pooled-transport client with a 15 second timeout.
func NewClient(baseURL string, httpClient *http.Client) *Client {
	if baseURL == "" {
		baseURL = defaultBaseURL
	}
	if httpClient == nil {
		httpClient = &http.Client{
			Timeout:   requestTimeout,
			Transport: cleanhttp.DefaultPooledTransport(),
		}
	}
	return &Client{baseURL: baseURL, httpClient: httpClient}
}

// runsResponse mirrors the runs-listing payload. Only the fields the
// monitor renders are decoded.
type runsResponse struct {
	WorkflowRuns []workflowRun `json:"workflow_runs"`
}

type workflowRun struct {
	RunNumber  int       `json:"run_number"`
	Status     string    `json:"status"`
	Conclusion string    `json:"conclusion"`
	CreatedAt  time.Time `json:"created_at"`
	HTMLURL    string    `json:"html_url"`
}

// LatestRun returns the most recent workflow run for repo (in
// "owner/name" form). It returns an error on any transport failure,
// non-200 response, decode failure, or empty run history; callers log
// the error and treat the check as unavailable.
func (c *Client) LatestRun(ctx context.Context, repo string) (*RunStatus, error) {
	url := fmt.Sprintf("%s/repos/%s/actions/runs", c.baseURL, repo)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Accept", "application/vnd.github+json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("runs request failed: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("runs API returned status %d", resp.StatusCode)
	}

	var runs runsResponse
	if err := json.NewDecoder(io.LimitReader(resp.Body, maxResponseBodySize)).Decode(&runs); err != nil {
		return nil, fmt.Errorf("failed to decode runs response: %w", err)
	}

	if len(runs.WorkflowRuns) == 0 {
		return nil, errors.New("no workflow runs found")
	}

	// runs are returned most recent first
	latest := runs.WorkflowRuns[0]
	return &RunStatus{
		RunNumber:  latest.RunNumber,
		Status:     latest.Status,
		Conclusion: latest.Conclusion,
		CreatedAt:  latest.CreatedAt,
		HTMLURL:    latest.HTMLURL,
	}, nil
}
