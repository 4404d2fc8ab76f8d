package probe

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/hashicorp/go-cleanhttp"
)

const (
	// requestTimeout bounds a single health probe.
	requestTimeout = 10 * time.Second

	maxResponseBodySize = 1 << 20 // 1MB
)

// State classifies a probe outcome.
type State string

const (
	StateHealthy   State = "healthy"
	StateUnhealthy State = "unhealthy"
	StateError     State = "error"
)

// Result holds the outcome of a single probe. Errors are captured in
// the Err field rather than returned separately; a probe always
// produces a Result.
type Result struct {
	// State is the three-way classification.
	State State

	// StatusCode is the HTTP status code. Zero if the request failed
	// before a response was received.
	StatusCode int

	// ResponseTime is the time taken for the request.
	ResponseTime time.Duration

	// Data carries the healthy response payload: the decoded JSON
	// document when the content type is application/json, the raw body
	// text otherwise.
	Data any

	// Err is the transport error message for [StateError].
	Err string
}

// Prober issues health probes against an application endpoint.
type Prober struct {
	httpClient *http.Client
}

// NewProber creates a health prober. A nil httpClient means a
// pooled-transport client with a 10 second timeout.
func NewProber(httpClient *http.Client) *Prober {
	if httpClient == nil {
		httpClient = &http.Client{
			Timeout:   requestTimeout,
			Transport: cleanhttp.DefaultPooledTransport(),
		}
	}
	return &Prober{httpClient: httpClient}
}

// Check probes url with a GET and classifies the response.
func (p *Prober) Check(ctx context.Context, url string) Result {
	start := time.Now()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return Result{State: StateError, Err: err.Error()}
	}

	resp, err := p.httpClient.Do(req)
	if err != nil {
		return Result{
			State:        StateError,
			ResponseTime: time.Since(start),
			Err:          err.Error(),
		}
	}
	defer func() { _ = resp.Body.Close() }()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBodySize))
	elapsed := time.Since(start)
	if err != nil {
		return Result{
			State:        StateError,
			StatusCode:   resp.StatusCode,
			ResponseTime: elapsed,
			Err:          err.Error(),
		}
	}

	if resp.StatusCode != http.StatusOK {
		return Result{
			State:        StateUnhealthy,
			StatusCode:   resp.StatusCode,
			ResponseTime: elapsed,
		}
	}

	return Result{
		State:        StateHealthy,
		StatusCode:   resp.StatusCode,
		ResponseTime: elapsed,
		Data:         decodeBody(resp.Header.Get("Content-Type"), body),
	}
}

// decodeBody parses the payload as JSON when the content type says so,
// falling back to the raw text if decoding fails.
func decodeBody(contentType string, body []byte) any {
	if strings.HasPrefix(contentType, "application/json") {
		var data any
		if err := json.Unmarshal(body, &data); err == nil {
			return data
		}
	}
	return string(body)
}
