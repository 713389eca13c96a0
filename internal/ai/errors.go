package ai

import (
	"errors"
	"fmt"
)

// --- Error Definitions ---
var (
	// ErrMissingAPIKey means plan generation was attempted without a
	// configured API key. No network call is made in that case.
	ErrMissingAPIKey = errors.New("gemini API key is not configured")

	// ErrEnvelopeMalformed means the provider response body was not valid JSON.
	ErrEnvelopeMalformed = errors.New("response envelope is not valid JSON")
	// ErrNoCandidates means the envelope carried no candidates.
	ErrNoCandidates = errors.New("no candidates in response")
	// ErrNoText means the first candidate carried no text part.
	ErrNoText = errors.New("no text content in response candidate")

	// ErrInvalidPlanJSON means the generated text did not parse as a plan,
	// even after fence stripping.
	ErrInvalidPlanJSON = errors.New("generated text is not valid plan JSON")
)

// RequestError reports a failed HTTP exchange with the provider: either a
// non-success status or a success with an empty body. The body is kept for
// diagnostics. Requests are never retried here; the caller re-invokes the
// whole pipeline if the user asks again.
type RequestError struct {
	Status int
	Body   string
}

func (e *RequestError) Error() string {
	if e.Body == "" {
		return fmt.Sprintf("gemini request failed with status %d", e.Status)
	}
	return fmt.Sprintf("gemini request failed with status %d: %s", e.Status, truncate(e.Body, 200))
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n] + "..."
}
