package ai

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/sirupsen/logrus"

	"myfitness/server/internal/config"
)

// Generation parameters are fixed to favor deterministic, compact output:
// downstream parsing needs near-deterministic JSON, not prose.
const (
	genTemperature     = 0.3
	genTopK            = 1
	genTopP            = 0.8
	genMaxOutputTokens = 2048
)

const (
	dialTimeout    = 10 * time.Second
	defaultTimeout = 60 * time.Second
)

// --- Wire Types (request) ---

type generateRequest struct {
	Contents         []requestContent `json:"contents"`
	GenerationConfig generationConfig `json:"generationConfig"`
}

type requestContent struct {
	Parts []textPart `json:"parts"`
}

type textPart struct {
	Text string `json:"text"`
}

type generationConfig struct {
	Temperature     float64 `json:"temperature"`
	TopK            int     `json:"topK"`
	TopP            float64 `json:"topP"`
	MaxOutputTokens int     `json:"maxOutputTokens"`
}

// Client issues generateContent calls against the Gemini REST endpoint.
// One attempt per call, no retry: request volume is low and the caller
// surfaces failures as "generation failed" with a manual retry path.
type Client struct {
	apiKey     string
	endpoint   string
	httpClient *http.Client
	log        *logrus.Entry
}

// NewClient creates a Gemini client from configuration. The read timeout is
// deliberately long relative to the dial timeout: generation latency runs to
// tens of seconds while connection establishment should not.
func NewClient(cfg config.GeminiConfig) *Client {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}

	return &Client{
		apiKey:   cfg.APIKey,
		endpoint: cfg.Endpoint,
		httpClient: &http.Client{
			Timeout: timeout,
			Transport: &http.Transport{
				DialContext: (&net.Dialer{
					Timeout: dialTimeout,
				}).DialContext,
				TLSHandshakeTimeout: dialTimeout,
			},
		},
		log: logrus.WithField("component", "gemini"),
	}
}

// Generate sends the prompt and returns the raw response body. The context
// cancels the in-flight HTTP call if the caller goes away; a cancelled call
// produces no plan.
func (c *Client) Generate(ctx context.Context, prompt string) (string, error) {
	if strings.TrimSpace(c.apiKey) == "" {
		return "", ErrMissingAPIKey
	}

	body, err := json.Marshal(generateRequest{
		Contents: []requestContent{
			{Parts: []textPart{{Text: prompt}}},
		},
		GenerationConfig: generationConfig{
			Temperature:     genTemperature,
			TopK:            genTopK,
			TopP:            genTopP,
			MaxOutputTokens: genMaxOutputTokens,
		},
	})
	if err != nil {
		return "", fmt.Errorf("marshal request: %w", err)
	}

	// The key rides as a query parameter, per the provider's API contract.
	reqURL := c.endpoint + "?key=" + url.QueryEscape(c.apiKey)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, reqURL, bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	c.log.WithField("promptLen", len(prompt)).Debug("sending generateContent request")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("gemini request: %w", err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("read response body: %w", err)
	}

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		c.log.WithFields(logrus.Fields{
			"status":  resp.StatusCode,
			"bodyLen": len(raw),
		}).Error("generateContent request failed")
		return "", &RequestError{Status: resp.StatusCode, Body: string(raw)}
	}

	if len(raw) == 0 {
		return "", &RequestError{Status: resp.StatusCode, Body: ""}
	}

	return string(raw), nil
}
