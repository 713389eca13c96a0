package ai

import (
	"encoding/json"
	"fmt"
	"strings"

	"myfitness/server/internal/domain"
)

// --- Wire Types (response) ---

type envelope struct {
	Candidates []candidate `json:"candidates"`
}

type candidate struct {
	Content candidateContent `json:"content"`
}

type candidateContent struct {
	Parts []textPart `json:"parts"`
}

// Unwrap extracts the generated text from the provider's response envelope
// and sanitizes it. The envelope shape is fixed: the text lives at the first
// candidate's first part. Each missing level yields its own error so parse
// failures are diagnosable from logs alone.
func Unwrap(raw string) (string, error) {
	var env envelope
	if err := json.Unmarshal([]byte(raw), &env); err != nil {
		return "", fmt.Errorf("%w: %v", ErrEnvelopeMalformed, err)
	}

	if len(env.Candidates) == 0 {
		return "", ErrNoCandidates
	}

	parts := env.Candidates[0].Content.Parts
	if len(parts) == 0 || parts[0].Text == "" {
		return "", ErrNoText
	}

	return stripFences(parts[0].Text), nil
}

// stripFences removes a leading "```json" or "```" marker and a trailing
// "```" marker, then trims whitespace. This is a targeted workaround for the
// model wrapping its JSON in a markdown code block despite instructions not
// to; it is not a markdown parser.
func stripFences(text string) string {
	text = strings.TrimSpace(text)
	text = strings.TrimPrefix(text, "```json")
	text = strings.TrimPrefix(text, "```")
	text = strings.TrimSuffix(text, "```")
	return strings.TrimSpace(text)
}

// Materialize parses sanitized text into day plans. The policy is lenient:
// whatever array of day-shaped objects the model produced is accepted, with
// no 7-day enforcement, and exercise ids are not reconciled against the
// catalog here. Unknown ids surface as "not found" when the plan is read.
// Negative numeric fields are clamped to zero.
func Materialize(cleaned string) ([]domain.DayPlan, error) {
	var days []domain.DayPlan
	if err := json.Unmarshal([]byte(cleaned), &days); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidPlanJSON, err)
	}

	for i := range days {
		if days[i].ExerciseIDs == nil {
			days[i].ExerciseIDs = []string{}
		}
		if days[i].Duration < 0 {
			days[i].Duration = 0
		}
		if days[i].Calories < 0 {
			days[i].Calories = 0
		}
	}

	return days, nil
}
