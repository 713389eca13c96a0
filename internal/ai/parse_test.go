package ai

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"myfitness/server/internal/domain"
)

func envelopeWithText(t *testing.T, text string) string {
	t.Helper()
	env := map[string]any{
		"candidates": []any{
			map[string]any{
				"content": map[string]any{
					"parts": []any{map[string]any{"text": text}},
				},
			},
		},
	}
	raw, err := json.Marshal(env)
	require.NoError(t, err)
	return string(raw)
}

func TestUnwrapExtractsText(t *testing.T) {
	cleaned, err := Unwrap(envelopeWithText(t, `[{"day":"Monday"}]`))
	require.NoError(t, err)
	assert.Equal(t, `[{"day":"Monday"}]`, cleaned)
}

func TestUnwrapMalformedEnvelope(t *testing.T) {
	_, err := Unwrap(`this is not json`)
	assert.ErrorIs(t, err, ErrEnvelopeMalformed)
}

func TestUnwrapNoCandidates(t *testing.T) {
	for _, raw := range []string{`{}`, `{"candidates":[]}`} {
		_, err := Unwrap(raw)
		assert.ErrorIs(t, err, ErrNoCandidates, "raw: %s", raw)
	}
}

func TestUnwrapNoText(t *testing.T) {
	for _, raw := range []string{
		`{"candidates":[{"content":{}}]}`,
		`{"candidates":[{"content":{"parts":[]}}]}`,
		`{"candidates":[{"content":{"parts":[{"text":""}]}}]}`,
	} {
		_, err := Unwrap(raw)
		assert.ErrorIs(t, err, ErrNoText, "raw: %s", raw)
	}
}

func TestStripFences(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"json fence", "```json\n[1,2]\n```", "[1,2]"},
		{"bare fence", "```\n[1,2]\n```", "[1,2]"},
		{"no fence", "[1,2]", "[1,2]"},
		{"surrounding whitespace", "  \n```json\n[1,2]\n```  ", "[1,2]"},
		{"fence without newline", "```json[1,2]```", "[1,2]"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, stripFences(tt.in))
		})
	}
}

func TestUnwrapStripsFencedText(t *testing.T) {
	cleaned, err := Unwrap(envelopeWithText(t, "```json\n[{\"day\":\"Monday\"}]\n```"))
	require.NoError(t, err)
	assert.Equal(t, `[{"day":"Monday"}]`, cleaned)
}

func TestMaterializeRoundTrip(t *testing.T) {
	input := []domain.DayPlan{
		{Day: "Monday", Type: "Strength Training", MuscleGroup: "Upper Body", ExerciseIDs: []string{"0007", "0015"}, Duration: 45, Calories: 300, Notes: "Focus on form"},
		{Day: "Tuesday", Type: "Cardio", MuscleGroup: "Full Body", ExerciseIDs: []string{"0020"}, Duration: 30, Calories: 250, Notes: "Keep hydrated"},
		{Day: "Wednesday", Type: "Rest", MuscleGroup: "Recovery", ExerciseIDs: []string{}, Duration: 0, Calories: 0, Notes: "Active recovery"},
		{Day: "Thursday", Type: "Strength Training", MuscleGroup: "Lower Body", ExerciseIDs: []string{"0015"}, Duration: 40, Calories: 280, Notes: ""},
		{Day: "Friday", Type: "Cardio", MuscleGroup: "Full Body", ExerciseIDs: []string{"0020"}, Duration: 30, Calories: 250, Notes: ""},
		{Day: "Saturday", Type: "Strength Training", MuscleGroup: "Upper Body", ExerciseIDs: []string{"0007"}, Duration: 45, Calories: 300, Notes: ""},
		{Day: "Sunday", Type: "Rest", MuscleGroup: "Recovery", ExerciseIDs: []string{}, Duration: 0, Calories: 0, Notes: "Rest up"},
	}
	raw, err := json.Marshal(input)
	require.NoError(t, err)

	days, err := Materialize(string(raw))
	require.NoError(t, err)
	assert.Equal(t, input, days)
	assert.Len(t, days, 7)
}

func TestMaterializeRestDay(t *testing.T) {
	days, err := Materialize(`[{"day":"Wednesday","type":"Rest","muscleGroup":"Recovery","exerciseIds":[],"duration":0,"calories":0,"notes":"Active recovery day"}]`)
	require.NoError(t, err)
	require.Len(t, days, 1)
	assert.True(t, days[0].IsRestDay())
	assert.Empty(t, days[0].ExerciseIDs)
}

func TestMaterializeLenientDayCount(t *testing.T) {
	// Fewer than 7 days is accepted as-is.
	days, err := Materialize(`[{"day":"Monday","type":"Cardio","muscleGroup":"Full Body","exerciseIds":["0020"],"duration":30,"calories":250,"notes":""}]`)
	require.NoError(t, err)
	assert.Len(t, days, 1)
}

func TestMaterializeNormalizes(t *testing.T) {
	days, err := Materialize(`[{"day":"Monday","type":"Cardio","muscleGroup":"Full Body","duration":-5,"calories":-1,"notes":""}]`)
	require.NoError(t, err)
	require.Len(t, days, 1)
	assert.NotNil(t, days[0].ExerciseIDs)
	assert.Zero(t, days[0].Duration)
	assert.Zero(t, days[0].Calories)
}

func TestMaterializeProse(t *testing.T) {
	_, err := Materialize(`Here is your workout plan! Monday you should do push ups.`)
	assert.ErrorIs(t, err, ErrInvalidPlanJSON)
}
