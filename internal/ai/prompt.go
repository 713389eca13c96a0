package ai

import (
	"encoding/json"
	"fmt"

	"myfitness/server/internal/domain"
)

const promptTemplate = `You are a professional fitness coach. Your task is to create a JSON workout plan for a user with the following information:
Personal Details:
        - Age: %d years
        - Gender: %s
        - Height: %d cm
        - Weight: %d kg
        - Fitness Goal: %s

Please create a weekly workout plan (7 days) in the following JSON format.
Include rest days and make sure exercises are appropriate for the user's goal.

Return ONLY valid JSON in this exact format (no additional text):

[
  {
    "day": "Monday",
    "type": "Strength Training",
    "muscleGroup": "Upper Body",
    "exerciseIds": ["0007", "0015"],
    "duration": 45,
    "calories": 300,
    "notes": "Focus on proper form"
  },
  {
    "day": "Wednesday",
    "type": "Rest",
    "muscleGroup": "Recovery",
    "exerciseIds": [],
    "duration": 0,
    "calories": 0,
    "notes": "Active recovery day"
  }
]

Rest days must have an empty "exerciseIds" list and zero duration and calories.
Important: For each day, only return a list of exercise IDs (from the list below) in the "exerciseIds" field. Do not include exercise names, sets, reps, or instructions in the plan. Use only IDs from this list:
%s
Do not return any markdown formatting or additional text, only the JSON array.`

// BuildPrompt renders the generation instruction for the given profile and
// catalog. It is a deterministic function of its inputs: same profile and
// catalog, same prompt. The full catalog is embedded as compact JSON, which
// bounds the practical catalog size to a few hundred entries.
func BuildPrompt(profile domain.Profile, records []domain.ExerciseRecord) string {
	// ExerciseRecord contains only strings and string slices; marshalling
	// cannot fail.
	catalogJSON, _ := json.Marshal(records)

	return fmt.Sprintf(promptTemplate,
		profile.Age,
		profile.Gender,
		profile.HeightCm,
		profile.WeightKg,
		profile.Goal,
		catalogJSON,
	)
}
