package domain

// ExerciseRecord is a single entry of the bundled exercise catalog.
// Records are read-only: the catalog is loaded once and never mutated.
type ExerciseRecord struct {
	ID               string   `json:"id"` // Catalog-unique, e.g. "0007"
	Name             string   `json:"name"`
	BodyPart         string   `json:"bodyPart"`
	Target           string   `json:"target"`
	Equipment        string   `json:"equipment"`
	GifURL           string   `json:"gifUrl"` // Object key of the demo GIF in media storage
	SecondaryMuscles []string `json:"secondaryMuscles"`
	Instructions     []string `json:"instructions"`
}
