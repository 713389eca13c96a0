package catalog

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"sync"

	"myfitness/server/internal/domain"
)

// --- Error Definitions ---
var (
	// ErrExerciseNotFound is returned by Get for ids absent from the catalog.
	// Generated plans are not contractually bound to the catalog, so callers
	// must treat this as "not found" rather than a hard failure.
	ErrExerciseNotFound = errors.New("exercise not found in catalog")
)

// Catalog is the bundled, read-only exercise library. The backing JSON file
// is read lazily on first access and at most once, even when concurrent
// callers race to trigger the load. A load failure is cached and returned to
// every caller; deciding between degrading and failing belongs to them.
type Catalog struct {
	path string

	once    sync.Once
	records []domain.ExerciseRecord
	byID    map[string]domain.ExerciseRecord
	loadErr error
}

// New creates a Catalog backed by the JSON file at path. No I/O happens
// until the first All or Get call.
func New(path string) *Catalog {
	return &Catalog{path: path}
}

func (c *Catalog) load() {
	data, err := os.ReadFile(c.path)
	if err != nil {
		c.loadErr = fmt.Errorf("catalog: reading %s: %w", c.path, err)
		return
	}

	var records []domain.ExerciseRecord
	if err := json.Unmarshal(data, &records); err != nil {
		c.loadErr = fmt.Errorf("catalog: parsing %s: %w", c.path, err)
		return
	}

	byID := make(map[string]domain.ExerciseRecord, len(records))
	for _, rec := range records {
		byID[rec.ID] = rec
	}

	c.records = records
	c.byID = byID
}

// All returns every catalog record in file order.
func (c *Catalog) All() ([]domain.ExerciseRecord, error) {
	c.once.Do(c.load)
	if c.loadErr != nil {
		return nil, c.loadErr
	}
	return c.records, nil
}

// Get returns the record with the given catalog id.
func (c *Catalog) Get(id string) (domain.ExerciseRecord, error) {
	c.once.Do(c.load)
	if c.loadErr != nil {
		return domain.ExerciseRecord{}, c.loadErr
	}
	rec, ok := c.byID[id]
	if !ok {
		return domain.ExerciseRecord{}, ErrExerciseNotFound
	}
	return rec, nil
}

// Len returns the number of loaded records.
func (c *Catalog) Len() (int, error) {
	c.once.Do(c.load)
	if c.loadErr != nil {
		return 0, c.loadErr
	}
	return len(c.records), nil
}
