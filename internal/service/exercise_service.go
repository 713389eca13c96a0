package service

import (
	"context"
	"errors"

	"myfitness/server/internal/catalog"
	"myfitness/server/internal/domain"
	"myfitness/server/internal/storage"

	"github.com/sirupsen/logrus"
)

// --- Error Definitions ---
var (
	ErrExerciseNotFound = errors.New("exercise not found")
)

// ResolvedExercise is a catalog record with a fetchable media URL attached.
type ResolvedExercise struct {
	domain.ExerciseRecord
	GifDownloadURL string `json:"gifDownloadUrl,omitempty"`
}

// --- Service Interface ---
type ExerciseService interface {
	ListExercises(ctx context.Context) ([]domain.ExerciseRecord, error)
	GetExercise(ctx context.Context, id string) (*ResolvedExercise, error)
	// ResolveExercises maps plan exercise ids to catalog records. The
	// generator is not contractually bound to the catalog, so unknown ids
	// are reported back rather than failing the whole lookup.
	ResolveExercises(ctx context.Context, ids []string) (found []domain.ExerciseRecord, missing []string, err error)
}

// --- Service Implementation ---

type exerciseService struct {
	catalog *catalog.Catalog
	media   storage.MediaStorage
	log     *logrus.Entry
}

// NewExerciseService creates a new instance of exerciseService.
func NewExerciseService(cat *catalog.Catalog, media storage.MediaStorage) ExerciseService {
	return &exerciseService{
		catalog: cat,
		media:   media,
		log:     logrus.WithField("component", "exercise-service"),
	}
}

func (s *exerciseService) ListExercises(ctx context.Context) ([]domain.ExerciseRecord, error) {
	return s.catalog.All()
}

func (s *exerciseService) GetExercise(ctx context.Context, id string) (*ResolvedExercise, error) {
	rec, err := s.catalog.Get(id)
	if err != nil {
		if errors.Is(err, catalog.ErrExerciseNotFound) {
			return nil, ErrExerciseNotFound
		}
		return nil, err
	}

	resolved := &ResolvedExercise{ExerciseRecord: rec}

	if s.media != nil && rec.GifURL != "" {
		url, err := s.media.GeneratePresignedDownloadURL(ctx, rec.GifURL, storage.DefaultPresignedURLExpiry)
		if err != nil {
			// Media is an enhancement; the record itself is still useful.
			s.log.WithError(err).WithField("exerciseId", id).Warn("failed to presign gif URL")
		} else {
			resolved.GifDownloadURL = url
		}
	}

	return resolved, nil
}

func (s *exerciseService) ResolveExercises(ctx context.Context, ids []string) ([]domain.ExerciseRecord, []string, error) {
	found := make([]domain.ExerciseRecord, 0, len(ids))
	var missing []string

	for _, id := range ids {
		rec, err := s.catalog.Get(id)
		if err != nil {
			if errors.Is(err, catalog.ErrExerciseNotFound) {
				missing = append(missing, id)
				continue
			}
			return nil, nil, err
		}
		found = append(found, rec)
	}

	return found, missing, nil
}
