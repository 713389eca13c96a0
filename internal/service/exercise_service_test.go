package service

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"myfitness/server/internal/catalog"
)

const serviceCatalogJSON = `[
	{"id":"0007","name":"Push Ups","bodyPart":"chest","target":"pectorals","equipment":"body weight","gifUrl":"gifs/0007.gif","secondaryMuscles":[],"instructions":[]},
	{"id":"0020","name":"Jumping Jacks","bodyPart":"cardio","target":"cardiovascular system","equipment":"body weight","gifUrl":"","secondaryMuscles":[],"instructions":[]}
]`

type fakeMedia struct{}

func (fakeMedia) GeneratePresignedDownloadURL(_ context.Context, objectKey string, _ time.Duration) (string, error) {
	return "https://media.example.com/" + objectKey, nil
}

func newServiceCatalog(t *testing.T) *catalog.Catalog {
	t.Helper()
	path := filepath.Join(t.TempDir(), "exercises.json")
	require.NoError(t, os.WriteFile(path, []byte(serviceCatalogJSON), 0o600))
	return catalog.New(path)
}

func TestListExercises(t *testing.T) {
	svc := NewExerciseService(newServiceCatalog(t), nil)

	records, err := svc.ListExercises(context.Background())
	require.NoError(t, err)
	assert.Len(t, records, 2)
}

func TestGetExerciseWithMedia(t *testing.T) {
	svc := NewExerciseService(newServiceCatalog(t), fakeMedia{})

	resolved, err := svc.GetExercise(context.Background(), "0007")
	require.NoError(t, err)
	assert.Equal(t, "Push Ups", resolved.Name)
	assert.Equal(t, "https://media.example.com/gifs/0007.gif", resolved.GifDownloadURL)
}

func TestGetExerciseWithoutMedia(t *testing.T) {
	svc := NewExerciseService(newServiceCatalog(t), nil)

	resolved, err := svc.GetExercise(context.Background(), "0020")
	require.NoError(t, err)
	assert.Empty(t, resolved.GifDownloadURL)
}

func TestGetExerciseNotFound(t *testing.T) {
	svc := NewExerciseService(newServiceCatalog(t), nil)

	_, err := svc.GetExercise(context.Background(), "9999")
	assert.ErrorIs(t, err, ErrExerciseNotFound)
}

func TestResolveExercisesToleratesUnknownIDs(t *testing.T) {
	svc := NewExerciseService(newServiceCatalog(t), nil)

	found, missing, err := svc.ResolveExercises(context.Background(), []string{"0007", "9999", "0020"})
	require.NoError(t, err)
	require.Len(t, found, 2)
	assert.Equal(t, "Push Ups", found[0].Name)
	assert.Equal(t, []string{"9999"}, missing)
}

func TestResolveExercisesEmpty(t *testing.T) {
	svc := NewExerciseService(newServiceCatalog(t), nil)

	found, missing, err := svc.ResolveExercises(context.Background(), nil)
	require.NoError(t, err)
	assert.Empty(t, found)
	assert.Empty(t, missing)
}
