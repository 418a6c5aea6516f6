package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kaseddie/globalpath-agent/internal/types"
)

func TestSeed_CatalogShape(t *testing.T) {
	jobs := Seed()

	require.Len(t, jobs, 9)
	seen := make(map[string]struct{})
	for _, j := range jobs {
		assert.NotEmpty(t, j.ID)
		assert.NotEmpty(t, j.Title)
		assert.NotEmpty(t, j.SubCategory)
		assert.NotEqual(t, types.RegionAll, j.Region, "seed jobs carry a concrete region")
		assert.NotEqual(t, types.TypeAll, j.Type, "seed jobs carry a concrete type")
		_, dup := seen[j.ID]
		assert.False(t, dup, "duplicate job ID %s", j.ID)
		seen[j.ID] = struct{}{}
	}
}

func TestMemoryStore_ListIsSnapshot(t *testing.T) {
	store := NewMemoryStore(Seed())

	first := store.List()
	first[0].Title = "mutated"

	second := store.List()
	assert.NotEqual(t, "mutated", second[0].Title)
}

func TestMemoryStore_Get(t *testing.T) {
	store := NewMemoryStore(Seed())

	job, err := store.Get("2")
	require.NoError(t, err)
	assert.Equal(t, "Senior Software Engineer", job.Title)
}

func TestMemoryStore_GetUnknownID(t *testing.T) {
	store := NewMemoryStore(Seed())

	_, err := store.Get("404")
	var notFound *NotFoundError
	require.ErrorAs(t, err, &notFound)
	assert.Equal(t, "404", notFound.ID)
}

func TestMemoryStore_AttachImage(t *testing.T) {
	store := NewMemoryStore(Seed())

	require.NoError(t, store.AttachImage("1", "data:image/png;base64,aGk="))

	job, err := store.Get("1")
	require.NoError(t, err)
	assert.Equal(t, "data:image/png;base64,aGk=", job.ImageRef)
}

func TestMemoryStore_AttachImageUnknownID(t *testing.T) {
	store := NewMemoryStore(Seed())

	err := store.AttachImage("404", "ref")
	var notFound *NotFoundError
	assert.ErrorAs(t, err, &notFound)
}

func TestMemoryStore_UserVerifiedMarks(t *testing.T) {
	store := NewMemoryStore(Seed())

	assert.False(t, store.UserVerified("3"))
	require.NoError(t, store.MarkUserVerified("3"))
	assert.True(t, store.UserVerified("3"))
	assert.False(t, store.UserVerified("4"))
}

func TestMemoryStore_MarkUnknownID(t *testing.T) {
	store := NewMemoryStore(Seed())

	err := store.MarkUserVerified("404")
	var notFound *NotFoundError
	assert.ErrorAs(t, err, &notFound)
}
