package alerts

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kaseddie/globalpath-agent/internal/types"
)

func TestAppend_AssignsID(t *testing.T) {
	store := NewMemoryStore()

	alert := store.Append(types.JobAlert{
		Email:  "a@b.com",
		Search: "nurse",
		Region: types.RegionEurope,
		Type:   types.TypeProfessional,
	})

	assert.NotEqual(t, uuid.Nil, alert.ID)
	assert.Equal(t, "a@b.com", alert.Email)
	assert.Equal(t, "nurse", alert.Search)
	assert.Equal(t, types.RegionEurope, alert.Region)
	assert.Equal(t, types.TypeProfessional, alert.Type)
}

func TestAppend_IDsAreUnique(t *testing.T) {
	store := NewMemoryStore()

	first := store.Append(types.JobAlert{Email: "a@b.com"})
	second := store.Append(types.JobAlert{Email: "a@b.com"})

	assert.NotEqual(t, first.ID, second.ID)
}

func TestList_CreationOrder(t *testing.T) {
	store := NewMemoryStore()

	store.Append(types.JobAlert{Email: "first@example.com"})
	store.Append(types.JobAlert{Email: "second@example.com"})

	alerts := store.List()
	require.Len(t, alerts, 2)
	assert.Equal(t, "first@example.com", alerts[0].Email)
	assert.Equal(t, "second@example.com", alerts[1].Email)
}

func TestList_EmptyStore(t *testing.T) {
	store := NewMemoryStore()

	assert.Empty(t, store.List())
}
