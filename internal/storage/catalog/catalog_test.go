package catalog

import (
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"roomBooker/internal/models"
	"roomBooker/internal/storage"
	"testing"
)

func TestCatalog(t *testing.T) {
	t.Parallel()

	c := New()
	ws := models.Resource{ID: 1, Kind: models.KindWorkspace, Name: "Workspace 1", Capacity: 6}
	room := models.Resource{ID: 1, Kind: models.KindConferenceRoom, Name: "Conference Room 1", Capacity: 11}
	room2 := models.Resource{ID: 2, Kind: models.KindConferenceRoom, Name: "Conference Room 2", Capacity: 12}

	require.NoError(t, c.Create(room2))
	require.NoError(t, c.Create(room))
	require.NoError(t, c.Create(ws), "same id under another kind is a different resource")

	assert.ErrorIs(t, c.Create(ws), storage.ErrResourceExists)

	assert.Equal(t, []models.Resource{ws, room, room2}, c.List(""))
	assert.Equal(t, []models.Resource{room, room2}, c.List(models.KindConferenceRoom))

	ws.Name = "Quiet corner"
	ws.Capacity = 2
	require.NoError(t, c.Update(ws))

	got, err := c.Get(ws.Key())
	require.NoError(t, err)
	assert.Equal(t, ws, got)

	require.NoError(t, c.Delete(room.Key()))
	_, err = c.Get(room.Key())
	assert.ErrorIs(t, err, storage.ErrResourceNotFound)
	assert.ErrorIs(t, c.Delete(room.Key()), storage.ErrResourceNotFound)
	assert.ErrorIs(t, c.Update(room), storage.ErrResourceNotFound)
}
