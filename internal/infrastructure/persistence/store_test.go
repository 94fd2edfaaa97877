package persistence

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/dovepeak/backend/internal/domain/property"
	"github.com/dovepeak/backend/internal/domain/shared"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := NewStore(t.TempDir(), zap.NewNop())
	require.NoError(t, err)
	return store
}

func newApartment(t *testing.T, name string) *property.Apartment {
	t.Helper()
	apartment, err := property.NewApartment(name, "1 Test Lane", 4)
	require.NoError(t, err)
	return apartment
}

func TestCollection_AddAndFindByID(t *testing.T) {
	store := newTestStore(t)
	coll := NewCollection[property.Apartment](store, "apartments")

	apartment := newApartment(t, "Sunrise Heights")
	require.NoError(t, coll.Add(apartment))

	assert.NotEqual(t, "00000000-0000-0000-0000-000000000000", apartment.ID.String())
	assert.False(t, apartment.CreatedAt.IsZero())

	found, err := coll.FindByID(apartment.ID)
	require.NoError(t, err)
	assert.Equal(t, apartment.ID, found.ID)
	assert.Equal(t, "Sunrise Heights", found.Name)
}

func TestCollection_FindByID_NotFound(t *testing.T) {
	store := newTestStore(t)
	coll := NewCollection[property.Apartment](store, "apartments")

	apartment := newApartment(t, "Sunrise Heights")
	_, err := coll.FindByID(apartment.ID)
	assert.ErrorIs(t, err, shared.ErrNotFound)
}

func TestCollection_UpdateRefreshesTimestamp(t *testing.T) {
	store := newTestStore(t)
	coll := NewCollection[property.Apartment](store, "apartments")

	apartment := newApartment(t, "Sunrise Heights")
	require.NoError(t, coll.Add(apartment))
	created := apartment.UpdatedAt

	time.Sleep(5 * time.Millisecond)
	apartment.Name = "Sunset Heights"
	require.NoError(t, coll.Update(apartment))

	found, err := coll.FindByID(apartment.ID)
	require.NoError(t, err)
	assert.Equal(t, "Sunset Heights", found.Name)
	assert.True(t, found.UpdatedAt.After(created))
}

func TestCollection_UpdateMissingRecord(t *testing.T) {
	store := newTestStore(t)
	coll := NewCollection[property.Apartment](store, "apartments")

	apartment := newApartment(t, "Sunrise Heights")
	apartment.EnsureID()
	err := coll.Update(apartment)
	assert.ErrorIs(t, err, shared.ErrNotFound)
}

func TestCollection_DeleteIsIdempotent(t *testing.T) {
	store := newTestStore(t)
	coll := NewCollection[property.Apartment](store, "apartments")

	apartment := newApartment(t, "Sunrise Heights")
	require.NoError(t, coll.Add(apartment))

	removed, err := coll.Delete(apartment.ID)
	require.NoError(t, err)
	assert.True(t, removed)

	removed, err = coll.Delete(apartment.ID)
	require.NoError(t, err)
	assert.False(t, removed)
}

func TestCollection_UnavailableStoreDegrades(t *testing.T) {
	store, err := NewStore("", zap.NewNop())
	require.NoError(t, err)
	assert.False(t, store.Available())

	coll := NewCollection[property.Apartment](store, "apartments")

	apartment := newApartment(t, "Sunrise Heights")
	require.NoError(t, coll.Add(apartment))

	// Writes are dropped and reads see an empty collection
	items, err := coll.GetAll()
	require.NoError(t, err)
	assert.Empty(t, items)
}

func TestCollection_CorruptDocumentDegradesToEmpty(t *testing.T) {
	dir := t.TempDir()
	store, err := NewStore(dir, zap.NewNop())
	require.NoError(t, err)

	path := filepath.Join(dir, "dovepeak_apartments.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o644))

	coll := NewCollection[property.Apartment](store, "apartments")
	items, err := coll.GetAll()
	require.NoError(t, err)
	assert.Empty(t, items)

	// The store stays writable after discarding the corrupt document
	apartment := newApartment(t, "Sunrise Heights")
	require.NoError(t, coll.Add(apartment))

	items, err = coll.GetAll()
	require.NoError(t, err)
	assert.Len(t, items, 1)
}

func TestStore_ClearRemovesNamespacedDocuments(t *testing.T) {
	dir := t.TempDir()
	store, err := NewStore(dir, zap.NewNop())
	require.NoError(t, err)

	coll := NewCollection[property.Apartment](store, "apartments")
	require.NoError(t, coll.Add(newApartment(t, "Sunrise Heights")))

	foreign := filepath.Join(dir, "unrelated.json")
	require.NoError(t, os.WriteFile(foreign, []byte("[]"), 0o644))

	require.NoError(t, store.Clear())

	items, err := coll.GetAll()
	require.NoError(t, err)
	assert.Empty(t, items)

	_, err = os.Stat(foreign)
	assert.NoError(t, err)
}
