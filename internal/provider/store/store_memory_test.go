package store

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sumbandila/internal/provider/models"
	"sumbandila/pkg/platform/sentinel"
)

func TestDefaultSeed(t *testing.T) {
	records, err := DefaultSeed()
	require.NoError(t, err)

	s, err := NewInMemoryStore(records)
	require.NoError(t, err)
	assert.Equal(t, len(records), s.Len())

	ctx := context.Background()

	college, err := s.FindByKey(ctx, models.NormalizeKey("education", "COLL-1234"))
	require.NoError(t, err)
	assert.Equal(t, &models.Provider{
		Registered:    true,
		Accreditation: "Dept of Education",
		Valid:         true,
		Name:          "Sunrise College",
	}, college)

	medic, err := s.FindByKey(ctx, models.NormalizeKey("Medical", "doc-4321"))
	require.NoError(t, err)
	assert.Equal(t, "Dr. A. Medic", medic.Name)
	assert.Equal(t, "Health Council", medic.Accreditation)

	flagged, err := s.FindByKey(ctx, models.NormalizeKey("education", "fake001"))
	require.NoError(t, err)
	assert.False(t, flagged.Valid)
}

func TestFindByKeyMiss(t *testing.T) {
	s, err := NewInMemoryStore(nil)
	require.NoError(t, err)

	_, err = s.FindByKey(context.Background(), models.NormalizeKey("education", "NOPE"))
	assert.ErrorIs(t, err, sentinel.ErrNotFound)
}

func TestFindByKeyReturnsCopy(t *testing.T) {
	s, err := NewInMemoryStore([]Record{{Type: "legal", Identifier: "LP1", Name: "Adv. A", Registered: true}})
	require.NoError(t, err)
	ctx := context.Background()

	first, err := s.FindByKey(ctx, models.NormalizeKey("legal", "lp1"))
	require.NoError(t, err)
	first.Name = "mutated"

	second, err := s.FindByKey(ctx, models.NormalizeKey("legal", "lp1"))
	require.NoError(t, err)
	assert.Equal(t, "Adv. A", second.Name)
}

func TestNewInMemoryStoreRejectsNormalizedDuplicates(t *testing.T) {
	_, err := NewInMemoryStore([]Record{
		{Type: "Education", Identifier: "coll-1"},
		{Type: "education", Identifier: "COLL-1"},
	})
	assert.ErrorIs(t, err, sentinel.ErrAlreadyExists)
}

func TestLoadSeed(t *testing.T) {
	t.Run("empty path uses embedded seed", func(t *testing.T) {
		records, err := LoadSeed("")
		require.NoError(t, err)
		assert.NotEmpty(t, records)
	})

	t.Run("file override", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "providers.yaml")
		doc := "providers:\n  - type: medical\n    identifier: MP9\n    name: Dr. Override\n    registered: true\n    valid: true\n"
		require.NoError(t, os.WriteFile(path, []byte(doc), 0o600))

		records, err := LoadSeed(path)
		require.NoError(t, err)
		require.Len(t, records, 1)
		assert.Equal(t, "Dr. Override", records[0].Name)
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := LoadSeed(filepath.Join(t.TempDir(), "absent.yaml"))
		assert.Error(t, err)
	})

	t.Run("entry without identifier", func(t *testing.T) {
		_, err := ParseSeed([]byte("providers:\n  - type: medical\n"))
		assert.Error(t, err)
	})

	t.Run("malformed yaml", func(t *testing.T) {
		_, err := ParseSeed([]byte("providers: [\n"))
		assert.Error(t, err)
	})
}
