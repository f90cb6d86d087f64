package store

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteReadDerivation(t *testing.T) {
	s := createTestStore(t)
	want := createTestDerivation("rec-1", "Bavati")

	id, err := s.WriteDerivation(t.Context(), want)
	require.NoError(t, err)
	assert.Equal(t, "rec-1", id)

	got, err := s.ReadDerivation(t.Context(), id)
	require.NoError(t, err)
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("record mismatch (-want +got):\n%s", diff)
	}
}

func TestWriteDerivation_AssignsUUIDv7(t *testing.T) {
	s := createTestStore(t)

	id, err := s.WriteDerivation(t.Context(), createTestDerivation("", "Bavati"))
	require.NoError(t, err)

	parsed, err := uuid.Parse(id)
	require.NoError(t, err)
	assert.Equal(t, uuid.Version(7), parsed.Version())
}

func TestWriteDerivation_Idempotent(t *testing.T) {
	s := createTestStore(t)

	_, err := s.WriteDerivation(t.Context(), createTestDerivation("dup", "Bavati"))
	require.NoError(t, err)
	_, err = s.WriteDerivation(t.Context(), createTestDerivation("dup", "BavataH"))
	require.NoError(t, err)

	all, err := s.ReadAllDerivations(t.Context())
	require.NoError(t, err)
	require.Len(t, all, 1)
	assert.Equal(t, "Bavati", all[0].Surface, "first write wins")
}

func TestReadDerivation_NotFound(t *testing.T) {
	s := createTestStore(t)

	_, err := s.ReadDerivation(t.Context(), "nope")
	require.ErrorIs(t, err, ErrNotFound)
}

func TestListDerivations_Order(t *testing.T) {
	s := createTestStore(t)
	for _, id := range []string{"z", "a", "m"} {
		_, err := s.WriteDerivation(t.Context(), createTestDerivation(id, "Bavati-"+id))
		require.NoError(t, err)
	}

	recs, err := s.ListDerivations(t.Context(), createTestDerivation("", "").RequestID)
	require.NoError(t, err)

	var ids []string
	for _, r := range recs {
		ids = append(ids, r.ID)
	}
	assert.Equal(t, []string{"z", "a", "m"}, ids, "insertion order, not ID order")

	none, err := s.ListDerivations(t.Context(), "other")
	require.NoError(t, err)
	assert.Empty(t, none)
}

func TestFindBySurface(t *testing.T) {
	s := createTestStore(t)
	for _, rec := range []struct{ id, surface string }{{"1", "cakAra"}, {"2", "cakara"}, {"3", "cakAra"}} {
		_, err := s.WriteDerivation(t.Context(), createTestDerivation(rec.id, rec.surface))
		require.NoError(t, err)
	}

	recs, err := s.FindBySurface(t.Context(), "cakAra")
	require.NoError(t, err)
	require.Len(t, recs, 2)
	assert.Equal(t, "1", recs[0].ID)
	assert.Equal(t, "3", recs[1].ID)
}

func TestReadAllDerivations(t *testing.T) {
	s := createTestStore(t)

	all, err := s.ReadAllDerivations(t.Context())
	require.NoError(t, err)
	assert.Empty(t, all)

	for _, id := range []string{"b", "a"} {
		_, err := s.WriteDerivation(t.Context(), createTestDerivation(id, "Bavati"))
		require.NoError(t, err)
	}
	all, err = s.ReadAllDerivations(t.Context())
	require.NoError(t, err)
	require.Len(t, all, 2)
	assert.Equal(t, "b", all[0].ID)
	assert.Equal(t, "a", all[1].ID)
}
