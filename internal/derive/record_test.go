package derive

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/roach88/prakriya/internal/args"
	"github.com/roach88/prakriya/internal/ir"
)

func TestRecord(t *testing.T) {
	r := req(bhu, args.Lat, args.Prathama, args.Eka)
	ps, err := Derive(context.Background(), r)
	require.NoError(t, err)
	require.NotEmpty(t, ps)

	rec, err := Record(r, ps[0])
	require.NoError(t, err)

	assert.Empty(t, rec.ID)
	assert.Equal(t, ir.MustRequestID(r.IR()), rec.RequestID)
	assert.Equal(t, "Bavati", rec.Surface)
	assert.Len(t, rec.History, len(ps[0].History()))
	assert.Equal(t, "Bavati", rec.History[len(rec.History)-1].Result)
	assert.Len(t, rec.Digest, 64)
	assert.Equal(t, ir.EngineVersion, rec.EngineVersion)
}

func TestReplay(t *testing.T) {
	r := req(kr, args.Lit, args.Uttama, args.Eka)
	ps, err := Derive(context.Background(), r)
	require.NoError(t, err)

	for _, p := range ps {
		t.Run(p.Text(), func(t *testing.T) {
			rec, err := Record(r, p)
			require.NoError(t, err)
			rec.ID = "rec-" + p.Text()

			fresh, err := Replay(context.Background(), rec)
			require.NoError(t, err)
			assert.Equal(t, rec.Digest, fresh.Digest)
			assert.Equal(t, rec.Surface, fresh.Surface)
			assert.Equal(t, rec.ID, fresh.ID)
		})
	}
}

func TestReplay_Mismatch(t *testing.T) {
	r := req(bhu, args.Lat, args.Prathama, args.Eka)
	ps, err := Derive(context.Background(), r)
	require.NoError(t, err)
	require.NotEmpty(t, ps)

	rec, err := Record(r, ps[0])
	require.NoError(t, err)
	rec.Digest = "0000"

	_, err = Replay(context.Background(), rec)
	require.ErrorIs(t, err, ErrReplayMismatch)
}

func TestReplay_UnknownChoice(t *testing.T) {
	rec := ir.Derivation{
		ID:      "bad",
		Request: req(bhu, args.Lat, args.Prathama, args.Eka).IR(),
		Choices: []ir.Choice{{Rule: "7.2.63", Decision: "maybe"}},
	}

	_, err := Replay(context.Background(), rec)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown decision")
}
