package derive

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/roach88/prakriya/internal/args"
)

func TestGrid_Order(t *testing.T) {
	cells, err := Grid(context.Background(), bhu.dhatu, bhu.code, args.Kartari)
	require.NoError(t, err)
	require.Len(t, cells, len(args.Lakaras)*len(args.Grid))

	for i, c := range cells {
		assert.Equal(t, args.Lakaras[i/len(args.Grid)], c.La)
		assert.Equal(t, i%len(args.Grid), c.Pada.Index())
	}

	first := func(la args.La, pv args.PurushaVacana) string {
		c := cells[int(la)*len(args.Grid)+pv.Index()]
		require.NotEmpty(t, c.Forms, "%s %v", la, pv)
		return c.Forms[0].Text()
	}
	assert.Equal(t, "Bavati", first(args.Lat, args.PurushaVacana{Purusha: args.Prathama, Vacana: args.Eka}))
	assert.Equal(t, "baBUva", first(args.Lit, args.PurushaVacana{Purusha: args.Prathama, Vacana: args.Eka}))
	assert.Equal(t, "aBUvan", first(args.Lun, args.PurushaVacana{Purusha: args.Prathama, Vacana: args.Bahu}))
}

func TestGrid_MatchesSequentialDerive(t *testing.T) {
	cells, err := Grid(context.Background(), tud.dhatu, tud.code, args.Kartari)
	require.NoError(t, err)

	var want []string
	for _, la := range args.Lakaras {
		for _, pv := range args.Grid {
			ps, err := Derive(context.Background(), Request{
				Dhatu: tud.dhatu, Code: tud.code, La: la,
				Prayoga: args.Kartari, Purusha: pv.Purusha, Vacana: pv.Vacana,
			})
			require.NoError(t, err)
			want = append(want, surfaces(ps)...)
		}
	}
	assert.Equal(t, want, Surfaces(cells))
}

func TestGrid_ErrorCancelsRest(t *testing.T) {
	cells, err := Grid(context.Background(), "BU", "bad", args.Kartari)
	require.Error(t, err)
	assert.Nil(t, cells)
}
