package derive

import (
	"context"
	"runtime"

	"golang.org/x/sync/errgroup"

	"github.com/roach88/prakriya/internal/args"
	"github.com/roach88/prakriya/internal/prakriya"
)

// Cell is one lakara × person/number slot of a paradigm.
type Cell struct {
	La    args.La
	Pada  args.PurushaVacana
	Forms []*prakriya.Prakriya
}

// Grid derives every lakara × person/number combination for one root in
// parallel. Cells come back in lakara order, then in args.Grid order. The
// first error cancels the remaining cells and is returned alone.
func Grid(ctx context.Context, dhatu, code string, prayoga args.Prayoga, opts ...Option) ([]Cell, error) {
	cells := make([]Cell, 0, len(args.Lakaras)*len(args.Grid))
	for _, la := range args.Lakaras {
		for _, pv := range args.Grid {
			cells = append(cells, Cell{La: la, Pada: pv})
		}
	}

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.GOMAXPROCS(0))
	for i := range cells {
		g.Go(func() error {
			req := Request{
				Dhatu:   dhatu,
				Code:    code,
				La:      cells[i].La,
				Prayoga: prayoga,
				Purusha: cells[i].Pada.Purusha,
				Vacana:  cells[i].Pada.Vacana,
			}
			forms, err := Derive(ctx, req, opts...)
			if err != nil {
				return err
			}
			cells[i].Forms = forms
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return cells, nil
}

// Surfaces returns every surface form in the grid in cell order.
func Surfaces(cells []Cell) []string {
	var out []string
	for _, c := range cells {
		for _, p := range c.Forms {
			out = append(out, p.Text())
		}
	}
	return out
}
