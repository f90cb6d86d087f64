package cli

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/roach88/prakriya/internal/ir"
	"github.com/roach88/prakriya/internal/store"
)

// TraceOptions holds flags for the trace command.
type TraceOptions struct {
	*RootOptions
	DB      string
	ID      string
	Surface string
}

// NewTraceCommand creates the trace command.
func NewTraceCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &TraceOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "trace",
		Short: "Print stored derivations",
		Long: `Print a stored derivation: its request, rule history, rule choices and
digest. Select it by record ID, or list every stored derivation of a surface
form.

Examples:
  prakriya trace --db ./prakriya.db --id 0192f3c4-...
  prakriya trace --db ./prakriya.db --surface Bavati
  prakriya trace --db ./prakriya.db --id 0192f3c4-... --format json`,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runTrace(cmd.Context(), opts, cmd)
		},
	}

	cmd.Flags().StringVar(&opts.DB, "db", "", "path to SQLite database")
	cmd.Flags().StringVar(&opts.ID, "id", "", "record ID")
	cmd.Flags().StringVar(&opts.Surface, "surface", "", "list records with this surface form")
	cmd.MarkFlagsOneRequired("id", "surface")
	cmd.MarkFlagsMutuallyExclusive("id", "surface")

	return cmd
}

func runTrace(ctx context.Context, opts *TraceOptions, cmd *cobra.Command) error {
	if ctx == nil {
		ctx = context.Background()
	}
	path, err := opts.database(opts.DB)
	if err != nil {
		return err
	}
	st, err := store.Open(path)
	if err != nil {
		return WrapExitError(ExitCommandError, "failed to open database", err)
	}
	defer st.Close()

	var recs []ir.Derivation
	if opts.ID != "" {
		rec, err := st.ReadDerivation(ctx, opts.ID)
		if errors.Is(err, store.ErrNotFound) {
			return NewExitError(ExitCommandError, fmt.Sprintf("no derivation with id %s", opts.ID))
		}
		if err != nil {
			return WrapExitError(ExitCommandError, "failed to read derivation", err)
		}
		recs = []ir.Derivation{rec}
	} else {
		recs, err = st.FindBySurface(ctx, opts.Surface)
		if err != nil {
			return WrapExitError(ExitCommandError, "failed to read derivations", err)
		}
	}

	if opts.Format == "json" {
		return writeJSON(cmd.OutOrStdout(), recs, nil)
	}

	w := cmd.OutOrStdout()
	if len(recs) == 0 {
		fmt.Fprintln(w, "No derivations found.")
		return nil
	}
	for _, rec := range recs {
		writeRecord(w, rec, opts.Verbose)
		fmt.Fprintln(w)
	}
	return nil
}

func writeRecord(w io.Writer, rec ir.Derivation, verbose bool) {
	r := rec.Request
	fmt.Fprintf(w, "Derivation: %s\n", rec.ID)
	fmt.Fprintf(w, "Request: %s %s %s %s %s %s\n", r.Dhatu, r.Code, r.La, r.Prayoga, r.Purusha, r.Vacana)
	fmt.Fprintf(w, "Surface: %s\n", rec.Surface)
	if verbose {
		fmt.Fprintf(w, "Request ID: %s\n", rec.RequestID)
		fmt.Fprintf(w, "Engine: %s (ir v%s)\n", rec.EngineVersion, rec.IRVersion)
	}
	fmt.Fprintf(w, "Digest: %s\n\n", rec.Digest)
	writeHistory(w, rec.History, rec.Choices)
}
