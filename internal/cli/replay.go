package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/roach88/prakriya/internal/derive"
	"github.com/roach88/prakriya/internal/ir"
	"github.com/roach88/prakriya/internal/store"
)

// ReplayOptions holds flags for the replay command.
type ReplayOptions struct {
	*RootOptions
	DB      string
	ID      string // optional - single record only
	Request string // optional - records of one request ID only
}

// ReplayRecordResult is the replay outcome of one record.
type ReplayRecordResult struct {
	ID           string `json:"id"`
	Surface      string `json:"surface"`
	StoredDigest string `json:"stored_digest"`
	Digest       string `json:"digest"`
	Match        bool   `json:"match"`
	Error        string `json:"error,omitempty"`
}

// ReplayResult holds the overall replay result.
type ReplayResult struct {
	Records  []ReplayRecordResult `json:"records"`
	Total    int                  `json:"total"`
	AllMatch bool                 `json:"all_match"`
}

// NewReplayCommand creates the replay command.
func NewReplayCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &ReplayOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "replay",
		Short: "Re-derive stored records and verify their digests",
		Long: `Re-derive stored derivations with their recorded rule choices forced,
and check that each reproduces its stored history digest.

Without --id or --request every record in the database is replayed.

Exit codes:
  0 - Every record reproduced its digest
  1 - At least one record did not
  2 - Command error (database not found, unknown ID, etc.)

Examples:
  prakriya replay --db ./prakriya.db
  prakriya replay --db ./prakriya.db --id 0192f3c4-...
  prakriya replay --db ./prakriya.db --format json`,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runReplay(cmd.Context(), opts, cmd)
		},
	}

	cmd.Flags().StringVar(&opts.DB, "db", "", "path to SQLite database")
	cmd.Flags().StringVar(&opts.ID, "id", "", "replay one record")
	cmd.Flags().StringVar(&opts.Request, "request", "", "replay the records of one request ID")
	cmd.MarkFlagsMutuallyExclusive("id", "request")

	return cmd
}

func runReplay(ctx context.Context, opts *ReplayOptions, cmd *cobra.Command) error {
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

	replay := func(ctx context.Context, rec ir.Derivation) (ir.Derivation, error) {
		return derive.Replay(ctx, rec, opts.deriveOptions()...)
	}

	var results []store.ReplayResult
	switch {
	case opts.ID != "":
		rec, err := st.ReadDerivation(ctx, opts.ID)
		if errors.Is(err, store.ErrNotFound) {
			return NewExitError(ExitCommandError, fmt.Sprintf("no derivation with id %s", opts.ID))
		}
		if err != nil {
			return WrapExitError(ExitCommandError, "failed to read derivation", err)
		}
		results = append(results, replayOne(ctx, rec, replay))
	case opts.Request != "":
		results, err = st.ReplayRequest(ctx, opts.Request, replay)
		if err != nil {
			return WrapExitError(ExitCommandError, "failed to replay request", err)
		}
	default:
		recs, err := st.ReadAllDerivations(ctx)
		if err != nil {
			return WrapExitError(ExitCommandError, "failed to read derivations", err)
		}
		for _, rec := range recs {
			results = append(results, replayOne(ctx, rec, replay))
		}
	}

	result := ReplayResult{Records: make([]ReplayRecordResult, 0, len(results)), Total: len(results), AllMatch: true}
	for _, r := range results {
		rr := ReplayRecordResult{ID: r.ID, Surface: r.Surface, StoredDigest: r.StoredDigest, Digest: r.Digest, Match: r.OK()}
		if r.Err != nil {
			rr.Error = r.Err.Error()
		}
		if !rr.Match {
			result.AllMatch = false
			opts.Logger.Warn("replay mismatch", "id", r.ID, "surface", r.Surface, "error", r.Err)
		}
		result.Records = append(result.Records, rr)
	}

	if opts.Format == "json" {
		var cliErr *CLIError
		if !result.AllMatch {
			cliErr = &CLIError{Code: "E_REPLAY", Message: "replay verification failed"}
		}
		if err := writeJSON(cmd.OutOrStdout(), result, cliErr); err != nil {
			return err
		}
	} else {
		writeReplayText(cmd, result)
	}

	if !result.AllMatch {
		return NewExitError(ExitFailure, "replay verification failed")
	}
	return nil
}

func replayOne(ctx context.Context, rec ir.Derivation, fn store.ReplayFunc) store.ReplayResult {
	fresh, err := fn(ctx, rec)
	return store.ReplayResult{ID: rec.ID, Surface: rec.Surface, StoredDigest: rec.Digest, Digest: fresh.Digest, Err: err}
}

func writeReplayText(cmd *cobra.Command, result ReplayResult) {
	w := cmd.OutOrStdout()

	fmt.Fprintf(w, "Replay Summary: %d record(s)\n\n", result.Total)
	for _, r := range result.Records {
		status := "✓"
		if !r.Match {
			status = "✗"
		}
		fmt.Fprintf(w, "%s %s %s\n", status, r.ID, r.Surface)
		if r.Error != "" {
			fmt.Fprintf(w, "  %s\n", r.Error)
		}
	}
	fmt.Fprintln(w)

	if result.AllMatch {
		fmt.Fprintln(w, "✓ All records reproduced")
		return
	}
	fmt.Fprintln(w, "✗ Replay verification failed")
}
