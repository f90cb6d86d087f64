package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/roach88/prakriya/internal/args"
	"github.com/roach88/prakriya/internal/derive"
	"github.com/roach88/prakriya/internal/ir"
)

// ExplainOptions holds flags for the explain command.
type ExplainOptions struct {
	*RootOptions
	Code    string
	Pada    string
	Lexicon string
	Prayoga string
}

// ExplainResult is the JSON payload of explain.
type ExplainResult struct {
	Code    string          `json:"code"`
	Pada    string          `json:"pada"`
	Matches []ir.Derivation `json:"matches"`
	Forms   []string        `json:"forms"`
}

// NewExplainCommand creates the explain command.
func NewExplainCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &ExplainOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "explain",
		Short: "Show how a form is derived",
		Long: `Derive every lakara and person/number combination for the roots with
the given dhatupatha code, and print the rule history of each derivation
whose result is the given form. The comma-joined list of every generated
form follows.

Exit codes:
  0 - Success (including no matching derivation)
  1 - Internal invariant violation
  2 - Command error (unknown code, bad lexicon, etc.)

Examples:
  prakriya explain --code 01.0001 --pada Bavati
  prakriya explain --code 08.0010 --pada cakAra --format json
  prakriya explain --code 01.0001 --pada aBAvi --prayoga karmani`,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runExplain(cmd.Context(), opts, cmd)
		},
	}

	cmd.Flags().StringVar(&opts.Code, "code", "", "dhatupatha code, e.g. 01.0001 (required)")
	cmd.Flags().StringVar(&opts.Pada, "pada", "", "surface form in SLP1 (required)")
	cmd.Flags().StringVar(&opts.Lexicon, "lexicon", "", "lexicon TSV file or CUE directory")
	cmd.Flags().StringVar(&opts.Prayoga, "prayoga", "kartari", "voice (kartari|karmani|bhave)")
	_ = cmd.MarkFlagRequired("code")
	_ = cmd.MarkFlagRequired("pada")

	return cmd
}

func runExplain(ctx context.Context, opts *ExplainOptions, cmd *cobra.Command) error {
	if ctx == nil {
		ctx = context.Background()
	}
	prayoga, err := args.ParsePrayoga(opts.Prayoga)
	if err != nil {
		return WrapExitError(ExitCommandError, "invalid --prayoga", err)
	}
	lex, err := opts.lexicon(opts.Lexicon)
	if err != nil {
		return err
	}
	roots := lex.ByCode(opts.Code)
	if len(roots) == 0 {
		return NewExitError(ExitCommandError, fmt.Sprintf("no root with code %s", opts.Code))
	}

	result := ExplainResult{Code: opts.Code, Pada: opts.Pada, Matches: []ir.Derivation{}, Forms: []string{}}
	for _, root := range roots {
		opts.Logger.Debug("deriving paradigm", "dhatu", root.Upadesha, "code", root.Code)
		cells, err := derive.Grid(ctx, root.Upadesha, root.Code, prayoga, opts.deriveOptions()...)
		if err != nil {
			return deriveError(err)
		}
		for _, c := range cells {
			req := derive.Request{
				Dhatu:   root.Upadesha,
				Code:    root.Code,
				La:      c.La,
				Prayoga: prayoga,
				Purusha: c.Pada.Purusha,
				Vacana:  c.Pada.Vacana,
			}
			for _, p := range c.Forms {
				if p.Text() != opts.Pada {
					continue
				}
				rec, err := derive.Record(req, p)
				if err != nil {
					return WrapExitError(ExitFailure, "failed to record derivation", err)
				}
				result.Matches = append(result.Matches, rec)
			}
		}
		result.Forms = append(result.Forms, derive.Surfaces(cells)...)
	}

	if opts.Format == "json" {
		return writeJSON(cmd.OutOrStdout(), result, nil)
	}

	w := cmd.OutOrStdout()
	for _, m := range result.Matches {
		r := m.Request
		fmt.Fprintf(w, "%s %s %s %s %s %s\n", r.Dhatu, r.Code, r.La, r.Prayoga, r.Purusha, r.Vacana)
		writeHistory(w, m.History, m.Choices)
		fmt.Fprintln(w)
	}
	fmt.Fprintln(w, strings.Join(result.Forms, ", "))
	return nil
}
