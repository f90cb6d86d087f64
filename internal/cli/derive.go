package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/roach88/prakriya/internal/args"
	"github.com/roach88/prakriya/internal/derive"
	"github.com/roach88/prakriya/internal/ir"
	"github.com/roach88/prakriya/internal/store"
)

// DeriveOptions holds flags for the derive command.
type DeriveOptions struct {
	*RootOptions
	Dhatu   string
	Code    string
	La      string
	Prayoga string
	Purusha string
	Vacana  string
	History bool
	Record  bool
	DB      string
}

// DeriveResult is the JSON payload of derive.
type DeriveResult struct {
	Request     ir.Request      `json:"request"`
	Derivations []ir.Derivation `json:"derivations"`
}

// NewDeriveCommand creates the derive command.
func NewDeriveCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &DeriveOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "derive",
		Short: "Derive the forms of one root in one slot",
		Long: `Derive every surface form of a root for one lakara, voice, person and
number. With --db the derivations are also written to the audit database
and their record IDs are printed.

Examples:
  prakriya derive --dhatu BU --code 01.0001 --la law --purusha prathama --vacana eka
  prakriya derive --dhatu 'qukf\Y' --code 08.0010 --la liw --purusha uttama --vacana eka --history
  prakriya derive --dhatu BU --code 01.0001 --la luN --purusha prathama --vacana eka --db ./prakriya.db`,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			opts.Record = cmd.Flags().Changed("db") || opts.Config.Database != ""
			return runDerive(cmd.Context(), opts, cmd)
		},
	}

	cmd.Flags().StringVar(&opts.Dhatu, "dhatu", "", "root in upadesha form, SLP1 (required)")
	cmd.Flags().StringVar(&opts.Code, "code", "", "dhatupatha code (required)")
	cmd.Flags().StringVar(&opts.La, "la", "", "lakara, e.g. law, liw, luN (required)")
	cmd.Flags().StringVar(&opts.Prayoga, "prayoga", "kartari", "voice (kartari|karmani|bhave)")
	cmd.Flags().StringVar(&opts.Purusha, "purusha", "", "person (prathama|madhyama|uttama) (required)")
	cmd.Flags().StringVar(&opts.Vacana, "vacana", "", "number (eka|dvi|bahu) (required)")
	cmd.Flags().BoolVar(&opts.History, "history", false, "print the rule history of each form")
	cmd.Flags().StringVar(&opts.DB, "db", "", "record derivations in this SQLite database")
	for _, name := range []string{"dhatu", "code", "la", "purusha", "vacana"} {
		_ = cmd.MarkFlagRequired(name)
	}

	return cmd
}

func (o *DeriveOptions) request() (derive.Request, error) {
	la, err := args.ParseLa(o.La)
	if err != nil {
		return derive.Request{}, err
	}
	prayoga, err := args.ParsePrayoga(o.Prayoga)
	if err != nil {
		return derive.Request{}, err
	}
	purusha, err := args.ParsePurusha(o.Purusha)
	if err != nil {
		return derive.Request{}, err
	}
	vacana, err := args.ParseVacana(o.Vacana)
	if err != nil {
		return derive.Request{}, err
	}
	if _, _, err := args.ParseCode(o.Code); err != nil {
		return derive.Request{}, err
	}
	return derive.Request{Dhatu: o.Dhatu, Code: o.Code, La: la, Prayoga: prayoga, Purusha: purusha, Vacana: vacana}, nil
}

func runDerive(ctx context.Context, opts *DeriveOptions, cmd *cobra.Command) error {
	if ctx == nil {
		ctx = context.Background()
	}
	req, err := opts.request()
	if err != nil {
		return WrapExitError(ExitCommandError, "invalid request", err)
	}

	ps, err := derive.Derive(ctx, req, opts.deriveOptions()...)
	if err != nil {
		return deriveError(err)
	}

	result := DeriveResult{Request: req.IR(), Derivations: make([]ir.Derivation, 0, len(ps))}
	for _, p := range ps {
		rec, err := derive.Record(req, p)
		if err != nil {
			return WrapExitError(ExitFailure, "failed to record derivation", err)
		}
		result.Derivations = append(result.Derivations, rec)
	}

	if opts.Record {
		if err := recordAll(ctx, opts, result.Derivations); err != nil {
			return err
		}
	}

	if opts.Format == "json" {
		return writeJSON(cmd.OutOrStdout(), result, nil)
	}

	w := cmd.OutOrStdout()
	if len(result.Derivations) == 0 {
		fmt.Fprintln(w, "No forms derived.")
		return nil
	}
	for _, d := range result.Derivations {
		if d.ID != "" {
			fmt.Fprintf(w, "%s\t%s\n", d.Surface, d.ID)
		} else {
			fmt.Fprintln(w, d.Surface)
		}
		if opts.History {
			writeHistory(w, d.History, d.Choices)
			fmt.Fprintln(w)
		}
	}
	return nil
}

// recordAll writes the derivations and fills in their IDs.
func recordAll(ctx context.Context, opts *DeriveOptions, recs []ir.Derivation) error {
	path, err := opts.database(opts.DB)
	if err != nil {
		return err
	}
	st, err := store.Open(path)
	if err != nil {
		return WrapExitError(ExitCommandError, "failed to open database", err)
	}
	defer st.Close()

	for i := range recs {
		id, err := st.WriteDerivation(ctx, recs[i])
		if err != nil {
			return WrapExitError(ExitCommandError, "failed to write derivation", err)
		}
		recs[i].ID = id
		opts.Logger.Debug("derivation recorded", "id", id, "surface", recs[i].Surface)
	}
	return nil
}
