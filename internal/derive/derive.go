package derive

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/roach88/prakriya/internal/args"
	"github.com/roach88/prakriya/internal/ir"
	"github.com/roach88/prakriya/internal/prakriya"
	"github.com/roach88/prakriya/internal/rules"
	"github.com/roach88/prakriya/internal/telemetry"
)

// DefaultMaxBranches is the default maximum number of choice configurations
// run for one request.
const DefaultMaxBranches = 64

// Request names one tinanta to derive.
type Request struct {
	// Dhatu is the root in upadesha form, e.g. "qukf\\Y".
	Dhatu string

	// Code is the dhatupatha code, e.g. "08.0010".
	Code string

	La      args.La
	Prayoga args.Prayoga
	Purusha args.Purusha
	Vacana  args.Vacana
}

// String returns a compact description such as "BU 01.0001 law kartari prathama eka".
func (r Request) String() string {
	return fmt.Sprintf("%s %s %s %s %s %s", r.Dhatu, r.Code, r.La, r.Prayoga, r.Purusha, r.Vacana)
}

// IR returns the canonical form of the request.
func (r Request) IR() ir.Request {
	return ir.Request{
		Dhatu:   r.Dhatu,
		Code:    r.Code,
		La:      r.La.String(),
		Prayoga: r.Prayoga.String(),
		Purusha: r.Purusha.String(),
		Vacana:  r.Vacana.String(),
	}
}

// RequestFromIR parses a canonical request.
func RequestFromIR(r ir.Request) (Request, error) {
	la, err := args.ParseLa(r.La)
	if err != nil {
		return Request{}, err
	}
	prayoga, err := args.ParsePrayoga(r.Prayoga)
	if err != nil {
		return Request{}, err
	}
	purusha, err := args.ParsePurusha(r.Purusha)
	if err != nil {
		return Request{}, err
	}
	vacana, err := args.ParseVacana(r.Vacana)
	if err != nil {
		return Request{}, err
	}
	return Request{Dhatu: r.Dhatu, Code: r.Code, La: la, Prayoga: prayoga, Purusha: purusha, Vacana: vacana}, nil
}

type options struct {
	maxBranches int
	logger      *slog.Logger
	metrics     *telemetry.Collector
	traceRules  bool
}

// Option configures Derive and Grid.
type Option func(*options)

// WithMaxBranches sets the maximum number of choice configurations per
// request.
//
// Default: 64 (DefaultMaxBranches)
func WithMaxBranches(n int) Option {
	return func(o *options) {
		o.maxBranches = n
	}
}

// WithLogger sets the logger. Default: slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(o *options) {
		o.logger = logger
	}
}

// WithMetrics records request metrics in c.
func WithMetrics(c *telemetry.Collector) Option {
	return func(o *options) {
		o.metrics = c
	}
}

// WithRuleTrace logs every applied rule at Debug level.
func WithRuleTrace() Option {
	return func(o *options) {
		o.traceRules = true
	}
}

func newOptions(opts []Option) options {
	o := options{maxBranches: DefaultMaxBranches}
	for _, opt := range opts {
		opt(&o)
	}
	if o.logger == nil {
		o.logger = slog.Default()
	}
	return o
}

// Derive returns one finished derivation per distinct surface form, in
// exploration order. A request that no branch can finish yields an empty
// slice and a nil error.
func Derive(ctx context.Context, req Request, opts ...Option) ([]*prakriya.Prakriya, error) {
	o := newOptions(opts)
	start := time.Now()

	results, branches, err := explore(ctx, req, o)
	outcome := telemetry.OutcomeOK
	switch {
	case err != nil:
		outcome = telemetry.OutcomeError
	case len(results) == 0:
		outcome = telemetry.OutcomeEmpty
	}
	o.metrics.RecordRequest(outcome, time.Since(start), branches, len(results))
	if err != nil {
		return nil, err
	}
	return results, nil
}

func explore(ctx context.Context, req Request, o options) ([]*prakriya.Prakriya, int, error) {
	logger := o.logger.With("request", req.String())
	tracker := newConfigTracker()
	quota := &branchQuota{limit: o.maxBranches}
	surfaces := make(map[string]bool)
	results := []*prakriya.Prakriya{}

	queue := [][]ir.Choice{{}}
	for len(queue) > 0 {
		if err := ctx.Err(); err != nil {
			return nil, tracker.Len(), err
		}
		cfg := queue[0]
		queue = queue[1:]

		fresh, err := tracker.Visit(cfg)
		if err != nil {
			return nil, tracker.Len(), err
		}
		if !fresh {
			continue
		}
		if err := quota.Check(req); err != nil {
			return nil, tracker.Len(), err
		}

		branch := tracker.Len()
		p, err := run(req, cfg, o)
		switch {
		case rules.IsUnsupported(err):
			logger.Debug("branch not covered", "branch", branch, "error", err)
		case err != nil:
			logger.Error("derivation failed", "branch", branch, "error", err)
			return nil, tracker.Len(), err
		case surfaces[p.Text()]:
			logger.Debug("duplicate surface", "branch", branch, "surface", p.Text())
		default:
			surfaces[p.Text()] = true
			results = append(results, p)
			logger.Debug("branch finished", "branch", branch, "surface", p.Text())
		}
		if p == nil {
			continue
		}

		ledger := p.RuleChoices()
		for _, c := range ledger {
			o.metrics.RecordChoice(string(c.Rule), c.Decision.String())
		}
		queue = append(queue, alternatives(ledger)...)
	}
	return results, tracker.Len(), nil
}

// alternatives returns one configuration per default decision in ledger: the
// decisions before it are kept and it is flipped.
func alternatives(ledger []prakriya.RuleChoice) [][]ir.Choice {
	var out [][]ir.Choice
	for k, c := range ledger {
		if c.Forced {
			continue
		}
		cfg := make([]ir.Choice, 0, k+1)
		for _, prev := range ledger[:k] {
			cfg = append(cfg, ir.Choice{Rule: string(prev.Rule), Decision: prev.Decision.String()})
		}
		flipped := prakriya.Decline
		if c.Decision == prakriya.Decline {
			flipped = prakriya.Accept
		}
		cfg = append(cfg, ir.Choice{Rule: string(c.Rule), Decision: flipped.String()})
		out = append(out, cfg)
	}
	return out
}

// Run executes the pipeline once with the decisions in cfg forced. It returns
// the state even when a pass fails so the caller can expand its ledger.
func Run(req Request, cfg []ir.Choice, opts ...Option) (*prakriya.Prakriya, error) {
	return run(req, cfg, newOptions(opts))
}

func run(req Request, cfg []ir.Choice, o options) (*prakriya.Prakriya, error) {
	gana, number, err := args.ParseCode(req.Code)
	if err != nil {
		return nil, err
	}
	choices, err := decisions(cfg)
	if err != nil {
		return nil, err
	}

	popts := []prakriya.Option{prakriya.WithChoices(choices)}
	if o.traceRules {
		popts = append(popts, prakriya.WithLogger(o.logger))
	}
	p := prakriya.New(popts...)
	p.AddTags(req.Prayoga.Tag(), req.Purusha.Tag(), req.Vacana.Tag())

	pv := args.PurushaVacana{Purusha: req.Purusha, Vacana: req.Vacana}
	for _, ps := range []struct {
		name string
		run  func(*prakriya.Prakriya) error
	}{
		{"dhatu", func(p *prakriya.Prakriya) error { return rules.DhatuKarya(p, req.Dhatu, gana, number) }},
		{"sanadi", rules.Sanadi},
		{"lakara", func(p *prakriya.Prakriya) error { return rules.LaKarya(p, req.La) }},
		{"atmanepada", rules.Atmanepada},
		{"tin", func(p *prakriya.Prakriya) error { return rules.TinAdesha(p, pv) }},
		{"samjna", rules.Samjna},
		{"vikarana", func(p *prakriya.Prakriya) error { return rules.Vikarana(p, req.La) }},
		{"samjna", rules.Samjna},
		{"tin-siddhi", rules.TinSiddhi},
		{"samprasarana", rules.SamprasaranaForDhatu},
		{"ardhadhatuka", rules.AdecaUpadeshe},
		{"dvitva", rules.Dvitva},
		{"angasya", rules.Angasya},
		{"ac-sandhi", rules.AcSandhi},
		{"tripadi", rules.Tripadi},
	} {
		if err := ps.run(p); err != nil {
			return p, fmt.Errorf("%s: %w", ps.name, err)
		}
	}
	return p, nil
}

func decisions(cfg []ir.Choice) (map[prakriya.Rule]prakriya.Decision, error) {
	out := make(map[prakriya.Rule]prakriya.Decision, len(cfg))
	for _, c := range cfg {
		switch c.Decision {
		case prakriya.Accept.String():
			out[prakriya.Rule(c.Rule)] = prakriya.Accept
		case prakriya.Decline.String():
			out[prakriya.Rule(c.Rule)] = prakriya.Decline
		default:
			return nil, fmt.Errorf("choice %s: unknown decision %q", c.Rule, c.Decision)
		}
	}
	return out, nil
}
