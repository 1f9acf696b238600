// Package quiz builds basic strategy test sheets and their answer keys.
//
// A Generator samples distinct scenarios from the strategy domain for each
// requested version and renders two texts per version: a test with blank
// answers and a key with the blanks filled from the chart.
//
//	gen := quiz.NewGenerator(strategy.Default())
//	res, err := gen.Generate(ctx, quiz.Request{Size: 48, Versions: []string{"A", "B"}})
//
// Sampling is seeded per version. The seed used for each version is reported
// on its Sheet so that a test can be regenerated exactly.
package quiz

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/coder/quartz"
	"golang.org/x/sync/errgroup"

	"github.com/lox/bjquiz/internal/randutil"
	"github.com/lox/bjquiz/internal/strategy"
)

// DefaultSize is the number of questions on a test when none is requested.
const DefaultSize = 48

// Request describes one batch of tests.
type Request struct {
	Size     int
	Versions []string
	// Seed fixes the base seed. When nil the base seed is taken from the clock.
	Seed *int64
}

// Question is one numbered line on a sheet.
type Question struct {
	Number   int
	Scenario strategy.Scenario
	Answer   strategy.Action
}

// Prompt returns the human-readable scenario, e.g. "Player: 16 (hard)  Dealer: 10".
func (q Question) Prompt() string {
	return fmt.Sprintf("Player: %s  Dealer: %s", q.Scenario.Player.Describe(), q.Scenario.Dealer)
}

// Sheet is the generated output for one version.
type Sheet struct {
	Version      string
	Seed         int64
	Questions    []Question
	QuestionText string
	AnswerText   string
}

// Result holds the sheets of a Generate call in request order.
type Result struct {
	BaseSeed int64
	Size     int
	Chart    string
	Sheets   []Sheet
	// Warnings are non-fatal conditions such as *SizeCappedWarning.
	Warnings []error
}

// Sheet returns the sheet for a version label.
func (r *Result) Sheet(version string) (Sheet, bool) {
	for _, s := range r.Sheets {
		if s.Version == version {
			return s, true
		}
	}
	return Sheet{}, false
}

// Generator produces test sheets from a strategy table.
type Generator struct {
	table    *strategy.Table
	clock    quartz.Clock
	logger   *log.Logger
	parallel bool
}

// Option configures a Generator.
type Option func(*Generator)

// WithClock sets the clock used to derive a base seed when none is given.
func WithClock(clock quartz.Clock) Option {
	return func(g *Generator) { g.clock = clock }
}

// WithLogger sets the logger.
func WithLogger(logger *log.Logger) Option {
	return func(g *Generator) { g.logger = logger }
}

// WithParallel generates versions concurrently. Output is identical to the
// sequential path for the same base seed.
func WithParallel(parallel bool) Option {
	return func(g *Generator) { g.parallel = parallel }
}

// NewGenerator creates a Generator for table. A nil table selects the
// default chart.
func NewGenerator(table *strategy.Table, opts ...Option) *Generator {
	if table == nil {
		table = strategy.Default()
	}
	g := &Generator{
		table:  table,
		clock:  quartz.NewReal(),
		logger: log.New(io.Discard),
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// Table returns the strategy table answers are taken from.
func (g *Generator) Table() *strategy.Table {
	return g.table
}

// Generate validates req and builds one Sheet per version. Validation
// failures abort the whole call with no sheets.
func (g *Generator) Generate(ctx context.Context, req Request) (*Result, error) {
	if req.Size <= 0 {
		return nil, fmt.Errorf("%w: size must be positive, got %d", ErrInvalidSize, req.Size)
	}
	if err := validateVersions(req.Versions); err != nil {
		return nil, err
	}

	res := &Result{
		Size:  req.Size,
		Chart: g.table.Name(),
	}
	if limit := strategy.DomainSize(); req.Size > limit {
		w := &SizeCappedWarning{Requested: req.Size, Capped: limit}
		g.logger.Warn("size capped to domain", "requested", req.Size, "capped", limit)
		res.Warnings = append(res.Warnings, w)
		res.Size = limit
	}

	if req.Seed != nil {
		res.BaseSeed = *req.Seed
	} else {
		res.BaseSeed = g.clock.Now().UnixNano()
	}

	res.Sheets = make([]Sheet, len(req.Versions))
	build := func(i int) error {
		sheet, err := g.buildSheet(req.Versions[i], randutil.Derive(res.BaseSeed, i), res.Size)
		if err != nil {
			return err
		}
		res.Sheets[i] = sheet
		return nil
	}

	if g.parallel {
		eg, ctx := errgroup.WithContext(ctx)
		for i := range req.Versions {
			eg.Go(func() error {
				if err := ctx.Err(); err != nil {
					return err
				}
				return build(i)
			})
		}
		if err := eg.Wait(); err != nil {
			return nil, err
		}
		return res, nil
	}

	for i := range req.Versions {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		if err := build(i); err != nil {
			return nil, err
		}
	}
	return res, nil
}

func (g *Generator) buildSheet(version string, seed int64, size int) (Sheet, error) {
	questions, err := g.Sample(seed, size)
	if err != nil {
		return Sheet{}, fmt.Errorf("version %s: %w", version, err)
	}

	g.logger.Debug("sampled version", "version", version, "seed", seed, "questions", len(questions))

	header := Header{Version: version, Rules: g.table.Rules()}
	return Sheet{
		Version:      version,
		Seed:         seed,
		Questions:    questions,
		QuestionText: Render(header, questions, false),
		AnswerText:   Render(header, questions, true),
	}, nil
}

// Sample draws size distinct scenarios with the given seed and answers each
// from the table. Sampling order is presentation order.
func (g *Generator) Sample(seed int64, size int) ([]Question, error) {
	domain := strategy.Domain()
	picks := randutil.SampleIndexes(randutil.New(seed), len(domain), size)

	questions := make([]Question, len(picks))
	for i, idx := range picks {
		sc := domain[idx]
		answer, err := g.table.Lookup(sc)
		if err != nil {
			return nil, err
		}
		questions[i] = Question{Number: i + 1, Scenario: sc, Answer: answer}
	}
	return questions, nil
}

func validateVersions(versions []string) error {
	if len(versions) == 0 {
		return fmt.Errorf("%w: at least one version is required", ErrInvalidVersions)
	}
	seen := make(map[string]bool, len(versions))
	for i, v := range versions {
		if strings.TrimSpace(v) == "" {
			return fmt.Errorf("%w: version %d is blank", ErrInvalidVersions, i+1)
		}
		if seen[v] {
			return fmt.Errorf("%w: duplicate version %q", ErrInvalidVersions, v)
		}
		seen[v] = true
	}
	return nil
}

// ParseVersions splits a comma separated version list, trimming spaces
// around each label. Blank entries are kept so that validation can report
// them.
func ParseVersions(list string) []string {
	parts := strings.Split(list, ",")
	for i, p := range parts {
		parts[i] = strings.TrimSpace(p)
	}
	return parts
}
