package main

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/coder/quartz"

	"github.com/lox/bjquiz/cmd/bjquiz/shared"
	"github.com/lox/bjquiz/internal/config"
	"github.com/lox/bjquiz/internal/output"
	"github.com/lox/bjquiz/internal/quiz"
	"github.com/lox/bjquiz/internal/strategy"
)

// GenerateCmd writes a test and an answer key for each version.
type GenerateCmd struct {
	Size     *int    `help:"Number of questions to generate (default 48)"`
	Versions *string `help:"Comma separated list of version names (default A)"`
	Chart    string  `help:"Strategy chart: h17-das, s17-das or h17 (default h17-das)"`
	Seed     *int64  `help:"Base random seed for reproducible tests"`
	Out      string  `short:"o" help:"Output directory (default current directory)"`
	Manifest bool    `help:"Also write manifest.yaml with the seed of every version"`
	Parallel bool    `help:"Generate versions concurrently"`
}

func (cmd *GenerateCmd) Run(g *Globals) error {
	cfg, err := config.Load(g.Config)
	if err != nil {
		return err
	}
	cmd.apply(cfg)
	if g.LogLevel != "" {
		cfg.LogLevel = g.LogLevel
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	logger := shared.SetupLogger(os.Stderr, cfg.LogLevel)
	return runGenerate(context.Background(), cfg, os.Stdout, logger, quartz.NewReal())
}

// apply overlays flags that were given on top of the file configuration.
func (cmd *GenerateCmd) apply(cfg *config.Config) {
	if cmd.Size != nil {
		cfg.Quiz.Size = *cmd.Size
	}
	if cmd.Versions != nil {
		cfg.Quiz.Versions = quiz.ParseVersions(*cmd.Versions)
	}
	if cmd.Chart != "" {
		cfg.Quiz.Chart = cmd.Chart
	}
	if cmd.Seed != nil {
		cfg.Quiz.Seed = cmd.Seed
	}
	if cmd.Out != "" {
		cfg.Output.Dir = cmd.Out
	}
	cfg.Output.Manifest = cfg.Output.Manifest || cmd.Manifest
	cfg.Quiz.Parallel = cfg.Quiz.Parallel || cmd.Parallel
}

func runGenerate(ctx context.Context, cfg *config.Config, stdout io.Writer, logger *log.Logger, clock quartz.Clock) error {
	table, err := strategy.ByName(cfg.Quiz.Chart)
	if err != nil {
		return err
	}

	gen := quiz.NewGenerator(table,
		quiz.WithClock(clock),
		quiz.WithLogger(logger),
		quiz.WithParallel(cfg.Quiz.Parallel),
	)
	res, err := gen.Generate(ctx, quiz.Request{
		Size:     cfg.Quiz.Size,
		Versions: cfg.Quiz.Versions,
		Seed:     cfg.Quiz.Seed,
	})
	if err != nil {
		return err
	}
	logger.Info("generated tests", "versions", len(res.Sheets), "size", res.Size, "chart", res.Chart, "seed", res.BaseSeed)

	writer := output.NewWriter(cfg.Output.Dir, logger)
	written, err := writer.WriteSheets(res)
	if err != nil {
		return err
	}
	for _, w := range written {
		fmt.Fprintf(stdout, "Wrote test to %s %s\n", pathStyle.Render(w.TestFile), seedStyle.Render(fmt.Sprintf("(seed %d)", w.Seed)))
		fmt.Fprintf(stdout, "Wrote answer key to %s\n", pathStyle.Render(w.AnswerFile))
	}

	if cfg.Output.Manifest {
		path, err := writer.WriteManifest(output.NewManifest(res, table.Rules(), written, clock.Now()))
		if err != nil {
			return err
		}
		fmt.Fprintf(stdout, "Wrote manifest to %s\n", pathStyle.Render(path))
	}
	return nil
}
