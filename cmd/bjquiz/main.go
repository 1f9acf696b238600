package main

import (
	"github.com/alecthomas/kong"
)

// version is set by ldflags during build
var version = "dev"

// Globals are flags shared by every command.
type Globals struct {
	Config   string `help:"Path to HCL config file" default:"bjquiz.hcl" type:"path"`
	LogLevel string `help:"Log level: debug, info, warn, error (overrides config)"`
}

type CLI struct {
	Globals

	Version  kong.VersionFlag `short:"v" help:"Show version"`
	Generate GenerateCmd      `cmd:"" default:"withargs" help:"Generate basic strategy tests and answer keys"`
	Chart    ChartCmd         `cmd:"" help:"Print a basic strategy chart"`
	Lookup   LookupCmd        `cmd:"" help:"Look up the basic strategy play for one hand"`
}

func main() {
	var cli CLI
	ctx := kong.Parse(&cli,
		kong.Name("bjquiz"),
		kong.Description("Printable blackjack basic strategy tests with answer keys"),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{
			Compact: true,
		}),
		kong.Vars{
			"version": version,
		},
	)
	err := ctx.Run(&cli.Globals)
	ctx.FatalIfErrorf(err)
}
