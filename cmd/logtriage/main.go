package main

import (
	"fmt"
	"os"
	"strconv"

	"github.com/alecthomas/kong"

	"github.com/supportkit/logtriage/internal/cli"
	"github.com/supportkit/logtriage/internal/config"
)

func main() {
	// Load configuration from files/environment.
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: failed to load config: %v\n", err)
		cfg = config.Default()
	}

	var c cli.CLI

	// Apply config defaults before parsing.
	// These will be overridden by CLI flags if specified.
	vars := kong.Vars{
		"config_format": cfg.Format,
		"config_top":    strconv.Itoa(cfg.Defaults.Top),
		"config_out":    cfg.Defaults.Out,
	}

	ctx := kong.Parse(&c,
		kong.Name("logtriage"),
		kong.Description("Support toolkit: single-pass log file triage\n\nSTART HERE: logtriage <file> [--top 5]"),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{
			Compact: true,
			Summary: true,
		}),
		vars,
	)

	globals := cli.NewGlobalsWithConfig(&c, cfg)
	if err := ctx.Run(globals); err != nil {
		os.Exit(1)
	}
}
