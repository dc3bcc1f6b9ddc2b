package cli

import (
	"io"
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/supportkit/logtriage/internal/config"
)

// CLI is the root command structure for logtriage
type CLI struct {
	// Global flags
	Format  string `short:"f" default:"${config_format}" enum:"text,json" help:"Stdout summary format"`
	Quiet   bool   `short:"q" help:"Suppress the stdout summary and saved-path lines"`
	Verbose bool   `short:"v" help:"Show debug output (scan progress, sink paths)"`

	// Commands
	Analyze AnalyzeCmd `cmd:"" default:"withargs" help:"Analyze a log file and write JSON/HTML reports"`
	Config  ConfigCmd  `cmd:"" help:"Show or locate configuration"`
	Version VersionCmd `cmd:"" help:"Show version information"`
}

// Globals holds shared state for all commands
type Globals struct {
	Format  string
	Quiet   bool
	Verbose bool
	Stdout  io.Writer
	Stderr  io.Writer
	Config  *config.Config
	Log     *zap.SugaredLogger
}

// NewGlobals creates a new Globals instance from CLI flags
func NewGlobals(cli *CLI) *Globals {
	return NewGlobalsWithConfig(cli, config.Default())
}

// NewGlobalsWithConfig creates a new Globals instance with config fallbacks
func NewGlobalsWithConfig(cli *CLI, cfg *config.Config) *Globals {
	g := &Globals{
		Format:  cli.Format,
		Quiet:   cli.Quiet,
		Verbose: cli.Verbose,
		Stdout:  os.Stdout,
		Stderr:  os.Stderr,
		Config:  cfg,
	}

	// Apply config values if CLI flags weren't explicitly set
	if cfg != nil {
		if !cli.Quiet && cfg.Quiet {
			g.Quiet = cfg.Quiet
		}
		if !cli.Verbose && cfg.Verbose {
			g.Verbose = cfg.Verbose
		}
	}

	g.Log = newLogger(g.Stderr, g.Verbose)
	return g
}

// newLogger builds the diagnostic logger: a console-encoded debug
// logger on stderr in verbose mode, a nop logger otherwise.
func newLogger(stderr io.Writer, verbose bool) *zap.SugaredLogger {
	if !verbose {
		return zap.NewNop().Sugar()
	}
	enc := zapcore.NewConsoleEncoder(zap.NewDevelopmentEncoderConfig())
	core := zapcore.NewCore(enc, zapcore.AddSync(stderr), zapcore.DebugLevel)
	return zap.New(core).Sugar()
}

// VersionCmd shows version information
type VersionCmd struct{}

// Run executes the version command
func (v *VersionCmd) Run(globals *Globals) error {
	if globals.Format == "json" {
		_, err := io.WriteString(globals.Stdout, `{"version":"`+Version+`","commit":"`+Commit+`"}`+"\n")
		return err
	}
	_, err := io.WriteString(globals.Stdout, "logtriage version "+Version+" ("+Commit+")\n")
	return err
}

// Version information (set at build time)
var (
	Version = "dev"
	Commit  = "none"
)
