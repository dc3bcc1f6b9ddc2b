package cli

import (
	"bufio"
	"fmt"
	"os"

	"github.com/benbjohnson/clock"
	"github.com/mattn/go-isatty"
	"go.uber.org/multierr"

	"github.com/supportkit/logtriage/internal/analyzer"
	"github.com/supportkit/logtriage/internal/output"
)

// Report document names inside the output directory.
const (
	jsonReportName = "report.json"
	htmlReportName = "report.html"
)

// AnalyzeCmd scans a log file and writes the JSON and HTML reports
type AnalyzeCmd struct {
	File   string `arg:"" required:"" help:"Path to the log file to analyze"`
	Top    int    `default:"${config_top}" help:"Top N error paths to include in the report"`
	Out    string `default:"${config_out}" help:"Directory for report files"`
	NoOpen bool   `help:"Do not open the HTML report in the default viewer"`

	// Test seams: nil means production defaults.
	sink output.Sink
	clk  clock.Clock
}

// Run executes the analyze command
func (c *AnalyzeCmd) Run(globals *Globals) error {
	// The source must exist before any aggregation begins; a missing
	// file aborts without touching the output directory.
	if info, err := os.Stat(c.File); err != nil || info.IsDir() {
		return globals.errorf(CodeSourceNotFound, "log file not found: %s", c.File)
	}

	file, err := os.Open(c.File)
	if err != nil {
		return globals.errorf(CodeSourceNotFound, "cannot open log file: %s", err)
	}
	defer func() {
		if err := file.Close(); err != nil {
			globals.Log.Debugf("failed to close source file: %v", err)
		}
	}()

	// One sequential pass: read, classify, fold.
	agg := analyzer.NewAggregator()
	scanner := bufio.NewScanner(file)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for scanner.Scan() {
		agg.Line(scanner.Text())
	}
	if err := scanner.Err(); err != nil {
		return globals.errorf(CodeReadError, "error reading %s: %s", c.File, err)
	}
	globals.Log.Debugf("scanned %d lines (%d parsed, %d invalid, %d blank)",
		agg.TotalLines(), agg.ParsedLines(), agg.InvalidLines(), agg.BlankLines())

	clk := c.clk
	if clk == nil {
		clk = clock.New()
	}
	report := analyzer.NewBuilder(clk).Build(agg, c.File, c.Top)

	// Stdout summary.
	if globals.Format == "json" {
		if err := output.WriteJSON(globals.Stdout, report); err != nil {
			return globals.errorf(CodeWriteError, "error writing summary: %s", err)
		}
	} else if !globals.Quiet {
		if err := output.WriteText(globals.Stdout, report, stdoutIsTerminal(globals)); err != nil {
			return globals.errorf(CodeWriteError, "error writing summary: %s", err)
		}
	}

	// Persist both report documents. Both sinks are attempted even if
	// the first write fails; any failure is fatal afterwards.
	sink := c.sink
	if sink == nil {
		sink = output.NewDirSink(c.Out)
	}

	var writeErr error
	jsonPath, htmlPath := "", ""

	if data, err := output.MarshalJSONReport(report); err != nil {
		writeErr = multierr.Append(writeErr, err)
	} else if p, err := sink.WriteReport(jsonReportName, data); err != nil {
		writeErr = multierr.Append(writeErr, err)
	} else {
		jsonPath = p
	}

	if data, err := output.RenderHTML(report); err != nil {
		writeErr = multierr.Append(writeErr, err)
	} else if p, err := sink.WriteReport(htmlReportName, data); err != nil {
		writeErr = multierr.Append(writeErr, err)
	} else {
		htmlPath = p
	}

	if writeErr != nil {
		return globals.errorf(CodeWriteError, "failed to write reports: %s", writeErr)
	}

	if !globals.Quiet && globals.Format != "json" {
		fmt.Fprintf(globals.Stdout, "\nSaved JSON report to: %s\n", jsonPath)
		fmt.Fprintf(globals.Stdout, "Saved HTML report to: %s\n", htmlPath)
	}

	if !c.NoOpen && globals.Config.Defaults.Open {
		if err := sink.Open(htmlPath); err != nil {
			// The reports are already on disk; a missing viewer is not
			// worth failing the run over.
			globals.Log.Debugf("failed to open viewer: %v", err)
		}
	}

	return nil
}

// stdoutIsTerminal reports whether the summary goes to an interactive
// terminal, enabling styled output.
func stdoutIsTerminal(globals *Globals) bool {
	f, ok := globals.Stdout.(*os.File)
	return ok && isatty.IsTerminal(f.Fd())
}
