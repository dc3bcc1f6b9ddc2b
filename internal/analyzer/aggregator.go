// Package analyzer folds classified log lines into running counters
// and builds the final report from them.
package analyzer

import (
	"strings"

	"github.com/supportkit/logtriage/internal/domain"
	"github.com/supportkit/logtriage/internal/parser"
)

// Aggregator accumulates per-run counters over a single pass of the
// input. It is owned by exactly one run and is not safe for concurrent
// use; the whole pipeline is deliberately sequential.
type Aggregator struct {
	total   int
	parsed  int
	invalid int
	blank   int

	levels domain.LevelCounts

	// errorPaths counts path= tokens on ERROR lines. pathOrder keeps
	// first-seen order for stable tie-breaking in the top-N ranking.
	errorPaths map[string]int
	pathOrder  []string
}

// NewAggregator returns an empty aggregator.
func NewAggregator() *Aggregator {
	return &Aggregator{errorPaths: make(map[string]int)}
}

// Line folds one raw input line into the aggregate. Every line counts
// toward the total; lines that are blank after trimming are skipped
// without counting as parsed or invalid.
func (a *Aggregator) Line(raw string) {
	a.total++

	line := strings.TrimSpace(raw)
	if line == "" {
		a.blank++
		return
	}

	rec, ok := parser.Classify(line)
	if !ok {
		a.invalid++
		return
	}

	a.parsed++
	a.levels.Add(rec.Level)

	if rec.Level == domain.LevelError && rec.HasPath() {
		if _, seen := a.errorPaths[rec.Path]; !seen {
			a.pathOrder = append(a.pathOrder, rec.Path)
		}
		a.errorPaths[rec.Path]++
	}
}

// TotalLines returns the number of input lines seen, blanks included.
func (a *Aggregator) TotalLines() int { return a.total }

// ParsedLines returns the number of lines that matched the grammar.
func (a *Aggregator) ParsedLines() int { return a.parsed }

// InvalidLines returns the number of non-blank lines that did not
// match the grammar.
func (a *Aggregator) InvalidLines() int { return a.invalid }

// BlankLines returns the number of lines skipped as blank.
func (a *Aggregator) BlankLines() int { return a.blank }

// LevelCounts returns the per-level counters.
func (a *Aggregator) LevelCounts() domain.LevelCounts { return a.levels }

// ErrorPathCount returns how often the given path appeared on ERROR
// lines.
func (a *Aggregator) ErrorPathCount(path string) int { return a.errorPaths[path] }
