package analyzer

import (
	"sort"
	"time"

	"github.com/benbjohnson/clock"

	"github.com/supportkit/logtriage/internal/domain"
)

// Builder assembles the immutable report from final aggregate state.
// The clock is injected so tests can freeze generated_at.
type Builder struct {
	clk clock.Clock
}

// NewBuilder returns a Builder stamping reports with the given clock.
func NewBuilder(clk clock.Clock) *Builder {
	return &Builder{clk: clk}
}

// Build snapshots the aggregate into a report for the given source
// file, keeping at most topN error paths. topN <= 0 yields an empty
// ranking. Ranking is by count descending with ties broken by
// first-seen order.
func (b *Builder) Build(agg *Aggregator, file string, topN int) domain.Report {
	return domain.Report{
		GeneratedAt:   b.clk.Now().UTC().Format(time.RFC3339),
		File:          file,
		TotalLines:    agg.TotalLines(),
		ParsedLines:   agg.ParsedLines(),
		InvalidLines:  agg.InvalidLines(),
		LevelCounts:   agg.LevelCounts(),
		TopErrorPaths: topErrorPaths(agg, topN),
	}
}

func topErrorPaths(agg *Aggregator, n int) []domain.PathCount {
	// Always non-nil so the machine report serializes an empty array,
	// never null.
	ranked := make([]domain.PathCount, 0, len(agg.pathOrder))
	if n <= 0 {
		return ranked
	}

	for _, path := range agg.pathOrder {
		ranked = append(ranked, domain.PathCount{Path: path, Count: agg.errorPaths[path]})
	}
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Count > ranked[j].Count
	})

	if len(ranked) > n {
		ranked = ranked[:n]
	}
	return ranked
}
