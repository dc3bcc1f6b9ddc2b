package analyzer

import (
	"testing"
	"time"

	"github.com/benbjohnson/clock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/supportkit/logtriage/internal/domain"
)

// frozenBuilder returns a builder whose clock is pinned to a known
// instant.
func frozenBuilder(t *testing.T) *Builder {
	t.Helper()
	mock := clock.NewMock()
	mock.Set(time.Date(2026, 2, 18, 7, 30, 0, 0, time.UTC))
	return NewBuilder(mock)
}

func TestBuilder_Build(t *testing.T) {
	agg := feed("2026-02-18 07:01:05 ERROR path=/login status=500\n" +
		"2026-02-18 07:01:06 INFO path=/home\n" +
		"not a log line\n")

	report := frozenBuilder(t).Build(agg, "app.log", 5)

	assert.Equal(t, "2026-02-18T07:30:00Z", report.GeneratedAt)
	assert.Equal(t, "app.log", report.File)
	assert.Equal(t, 3, report.TotalLines)
	assert.Equal(t, 2, report.ParsedLines)
	assert.Equal(t, 1, report.InvalidLines)
	assert.Equal(t, domain.LevelCounts{Info: 1, Warning: 0, Error: 1}, report.LevelCounts)
	assert.Equal(t, []domain.PathCount{{Path: "/login", Count: 1}}, report.TopErrorPaths)
}

func TestBuilder_TopN(t *testing.T) {
	t.Run("truncates to n sorted by count descending", func(t *testing.T) {
		agg := feed("2026-02-18 07:01:05 ERROR path=/a\n" +
			"2026-02-18 07:01:06 ERROR path=/b\n" +
			"2026-02-18 07:01:07 ERROR path=/a\n")

		report := frozenBuilder(t).Build(agg, "app.log", 1)
		assert.Equal(t, []domain.PathCount{{Path: "/a", Count: 2}}, report.TopErrorPaths)
	})

	t.Run("ties rank by first-seen order", func(t *testing.T) {
		agg := feed("2026-02-18 07:01:05 ERROR path=/late-burst\n" +
			"2026-02-18 07:01:06 ERROR path=/early\n" +
			"2026-02-18 07:01:07 ERROR path=/late-burst\n" +
			"2026-02-18 07:01:08 ERROR path=/early\n")

		report := frozenBuilder(t).Build(agg, "app.log", 5)
		require.Len(t, report.TopErrorPaths, 2)
		assert.Equal(t, "/late-burst", report.TopErrorPaths[0].Path)
		assert.Equal(t, "/early", report.TopErrorPaths[1].Path)
	})

	t.Run("zero and negative n yield an empty ranking", func(t *testing.T) {
		agg := feed("2026-02-18 07:01:05 ERROR path=/a\n")

		for _, n := range []int{0, -1} {
			report := frozenBuilder(t).Build(agg, "app.log", n)
			require.NotNil(t, report.TopErrorPaths)
			assert.Empty(t, report.TopErrorPaths)
		}
	})

	t.Run("empty ranking is non-nil for empty input", func(t *testing.T) {
		report := frozenBuilder(t).Build(NewAggregator(), "app.log", 5)
		require.NotNil(t, report.TopErrorPaths)
		assert.Empty(t, report.TopErrorPaths)
	})
}

func TestBuilder_Deterministic(t *testing.T) {
	input := "2026-02-18 07:01:05 ERROR path=/a\n" +
		"2026-02-18 07:01:06 ERROR path=/b\n" +
		"2026-02-18 07:01:07 WARNING slow\n" +
		"junk\n"

	b := frozenBuilder(t)
	first := b.Build(feed(input), "app.log", 5)
	second := b.Build(feed(input), "app.log", 5)
	assert.Equal(t, first, second)
}
