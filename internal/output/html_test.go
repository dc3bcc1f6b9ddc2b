package output

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/supportkit/logtriage/internal/domain"
)

func TestRenderHTML(t *testing.T) {
	data, err := RenderHTML(sampleReport())
	require.NoError(t, err)
	doc := string(data)

	assert.Contains(t, doc, "app.log")
	assert.Contains(t, doc, "2026-02-18T07:30:00Z")
	assert.Contains(t, doc, "<li>INFO: 1</li>")
	assert.Contains(t, doc, "<li>WARNING: 0</li>")
	assert.Contains(t, doc, `<li class="error">ERROR: 1</li>`)
	assert.Contains(t, doc, "<td>/login</td><td>1</td>")
	assert.NotContains(t, doc, "(none)")

	// Self-contained: inline styling only, no external assets.
	assert.Contains(t, doc, "<style>")
	assert.NotContains(t, doc, "href=")
	assert.NotContains(t, doc, "src=")
}

func TestRenderHTML_EmptyRanking(t *testing.T) {
	data, err := RenderHTML(emptyReport())
	require.NoError(t, err)
	doc := string(data)

	assert.Contains(t, doc, "(none)")
	assert.Contains(t, doc, "<li>INFO: 0</li>")
	assert.Equal(t, 1, strings.Count(doc, "<table>"))
}

func TestRenderHTML_EscapesPaths(t *testing.T) {
	report := sampleReport()
	report.TopErrorPaths = []domain.PathCount{{Path: `/search?q=<script>`, Count: 2}}

	data, err := RenderHTML(report)
	require.NoError(t, err)

	assert.NotContains(t, string(data), "<script>")
}
