// Package output renders a finished report for its consumers: a
// machine-readable JSON document, a self-contained HTML document, and
// a fixed-format terminal summary. Renderers are stateless; where the
// documents land is the sink's concern.
package output

import (
	"bytes"
	"encoding/json"
	"io"

	"github.com/supportkit/logtriage/internal/domain"
)

// WriteJSON writes the machine-readable report document. Field set and
// names match the Report wire contract exactly.
func WriteJSON(w io.Writer, report domain.Report) error {
	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false) // request paths stay readable
	enc.SetIndent("", "  ")
	return enc.Encode(report)
}

// MarshalJSONReport renders the machine document to a byte slice for
// handing to a sink.
func MarshalJSONReport(report domain.Report) ([]byte, error) {
	var buf bytes.Buffer
	if err := WriteJSON(&buf, report); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
