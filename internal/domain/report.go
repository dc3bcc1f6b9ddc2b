package domain

import (
	"encoding/json"
	"fmt"
)

// LevelCounts holds one counter per severity level. The severity set
// is closed, so this is a fixed record rather than an open map: every
// level is always present, defaulting to zero.
type LevelCounts struct {
	Info    int `json:"INFO"`
	Warning int `json:"WARNING"`
	Error   int `json:"ERROR"`
}

// Add increments the counter for the given level.
func (c *LevelCounts) Add(l Level) {
	switch l {
	case LevelInfo:
		c.Info++
	case LevelWarning:
		c.Warning++
	case LevelError:
		c.Error++
	}
}

// Get returns the counter for the given level.
func (c LevelCounts) Get(l Level) int {
	switch l {
	case LevelInfo:
		return c.Info
	case LevelWarning:
		return c.Warning
	case LevelError:
		return c.Error
	}
	return 0
}

// Sum returns the total across all levels.
func (c LevelCounts) Sum() int {
	return c.Info + c.Warning + c.Error
}

// PathCount is one (path, count) ranking entry. It serializes as a
// two-element ["path", count] array to keep the machine report compact.
type PathCount struct {
	Path  string
	Count int
}

// MarshalJSON encodes the entry as ["path", count].
func (p PathCount) MarshalJSON() ([]byte, error) {
	return json.Marshal([2]any{p.Path, p.Count})
}

// UnmarshalJSON decodes the ["path", count] pair form.
func (p *PathCount) UnmarshalJSON(data []byte) error {
	var pair [2]json.RawMessage
	if err := json.Unmarshal(data, &pair); err != nil {
		return fmt.Errorf("path count pair: %w", err)
	}
	if err := json.Unmarshal(pair[0], &p.Path); err != nil {
		return fmt.Errorf("path count path: %w", err)
	}
	if err := json.Unmarshal(pair[1], &p.Count); err != nil {
		return fmt.Errorf("path count count: %w", err)
	}
	return nil
}

// Report is the immutable result of one analysis run. It is built once
// from the final aggregate state and consumed by every renderer.
type Report struct {
	GeneratedAt   string      `json:"generated_at"` // RFC 3339 UTC, Z suffix
	File          string      `json:"file"`
	TotalLines    int         `json:"total_lines"`
	ParsedLines   int         `json:"parsed_lines"`
	InvalidLines  int         `json:"invalid_lines"`
	LevelCounts   LevelCounts `json:"level_counts"`
	TopErrorPaths []PathCount `json:"top_error_paths"`
}
