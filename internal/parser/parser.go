// Package parser classifies raw log lines against the toolkit's fixed
// log grammar.
//
// Example line:
//
//	2026-02-18 07:01:05 ERROR service=api msg="request failed" method=POST path=/login status=500 ms=231
package parser

import (
	"regexp"

	"github.com/supportkit/logtriage/internal/domain"
)

// lineRe anchors the grammar at line start: a timestamp (4-digit year,
// 2-digit month/day, colon-separated time), one severity token, then
// arbitrary free text. The severity token must be exactly one of the
// three known levels, case-sensitive.
var lineRe = regexp.MustCompile(`^(\d{4}-\d{2}-\d{2}\s+\d{2}:\d{2}:\d{2})\s+(INFO|WARNING|ERROR)(?:\s+(.*))?$`)

// pathRe captures the token after the first path= occurrence in the
// free text. The capture is deliberately lenient: a path= substring
// inside an unrelated quoted field is still picked up. \S* keeps a
// bare "path=" from swallowing a later occurrence.
var pathRe = regexp.MustCompile(`\bpath=(\S*)`)

// Classify matches one line against the log grammar. It returns the
// extracted record and true, or the zero record and false when the
// line does not conform. It never fails: a malformed line is an
// ordinary outcome, not an error.
//
// Blank-line handling is the caller's job; Classify assumes the line
// has already been trimmed and is non-empty.
func Classify(line string) (domain.LogRecord, bool) {
	m := lineRe.FindStringSubmatch(line)
	if m == nil {
		return domain.LogRecord{}, false
	}

	rec := domain.LogRecord{
		Timestamp: m[1],
		Level:     domain.Level(m[2]),
	}
	if pm := pathRe.FindStringSubmatch(m[3]); pm != nil {
		rec.Path = pm[1]
	}
	return rec, true
}
