package domain

// Level is a log severity level. The set is closed: only the three
// levels below ever appear in a classified record.
type Level string

const (
	LevelInfo    Level = "INFO"
	LevelWarning Level = "WARNING"
	LevelError   Level = "ERROR"
)

// Levels lists all severity levels in display order.
var Levels = []Level{LevelInfo, LevelWarning, LevelError}

// Valid reports whether l is one of the known severity levels.
// Matching is case-sensitive.
func (l Level) Valid() bool {
	switch l {
	case LevelInfo, LevelWarning, LevelError:
		return true
	}
	return false
}

// LogRecord is one successfully classified log line. It exists only
// long enough to be folded into the aggregate; nothing stores it.
type LogRecord struct {
	Timestamp string
	Level     Level
	Path      string // empty when the line carries no path= field
}

// HasPath reports whether the line carried a non-empty path= field.
func (r LogRecord) HasPath() bool {
	return r.Path != ""
}
