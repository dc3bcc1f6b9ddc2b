package output

import (
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"
)

// Sink receives finished report documents. Keeping the filesystem and
// viewer side effects behind this interface leaves the aggregation and
// rendering paths environment-free and testable.
type Sink interface {
	// WriteReport persists a named document and returns where it landed.
	WriteReport(name string, data []byte) (string, error)
	// Open shows a previously written document in the operator's viewer.
	Open(path string) error
}

// DirSink writes report documents into a single directory, creating it
// on first use.
type DirSink struct {
	Dir string

	// Opener launches the default viewer. Overridable in tests; nil
	// means use the platform launcher.
	Opener func(path string) error
}

// NewDirSink returns a sink rooted at dir.
func NewDirSink(dir string) *DirSink {
	return &DirSink{Dir: dir}
}

// WriteReport writes data to <dir>/<name>, creating the directory if
// absent.
func (s *DirSink) WriteReport(name string, data []byte) (string, error) {
	if err := os.MkdirAll(s.Dir, 0o755); err != nil {
		return "", fmt.Errorf("create output dir: %w", err)
	}
	path := filepath.Join(s.Dir, name)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return "", fmt.Errorf("write %s: %w", name, err)
	}
	return path, nil
}

// Open launches the operator's default viewer on the given document.
func (s *DirSink) Open(path string) error {
	open := s.Opener
	if open == nil {
		open = openDefault
	}
	return open(path)
}

// openDefault shells out to the platform launcher.
func openDefault(path string) error {
	switch runtime.GOOS {
	case "darwin":
		return exec.Command("open", path).Start()
	case "windows":
		return exec.Command("cmd", "/c", "start", "", path).Start()
	default:
		return exec.Command("xdg-open", path).Start()
	}
}
