package savefile

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/google/uuid"
	"golang.org/x/text/transform"
)

// Mode selects how content is encoded on the way to disk.
type Mode int

const (
	// Binary writes bytes verbatim.
	Binary Mode = iota

	// Text applies the platform text-mode encoding (see TextEncoder).
	Text
)

// ErrFinished is returned when writing to a file that was already
// committed or discarded.
var ErrFinished = errors.New("savefile: file already committed or discarded")

// File is an in-progress atomic save. It is not safe for concurrent use.
type File struct {
	path    string
	tmpPath string
	tmp     *os.File
	w       io.Writer
	tw      *transform.Writer
	done    bool
}

// New begins an atomic save of path. The staging file is created in the
// destination directory so the final rename stays on one filesystem.
func New(path string, mode Mode) (*File, error) {
	dir := filepath.Dir(path)
	tmpPath := filepath.Join(dir, "."+filepath.Base(path)+"."+uuid.NewString()+".tmp")

	tmp, err := os.OpenFile(tmpPath, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
	if err != nil {
		return nil, fmt.Errorf("savefile: open staging file: %w", err)
	}

	f := &File{path: path, tmpPath: tmpPath, tmp: tmp}
	if mode == Text {
		f.tw = transform.NewWriter(tmp, TextEncoder())
		f.w = f.tw
	} else {
		f.w = tmp
	}
	return f, nil
}

// Path returns the destination path.
func (f *File) Path() string { return f.path }

// Write writes p to the staging file.
func (f *File) Write(p []byte) (int, error) {
	if f.done {
		return 0, ErrFinished
	}
	return f.w.Write(p)
}

// WriteString writes s to the staging file.
func (f *File) WriteString(s string) (int, error) {
	if f.done {
		return 0, ErrFinished
	}
	return io.WriteString(f.w, s)
}

// Commit flushes the staging file and atomically renames it over the
// destination. On failure the staging file is removed and the
// destination is left untouched.
func (f *File) Commit() error {
	if f.done {
		return ErrFinished
	}
	f.done = true

	if err := f.flushAndClose(); err != nil {
		os.Remove(f.tmpPath)
		return fmt.Errorf("savefile: write staging file: %w", err)
	}
	if err := os.Rename(f.tmpPath, f.path); err != nil {
		os.Remove(f.tmpPath)
		return fmt.Errorf("savefile: commit: %w", err)
	}
	return nil
}

// Discard abandons the save and removes the staging file. Calling
// Discard after Commit is a no-op.
func (f *File) Discard() {
	if f.done {
		return
	}
	f.done = true
	f.flushAndClose()
	os.Remove(f.tmpPath)
}

func (f *File) flushAndClose() error {
	var firstErr error
	if f.tw != nil {
		firstErr = f.tw.Close()
	}
	if err := f.tmp.Sync(); err != nil && firstErr == nil {
		firstErr = err
	}
	if err := f.tmp.Close(); err != nil && firstErr == nil {
		firstErr = err
	}
	return firstErr
}
