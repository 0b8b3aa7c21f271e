package app

import (
	"errors"
	"io/fs"
	"os"

	"github.com/dshills/med/internal/engine"
)

// Document is the file being edited: its path, its text and whether that
// text matches what is on disk.
type Document struct {
	// Path is the file path as given on the command line.
	Path string

	engine *engine.Engine
	onDisk bool
}

// SaveResult describes a completed save.
type SaveResult struct {
	Lines int
	Bytes int64
}

// LoadDocument reads the file at path. A missing file yields a document
// with one empty line that is not yet saved; any other failure is returned
// as a *FileError.
func LoadDocument(path string) (*Document, error) {
	f, err := os.Open(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return &Document{Path: path, engine: engine.New()}, nil
		}
		return nil, &FileError{Op: "open", Path: path, Err: err}
	}
	defer f.Close()

	eng, err := engine.NewFromReader(f)
	if err != nil {
		return nil, &FileError{Op: "read", Path: path, Err: err}
	}
	return &Document{Path: path, engine: eng, onDisk: true}, nil
}

// NewDocument wraps an existing engine. onDisk reports whether the engine's
// content already matches the file at path.
func NewDocument(path string, eng *engine.Engine, onDisk bool) *Document {
	return &Document{Path: path, engine: eng, onDisk: onDisk}
}

// Engine returns the document's editing engine.
func (d *Document) Engine() *engine.Engine {
	return d.engine
}

// Saved reports whether the file on disk matches the buffer.
func (d *Document) Saved() bool {
	return d.onDisk && !d.engine.Modified()
}

// Save overwrites the file with the buffer, one line per newline-terminated
// record in the buffer's line ending. On failure the document keeps its
// unsaved state.
func (d *Document) Save() (SaveResult, error) {
	f, err := os.OpenFile(d.Path, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0o644)
	if err != nil {
		return SaveResult{}, &FileError{Op: "write", Path: d.Path, Err: err}
	}

	n, err := d.engine.Buffer().WriteTo(f)
	if cerr := f.Close(); err == nil {
		err = cerr
	}
	if err != nil {
		return SaveResult{}, &FileError{Op: "write", Path: d.Path, Err: err}
	}

	d.onDisk = true
	d.engine.SetModified(false)
	return SaveResult{Lines: d.engine.LineCount(), Bytes: n}, nil
}
