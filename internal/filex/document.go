package filex

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
)

// Document is a JSON file that is always read and rewritten as a whole.
//
// Load never fails on bad content: a missing file is created with the
// default value, and an empty or unparseable file is replaced by it. Only
// I/O errors are returned.
type Document[T any] struct {
	path     string
	newEmpty func() T

	// OnReset, if set, is called after an unparseable file has been replaced
	// with the default value.
	OnReset func(path string, cause error)
}

// NewDocument returns a Document stored at path. newEmpty builds the value
// used for missing or corrupt files; it must return a fresh value each call.
func NewDocument[T any](path string, newEmpty func() T) *Document[T] {
	return &Document[T]{path: path, newEmpty: newEmpty}
}

// Path returns the file location.
func (d *Document[T]) Path() string {
	return d.path
}

// Load reads and decodes the document.
func (d *Document[T]) Load() (T, error) {
	data, err := os.ReadFile(d.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			empty := d.newEmpty()
			if err := d.Store(empty); err != nil {
				return empty, err
			}
			return empty, nil
		}
		var zero T
		return zero, fmt.Errorf("read %s: %w", d.path, err)
	}

	data = bytes.TrimSpace(data)
	if len(data) == 0 {
		return d.newEmpty(), nil
	}

	v := d.newEmpty()
	if err := json.Unmarshal(data, &v); err != nil {
		empty := d.newEmpty()
		if werr := d.Store(empty); werr != nil {
			return empty, werr
		}
		if d.OnReset != nil {
			d.OnReset(d.path, err)
		}
		return empty, nil
	}
	return v, nil
}

// Store encodes v with four-space indentation and atomically replaces the file.
func (d *Document[T]) Store(v T) error {
	data, err := json.MarshalIndent(v, "", "    ")
	if err != nil {
		return fmt.Errorf("marshal %s: %w", d.path, err)
	}
	return WriteFileAtomic(d.path, data, 0o600)
}

// Remove deletes the file. A missing file is not an error.
func (d *Document[T]) Remove() error {
	if err := os.Remove(d.path); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("remove %s: %w", d.path, err)
	}
	return nil
}
