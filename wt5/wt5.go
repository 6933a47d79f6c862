// Package wt5 reads and writes dataset trees in the wt5 file format.
//
// A wt5 file stores one complete dataset: its group hierarchy, axis and
// channel arrays, units, and attributes. Files are written atomically
// and verified against an embedded checksum on read.
package wt5

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/rpm4/WrightTools/data"
	"github.com/rpm4/WrightTools/internal/codec"
)

// Ext is the conventional file extension.
const Ext = ".wt5"

// Errors surfaced from the underlying codec.
var (
	ErrNotWT5   = codec.ErrNotWT5
	ErrVersion  = codec.ErrVersion
	ErrChecksum = codec.ErrChecksum
)

// Write serializes d to path. The file is written to a temporary name
// in the same directory and renamed into place, so a crash mid-write
// never leaves a truncated file at path.
func Write(path string, d *data.Dataset, opts ...WriteOption) error {
	if d == nil {
		return errors.New("nil dataset")
	}
	options := defaultWriteOptions()
	for _, opt := range opts {
		opt(options)
	}

	raw, err := codec.EncodeDataset(d, options.pipeline())
	if err != nil {
		return fmt.Errorf("encoding %q: %w", d.Root().Name(), err)
	}

	dir := filepath.Dir(path)
	tmp, err := os.CreateTemp(dir, filepath.Base(path)+".tmp-*")
	if err != nil {
		return fmt.Errorf("creating temp file: %w", err)
	}
	tmpName := tmp.Name()
	if _, err := tmp.Write(raw); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("writing %q: %w", path, err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("closing %q: %w", path, err)
	}
	if err := os.Rename(tmpName, path); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("renaming into %q: %w", path, err)
	}
	return nil
}

// Read parses the wt5 file at path into a dataset tree.
func Read(path string) (*data.Dataset, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading %q: %w", path, err)
	}
	d, err := codec.DecodeDataset(raw)
	if err != nil {
		return nil, fmt.Errorf("parsing %q: %w", path, err)
	}
	return d, nil
}

// ReadFrom parses a wt5 stream. Useful when the data does not live on
// the filesystem.
func ReadFrom(r io.Reader) (*data.Dataset, error) {
	raw, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("reading stream: %w", err)
	}
	return codec.DecodeDataset(raw)
}

// WriteTo serializes d to w with the given options.
func WriteTo(w io.Writer, d *data.Dataset, opts ...WriteOption) error {
	if d == nil {
		return errors.New("nil dataset")
	}
	options := defaultWriteOptions()
	for _, opt := range opts {
		opt(options)
	}
	raw, err := codec.EncodeDataset(d, options.pipeline())
	if err != nil {
		return fmt.Errorf("encoding %q: %w", d.Root().Name(), err)
	}
	if _, err := w.Write(raw); err != nil {
		return fmt.Errorf("writing stream: %w", err)
	}
	return nil
}
