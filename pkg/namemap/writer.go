package namemap

import (
	"errors"
	"fmt"
	"os"
	"sync"

	"github.com/fxamacker/cbor/v2"
)

// ErrClosed is returned when writing to a closed Writer.
var ErrClosed = errors.New("name map writer closed")

// Writer writes a name map file. It is safe for concurrent use.
type Writer struct {
	file    *os.File
	encoder *cbor.Encoder
	mu      sync.Mutex
	closed  bool
	count   int
}

// Create creates (or truncates) the file at path and writes the header.
func Create(path string, hdr Header) (*Writer, error) {
	f, err := os.OpenFile(path, os.O_CREATE|os.O_TRUNC|os.O_WRONLY, 0644)
	if err != nil {
		return nil, err
	}

	w := &Writer{
		file:    f,
		encoder: newEncoder(f),
	}
	if hdr.Format == 0 {
		hdr.Format = FormatVersion
	}
	if err := w.encoder.Encode(hdr); err != nil {
		f.Close()
		return nil, fmt.Errorf("write header: %w", err)
	}
	return w, nil
}

// Write appends a record.
func (w *Writer) Write(r Record) error {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.closed {
		return ErrClosed
	}
	if err := w.encoder.Encode(r); err != nil {
		return fmt.Errorf("write record %q: %w", r.ItemID, err)
	}
	w.count++
	return nil
}

// Count returns the number of records written so far.
func (w *Writer) Count() int {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.count
}

// Close closes the file. It is safe to call Close multiple times.
func (w *Writer) Close() error {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.closed {
		return nil
	}
	w.closed = true
	return w.file.Close()
}
