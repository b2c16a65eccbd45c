package namemap

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/fxamacker/cbor/v2"
)

// ErrUnsupportedFormat is returned for files written with an unknown format
// version.
var ErrUnsupportedFormat = errors.New("unsupported name map format")

// Filter selects records. The zero value matches everything.
type Filter struct {
	// DerivedOnly keeps records whose browse name was derived by the parser.
	DerivedOnly bool

	// FallbackOnly keeps records that fell back to the raw identifier.
	FallbackOnly bool

	// Prefix keeps records whose item ID starts with Prefix.
	Prefix string
}

func (f *Filter) matches(r Record) bool {
	if f.DerivedOnly && !r.Derived {
		return false
	}
	if f.FallbackOnly && r.Derived {
		return false
	}
	if f.Prefix != "" && !strings.HasPrefix(r.ItemID, f.Prefix) {
		return false
	}
	return true
}

// Reader reads a name map file as a stream of records.
type Reader struct {
	file    *os.File
	decoder *cbor.Decoder
	header  Header
	filter  Filter
}

// Open opens the file at path and reads its header.
func Open(path string) (*Reader, error) {
	return OpenFiltered(path, Filter{})
}

// OpenFiltered opens the file at path; Next only returns records matching
// filter.
func OpenFiltered(path string, filter Filter) (*Reader, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}

	r := &Reader{
		file:    f,
		decoder: newDecoder(f),
		filter:  filter,
	}
	if err := r.decoder.Decode(&r.header); err != nil {
		f.Close()
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("read header: %w", io.ErrUnexpectedEOF)
		}
		return nil, fmt.Errorf("read header: %w", err)
	}
	if r.header.Format != FormatVersion {
		f.Close()
		return nil, fmt.Errorf("%w: %d", ErrUnsupportedFormat, r.header.Format)
	}
	return r, nil
}

// Header returns the file header.
func (r *Reader) Header() Header {
	return r.header
}

// Next returns the next matching record, or io.EOF when none are left.
func (r *Reader) Next() (Record, error) {
	for {
		var rec Record
		if err := r.decoder.Decode(&rec); err != nil {
			if err == io.EOF {
				return Record{}, io.EOF
			}
			return Record{}, err
		}
		if r.filter.matches(rec) {
			return rec, nil
		}
	}
}

// ReadAll returns all remaining matching records.
func (r *Reader) ReadAll() ([]Record, error) {
	var out []Record
	for {
		rec, err := r.Next()
		if err == io.EOF {
			return out, nil
		}
		if err != nil {
			return out, err
		}
		out = append(out, rec)
	}
}

// Close closes the underlying file.
func (r *Reader) Close() error {
	return r.file.Close()
}
