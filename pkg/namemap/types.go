package namemap

import (
	"time"

	"github.com/google/uuid"
	"github.com/mash-protocol/mash-bridge/pkg/browsename"
)

// FormatVersion is the file format version written by this package.
const FormatVersion uint8 = 1

// Header is the first value in a name map file.
type Header struct {
	Format  uint8     `cbor:"1,keyasint"`
	RunID   uuid.UUID `cbor:"2,keyasint"`
	Created time.Time `cbor:"3,keyasint"`
	Variant string    `cbor:"4,keyasint,omitempty"`

	Separators    string `cbor:"5,keyasint,omitempty"`
	GroupPrefix   string `cbor:"6,keyasint,omitempty"`
	ItemSeparator string `cbor:"7,keyasint,omitempty"`
	DA            bool   `cbor:"8,keyasint,omitempty"`
}

// HeaderFor builds a header describing p and its configuration, with a
// fresh run ID.
func HeaderFor(p browsename.Parser) Header {
	h := Header{
		Format:  FormatVersion,
		RunID:   uuid.New(),
		Created: time.Now().UTC(),
		Variant: browsename.VariantOf(p),
	}

	cfg := browsename.ConfigOf(p)
	if cfg != nil {
		h.Separators = string(cfg.SeparatorChars())
	}
	if da, ok := cfg.(browsename.DAConfig); ok {
		h.DA = true
		h.GroupPrefix = da.GroupPrefix()
		h.ItemSeparator = da.ItemSeparator()
	}
	return h
}

// Config reconstructs the parser configuration recorded in the header.
func (h Header) Config() browsename.Config {
	base := browsename.Settings{SeparatorCharsValue: h.Separators}
	if !h.DA {
		return base
	}
	return browsename.DASettings{
		Settings:           base,
		GroupPrefixValue:   h.GroupPrefix,
		ItemSeparatorValue: h.ItemSeparator,
	}
}

// Record is one resolved identifier.
type Record struct {
	ItemID     string `cbor:"1,keyasint"`
	BrowseName string `cbor:"2,keyasint"`
	Derived    bool   `cbor:"3,keyasint,omitempty"`
}

// RecordFrom converts a resolved entry.
func RecordFrom(e browsename.Entry) Record {
	return Record{ItemID: e.ItemID, BrowseName: e.BrowseName, Derived: e.Derived}
}
