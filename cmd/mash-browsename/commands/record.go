package commands

import (
	"fmt"

	"github.com/mash-protocol/mash-bridge/pkg/browsename"
	"github.com/mash-protocol/mash-bridge/pkg/namemap"
)

// RunRecord resolves ids with p and writes them to a name map file at output.
// It returns the header that was written.
func RunRecord(p browsename.Parser, ids []string, output string) (namemap.Header, error) {
	hdr := namemap.HeaderFor(p)

	w, err := namemap.Create(output, hdr)
	if err != nil {
		return namemap.Header{}, fmt.Errorf("failed to create name map: %w", err)
	}

	for _, e := range browsename.ResolveAll(p, ids) {
		if err := w.Write(namemap.RecordFrom(e)); err != nil {
			w.Close()
			return namemap.Header{}, err
		}
	}
	if err := w.Close(); err != nil {
		return namemap.Header{}, fmt.Errorf("failed to close name map: %w", err)
	}
	return hdr, nil
}
