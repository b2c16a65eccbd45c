package commands

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"strconv"

	"github.com/mash-protocol/mash-bridge/pkg/browsename"
)

// entryJSON is the JSONL representation of a resolved identifier.
type entryJSON struct {
	ItemID     string `json:"item_id"`
	BrowseName string `json:"browse_name"`
	Derived    bool   `json:"derived"`
}

// RunParse resolves each identifier with p and writes the result to w in the
// given format (text, jsonl, csv).
func RunParse(p browsename.Parser, ids []string, format string, w io.Writer) error {
	entries := browsename.ResolveAll(p, ids)

	switch format {
	case "", "text":
		return writeText(entries, w)
	case "jsonl":
		return writeJSONL(entries, w)
	case "csv":
		return writeCSV(entries, w)
	default:
		return fmt.Errorf("unknown format: %s (supported: text, jsonl, csv)", format)
	}
}

func writeText(entries []browsename.Entry, w io.Writer) error {
	for _, e := range entries {
		line := fmt.Sprintf("%s\t%s", e.ItemID, e.BrowseName)
		if !e.Derived {
			line += "\t(fallback)"
		}
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}
	return nil
}

func writeJSONL(entries []browsename.Entry, w io.Writer) error {
	encoder := json.NewEncoder(w)
	for _, e := range entries {
		if err := encoder.Encode(entryJSON{ItemID: e.ItemID, BrowseName: e.BrowseName, Derived: e.Derived}); err != nil {
			return fmt.Errorf("failed to encode entry: %w", err)
		}
	}
	return nil
}

func writeCSV(entries []browsename.Entry, w io.Writer) error {
	cw := csv.NewWriter(w)

	if err := cw.Write([]string{"item_id", "browse_name", "derived"}); err != nil {
		return fmt.Errorf("failed to write header: %w", err)
	}
	for _, e := range entries {
		if err := cw.Write([]string{e.ItemID, e.BrowseName, strconv.FormatBool(e.Derived)}); err != nil {
			return fmt.Errorf("failed to write row: %w", err)
		}
	}
	cw.Flush()
	return cw.Error()
}
