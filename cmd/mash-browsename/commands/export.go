package commands

import (
	"fmt"
	"io"
	"os"

	"github.com/mash-protocol/mash-bridge/pkg/browsename"
	"github.com/mash-protocol/mash-bridge/pkg/namemap"
)

// RunExport converts a name map file to the given format (jsonl, csv, text).
// An empty output writes to stdout.
func RunExport(path, format, output string, filter namemap.Filter) error {
	var write func([]browsename.Entry, io.Writer) error
	switch format {
	case "", "jsonl":
		write = writeJSONL
	case "csv":
		write = writeCSV
	case "text":
		write = writeText
	default:
		return fmt.Errorf("unknown format: %s (supported: jsonl, csv, text)", format)
	}

	reader, err := namemap.OpenFiltered(path, filter)
	if err != nil {
		return fmt.Errorf("failed to open name map: %w", err)
	}
	defer reader.Close()

	records, err := reader.ReadAll()
	if err != nil {
		return fmt.Errorf("failed to read record: %w", err)
	}

	entries := make([]browsename.Entry, 0, len(records))
	for _, r := range records {
		entries = append(entries, browsename.Entry{ItemID: r.ItemID, BrowseName: r.BrowseName, Derived: r.Derived})
	}

	if output == "" {
		return write(entries, os.Stdout)
	}
	f, err := os.Create(output)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}
	return writeAndClose(f, func(w io.Writer) error { return write(entries, w) })
}

// writeAndClose runs write against wc and closes it. A close error is
// returned when write itself succeeded.
func writeAndClose(wc io.WriteCloser, write func(io.Writer) error) error {
	err := write(wc)
	if cerr := wc.Close(); cerr != nil && err == nil {
		return fmt.Errorf("failed to close output file: %w", cerr)
	}
	return err
}
