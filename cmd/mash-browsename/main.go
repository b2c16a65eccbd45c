// Command mash-browsename derives browse names from vendor item identifiers.
//
// Usage:
//
//	mash-browsename [-log-level level] <command> [flags] [item-id...]
//
// Commands:
//
//	parse        Print the browse name of each item identifier
//	record       Resolve identifiers and write a name map file (.bnm)
//	export       Export a name map file to JSONL, CSV or text
//	interactive  Derive browse names at an interactive prompt
//
// Item identifiers are taken from the command line, or one per line from
// stdin when none are given.
//
// Examples:
//
//	# Baseline parser with "." and "/" as separators
//	mash-browsename parse -separators "./" plant.area1.tag7
//
//	# Prefix-patched parser from a configuration file
//	mash-browsename parse -config bridge.yaml -format jsonl < items.txt
//
//	# Record a name map and export the fallbacks as CSV
//	mash-browsename record -config bridge.yaml -o names.bnm < items.txt
//	mash-browsename export -format csv -fallback-only names.bnm
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/mash-protocol/mash-bridge/cmd/mash-browsename/commands"
	"github.com/mash-protocol/mash-bridge/pkg/browsename"
	"github.com/mash-protocol/mash-bridge/pkg/namemap"
)

const usage = `mash-browsename - Browse name derivation for bridge item identifiers

Usage:
  mash-browsename [-log-level level] <command> [flags] [item-id...]

Commands:
  parse        Print the browse name of each item identifier
  record       Resolve identifiers and write a name map file (.bnm)
  export       Export a name map file to JSONL, CSV or text
  interactive  Derive browse names at an interactive prompt

Use "mash-browsename <command> -help" for more information about a command.
`

var logLevel string

func init() {
	flag.StringVar(&logLevel, "log-level", "info", "Log level: debug, info, warn, error")
	flag.Usage = func() { fmt.Fprint(os.Stderr, usage) }
}

func main() {
	flag.Parse()

	if flag.NArg() < 1 {
		fmt.Fprint(os.Stderr, usage)
		os.Exit(1)
	}

	logger, err := setupLogging(logLevel, os.Stderr)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	cmd := flag.Arg(0)
	args := flag.Args()[1:]

	switch cmd {
	case "parse":
		runParse(args, logger)
	case "record":
		runRecord(args, logger)
	case "export":
		runExport(args)
	case "interactive":
		runInteractive(args)
	case "help":
		fmt.Print(usage)
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n", cmd)
		fmt.Fprint(os.Stderr, usage)
		os.Exit(1)
	}
}

func setupLogging(level string, w io.Writer) (*slog.Logger, error) {
	var l slog.Level
	switch strings.ToLower(level) {
	case "debug":
		l = slog.LevelDebug
	case "info":
		l = slog.LevelInfo
	case "warn":
		l = slog.LevelWarn
	case "error":
		l = slog.LevelError
	default:
		return nil, fmt.Errorf("unknown log level: %s (use: debug, info, warn, error)", level)
	}
	logger := slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: l}))
	slog.SetDefault(logger)
	return logger, nil
}

// buildParser creates the parser for cfg. Per-identifier logging is only
// attached at debug level.
func buildParser(cfg browsename.Config, logger *slog.Logger) browsename.Parser {
	p := browsename.New(cfg)
	if logger.Enabled(context.Background(), slog.LevelDebug) {
		return browsename.NewLoggingParser(p, logger)
	}
	return p
}

func newFlagSet(name, synopsis, usageLine string) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ExitOnError)
	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, "mash-browsename %s - %s\n\nUsage:\n  %s\n\nFlags:\n", name, synopsis, usageLine)
		fs.PrintDefaults()
	}
	return fs
}

func loadParser(cf *commands.ConfigFlags, logger *slog.Logger) browsename.Parser {
	cfg, err := cf.Build()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	logger.Debug("parser configured", "config", commands.DescribeConfig(cfg))
	return buildParser(cfg, logger)
}

func runParse(args []string, logger *slog.Logger) {
	fs := newFlagSet("parse", "Print the browse name of each item identifier",
		"mash-browsename parse [flags] [item-id...]")

	var cf commands.ConfigFlags
	cf.Register(fs)
	format := fs.String("format", "text", "Output format (text, jsonl, csv)")

	if err := fs.Parse(args); err != nil {
		os.Exit(1)
	}

	p := loadParser(&cf, logger)

	ids, err := commands.ReadItemIDs(fs.Args(), os.Stdin)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	if err := commands.RunParse(p, ids, *format, os.Stdout); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func runRecord(args []string, logger *slog.Logger) {
	fs := newFlagSet("record", "Resolve identifiers and write a name map file",
		"mash-browsename record -o <file.bnm> [flags] [item-id...]")

	var cf commands.ConfigFlags
	cf.Register(fs)
	output := fs.String("o", "", "Output file (required)")

	if err := fs.Parse(args); err != nil {
		os.Exit(1)
	}

	if *output == "" {
		fmt.Fprintln(os.Stderr, "Error: output file (-o) required")
		fs.Usage()
		os.Exit(1)
	}

	p := loadParser(&cf, logger)

	ids, err := commands.ReadItemIDs(fs.Args(), os.Stdin)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	hdr, err := commands.RunRecord(p, ids, *output)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	logger.Info("name map written",
		"path", *output,
		"run_id", hdr.RunID.String(),
		"records", len(ids),
		"variant", hdr.Variant)
}

func runExport(args []string) {
	fs := newFlagSet("export", "Export a name map file to JSONL, CSV or text",
		"mash-browsename export [flags] <file.bnm>")

	format := fs.String("format", "jsonl", "Output format (jsonl, csv, text)")
	output := fs.String("o", "", "Output file (default: stdout)")
	derivedOnly := fs.Bool("derived-only", false, "Only export derived browse names")
	fallbackOnly := fs.Bool("fallback-only", false, "Only export identifiers without a derived browse name")
	prefix := fs.String("prefix", "", "Only export item identifiers with this prefix")

	if err := fs.Parse(args); err != nil {
		os.Exit(1)
	}

	if fs.NArg() < 1 {
		fmt.Fprintln(os.Stderr, "Error: name map file path required")
		fs.Usage()
		os.Exit(1)
	}
	if *derivedOnly && *fallbackOnly {
		fmt.Fprintln(os.Stderr, "Error: -derived-only and -fallback-only are mutually exclusive")
		os.Exit(1)
	}

	filter := namemap.Filter{
		DerivedOnly:  *derivedOnly,
		FallbackOnly: *fallbackOnly,
		Prefix:       *prefix,
	}
	if err := commands.RunExport(fs.Arg(0), *format, *output, filter); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func runInteractive(args []string) {
	fs := newFlagSet("interactive", "Derive browse names at an interactive prompt",
		"mash-browsename interactive [flags]")

	var cf commands.ConfigFlags
	cf.Register(fs)

	if err := fs.Parse(args); err != nil {
		os.Exit(1)
	}

	cfg, err := cf.Build()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	session, err := commands.NewInteractive(browsename.New(cfg))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	// Route log output through the prompt so it does not garble input.
	logger, err := setupLogging(logLevel, session.Stderr())
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	session.SetParser(buildParser(cfg, logger))

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM)
	defer stop()

	session.Run(ctx)
}
