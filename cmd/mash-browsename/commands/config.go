// Package commands implements the mash-browsename subcommands.
package commands

import (
	"bufio"
	"flag"
	"io"
	"strconv"
	"strings"

	"github.com/mash-protocol/mash-bridge/pkg/browsename"
)

// ConfigFlags holds the parser configuration flags shared by subcommands.
type ConfigFlags struct {
	File          string
	Separators    string
	GroupPrefix   string
	ItemSeparator string
	DA            bool
}

// Register adds the configuration flags to fs.
func (c *ConfigFlags) Register(fs *flag.FlagSet) {
	fs.StringVar(&c.File, "config", "", "Parser configuration file (YAML)")
	fs.StringVar(&c.Separators, "separators", "", "Separator characters in priority order")
	fs.StringVar(&c.GroupPrefix, "group-prefix", "", "Group prefix (implies -da)")
	fs.StringVar(&c.ItemSeparator, "item-separator", "", "Item separator (implies -da)")
	fs.BoolVar(&c.DA, "da", false, "Use the prefix-patched parser")
}

// Build returns the configuration described by the flags. A configuration
// file takes precedence over the individual flags.
func (c *ConfigFlags) Build() (browsename.Config, error) {
	if c.File != "" {
		return browsename.LoadConfig(c.File)
	}

	base := browsename.Settings{SeparatorCharsValue: c.Separators}
	if !c.DA && c.GroupPrefix == "" && c.ItemSeparator == "" {
		return base, nil
	}
	return browsename.DASettings{
		Settings:           base,
		GroupPrefixValue:   c.GroupPrefix,
		ItemSeparatorValue: c.ItemSeparator,
	}, nil
}

// maxItemIDLen bounds a single identifier read from a line-oriented input.
const maxItemIDLen = 16 << 20

// ReadItemIDs returns args if any are given, otherwise one identifier per
// non-empty line of in. Lines are taken verbatim apart from the line ending,
// so surrounding whitespace stays part of the identifier.
func ReadItemIDs(args []string, in io.Reader) ([]string, error) {
	if len(args) > 0 {
		return args, nil
	}

	var ids []string
	scanner := bufio.NewScanner(in)
	scanner.Buffer(make([]byte, 0, 64*1024), maxItemIDLen)
	for scanner.Scan() {
		line := strings.TrimRight(scanner.Text(), "\r")
		if line == "" {
			continue
		}
		ids = append(ids, line)
	}
	return ids, scanner.Err()
}

// DescribeConfig renders cfg on a single line.
func DescribeConfig(cfg browsename.Config) string {
	if cfg == nil {
		return "no configuration"
	}

	var sb strings.Builder
	sb.WriteString("separators=")
	sb.WriteString(strconv.Quote(string(cfg.SeparatorChars())))
	if da, ok := cfg.(browsename.DAConfig); ok {
		sb.WriteString(" group-prefix=")
		sb.WriteString(strconv.Quote(da.GroupPrefix()))
		sb.WriteString(" item-separator=")
		sb.WriteString(strconv.Quote(da.ItemSeparator()))
	}
	return sb.String()
}
