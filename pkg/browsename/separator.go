package browsename

import "strings"

// ParseSeparated returns the part of itemID after the last occurrence of the
// first separator character (in configuration order) that occurs in itemID.
//
// Later separator characters are not tried once one has matched, so with
// separators ",." the identifier "a,b.c" yields "b.c".
// A nil cfg or an empty itemID always fails.
func ParseSeparated(cfg Config, itemID string) (string, bool) {
	if cfg == nil || itemID == "" {
		return "", false
	}

	for _, c := range cfg.SeparatorChars() {
		sep := string(c)
		if idx := strings.LastIndex(itemID, sep); idx >= 0 {
			return itemID[idx+len(sep):], true
		}
	}
	return "", false
}

// SeparatorParser is the baseline Parser.
type SeparatorParser struct {
	cfg Config
}

// NewSeparatorParser creates a baseline parser bound to cfg.
// A nil cfg yields a parser that never succeeds.
func NewSeparatorParser(cfg Config) *SeparatorParser {
	return &SeparatorParser{cfg: cfg}
}

// Parse implements Parser.
func (p *SeparatorParser) Parse(itemID string) (string, bool) {
	return ParseSeparated(p.cfg, itemID)
}

// Config returns the bound configuration.
func (p *SeparatorParser) Config() Config {
	return p.cfg
}

// Compile-time interface satisfaction check.
var _ Parser = (*SeparatorParser)(nil)
