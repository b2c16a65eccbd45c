package browsename

import (
	"errors"
	"fmt"
	"strings"
)

// ErrNotDAConfig is returned when a prefix-patched parser is requested for a
// configuration that does not implement DAConfig.
var ErrNotDAConfig = errors.New("configuration does not provide group prefix and item separator")

// ParsePrefixPatched runs ParseSeparated and, if that fails, applies the
// group prefix heuristic.
//
// Identifiers starting with the group prefix are groups: they only get a
// name when the item separator is set and occurs in the identifier.
// All other identifiers are single items and always get a name, the suffix
// after the last item separator or the whole identifier.
//
// An empty itemID is treated as absent and always fails.
func ParsePrefixPatched(cfg DAConfig, itemID string) (string, bool) {
	if name, ok := ParseSeparated(cfg, itemID); ok {
		return name, true
	}
	return parseGroupPrefix(cfg, itemID)
}

func parseGroupPrefix(cfg DAConfig, itemID string) (string, bool) {
	if cfg == nil || itemID == "" {
		return "", false
	}

	prefix := cfg.GroupPrefix()
	if prefix == "" {
		return "", false
	}
	sep := cfg.ItemSeparator()

	if strings.HasPrefix(itemID, prefix) {
		// Groups without a usable separator stay unnamed, unlike single
		// items below.
		if sep == "" {
			return "", false
		}
		idx := strings.LastIndex(itemID, sep)
		if idx < 0 {
			return "", false
		}
		return itemID[idx+len(sep):], true
	}

	if sep == "" {
		return itemID, true
	}
	idx := strings.LastIndex(itemID, sep)
	if idx < 0 {
		return itemID, true
	}
	return itemID[idx+len(sep):], true
}

// PrefixPatchedParser wraps a SeparatorParser with the group prefix
// heuristic. It requires a DAConfig.
type PrefixPatchedParser struct {
	base *SeparatorParser
	cfg  DAConfig
}

// NewPrefixPatchedParser creates a prefix-patched parser bound to cfg.
func NewPrefixPatchedParser(cfg DAConfig) *PrefixPatchedParser {
	return &PrefixPatchedParser{
		base: NewSeparatorParser(cfg),
		cfg:  cfg,
	}
}

// PrefixPatchedParserFor checks that cfg has the extended shape and creates a
// prefix-patched parser for it. It returns an error wrapping ErrNotDAConfig
// otherwise.
func PrefixPatchedParserFor(cfg Config) (*PrefixPatchedParser, error) {
	da, ok := cfg.(DAConfig)
	if !ok {
		return nil, fmt.Errorf("%w: got %T", ErrNotDAConfig, cfg)
	}
	return NewPrefixPatchedParser(da), nil
}

// Parse implements Parser.
func (p *PrefixPatchedParser) Parse(itemID string) (string, bool) {
	if name, ok := p.base.Parse(itemID); ok {
		return name, true
	}
	return parseGroupPrefix(p.cfg, itemID)
}

// Config returns the bound configuration.
func (p *PrefixPatchedParser) Config() Config {
	return p.cfg
}

// Compile-time interface satisfaction check.
var _ Parser = (*PrefixPatchedParser)(nil)
