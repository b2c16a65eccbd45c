package browsename

// Config is the base configuration shape: an ordered set of separator
// characters. Earlier characters take priority over later ones.
type Config interface {
	SeparatorChars() []rune
}

// DAConfig is the extended configuration shape used by PrefixPatchedParser.
type DAConfig interface {
	Config

	// GroupPrefix marks identifiers that denote groups. Empty disables the
	// prefix heuristic.
	GroupPrefix() string

	// ItemSeparator separates path segments inside an identifier.
	ItemSeparator() string
}

// Settings is a static base configuration.
type Settings struct {
	// SeparatorCharsValue lists separator characters in priority order.
	// It must be valid UTF-8; invalid bytes decode to U+FFFD and never match.
	SeparatorCharsValue string
}

// SeparatorChars implements Config.
func (s Settings) SeparatorChars() []rune {
	return []rune(s.SeparatorCharsValue)
}

// DASettings is a static extended configuration.
type DASettings struct {
	Settings

	GroupPrefixValue   string
	ItemSeparatorValue string
}

// GroupPrefix implements DAConfig.
func (s DASettings) GroupPrefix() string {
	return s.GroupPrefixValue
}

// ItemSeparator implements DAConfig.
func (s DASettings) ItemSeparator() string {
	return s.ItemSeparatorValue
}

// Compile-time interface satisfaction checks.
var (
	_ Config   = Settings{}
	_ DAConfig = DASettings{}
)
