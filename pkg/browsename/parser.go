package browsename

// Variant names reported by VariantOf.
const (
	VariantSeparator     = "separator"
	VariantPrefixPatched = "prefix-patched"
)

// Parser derives a browse name from an item identifier.
// Implementations must be safe for concurrent use.
type Parser interface {
	// Parse returns the browse name and true, or "" and false if no name
	// can be derived. Callers must not use the name when ok is false.
	Parse(itemID string) (browseName string, ok bool)
}

// New returns the parser variant matching the configuration shape:
// a PrefixPatchedParser for a DAConfig, a SeparatorParser otherwise.
func New(cfg Config) Parser {
	if da, ok := cfg.(DAConfig); ok {
		return NewPrefixPatchedParser(da)
	}
	return NewSeparatorParser(cfg)
}

// VariantOf returns the variant name of p, looking through LoggingParser.
// Unknown implementations return "".
func VariantOf(p Parser) string {
	switch v := p.(type) {
	case *SeparatorParser:
		return VariantSeparator
	case *PrefixPatchedParser:
		return VariantPrefixPatched
	case *LoggingParser:
		return VariantOf(v.next)
	default:
		return ""
	}
}

// ConfigOf returns the configuration bound to p, or nil if p does not
// expose one.
func ConfigOf(p Parser) Config {
	if c, ok := p.(interface{ Config() Config }); ok {
		return c.Config()
	}
	return nil
}
