// Package browsename derives short browse names from vendor item identifiers.
//
// Item identifiers exposed by a device/server bridge are opaque strings whose
// structure is defined by configuration. This package decides whether a
// browse name can be derived from an identifier and, if so, what it is.
//
// # Variants
//
// Two parsers implement the Parser interface:
//
//	SeparatorParser      - baseline: suffix after the last occurrence of the
//	                       first configured separator character that appears
//	PrefixPatchedParser  - runs the baseline, then falls back to a group
//	                       prefix / item separator heuristic (DA configuration)
//
// New selects the variant from the configuration shape:
//
//	p := browsename.New(cfg)
//	if name, ok := p.Parse("area1.tag7"); ok {
//	    // use name
//	}
//
// # Failure
//
// Parse never panics and never returns an error. A failed parse returns
// ("", false) and the caller picks its own naming strategy; Resolve
// implements the usual one (fall back to the raw identifier).
//
// The only hard error is a configuration shape mismatch, reported by
// PrefixPatchedParserFor at construction time.
//
// # Concurrency
//
// Parsers hold only their read-only configuration and are safe for
// concurrent use.
package browsename
