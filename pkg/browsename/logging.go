package browsename

import (
	"context"
	"log/slog"
)

// LoggingParser logs every parse at Debug level and otherwise behaves
// exactly like the parser it wraps.
type LoggingParser struct {
	next    Parser
	logger  *slog.Logger
	variant string
}

// NewLoggingParser wraps next. If logger is nil, logging is disabled.
func NewLoggingParser(next Parser, logger *slog.Logger) *LoggingParser {
	return &LoggingParser{
		next:    next,
		logger:  logger,
		variant: VariantOf(next),
	}
}

// Parse implements Parser.
func (p *LoggingParser) Parse(itemID string) (string, bool) {
	name, ok := p.next.Parse(itemID)
	if p.logger == nil {
		return name, ok
	}

	p.logger.LogAttrs(context.Background(), slog.LevelDebug, "browse name",
		slog.String("item_id", itemID),
		slog.String("browse_name", name),
		slog.Bool("ok", ok),
		slog.String("variant", p.variant),
	)
	return name, ok
}

// Config returns the configuration of the wrapped parser.
func (p *LoggingParser) Config() Config {
	return ConfigOf(p.next)
}

// Unwrap returns the wrapped parser.
func (p *LoggingParser) Unwrap() Parser {
	return p.next
}

// Compile-time interface satisfaction check.
var _ Parser = (*LoggingParser)(nil)
