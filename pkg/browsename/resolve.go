package browsename

// Entry is a resolved identifier.
type Entry struct {
	ItemID     string
	BrowseName string

	// Derived is false when the parser failed and BrowseName fell back to
	// the raw identifier.
	Derived bool
}

// Resolve parses itemID with p and falls back to the raw identifier when no
// browse name can be derived.
func Resolve(p Parser, itemID string) Entry {
	if name, ok := p.Parse(itemID); ok {
		return Entry{ItemID: itemID, BrowseName: name, Derived: true}
	}
	return Entry{ItemID: itemID, BrowseName: itemID}
}

// ResolveAll resolves each identifier in order.
func ResolveAll(p Parser, itemIDs []string) []Entry {
	entries := make([]Entry, 0, len(itemIDs))
	for _, id := range itemIDs {
		entries = append(entries, Resolve(p, id))
	}
	return entries
}
