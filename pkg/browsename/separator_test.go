package browsename

import "testing"

func TestParseSeparated(t *testing.T) {
	tests := []struct {
		name       string
		separators string
		itemID     string
		want       string
		wantOK     bool
	}{
		{
			name:       "single separator",
			separators: ".",
			itemID:     "area1.tag7",
			want:       "tag7",
			wantOK:     true,
		},
		{
			name:       "last occurrence wins",
			separators: ".",
			itemID:     "plant.area1.tag7",
			want:       "tag7",
			wantOK:     true,
		},
		{
			name:       "list order is priority",
			separators: ",.",
			itemID:     "a,b.c",
			want:       "b.c",
			wantOK:     true,
		},
		{
			name:       "later separator used when earlier is absent",
			separators: ",.",
			itemID:     "a.b.c",
			want:       "c",
			wantOK:     true,
		},
		{
			name:       "trailing separator yields empty name",
			separators: "/",
			itemID:     "dev/",
			want:       "",
			wantOK:     true,
		},
		{
			name:       "leading separator",
			separators: "/",
			itemID:     "/tag",
			want:       "tag",
			wantOK:     true,
		},
		{
			name:       "multibyte separator",
			separators: "→",
			itemID:     "pump→speed",
			want:       "speed",
			wantOK:     true,
		},
		{
			name:       "no separator present",
			separators: "./",
			itemID:     "plainitem",
			wantOK:     false,
		},
		{
			name:       "empty separator set",
			separators: "",
			itemID:     "a.b/c,d",
			wantOK:     false,
		},
		{
			name:       "empty item id",
			separators: ".",
			itemID:     "",
			wantOK:     false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Settings{SeparatorCharsValue: tt.separators}
			got, ok := ParseSeparated(cfg, tt.itemID)
			if ok != tt.wantOK {
				t.Fatalf("ParseSeparated(%q) ok = %v, want %v", tt.itemID, ok, tt.wantOK)
			}
			if got != tt.want {
				t.Errorf("ParseSeparated(%q) = %q, want %q", tt.itemID, got, tt.want)
			}
		})
	}
}

func TestParseSeparatedNilConfig(t *testing.T) {
	if name, ok := ParseSeparated(nil, "a.b"); ok || name != "" {
		t.Errorf("ParseSeparated(nil) = (%q, %v), want (\"\", false)", name, ok)
	}
}

func TestParseSeparatedEmptyConfigAlwaysFails(t *testing.T) {
	cfg := Settings{}
	for _, id := range []string{"a", "a.b", "a/b/c", "G.sub.leaf", ".", "x,y;z"} {
		if name, ok := ParseSeparated(cfg, id); ok || name != "" {
			t.Errorf("ParseSeparated(%q) = (%q, %v), want failure", id, name, ok)
		}
	}
}

func TestSeparatorParser(t *testing.T) {
	p := NewSeparatorParser(Settings{SeparatorCharsValue: "/."})

	name, ok := p.Parse("site/line.3/valve")
	if !ok || name != "valve" {
		t.Errorf("Parse() = (%q, %v), want (\"valve\", true)", name, ok)
	}

	if _, ok := p.Parse("valve"); ok {
		t.Error("Parse() should fail without a separator")
	}

	if _, ok := NewSeparatorParser(nil).Parse("a/b"); ok {
		t.Error("parser with nil config should never succeed")
	}
}

func TestParseSeparatedInvalidUTF8Separator(t *testing.T) {
	// Separators are decoded as UTF-8; a raw byte becomes U+FFFD and does
	// not match the same byte in an identifier.
	cfg := Settings{SeparatorCharsValue: "\xff"}
	if name, ok := ParseSeparated(cfg, "a\xffb"); ok {
		t.Errorf("ParseSeparated() = (%q, true), want failure", name)
	}
}
