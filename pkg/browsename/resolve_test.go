package browsename

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestResolve(t *testing.T) {
	p := New(daSettings("", "G.", ""))

	assert.Equal(t, Entry{ItemID: "area1.tag7", BrowseName: "area1.tag7", Derived: true}, Resolve(p, "area1.tag7"))
	assert.Equal(t, Entry{ItemID: "G.sub", BrowseName: "G.sub", Derived: false}, Resolve(p, "G.sub"))
}

func TestResolveAllKeepsOrder(t *testing.T) {
	p := New(Settings{SeparatorCharsValue: "/"})

	got := ResolveAll(p, []string{"a/b", "c", "d/e/f"})

	assert.Equal(t, []Entry{
		{ItemID: "a/b", BrowseName: "b", Derived: true},
		{ItemID: "c", BrowseName: "c", Derived: false},
		{ItemID: "d/e/f", BrowseName: "f", Derived: true},
	}, got)
}

func TestResolveAllEmpty(t *testing.T) {
	got := ResolveAll(New(Settings{}), nil)
	assert.Empty(t, got)
	assert.NotNil(t, got)
}
