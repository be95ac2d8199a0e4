package pkg

import (
	"testing"
	"time"
)

func TestSlugify(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"simple", "Runners", "runners"},
		{"spaces and punctuation", "Mi Comunidad!!", "mi-comunidad"},
		{"collapses runs", "a  --  b", "a-b"},
		{"digits kept", "Club 2024", "club-2024"},
		{"leading trailing trimmed", "  hola  ", "hola"},
		{"all symbols", "!!!", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Slugify(tt.in); got != tt.want {
				t.Errorf("Slugify(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestUniqueSlug(t *testing.T) {
	now := time.UnixMilli(1717171717171)

	if got := UniqueSlug("runners", false, now); got != "runners" {
		t.Errorf("free slug changed: %q", got)
	}
	want := "runners-1717171717171"
	if got := UniqueSlug("runners", true, now); got != want {
		t.Errorf("taken slug = %q, want %q", got, want)
	}
}
