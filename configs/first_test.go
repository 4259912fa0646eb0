package configs

import (
	"testing"
)

func TestFirst(t *testing.T) {
	loader := NewLoader([]string{
		"test.cue",
		"test2.cue",
	}, testSchema)

	if title := First[string](loader, "title"); title != "colors" {
		t.Fatalf("got %v", title)
	}

	// absent path yields the zero value
	if v := First[float64](loader, "missing"); v != 0 {
		t.Fatalf("got %v", v)
	}
}
