package configs

import (
	"fmt"
	"testing"
)

func TestAll(t *testing.T) {
	loader := NewLoader([]string{
		"test.cue",
		"test2.cue",
	}, testSchema)

	var titles []string
	for title := range All[string](loader, "title") {
		titles = append(titles, title)
	}
	if str := fmt.Sprintf("%v", titles); str != "[colors typing]" {
		t.Fatalf("got %q", str)
	}
}
