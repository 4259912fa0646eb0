package vars

import "testing"

func TestStrToBool(t *testing.T) {
	for _, str := range []string{"true", "T", "yes", "Y"} {
		if !StrToBool(str) {
			t.Fatalf("got false for %q", str)
		}
	}
	for _, str := range []string{"false", "F", "no", "N", "", "whatever"} {
		if StrToBool(str) {
			t.Fatalf("got true for %q", str)
		}
	}
}
