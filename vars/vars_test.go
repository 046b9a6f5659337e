package vars

import "testing"

func TestFirstNonZero(t *testing.T) {
	if v := FirstNonZero("", "", "foo", "bar"); v != "foo" {
		t.Fatalf("got %q", v)
	}
	if v := FirstNonZero(0, 0); v != 0 {
		t.Fatalf("got %v", v)
	}
}

func TestStrToBool(t *testing.T) {
	for _, str := range []string{"true", "T", "Yes", "y", "1", "on"} {
		if !StrToBool(str) {
			t.Fatalf("expected true for %q", str)
		}
	}
	for _, str := range []string{"false", "no", "0", "off", ""} {
		if StrToBool(str) {
			t.Fatalf("expected false for %q", str)
		}
	}
}
