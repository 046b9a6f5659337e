package modes

import (
	"testing"

	"github.com/reusee/dscope"
)

func TestModes(t *testing.T) {
	scope := dscope.New(ForTest(t))
	if mode := dscope.Get[Mode](scope); mode != ModeDevelopment {
		t.Fatalf("got %v", mode)
	}
	if got := dscope.Get[*testing.T](scope); got != t {
		t.Fatal()
	}

	scope = dscope.New(ForProduction())
	if mode := dscope.Get[Mode](scope); mode != ModeProduction {
		t.Fatalf("got %v", mode)
	}
}
