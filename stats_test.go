package treediff

import (
	"encoding/json"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestCalcStats(t *testing.T) {
	srcJSON := []byte(`{"a":100,"foo":[1,2,3],"bar":false,"baz":{"b":4,"e":null}}`)
	dstJSON := []byte(`{"a":99,"foo":[1,2],"bar":false,"baz":{"b":4,"e":null,"f":true}}`)

	var src, dst interface{}
	if err := json.Unmarshal(srcJSON, &src); err != nil {
		t.Fatal(err)
	}
	if err := json.Unmarshal(dstJSON, &dst); err != nil {
		t.Fatal(err)
	}

	stats := CalcStats(Diff(src, dst))

	expect := Stats{
		Adds:     1, // /baz/f
		Removes:  1, // /foo/2
		Replaces: 1, // /a
	}
	if diff := cmp.Diff(expect, stats); diff != "" {
		t.Errorf("stats mismatch (-want +got):\n%s", diff)
	}
	if got := stats.Total(); got != 3 {
		t.Errorf("Total() = %d, want 3", got)
	}
}

func TestCalcStatsAllKinds(t *testing.T) {
	p := Patch{
		NewAdd("/a", 1),
		NewRemove("/b"),
		NewReplace("/c", 2),
		NewMove("/d", "/e"),
		NewCopy("/f", "/g"),
		NewTest("/h", 3),
		NewAppend("/i", []interface{}{4}),
	}

	stats := CalcStats(p)
	expect := Stats{Adds: 1, Removes: 1, Replaces: 1, Moves: 1, Copies: 1, Tests: 1, Appends: 1}
	if diff := cmp.Diff(expect, stats); diff != "" {
		t.Errorf("stats mismatch (-want +got):\n%s", diff)
	}
	if got := stats.Total(); got != len(p) {
		t.Errorf("Total() = %d, want %d", got, len(p))
	}
}
