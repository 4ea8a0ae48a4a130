package minimax

import "testing"

func TestDepth(t *testing.T) {
	d := Unbounded()
	if d.IsBounded() || d.Exhausted() || d.Next() != d || d.String() != "inf" {
		t.Errorf("unexpected unbounded depth %+v", d)
	}

	d = Bounded(2)
	if !d.IsBounded() || d.Exhausted() || d.Plies() != 2 {
		t.Errorf("unexpected bounded depth %+v", d)
	}

	d = d.Next().Next()
	if !d.Exhausted() || d.Plies() != 0 || d.String() != "0" {
		t.Errorf("expected exhausted depth, got %+v", d)
	}

	if !Bounded(-1).Exhausted() {
		t.Error("negative depth should be exhausted")
	}
}

func TestDepthText(t *testing.T) {
	tests := map[string]Depth{"": Unbounded(), "inf": Unbounded(), "0": Bounded(0), "4": Bounded(4)}
	for text, want := range tests {
		var d Depth
		if err := d.UnmarshalText([]byte(text)); err != nil || d != want {
			t.Errorf("UnmarshalText(%q) = %v %v, want %v", text, d, err, want)
		}
	}

	var d Depth
	for _, text := range []string{"-1", "deep", "2.5"} {
		if err := d.UnmarshalText([]byte(text)); err == nil {
			t.Errorf("UnmarshalText(%q) expected error", text)
		}
	}

	if s := DefaultLimits().SetDepth(2).String(); s != "{\"Depth\":\"2\",\"Pruning\":true}\n" {
		t.Errorf("Limits.String() = %q", s)
	}
}
