package game

import "testing"

func TestPlayerColorOther(t *testing.T) {
	if Black.Other() != White {
		t.Errorf("expected Black.Other() = White, got %v", Black.Other())
	}
	if White.Other() != Black {
		t.Errorf("expected White.Other() = Black, got %v", White.Other())
	}
}

func TestPlayerColorOrdering(t *testing.T) {
	// Comparison only; nothing in the engine depends on which is lower.
	if !(Black < White) {
		t.Error("expected Black < White")
	}
}

func TestPlayerColorString(t *testing.T) {
	cases := map[PlayerColor]string{
		Black:          "Black",
		White:          "White",
		PlayerColor(7): "Unknown",
	}
	for color, want := range cases {
		if got := color.String(); got != want {
			t.Errorf("expected %q, got %q", want, got)
		}
	}
}
