package blend

import (
	"math"
	"testing"
)

func TestHueWraparound(t *testing.T) {
	if got := Hue(350, 10, 0.5); math.Abs(got) > 1e-9 && math.Abs(got-360) > 1e-9 {
		t.Fatalf("Hue(350,10,0.5) = %v, want 0", got)
	}
	if got := Hue(10, 350, 0.5); math.Abs(got) > 1e-9 && math.Abs(got-360) > 1e-9 {
		t.Fatalf("Hue(10,350,0.5) = %v, want 0", got)
	}
}

func TestHueFactorClamps(t *testing.T) {
	if got := Hue(0, 100, -0.5); got != 0 {
		t.Fatalf("negative factor: got %v, want 0", got)
	}
	if got := Hue(0, 100, 1.5); math.Abs(got-100) > 1e-9 {
		t.Fatalf("factor above one: got %v, want 100", got)
	}
}

func TestHueDirection(t *testing.T) {
	cases := []struct {
		h1, h2 float64
		want   Direction
	}{
		{350, 10, DirectionCW},
		{10, 350, DirectionCCW},
		{0, 179, DirectionCW},
		{0, 181, DirectionCCW},
		{0, 180, DirectionCW}, // exact opposite ties clockwise
		{90, 90, DirectionCW},
	}
	for _, tc := range cases {
		if got := HueDirection(tc.h1, tc.h2); got != tc.want {
			t.Fatalf("HueDirection(%v,%v) = %v, want %v", tc.h1, tc.h2, got, tc.want)
		}
	}
}

func TestHueDirectedForcesLongArc(t *testing.T) {
	// Going counter-clockwise from 0 toward 90 travels 270 degrees.
	if got := HueDirected(0, 90, 0.5, DirectionCCW); math.Abs(got-225) > 1e-9 {
		t.Fatalf("ccw long arc midpoint = %v, want 225", got)
	}
	// Clockwise from 350 toward 10 is the short 20-degree arc.
	if got := HueDirected(350, 10, 0.5, DirectionCW); math.Abs(got) > 1e-9 && math.Abs(got-360) > 1e-9 {
		t.Fatalf("cw short arc midpoint = %v, want 0", got)
	}
}

func TestHueDirectedShortestMatchesHue(t *testing.T) {
	for _, dir := range []Direction{DirectionShortest, DirectionNone} {
		if got, want := HueDirected(340, 20, 0.25, dir), Hue(340, 20, 0.25); math.Abs(got-want) > 1e-9 {
			t.Fatalf("HueDirected(%v) = %v, want %v", dir, got, want)
		}
	}
}

func TestEffectiveDirection(t *testing.T) {
	if got := EffectiveDirection(0, 170, DirectionNone); got != DirectionNone {
		t.Fatalf("no majority should stay unset, got %v", got)
	}
	if got := EffectiveDirection(0, 250, DirectionCW); got != DirectionCW {
		t.Fatalf("forced arc within bound should hold, got %v", got)
	}
	// Forcing clockwise from 0 to 300 means a 300-degree swing; fall back.
	if got := EffectiveDirection(0, 300, DirectionCW); got != DirectionNone {
		t.Fatalf("over-long forced arc should fall back, got %v", got)
	}
	if got := EffectiveDirection(0, 300, DirectionCCW); got != DirectionCCW {
		t.Fatalf("natural ccw arc should hold, got %v", got)
	}
}

func TestMajorityDirection(t *testing.T) {
	if got := MajorityDirection(nil); got != DirectionNone {
		t.Fatalf("empty vote = %v, want none", got)
	}

	majorityCW := []HuePair{
		{Key: "statusBar.background", From: 200, To: 240},
		{Key: "titleBar.activeBackground", From: 200, To: 250},
		{Key: "activityBar.background", From: 200, To: 100},
	}
	if got := MajorityDirection(majorityCW); got != DirectionCW {
		t.Fatalf("majority vote = %v, want cw", got)
	}
}

func TestMajorityDirectionTieIsStable(t *testing.T) {
	pairs := []HuePair{
		{Key: "titleBar.activeBackground", From: 0, To: 170}, // cw
		{Key: "activityBar.background", From: 0, To: 190},    // ccw
	}
	// activityBar sorts first, so the tie resolves counter-clockwise no
	// matter the input order.
	want := MajorityDirection(pairs)
	if want != DirectionCCW {
		t.Fatalf("tie-break = %v, want ccw", want)
	}
	reversed := []HuePair{pairs[1], pairs[0]}
	if got := MajorityDirection(reversed); got != want {
		t.Fatalf("tie-break order-dependent: %v vs %v", got, want)
	}
}
