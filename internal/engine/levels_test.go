package engine

import "testing"

func TestLevelForXPBoundaries(t *testing.T) {
	cases := []struct {
		xp   int
		want int
	}{
		{-5, 1},
		{0, 1},
		{99, 1},
		{100, 2},
		{105, 2},
		{299, 2},
		{300, 3},
		{599, 3},
		{600, 4},
		{999, 4},
		{1000, 5},
		{1499, 5},
		{1500, 6},
		{99999, 6},
	}
	for _, c := range cases {
		if got := LevelForXP(c.xp); got != c.want {
			t.Errorf("LevelForXP(%d)=%d, want %d", c.xp, got, c.want)
		}
	}
}

func TestLevelForXPMonotonic(t *testing.T) {
	prev := LevelForXP(0)
	if prev != 1 {
		t.Fatalf("LevelForXP(0)=%d, want 1", prev)
	}
	for xp := 1; xp <= 2000; xp++ {
		cur := LevelForXP(xp)
		if cur < prev {
			t.Fatalf("LevelForXP decreased at xp=%d: %d -> %d", xp, prev, cur)
		}
		prev = cur
	}
}

func TestProgressWithinLevel(t *testing.T) {
	if got := ProgressWithinLevel(0); got != 0 {
		t.Errorf("ProgressWithinLevel(0)=%v, want 0", got)
	}
	if got := ProgressWithinLevel(50); got != 0.5 {
		t.Errorf("ProgressWithinLevel(50)=%v, want 0.5", got)
	}
	// Exactly 1 at and above the top threshold.
	if got := ProgressWithinLevel(1500); got != 1 {
		t.Errorf("ProgressWithinLevel(1500)=%v, want 1", got)
	}
	if got := ProgressWithinLevel(5000); got != 1 {
		t.Errorf("ProgressWithinLevel(5000)=%v, want 1", got)
	}
	for xp := 0; xp <= 2000; xp += 7 {
		p := ProgressWithinLevel(xp)
		if p < 0 || p > 1 {
			t.Fatalf("ProgressWithinLevel(%d)=%v out of [0,1]", xp, p)
		}
	}
}

func TestXPForNextLevel(t *testing.T) {
	if got := XPForNextLevel(0); got != 100 {
		t.Errorf("XPForNextLevel(0)=%d, want 100", got)
	}
	if got := XPForNextLevel(105); got != 300 {
		t.Errorf("XPForNextLevel(105)=%d, want 300", got)
	}
	// Clamped at the cap.
	if got := XPForNextLevel(1500); got != 1500 {
		t.Errorf("XPForNextLevel(1500)=%d, want 1500", got)
	}
}

func TestLevelNameAndColorClamp(t *testing.T) {
	if got := LevelName(1); got != "Rookie" {
		t.Errorf("LevelName(1)=%q, want Rookie", got)
	}
	// Level 6 exceeds the named tiers; it stays Legend.
	if got := LevelName(6); got != "Legend" {
		t.Errorf("LevelName(6)=%q, want Legend", got)
	}
	if got := LevelColor(0); got != "#9ca3af" {
		t.Errorf("LevelColor(0)=%q, want #9ca3af", got)
	}
}
