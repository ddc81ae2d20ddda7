package board

import "testing"

func TestApplyCapture(t *testing.T) {
	b := Empty()

	var err error
	for _, m := range []struct {
		x, y  int
		color Color
	}{
		{9, 9, Black},
		{9, 10, White},
		{9, 11, White},
	} {
		b, err = b.Apply(m.x, m.y, m.color, nil)
		if err != nil {
			t.Fatalf("Apply(%d,%d,%v) failed: %v", m.x, m.y, m.color, err)
		}
	}

	b, err = b.Apply(9, 12, Black, nil)
	if err != nil {
		t.Fatalf("capturing move failed: %v", err)
	}

	if !b.IsEmpty(9, 10) || !b.IsEmpty(9, 11) {
		t.Errorf("expected (9,10) and (9,11) to be captured (empty), got %v %v", b.At(9, 10), b.At(9, 11))
	}
	if got := b.Captures(Black); got != 1 {
		t.Errorf("expected captures[Black] == 1, got %d", got)
	}
}

func TestApplyRejectsOccupiedCell(t *testing.T) {
	b := Empty()
	b, err := b.Apply(5, 5, Black, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if _, err := b.Apply(5, 5, White, nil); err != ErrIllegalMove {
		t.Errorf("expected ErrIllegalMove, got %v", err)
	}
}

func TestApplyRejectsOffBoard(t *testing.T) {
	b := Empty()
	if _, err := b.Apply(-1, 0, Black, nil); err != ErrIllegalMove {
		t.Errorf("expected ErrIllegalMove for off-board move, got %v", err)
	}
	if _, err := b.Apply(Size, 0, Black, nil); err != ErrIllegalMove {
		t.Errorf("expected ErrIllegalMove for off-board move, got %v", err)
	}
}

func TestHashEqualityAgreement(t *testing.T) {
	a := Empty()
	var err error
	a, err = a.Apply(3, 3, Black, nil)
	if err != nil {
		t.Fatalf("Apply failed: %v", err)
	}

	b := Empty()
	b, err = b.Apply(3, 3, Black, nil)
	if err != nil {
		t.Fatalf("Apply failed: %v", err)
	}

	if !a.Equals(b) {
		t.Fatalf("expected a and b to be equal boards")
	}
	if a.Hash() != b.Hash() {
		t.Errorf("equal boards must hash identically: %v != %v", a.Hash(), b.Hash())
	}
}

func TestColorOther(t *testing.T) {
	if Black.Other() != White || White.Other() != Black {
		t.Errorf("Other() must be an involution swapping Black/White")
	}
}

func TestDoubleFreeThreeRejected(t *testing.T) {
	// A counter that always reports a jump of 2 must cause Apply to reject
	// the move once past the opening-exemption threshold (move_idx >= 8).
	alwaysDouble := func(b *Board, c Color) float64 { return 2 }

	b := Empty()
	var err error
	for i := 0; i < 8; i++ {
		b, err = b.Apply(i, 0, Black, nil)
		if err != nil {
			t.Fatalf("setup move %d failed: %v", i, err)
		}
		b, err = b.Apply(i, 1, White, nil)
		if err != nil {
			t.Fatalf("setup move %d failed: %v", i, err)
		}
	}

	if _, err := b.Apply(10, 10, Black, alwaysDouble); err != ErrDoubleFreeThree {
		t.Errorf("expected ErrDoubleFreeThree past the opening exemption, got %v", err)
	}
}

func TestCenterSeedSymmetric(t *testing.T) {
	seed := CenterSeed()
	if len(seed) != 9 {
		t.Fatalf("expected center + 8 neighbours for odd Size=%d, got %d points", Size, len(seed))
	}
	center := Point{Size / 2, Size / 2}
	found := false
	for _, p := range seed {
		if p == center {
			found = true
		}
	}
	if !found {
		t.Errorf("expected center seed to include the board center %v", center)
	}
}
