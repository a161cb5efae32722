// Package mapgen tests the charge-field generator: determinism, cutoff
// thresholding, the mean/cutoff relation and configuration validation.
package mapgen

import (
	"errors"
	"math"
	"testing"
)

func TestChargeFieldDeterminism(t *testing.T) {
	for seed := int64(0); seed < 5; seed++ {
		a, err := NewChargeField(seed, 40, 30, 12, 4, 1.0)
		if err != nil {
			t.Fatalf("seed=%d: %v", seed, err)
		}
		b, err := NewChargeField(seed, 40, 30, 12, 4, 1.0)
		if err != nil {
			t.Fatalf("seed=%d: %v", seed, err)
		}

		if a.Cutoff() != b.Cutoff() {
			t.Errorf("seed=%d: cutoffs differ: %v vs %v", seed, a.Cutoff(), b.Cutoff())
		}
		for y := 0; y < a.Height(); y++ {
			for x := 0; x < a.Width(); x++ {
				if a.FieldAt(x, y) != b.FieldAt(x, y) {
					t.Fatalf("seed=%d: field differs at (%d,%d)", seed, x, y)
				}
			}
		}
	}
}

func TestChargeFieldChargeDrawOrder(t *testing.T) {
	c, err := NewChargeField(7, 50, 50, 3, 2, 1.0)
	if err != nil {
		t.Fatal(err)
	}

	charges := c.Charges()
	if len(charges) != 5 {
		t.Fatalf("expected 5 charges, got %d", len(charges))
	}
	for i, ch := range charges {
		wantPolarity := 1
		if i >= 3 {
			wantPolarity = -1
		}
		if ch.Polarity != wantPolarity {
			t.Errorf("charge %d: polarity = %d, want %d", i, ch.Polarity, wantPolarity)
		}
		if ch.X < 0 || ch.X >= 50 || ch.Y < 0 || ch.Y >= 50 {
			t.Errorf("charge %d at (%d,%d) outside the grid", i, ch.X, ch.Y)
		}
	}
}

// TestChargeFieldCutoffInvariant verifies that every cell is either zero
// (raw value below cutoff) or keeps its raw continuous magnitude, and that
// the mean of the raw field equals cutoff / multiplier.
func TestChargeFieldCutoffInvariant(t *testing.T) {
	const multiplier = 1.15
	c, err := NewChargeField(3, 30, 20, 10, 5, multiplier)
	if err != nil {
		t.Fatal(err)
	}

	sum := 0.0
	for y := 0; y < c.Height(); y++ {
		for x := 0; x < c.Width(); x++ {
			raw := c.totalChargeAt(x, y)
			sum += raw

			got := c.FieldAt(x, y)
			if raw < c.Cutoff() {
				if got != 0 {
					t.Errorf("(%d,%d): raw %v below cutoff %v but value is %v", x, y, raw, c.Cutoff(), got)
				}
			} else if got != raw {
				t.Errorf("(%d,%d): raw %v above cutoff but value is %v", x, y, raw, got)
			}
		}
	}

	mean := sum / float64(c.Width()*c.Height())
	if diff := math.Abs(mean - c.Cutoff()/multiplier); diff > 1e-9 {
		t.Errorf("mean raw value %v does not match cutoff/multiplier %v", mean, c.Cutoff()/multiplier)
	}
}

// TestChargeFieldZeroMultiplier checks that a lone positive charge with a
// zero cutoff multiplier keeps every cell's raw value: all contributions
// are positive, so nothing can fall below a cutoff of zero.
func TestChargeFieldZeroMultiplier(t *testing.T) {
	c, err := NewChargeField(11, 16, 16, 1, 0, 0)
	if err != nil {
		t.Fatal(err)
	}

	if c.Cutoff() != 0 {
		t.Fatalf("cutoff = %v, want 0", c.Cutoff())
	}
	for y := 0; y < c.Height(); y++ {
		for x := 0; x < c.Width(); x++ {
			got := c.FieldAt(x, y)
			if got <= 0 {
				t.Errorf("(%d,%d): value %v, want positive raw magnitude", x, y, got)
			}
			if raw := c.totalChargeAt(x, y); got != raw {
				t.Errorf("(%d,%d): value %v differs from raw %v", x, y, got, raw)
			}
		}
	}
}

func TestChargeFieldOnChargeCell(t *testing.T) {
	c, err := NewChargeField(5, 10, 10, 2, 1, 0)
	if err != nil {
		t.Fatal(err)
	}

	// A cell sitting exactly on a charge receives the undamped strength
	// from that charge rather than an infinite contribution.
	for _, ch := range c.Charges() {
		v := c.FieldAt(ch.X, ch.Y)
		if math.IsInf(v, 0) || math.IsNaN(v) {
			t.Errorf("charge cell (%d,%d): value %v", ch.X, ch.Y, v)
		}
	}
}

func TestChargeFieldOutOfBounds(t *testing.T) {
	c, err := NewChargeField(1, 8, 8, 4, 2, 1.0)
	if err != nil {
		t.Fatal(err)
	}

	for _, p := range [][2]int{{-1, 0}, {0, -1}, {8, 0}, {0, 8}, {-5, -5}, {100, 100}} {
		if v := c.FieldAt(p[0], p[1]); v != 0 {
			t.Errorf("FieldAt(%d,%d) = %v, want sentinel 0", p[0], p[1], v)
		}
	}
}

func TestChargeFieldInvalidConfiguration(t *testing.T) {
	cases := []struct {
		name      string
		width     int
		height    int
		positives int
		negatives int
	}{
		{"no charges", 10, 10, 0, 0},
		{"zero width", 0, 10, 1, 1},
		{"zero height", 10, 0, 1, 1},
		{"negative width", -3, 10, 1, 1},
	}
	for _, tc := range cases {
		_, err := NewChargeField(0, tc.width, tc.height, tc.positives, tc.negatives, 1.0)
		if !errors.Is(err, ErrInvalidConfiguration) {
			t.Errorf("%s: err = %v, want ErrInvalidConfiguration", tc.name, err)
		}
	}
}
