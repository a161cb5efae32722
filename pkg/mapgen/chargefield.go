package mapgen

import (
	"fmt"
	"math"
	"math/rand"

	"mapforge/pkg/engine/grid"
)

// Charge is a point source with a polarity, placed once at construction
// and never moved.
type Charge struct {
	X        int
	Y        int
	Polarity int // +1 or -1
}

// ChargeField generates landmass-style maps by summing the potential of
// randomly placed positive and negative charges over every cell, then
// zeroing cells that fall below an average-derived cutoff. Cells at or
// above the cutoff keep their raw continuous magnitude; only the low end
// is flattened to zero. That asymmetry is part of the map's look and is
// kept on purpose.
//
// Random draws, in order: for each charge its x then its y coordinate,
// all positive charges before all negative ones. No randomness is
// consumed after charge placement.
type ChargeField struct {
	field    *grid.Grid[float64]
	charges  []Charge
	strength float64
	cutoff   float64
}

// NewChargeField builds the full field for the given seed and dimensions.
// positives+negatives must be at least one charge in total.
func NewChargeField(seed int64, width, height, positives, negatives int, cutoffMultiplier float64) (*ChargeField, error) {
	if err := validateSize(width, height); err != nil {
		return nil, err
	}
	total := positives + negatives
	if total <= 0 {
		return nil, fmt.Errorf("charge count %d: %w", total, ErrInvalidConfiguration)
	}

	rng := rand.New(rand.NewSource(seed))

	c := &ChargeField{
		field:    grid.New[float64](width, height),
		charges:  make([]Charge, 0, total),
		strength: float64(width+height) / 2 / math.Sqrt(float64(total)),
	}

	for i := 0; i < total; i++ {
		polarity := 1
		if i >= positives {
			polarity = -1
		}
		c.charges = append(c.charges, Charge{
			X:        rng.Intn(width),
			Y:        rng.Intn(height),
			Polarity: polarity,
		})
	}

	sum := 0.0
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			raw := c.totalChargeAt(x, y)
			c.field.Set(x, y, raw)
			sum += raw
		}
	}

	c.cutoff = sum / float64(width*height) * cutoffMultiplier

	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			if c.field.At(x, y) < c.cutoff {
				c.field.Set(x, y, 0)
			}
		}
	}

	return c, nil
}

// totalChargeAt sums every charge's contribution at (x, y). A cell sitting
// exactly on a charge receives the undamped strength instead of dividing
// by a zero distance, softening the singularity.
func (c *ChargeField) totalChargeAt(x, y int) float64 {
	total := 0.0
	for _, ch := range c.charges {
		dx := float64(x - ch.X)
		dy := float64(y - ch.Y)
		distance := math.Sqrt(dx*dx + dy*dy)

		contribution := c.strength
		if distance != 0 {
			contribution = c.strength / distance
		}

		total += float64(ch.Polarity) * contribution
	}
	return total
}

// FieldAt returns the thresholded field magnitude at (x, y), or 0 if the
// coordinates are out of bounds.
func (c *ChargeField) FieldAt(x, y int) float64 {
	return c.field.At(x, y)
}

// Width returns the number of columns in the field.
func (c *ChargeField) Width() int {
	return c.field.Width()
}

// Height returns the number of rows in the field.
func (c *ChargeField) Height() int {
	return c.field.Height()
}

// Cutoff returns the threshold below which cells were zeroed.
func (c *ChargeField) Cutoff() float64 {
	return c.cutoff
}

// Charges returns a copy of the placed charges in draw order.
func (c *ChargeField) Charges() []Charge {
	out := make([]Charge, len(c.charges))
	copy(out, c.charges)
	return out
}
