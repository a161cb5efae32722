package grid

import "testing"

func TestGridBounds(t *testing.T) {
	g := New[int](4, 3)

	if g.Width() != 4 || g.Height() != 3 {
		t.Fatalf("size = %dx%d, want 4x3", g.Width(), g.Height())
	}

	inside := []Point{{0, 0}, {3, 0}, {0, 2}, {3, 2}, {2, 1}}
	for _, p := range inside {
		if !g.InBounds(p.X, p.Y) {
			t.Errorf("InBounds(%d,%d) = false, want true", p.X, p.Y)
		}
	}
	outside := []Point{{-1, 0}, {0, -1}, {4, 0}, {0, 3}, {100, 100}}
	for _, p := range outside {
		if g.InBounds(p.X, p.Y) {
			t.Errorf("InBounds(%d,%d) = true, want false", p.X, p.Y)
		}
	}
}

func TestGridSentinelReads(t *testing.T) {
	g := New[int](3, 3)
	g.Set(1, 1, 7)

	if got := g.At(1, 1); got != 7 {
		t.Errorf("At(1,1) = %d, want 7", got)
	}
	if got := g.At(-1, 1); got != 0 {
		t.Errorf("At(-1,1) = %d, want zero sentinel", got)
	}
	if g.Set(3, 0, 9) {
		t.Error("Set outside bounds reported success")
	}
	if got := g.At(3, 0); got != 0 {
		t.Errorf("At(3,0) = %d, want zero sentinel", got)
	}
}

func TestGridCenter(t *testing.T) {
	cases := []struct {
		w, h int
		want Point
	}{
		{1, 1, Point{0, 0}},
		{4, 1, Point{2, 0}},
		{21, 11, Point{10, 5}},
	}
	for _, tc := range cases {
		g := New[byte](tc.w, tc.h)
		if got := g.Center(); got != tc.want {
			t.Errorf("Center of %dx%d = %v, want %v", tc.w, tc.h, got, tc.want)
		}
	}
}

func TestGridForEachRowMajor(t *testing.T) {
	g := New[int](3, 2)
	n := 0
	g.ForEach(func(x, y int, _ int) {
		wantX, wantY := n%3, n/3
		if x != wantX || y != wantY {
			t.Fatalf("visit %d at (%d,%d), want (%d,%d)", n, x, y, wantX, wantY)
		}
		n++
	})
	if n != 6 {
		t.Errorf("visited %d cells, want 6", n)
	}
}

func TestNeighbourOffsets(t *testing.T) {
	if len(Cardinal4) != 4 || len(Moore8) != 8 {
		t.Fatalf("offset tables have %d and %d entries", len(Cardinal4), len(Moore8))
	}

	seen := map[Point]bool{}
	for _, off := range Moore8 {
		if off == (Point{0, 0}) {
			t.Error("Moore8 contains the cell itself")
		}
		if seen[off] {
			t.Errorf("duplicate offset %v", off)
		}
		seen[off] = true
	}
	for _, off := range Cardinal4 {
		if !seen[off] {
			t.Errorf("cardinal offset %v missing from Moore8", off)
		}
	}
}

func TestDirectionDeltas(t *testing.T) {
	for _, dir := range AllDirections() {
		dx, dy := dir.Delta()
		if dx*dx+dy*dy != 1 {
			t.Errorf("%v delta (%d,%d) is not a unit step", dir, dx, dy)
		}
		ox, oy := dir.Opposite().Delta()
		if ox != -dx || oy != -dy {
			t.Errorf("%v opposite delta (%d,%d), want (%d,%d)", dir, ox, oy, -dx, -dy)
		}
	}
}
