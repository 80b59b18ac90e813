package zone

import "testing"

func TestCompressMergesRuns(t *testing.T) {
	// Two rows: a contiguous 4-run (given out of order, with a duplicate)
	// and a split row.
	z := Compress([]Cell{
		{X: 3, Y: 0}, {X: 1, Y: 0}, {X: 2, Y: 0}, {X: 4, Y: 0}, {X: 2, Y: 0},
		{X: 0, Y: 1}, {X: 2, Y: 1},
	})
	if z.Size() != 6 {
		t.Fatalf("Size() = %d, want 6", z.Size())
	}
	stats := z.Stats()
	if stats.Runs != 3 {
		t.Errorf("Stats().Runs = %d, want 3", stats.Runs)
	}
	if stats.Cells != 6 {
		t.Errorf("Stats().Cells = %d, want 6", stats.Cells)
	}
	if cpr := stats.CellsPerRun(); cpr != 2 {
		t.Errorf("CellsPerRun() = %f, want 2", cpr)
	}
}

func TestCompressedContains(t *testing.T) {
	z := Compress([]Cell{
		{X: -3, Y: -1}, {X: -2, Y: -1},
		{X: 0, Y: 2}, {X: 1, Y: 2}, {X: 5, Y: 2},
	})
	hits := []Cell{{X: -3, Y: -1}, {X: -2, Y: -1}, {X: 0, Y: 2}, {X: 1, Y: 2}, {X: 5, Y: 2}}
	for _, c := range hits {
		if !z.Contains(c.X, c.Y) {
			t.Errorf("Contains%v = false, want true", c)
		}
	}
	misses := []Cell{{X: -4, Y: -1}, {X: -1, Y: -1}, {X: 2, Y: 2}, {X: 4, Y: 2}, {X: 6, Y: 2}, {X: 0, Y: 0}, {X: 5, Y: 3}}
	for _, c := range misses {
		if z.Contains(c.X, c.Y) {
			t.Errorf("Contains%v = true, want false", c)
		}
	}
}

func TestCompressedAllIsRowMajorAndStable(t *testing.T) {
	z := Compress([]Cell{{X: 2, Y: 1}, {X: 0, Y: 0}, {X: 1, Y: 1}, {X: 1, Y: 0}})
	want := []Cell{{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 1, Y: 1}, {X: 2, Y: 1}}
	for round := range 2 {
		all := z.All()
		if len(all) != len(want) {
			t.Fatalf("round %d: len(All()) = %d, want %d", round, len(all), len(want))
		}
		for i := range want {
			if all[i] != want[i] {
				t.Errorf("round %d: All()[%d] = %v, want %v", round, i, all[i], want[i])
			}
		}
	}
}

func TestFromRuns(t *testing.T) {
	z, err := FromRuns([]Run{
		{Y: 1, X0: 4, X1: 6},
		{Y: 0, X0: 0, X1: 2},
		{Y: 1, X0: 6, X1: 8}, // overlaps the first run, must merge
	})
	if err != nil {
		t.Fatal(err)
	}
	if z.Size() != 8 {
		t.Errorf("Size() = %d, want 8", z.Size())
	}
	if z.Stats().Runs != 2 {
		t.Errorf("Stats().Runs = %d, want 2 after merging", z.Stats().Runs)
	}
	if !z.Contains(6, 1) || !z.Contains(8, 1) || z.Contains(3, 1) {
		t.Error("merged run has wrong membership")
	}
}

func TestFromRunsRejectsInvertedRun(t *testing.T) {
	if _, err := FromRuns([]Run{{Y: 0, X0: 5, X1: 3}}); err == nil {
		t.Fatal("FromRuns should reject a run with X1 < X0")
	}
}

func TestNewRect(t *testing.T) {
	z := NewRect(2, 3, 4, 2)
	if z.Size() != 8 {
		t.Errorf("Size() = %d, want 8", z.Size())
	}
	if z.MinX() != 2 || z.MaxX() != 5 || z.MinY() != 3 || z.MaxY() != 4 {
		t.Errorf("extrema = (%d,%d,%d,%d), want (2,5,3,4)",
			z.MinX(), z.MaxX(), z.MinY(), z.MaxY())
	}
	if z.Stats().Runs != 2 {
		t.Errorf("Stats().Runs = %d, want one run per row", z.Stats().Runs)
	}
	if !NewRect(0, 0, 0, 5).Empty() || !NewRect(0, 0, 5, -1).Empty() {
		t.Error("degenerate rectangles should be empty")
	}
}

func TestCompressedTranslateStaysCompressed(t *testing.T) {
	z := NewRect(0, 0, 3, 3)
	moved := Translate(z, 10, -5)
	mc, ok := moved.(*CompressedZone)
	if !ok {
		t.Fatalf("translated compressed zone is %T, want *CompressedZone", moved)
	}
	if mc.Stats().Runs != z.Stats().Runs {
		t.Errorf("translation changed run count: %d vs %d", mc.Stats().Runs, z.Stats().Runs)
	}
	if mc.Size() != z.Size() {
		t.Errorf("translation changed size: %d vs %d", mc.Size(), z.Size())
	}
	if !mc.Contains(10, -5) || !mc.Contains(12, -3) || mc.Contains(0, 0) {
		t.Error("translated cells are wrong")
	}
	// The original is immutable and must be unchanged.
	if !z.Contains(0, 0) || z.MinX() != 0 {
		t.Error("Translate mutated the original zone")
	}
}
