package life

import (
	"slices"
	"testing"
)

func gridFromAlive(w, h int, coords ...[2]int) *Grid {
	g := NewGrid(w, h)
	for _, c := range coords {
		g.Set(c[0], c[1], Alive)
	}
	return g
}

func TestBlinkerOscillation(t *testing.T) {
	cur := gridFromAlive(5, 5, [2]int{2, 1}, [2]int{2, 2}, [2]int{2, 3})
	nxt := NewGrid(5, 5)

	NextGeneration(cur, nxt)

	expects := map[[2]int]bool{
		{1, 2}: true,
		{2, 2}: true,
		{3, 2}: true,
	}
	for y := 0; y < 5; y++ {
		for x := 0; x < 5; x++ {
			alive := nxt.At(x, y) == Alive
			_, shouldBeAlive := expects[[2]int{x, y}]
			if shouldBeAlive != alive {
				t.Fatalf("cell (%d,%d) alive=%v, expected %v", x, y, alive, shouldBeAlive)
			}
		}
	}
	if nxt.At(2, 1) != JustDied || nxt.At(2, 3) != JustDied {
		t.Fatalf("blinker tips = %d and %d, want JustDied", nxt.At(2, 1), nxt.At(2, 3))
	}

	cur, nxt = nxt, cur
	NextGeneration(cur, nxt)

	expects = map[[2]int]bool{
		{2, 1}: true,
		{2, 2}: true,
		{2, 3}: true,
	}
	for y := 0; y < 5; y++ {
		for x := 0; x < 5; x++ {
			alive := nxt.At(x, y) == Alive
			_, shouldBeAlive := expects[[2]int{x, y}]
			if shouldBeAlive != alive {
				t.Fatalf("after second step cell (%d,%d) alive=%v, expected %v", x, y, alive, shouldBeAlive)
			}
		}
	}
	if nxt.At(1, 2) != JustDied || nxt.At(3, 2) != JustDied {
		t.Fatalf("horizontal tips = %d and %d, want JustDied", nxt.At(1, 2), nxt.At(3, 2))
	}
}

func TestBlockIsStable(t *testing.T) {
	cur := gridFromAlive(6, 6, [2]int{2, 2}, [2]int{3, 2}, [2]int{2, 3}, [2]int{3, 3})
	nxt := NewGrid(6, 6)
	want := slices.Clone(cur.Cells())
	for step := 1; step <= 10; step++ {
		NextGeneration(cur, nxt)
		if !slices.Equal(nxt.Cells(), want) {
			t.Fatalf("block changed on step %d", step)
		}
		cur, nxt = nxt, cur
	}
}

func TestLoneCellDiesThenFades(t *testing.T) {
	cur := gridFromAlive(5, 5, [2]int{2, 2})
	nxt := NewGrid(5, 5)

	NextGeneration(cur, nxt)
	if got := nxt.At(2, 2); got != JustDied {
		t.Fatalf("lone cell = %d after one step, want JustDied", got)
	}

	cur, nxt = nxt, cur
	NextGeneration(cur, nxt)
	for i, c := range nxt.Cells() {
		if c != Dead {
			t.Fatalf("cell %d = %d after two steps, want an empty board", i, c)
		}
	}
}

func TestNeighborCountOutcomes(t *testing.T) {
	offsets := [8][2]int{{-1, -1}, {0, -1}, {1, -1}, {-1, 0}, {1, 0}, {-1, 1}, {0, 1}, {1, 1}}
	cases := []struct {
		name      string
		center    Cell
		neighbors int
		want      Cell
	}{
		{"birth on three", Dead, 3, Alive},
		{"survival on two", Alive, 2, Alive},
		{"survival on three", Alive, 3, Alive},
		{"overcrowding on four", Alive, 4, JustDied},
		{"isolation on one", Alive, 1, JustDied},
		{"no birth on two", Dead, 2, Dead},
		{"fading cell stays dead on two", JustDied, 2, Dead},
		{"fading cell revives on three", JustDied, 3, Alive},
	}
	for _, tc := range cases {
		cur := NewGrid(5, 5)
		cur.Set(2, 2, tc.center)
		for i := 0; i < tc.neighbors; i++ {
			cur.Set(2+offsets[i][0], 2+offsets[i][1], Alive)
		}
		nxt := NewGrid(5, 5)
		NextGeneration(cur, nxt)
		if got := nxt.At(2, 2); got != tc.want {
			t.Fatalf("%s: center became %d, want %d", tc.name, got, tc.want)
		}
	}
}

func TestJustDiedNeighborsDoNotCount(t *testing.T) {
	cur := gridFromAlive(5, 5, [2]int{1, 2}, [2]int{3, 2})
	cur.Set(2, 1, JustDied)
	nxt := NewGrid(5, 5)
	NextGeneration(cur, nxt)
	if got := nxt.At(2, 2); got != Dead {
		t.Fatalf("center became %d with two live neighbors, want Dead", got)
	}
}

func TestBorderStaysDead(t *testing.T) {
	cur := NewGrid(9, 7)
	for y := 1; y < cur.H-1; y++ {
		for x := 1; x < cur.W-1; x++ {
			cur.Set(x, y, Alive)
		}
	}
	nxt := NewGrid(9, 7)
	for step := 1; step <= 6; step++ {
		NextGeneration(cur, nxt)
		cur, nxt = nxt, cur
		for x := 0; x < cur.W; x++ {
			for _, y := range []int{0, cur.H - 1} {
				if got := cur.At(x, y); got != Dead {
					t.Fatalf("step %d: border cell (%d,%d) = %d, want Dead", step, x, y, got)
				}
			}
		}
		for y := 0; y < cur.H; y++ {
			for _, x := range []int{0, cur.W - 1} {
				if got := cur.At(x, y); got != Dead {
					t.Fatalf("step %d: border cell (%d,%d) = %d, want Dead", step, x, y, got)
				}
			}
		}
	}
}

func TestNextGenerationDeterministic(t *testing.T) {
	run := func() []Cell {
		cur, nxt := NewGrid(20, 16), NewGrid(20, 16)
		r := NewLCG(777)
		for i := 0; i < 60; i++ {
			x := 1 + int(r.Next())%(cur.W-2)
			y := 1 + int(r.Next())%(cur.H-2)
			cur.Set(x, y, Alive)
		}
		for i := 0; i < 25; i++ {
			NextGeneration(cur, nxt)
			cur, nxt = nxt, cur
		}
		return cur.Cells()
	}
	first := run()
	for i := 2; i <= 4; i++ {
		if !slices.Equal(run(), first) {
			t.Fatalf("run %d diverged from the first run", i)
		}
	}
}

func TestMarkChangesValuesAndSentinel(t *testing.T) {
	cur := gridFromAlive(5, 5, [2]int{2, 2}, [2]int{1, 1})
	nxt := gridFromAlive(5, 5, [2]int{2, 2})
	nxt.Set(1, 1, JustDied)
	nxt.Set(3, 3, Alive)

	mask := make([]Cell, 25)
	if changed := MarkChanges(cur, nxt, mask); changed != 2 {
		t.Fatalf("changed = %d, want 2", changed)
	}
	if got := mask[cur.Index(2, 2)]; got != Unchanged {
		t.Fatalf("steady cell mask = %d, want Unchanged", got)
	}
	if got := mask[cur.Index(1, 1)]; got != JustDied {
		t.Fatalf("dying cell mask = %d, want JustDied", got)
	}
	if got := mask[cur.Index(3, 3)]; got != Alive {
		t.Fatalf("born cell mask = %d, want Alive", got)
	}
}

func TestMarkChangesRepaintsFadingCells(t *testing.T) {
	cur := NewGrid(4, 4)
	cur.Set(1, 1, JustDied)
	nxt := NewGrid(4, 4)
	mask := make([]Cell, 16)
	if changed := MarkChanges(cur, nxt, mask); changed != 1 {
		t.Fatalf("changed = %d, want the fading cell alone", changed)
	}
	if got := mask[cur.Index(1, 1)]; got != Dead {
		t.Fatalf("fading cell mask = %d, want Dead", got)
	}
}

func BenchmarkNextGeneration(b *testing.B) {
	cfg := DefaultConfig()
	cur, nxt := NewGrid(cfg.Width, cfg.Height), NewGrid(cfg.Width, cfg.Height)
	r := NewLCG(1)
	for i := 0; i < cfg.SeedCells; i++ {
		x := 1 + int(r.Next())%(cfg.Width-2)
		y := 1 + int(r.Next())%(cfg.Height-2)
		cur.Set(x, y, Alive)
	}
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		NextGeneration(cur, nxt)
		cur, nxt = nxt, cur
	}
}
