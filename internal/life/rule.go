package life

// NextGeneration writes the successor of cur into nxt using the Game of
// Life rule over the interior cells. Only Alive neighbors count toward
// the sums; a live cell that dies becomes JustDied for one generation.
// Border cells are never written and stay Dead.
func NextGeneration(cur, nxt *Grid) {
	w, h := cur.W, cur.H
	cc, nc := cur.cells, nxt.cells
	for y := 1; y < h-1; y++ {
		row := y * w
		for x := 1; x < w-1; x++ {
			i := row + x
			up, dn := i-w, i+w
			n := 0
			if cc[up-1] == Alive {
				n++
			}
			if cc[up] == Alive {
				n++
			}
			if cc[up+1] == Alive {
				n++
			}
			if cc[i-1] == Alive {
				n++
			}
			if cc[i+1] == Alive {
				n++
			}
			if cc[dn-1] == Alive {
				n++
			}
			if cc[dn] == Alive {
				n++
			}
			if cc[dn+1] == Alive {
				n++
			}
			switch cc[i] {
			case Alive:
				if n == 2 || n == 3 {
					nc[i] = Alive
				} else {
					nc[i] = JustDied
				}
			default:
				if n == 3 {
					nc[i] = Alive
				} else {
					nc[i] = Dead
				}
			}
		}
	}
}

// MarkChanges fills mask with the new value of every cell that differs
// between the two generations and Unchanged everywhere else, returning
// the number of changed cells. Values are compared literally, so a cell
// fading from JustDied to Dead still repaints even though both states
// are logically dead.
func MarkChanges(cur, nxt *Grid, mask []Cell) int {
	cc, nc := cur.cells, nxt.cells
	changed := 0
	for i, v := range nc {
		if cc[i] != v {
			mask[i] = v
			changed++
		} else {
			mask[i] = Unchanged
		}
	}
	return changed
}
