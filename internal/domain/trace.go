package domain

// Trace is the append-only log of board snapshots, one per definitive
// (single-digit) assignment. The solver never reads it back; it exists for
// an external visualizer. A nil Trace records nothing.
type Trace struct {
	snaps []Board
}

func (t *Trace) record(b *Board) {
	if t == nil {
		return
	}
	t.snaps = append(t.snaps, *b)
}

func (t *Trace) Len() int {
	if t == nil {
		return 0
	}
	return len(t.snaps)
}

// Snapshots returns the recorded boards in order.
func (t *Trace) Snapshots() []Board {
	if t == nil {
		return nil
	}
	return t.snaps
}

// Frames renders each snapshot as 81 candidate strings in cell order, the
// serialization handed to the visualizer.
func (t *Trace) Frames() [][]string {
	if t == nil {
		return nil
	}
	out := make([][]string, len(t.snaps))
	for i := range t.snaps {
		frame := make([]string, NumCells)
		for c := 0; c < NumCells; c++ {
			frame[c] = t.snaps[i].cells[c].String()
		}
		out[i] = frame
	}
	return out
}
