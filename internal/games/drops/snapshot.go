package drops

// Snapshot is the game state flattened to primitives for determinism checks.
// Positions are stored in hundredths of a cell.
type Snapshot struct {
	Tick          uint64
	NowMS         int64
	State         string
	Score         int
	Strikes       int
	TimeRemaining int
	Difficulty    string
	SliderX       int

	// Each drop is 4 ints: ID, X, W, Caught
	DropCount int
	DropData  []int
}

// Snapshot returns the current game state as a Snapshot.
func (g *Game) Snapshot() Snapshot {
	s := g.ctrl.Session()
	drops := g.ctrl.Drops()

	data := make([]int, 0, len(drops)*4)
	for _, d := range drops {
		caught := 0
		if d.Caught {
			caught = 1
		}
		data = append(data, int(d.ID), hundredths(d.X), hundredths(d.W), caught) //#nosec G115 -- drop IDs are small
	}

	return Snapshot{
		Tick:          g.tick,
		NowMS:         g.ctrl.Now().Milliseconds(),
		State:         s.State.String(),
		Score:         s.Score,
		Strikes:       s.Strikes,
		TimeRemaining: s.TimeRemaining,
		Difficulty:    s.Difficulty,
		SliderX:       hundredths(g.ctrl.Slider().X),
		DropCount:     len(drops),
		DropData:      data,
	}
}

func hundredths(v float64) int {
	return int(v * 100)
}

// Hash returns a simple hash of the snapshot for determinism testing.
func (snap *Snapshot) Hash() uint64 {
	h := snap.Tick
	h = h*31 + uint64(snap.NowMS)         //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Score)         //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Strikes)       //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.TimeRemaining) //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.SliderX)       //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.DropCount)     //#nosec G115 -- hash computation

	for _, r := range snap.State + snap.Difficulty {
		h = h*31 + uint64(r) //#nosec G115 -- hash computation
	}
	for _, v := range snap.DropData {
		h = h*31 + uint64(v) //#nosec G115 -- hash computation
	}
	return h
}
