package audio

import (
	"math"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/generators"
)

// Catch tone shape: a short sine blip that swells quickly, fades out by
// catchDecayEnd and stays at the floor until the sound stops.
const (
	catchFreq     = 880.0
	catchPeak     = 0.12
	catchFloor    = 0.0001
	catchAttack   = 10 * time.Millisecond
	catchDecayEnd = 220 * time.Millisecond
	catchDuration = 250 * time.Millisecond
)

// CatchTone returns the streamer played when a drop is caught.
func CatchTone(sr beep.SampleRate) (beep.Streamer, error) {
	sine, err := generators.SineTone(sr, catchFreq)
	if err != nil {
		return nil, err
	}
	total := sr.N(catchDuration)
	return newExpEnvelope(beep.Take(total, sine), sr.N(catchAttack), sr.N(catchDecayEnd), total), nil
}

// expEnvelope ramps gain exponentially from floor to peak over the attack,
// then back down to floor at decayEnd. Positions are in samples.
type expEnvelope struct {
	src      beep.Streamer
	pos      int
	attack   int
	decayEnd int
}

func newExpEnvelope(src beep.Streamer, attack, decayEnd, total int) *expEnvelope {
	total = max(total, 1)
	attack = max(min(attack, total), 1)
	return &expEnvelope{
		src:      src,
		attack:   attack,
		decayEnd: max(min(decayEnd, total), attack),
	}
}

func (e *expEnvelope) Stream(samples [][2]float64) (int, bool) {
	n, ok := e.src.Stream(samples)
	for i := 0; i < n; i++ {
		g := e.gain(e.pos)
		samples[i][0] *= g
		samples[i][1] *= g
		e.pos++
	}
	return n, ok
}

func (e *expEnvelope) Err() error {
	return e.src.Err()
}

// gain returns the envelope level at sample pos.
func (e *expEnvelope) gain(pos int) float64 {
	if pos < e.attack {
		return expRamp(catchFloor, catchPeak, float64(pos)/float64(e.attack))
	}
	decay := max(e.decayEnd-e.attack, 1)
	t := float64(pos-e.attack) / float64(decay)
	return expRamp(catchPeak, catchFloor, math.Min(t, 1))
}

// expRamp interpolates exponentially from a to b as t goes 0..1.
func expRamp(a, b, t float64) float64 {
	return a * math.Pow(b/a, t)
}
