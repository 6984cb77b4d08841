package audio

import (
	"math"
	"testing"
	"time"

	"github.com/gopxl/beep"
)

func TestCatchToneLength(t *testing.T) {
	sr := beep.SampleRate(8000)
	st, err := CatchTone(sr)
	if err != nil {
		t.Fatalf("CatchTone() failed: %v", err)
	}

	total := 0
	buf := make([][2]float64, 512)
	for {
		n, ok := st.Stream(buf)
		total += n
		if !ok {
			break
		}
	}

	if want := sr.N(catchDuration); total != want {
		t.Errorf("streamed %d samples, expected %d", total, want)
	}
	if st.Err() != nil {
		t.Errorf("Err() = %v", st.Err())
	}
}

func TestCatchToneAmplitude(t *testing.T) {
	sr := beep.SampleRate(8000)
	st, _ := CatchTone(sr)

	buf := make([][2]float64, sr.N(catchDuration))
	n, _ := st.Stream(buf)

	peak := 0.0
	for i := 0; i < n; i++ {
		peak = math.Max(peak, math.Abs(buf[i][0]))
		if buf[i][0] != buf[i][1] {
			t.Fatalf("channels differ at sample %d", i)
		}
	}
	if peak > catchPeak+1e-9 {
		t.Errorf("peak = %v, expected at most %v", peak, catchPeak)
	}
	if peak < catchPeak/2 {
		t.Errorf("peak = %v, tone is too quiet", peak)
	}

	tail := 0.0
	for i := n - 10; i < n; i++ {
		tail = math.Max(tail, math.Abs(buf[i][0]))
	}
	if tail > 0.01 {
		t.Errorf("tail level = %v, expected the tone to fade out", tail)
	}
}

func TestCatchToneShape(t *testing.T) {
	if catchPeak != 0.12 || catchFloor != 0.0001 {
		t.Errorf("peak/floor = %v/%v, expected 0.12/0.0001", catchPeak, catchFloor)
	}
	if catchAttack != 10*time.Millisecond || catchDecayEnd != 220*time.Millisecond || catchDuration != 250*time.Millisecond {
		t.Errorf("attack/decay end/duration = %v/%v/%v, expected 10ms/220ms/250ms",
			catchAttack, catchDecayEnd, catchDuration)
	}
}

func TestEnvelopeGain(t *testing.T) {
	// One sample per millisecond
	e := newExpEnvelope(nil, 10, 220, 250)

	tests := []struct {
		pos  int
		want float64
	}{
		{0, 0.0001},
		{10, 0.12},
		{220, 0.0001},
		{240, 0.0001},
		{500, 0.0001},
	}
	for _, tc := range tests {
		if got := e.gain(tc.pos); math.Abs(got-tc.want) > 1e-9 {
			t.Errorf("gain(%d) = %v, expected %v", tc.pos, got, tc.want)
		}
	}

	if e.gain(5) <= e.gain(0) || e.gain(100) >= e.gain(10) || e.gain(200) >= e.gain(100) {
		t.Error("gain should rise during attack and fall during decay")
	}
}

func TestSilentPlayer(t *testing.T) {
	var p Silent
	p.Play(CueCatch)
	p.SetMuted(true)
	p.Play(CueCatch)

	if !p.Muted() {
		t.Error("Muted() should be true")
	}
	if got := p.Played(); len(got) != 1 || got[0] != CueCatch {
		t.Errorf("Played() = %v, expected one catch cue", got)
	}
}
