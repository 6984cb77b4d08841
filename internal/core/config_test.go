package core

import (
	"testing"
	"time"
)

func TestRuntimeConfigTickInterval(t *testing.T) {
	tests := []struct {
		rate int
		want time.Duration
	}{
		{60, time.Second / 60},
		{30, time.Second / 30},
		{0, time.Second / DefaultTickRate},
		{-5, time.Second / DefaultTickRate},
	}

	for _, tc := range tests {
		cfg := RuntimeConfig{TickRate: tc.rate}
		if got := cfg.TickInterval(); got != tc.want {
			t.Errorf("TickRate %d: TickInterval() = %v, expected %v", tc.rate, got, tc.want)
		}
	}
}
