package pure_test

import (
	"math"
	"testing"

	"github.com/on-the-ground/cie1931/pure"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLuminance_Segments(t *testing.T) {
	tests := []struct {
		name string
		l    float64
		want float64
	}{
		{"black", 0, 0},
		{"white", 100, 1},
		{"threshold is linear", 8, 8 / 903.3},
		{"just above threshold", 8.5, math.Pow((8.5+16)/116, 3)},
		{"mid", 50, math.Pow(66.0/116.0, 3)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, pure.Luminance(tt.l), 1e-12)
		})
	}
}

func TestLuminance_ContinuousAtThreshold(t *testing.T) {
	below := pure.Luminance(8)
	above := pure.Luminance(8 + 1e-9)
	assert.InDelta(t, below, above, 1e-5)
}

func TestLightness_ReferenceScenario(t *testing.T) {
	assert.Equal(t, uint64(0), pure.Lightness(0, 1000, 255))
	assert.Equal(t, uint64(2), pure.Lightness(80, 1000, 255))
	assert.Equal(t, uint64(255), pure.Lightness(1000, 1000, 255))
}

func TestLightness_ClampsInput(t *testing.T) {
	assert.Equal(t, pure.Lightness(1000, 1000, 255), pure.Lightness(5000, 1000, 255))
}

func TestLightness_MonotonicAndBounded(t *testing.T) {
	cases := []struct {
		inputMax  uint
		outputMax uint64
	}{
		{1, 1},
		{255, 255},
		{1000, 255},
		{1023, 4095},
		{100, 100000},
		{32, 1 << 40},
	}

	for _, c := range cases {
		prev := uint64(0)
		for i := uint(0); i <= c.inputMax; i++ {
			v := pure.Lightness(i, c.inputMax, c.outputMax)
			require.GreaterOrEqualf(t, v, prev, "%d/%d at %d", c.inputMax, c.outputMax, i)
			require.LessOrEqual(t, v, c.outputMax)
			prev = v
		}
		assert.Equal(t, uint64(0), pure.Lightness(0, c.inputMax, c.outputMax))
		assert.Equal(t, c.outputMax, pure.Lightness(c.inputMax, c.inputMax, c.outputMax))
	}
}

func TestLightness_Deterministic(t *testing.T) {
	first := pure.TabulateUpTo(1000, func(i uint) uint64 { return pure.Lightness(i, 1000, 255) })
	second := pure.TabulateUpTo(1000, func(i uint) uint64 { return pure.Lightness(i, 1000, 255) })
	assert.Equal(t, first, second)
}

func TestLightness_ZeroDomainPanics(t *testing.T) {
	defer func() {
		if r := recover(); r == nil {
			t.Errorf("expected panic on zero inputMax, but didn't panic")
		}
	}()
	pure.Lightness(0, 0, 255)
}
