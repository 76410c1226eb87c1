package metrics

import (
	"math"
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
	"github.com/stretchr/testify/assert"
)

func TestSummarizeCPU(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		samples []float64
		want    CPUSummary
	}{
		{"empty", nil, CPUSummary{}},
		{"single", []float64{37.5}, CPUSummary{Count: 1, Mean: 37.5, Peak: 37.5}},
		{"several", []float64{50, 100, 150}, CPUSummary{Count: 3, Mean: 100, StdDev: 50, Peak: 150}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got := SummarizeCPU(tt.samples)
			assert.Equal(t, tt.want.Count, got.Count)
			assert.InDelta(t, tt.want.Mean, got.Mean, 1e-9)
			assert.InDelta(t, tt.want.StdDev, got.StdDev, 1e-9)
			assert.InDelta(t, tt.want.Peak, got.Peak, 1e-9)
		})
	}
}

func TestMemoryDeltaMB(t *testing.T) {
	t.Parallel()
	assert.InDelta(t, 2.0, MemoryDeltaMB(BytesPerMiB, 3*BytesPerMiB), 1e-12)
	assert.InDelta(t, -1.5, MemoryDeltaMB(3*BytesPerMiB, 3*BytesPerMiB/2), 1e-12)
	assert.Zero(t, MemoryDeltaMB(77, 77))
}

func TestSummarizeCPU_MeanWithinBounds(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 200
	properties := gopter.NewProperties(parameters)

	properties.Property("min <= mean <= peak", prop.ForAll(
		func(samples []float64) bool {
			if len(samples) == 0 {
				return SummarizeCPU(samples).Mean == 0
			}
			s := SummarizeCPU(samples)
			lo := math.Inf(1)
			for _, v := range samples {
				lo = math.Min(lo, v)
			}
			return s.Mean >= lo-1e-9 && s.Mean <= s.Peak+1e-9 && s.Count == len(samples)
		},
		gen.SliceOf(gen.Float64Range(0.01, 1600)),
	))

	properties.TestingRun(t)
}
