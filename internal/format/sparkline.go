package format

import "math"

// sparklineChars maps levels 0..7 to Unicode block elements ▁▂▃▄▅▆▇█.
var sparklineChars = [8]rune{'▁', '▂', '▃', '▄', '▅', '▆', '▇', '█'}

// Sparkline renders CPU samples as Unicode blocks, at most width runes wide.
// Samples are scaled against max(100, peak) since a multi-threaded workload
// reports more than 100%. Longer series are downsampled by averaging
// consecutive buckets.
func Sparkline(samples []float64, width int) string {
	if len(samples) == 0 || width <= 0 {
		return ""
	}
	values := downsample(samples, width)

	top := 100.0
	for _, v := range values {
		top = math.Max(top, v)
	}

	runes := make([]rune, len(values))
	for i, v := range values {
		v = math.Max(v, 0)
		idx := int(v / top * 7.0)
		runes[i] = sparklineChars[min(idx, 7)]
	}
	return string(runes)
}

func downsample(samples []float64, width int) []float64 {
	if len(samples) <= width {
		return samples
	}
	out := make([]float64, width)
	for i := range out {
		lo := i * len(samples) / width
		hi := (i + 1) * len(samples) / width
		var sum float64
		for _, v := range samples[lo:hi] {
			sum += v
		}
		out[i] = sum / float64(hi-lo)
	}
	return out
}
