// Package analyzer holds the statistical analyzers that turn raw study
// telemetry into per-user findings. Each analyzer is stateless, reads
// through telemetry.Repository, and returns a typed result with a scalar
// confidence. Analyzers never fail on empty data; they return their
// documented defaults with confidence 0.
package analyzer

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func mean(vs []float64) float64 {
	if len(vs) == 0 {
		return 0
	}
	sum := 0.0
	for _, v := range vs {
		sum += v
	}
	return sum / float64(len(vs))
}

// sampleConfidence maps a sample count onto [0,1] against a saturation size.
func sampleConfidence(n, saturation int) float64 {
	if saturation <= 0 {
		return 0
	}
	return clamp(float64(n)/float64(saturation), 0, 1)
}
