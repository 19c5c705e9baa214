package tracedata

import (
	"math"
	"math/rand"
)

// FixtureOptions controls the synthetic trace generators below. Every
// generator is deterministic for a fixed (seed, FixtureOptions) pair and
// takes its entropy source explicitly rather than reading global state.
type FixtureOptions struct {
	NumTraces  int
	Timesteps  int
	SignalDims int
	Amplitude  float64
	BaseFreq   float64 // cycles per sample
	NoiseSigma float64 // Gaussian noise stddev, 0 disables
	Trend      float64 // linear drift added per sample
}

// DefaultFixtureOptions returns a small, fast-to-evaluate batch shape
// suitable for unit tests and CLI smoke runs.
func DefaultFixtureOptions() FixtureOptions {
	return FixtureOptions{
		NumTraces:  10,
		Timesteps:  64,
		SignalDims: 1,
		Amplitude:  1.0,
		BaseFreq:   0.05,
		NoiseSigma: 0.02,
		Trend:      0,
	}
}

// GeneratePulseBatch synthesizes a batch of rectangular-pulse signals,
// one independent noisy realization per trace, every signal dimension
// offset by its index so multi-dimensional batches aren't degenerate.
func GeneratePulseBatch(seed int64, opts FixtureOptions) (Batch, error) {
	rng := rand.New(rand.NewSource(seed))
	data := make([]float64, 0, opts.NumTraces*opts.Timesteps*opts.SignalDims)
	for range make([]struct{}, opts.NumTraces) {
		for i := 0; i < opts.Timesteps; i++ {
			frac := math.Mod(float64(i)*opts.BaseFreq, 1)
			base := opts.Amplitude
			if frac >= 0.5 {
				base = -opts.Amplitude
			}
			base += opts.Trend * float64(i)
			for s := 0; s < opts.SignalDims; s++ {
				v := base + float64(s) + rng.NormFloat64()*opts.NoiseSigma
				data = append(data, v)
			}
		}
	}
	return NewBatch(data, opts.NumTraces, opts.Timesteps, opts.SignalDims)
}

// GenerateChirpBatch synthesizes a batch of linear frequency-sweep
// signals (f0 at t=0 ramping to f1 at the final timestep).
func GenerateChirpBatch(seed int64, f0, f1 float64, opts FixtureOptions) (Batch, error) {
	rng := rand.New(rand.NewSource(seed))
	data := make([]float64, 0, opts.NumTraces*opts.Timesteps*opts.SignalDims)
	theta := 0.0
	for range make([]struct{}, opts.NumTraces) {
		theta = 0.0
		for i := 0; i < opts.Timesteps; i++ {
			frac := float64(i) / float64(maxInt(opts.Timesteps-1, 1))
			freq := f0 + (f1-f0)*frac
			theta += 2 * math.Pi * freq
			base := opts.Amplitude*math.Sin(theta) + opts.Trend*float64(i)
			for s := 0; s < opts.SignalDims; s++ {
				v := base + float64(s) + rng.NormFloat64()*opts.NoiseSigma
				data = append(data, v)
			}
		}
	}
	return NewBatch(data, opts.NumTraces, opts.Timesteps, opts.SignalDims)
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}
