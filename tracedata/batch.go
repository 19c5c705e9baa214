package tracedata

import "fmt"

// Batch is a dense (NumTraces, Timesteps, SignalDims) tensor backed by one
// flat slice in row-major (trace, time, signal) order. It is immutable
// for the lifetime of a classification run.
type Batch struct {
	Data        []float64
	NumTraces   int
	Timesteps   int
	SignalDims  int
}

// NewBatch wraps data with the given shape, validating that len(data)
// equals the product of the three dimensions and that no dimension is
// zero.
func NewBatch(data []float64, numTraces, timesteps, signalDims int) (Batch, error) {
	if numTraces <= 0 || timesteps <= 0 || signalDims <= 0 {
		return Batch{}, ErrEmptyBatch
	}
	want := numTraces * timesteps * signalDims
	if len(data) != want {
		return Batch{}, fmt.Errorf("%w: got %d, want %d for shape (%d,%d,%d)",
			ErrShapeMismatch, len(data), want, numTraces, timesteps, signalDims)
	}
	return Batch{Data: data, NumTraces: numTraces, Timesteps: timesteps, SignalDims: signalDims}, nil
}

// At returns the signal value for trace, timestep, signal.
func (b Batch) At(trace, timestep, signal int) float64 {
	return b.Data[(trace*b.Timesteps+timestep)*b.SignalDims+signal]
}

// Trace returns the flat (Timesteps*SignalDims) slice for one trace,
// still strided as (timestep, signal) — a view, not a copy.
func (b Batch) Trace(trace int) []float64 {
	start := trace * b.Timesteps * b.SignalDims
	return b.Data[start : start+b.Timesteps*b.SignalDims]
}
