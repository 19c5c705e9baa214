package tracedata

import (
	"encoding/json"
	"fmt"
	"io"
)

// FromJSON decodes a nested [][][]float64 (2-D input is promoted to a
// singleton batch of one trace) into a Batch.
func FromJSON(r io.Reader) (Batch, error) {
	var raw json.RawMessage
	if err := json.NewDecoder(r).Decode(&raw); err != nil {
		return Batch{}, fmt.Errorf("%w: %v", ErrMalformedSource, err)
	}

	var tensor3 [][][]float64
	if err := json.Unmarshal(raw, &tensor3); err == nil {
		return batchFrom3D(tensor3)
	}

	var tensor2 [][]float64
	if err := json.Unmarshal(raw, &tensor2); err != nil {
		return Batch{}, fmt.Errorf("%w: expected [][][]float64 or [][]float64", ErrMalformedSource)
	}
	return batchFrom3D([][][]float64{tensor2})
}

func batchFrom3D(tensor [][][]float64) (Batch, error) {
	if len(tensor) == 0 || len(tensor[0]) == 0 || len(tensor[0][0]) == 0 {
		return Batch{}, ErrEmptyBatch
	}
	numTraces := len(tensor)
	timesteps := len(tensor[0])
	signalDims := len(tensor[0][0])

	data := make([]float64, 0, numTraces*timesteps*signalDims)
	for ti, trace := range tensor {
		if len(trace) != timesteps {
			return Batch{}, fmt.Errorf("%w: trace %d has %d timesteps, want %d", ErrMalformedSource, ti, len(trace), timesteps)
		}
		for si, step := range trace {
			if len(step) != signalDims {
				return Batch{}, fmt.Errorf("%w: trace %d step %d has %d signals, want %d", ErrMalformedSource, ti, si, len(step), signalDims)
			}
			data = append(data, step...)
		}
	}
	return NewBatch(data, numTraces, timesteps, signalDims)
}
