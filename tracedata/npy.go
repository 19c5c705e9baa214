package tracedata

import (
	"fmt"
	"io"

	"github.com/sbinet/npyio"
)

// FromNPY decodes a NumPy .npy file of rank 2 or 3 into a Batch. A
// rank-2 array is promoted to a singleton one-trace batch, matching
// FromCSV's convention.
func FromNPY(r io.ReadSeeker) (Batch, error) {
	nr, err := npyio.NewReader(r)
	if err != nil {
		return Batch{}, fmt.Errorf("%w: %v", ErrMalformedSource, err)
	}

	shape := nr.Header.Descr.Shape
	var numTraces, timesteps, signalDims int
	switch len(shape) {
	case 3:
		numTraces, timesteps, signalDims = shape[0], shape[1], shape[2]
	case 2:
		numTraces, timesteps, signalDims = 1, shape[0], shape[1]
	default:
		return Batch{}, fmt.Errorf("%w: .npy rank %d not in {2,3}", ErrMalformedSource, len(shape))
	}

	data := make([]float64, numTraces*timesteps*signalDims)
	if err := nr.Read(&data); err != nil {
		return Batch{}, fmt.Errorf("%w: %v", ErrMalformedSource, err)
	}
	return NewBatch(data, numTraces, timesteps, signalDims)
}
