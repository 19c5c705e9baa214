package tracedata

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// FromCSV decodes a single 2-D trace (rows are timesteps, columns are
// signal dimensions) and promotes it to a singleton one-trace batch.
func FromCSV(r io.Reader) (Batch, error) {
	cr := csv.NewReader(r)
	cr.TrimLeadingSpace = true
	records, err := cr.ReadAll()
	if err != nil {
		return Batch{}, fmt.Errorf("%w: %v", ErrMalformedSource, err)
	}
	if len(records) == 0 {
		return Batch{}, ErrEmptyBatch
	}

	signalDims := len(records[0])
	data := make([]float64, 0, len(records)*signalDims)
	for i, row := range records {
		if len(row) != signalDims {
			return Batch{}, fmt.Errorf("%w: row %d has %d columns, want %d", ErrMalformedSource, i, len(row), signalDims)
		}
		for _, cell := range row {
			v, err := strconv.ParseFloat(strings.TrimSpace(cell), 64)
			if err != nil {
				return Batch{}, fmt.Errorf("%w: %v", ErrMalformedSource, err)
			}
			data = append(data, v)
		}
	}
	return NewBatch(data, 1, len(records), signalDims)
}
