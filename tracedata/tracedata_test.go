package tracedata

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNewBatchValidatesShape(t *testing.T) {
	_, err := NewBatch([]float64{1, 2, 3}, 1, 2, 2)
	require.ErrorIs(t, err, ErrShapeMismatch)

	_, err = NewBatch([]float64{}, 0, 2, 2)
	require.ErrorIs(t, err, ErrEmptyBatch)
}

func TestBatchAtIndexesRowMajor(t *testing.T) {
	// 2 traces, 2 timesteps, 1 signal: trace0 = [1,2], trace1 = [3,4].
	b, err := NewBatch([]float64{1, 2, 3, 4}, 2, 2, 1)
	require.NoError(t, err)
	require.Equal(t, 1.0, b.At(0, 0, 0))
	require.Equal(t, 2.0, b.At(0, 1, 0))
	require.Equal(t, 3.0, b.At(1, 0, 0))
	require.Equal(t, 4.0, b.At(1, 1, 0))
}

func TestFromJSONPromotes2DToSingletonBatch(t *testing.T) {
	r := strings.NewReader(`[[1,2],[3,4],[5,6]]`)
	b, err := FromJSON(r)
	require.NoError(t, err)
	require.Equal(t, 1, b.NumTraces)
	require.Equal(t, 3, b.Timesteps)
	require.Equal(t, 2, b.SignalDims)
	require.Equal(t, 5.0, b.At(0, 2, 0))
}

func TestFromJSONDecodes3DTensor(t *testing.T) {
	r := strings.NewReader(`[[[1,2],[3,4]],[[5,6],[7,8]]]`)
	b, err := FromJSON(r)
	require.NoError(t, err)
	require.Equal(t, 2, b.NumTraces)
	require.Equal(t, 2, b.Timesteps)
	require.Equal(t, 2, b.SignalDims)
	require.Equal(t, 7.0, b.At(1, 1, 0))
}

func TestFromJSONRejectsRaggedRows(t *testing.T) {
	r := strings.NewReader(`[[1,2],[3]]`)
	_, err := FromJSON(r)
	require.Error(t, err)
}

func TestFromCSVParsesSingleTrace(t *testing.T) {
	r := strings.NewReader("1,2\n3,4\n5,6\n")
	b, err := FromCSV(r)
	require.NoError(t, err)
	require.Equal(t, 1, b.NumTraces)
	require.Equal(t, 3, b.Timesteps)
	require.Equal(t, 2, b.SignalDims)
	require.Equal(t, 6.0, b.At(0, 2, 1))
}

func TestLoadRejectsUnsupportedExtension(t *testing.T) {
	path := filepath.Join(t.TempDir(), "traces.mat")
	require.NoError(t, os.WriteFile(path, []byte{}, 0o600))
	_, err := Load(path)
	require.ErrorIs(t, err, ErrUnsupportedExtension)
}

func TestGeneratePulseBatchIsDeterministic(t *testing.T) {
	opts := DefaultFixtureOptions()
	b1, err := GeneratePulseBatch(42, opts)
	require.NoError(t, err)
	b2, err := GeneratePulseBatch(42, opts)
	require.NoError(t, err)
	require.Equal(t, b1.Data, b2.Data)
}
