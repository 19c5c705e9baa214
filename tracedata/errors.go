package tracedata

import "errors"

var (
	// ErrShapeMismatch indicates data whose length does not match the
	// declared (NumTraces, Timesteps, SignalDims) shape.
	ErrShapeMismatch = errors.New("tracedata: data length does not match declared shape")

	// ErrEmptyBatch indicates a batch with a zero dimension.
	ErrEmptyBatch = errors.New("tracedata: batch has a zero dimension")

	// ErrUnsupportedExtension indicates a file extension Load does not
	// know how to dispatch.
	ErrUnsupportedExtension = errors.New("tracedata: unsupported file extension")

	// ErrMalformedSource indicates a source file that could not be
	// decoded into a well-formed trace tensor (wrong rank, ragged rows).
	ErrMalformedSource = errors.New("tracedata: malformed trace source")
)
