// Package tracedata loads and represents batches of counterexample
// traces: dense (num_traces, timesteps, signal_dims) tensors consumed by
// the robustness kernel. Batch keeps a single flat backing slice rather
// than a [][][]float64 of scattered allocations, so a batch is one
// contiguous block regardless of its shape.
package tracedata
