// Package synth searches for symbolic interval-bound values that make a
// refined formula's negation robust-negative on some trace in a batch
// — i.e. that exhibit a trace satisfying the refined formula itself.
// It dispatches on the number of symbolic bounds in play: zero bounds
// evaluate once (EvaluateDirect), one bound runs a grid search, and two
// or more bounds run a covariance-free evolution-strategy search.
package synth
