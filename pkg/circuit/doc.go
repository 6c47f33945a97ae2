// Package circuit computes the closed-form step response of a series
// RC circuit. It contains:
//
//   - Parameters: one circuit configuration (R, C, U0, mode)
//   - Waveform: the sampled voltage/charge/current series in display units
//   - Compute / At: the analytic evaluation, total for all R, C > 0
//
// Everything here is a pure transform: equal inputs always produce
// equal outputs, nothing is retained between calls, and no I/O happens.
// The HTTP API, CLI and config packages all share these types so the
// JSON contracts stay consistent.
package circuit
