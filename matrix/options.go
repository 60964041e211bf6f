// SPDX-License-Identifier: MIT

// Package matrix: functional configuration for tolerance comparisons and
// diagnostics formatting. This file defines:
//   - Option / Options (functional options with internal state),
//   - documented defaults (constants),
//   - WithX constructors with strong validation (panic on nonsensical values),
//   - gatherOptions helper (internal) that applies setters over defaults.
//
// Design goals:
//   - Deterministic behavior: no global state.
//   - No dead switches: each flag impacts behavior and is covered by tests.
//   - Safe by construction: panic only on invalid parameters (programmer error).
package matrix

import "math"

// ---------- Defaults (single source of truth) ----------

const (
	// DefaultRelTol is the relative tolerance used by AllClose.
	DefaultRelTol = 1e-9

	// DefaultAbsTol is the absolute tolerance used by AllClose.
	DefaultAbsTol = 1e-12

	// DefaultEqualNaN controls whether AllClose treats NaN == NaN.
	DefaultEqualNaN = false

	// DefaultFormat is the fmt verb applied to each element by Format/String.
	DefaultFormat = "%v"
)

// ---------- Internal panic messages (no magic strings) ----------

const (
	panicRelTolInvalid = "matrix: WithRelTol: tolerance must be finite, non-negative"
	panicAbsTolInvalid = "matrix: WithAbsTol: tolerance must be finite, non-negative"
	panicFormatEmpty   = "matrix: WithFormat: verb must be non-empty"
)

// Option mutates internal options. Safe to apply repeatedly (idempotent).
// Constructors MUST panic only on nonsensical values (programmer error).
type Option func(*Options)

// Options stores the effective configuration after applying Option setters.
// Fields are unexported; public entry points accept `...Option`.
type Options struct {
	rtol     float64 // >= 0; DefaultRelTol
	atol     float64 // >= 0; DefaultAbsTol
	equalNaN bool    // DefaultEqualNaN
	format   string  // DefaultFormat
}

// defaultOptions returns the documented defaults.
func defaultOptions() Options {
	return Options{
		rtol:     DefaultRelTol,
		atol:     DefaultAbsTol,
		equalNaN: DefaultEqualNaN,
		format:   DefaultFormat,
	}
}

// gatherOptions applies opts over the defaults in order (last write wins).
// nil entries are skipped.
func gatherOptions(opts ...Option) Options {
	o := defaultOptions()
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}

	return o
}

// validTol reports whether tol is a finite, non-negative tolerance.
func validTol(tol float64) bool {
	return !math.IsNaN(tol) && !math.IsInf(tol, 0) && tol >= 0
}

// WithRelTol sets the relative tolerance of AllClose.
// Panics if rtol is negative, NaN or ±Inf.
func WithRelTol(rtol float64) Option {
	if !validTol(rtol) {
		panic(panicRelTolInvalid)
	}

	return func(o *Options) { o.rtol = rtol }
}

// WithAbsTol sets the absolute tolerance of AllClose.
// Panics if atol is negative, NaN or ±Inf.
func WithAbsTol(atol float64) Option {
	if !validTol(atol) {
		panic(panicAbsTolInvalid)
	}

	return func(o *Options) { o.atol = atol }
}

// WithEqualNaN makes AllClose treat two NaNs at the same position as equal.
func WithEqualNaN() Option {
	return func(o *Options) { o.equalNaN = true }
}

// WithFormat sets the fmt verb used per element by Format (e.g. "%.3f").
// Panics on an empty verb.
func WithFormat(verb string) Option {
	if verb == "" {
		panic(panicFormatEmpty)
	}

	return func(o *Options) { o.format = verb }
}
