// SPDX-License-Identifier: MIT
// Package: randlab/sequence
//
// generate.go — the shared driver over every Generator.

package sequence

import "math"

// zeroRunLength is the number of consecutive middle-square zeros treated as
// the absorbing state.
const zeroRunLength = 3

// normalizedPrecision is the decimal scale used when rounding normalized
// values (three decimals).
const normalizedPrecision = 1000.0

// Generate runs method from p.Seed until the sequence stops and returns the
// emitted values, their normalized form and summary statistics.
//
// Stop rules:
//   - a value already emitted reappears   → StopRepeated (value not re-emitted)
//   - middle-square emits three zeros in a row → StopZeroRun
//   - the iteration limit is reached       → StopIterationLimit
//
// Middle-square zeros are exempt from the cycle check until the zero run
// completes, so the absorbing state is reported as such rather than as an
// ordinary repeat.
//
// Errors: ErrInvalidParameter, ErrUnsupportedMethod (before any generation).
func Generate(method Method, p Params, opts ...Option) (*Result, error) {
	g, err := NewGenerator(method, p)
	if err != nil {
		return nil, err
	}

	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	return run(g, p.Seed, o.limitFor(method)), nil
}

// run is the driver loop. limit == 0 means no cap.
func run(g *Generator, seed int64, limit int) *Result {
	var (
		values   []int64
		seen     = make(map[int64]struct{})
		zeroRun  int
		reason   StopReason
		repeated int64
		current  = seed
		trackZ   = g.method == MiddleSquare
	)

	for {
		if limit > 0 && len(values) >= limit {
			reason = StopIterationLimit
			break
		}

		if trackZ && current == 0 {
			zeroRun++
		} else {
			zeroRun = 0
			if _, dup := seen[current]; dup {
				reason = StopRepeated
				repeated = current
				break
			}
		}

		seen[current] = struct{}{}
		values = append(values, current)

		if trackZ && zeroRun >= zeroRunLength {
			reason = StopZeroRun
			break
		}

		current = g.Next(current)
	}

	return &Result{
		Method:     g.method,
		Values:     values,
		Normalized: normalize(values, g.Divisor()),
		Stats:      summarize(values, len(seen), reason, repeated),
	}
}

// normalize divides every value by divisor and rounds to three decimals.
func normalize(values []int64, divisor int64) []float64 {
	out := make([]float64, len(values))
	d := float64(divisor)
	for i, v := range values {
		out[i] = math.Round(float64(v)/d*normalizedPrecision) / normalizedPrecision
	}

	return out
}

// summarize derives Stats from a non-empty emitted sequence.
func summarize(values []int64, distinct int, reason StopReason, repeated int64) Stats {
	st := Stats{
		Count:         len(values),
		Period:        distinct,
		StoppedReason: reason,
		RepeatedValue: repeated,
	}
	if len(values) == 0 {
		return st
	}

	st.Min, st.Max = values[0], values[0]
	var sum float64
	for _, v := range values {
		if v < st.Min {
			st.Min = v
		}
		if v > st.Max {
			st.Max = v
		}
		sum += float64(v)
	}
	st.Mean = sum / float64(len(values))

	return st
}
