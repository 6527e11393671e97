// SPDX-License-Identifier: MIT

// Package sparse: functional configuration for stores and the operations
// derived from them. This file defines:
//   - Option / Options (functional options with internal state),
//   - documented defaults (constants),
//   - WithX constructors with strong validation (panic on nonsensical values),
//   - gatherOptions helper (internal).
//
// Design goals:
//   - Deterministic behavior: no global state.
//   - No dead switches: each flag changes behavior and is covered by tests.
//   - Options travel with a Store: stores derived from it (Multiply result,
//     Transpose, Insert) inherit the same resolved Options.
package sparse

import "fmt"

// DuplicatePolicy decides what happens when two entries share a (row, col).
type DuplicatePolicy uint8

const (
	// DuplicateSum folds colliding values with the semiring Add.
	DuplicateSum DuplicatePolicy = iota
	// DuplicateOverwrite keeps the value that came last in input order.
	DuplicateOverwrite
	// DuplicateReject fails the operation with ErrDuplicateEntry.
	DuplicateReject
)

// String returns the lower-case policy name.
func (p DuplicatePolicy) String() string {
	switch p {
	case DuplicateSum:
		return "sum"
	case DuplicateOverwrite:
		return "overwrite"
	case DuplicateReject:
		return "reject"
	default:
		return fmt.Sprintf("DuplicatePolicy(%d)", uint8(p))
	}
}

// ---------- Defaults (single source of truth) ----------

const (
	// DefaultDuplicatePolicy merges duplicates by summing them.
	DefaultDuplicatePolicy = DuplicateSum

	// DefaultValidate leaves construction unchecked; FromSortedEntries trusts
	// its caller, exactly as the compression pass requires.
	DefaultValidate = false

	// DefaultPruneZeroSums keeps cells that Add summed to zero.
	DefaultPruneZeroSums = false
)

const panicDuplicatePolicyInvalid = "sparse: WithDuplicatePolicy: unknown policy"

// Option mutates internal options. Safe to apply repeatedly.
type Option func(*Options)

// Options stores the effective configuration after applying Option setters.
// Fields are unexported; public entry points accept ...Option.
type Options struct {
	dup           DuplicatePolicy // DefaultDuplicatePolicy
	validate      bool            // DefaultValidate
	pruneZeroSums bool            // DefaultPruneZeroSums
}

// WithDuplicatePolicy selects how Insert, Append and FromEntries treat
// repeated coordinates.
//
// Behavior highlights:
//   - Panics with a stable message on an unknown policy (programmer error).
//
// Complexity:
//   - Time O(1), Space O(1).
func WithDuplicatePolicy(p DuplicatePolicy) Option {
	if p > DuplicateReject {
		panic(panicDuplicatePolicyInvalid)
	}

	return func(o *Options) { o.dup = p }
}

// WithValidation makes FromSortedEntries check its precondition (sorted,
// duplicate-free entries) before compressing. O(n) extra per construction.
//
// AI-Hints:
//   - Enable while ingesting foreign data; keep off in hot rebuild paths.
func WithValidation() Option {
	return func(o *Options) { o.validate = true }
}

// WithPruneZeroSums makes Add drop cells whose sum is exactly zero.
func WithPruneZeroSums() Option {
	return func(o *Options) { o.pruneZeroSums = true }
}

// DuplicatePolicy reports the resolved duplicate policy.
func (o Options) DuplicatePolicy() DuplicatePolicy { return o.dup }

// Validate reports whether construction-time validation is enabled.
func (o Options) Validate() bool { return o.validate }

// PruneZeroSums reports whether Add drops zero sums.
func (o Options) PruneZeroSums() bool { return o.pruneZeroSums }

// defaultOptions returns the documented defaults.
func defaultOptions() Options {
	return Options{
		dup:           DefaultDuplicatePolicy,
		validate:      DefaultValidate,
		pruneZeroSums: DefaultPruneZeroSums,
	}
}

// gatherOptions applies user setters on top of base in order
// (last-writer-wins) and returns the resolved configuration.
func gatherOptions(base Options, user ...Option) Options {
	o := base
	for _, set := range user {
		set(&o)
	}

	return o
}
