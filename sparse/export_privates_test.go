// SPDX-License-Identifier: MIT

package sparse

// Test-Bridge (White-Box) for private kernels.
//
// Purpose:
//   - Expose the merge-join kernel and option internals to sparse_test ONLY.
//   - Compiled with the test binary (file name ends in _test.go), invisible
//     in production builds.

// MergeDotFloat64_TestOnly forwards to the private mergeDot kernel.
func MergeDotFloat64_TestOnly(ring Semiring[float64], ai []int, av []float64, bi []int, bv []float64) (float64, bool) {
	return mergeDot(ring, ai, av, bi, bv)
}

// GatherOptions_TestOnly resolves user options on top of the defaults.
func GatherOptions_TestOnly(user ...Option) Options {
	return gatherOptions(defaultOptions(), user...)
}

// Panic message exports to avoid "magic strings" in tests.
const PanicDuplicatePolicyInvalid_TestOnly = panicDuplicatePolicyInvalid
