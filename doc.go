// Package advance provides a zero-copy cursor over contiguous slices.
//
// A cursor handle is a pointer to a slice. Each advance splits the slice at
// the requested amount, rebinds the handle to the remaining suffix and
// returns the consumed prefix. Element data is never copied; both views
// alias the original storage at disjoint ranges.
//
// Three strictness tiers exist for both the runtime-sized and the
// array-sized forms:
//
//	AdvanceUnchecked / AdvanceArrayUnchecked  caller guarantees the length
//	Advance          / AdvanceArray           panics on a short handle
//	TryAdvance       / TryAdvanceArray        returns *NotEnoughDataError
//
// TryAdvance and TryAdvanceArray never modify the handle when they fail, so
// a caller may append more input and retry.
package advance
