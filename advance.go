package advance

import "fmt"

// AdvanceUnchecked moves the handle s forward by amount and returns the
// elements it moved over.
//
// The caller must guarantee 0 <= amount <= len(*s). The slice bounds are
// still enforced by the runtime, so a broken guarantee panics.
func AdvanceUnchecked[S ~[]E, E any](s *S, amount int) S {
	cur := *s
	*s = cur[amount:]
	// Cap the head so appending to it can never write into the tail.
	return cur[:amount:amount]
}

// Advance moves the handle s forward by amount and returns the elements it
// moved over. It panics if amount is negative or larger than len(*s).
func Advance[S ~[]E, E any](s *S, amount int) S {
	if amount < 0 || amount > len(*s) {
		panic(fmt.Sprintf("advance: amount %d out of range [0:%d]", amount, len(*s)))
	}
	return AdvanceUnchecked(s, amount)
}

// TryAdvance moves the handle s forward by amount and returns the elements
// it moved over. If amount is larger than len(*s), it returns a
// *NotEnoughDataError and leaves s unmodified.
//
// TryAdvance does not panic for any amount >= 0, including amounts far
// beyond len(*s). A negative amount is a programming error and panics, so
// callers that take amount from decoded input, such as a length prefix,
// must reject negative values before calling.
func TryAdvance[S ~[]E, E any](s *S, amount int) (S, error) {
	if amount < 0 {
		panic(fmt.Sprintf("advance: negative amount %d", amount))
	}
	if amount > len(*s) {
		return nil, &NotEnoughDataError{
			Needed:    amount,
			Remaining: len(*s),
		}
	}
	return AdvanceUnchecked(s, amount), nil
}
