package advance

import (
	"errors"
	"fmt"
)

// ErrNotEnoughData matches every *NotEnoughDataError under errors.Is.
var ErrNotEnoughData = errors.New("not enough data")

// NotEnoughDataError is returned when an advance asks for more elements
// than the handle holds. The handle is left untouched.
type NotEnoughDataError struct {
	Needed    int
	Remaining int
}

func (e *NotEnoughDataError) Error() string {
	return fmt.Sprintf("not enough data, needed: %d, remaining: %d", e.Needed, e.Remaining)
}

func (e *NotEnoughDataError) Is(target error) bool {
	return target == ErrNotEnoughData
}

// Missing returns how many more elements would satisfy the request.
func (e *NotEnoughDataError) Missing() int {
	return e.Needed - e.Remaining
}
