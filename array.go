package advance

import (
	"fmt"
	"reflect"
	"unsafe"
)

// AdvanceArrayUnchecked moves the handle s forward by the size of the array
// type A and returns the elements it moved over as a pointer to A. The
// pointer aliases the storage behind s.
//
// A must be an array type whose element type is E, for example [4]byte when
// s is a *[]byte. The caller must guarantee that s holds at least that many
// elements.
func AdvanceArrayUnchecked[A any, S ~[]E, E any](s *S) *A {
	n := arrayLenOf[A, E]()
	return asArray[A, E](AdvanceUnchecked(s, n))
}

// AdvanceArray is like AdvanceArrayUnchecked but panics if s holds fewer
// elements than the size of A.
func AdvanceArray[A any, S ~[]E, E any](s *S) *A {
	n := arrayLenOf[A, E]()
	if n > len(*s) {
		panic(fmt.Sprintf("advance: array size %d out of range [0:%d]", n, len(*s)))
	}
	return asArray[A, E](AdvanceUnchecked(s, n))
}

// TryAdvanceArray is like AdvanceArrayUnchecked but returns a
// *NotEnoughDataError, leaving s unmodified, if s holds fewer elements than
// the size of A.
func TryAdvanceArray[A any, S ~[]E, E any](s *S) (*A, error) {
	n := arrayLenOf[A, E]()
	if n > len(*s) {
		return nil, &NotEnoughDataError{
			Needed:    n,
			Remaining: len(*s),
		}
	}
	return asArray[A, E](AdvanceUnchecked(s, n)), nil
}

// arrayLenOf validates A against E and returns its length. It only reads
// type descriptors and does not allocate.
func arrayLenOf[A, E any]() int {
	t := reflect.TypeFor[A]()
	elem := reflect.TypeFor[E]()
	if t.Kind() != reflect.Array || t.Elem() != elem {
		panic(fmt.Sprintf("advance: %v is not an array of %v", t, elem))
	}
	return t.Len()
}

// asArray reinterprets head as a pointer to its backing array. head must
// hold exactly len(A) elements of A's element type, which arrayLenOf has
// checked.
func asArray[A, E any](head []E) *A {
	if len(head) == 0 {
		// A nil head would convert to a nil pointer.
		return new(A)
	}
	return (*A)(unsafe.Pointer(unsafe.SliceData(head)))
}
