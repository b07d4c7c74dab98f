package advance

import (
	"fmt"
	"reflect"
)

// Length is implemented by views that can report their element count.
type Length interface {
	Len() int
}

// IsEmpty reports whether l holds no elements.
func IsEmpty(l Length) bool {
	return l.Len() == 0
}

// Len returns the number of elements in the view s.
func Len[S ~[]E, E any](s S) int {
	return len(s)
}

// ArrayLen returns the declared size of the array type A.
// The result comes from the type, so it is the same for every value of A.
func ArrayLen[A any]() int {
	t := reflect.TypeFor[A]()
	if t.Kind() != reflect.Array {
		panic(fmt.Sprintf("advance: %v is not an array type", t))
	}
	return t.Len()
}
