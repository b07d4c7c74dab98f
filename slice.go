package advance

// Advancer is the capability set shared by cursor handles: report a length
// and split off a prefix of the returned view type S.
type Advancer[S any] interface {
	Length
	Advance(amount int) S
	TryAdvance(amount int) (S, error)
}

// Slice is a cursor handle over contiguous elements of type E.
//
// The zero value is an empty handle. A *Slice[E] implements
// Advancer[Slice[E]]; the package-level functions accept a *Slice[E] as
// well, which is how array-sized advances are made:
//
//	var s advance.Slice[byte] = buf
//	hdr := advance.AdvanceArray[[4]byte](&s)
type Slice[E any] []E

func (s Slice[E]) Len() int {
	return len(s)
}

func (s Slice[E]) IsEmpty() bool {
	return len(s) == 0
}

// Advance is the method form of the package-level Advance.
func (s *Slice[E]) Advance(amount int) Slice[E] {
	return Advance(s, amount)
}

// TryAdvance is the method form of the package-level TryAdvance.
func (s *Slice[E]) TryAdvance(amount int) (Slice[E], error) {
	return TryAdvance(s, amount)
}

// AdvanceUnchecked is the method form of the package-level AdvanceUnchecked.
func (s *Slice[E]) AdvanceUnchecked(amount int) Slice[E] {
	return AdvanceUnchecked(s, amount)
}
