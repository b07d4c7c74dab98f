package packet

import (
	"fmt"
	"io"

	"github.com/gstoney/advance"
)

// Reader decodes fields from a packet payload that is already in memory.
// Every read advances past the bytes it consumed; returned slices alias
// the payload.
type Reader struct {
	buf advance.Slice[byte]
}

func NewReader(buf []byte) Reader {
	return Reader{buf: buf}
}

func (r Reader) Remaining() int {
	return r.buf.Len()
}

// Bytes returns the unread part of the payload without consuming it.
func (r Reader) Bytes() []byte {
	return r.buf
}

func (r *Reader) ReadByte() (byte, error) {
	b, err := readFixed[[1]byte](r)
	if err != nil {
		return 0, err
	}
	return b[0], nil
}

// Read consumes the next n bytes.
func (r *Reader) Read(n int) ([]byte, error) {
	if n < 0 {
		return nil, ErrNegativeLength
	}
	b, err := r.buf.TryAdvance(n)
	if err != nil {
		return nil, shortRead(err)
	}
	return b, nil
}

func readFixed[A any](r *Reader) (*A, error) {
	a, err := advance.TryAdvanceArray[A](&r.buf)
	if err != nil {
		return nil, shortRead(err)
	}
	return a, nil
}

func shortRead(err error) error {
	return fmt.Errorf("%w: %w", io.ErrUnexpectedEOF, err)
}
