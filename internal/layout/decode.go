package layout

import (
	"encoding/binary"
	"encoding/hex"
	"errors"
	"fmt"
	"strconv"

	"github.com/google/uuid"
	"github.com/gstoney/advance"
	"github.com/gstoney/advance/packet"
)

var ErrInvalidBool = errors.New("invalid byte for bool field")

// DecodeError reports the field that failed to decode and where it started.
type DecodeError struct {
	Field  string
	Offset int
	Err    error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("field %q at offset %d: %v", e.Field, e.Offset, e.Err)
}

func (e *DecodeError) Unwrap() error {
	return e.Err
}

// Value is one decoded field. Raw aliases the decoded buffer.
type Value struct {
	Name   string
	Kind   Kind
	Offset int
	Raw    []byte

	// V holds uint64, int64, bool, uuid.UUID, string or []byte.
	V any
}

func (v Value) String() string {
	switch x := v.V.(type) {
	case []byte:
		return hex.EncodeToString(x)
	case string:
		return strconv.Quote(x)
	default:
		return fmt.Sprint(x)
	}
}

// Decode decodes one record from the front of buf and returns the decoded
// fields and the unread rest of buf. Skip fields are consumed but not
// returned.
func (l *Layout) Decode(buf []byte) (values []Value, rest []byte, err error) {
	order := l.order
	if order == nil {
		order = binary.BigEndian
	}

	s := advance.Slice[byte](buf)
	ints := make(map[string]int64)

	for _, f := range l.Fields {
		offset := len(buf) - s.Len()

		var v any
		if v, err = decodeField(&s, f, order, ints); err != nil {
			return nil, buf, &DecodeError{Field: f.Name, Offset: offset, Err: err}
		}

		switch x := v.(type) {
		case uint64:
			ints[f.Name] = int64(x)
		case int64:
			ints[f.Name] = x
		}

		if f.Kind == Skip {
			continue
		}
		values = append(values, Value{
			Name:   f.Name,
			Kind:   f.Kind,
			Offset: offset,
			Raw:    buf[offset : len(buf)-s.Len()],
			V:      v,
		})
	}

	return values, s, nil
}

func decodeField(s *advance.Slice[byte], f Field, order binary.ByteOrder, ints map[string]int64) (any, error) {
	switch f.Kind {
	case U8, I8, Bool:
		b, err := advance.TryAdvanceArray[[1]byte](s)
		if err != nil {
			return nil, err
		}
		switch f.Kind {
		case U8:
			return uint64(b[0]), nil
		case I8:
			return int64(int8(b[0])), nil
		}
		if b[0] > 1 {
			return nil, ErrInvalidBool
		}
		return b[0] == 1, nil

	case U16, I16:
		b, err := advance.TryAdvanceArray[[2]byte](s)
		if err != nil {
			return nil, err
		}
		v := order.Uint16(b[:])
		if f.Kind == I16 {
			return int64(int16(v)), nil
		}
		return uint64(v), nil

	case U32, I32:
		b, err := advance.TryAdvanceArray[[4]byte](s)
		if err != nil {
			return nil, err
		}
		v := order.Uint32(b[:])
		if f.Kind == I32 {
			return int64(int32(v)), nil
		}
		return uint64(v), nil

	case U64, I64:
		b, err := advance.TryAdvanceArray[[8]byte](s)
		if err != nil {
			return nil, err
		}
		v := order.Uint64(b[:])
		if f.Kind == I64 {
			return int64(v), nil
		}
		return v, nil

	case UUID:
		id, err := advance.TryAdvanceArray[uuid.UUID](s)
		if err != nil {
			return nil, err
		}
		return *id, nil

	case VarInt:
		r := packet.NewReader(*s)
		v, err := packet.ReadVarInt(&r)
		if err != nil {
			return nil, err
		}
		*s = r.Bytes()
		return int64(v), nil

	case Bytes, String, Skip:
		n := f.Len
		if f.LenFrom != "" {
			src := ints[f.LenFrom]
			if src < 0 || src > int64(^uint(0)>>1) {
				return nil, fmt.Errorf("%w: %s = %d", ErrBadLength, f.LenFrom, src)
			}
			n = int(src)
		}

		b, err := advance.TryAdvance(s, n)
		if err != nil {
			return nil, err
		}
		if f.Kind == String {
			return string(b), nil
		}
		return []byte(b), nil
	}

	return nil, fmt.Errorf("%w: %q", ErrUnknownKind, f.Kind)
}
