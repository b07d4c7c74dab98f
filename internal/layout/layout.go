// Package layout decodes binary records described by a TOML document.
//
// A layout lists fields in wire order:
//
//	byte_order = "big"
//
//	[[field]]
//	name = "magic"
//	kind = "u32"
//
//	[[field]]
//	name = "size"
//	kind = "u16"
//
//	[[field]]
//	name = "body"
//	kind = "bytes"
//	len_from = "size"
package layout

import (
	"encoding/binary"
	"errors"
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
)

type Kind string

const (
	U8     Kind = "u8"
	U16    Kind = "u16"
	U32    Kind = "u32"
	U64    Kind = "u64"
	I8     Kind = "i8"
	I16    Kind = "i16"
	I32    Kind = "i32"
	I64    Kind = "i64"
	Bool   Kind = "bool"
	UUID   Kind = "uuid"
	VarInt Kind = "varint"
	Bytes  Kind = "bytes"
	String Kind = "string"
	Skip   Kind = "skip"
)

// sized reports whether values of k take a length from len or len_from.
func (k Kind) sized() bool {
	return k == Bytes || k == String || k == Skip
}

// integer reports whether values of k can serve as a len_from source.
func (k Kind) integer() bool {
	switch k {
	case U8, U16, U32, U64, I8, I16, I32, I64, VarInt:
		return true
	}
	return false
}

func (k Kind) known() bool {
	return k.sized() || k.integer() || k == Bool || k == UUID
}

var (
	ErrUnknownKind      = errors.New("unknown field kind")
	ErrUnknownByteOrder = errors.New("unknown byte order")
	ErrDuplicateField   = errors.New("duplicate field name")
	ErrMissingName      = errors.New("field has no name")
	ErrBadLength        = errors.New("invalid field length")
	ErrUndefinedSource  = errors.New("len_from does not name an earlier integer field")
	ErrNoFields         = errors.New("layout has no fields")
)

type Field struct {
	Name    string `toml:"name"`
	Kind    Kind   `toml:"kind"`
	Len     int    `toml:"len"`
	LenFrom string `toml:"len_from"`
}

type Layout struct {
	ByteOrder string  `toml:"byte_order"`
	Fields    []Field `toml:"field"`

	order binary.ByteOrder
}

// Parse decodes and validates a TOML layout document.
func Parse(data []byte) (*Layout, error) {
	var l Layout
	md, err := toml.Decode(string(data), &l)
	if err != nil {
		return nil, err
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return nil, fmt.Errorf("unknown layout key %q", undecoded[0].String())
	}

	if err := l.validate(); err != nil {
		return nil, err
	}
	return &l, nil
}

// Load reads and parses the layout file at path.
func Load(path string) (*Layout, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	l, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return l, nil
}

func (l *Layout) validate() error {
	switch l.ByteOrder {
	case "", "big":
		l.order = binary.BigEndian
	case "little":
		l.order = binary.LittleEndian
	default:
		return fmt.Errorf("%w: %q", ErrUnknownByteOrder, l.ByteOrder)
	}

	if len(l.Fields) == 0 {
		return ErrNoFields
	}

	seen := make(map[string]Kind, len(l.Fields))
	for i, f := range l.Fields {
		if f.Name == "" {
			return fmt.Errorf("field %d: %w", i, ErrMissingName)
		}
		if _, ok := seen[f.Name]; ok {
			return fmt.Errorf("field %q: %w", f.Name, ErrDuplicateField)
		}
		if !f.Kind.known() {
			return fmt.Errorf("field %q: %w: %q", f.Name, ErrUnknownKind, f.Kind)
		}

		if f.Kind.sized() {
			if f.Len < 0 || (f.Len > 0 && f.LenFrom != "") {
				return fmt.Errorf("field %q: %w", f.Name, ErrBadLength)
			}
			if f.LenFrom != "" && !seen[f.LenFrom].integer() {
				return fmt.Errorf("field %q: %w: %q", f.Name, ErrUndefinedSource, f.LenFrom)
			}
		} else if f.Len != 0 || f.LenFrom != "" {
			return fmt.Errorf("field %q: %w: %s has a fixed size", f.Name, ErrBadLength, f.Kind)
		}

		seen[f.Name] = f.Kind
	}
	return nil
}
