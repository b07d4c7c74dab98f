package packet

import (
	"bytes"
	"errors"
	"io"
	"testing"

	"github.com/gstoney/advance"
)

type TestCase[T any] struct {
	desc      string
	expectErr error
	v         T
	ser       []byte
}

var varintTc = []TestCase[int32]{
	{
		desc: "Zero",
		v:    0,
		ser:  []byte{0x00},
	},
	{
		desc: "One",
		v:    1,
		ser:  []byte{0x01},
	},
	{
		desc: "Two",
		v:    2,
		ser:  []byte{0x02},
	},
	{
		desc: "Max single byte (127)",
		v:    127,
		ser:  []byte{0x7f},
	},
	{
		desc: "Min two bytes (128)",
		v:    128,
		ser:  []byte{0x80, 0x01},
	},
	{
		desc: "Max two bytes (255)", // The largest value that fits in the first 14 bits (0x3FFF) is 16383, but 255 is a standard boundary test.
		v:    255,
		ser:  []byte{0xff, 0x01},
	},
	{
		desc: "Small three bytes (25565)",
		v:    25565,
		ser:  []byte{0xdd, 0xc7, 0x01},
	},
	{
		desc: "Max three bytes (2097151)",
		v:    2097151,
		ser:  []byte{0xff, 0xff, 0x7f},
	},
	{
		desc: "Max positive int32 (2147483647)",
		v:    2147483647,
		ser:  []byte{0xff, 0xff, 0xff, 0xff, 0x07},
	},
	{
		desc: "Negative one (-1)",
		v:    -1,
		ser:  []byte{0xff, 0xff, 0xff, 0xff, 0x0f},
	},
	{
		desc: "Min negative int32 (-2147483648)",
		v:    -2147483648,
		ser:  []byte{0x80, 0x80, 0x80, 0x80, 0x08},
	},
	{
		desc:      "VarInt too long",
		expectErr: ErrVarIntTooLong,
		v:         2147483647,
		ser:       []byte{0xff, 0xff, 0xff, 0xff, 0xff, 0x07},
	},
	{
		desc:      "Unexpected EOF",
		expectErr: io.ErrUnexpectedEOF,
		v:         2147483647,
		ser:       []byte{0xff, 0xff, 0xff, 0xff},
	},
}

// checkWrite encodes every successful case of tcs and compares the bytes.
func checkWrite[T any](t *testing.T, name string, tcs []TestCase[T], write WriteFn[T]) {
	t.Helper()
	var buf bytes.Buffer
	for _, tC := range tcs {
		if tC.expectErr != nil {
			continue
		}

		t.Run(tC.desc, func(t *testing.T) {
			buf.Reset()
			if err := write(&buf, tC.v); err != nil {
				t.Fatalf("%s failed: %v", name, err)
			}

			if !bytes.Equal(buf.Bytes(), tC.ser) {
				t.Errorf("%s expected %x, got %x", name, tC.ser, buf.Bytes())
			}
		})
	}
}

// checkRead decodes every case of tcs from a Reader over tc.ser. Short
// reads must surface both io.ErrUnexpectedEOF and the cursor's
// advance.ErrNotEnoughData.
func checkRead[T any](t *testing.T, name string, tcs []TestCase[T], read ReadFn[T], equal func(a, b T) bool) {
	t.Helper()
	for _, tC := range tcs {
		t.Run(tC.desc, func(t *testing.T) {
			r := NewReader(tC.ser)
			got, err := read(&r)

			if tC.expectErr != nil {
				if err == nil {
					t.Fatalf("%s expected error %v, but succeeded and returned value %v", name, tC.expectErr, got)
				}
				if !errors.Is(err, tC.expectErr) {
					t.Errorf("%s expected error %v, but got error %v", name, tC.expectErr, err)
				}
				if tC.expectErr == io.ErrUnexpectedEOF && !errors.Is(err, advance.ErrNotEnoughData) {
					t.Errorf("%s short read does not carry advance.ErrNotEnoughData: %v", name, err)
				}
				return
			}

			if err != nil {
				t.Fatalf("%s failed: %v", name, err)
			}

			if !equal(got, tC.v) {
				t.Errorf("%s expected %v, got %v", name, tC.v, got)
			}

			if r.Remaining() != 0 {
				t.Errorf("Reader did not consume all bytes. %d bytes remaining.", r.Remaining())
			}
		})
	}
}

func eq[T comparable](a, b T) bool { return a == b }

func TestWriteVarInt(t *testing.T) {
	checkWrite(t, "WriteVarInt", varintTc, WriteVarInt)
}

func TestReadVarInt(t *testing.T) {
	checkRead(t, "ReadVarInt", varintTc, func(r *Reader) (int32, error) { return ReadVarInt(r) }, eq[int32])
}

var stringTc = []TestCase[string]{
	{
		desc: "Empty string",
		v:    "",
		ser:  []byte{0x00}, // Length 0, encoded as 0x00
	},
	{
		desc: "ASCII string",
		v:    "Hello",
		ser:  []byte{0x05, 0x48, 0x65, 0x6c, 0x6c, 0x6f}, // Length 5 (0x05) + ASCII bytes
	},
	{
		desc: "Unicode string (4 byte emoji)",
		v:    "Go 🎉",
		ser:  []byte{0x07, 0x47, 0x6f, 0x20, 0xf0, 0x9f, 0x8e, 0x89}, // Length 7 (0x07) + UTF-8 bytes
	},
	{
		desc: "Multi byte length (128 bytes)",
		v:    string(bytes.Repeat([]byte{'a'}, 128)),
		ser:  append([]byte{0x80, 0x01}, bytes.Repeat([]byte{'a'}, 128)...),
	},
	{
		desc:      "Read fail: EOF on length VarInt (Length is 0x80)",
		expectErr: io.ErrUnexpectedEOF,
		v:         "",
		ser:       []byte{0x80}, // Missing the second byte of the VarInt length (e.g., length 128)
	},
	{
		desc:      "Read fail: EOF reading string content",
		expectErr: io.ErrUnexpectedEOF,
		v:         "",
		ser:       []byte{0x05, 0x48, 0x65, 0x6c}, // Length 5 (0x05), but only 3 bytes of data follow
	},
	{
		desc:      "Read fail: Negative length prefix",
		expectErr: ErrNegativeLength,
		v:         "",
		ser:       []byte{0xff, 0xff, 0xff, 0xff, 0x0f}, // VarInt encoding for -1
	},
}

func TestWriteString(t *testing.T) {
	checkWrite(t, "WriteString", stringTc, WriteString)
}

func TestReadString(t *testing.T) {
	checkRead(t, "ReadString", stringTc, ReadString, eq[string])
}

var pArrayTc = []TestCase[[]byte]{
	{
		desc: "Empty array",
		v:    []byte{},
		ser:  []byte{0x00}, // Length 0, encoded as 0x00
	},
	{
		desc: "Small array (Length 3)",
		v:    []byte{10, 20, 30},
		ser:  []byte{0x03, 10, 20, 30}, // Length 3 (0x03) + data
	},
	{
		desc: "Large array (Length 128)",
		v:    bytes.Repeat([]byte{0xAA}, 128),
		ser:  append([]byte{0x80, 0x01}, bytes.Repeat([]byte{0xAA}, 128)...), // Length 128 (0x80 0x01) + data
	},
	{
		desc:      "Read fail: EOF on length VarInt (Length is 0x80)",
		expectErr: io.ErrUnexpectedEOF,
		ser:       []byte{0x80}, // Missing the second byte of the VarInt length (e.g., length 128)
	},
	{
		desc:      "Read fail: EOF reading array elements",
		expectErr: io.ErrUnexpectedEOF,
		v:         []byte{10, 20, 30},   // Expected array, but stream will be incomplete
		ser:       []byte{0x03, 10, 20}, // Length 3 (0x03), but only 2 bytes of data follow
	},
}

func TestWritePrefixedArray(t *testing.T) {
	checkWrite(t, "WritePrefixedArray", pArrayTc, func(w io.Writer, v []byte) error {
		return WritePrefixedArray(w, v, WriteByte)
	})
}

func TestReadPrefixedArray(t *testing.T) {
	checkRead(t, "ReadPrefixedArray", pArrayTc, func(r *Reader) ([]byte, error) {
		return ReadPrefixedArray(r, ReadByte)
	}, bytes.Equal)
}

// Length prefixes larger than the payload fail before anything is allocated.
func TestReadPrefixedArray_HugeLength(t *testing.T) {
	r := NewReader([]byte{0xff, 0xff, 0xff, 0xff, 0x07, 0x01})

	_, err := ReadPrefixedArray(&r, ReadByte)
	var nerr *advance.NotEnoughDataError
	if !errors.As(err, &nerr) {
		t.Fatalf("ReadPrefixedArray expected *advance.NotEnoughDataError, got %v", err)
	}
	if nerr.Needed != 2147483647 || nerr.Remaining != 1 {
		t.Errorf("got needed %d remaining %d", nerr.Needed, nerr.Remaining)
	}
}

var optionalTc = []TestCase[Optional[byte]]{
	{
		desc: "Value is Present",
		v:    Optional[byte]{Exists: true, Item: 0x42},
		ser:  []byte{0x01, 0x42}, // True (0x01) + Item (0x42)
	},
	{
		desc: "Value is Absent",
		v:    Optional[byte]{Exists: false, Item: 0x00}, // Item value is ignored when Exists is false
		ser:  []byte{0x00},                              // False (0x00)
	},
	{
		desc:      "Read fail: EOF on Boolean prefix",
		expectErr: io.ErrUnexpectedEOF,
		ser:       []byte{},
	},
	{
		desc:      "Read fail: EOF reading Item when Exists is true",
		expectErr: io.ErrUnexpectedEOF,
		ser:       []byte{0x01}, // True (0x01), but no item byte follows
	},
}

func TestWriteOptional(t *testing.T) {
	checkWrite(t, "WriteOptional", optionalTc, func(w io.Writer, v Optional[byte]) error {
		return WriteOptional(w, v, WriteByte)
	})
}

func TestReadOptional(t *testing.T) {
	checkRead(t, "ReadOptional", optionalTc, func(r *Reader) (Optional[byte], error) {
		return ReadOptional(r, ReadByte)
	}, func(a, b Optional[byte]) bool {
		// Item is ignored when absent.
		return a.Exists == b.Exists && (!a.Exists || a.Item == b.Item)
	})
}
