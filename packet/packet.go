//go:generate go run ../codegen/gen_packet_codec.go -- .
package packet

import (
	"bytes"
	"errors"
	"io"
)

var (
	ErrUnknownPacket = errors.New("unknown packet id")
	ErrNotExhausted  = errors.New("not exhausted")
)

type Packet interface {
	ID() int32
	Encode(w io.Writer) error
	Decode(r *Reader) error
}

// Registry maps packet IDs to constructors for one connection state and
// direction.
type Registry map[int32]func() Packet

// ReadPacket decodes one packet from payload, which must hold exactly the
// packet ID followed by the packet's fields.
func ReadPacket(payload []byte, reg Registry) (p Packet, err error) {
	r := NewReader(payload)

	id, err := ReadVarInt(&r)
	if err != nil {
		return nil, err
	}

	newPacket, ok := reg[id]
	if !ok {
		return nil, ErrUnknownPacket
	}

	p = newPacket()
	if err = p.Decode(&r); err != nil {
		return nil, err
	}

	if r.Remaining() > 0 {
		return p, ErrNotExhausted
	}
	return p, nil
}

// Marshal encodes p, ID included, into a new byte slice.
func Marshal(p Packet) ([]byte, error) {
	var buf bytes.Buffer
	if err := p.Encode(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
