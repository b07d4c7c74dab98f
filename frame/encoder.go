package frame

import (
	"bufio"
	"bytes"
	"compress/zlib"
	"io"

	"github.com/gstoney/advance/packet"
)

type byteWriter interface {
	io.Writer
	io.ByteWriter
}

// Encoder writes length-prefixed frames, compressing payloads at or above
// CompressionThreshold. A negative threshold disables compression.
type Encoder struct {
	writer byteWriter

	zBuffer bytes.Buffer
	zWriter *zlib.Writer

	// States
	CompressionThreshold int
}

// NewEncoder creates an Encoder.
//
// Writers that do not implement io.ByteWriter are wrapped with bufio and
// flushed after every frame.
func NewEncoder(w io.Writer) *Encoder {
	var bw byteWriter
	if b, ok := w.(byteWriter); ok {
		bw = b
	} else {
		bw = bufio.NewWriter(w)
	}

	return &Encoder{
		writer:               bw,
		CompressionThreshold: -1,
	}
}

func (e *Encoder) Send(b []byte) (err error) {
	if err = e.writeFrame(b); err != nil {
		return
	}

	if bw, ok := e.writer.(*bufio.Writer); ok {
		err = bw.Flush()
	}
	return
}

// SendPacket encodes p and sends it as one frame.
func (e *Encoder) SendPacket(p packet.Packet) error {
	b, err := packet.Marshal(p)
	if err != nil {
		return err
	}
	return e.Send(b)
}

func (e *Encoder) writeFrame(b []byte) error {
	length := len(b)

	if e.CompressionThreshold < 0 {
		if err := packet.WriteVarInt(e.writer, int32(length)); err != nil {
			return err
		}
		_, err := e.writer.Write(b)
		return err
	}

	if length < e.CompressionThreshold {
		if err := packet.WriteVarInt(e.writer, int32(length+1)); err != nil {
			return err
		}
		if err := e.writer.WriteByte(0); err != nil {
			return err
		}
		_, err := e.writer.Write(b)
		return err
	}

	e.zBuffer.Reset()
	if e.zWriter == nil {
		e.zWriter = zlib.NewWriter(&e.zBuffer)
	} else {
		e.zWriter.Reset(&e.zBuffer)
	}
	packet.WriteVarInt(&e.zBuffer, int32(length))
	if _, err := e.zWriter.Write(b); err != nil {
		return err
	}
	if err := e.zWriter.Close(); err != nil {
		return err
	}

	if err := packet.WriteVarInt(e.writer, int32(e.zBuffer.Len())); err != nil {
		return err
	}
	_, err := e.zBuffer.WriteTo(e.writer)
	return err
}
