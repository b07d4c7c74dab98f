package frame

import (
	"bytes"
	"compress/zlib"
	"errors"
	"fmt"
	"io"

	"github.com/gstoney/advance"
	"github.com/gstoney/advance/packet"
)

var (
	ErrFrameTooBig         = errors.New("frame too big")
	ErrInvalidFrameLength  = errors.New("invalid frame length")
	ErrInvalidDataLength   = errors.New("invalid data length")
	ErrZlibPayloadOverrun  = errors.New("zlib stream exceeds declared payload length")
	ErrZlibPayloadUnderrun = errors.New("zlib stream shorter than declared payload length")
	ErrZlibTrailingData    = errors.New("trailing data in frame after zlib stream ends")
)

// Config bounds the sizes a Decoder accepts. A zero field disables that
// check.
type Config struct {
	MaxFrameLen        int32
	MaxDecompressedLen int32
}

func DefaultConfig() Config {
	return Config{
		MaxFrameLen:        1 << 21,
		MaxDecompressedLen: 1 << 23,
	}
}

// Decoder splits length-prefixed frames out of bytes already received.
//
// Feed appends input; Next pops one frame at a time. When the buffered
// bytes do not hold a whole frame, Next returns an error matching
// advance.ErrNotEnoughData and consumes nothing, so the caller can Feed
// more input and call Next again.
type Decoder struct {
	buf advance.Slice[byte]

	zSrc    bytes.Reader
	zReader io.ReadCloser

	// States
	CompressionThreshold int

	cfg Config
}

func NewDecoder(cfg Config) *Decoder {
	return &Decoder{
		CompressionThreshold: -1,
		cfg:                  cfg,
	}
}

// Feed appends received bytes. Payloads returned earlier stay valid.
func (d *Decoder) Feed(b []byte) {
	d.buf = append(d.buf, b...)
}

// Buffered reports how many received bytes have not been consumed yet.
func (d *Decoder) Buffered() int {
	return d.buf.Len()
}

// Next returns the payload of the next complete frame.
//
// Uncompressed payloads alias the decoder's buffer and stay valid until
// the caller drops them. A frame that fails to decompress is consumed
// regardless, so the decoder stays aligned to frame boundaries. Errors
// from a consumed frame never match advance.ErrNotEnoughData.
func (d *Decoder) Next() (payload []byte, err error) {
	r := packet.NewReader(d.buf)

	length, err := packet.ReadVarInt(&r)
	if err != nil {
		return nil, err
	}

	if length <= 0 {
		return nil, ErrInvalidFrameLength
	}
	if d.cfg.MaxFrameLen > 0 && length > d.cfg.MaxFrameLen {
		return nil, ErrFrameTooBig
	}

	body, err := r.Read(int(length))
	if err != nil {
		return nil, err
	}
	d.buf = r.Bytes()

	if d.CompressionThreshold < 0 {
		return body, nil
	}
	return d.decompress(body)
}

func (d *Decoder) decompress(body []byte) ([]byte, error) {
	r := packet.NewReader(body)

	// The frame is already consumed; a short read here is malformed data.
	dataLen, err := packet.ReadVarInt(&r)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidDataLength, err)
	}

	if dataLen == 0 {
		return r.Bytes(), nil
	} else if dataLen < 0 {
		return nil, ErrInvalidDataLength
	}
	if d.cfg.MaxDecompressedLen > 0 && dataLen > d.cfg.MaxDecompressedLen {
		return nil, ErrFrameTooBig
	}

	d.zSrc.Reset(r.Bytes())
	if d.zReader == nil {
		d.zReader, err = zlib.NewReader(&d.zSrc)
	} else {
		err = d.zReader.(zlib.Resetter).Reset(&d.zSrc, nil)
	}
	if err == io.EOF || err == io.ErrUnexpectedEOF {
		return nil, ErrZlibPayloadUnderrun
	} else if err != nil {
		return nil, err
	}

	out := make([]byte, dataLen)
	if _, err = io.ReadFull(d.zReader, out); err != nil {
		if err == io.EOF || err == io.ErrUnexpectedEOF {
			err = ErrZlibPayloadUnderrun
		}
		return nil, err
	}

	var one [1]byte
	n, err := d.zReader.Read(one[:])
	if err == nil || n > 0 {
		return nil, ErrZlibPayloadOverrun
	} else if err != io.EOF {
		return nil, err
	}

	if d.zSrc.Len() > 0 {
		return nil, ErrZlibTrailingData
	}
	return out, d.zReader.Close()
}
