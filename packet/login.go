package packet

import (
	"io"

	"github.com/google/uuid"
)

// @gen:regserver
type LoginStart struct {
	Name       string    `field:"String"`
	PlayerUUID uuid.UUID `field:"UUID"`
}

func (p LoginStart) ID() int32 {
	return 0
}

// @gen:regserver
type EncryptionResponse struct {
	SharedSecret []byte `field:"PrefixedBytes"`
	VerifyToken  []byte `field:"PrefixedBytes"`
}

func (p EncryptionResponse) ID() int32 {
	return 1
}

// @gen:regserver
type LoginAcknowledge struct{}

func (p LoginAcknowledge) ID() int32 {
	return 3
}

// @gen:regclient
type LoginDisconnect struct {
	Reason string `field:"String"` // JSON Text Component
}

func (p LoginDisconnect) ID() int32 {
	return 0
}

// @gen:regclient
type EncryptionRequest struct {
	ServerID    string `field:"String"`
	PublicKey   []byte `field:"PrefixedBytes"`
	VerifyToken []byte `field:"PrefixedBytes"`
	ShouldAuth  bool   `field:"Boolean"`
}

func (p EncryptionRequest) ID() int32 {
	return 1
}

type GameProfileProperty struct {
	Name      string
	Value     string
	Signature Optional[string]
}

func writeGameProfileProperty(w io.Writer, v GameProfileProperty) (err error) {
	if err = WriteString(w, v.Name); err != nil {
		return
	}
	if err = WriteString(w, v.Value); err != nil {
		return
	}
	err = WriteOptional(w, v.Signature, WriteString)
	return
}

func readGameProfileProperty(r *Reader) (v GameProfileProperty, err error) {
	v.Name, err = ReadString(r)
	if err != nil {
		return
	}
	v.Value, err = ReadString(r)
	if err != nil {
		return
	}
	v.Signature, err = ReadOptional(r, ReadString)
	return
}

// @gen:regclient
type LoginSuccess struct {
	UUID              uuid.UUID             `field:"UUID"`
	Username          string                `field:"String"`
	Properties        []GameProfileProperty `field:"PrefixedArray" elem:"GameProfileProperty"`
	StrictErrHandling bool                  `field:"Boolean"`
}

func (p LoginSuccess) ID() int32 {
	return 2
}

// @gen:regclient
type SetCompression struct {
	Threshold int32 `field:"VarInt"`
}

func (p SetCompression) ID() int32 {
	return 3
}
