package packet

// @gen:regserver
type StatusReqPacket struct{}

func (p StatusReqPacket) ID() int32 {
	return 0
}

// @gen:regserver
type PingReqPacket struct {
	Timestamp int64 `field:"Long"`
}

func (p PingReqPacket) ID() int32 {
	return 1
}

// @gen:regclient
type StatusRespPacket struct {
	Response string `field:"String"`
}

func (p StatusRespPacket) ID() int32 {
	return 0
}

// @gen:regclient
type PongRespPacket struct {
	Timestamp int64 `field:"Long"`
}

func (p PongRespPacket) ID() int32 {
	return 1
}
