package socketcan

import (
	"encoding/binary"
	"fmt"

	"github.com/saronic-technologies/socketcan-go/can"
)

// Typed helpers over the raw CAN socket options. They encode values the way
// the kernel expects and route through SetOption, so the platform guard
// applies uniformly.

// SetFilters replaces the socket's acceptance filters. An empty list drops
// every frame; to accept everything set a single zero filter.
func (s *Socket) SetFilters(filters []can.Filter) error {
	if len(filters) > can.RawFilterMax {
		return fmt.Errorf("socketcan: %d filters exceeds limit of %d", len(filters), can.RawFilterMax)
	}
	buf := can.AppendFilters(make([]byte, 0, len(filters)*can.FilterSize), filters)
	return s.SetOption(can.SolCANRaw, can.RawFilter, buf)
}

// SetErrFilter selects which error frame classes the socket receives.
func (s *Socket) SetErrFilter(mask uint32) error {
	var buf [4]byte
	binary.NativeEndian.PutUint32(buf[:], mask&can.ErrMask)
	return s.SetOption(can.SolCANRaw, can.RawErrFilter, buf[:])
}

// SetLoopback controls local delivery of frames sent by other sockets on
// the same interface. It is on by default.
func (s *Socket) SetLoopback(enable bool) error {
	return s.setRawInt(can.RawLoopback, boolInt(enable))
}

// SetRecvOwnMsgs controls whether the socket receives frames it sent
// itself. It is off by default.
func (s *Socket) SetRecvOwnMsgs(enable bool) error {
	return s.setRawInt(can.RawRecvOwnMsgs, boolInt(enable))
}

// SetFDFrames allows sending and receiving FD frames on the socket.
func (s *Socket) SetFDFrames(enable bool) error {
	return s.setRawInt(can.RawFDFrames, boolInt(enable))
}

// SetXLFrames allows sending and receiving XL frames on the socket.
func (s *Socket) SetXLFrames(enable bool) error {
	return s.setRawInt(can.RawXLFrames, boolInt(enable))
}

// SetJoinFilters makes a frame pass only when all filters match, instead of
// at least one.
func (s *Socket) SetJoinFilters(enable bool) error {
	return s.setRawInt(can.RawJoinFilters, boolInt(enable))
}

func (s *Socket) setRawInt(name, value int) error {
	var buf [4]byte
	binary.NativeEndian.PutUint32(buf[:], uint32(value))
	return s.SetOption(can.SolCANRaw, name, buf[:])
}

func boolInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
