package socketcan

import (
	"errors"
)

// Bus is a CAN bus connection which can send and receive frames.
// Implementations should be safe for concurrent use by multiple goroutines
// unless documented otherwise.
type Bus interface {
	// Send transmits a frame. It may block until the frame is queued or
	// sent.
	Send(frame Frame) error

	// Receive blocks until the next frame is available.
	Receive() (Frame, error)

	// Close releases resources. Further Send/Receive may return an error.
	Close() error
}

// ErrClosed indicates the bus or endpoint has been closed.
var ErrClosed = errors.New("socketcan: closed")

// NewBus adapts a raw Socket to the Bus interface, converting between the
// unpacked Frame type and the kernel representation on every call.
//
// The adapter adds no synchronization: concurrent Sends or Receives on the
// same socket need the caller's own discipline.
func NewBus(s *Socket) Bus {
	return &socketBus{s: s}
}

type socketBus struct {
	s *Socket
}

func (b *socketBus) Send(frame Frame) error {
	raw, err := frame.Raw()
	if err != nil {
		return err
	}
	return b.s.WriteFrame(raw)
}

func (b *socketBus) Receive() (Frame, error) {
	raw, err := b.s.ReadFrame()
	if err != nil {
		return Frame{}, err
	}
	return FromRaw(raw)
}

func (b *socketBus) Close() error {
	return b.s.Close()
}
