//go:build !linux

package socketcan

import (
	"fmt"
	"time"

	"github.com/saronic-technologies/socketcan-go/can"
)

// Socket is the stand-in for platforms without native SocketCAN. The type,
// its constants and its full method set exist so dependent code compiles
// and type-checks everywhere, but every operation that would need kernel
// support fails immediately and unconditionally with ErrNotSupported.
// Reaching one of these errors means the build targeted the wrong platform;
// it is never a recoverable runtime condition.
type Socket struct {
	addr can.Addr
}

// Open always fails with ErrNotSupported; no socket is created.
func Open(addr can.Addr) (*Socket, error) {
	return nil, fmt.Errorf("socketcan: open %s: %w", addr, ErrNotSupported)
}

// Dial always fails with ErrNotSupported.
func Dial(ifname string) (*Socket, error) {
	return nil, fmt.Errorf("socketcan: dial %q: %w", ifname, ErrNotSupported)
}

// Addr returns the address the socket was opened with.
func (s *Socket) Addr() can.Addr { return s.addr }

// Close has no kernel resource to release here.
func (s *Socket) Close() error { return nil }

func (s *Socket) ReadFrame() (can.Frame, error) {
	return can.Frame{}, fmt.Errorf("socketcan: read frame: %w", ErrNotSupported)
}

func (s *Socket) ReadFDFrame() (can.FDFrame, error) {
	return can.FDFrame{}, fmt.Errorf("socketcan: read FD frame: %w", ErrNotSupported)
}

func (s *Socket) ReadXLFrame() (can.XLFrame, error) {
	return can.XLFrame{}, fmt.Errorf("socketcan: read XL frame: %w", ErrNotSupported)
}

func (s *Socket) WriteFrame(can.Frame) error {
	return fmt.Errorf("socketcan: write frame: %w", ErrNotSupported)
}

func (s *Socket) WriteFDFrame(can.FDFrame) error {
	return fmt.Errorf("socketcan: write FD frame: %w", ErrNotSupported)
}

func (s *Socket) WriteXLFrame(can.XLFrame) error {
	return fmt.Errorf("socketcan: write XL frame: %w", ErrNotSupported)
}

// SetOption guards the option-setting syscall: there is no CAN option level
// to pass through on this platform, so the failure is explicit here instead
// of an obscure native error.
func (s *Socket) SetOption(level, name int, value []byte) error {
	return fmt.Errorf("socketcan: setsockopt level %d name %d: %w", level, name, ErrNotSupported)
}

func (s *Socket) SetRecvTimeout(time.Duration) error {
	return fmt.Errorf("socketcan: set receive timeout: %w", ErrNotSupported)
}

func (s *Socket) SetSendTimeout(time.Duration) error {
	return fmt.Errorf("socketcan: set send timeout: %w", ErrNotSupported)
}
