package socketcan

import (
	"errors"

	"github.com/saronic-technologies/socketcan-go/can"
)

// Transport is the raw-socket capability of this package: exact-size,
// blocking reads and writes of single frames plus socket option access.
//
// There are exactly two implementations of the platform half of *Socket,
// selected once at build time: the native Linux one, and a stub for every
// other platform whose operations fail immediately with ErrNotSupported.
// Portable code can be written and type-checked anywhere; the dangerous
// path is inert, not silently wrong.
//
// All operations block the calling goroutine until completion or failure
// and perform no internal retries. The transport does not synchronize
// concurrent use of one socket; callers needing a single-reader or
// single-writer discipline must impose it themselves. Timeouts, if wanted,
// are set on the socket via SetRecvTimeout/SetSendTimeout before calling.
type Transport interface {
	// ReadFrame reads exactly one classic frame. A transfer of fewer
	// than can.MTU bytes is an error, never a partial frame.
	ReadFrame() (can.Frame, error)
	// ReadFDFrame reads exactly one FD frame (can.FDMTU bytes).
	ReadFDFrame() (can.FDFrame, error)
	// ReadXLFrame reads one XL frame of at least can.XLMinMTU bytes.
	ReadXLFrame() (can.XLFrame, error)
	// WriteFrame writes the frame's full 16-byte image or fails.
	WriteFrame(can.Frame) error
	// WriteFDFrame writes the frame's full 72-byte image or fails.
	WriteFDFrame(can.FDFrame) error
	// WriteXLFrame writes the frame's full variable-size image or fails.
	WriteXLFrame(can.XLFrame) error
	// SetOption sets a socket option from an encoded value.
	SetOption(level, name int, value []byte) error
	// Close releases the kernel socket. Safe to call more than once.
	Close() error
}

// ErrNotSupported is returned by every transport operation on platforms
// without native SocketCAN. Hitting it indicates a build/target mismatch,
// not a runtime condition to recover from.
var ErrNotSupported = errors.New("socketcan: not supported on this platform")

var _ Transport = (*Socket)(nil)
