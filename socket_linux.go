//go:build linux

package socketcan

import (
	"errors"
	"fmt"
	"io"
	"net"
	"os"
	"time"

	"golang.org/x/sys/unix"

	"github.com/saronic-technologies/socketcan-go/can"
)

// Socket owns exactly one raw CAN kernel socket. The file handle is the
// sole owner of the descriptor; Close releases it on every path.
type Socket struct {
	fd   int
	file *os.File
	addr can.Addr
}

// Open creates a raw CAN socket and binds it to the given address. On any
// failure the descriptor is closed before returning; no handle leaks.
func Open(addr can.Addr) (*Socket, error) {
	fd, err := unix.Socket(unix.AF_CAN, unix.SOCK_RAW, can.Raw)
	if err != nil {
		return nil, fmt.Errorf("socketcan: create raw socket: %w", err)
	}
	sa := sockaddr(addr)
	if err := unix.Bind(fd, sa); err != nil {
		unix.Close(fd)
		return nil, fmt.Errorf("socketcan: bind %s: %w", addr, err)
	}
	return newSocket(fd, addr), nil
}

// Dial resolves the interface name (e.g. "can0") and opens a raw socket
// bound to it.
func Dial(ifname string) (*Socket, error) {
	netIf, err := net.InterfaceByName(ifname)
	if err != nil {
		return nil, fmt.Errorf("socketcan: interface %q: %w", ifname, err)
	}
	return Open(can.NewAddr(netIf.Index))
}

func newSocket(fd int, addr can.Addr) *Socket {
	return &Socket{fd: fd, file: os.NewFile(uintptr(fd), "socketcan"), addr: addr}
}

// sockaddr converts the address to the form bind(2) takes.
func sockaddr(addr can.Addr) unix.Sockaddr {
	switch addr.Kind() {
	case can.AddrTP:
		tp, _ := addr.TP()
		return &unix.SockaddrCAN{Ifindex: addr.Ifindex, RxID: tp.RxID, TxID: tp.TxID}
	case can.AddrJ1939:
		j, _ := addr.J1939()
		return &unix.SockaddrCANJ1939{Ifindex: addr.Ifindex, Name: j.Name, PGN: j.PGN, Addr: j.Addr}
	default:
		return &unix.SockaddrCAN{Ifindex: addr.Ifindex}
	}
}

// Addr returns the address the socket was opened with.
func (s *Socket) Addr() can.Addr { return s.addr }

// Close releases the kernel socket. Calling it again is a no-op.
func (s *Socket) Close() error {
	if err := s.file.Close(); err != nil && !errors.Is(err, os.ErrClosed) {
		return err
	}
	return nil
}

// ReadFrame reads exactly one classic frame. The receive buffer is local to
// the call; no state is retained between reads.
func (s *Socket) ReadFrame() (can.Frame, error) {
	var buf [can.MTU]byte
	if err := s.readFull(buf[:]); err != nil {
		return can.Frame{}, err
	}
	f := can.NewFrame()
	if err := f.UnmarshalBinary(buf[:]); err != nil {
		return can.Frame{}, err
	}
	return f, nil
}

// ReadFDFrame reads exactly one FD frame. An FD-enabled socket also
// delivers classic 16-byte datagrams, so a single datagram read is taken
// and anything other than a full FD image is rejected rather than merged
// with the next datagram.
func (s *Socket) ReadFDFrame() (can.FDFrame, error) {
	var buf [can.FDMTU]byte
	n, err := s.file.Read(buf[:])
	if err != nil {
		return can.FDFrame{}, fmt.Errorf("socketcan: read: %w", err)
	}
	if n != can.FDMTU {
		return can.FDFrame{}, fmt.Errorf("socketcan: unexpected frame size: %d of %d bytes", n, can.FDMTU)
	}
	f := can.NewFDFrame()
	if err := f.UnmarshalBinary(buf[:]); err != nil {
		return can.FDFrame{}, err
	}
	return f, nil
}

// ReadXLFrame reads one XL frame. XL frames are variable size, so a single
// datagram read is taken and validated against the header length.
func (s *Socket) ReadXLFrame() (can.XLFrame, error) {
	var buf [can.XLMTU]byte
	n, err := s.file.Read(buf[:])
	if err != nil {
		return can.XLFrame{}, fmt.Errorf("socketcan: read: %w", err)
	}
	if n < can.XLMinMTU {
		return can.XLFrame{}, fmt.Errorf("socketcan: short read: %d of at least %d bytes", n, can.XLMinMTU)
	}
	var f can.XLFrame
	if err := f.UnmarshalBinary(buf[:n]); err != nil {
		return can.XLFrame{}, err
	}
	return f, nil
}

// WriteFrame writes the frame's full 16-byte image.
func (s *Socket) WriteFrame(f can.Frame) error {
	buf, err := f.MarshalBinary()
	if err != nil {
		return err
	}
	return s.writeFull(buf)
}

// WriteFDFrame writes the frame's full 72-byte image.
func (s *Socket) WriteFDFrame(f can.FDFrame) error {
	buf, err := f.MarshalBinary()
	if err != nil {
		return err
	}
	return s.writeFull(buf)
}

// WriteXLFrame writes the frame's full variable-size image.
func (s *Socket) WriteXLFrame(f can.XLFrame) error {
	buf, err := f.MarshalBinary()
	if err != nil {
		return err
	}
	return s.writeFull(buf)
}

// SetOption sets a socket option from its encoded value.
func (s *Socket) SetOption(level, name int, value []byte) error {
	if err := unix.SetsockoptString(s.fd, level, name, string(value)); err != nil {
		return fmt.Errorf("socketcan: setsockopt level %d name %d: %w", level, name, err)
	}
	return nil
}

// SetRecvTimeout bounds how long a read blocks. A timed-out read fails with
// the kernel's temporary-unavailability error.
func (s *Socket) SetRecvTimeout(timeout time.Duration) error {
	tv := unix.NsecToTimeval(timeout.Nanoseconds())
	return unix.SetsockoptTimeval(s.fd, unix.SOL_SOCKET, unix.SO_RCVTIMEO, &tv)
}

// SetSendTimeout bounds how long a write blocks.
func (s *Socket) SetSendTimeout(timeout time.Duration) error {
	tv := unix.NsecToTimeval(timeout.Nanoseconds())
	return unix.SetsockoptTimeval(s.fd, unix.SOL_SOCKET, unix.SO_SNDTIMEO, &tv)
}

// readFull fills b or fails; a transfer of fewer bytes is a short read,
// never a partial frame.
func (s *Socket) readFull(b []byte) error {
	n, err := io.ReadFull(s.file, b)
	if err != nil {
		if errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
			return fmt.Errorf("socketcan: short read: %d of %d bytes: %w", n, len(b), err)
		}
		return fmt.Errorf("socketcan: read: %w", err)
	}
	return nil
}

// writeFull transmits b completely or fails; callers must not assume a
// partial write left the bus in any defined state.
func (s *Socket) writeFull(b []byte) error {
	n, err := s.file.Write(b)
	if err != nil {
		return fmt.Errorf("socketcan: write: %w", err)
	}
	if n != len(b) {
		return fmt.Errorf("socketcan: short write: %d of %d bytes: %w", n, len(b), io.ErrShortWrite)
	}
	return nil
}
