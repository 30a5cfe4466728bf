package can

import (
	"encoding/binary"
	"fmt"
)

// AddrKind discriminates the protocol-specific part of a socket address.
// The kernel stores that part in an untagged union; here the variant is
// explicit so reading the wrong one is a checked operation.
type AddrKind uint8

const (
	// AddrRaw is a plain interface binding with no protocol address,
	// as used by raw and BCM sockets.
	AddrRaw AddrKind = iota
	// AddrTP carries transport protocol rx/tx identifiers (ISO-TP and
	// the VAG transport protocols).
	AddrTP
	// AddrJ1939 carries SAE J1939 addressing.
	AddrJ1939
)

// TPAddr is the transport protocol address: the identifier pair the socket
// receives on and transmits with.
type TPAddr struct {
	RxID uint32
	TxID uint32
}

// J1939Addr is the SAE J1939 address.
type J1939Addr struct {
	Name uint64
	PGN  uint32
	Addr uint8
}

// Addr is the CAN socket address (struct sockaddr_can): an interface index
// and an optional protocol-specific part. It is a plain value used as a
// syscall argument and owns no resources.
type Addr struct {
	// Ifindex is the bound interface index; zero binds to all interfaces.
	Ifindex int

	kind  AddrKind
	tp    TPAddr
	j1939 J1939Addr
}

// NewAddr returns an address binding the given interface index with no
// protocol-specific part.
func NewAddr(ifindex int) Addr {
	return Addr{Ifindex: ifindex}
}

// NewTPAddr returns an address carrying transport protocol rx/tx
// identifiers.
func NewTPAddr(ifindex int, rxID, txID uint32) Addr {
	return Addr{Ifindex: ifindex, kind: AddrTP, tp: TPAddr{RxID: rxID, TxID: txID}}
}

// NewJ1939Addr returns an address carrying J1939 addressing.
func NewJ1939Addr(ifindex int, name uint64, pgn uint32, addr uint8) Addr {
	return Addr{Ifindex: ifindex, kind: AddrJ1939, j1939: J1939Addr{Name: name, PGN: pgn, Addr: addr}}
}

// Kind reports which protocol-specific variant the address carries.
func (a Addr) Kind() AddrKind { return a.kind }

// TP returns the transport protocol part. The second result is false when
// the address does not carry one.
func (a Addr) TP() (TPAddr, bool) {
	if a.kind != AddrTP {
		return TPAddr{}, false
	}
	return a.tp, true
}

// J1939 returns the J1939 part. The second result is false when the address
// does not carry one.
func (a Addr) J1939() (J1939Addr, bool) {
	if a.kind != AddrJ1939 {
		return J1939Addr{}, false
	}
	return a.j1939, true
}

// MarshalBinary encodes the address into the 24-byte sockaddr_can image.
//
// Layout (host byte order):
//
//	0..1   can_family (AF_CAN)
//	2..3   padding
//	4..7   can_ifindex
//	8..23  protocol address union: tp rx_id/tx_id at 8/12, or
//	       j1939 name/pgn/addr at 8/16/20
func (a Addr) MarshalBinary() ([]byte, error) {
	if a.Ifindex < -1<<31 || a.Ifindex > 1<<31-1 {
		return nil, fmt.Errorf("can: interface index %d does not fit in 32 bits", a.Ifindex)
	}
	buf := make([]byte, SockaddrSize)
	binary.NativeEndian.PutUint16(buf[0:2], AFCAN)
	binary.NativeEndian.PutUint32(buf[4:8], uint32(int32(a.Ifindex)))
	switch a.kind {
	case AddrTP:
		binary.NativeEndian.PutUint32(buf[8:12], a.tp.RxID)
		binary.NativeEndian.PutUint32(buf[12:16], a.tp.TxID)
	case AddrJ1939:
		binary.NativeEndian.PutUint64(buf[8:16], a.j1939.Name)
		binary.NativeEndian.PutUint32(buf[16:20], a.j1939.PGN)
		buf[20] = a.j1939.Addr
	}
	return buf, nil
}

// String implements fmt.Stringer for diagnostics.
func (a Addr) String() string {
	switch a.kind {
	case AddrTP:
		return fmt.Sprintf("can:if%d tp rx=%X tx=%X", a.Ifindex, a.tp.RxID, a.tp.TxID)
	case AddrJ1939:
		return fmt.Sprintf("can:if%d j1939 name=%X pgn=%X addr=%X", a.Ifindex, a.j1939.Name, a.j1939.PGN, a.j1939.Addr)
	default:
		return fmt.Sprintf("can:if%d", a.Ifindex)
	}
}
