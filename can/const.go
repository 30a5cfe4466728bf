package can

// Identifier flag bits, carried in the high bits of a frame's ID field.
const (
	// EFFFlag marks an extended (29-bit) identifier.
	EFFFlag uint32 = 0x80000000
	// RTRFlag marks a remote transmission request.
	RTRFlag uint32 = 0x40000000
	// ErrFlag marks an error message frame.
	ErrFlag uint32 = 0x20000000
)

// Identifier masks selecting the numeric portion of an ID field.
const (
	// SFFMask selects a standard (11-bit) identifier.
	SFFMask uint32 = 0x000007FF
	// EFFMask selects an extended (29-bit) identifier.
	EFFMask uint32 = 0x1FFFFFFF
	// ErrMask selects the error class bits of an error frame.
	ErrMask uint32 = 0x1FFFFFFF
	// XLPrioMask selects the 11-bit priority of an XL frame; it aliases
	// the standard identifier mask.
	XLPrioMask uint32 = SFFMask
)

// Identifier widths in bits.
const (
	SFFIDBits  = 11
	EFFIDBits  = 29
	XLPrioBits = SFFIDBits
)

// Payload length limits per frame kind.
const (
	MaxDLC    = 8
	MaxDLen   = 8
	FDMaxDLC  = 15
	FDMaxDLen = 64
	XLMinDLC  = 0
	XLMaxDLC  = 2047
	XLMinDLen = 1
	XLMaxDLen = 2048
)

// Fixed structure sizes. Each value equals the exact memory footprint of the
// corresponding frame structure; read and write sizes on a raw socket are
// derived from these.
const (
	// MTU is the size of a classic frame.
	MTU = 16
	// FDMTU is the size of an FD frame.
	FDMTU = 72
	// XLHeaderLen is the size of an XL frame header, before the payload.
	XLHeaderLen = 12
	// XLMinMTU is the smallest transfer the kernel accepts for an XL frame.
	XLMinMTU = XLHeaderLen + 64
	// XLMTU is the size of a full XL frame.
	XLMTU = XLHeaderLen + XLMaxDLen
)

// FD frame flag bits.
const (
	// FDBRS requests a bit-rate switch for the data phase.
	FDBRS uint8 = 0x01
	// FDESI reports the sender's error state.
	FDESI uint8 = 0x02
	// FDFDF marks the frame as FD format; the kernel sets it on every
	// canfd_frame it delivers.
	FDFDF uint8 = 0x04
)

// XL frame flag bits.
const (
	// XLFlag marks the frame as XL format. It must be set for the frame
	// to be valid.
	XLFlag uint8 = 0x80
	// XLSEC marks simple extended content.
	XLSEC uint8 = 0x01
)

// CAN protocol numbers of the protocol family.
const (
	Raw    = 1 // raw sockets
	BCM    = 2 // broadcast manager
	TP16   = 3 // VAG transport protocol v1.6
	TP20   = 4 // VAG transport protocol v2.0
	MCNet  = 5 // Bosch MCNet
	ISOTP  = 6 // ISO 15765-2 transport protocol
	J1939  = 7 // SAE J1939
	NProto = 8
)

// Address and option-level values.
const (
	// AFCAN is the CAN socket address family.
	AFCAN = 29
	// PFCAN is the CAN protocol family, identical to the address family.
	PFCAN = AFCAN
	// SolCANBase is the base socket option level for CAN protocols.
	SolCANBase = 100
	// SolCANRaw is the socket option level for raw CAN sockets.
	SolCANRaw = SolCANBase + Raw
)

// Socket options at the SolCANRaw level.
const (
	RawFilter      = 1 // set acceptance filters
	RawErrFilter   = 2 // set error frame filter mask
	RawLoopback    = 3 // enable or disable local loopback
	RawRecvOwnMsgs = 4 // receive frames sent by this socket
	RawFDFrames    = 5 // allow FD frames
	RawJoinFilters = 6 // all filters must match instead of any
	RawXLFrames    = 7 // allow XL frames

	// RawFilterMax is the most filters a raw socket accepts.
	RawFilterMax = 512
)

// InvFilter inverts a filter when set in its ID field.
const InvFilter uint32 = 0x20000000

// SockaddrSize is the size of the sockaddr_can structure: family and
// padding, interface index, and the 16-byte protocol address.
const SockaddrSize = 24
