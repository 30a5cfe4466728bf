package can

import (
	"encoding/binary"
	"errors"
	"fmt"
)

var (
	// ErrInvalidID reports an identifier whose numeric portion exceeds
	// its format's mask.
	ErrInvalidID = errors.New("can: identifier out of range")
	// ErrInvalidLen reports a payload length above the frame kind's limit.
	ErrInvalidLen = errors.New("can: payload length out of range")
	// ErrFrameFormat reports a frame whose flag bits do not match its kind.
	ErrFrameFormat = errors.New("can: wrong frame format")
)

// Frame is the classic CAN frame structure (struct can_frame), 16 bytes on
// the wire. It is a plain value: construct, copy and discard freely.
type Frame struct {
	// ID holds the numeric identifier together with the EFF/RTR/Err
	// flag bits.
	ID uint32
	// DLC is the payload length in bytes, 0..8. Linux 5.11 renamed the
	// kernel field from can_dlc to len; offset and meaning are unchanged.
	DLC uint8
	// Pad and Res0 are reserved and transmitted as zero.
	Pad  uint8
	Res0 uint8
	// Len8DLC carries raw DLC values 9..15 for 8-byte frames when the
	// controller is in classic DLC mode.
	Len8DLC uint8
	// Data is the payload. Bytes past DLC are not transmitted as payload
	// but still occupy their slots in the 16-byte image.
	Data [MaxDLen]byte
}

// NewFrame returns an all-zero classic frame, the required starting point
// before an exact-size read overwrites it.
func NewFrame() Frame { return Frame{} }

// Validate returns an error if the frame violates the classic CAN limits.
func (f Frame) Validate() error {
	if f.DLC > MaxDLen {
		return ErrInvalidLen
	}
	return validateID(f.ID)
}

// MarshalBinary encodes the frame into its 16-byte kernel image.
//
// Layout (host byte order):
//
//	0..3  id with EFF/RTR/Err flags
//	4     dlc
//	5     pad
//	6     reserved
//	7     len8_dlc
//	8..15 data
func (f Frame) MarshalBinary() ([]byte, error) {
	if err := f.Validate(); err != nil {
		return nil, err
	}
	buf := make([]byte, MTU)
	binary.NativeEndian.PutUint32(buf[0:4], f.ID)
	buf[4] = f.DLC
	buf[5] = f.Pad
	buf[6] = f.Res0
	buf[7] = f.Len8DLC
	copy(buf[8:16], f.Data[:])
	return buf, nil
}

// UnmarshalBinary decodes a 16-byte kernel image. Every field, including the
// payload area past DLC, is overwritten.
func (f *Frame) UnmarshalBinary(data []byte) error {
	if len(data) != MTU {
		return fmt.Errorf("can: frame image must be %d bytes, got %d", MTU, len(data))
	}
	f.ID = binary.NativeEndian.Uint32(data[0:4])
	f.DLC = data[4]
	f.Pad = data[5]
	f.Res0 = data[6]
	f.Len8DLC = data[7]
	copy(f.Data[:], data[8:16])
	return f.Validate()
}

// FD converts the classic frame to its FD representation. The conversion is
// always valid; the FD flag byte starts out zero.
func (f Frame) FD() (FDFrame, error) {
	if err := f.Validate(); err != nil {
		return FDFrame{}, err
	}
	fd := FDFrame{ID: f.ID, Len: f.DLC}
	copy(fd.Data[:], f.Data[:])
	return fd, nil
}

// FDFrame is the CAN FD frame structure (struct canfd_frame), 72 bytes on
// the wire.
type FDFrame struct {
	// ID holds the numeric identifier together with the EFF/RTR/Err
	// flag bits.
	ID uint32
	// Len is the payload length in bytes, 0..64.
	Len uint8
	// Flags holds the FDBRS/FDESI/FDFDF bits.
	Flags uint8
	// Res0 and Res1 are reserved and transmitted as zero.
	Res0 uint8
	Res1 uint8
	// Data is the payload.
	Data [FDMaxDLen]byte
}

// NewFDFrame returns an all-zero FD frame.
func NewFDFrame() FDFrame { return FDFrame{} }

// Validate returns an error if the frame violates the CAN FD limits.
func (f FDFrame) Validate() error {
	if f.Len > FDMaxDLen {
		return ErrInvalidLen
	}
	return validateID(f.ID)
}

// MarshalBinary encodes the frame into its 72-byte kernel image.
//
// Layout (host byte order):
//
//	0..3  id with EFF/RTR/Err flags
//	4     len
//	5     flags (BRS/ESI/FDF)
//	6..7  reserved
//	8..71 data
func (f FDFrame) MarshalBinary() ([]byte, error) {
	if err := f.Validate(); err != nil {
		return nil, err
	}
	buf := make([]byte, FDMTU)
	binary.NativeEndian.PutUint32(buf[0:4], f.ID)
	buf[4] = f.Len
	buf[5] = f.Flags
	buf[6] = f.Res0
	buf[7] = f.Res1
	copy(buf[8:FDMTU], f.Data[:])
	return buf, nil
}

// UnmarshalBinary decodes a 72-byte kernel image.
func (f *FDFrame) UnmarshalBinary(data []byte) error {
	if len(data) != FDMTU {
		return fmt.Errorf("can: FD frame image must be %d bytes, got %d", FDMTU, len(data))
	}
	f.ID = binary.NativeEndian.Uint32(data[0:4])
	f.Len = data[4]
	f.Flags = data[5]
	f.Res0 = data[6]
	f.Res1 = data[7]
	copy(f.Data[:], data[8:FDMTU])
	return f.Validate()
}

// Classic converts the FD frame to a classic frame. It fails if the payload
// does not fit in 8 bytes; the conversion is never implicit.
func (f FDFrame) Classic() (Frame, error) {
	if f.Len > MaxDLen {
		return Frame{}, ErrInvalidLen
	}
	if err := validateID(f.ID); err != nil {
		return Frame{}, err
	}
	c := Frame{ID: f.ID, DLC: f.Len}
	copy(c.Data[:], f.Data[:MaxDLen])
	return c, nil
}

// XLFrame is the CAN XL frame structure (struct canxl_frame). The 12-byte
// header is followed by Len payload bytes; the wire size is never below
// XLMinMTU nor above XLMTU.
type XLFrame struct {
	// Prio is the 11-bit priority; it occupies the identifier field and
	// is masked by XLPrioMask.
	Prio uint32
	// Flags holds the XLFlag/XLSEC bits. XLFlag must be set.
	Flags uint8
	// SDT is the service data type of the payload.
	SDT uint8
	// Len is the payload length in bytes, 1..2048.
	Len uint16
	// AF is the acceptance field.
	AF uint32
	// Data is the payload.
	Data [XLMaxDLen]byte
}

// NewXLFrame returns a zero XL frame with the XL format flag set.
func NewXLFrame() XLFrame { return XLFrame{Flags: XLFlag} }

// Validate returns an error if the frame violates the CAN XL limits.
func (f XLFrame) Validate() error {
	if f.Flags&XLFlag == 0 {
		return ErrFrameFormat
	}
	if f.Prio > XLPrioMask {
		return ErrInvalidID
	}
	if f.Len < XLMinDLen || f.Len > XLMaxDLen {
		return ErrInvalidLen
	}
	return nil
}

// Size reports the frame's wire size: header plus payload, raised to the
// minimum transmission unit when the payload is short.
func (f XLFrame) Size() int {
	n := XLHeaderLen + int(f.Len)
	if n < XLMinMTU {
		n = XLMinMTU
	}
	return n
}

// MarshalBinary encodes the frame into its variable-size kernel image.
//
// Layout (host byte order):
//
//	0..3   prio
//	4      flags (XLF/SEC)
//	5      sdt
//	6..7   len
//	8..11  af
//	12..   data, zero padded up to the minimum transmission unit
func (f XLFrame) MarshalBinary() ([]byte, error) {
	if err := f.Validate(); err != nil {
		return nil, err
	}
	buf := make([]byte, f.Size())
	binary.NativeEndian.PutUint32(buf[0:4], f.Prio)
	buf[4] = f.Flags
	buf[5] = f.SDT
	binary.NativeEndian.PutUint16(buf[6:8], f.Len)
	binary.NativeEndian.PutUint32(buf[8:12], f.AF)
	copy(buf[XLHeaderLen:], f.Data[:f.Len])
	return buf, nil
}

// UnmarshalBinary decodes a kernel image of at least the minimum
// transmission unit. Payload bytes past the decoded length are zeroed so a
// reused buffer never leaks into the frame.
func (f *XLFrame) UnmarshalBinary(data []byte) error {
	if len(data) < XLMinMTU || len(data) > XLMTU {
		return fmt.Errorf("can: XL frame image must be %d..%d bytes, got %d", XLMinMTU, XLMTU, len(data))
	}
	f.Prio = binary.NativeEndian.Uint32(data[0:4])
	f.Flags = data[4]
	f.SDT = data[5]
	f.Len = binary.NativeEndian.Uint16(data[6:8])
	f.AF = binary.NativeEndian.Uint32(data[8:12])
	if err := f.Validate(); err != nil {
		return err
	}
	if len(data) < XLHeaderLen+int(f.Len) {
		return fmt.Errorf("can: XL frame image holds %d payload bytes, header says %d", len(data)-XLHeaderLen, f.Len)
	}
	f.Data = [XLMaxDLen]byte{}
	copy(f.Data[:], data[XLHeaderLen:XLHeaderLen+int(f.Len)])
	return nil
}

// validateID rejects identifiers whose numeric portion exceeds the mask of
// their format. Error frames carry an error class instead of an identifier
// and are exempt.
func validateID(id uint32) error {
	if id&ErrFlag != 0 {
		return nil
	}
	num := id &^ (EFFFlag | RTRFlag)
	if id&EFFFlag != 0 {
		if num > EFFMask {
			return ErrInvalidID
		}
	} else if num > SFFMask {
		return ErrInvalidID
	}
	return nil
}
