package socketcan

import (
	"errors"
	"fmt"
	"strings"

	"github.com/saronic-technologies/socketcan-go/can"
)

// Frame is a classic CAN (2.0A/2.0B) frame in unpacked form: the flag bits
// of the kernel identifier field are broken out and the numeric identifier
// is already masked.
//
// For FD and XL traffic use the raw can.FDFrame/can.XLFrame types with the
// Socket's typed read/write methods.
type Frame struct {
	ID       uint32 // 11-bit (standard) or 29-bit (extended)
	Extended bool   // 29-bit identifier
	RTR      bool   // remote transmission request
	Err      bool   // error message frame; ID carries the error class
	Len      uint8  // 0..8
	Data     [8]byte
}

var (
	ErrInvalidID  = errors.New("socketcan: invalid identifier")
	ErrInvalidLen = errors.New("socketcan: invalid data length")
)

// Validate returns an error if the frame is not a transmittable classic
// frame.
func (f Frame) Validate() error {
	if f.Len > can.MaxDLen {
		return ErrInvalidLen
	}
	max := uint32(can.SFFMask)
	if f.Extended {
		max = can.EFFMask
	} else if f.Err {
		max = can.ErrMask
	}
	if f.ID > max {
		return ErrInvalidID
	}
	return nil
}

// MustFrame constructs a Frame and panics if invalid. Convenience for tests
// and examples. Identifiers above the standard range become extended.
func MustFrame(id uint32, data []byte) Frame {
	var f Frame
	f.ID = id
	if id > can.SFFMask {
		f.Extended = true
	}
	if len(data) > can.MaxDLen {
		panic(ErrInvalidLen)
	}
	f.Len = uint8(len(data))
	copy(f.Data[:], data)
	if err := f.Validate(); err != nil {
		panic(err)
	}
	return f
}

// Raw packs the frame into its kernel representation, folding the flag
// booleans back into the identifier field.
func (f Frame) Raw() (can.Frame, error) {
	if err := f.Validate(); err != nil {
		return can.Frame{}, err
	}
	id := f.ID
	if f.Extended {
		id |= can.EFFFlag
	}
	if f.RTR {
		id |= can.RTRFlag
	}
	if f.Err {
		id |= can.ErrFlag
	}
	r := can.Frame{ID: id, DLC: f.Len}
	copy(r.Data[:], f.Data[:])
	return r, nil
}

// FromRaw unpacks a kernel frame. The numeric identifier is masked by the
// format's mask; flag bits become the booleans.
func FromRaw(r can.Frame) (Frame, error) {
	if err := r.Validate(); err != nil {
		return Frame{}, err
	}
	f := Frame{
		Extended: r.ID&can.EFFFlag != 0,
		RTR:      r.ID&can.RTRFlag != 0,
		Err:      r.ID&can.ErrFlag != 0,
		Len:      r.DLC,
	}
	switch {
	case f.Extended:
		f.ID = r.ID & can.EFFMask
	case f.Err:
		// Error class bits span the full 29-bit field.
		f.ID = r.ID & can.ErrMask
	default:
		f.ID = r.ID & can.SFFMask
	}
	copy(f.Data[:], r.Data[:])
	return f, nil
}

// MarshalBinary encodes the frame to the 16-byte struct can_frame image.
func (f Frame) MarshalBinary() ([]byte, error) {
	r, err := f.Raw()
	if err != nil {
		return nil, err
	}
	return r.MarshalBinary()
}

// UnmarshalBinary decodes a 16-byte struct can_frame image.
func (f *Frame) UnmarshalBinary(data []byte) error {
	var r can.Frame
	if err := r.UnmarshalBinary(data); err != nil {
		return err
	}
	g, err := FromRaw(r)
	if err != nil {
		return err
	}
	*f = g
	return nil
}

// String renders the frame in candump-like form: identifier, length, data
// bytes, with an RTR marker for remote frames.
func (f Frame) String() string {
	var b strings.Builder
	if f.Extended {
		fmt.Fprintf(&b, "%08X", f.ID)
	} else {
		fmt.Fprintf(&b, "%03X", f.ID)
	}
	fmt.Fprintf(&b, " [%d]", f.Len)
	if f.RTR {
		b.WriteString(" RTR")
		return b.String()
	}
	for _, d := range f.Data[:f.Len] {
		fmt.Fprintf(&b, " %02X", d)
	}
	return b.String()
}
