package socketcan

import (
	"errors"
	"testing"

	"github.com/saronic-technologies/socketcan-go/can"
)

func TestFrame_Validate_Marshal_Unmarshal_String(t *testing.T) {
	cases := []struct {
		name    string
		frame   Frame
		wantStr string
	}{
		{
			name:    "standard frame with data",
			frame:   MustFrame(0x123, []byte{0xDE, 0xAD}),
			wantStr: "123 [2] DE AD",
		},
		{
			name:    "extended RTR, zero length",
			frame:   Frame{ID: 0x1ABCDEFF, Extended: true, RTR: true, Len: 0},
			wantStr: "1ABCDEFF [0] RTR",
		},
	}

	for _, tc := range cases {
		if err := tc.frame.Validate(); err != nil {
			t.Fatalf("%s: Validate() error = %v", tc.name, err)
		}
		b, err := tc.frame.MarshalBinary()
		if err != nil {
			t.Fatalf("%s: MarshalBinary() error = %v", tc.name, err)
		}
		if len(b) != can.MTU {
			t.Fatalf("%s: image size = %d, want %d", tc.name, len(b), can.MTU)
		}
		var g Frame
		if err := g.UnmarshalBinary(b); err != nil {
			t.Fatalf("%s: UnmarshalBinary() error = %v", tc.name, err)
		}
		if g != tc.frame {
			t.Fatalf("%s: roundtrip mismatch: got %+v want %+v", tc.name, g, tc.frame)
		}
		if got := g.String(); got != tc.wantStr {
			t.Fatalf("%s: String() = %q, want %q", tc.name, got, tc.wantStr)
		}
	}

	// Invalid cases
	{
		f := Frame{ID: 0x800} // standard, out of range
		if err := f.Validate(); !errors.Is(err, ErrInvalidID) {
			t.Fatalf("expected invalid standard ID, got %v", err)
		}
	}
	{
		f := Frame{ID: 0x20000000, Extended: true}
		if err := f.Validate(); !errors.Is(err, ErrInvalidID) {
			t.Fatalf("expected invalid extended ID, got %v", err)
		}
	}
	{
		defer func() {
			if r := recover(); r == nil {
				t.Fatalf("MustFrame should panic for len>8")
			}
		}()
		_ = MustFrame(0x123, make([]byte, 9))
	}
}

func TestFrame_RawConversions(t *testing.T) {
	f := Frame{ID: 0x1ABCDEFF, Extended: true, RTR: true, Len: 1, Data: [8]byte{0x7F}}

	raw, err := f.Raw()
	if err != nil {
		t.Fatalf("Raw(): %v", err)
	}
	if raw.ID != 0x1ABCDEFF|can.EFFFlag|can.RTRFlag {
		t.Fatalf("raw id = %#x", raw.ID)
	}
	if raw.DLC != 1 || raw.Data[0] != 0x7F {
		t.Fatalf("raw payload mismatch: %+v", raw)
	}

	back, err := FromRaw(raw)
	if err != nil {
		t.Fatalf("FromRaw(): %v", err)
	}
	if back != f {
		t.Fatalf("conversion mismatch: got %+v want %+v", back, f)
	}
}

func TestFromRaw_MasksNumericID(t *testing.T) {
	raw := can.Frame{ID: 0x123 | can.RTRFlag, DLC: 0}
	f, err := FromRaw(raw)
	if err != nil {
		t.Fatalf("FromRaw(): %v", err)
	}
	if f.ID != 0x123 || !f.RTR || f.Extended {
		t.Fatalf("unexpected frame: %+v", f)
	}

	errRaw := can.Frame{ID: 0x42 | can.ErrFlag}
	g, err := FromRaw(errRaw)
	if err != nil {
		t.Fatalf("FromRaw(): %v", err)
	}
	if !g.Err {
		t.Fatalf("error flag lost: %+v", g)
	}
}

func TestFromRaw_ErrorClassKeeps29Bits(t *testing.T) {
	// The error class field spans all 29 identifier bits, not just the
	// standard 11.
	const class = 0x01000040
	raw := can.Frame{ID: class | can.ErrFlag}

	f, err := FromRaw(raw)
	if err != nil {
		t.Fatalf("FromRaw(): %v", err)
	}
	if !f.Err || f.Extended {
		t.Fatalf("unexpected flags: %+v", f)
	}
	if f.ID != class {
		t.Fatalf("error class truncated: got %#x want %#x", f.ID, uint32(class))
	}
	if err := f.Validate(); err != nil {
		t.Fatalf("Validate(): %v", err)
	}

	back, err := f.Raw()
	if err != nil {
		t.Fatalf("Raw(): %v", err)
	}
	if back.ID != class|can.ErrFlag {
		t.Fatalf("raw id = %#x", back.ID)
	}
}
