package socketcan

import (
	"testing"

	"github.com/saronic-technologies/socketcan-go/can"
)

func TestFilters_Basics(t *testing.T) {
	f1 := MustFrame(0x100, []byte{1})
	f2 := MustFrame(0x101, []byte{2})
	f3 := Frame{ID: 0x1ABCDEFF, Extended: true}

	if !ByID(0x100)(f1) || ByID(0x100)(f2) {
		t.Fatalf("ByID failure")
	}
	if !ByIDs(0x100, 0x102)(f1) || ByIDs(0x100, 0x102)(f2) {
		t.Fatalf("ByIDs failure")
	}
	// Use a mask that distinguishes 0x100 from 0x101 (all 11 std bits)
	if !ByMask(0x100, 0x7FF)(f1) || ByMask(0x100, 0x7FF)(f2) {
		t.Fatalf("ByMask failure")
	}
	if !StandardOnly()(f1) || StandardOnly()(f3) {
		t.Fatalf("StandardOnly failure")
	}
	if !ExtendedOnly()(f3) || ExtendedOnly()(f1) {
		t.Fatalf("ExtendedOnly failure")
	}
	rtr := f1
	rtr.RTR = true
	if !DataOnly()(f1) || DataOnly()(rtr) {
		t.Fatalf("DataOnly failure")
	}
	if !RTROnly()(rtr) || RTROnly()(f1) {
		t.Fatalf("RTROnly failure")
	}
	if !And(ByID(0x100), DataOnly())(f1) || And(ByID(0x100), DataOnly())(rtr) {
		t.Fatalf("And failure")
	}
	if !Or(ByID(0x100), ByID(0x999))(f1) || Or(ByID(0x998), ByID(0x999))(f1) {
		t.Fatalf("Or failure")
	}
	if Not(ByID(0x100))(f1) || !Not(ByID(0x999))(f1) {
		t.Fatalf("Not failure")
	}
}

func TestByKernelFilter(t *testing.T) {
	accept := ByKernelFilter(can.NewStandardFilter(0x123))
	if !accept(MustFrame(0x123, nil)) || accept(MustFrame(0x124, nil)) {
		t.Fatalf("kernel filter mismatch on standard ids")
	}

	// The standard mask ignores the extended bits, matching the kernel.
	ext := Frame{ID: 0x1ABCD123, Extended: true}
	if !accept(ext) {
		t.Fatalf("standard-mask filter should pass extended id with matching low bits")
	}

	inv := ByKernelFilter(can.NewStandardInvFilter(0x123))
	if inv(MustFrame(0x123, nil)) || !inv(MustFrame(0x124, nil)) {
		t.Fatalf("inverted filter mismatch")
	}
}
