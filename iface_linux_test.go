//go:build linux

package socketcan

import (
	"testing"
)

func TestIfIndex_Loopback(t *testing.T) {
	idx, err := IfIndex("lo")
	if err != nil {
		t.Fatalf("IfIndex(lo): %v", err)
	}
	if idx <= 0 {
		t.Fatalf("loopback index = %d, want > 0", idx)
	}
}

func TestIfIndex_Unknown(t *testing.T) {
	if _, err := IfIndex("candoesnotexist0"); err == nil {
		t.Fatalf("expected error for unknown interface")
	}
}

func TestIsInterfaceUp_Loopback(t *testing.T) {
	up, err := IsInterfaceUp("lo")
	if err != nil {
		t.Fatalf("IsInterfaceUp(lo): %v", err)
	}
	if !up {
		t.Fatalf("loopback should be up")
	}
}
