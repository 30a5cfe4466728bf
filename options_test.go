package socketcan

import (
	"strings"
	"testing"

	"github.com/saronic-technologies/socketcan-go/can"
)

func TestSetFilters_LimitEnforcedBeforeSyscall(t *testing.T) {
	var s Socket

	filters := make([]can.Filter, can.RawFilterMax+1)
	err := s.SetFilters(filters)
	if err == nil {
		t.Fatalf("expected error for oversized filter list")
	}
	if !strings.Contains(err.Error(), "exceeds limit") {
		t.Fatalf("error should report the filter limit, got %v", err)
	}
}
