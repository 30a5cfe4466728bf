package socketcan

import (
	"github.com/saronic-technologies/socketcan-go/can"
)

// FrameFilter decides whether a frame should be delivered to a consumer.
// These run in user space; for kernel-side filtering use Socket.SetFilters
// with can.Filter values.
type FrameFilter func(Frame) bool

// ByID matches frames with the exact identifier.
func ByID(id uint32) FrameFilter {
	return func(f Frame) bool { return f.ID == id }
}

// ByIDs matches any of the provided identifiers.
func ByIDs(ids ...uint32) FrameFilter {
	m := make(map[uint32]struct{}, len(ids))
	for _, id := range ids {
		m[id] = struct{}{}
	}
	return func(f Frame) bool {
		_, ok := m[f.ID]
		return ok
	}
}

// ByMask matches when frame.ID & mask == id & mask.
func ByMask(id, mask uint32) FrameFilter {
	want := id & mask
	return func(f Frame) bool { return f.ID&mask == want }
}

// ByKernelFilter applies a kernel acceptance filter in user space, with the
// same semantics (including InvFilter) the kernel would apply. Useful to
// pre-verify a filter set against recorded traffic.
func ByKernelFilter(flt can.Filter) FrameFilter {
	return func(f Frame) bool {
		raw, err := f.Raw()
		if err != nil {
			return false
		}
		return flt.Match(raw.ID)
	}
}

// StandardOnly matches standard (11-bit) identifiers.
func StandardOnly() FrameFilter {
	return func(f Frame) bool { return !f.Extended }
}

// ExtendedOnly matches extended (29-bit) identifiers.
func ExtendedOnly() FrameFilter {
	return func(f Frame) bool { return f.Extended }
}

// DataOnly matches non-RTR, non-error frames.
func DataOnly() FrameFilter {
	return func(f Frame) bool { return !f.RTR && !f.Err }
}

// RTROnly matches remote transmission request frames.
func RTROnly() FrameFilter {
	return func(f Frame) bool { return f.RTR }
}

// And composes two filters; the result matches when both match.
func And(a, b FrameFilter) FrameFilter {
	switch {
	case a == nil:
		return b
	case b == nil:
		return a
	default:
		return func(f Frame) bool { return a(f) && b(f) }
	}
}

// Or composes two filters; the result matches when either matches.
func Or(a, b FrameFilter) FrameFilter {
	switch {
	case a == nil:
		return b
	case b == nil:
		return a
	default:
		return func(f Frame) bool { return a(f) || b(f) }
	}
}

// Not inverts a filter.
func Not(a FrameFilter) FrameFilter {
	if a == nil {
		return func(Frame) bool { return true }
	}
	return func(f Frame) bool { return !a(f) }
}
