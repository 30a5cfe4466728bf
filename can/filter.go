package can

import (
	"encoding/binary"

	"github.com/cespare/xxhash/v2"
)

// FilterSize is the size of one can_filter structure.
const FilterSize = 8

// Filter is a kernel acceptance filter (struct can_filter). A received
// frame is delivered when received_id & Mask == ID & Mask. Filters are
// comparable values; equal (ID, Mask) pairs are equal filters.
type Filter struct {
	// ID is the identifier pattern, optionally carrying InvFilter.
	ID uint32
	// Mask selects which identifier bits the pattern constrains.
	Mask uint32
}

// NewStandardFilter matches a single standard (11-bit) identifier.
func NewStandardFilter(id uint32) Filter {
	return Filter{ID: id, Mask: SFFMask}
}

// NewStandardInvFilter matches every standard identifier except id.
func NewStandardInvFilter(id uint32) Filter {
	return Filter{ID: id | InvFilter, Mask: SFFMask}
}

// NewExtendedFilter matches a single extended (29-bit) identifier.
func NewExtendedFilter(id uint32) Filter {
	return Filter{ID: id, Mask: EFFMask}
}

// NewExtendedInvFilter matches every extended identifier except id.
func NewExtendedInvFilter(id uint32) Filter {
	return Filter{ID: id | InvFilter, Mask: EFFMask}
}

// Match reports whether the filter accepts the given identifier-with-flags,
// honoring InvFilter.
func (f Filter) Match(id uint32) bool {
	hit := id&f.Mask == (f.ID&^InvFilter)&f.Mask
	if f.ID&InvFilter != 0 {
		return !hit
	}
	return hit
}

// Equal reports whether two filters have the same pattern and mask.
func (f Filter) Equal(o Filter) bool { return f == o }

// Hash returns a stable 64-bit hash of the filter, suitable for
// deduplicating filter sets. Equal filters hash identically.
func (f Filter) Hash() uint64 {
	var b [FilterSize]byte
	binary.LittleEndian.PutUint32(b[0:4], f.ID)
	binary.LittleEndian.PutUint32(b[4:8], f.Mask)
	return xxhash.Sum64(b[:])
}

// MarshalBinary encodes the filter into its 8-byte kernel image.
func (f Filter) MarshalBinary() ([]byte, error) {
	buf := make([]byte, FilterSize)
	binary.NativeEndian.PutUint32(buf[0:4], f.ID)
	binary.NativeEndian.PutUint32(buf[4:8], f.Mask)
	return buf, nil
}

// AppendFilters encodes a filter list into one contiguous buffer, the form
// the RawFilter socket option expects.
func AppendFilters(dst []byte, filters []Filter) []byte {
	for _, f := range filters {
		dst = binary.NativeEndian.AppendUint32(dst, f.ID)
		dst = binary.NativeEndian.AppendUint32(dst, f.Mask)
	}
	return dst
}
