package can

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFilter_EqualityAndHash(t *testing.T) {
	a := Filter{ID: 0x123, Mask: SFFMask}
	b := Filter{ID: 0x123, Mask: SFFMask}
	c := Filter{ID: 0x124, Mask: SFFMask}
	d := Filter{ID: 0x123, Mask: EFFMask}

	assert.True(t, a.Equal(b))
	assert.Equal(t, a.Hash(), b.Hash())

	assert.False(t, a.Equal(c))
	assert.False(t, a.Equal(d))
	assert.NotEqual(t, a.Hash(), c.Hash())
	assert.NotEqual(t, a.Hash(), d.Hash())

	// Comparable values work as map keys, so filter sets deduplicate.
	set := map[Filter]struct{}{a: {}, b: {}, c: {}}
	assert.Len(t, set, 2)
}

func TestFilter_Match(t *testing.T) {
	std := NewStandardFilter(0x123)
	assert.True(t, std.Match(0x123))
	assert.False(t, std.Match(0x124))
	// Flag bits are outside the standard mask.
	assert.True(t, std.Match(0x123|RTRFlag))

	inv := NewStandardInvFilter(0x123)
	assert.False(t, inv.Match(0x123))
	assert.True(t, inv.Match(0x124))

	ext := NewExtendedFilter(0x1ABCDEFF)
	assert.True(t, ext.Match(0x1ABCDEFF))
	assert.False(t, ext.Match(0x1ABCDEFE))
}

func TestFilter_Marshal(t *testing.T) {
	f := Filter{ID: 0x42, Mask: 0x7FF}

	buf, err := f.MarshalBinary()
	assert.NoError(t, err)
	assert.Len(t, buf, FilterSize)

	all := AppendFilters(nil, []Filter{f, NewExtendedFilter(0x1)})
	assert.Len(t, all, 2*FilterSize)
}
