package interval

import (
	"testing"

	"github.com/grailbio/testutil/expect"
)

func TestIntersect(t *testing.T) {
	tests := []struct {
		a, b    OpenInterval
		want    OpenInterval
		overlap bool
	}{
		{New(0, 10), New(5, 15), New(5, 10), true},
		{New(5, 15), New(0, 10), New(5, 10), true},
		{New(0, 10), New(2, 8), New(2, 8), true},
		{New(0, 10), New(0, 10), New(0, 10), true},
		// Touching endpoints do not overlap.
		{New(0, 10), New(10, 20), OpenInterval{}, false},
		{New(10, 20), New(0, 10), OpenInterval{}, false},
		// Disjoint.
		{New(0, 5), New(7, 9), OpenInterval{}, false},
		// Zero-width intervals overlap nothing, not even themselves.
		{New(5, 5), New(0, 10), OpenInterval{}, false},
		{New(5, 5), New(5, 5), OpenInterval{}, false},
	}
	for _, tt := range tests {
		got, ok := tt.a.Intersect(tt.b)
		expect.EQ(t, ok, tt.overlap, "%v vs %v", tt.a, tt.b)
		expect.EQ(t, got, tt.want, "%v vs %v", tt.a, tt.b)
	}
}

func TestLenContains(t *testing.T) {
	i := New(3, 8)
	expect.EQ(t, i.Len(), 5)
	expect.True(t, i.Contains(3))
	expect.True(t, i.Contains(7))
	expect.False(t, i.Contains(8))
	expect.False(t, i.Contains(2))
	expect.EQ(t, i.String(), "[3, 8)")
	expect.EQ(t, New(4, 4).Len(), 0)
}
