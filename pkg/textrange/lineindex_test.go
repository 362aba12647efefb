package textrange_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/yaklabco/gitfmt/pkg/textrange"
)

func TestLineOffsetIndexUnix(t *testing.T) {
	t.Parallel()

	idx := textrange.NewLineOffsetIndex("a\nb\nc\n")

	assert.Equal(t, []int{0, 2, 4, 6}, idx.Offsets())
	assert.Equal(t, 3, idx.LineCount())
}

func TestLineOffsetIndexWindows(t *testing.T) {
	t.Parallel()

	idx := textrange.NewLineOffsetIndex("a\r\nb\r\nc\r\n")

	assert.Equal(t, []int{0, 3, 6, 9}, idx.Offsets())
	assert.Equal(t, 3, idx.LineCount())
}

func TestLineOffsetIndexMixedEndings(t *testing.T) {
	t.Parallel()

	// One CRLF boundary between two LF boundaries.
	idx := textrange.NewLineOffsetIndex("a\nbb\r\nc\n")

	assert.Equal(t, []int{0, 2, 6, 8}, idx.Offsets())
	assert.Equal(t, 3, idx.LineCount())
}

func TestLineOffsetIndexEmpty(t *testing.T) {
	t.Parallel()

	idx := textrange.NewLineOffsetIndex("")

	assert.Equal(t, []int{0}, idx.Offsets())
	assert.Equal(t, 0, idx.LineCount())
	assert.Equal(t, 0, idx.OffsetOf(0))
}

func TestOffsetOfOutOfBounds(t *testing.T) {
	t.Parallel()

	idx := textrange.NewLineOffsetIndex("a\nb\nc\n")

	assert.Equal(t, 0, idx.OffsetOf(-1))
	assert.Equal(t, 0, idx.OffsetOf(math.MaxInt))
	assert.Equal(t, 0, idx.OffsetOf(len(idx.Offsets())))
}

func TestOffsetOfInBounds(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		text string
		line int
		want int
	}{
		{name: "first line", text: "alpha\nbeta\n", line: 0, want: 0},
		{name: "second line", text: "alpha\nbeta\n", line: 1, want: 6},
		{name: "bookkeeping entry past final line", text: "alpha\nbeta\n", line: 2, want: 11},
		{name: "crlf second line", text: "alpha\r\nbeta\r\n", line: 1, want: 7},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			idx := textrange.NewLineOffsetIndex(tt.text)
			assert.Equal(t, tt.want, idx.OffsetOf(tt.line))
		})
	}
}
