package textrange

// LineOffsetIndex maps 0-based line numbers to the character offset at which
// each line begins. It is built once per document version with a single
// linear scan and is never mutated afterwards; offsets are only valid for
// the exact text they were computed from.
type LineOffsetIndex struct {
	offsets []int
}

// NewLineOffsetIndex scans text and records the starting offset of every
// line. Construction never fails: empty text degenerates to a single zero
// offset. Each line terminator is inspected individually, so documents that
// mix bare linefeeds with carriage-return-linefeed pairs index correctly.
func NewLineOffsetIndex(text string) *LineOffsetIndex {
	offsets := []int{0}
	for i := 0; i < len(text); i++ {
		if text[i] != '\n' {
			continue
		}
		offsets = append(offsets, i+1)
	}
	return &LineOffsetIndex{offsets: offsets}
}

// OffsetOf returns the character offset at which the 0-based line begins.
// Out-of-range queries return 0 rather than failing: range translation
// upstream may legitimately produce an index one past the last line.
func (x *LineOffsetIndex) OffsetOf(line int) int {
	if line < 0 || line >= len(x.offsets) {
		return 0
	}
	return x.offsets[line]
}

// LineCount returns the number of content lines in the indexed text. The
// entry recorded after the final terminator is bookkeeping, not content,
// so the count is one less than the number of recorded offsets.
func (x *LineOffsetIndex) LineCount() int {
	return len(x.offsets) - 1
}

// Offsets returns a copy of the recorded line-start offsets.
func (x *LineOffsetIndex) Offsets() []int {
	out := make([]int, len(x.offsets))
	copy(out, x.offsets)
	return out
}
