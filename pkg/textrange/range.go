// Package textrange provides the line-interval and line-offset primitives
// used to reformat only the changed portion of a document.
package textrange

import "fmt"

// InvalidRangeError indicates a ChangeRange was constructed with bounds
// that do not describe a non-empty interval.
type InvalidRangeError struct {
	Lower int
	Upper int
}

func (e *InvalidRangeError) Error() string {
	return fmt.Sprintf("invalid change range: lower bound %d must be strictly less than upper bound %d", e.Lower, e.Upper)
}

// ChangeRange is one contiguous span of changed lines, normalized from a
// diff hunk. Bounds are 1-based: the lower bound is the first changed line
// (inclusive), the upper bound is one past the last changed line (exclusive).
// The zero value is not valid; construct with New.
type ChangeRange struct {
	lower int
	upper int
}

// New validates and constructs a ChangeRange from 1-based bounds.
// Equal or flipped bounds fail with an *InvalidRangeError.
func New(lower, upper int) (ChangeRange, error) {
	if lower >= upper {
		return ChangeRange{}, &InvalidRangeError{Lower: lower, Upper: upper}
	}
	return ChangeRange{lower: lower, upper: upper}, nil
}

// MustNew is New for bounds known to be valid, such as test fixtures.
// It panics on invalid bounds.
func MustNew(lower, upper int) ChangeRange {
	r, err := New(lower, upper)
	if err != nil {
		panic(err)
	}
	return r
}

// Lower returns the 1-based inclusive lower bound.
func (r ChangeRange) Lower() int { return r.lower }

// Upper returns the 1-based exclusive upper bound.
func (r ChangeRange) Upper() int { return r.upper }

// Start returns the 0-based index of the first changed line.
func (r ChangeRange) Start() int { return r.lower - 1 }

// End returns the 0-based index one past the last changed line.
func (r ChangeRange) End() int { return r.upper - 1 }

// ContainsLine reports whether the 1-based line number falls inside the
// range. For New(2, 5) lines 2 through 4 are inside; 1 and 5 are not.
func (r ChangeRange) ContainsLine(line int) bool {
	return line >= r.lower && line < r.upper
}

// Lines returns the range as a human-readable "<start>-<end>" string with
// 1-based inclusive bounds, as used in report annotations.
func (r ChangeRange) Lines() string {
	return fmt.Sprintf("%d-%d", r.lower, r.upper-1)
}

// String implements fmt.Stringer.
func (r ChangeRange) String() string { return r.Lines() }
