package marker

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"regexp"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/yaklabco/gitfmt/pkg/textrange"
)

// MarkerMismatchError indicates the formatted text no longer splits into the
// same number of fenced segments as the original. A formatter that rewrites
// or removes a marker comment makes the round trip unrecoverable.
type MarkerMismatchError struct {
	OriginalSegments  int
	FormattedSegments int
}

func (e *MarkerMismatchError) Error() string {
	return fmt.Sprintf("marker mismatch: original splits into %d segments, formatted into %d",
		e.OriginalSegments, e.FormattedSegments)
}

// NewUID returns a random identifier suitable for scoping marker tokens to
// one process invocation. Generate it once at startup and pass it by value.
func NewUID() string {
	var b [8]byte
	if _, err := rand.Read(b[:]); err != nil {
		return strconv.FormatInt(time.Now().UnixNano(), 16)
	}
	return hex.EncodeToString(b[:])
}

// Token returns the comment-wrapped marker for the given uid and language.
// The token is unique per (process, language) pair and syntactically inert
// in the target language, so it can never collide with legitimate source.
func Token(uid, language string) (string, error) {
	g, err := grammarFor(language)
	if err != nil {
		return "", err
	}
	return g.wrap("gitfmt:" + uid + ":" + language), nil
}

// InsertMarkers brackets every change range in text with a start and end
// marker, each on its own line. The text is first normalized to end with a
// line terminator. Insertion runs highest offset first: the end marker of a
// range goes in before its start marker, and ranges are processed in
// descending start-offset order, so offsets computed against the original
// text stay valid while the running text grows.
//
// It fails with an *UnsupportedLanguageError, before mutating anything, when
// language has no registered comment grammar.
func InsertMarkers(text string, ranges []textrange.ChangeRange, language, uid string) (string, error) {
	token, err := Token(uid, language)
	if err != nil {
		return "", err
	}

	if !strings.HasSuffix(text, "\n") {
		text += "\n"
	}

	idx := textrange.NewLineOffsetIndex(text)

	sorted := make([]textrange.ChangeRange, len(ranges))
	copy(sorted, ranges)
	sort.Slice(sorted, func(i, j int) bool {
		return sorted[i].Start() > sorted[j].Start()
	})

	line := token + "\n"
	for _, r := range sorted {
		// A range reaching past the final content line fences up to the end
		// of the document.
		endOff := len(text)
		if r.End() <= idx.LineCount() {
			endOff = idx.OffsetOf(r.End())
		}
		startOff := idx.OffsetOf(r.Start())

		text = text[:endOff] + line + text[endOff:]
		text = text[:startOff] + line + text[startOff:]
	}

	return text, nil
}

// Split divides marked text on the marker token for (uid, language),
// consuming surrounding horizontal whitespace and one trailing line
// terminator with each token. Segments alternate outside, inside, outside.
func Split(marked, language, uid string) ([]string, error) {
	token, err := Token(uid, language)
	if err != nil {
		return nil, err
	}
	re := regexp.MustCompile(`[ \t]*` + regexp.QuoteMeta(token) + `[ \t]*\r?\n?`)
	return re.Split(marked, -1), nil
}

// MergeMarkedSections splits the marked-up original and the marked-up
// formatted text on the marker token (consuming surrounding horizontal
// whitespace and one trailing line terminator with it) and recombines them:
// segments outside any range come from the original, segments inside come
// from the formatted text. Everything outside a requested range is therefore
// byte-identical to the original, whatever the formatter did to it.
func MergeMarkedSections(originalMarked, formattedMarked, language, uid string) (string, error) {
	origSegs, err := Split(originalMarked, language, uid)
	if err != nil {
		return "", err
	}
	fmtSegs, err := Split(formattedMarked, language, uid)
	if err != nil {
		return "", err
	}

	if len(origSegs) != len(fmtSegs) {
		return "", &MarkerMismatchError{
			OriginalSegments:  len(origSegs),
			FormattedSegments: len(fmtSegs),
		}
	}

	var out strings.Builder
	for i, seg := range origSegs {
		if i%2 == 0 {
			out.WriteString(seg)
		} else {
			out.WriteString(fmtSegs[i])
		}
	}
	return out.String(), nil
}
