package marker_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yaklabco/gitfmt/pkg/marker"
	"github.com/yaklabco/gitfmt/pkg/textrange"
)

const testUID = "deadbeefcafe0123"

func TestTokenLineComment(t *testing.T) {
	t.Parallel()

	token, err := marker.Token(testUID, "go")
	require.NoError(t, err)
	assert.Equal(t, "// gitfmt:deadbeefcafe0123:go", token)
}

func TestTokenBlockComment(t *testing.T) {
	t.Parallel()

	token, err := marker.Token(testUID, "css")
	require.NoError(t, err)
	assert.Equal(t, "/* gitfmt:deadbeefcafe0123:css */", token)
}

func TestTokenUnsupportedLanguage(t *testing.T) {
	t.Parallel()

	_, err := marker.Token(testUID, "json")
	var unsupported *marker.UnsupportedLanguageError
	require.ErrorAs(t, err, &unsupported)
	assert.Equal(t, "json", unsupported.Language)
}

func TestNewUIDUnique(t *testing.T) {
	t.Parallel()

	a := marker.NewUID()
	b := marker.NewUID()
	assert.NotEmpty(t, a)
	assert.NotEqual(t, a, b)
}

func TestInsertMarkersSingleRange(t *testing.T) {
	t.Parallel()

	text := "one\ntwo\nthree\nfour\n"
	marked, err := marker.InsertMarkers(text, []textrange.ChangeRange{textrange.MustNew(2, 4)}, "go", testUID)
	require.NoError(t, err)

	token, err := marker.Token(testUID, "go")
	require.NoError(t, err)

	want := "one\n" + token + "\ntwo\nthree\n" + token + "\nfour\n"
	assert.Equal(t, want, marked)
}

func TestInsertMarkersNormalizesTrailingNewline(t *testing.T) {
	t.Parallel()

	marked, err := marker.InsertMarkers("one\ntwo", []textrange.ChangeRange{textrange.MustNew(1, 2)}, "go", testUID)
	require.NoError(t, err)
	assert.True(t, strings.HasSuffix(marked, "\n"))
}

func TestInsertMarkersMultipleRangesAnyOrder(t *testing.T) {
	t.Parallel()

	text := "l1\nl2\nl3\nl4\nl5\nl6\n"
	ranges := []textrange.ChangeRange{
		textrange.MustNew(1, 2), // supplied lowest first on purpose
		textrange.MustNew(4, 6),
	}

	marked, err := marker.InsertMarkers(text, ranges, "python", testUID)
	require.NoError(t, err)

	token, err := marker.Token(testUID, "python")
	require.NoError(t, err)

	want := token + "\nl1\n" + token + "\nl2\nl3\n" + token + "\nl4\nl5\n" + token + "\nl6\n"
	assert.Equal(t, want, marked)
}

func TestInsertMarkersRangeToLastLine(t *testing.T) {
	t.Parallel()

	text := "a\nb\n"
	marked, err := marker.InsertMarkers(text, []textrange.ChangeRange{textrange.MustNew(2, 3)}, "go", testUID)
	require.NoError(t, err)

	token, err := marker.Token(testUID, "go")
	require.NoError(t, err)
	assert.Equal(t, "a\n"+token+"\nb\n"+token+"\n", marked)
}

func TestInsertMarkersUnsupportedLanguage(t *testing.T) {
	t.Parallel()

	_, err := marker.InsertMarkers("x\n", []textrange.ChangeRange{textrange.MustNew(1, 2)}, "brainfuck", testUID)
	var unsupported *marker.UnsupportedLanguageError
	require.ErrorAs(t, err, &unsupported)
}

func TestMergeRoundTripIdentity(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		text   string
		ranges []textrange.ChangeRange
		lang   string
	}{
		{
			name:   "single interior range",
			text:   "one\ntwo\nthree\nfour\n",
			ranges: []textrange.ChangeRange{textrange.MustNew(2, 4)},
			lang:   "go",
		},
		{
			name:   "two ranges",
			text:   "l1\nl2\nl3\nl4\nl5\nl6\n",
			ranges: []textrange.ChangeRange{textrange.MustNew(1, 2), textrange.MustNew(4, 6)},
			lang:   "typescript",
		},
		{
			name:   "range covering whole document",
			text:   "a\nb\nc\n",
			ranges: []textrange.ChangeRange{textrange.MustNew(1, 4)},
			lang:   "ruby",
		},
		{
			name:   "crlf document",
			text:   "a\r\nb\r\nc\r\n",
			ranges: []textrange.ChangeRange{textrange.MustNew(2, 3)},
			lang:   "go",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			marked, err := marker.InsertMarkers(tt.text, tt.ranges, tt.lang, testUID)
			require.NoError(t, err)

			// Identity formatter: the marked text comes back untouched.
			merged, err := marker.MergeMarkedSections(marked, marked, tt.lang, testUID)
			require.NoError(t, err)

			assert.Equal(t, tt.text, merged)
		})
	}
}

func TestMergeTakesInteriorFromFormatted(t *testing.T) {
	t.Parallel()

	text := "keep1\nold\nkeep2\n"
	marked, err := marker.InsertMarkers(text, []textrange.ChangeRange{textrange.MustNew(2, 3)}, "go", testUID)
	require.NoError(t, err)

	// Simulate a formatter that rewrites the fenced interior and mangles
	// the exterior; only the interior change must survive the merge.
	formatted := strings.ReplaceAll(marked, "old", "new")
	formatted = strings.ReplaceAll(formatted, "keep1", "MANGLED")

	merged, err := marker.MergeMarkedSections(marked, formatted, "go", testUID)
	require.NoError(t, err)
	assert.Equal(t, "keep1\nnew\nkeep2\n", merged)
}

func TestMergeToleratesMarkerIndentation(t *testing.T) {
	t.Parallel()

	text := "keep\nold\ntail\n"
	marked, err := marker.InsertMarkers(text, []textrange.ChangeRange{textrange.MustNew(2, 3)}, "javascript", testUID)
	require.NoError(t, err)

	token, err := marker.Token(testUID, "javascript")
	require.NoError(t, err)

	// A formatter may re-indent the marker comment line.
	formatted := strings.ReplaceAll(marked, token+"\n", "  "+token+"  \n")

	merged, err := marker.MergeMarkedSections(marked, formatted, "javascript", testUID)
	require.NoError(t, err)
	assert.Equal(t, text, merged)
}

func TestMergeMismatchDetected(t *testing.T) {
	t.Parallel()

	text := "one\ntwo\nthree\n"
	marked, err := marker.InsertMarkers(text, []textrange.ChangeRange{textrange.MustNew(2, 3)}, "go", testUID)
	require.NoError(t, err)

	token, err := marker.Token(testUID, "go")
	require.NoError(t, err)

	// Strip one marker from the formatted side only.
	stripped := strings.Replace(marked, token+"\n", "", 1)

	_, err = marker.MergeMarkedSections(marked, stripped, "go", testUID)
	var mismatch *marker.MarkerMismatchError
	require.ErrorAs(t, err, &mismatch)
	assert.NotEqual(t, mismatch.OriginalSegments, mismatch.FormattedSegments)
}

func TestSupported(t *testing.T) {
	t.Parallel()

	assert.True(t, marker.Supported("go"))
	assert.True(t, marker.Supported("markdown"))
	assert.False(t, marker.Supported("json"))
	assert.False(t, marker.Supported(""))
}
