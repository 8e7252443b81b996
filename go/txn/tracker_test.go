package txn

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestGenerateRequestIDFormat(t *testing.T) {
	var seen = make(map[string]struct{})
	for i := 0; i < 1000; i++ {
		var id = GenerateRequestID()
		require.Len(t, id, 18)
		require.True(t, strings.HasPrefix(id, "RQ"))
		require.Regexp(t, "^RQ[0-9a-f]{16}$", id)

		_, dup := seen[id]
		require.False(t, dup, "duplicate request id %s", id)
		seen[id] = struct{}{}
	}
}

func TestMarkCommentRoundTrip(t *testing.T) {
	var id = GenerateRequestID()

	var marked = MarkComment("", id)
	require.Equal(t, id, marked)
	got, ok := ExtractRequestID(marked)
	require.True(t, ok)
	require.Equal(t, id, got)

	marked = MarkComment("scalper-7", id)
	require.Equal(t, id+"|scalper-7", marked)
	require.LessOrEqual(t, len(marked), 31)
	got, ok = ExtractRequestID(marked)
	require.True(t, ok)
	require.Equal(t, id, got)
}

func TestMarkCommentTruncatesLongComments(t *testing.T) {
	var id = GenerateRequestID()
	var marked = MarkComment("a comment far longer than the terminal permits", id)
	require.LessOrEqual(t, len(marked), 31)
	require.True(t, strings.HasPrefix(marked, id+"|"))

	got, ok := ExtractRequestID(marked)
	require.True(t, ok)
	require.Equal(t, id, got)
}

func TestExtractRequestIDRejectsMalformedComments(t *testing.T) {
	var cases = []string{
		"",
		"manual order",
		"RQ",
		"RQshort",
		"RQ00112233445566",        // 16 chars total, too short
		"RQ00112233445566778",     // 19 chars, too long
		"XX0011223344556677",      // wrong prefix
		"RQ001122334455667z",      // non-hex
		"RQ0011223344556677extra", // no separator before trailing text
	}
	for _, comment := range cases {
		var _, ok = ExtractRequestID(comment)
		require.False(t, ok, "comment %q", comment)
	}
}
