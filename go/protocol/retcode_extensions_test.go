package protocol

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRetcodeName(t *testing.T) {
	require.Equal(t, "DONE", RetcodeName(RetcodeDone))
	require.Equal(t, "TIMEOUT", RetcodeName(RetcodeTimeout))
	require.Equal(t, "CONNECTION", RetcodeName(RetcodeConnection))
	require.Equal(t, "UNKNOWN(31337)", RetcodeName(31337))
}

func TestKnownRetcodes(t *testing.T) {
	var known = KnownRetcodes()
	require.Len(t, known, 43)

	var seen = make(map[int32]struct{}, len(known))
	for _, code := range known {
		require.GreaterOrEqual(t, code, int32(10004))
		require.LessOrEqual(t, code, int32(10045))
		// 10037 is unassigned by the terminal.
		require.NotEqual(t, int32(10037), code)
		seen[code] = struct{}{}
	}
	require.Len(t, seen, len(known))
}
