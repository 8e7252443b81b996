package txn

import (
	"crypto/rand"
	"encoding/hex"
	"strings"
)

// The idempotency key rides in the order's 31-character comment field:
// "RQ" + 16 hex characters, optionally followed by "|" and a truncated
// remnant of the caller's comment.
const (
	requestIDPrefix = "RQ"
	requestIDLen    = 18
	commentMaxLen   = 31
)

// GenerateRequestID returns a fresh idempotency key with 64 bits of entropy.
func GenerateRequestID() string {
	var buf [8]byte
	if _, err := rand.Read(buf[:]); err != nil {
		panic(err) // The kernel CSPRNG does not fail.
	}
	return requestIDPrefix + hex.EncodeToString(buf[:])
}

// MarkComment embeds |requestID| at the head of |comment|, truncating the
// original so the result fits the terminal's 31-character limit.
func MarkComment(comment, requestID string) string {
	if comment == "" {
		return requestID
	}
	var budget = commentMaxLen - requestIDLen - 1
	if len(comment) > budget {
		comment = comment[:budget]
	}
	return requestID + "|" + comment
}

// ExtractRequestID recovers the idempotency key from a marked comment.
// It returns false for comments that do not carry a well-formed key.
func ExtractRequestID(comment string) (string, bool) {
	var head, _, _ = strings.Cut(comment, "|")
	if len(head) != requestIDLen || !strings.HasPrefix(head, requestIDPrefix) {
		return "", false
	}
	if _, err := hex.DecodeString(head[len(requestIDPrefix):]); err != nil {
		return "", false
	}
	return head, true
}
