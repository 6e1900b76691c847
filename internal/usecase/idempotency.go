package usecase

import (
	"fmt"
	"math/rand/v2"
	"strings"
	"time"
)

const (
	idempotencyAlphabet   = "0123456789abcdefghijklmnopqrstuvwxyz"
	idempotencyRandLength = 9
)

// NewIdempotencyKey mints a write-deduplication key in the shape
// <prefix>-<millis>-<rand9 base36>, e.g. "pix-payment-1716913000123-k2j9x0a4q".
//
// The random suffix keeps two keys minted within the same millisecond
// distinct. A fresh key marks a new logical attempt; callers retrying the
// same intent should supply their own key instead (passed through
// unchanged by the charge/refund operations).
func NewIdempotencyKey(prefix string) string {
	var b strings.Builder
	for i := 0; i < idempotencyRandLength; i++ {
		b.WriteByte(idempotencyAlphabet[rand.IntN(len(idempotencyAlphabet))])
	}
	return fmt.Sprintf("%s-%d-%s", prefix, time.Now().UnixMilli(), b.String())
}
