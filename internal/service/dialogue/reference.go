package dialogue

import (
	"crypto/rand"
	"fmt"
	"time"
)

const referenceCharset = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

// newReference builds a request identifier of the form PREFIX/<year>/<8 random
// alphanumerics>. Uniqueness is collision-improbable rather than guaranteed.
func newReference(prefix string) string {
	buf := make([]byte, 8)
	if _, err := rand.Read(buf); err != nil {
		// crypto/rand failing is effectively unreachable; fall back to a
		// timestamp-derived suffix rather than abort the turn.
		return fmt.Sprintf("%s/%d/%08X", prefix, time.Now().Year(), time.Now().UnixNano()&0xFFFFFFFF)
	}
	for i, b := range buf {
		buf[i] = referenceCharset[int(b)%len(referenceCharset)]
	}
	return fmt.Sprintf("%s/%d/%s", prefix, time.Now().Year(), buf)
}
