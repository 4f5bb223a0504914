package leads

import (
	"crypto/rand"
	"fmt"
	"time"
)

const idCharset = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

// NewLeadID returns an identifier of the form LEAD-<unix-millis>-<6
// random alphanumerics>. IDs only need to distinguish leads in email
// subjects and CRM notes, not be unguessable.
func NewLeadID() string {
	return fmt.Sprintf("LEAD-%d-%s", time.Now().UnixMilli(), randomSuffix(6))
}

func randomSuffix(n int) string {
	buf := make([]byte, n)
	rand.Read(buf)
	for i, b := range buf {
		buf[i] = idCharset[int(b)%len(idCharset)]
	}
	return string(buf)
}
