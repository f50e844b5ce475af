package agent

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// newSessionID builds the ephemeral per-page-load identifier: load timestamp
// plus a random suffix. It is unique per tab and page load, never a
// persistent user identity, and is never written anywhere client-side.
func newSessionID(now time.Time) string {
	return fmt.Sprintf("%d-%s", now.UnixMilli(), uuid.NewString()[:8])
}
