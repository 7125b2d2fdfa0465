// Package ids generates opaque record identifiers.
//
// An id combines a base-36 millisecond timestamp with a random suffix,
// so two calls within the same process are extremely unlikely to collide
// and ids sort roughly by creation time. Ids are not guaranteed unique
// across processes; the store has no multi-writer story.
package ids

import (
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
)

// New returns a fresh record identifier, e.g. "m1x2z9ka-7f3b2c1d".
func New() string {
	ts := strconv.FormatInt(time.Now().UnixMilli(), 36)
	// First group of a v4 UUID: 8 hex chars of randomness.
	suffix, _, _ := strings.Cut(uuid.NewString(), "-")
	return ts + "-" + suffix
}
