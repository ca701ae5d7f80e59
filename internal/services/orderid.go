package services

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

// GenerateOrderID derives a short human-legible order id from the current
// time plus a random suffix: "TID" + last 6 digits of the unix-millisecond
// timestamp + the first 4 hex characters of a fresh UUID.
//
// Uniqueness is best-effort only. No order registry exists, so a time+random
// collision is theoretically possible and never checked for.
func GenerateOrderID(now time.Time) string {
	millis := fmt.Sprintf("%d", now.UnixMilli())
	timestamp := millis[len(millis)-6:]
	suffix := strings.SplitN(uuid.NewString(), "-", 2)[0][:4]
	return "TID" + timestamp + suffix
}
