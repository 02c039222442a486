package antispam

import (
	"math"
	"strconv"
	"strings"
	"time"
)

// DefaultMinSubmitDelay is the minimum time a human plausibly needs between the
// form becoming interactive and pressing submit.
const DefaultMinSubmitDelay = 3 * time.Second

// IsHoneypotHit reports whether the hidden form field was filled in.
// Legitimate users never see the field, so any non-blank value marks the
// submission as automated.
func IsHoneypotHit(hiddenFieldValue string) bool {
	return strings.TrimSpace(hiddenFieldValue) != ""
}

// TooFast reports whether the form was submitted before minDelay elapsed since
// the client-reported render timestamp (epoch milliseconds, string or numeric
// form). Missing, unparseable or non-positive timestamps count as too fast.
func TooFast(renderTimestamp string, minDelay time.Duration, now time.Time) bool {
	ts, err := strconv.ParseFloat(strings.TrimSpace(renderTimestamp), 64)
	if err != nil || math.IsNaN(ts) || math.IsInf(ts, 0) || ts <= 0 {
		return true
	}
	rendered := time.UnixMilli(int64(ts))
	return now.Sub(rendered) < minDelay
}
