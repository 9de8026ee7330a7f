package feed

import (
	"math"
	"time"
)

// Backoff returns the reconnect delay for a 0-indexed attempt: the exponential
// delay min(maxDelay, base*2^attempt) plus jitter*ratio of it on top, where jitter is in [0, 1).
func Backoff(attempt int, base, maxDelay time.Duration, ratio, jitter float64) time.Duration {
	if attempt < 0 {
		attempt = 0
	}

	d := float64(base) * math.Pow(2, float64(attempt))
	if d > float64(maxDelay) || math.IsInf(d, 0) {
		d = float64(maxDelay)
	}

	return time.Duration(d + d*ratio*jitter)
}
