package renewal

import (
	"time"

	"github.com/jrsteele09/go-token-spoof/internal/errors"
)

// NextDelay returns how long to wait before renewing a token that lives for
// expiresIn seconds: the lifetime minus margin. A lifetime that does not
// exceed margin yields floor and ErrShortLivedToken.
func NextDelay(expiresIn uint64, margin, floor time.Duration) (time.Duration, error) {
	lifetime := time.Duration(expiresIn) * time.Second
	if expiresIn > uint64(maxSeconds) {
		lifetime = time.Duration(maxSeconds) * time.Second
	}
	if lifetime <= margin {
		return floor, errors.ErrShortLivedToken
	}
	d := lifetime - margin
	if d < floor {
		return floor, nil
	}
	return d, nil
}

// maxSeconds keeps the Duration conversion from overflowing.
const maxSeconds = int64(1<<63-1) / int64(time.Second)
