// Package renewal keeps a token.Client's bearer token from expiring by
// refreshing it shortly before the lifetime reported by the identity service
// runs out.
package renewal

import (
	"context"
	"time"

	"github.com/jrsteele09/go-token-spoof/internal/errors"
	"github.com/rs/zerolog/log"
)

const (
	DefaultMargin   = 2 * time.Minute
	DefaultMinDelay = 30 * time.Second
)

// Refresher is the part of token.Client the daemon needs.
type Refresher interface {
	ExpiresIn() uint64
	Refresh(ctx context.Context) error
}

// Daemon renews the token forever, or until its context is cancelled.
type Daemon struct {
	client   Refresher
	margin   time.Duration
	minDelay time.Duration
	after    func(time.Duration) <-chan time.Time
	done     chan struct{}
}

type Option func(*Daemon)

// WithMargin sets how long before expiry the refresh happens.
func WithMargin(margin time.Duration) Option {
	return func(d *Daemon) {
		d.margin = margin
	}
}

// WithMinDelay sets the shortest wait between two refreshes.
func WithMinDelay(minDelay time.Duration) Option {
	return func(d *Daemon) {
		d.minDelay = minDelay
	}
}

// WithAfterFunc replaces time.After, for tests.
func WithAfterFunc(after func(time.Duration) <-chan time.Time) Option {
	return func(d *Daemon) {
		d.after = after
	}
}

func New(client Refresher, opts ...Option) *Daemon {
	d := &Daemon{
		client:   client,
		margin:   DefaultMargin,
		minDelay: DefaultMinDelay,
		after:    time.After,
		done:     make(chan struct{}),
	}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// Run loops: read the lifetime, sleep until shortly before it ends, refresh.
// A failed refresh is logged and the next cycle proceeds with the stale
// token. Run returns only when ctx is cancelled.
func (d *Daemon) Run(ctx context.Context) error {
	defer close(d.done)
	for {
		if err := ctx.Err(); err != nil {
			log.Info().Msg("Token renewal stopped")
			return err
		}

		expiresIn := d.client.ExpiresIn()
		delay, err := NextDelay(expiresIn, d.margin, d.minDelay)
		if errors.Is(err, errors.ErrShortLivedToken) {
			log.Warn().Uint64("expires_in", expiresIn).Dur("margin", d.margin).Dur("delay", delay).
				Msg("Token lifetime is within the renewal margin")
		}

		select {
		case <-ctx.Done():
			log.Info().Msg("Token renewal stopped")
			return ctx.Err()
		case <-d.after(delay):
		}

		log.Info().Dur("elapsed", delay).Msg("Refreshing OAuth token...")
		// Refresh logs its own outcome; a failure waits for the next cycle.
		_ = d.client.Refresh(ctx)
	}
}

// Done is closed once Run has returned.
func (d *Daemon) Done() <-chan struct{} {
	return d.done
}
