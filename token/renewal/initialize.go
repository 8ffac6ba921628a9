package renewal

import (
	"context"

	"github.com/jrsteele09/go-token-spoof/internal/errors"
	"github.com/rs/zerolog/log"
)

// LoginRefresher is a Refresher that can also perform the initial login.
type LoginRefresher interface {
	Refresher
	Login(ctx context.Context) error
}

// Initialize blocks on the first login and only then starts the daemon in
// the background. Nothing should issue authorized requests before it
// returns. A failed login is reported as ErrStartup and no daemon is started.
func Initialize(ctx context.Context, client LoginRefresher, opts ...Option) (*Daemon, error) {
	if err := client.Login(ctx); err != nil {
		return nil, errors.Mark(errors.ErrStartup, err, "[renewal Initialize]")
	}

	d := New(client, opts...)
	go func() {
		if err := d.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
			log.Err(err).Msg("Token renewal exited")
		}
	}()
	return d, nil
}
