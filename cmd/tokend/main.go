package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"runtime/debug"
	"syscall"

	"github.com/common-nighthawk/go-figure"
	"github.com/jrsteele09/go-token-spoof/device"
	"github.com/jrsteele09/go-token-spoof/internal/config"
	"github.com/jrsteele09/go-token-spoof/token"
	"github.com/jrsteele09/go-token-spoof/token/renewal"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func main() {
	if err := run(); err != nil {
		log.Fatal().Err(err).Msg("Token daemon failed")
	}
	log.Info().Msg("Token daemon stopped")
}

func run() (returnError error) {
	defer func() {
		if r := recover(); r != nil {
			log.Error().Interface("panic", r).Bytes("stack", debug.Stack()).Msg("Recovered from panic")
			returnError = errors.New("panic recovered")
		}
	}()

	c := config.New()
	setupLogging(c)
	displayAppname(c.GetAppName())

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	client := newTokenClient(c)
	daemon, err := renewal.Initialize(ctx, client,
		renewal.WithMargin(c.GetRenewalMargin()),
		renewal.WithMinDelay(c.GetMinRefreshDelay()),
	)
	if err != nil {
		return fmt.Errorf("run: %w", err)
	}
	log.Info().Time("expiry", client.Expiry()).Msg("Token acquired, renewal running")

	<-ctx.Done()
	<-daemon.Done()
	return nil
}

func newTokenClient(c config.Config) *token.Client {
	return token.New(device.NewGenerator().Random(),
		token.WithBaseURL(c.GetAuthEndpoint()),
		token.WithTokenPath(c.GetTokenPath()),
		token.WithScopes(c.GetScopes()...),
		token.WithHTTPClient(&http.Client{Timeout: c.GetHTTPTimeout()}),
	)
}

func setupLogging(c config.EnvConfig) {
	level, err := zerolog.ParseLevel(c.GetLogLevel())
	if err != nil || level == zerolog.NoLevel {
		level = zerolog.InfoLevel
	}
	zerolog.SetGlobalLevel(level)
	if c.GetEnv() == "DEV" {
		log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
	}
}

func displayAppname(appname string) {
	myFigure := figure.NewFigure(appname, "cybermedium", true)
	myFigure.Print()
	fmt.Println()
}
