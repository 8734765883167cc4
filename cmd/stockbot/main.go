package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"stockbot/internal/bot"
	"stockbot/internal/config"
	"stockbot/internal/discord"
	"stockbot/internal/finnhub"
	"stockbot/internal/httpx"
	"stockbot/internal/logging"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "config: %v\n", err)
		os.Exit(1)
	}

	log := logging.New(cfg.LogLevel, cfg.LogFile)

	httpClient := httpx.New(cfg.RequestTimeout())

	client, err := finnhub.NewClient(
		cfg.FinnhubToken,
		finnhub.WithBaseURL(cfg.FinnhubBaseURL),
		finnhub.WithHTTPClient(httpClient),
	)
	if err != nil {
		log.Fatal().Err(err).Msg("finnhub client")
	}

	dispatcher := bot.NewDispatcher(client, client, log)

	gateway, err := discord.New(cfg.DiscordToken, dispatcher, log, cfg.AnnounceChannel, cfg.RequestTimeout())
	if err != nil {
		log.Fatal().Err(err).Msg("gateway")
	}
	if err := gateway.Open(); err != nil {
		log.Fatal().Err(err).Msg("gateway open")
	}
	log.Info().Msg("stock bot running")

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()
	<-ctx.Done()

	// In-flight lookups are abandoned at shutdown; the session close releases
	// the gateway connection.
	if err := gateway.Close(); err != nil {
		log.Error().Err(err).Msg("gateway close")
	}
}
