package main

import (
	"flag"
	"os"

	"foursquared/config"
	"foursquared/di"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func main() {
	configPath := flag.String("config", "config.yaml", "path to the config file")
	env := flag.String("env", "prod", "environment: prod or dev")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		cfg = config.Default()
		log.Warn().Err(err).Msg("falling back to default configuration")
	}

	setupLogger(cfg.Log.Level)

	container := di.NewContainer(cfg, *env)

	if err := container.SearchService.Hydrate(); err != nil {
		log.Fatal().Err(err).Msg("failed to hydrate state from snapshot")
	}

	container.FoursquaredHttpServer.Start()
}

// setupLogger configures zerolog
func setupLogger(level string) {
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})

	switch level {
	case "debug":
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	case "info":
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
	case "warn":
		zerolog.SetGlobalLevel(zerolog.WarnLevel)
	case "error":
		zerolog.SetGlobalLevel(zerolog.ErrorLevel)
	default:
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
	}
}
