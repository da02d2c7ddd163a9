package main

import (
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/travigo/transitnet/pkg/config"
	"github.com/travigo/transitnet/pkg/netcli"
	"github.com/urfave/cli/v2"
)

// setupLogging applies the logging config. The environment overrides the file
// so a debug run never needs a config change.
func setupLogging(cfg config.LoggingConfig) {
	// Standard output carries documents and CSV, so logs go to standard error.
	if os.Getenv("TRANSITNET_LOG_FORMAT") == "JSON" || cfg.Format == "json" {
		log.Logger = zerolog.New(os.Stderr).With().Timestamp().Logger()
	} else {
		log.Logger = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339}).With().Timestamp().Logger()
	}

	level, err := zerolog.ParseLevel(cfg.Level)
	if err != nil || cfg.Level == "" {
		level = zerolog.InfoLevel
	}
	if os.Getenv("TRANSITNET_DEBUG") == "YES" {
		level = zerolog.DebugLevel
	}

	log.Logger = log.Logger.Level(level)
}

func main() {
	setupLogging(config.Default().Logging)

	app := &cli.App{
		Name:        "transitnet",
		Usage:       "Transit network document tooling",
		Description: "Validates, converts, inspects and stores transit network documents",

		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "config",
				Usage:   "YAML configuration file",
				EnvVars: []string{"TRANSITNET_CONFIG"},
			},
		},

		Before: func(c *cli.Context) error {
			cfg, err := config.Load(c.String("config"))
			if err != nil {
				return err
			}

			setupLogging(cfg.Logging)

			return nil
		},

		Commands: []*cli.Command{
			netcli.RegisterCLI(),
		},
	}

	err := app.Run(os.Args)
	if err != nil {
		log.Fatal().Err(err).Send()
	}
}
