package redis_client

import (
	"context"
	"strconv"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"
	"github.com/travigo/transitnet/pkg/util"
)

var Client *redis.Client

const defaultConnectionAddress = "localhost:6379"
const defaultConnectionPassword = ""
const defaultDatabase = 0

const maxConnectRetries = 5

func Connect(ctx context.Context) error {
	address := defaultConnectionAddress
	password := defaultConnectionPassword
	database := defaultDatabase

	env := util.GetEnvironmentVariables()

	if env["TRANSITNET_REDIS_ADDRESS"] != "" {
		address = env["TRANSITNET_REDIS_ADDRESS"]
	}

	if env["TRANSITNET_REDIS_PASSWORD"] != "" {
		password = env["TRANSITNET_REDIS_PASSWORD"]
	}

	if env["TRANSITNET_REDIS_DATABASE"] != "" {
		if n, err := strconv.Atoi(env["TRANSITNET_REDIS_DATABASE"]); err == nil {
			database = n
		} else {
			return err
		}
	}

	client := redis.NewClient(&redis.Options{
		Addr:     address,
		Password: password,
		DB:       database,
	})

	retryBackoff := backoff.WithContext(backoff.WithMaxRetries(backoff.NewExponentialBackOff(), maxConnectRetries), ctx)
	err := backoff.RetryNotify(func() error {
		return client.Ping(ctx).Err()
	}, retryBackoff, func(err error, wait time.Duration) {
		log.Warn().Err(err).Str("address", address).Dur("retry", wait).Msg("Redis not reachable")
	})
	if err != nil {
		client.Close()
		return err
	}

	Client = client

	log.Debug().Str("address", address).Int("database", database).Msg("Redis client connected")

	return nil
}
