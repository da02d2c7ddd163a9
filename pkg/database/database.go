package database

import (
	"context"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/rs/zerolog/log"
	"github.com/travigo/transitnet/pkg/util"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type MongoInstance struct {
	Client   *mongo.Client
	Database *mongo.Database
}

var MongoGlobalInstance *MongoInstance

const defaultMongoConnectionString = "mongodb://localhost:27017/"
const defaultMongoDatabase = "transitnet"

const maxConnectRetries = 5

func ConnectMongoDB(ctx context.Context) error {
	connectionString := util.GetEnvironmentVariable("TRANSITNET_MONGODB_CONNECTION", defaultMongoConnectionString)
	dbName := util.GetEnvironmentVariable("TRANSITNET_MONGODB_DATABASE", defaultMongoDatabase)

	connectCtx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	client, err := mongo.Connect(connectCtx, options.Client().ApplyURI(connectionString))
	if err != nil {
		return err
	}

	retryBackoff := backoff.WithContext(backoff.WithMaxRetries(backoff.NewExponentialBackOff(), maxConnectRetries), connectCtx)
	err = backoff.RetryNotify(func() error {
		return client.Ping(connectCtx, nil)
	}, retryBackoff, func(err error, wait time.Duration) {
		log.Warn().Err(err).Dur("retry", wait).Msg("MongoDB not reachable")
	})
	if err != nil {
		client.Disconnect(context.Background())
		return err
	}

	MongoGlobalInstance = &MongoInstance{
		Client:   client,
		Database: client.Database(dbName),
	}

	createIndexes(ctx)

	log.Debug().Str("database", dbName).Msg("MongoDB client connected")

	return nil
}

func Disconnect(ctx context.Context) error {
	if MongoGlobalInstance == nil {
		return nil
	}

	err := MongoGlobalInstance.Client.Disconnect(ctx)
	MongoGlobalInstance = nil

	return err
}

func GetCollection(collectionName string) *mongo.Collection {
	return MongoGlobalInstance.Database.Collection(collectionName)
}
