package netcli

import (
	"context"

	"github.com/travigo/transitnet/pkg/config"
	"github.com/travigo/transitnet/pkg/database"
	"github.com/travigo/transitnet/pkg/docstore"
	"github.com/travigo/transitnet/pkg/redis_client"
)

// openStore connects the configured backend. The returned func releases the
// connection.
func openStore(ctx context.Context, cfg config.StoreConfig) (docstore.Store, func(), error) {
	switch cfg.Backend {
	case config.BackendRedis:
		if err := redis_client.Connect(ctx); err != nil {
			return nil, nil, err
		}

		return docstore.NewRedisStore(redis_client.Client, cfg.Prefix), func() {
			redis_client.Client.Close()
		}, nil
	case config.BackendMongo:
		if err := database.ConnectMongoDB(ctx); err != nil {
			return nil, nil, err
		}

		collection := cfg.Collection
		if collection == "" {
			collection = database.NetworksCollection
		}

		return docstore.NewMongoStore(database.GetCollection(collection)), func() {
			database.Disconnect(context.Background())
		}, nil
	default:
		return docstore.NewFileStore(cfg.Root), func() {}, nil
	}
}
