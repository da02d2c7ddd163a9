package database

import (
	"context"

	"github.com/rs/zerolog/log"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// NetworksCollection holds one record per stored network document.
const NetworksCollection = "networks"

func createIndexes(ctx context.Context) {
	createNetworksIndexes(ctx)
}

func createNetworksIndexes(ctx context.Context) {
	networksCollection := GetCollection(NetworksCollection)
	networksIndex := []mongo.IndexModel{
		{
			Keys: bson.D{{Key: "modificationdatetime", Value: -1}},
		},
	}

	opts := options.CreateIndexes()
	_, err := networksCollection.Indexes().CreateMany(ctx, networksIndex, opts)
	if err != nil {
		log.Error().Err(err).Msg("Creating Index")
	}
}
