package mongodb

import (
	"context"
	"rental/config"
	"time"

	"github.com/rs/zerolog/log"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

const (
	defaultTimeoutSeconds = 10
)

// Connection wraps the process-wide Mongo client and the database handle the
// repositories operate on.
type Connection struct {
	Client   *mongo.Client
	Database *mongo.Database
}

func New(config *config.Config) *Connection {
	client := connect(*config)

	return &Connection{
		Client:   client,
		Database: client.Database(config.DB.Mongo.Name),
	}
}

// connect dials the configured Mongo deployment, retrying until the ping
// succeeds or the retry budget runs out.
func connect(config config.Config) *mongo.Client {
	uri := config.DB.Mongo.URI
	if uri == "" {
		log.Fatal().Msg("DB_MONGO_URI is not set")
	}

	timeout := time.Duration(config.DB.Mongo.TimeoutSeconds) * time.Second
	if timeout <= 0 {
		timeout = defaultTimeoutSeconds * time.Second
	}

	maxRetry := config.DB.Mongo.MaxRetry
	if maxRetry <= 0 {
		maxRetry = 1
	}

	for retry := range maxRetry {
		ctx, cancel := context.WithTimeout(context.Background(), timeout)

		client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
		if err == nil {
			err = client.Ping(ctx, readpref.Primary())
		}

		cancel()

		if err == nil {
			log.
				Info().
				Str("dbName", config.DB.Mongo.Name).
				Msg("Connected to database")

			return client
		}

		log.
			Error().
			Err(err).
			Str("dbName", config.DB.Mongo.Name).
			Int("attempt", retry+1).
			Msg("Failed connecting to database, retrying")

		time.Sleep(time.Duration(config.DB.Mongo.RetryWaitTime) * time.Second)
	}

	log.Fatal().Msg("Exhausted database connection retries")

	return nil
}

// Ping reports whether the deployment is currently reachable.
func (c *Connection) Ping(ctx context.Context) error {
	return c.Client.Ping(ctx, readpref.Primary()) //nolint:wrapcheck
}

// ListCollections returns the names of the collections in the database,
// capped at limit.
func (c *Connection) ListCollections(ctx context.Context, limit int) ([]string, error) {
	names, err := c.Database.ListCollectionNames(ctx, bson.D{})
	if err != nil {
		return nil, err //nolint:wrapcheck
	}

	if limit > 0 && len(names) > limit {
		names = names[:limit]
	}

	return names, nil
}
