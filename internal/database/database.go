package database

import (
	"context"
	"fmt"
	"time"

	"github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

// Connect opens a client for uri. An empty uri returns a nil client and no
// error: the API then runs with the store unset.
//
// An unreachable server is not fatal; the client is returned anyway and
// /test reports the problem.
func Connect(ctx context.Context, uri string, timeout time.Duration, log logrus.FieldLogger) (*mongo.Client, error) {
	if uri == "" {
		log.Warn("⚠️ DATABASE_URL not set, running without a database")
		return nil, nil
	}

	opts := options.Client().
		ApplyURI(uri).
		SetConnectTimeout(timeout).
		SetServerSelectionTimeout(timeout)

	client, err := mongo.Connect(ctx, opts)
	if err != nil {
		return nil, fmt.Errorf("connect to mongo: %w", err)
	}

	pingCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	if err := client.Ping(pingCtx, readpref.Primary()); err != nil {
		log.WithError(err).Warn("⚠️ MongoDB ping failed")
	} else {
		log.Info("✅ Connected to MongoDB")
	}

	return client, nil
}

// Disconnect closes client if it was opened.
func Disconnect(ctx context.Context, client *mongo.Client) error {
	if client == nil {
		return nil
	}
	return client.Disconnect(ctx)
}
