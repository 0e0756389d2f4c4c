// Package mongotest connects repository tests to a real MongoDB. Tests are
// skipped unless TOURENZO_TEST_MONGO_URI is set.
package mongotest

import (
	"context"
	"strings"
	"testing"
	"time"

	"tourenzo/pkg/client"
	"tourenzo/pkg/config"
	"tourenzo/pkg/logger"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const (
	EnvMongoURI       = "TOURENZO_TEST_MONGO_URI"
	ConnectionTimeout = 10 * time.Second
)

type Helper struct {
	Client   *mongo.Client
	Database *mongo.Database
	Config   *config.Config
}

// New connects to a throwaway database that is dropped when the test ends.
func New(t *testing.T, mongoURI string) *Helper {
	t.Helper()
	if mongoURI == "" {
		t.Skipf("%s not set, skipping MongoDB test", EnvMongoURI)
	}

	ctx, cancel := context.WithTimeout(context.Background(), ConnectionTimeout)
	defer cancel()

	mc, err := mongo.Connect(ctx, options.Client().ApplyURI(mongoURI))
	if err != nil {
		t.Fatalf("failed to connect to MongoDB: %v", err)
	}
	if err := mc.Ping(ctx, nil); err != nil {
		t.Fatalf("failed to ping MongoDB: %v", err)
	}

	dbName := "tourenzo_test_" + strings.ReplaceAll(uuid.NewString(), "-", "")[:12]
	log := logger.Discard()

	cfg := &config.Config{
		MongoDatabaseName: dbName,
		ReadTimeout:       5 * time.Second,
		WriteTimeout:      5 * time.Second,
		Log:               log,
		Client:            client.NewClient(log),
	}
	cfg.Client.Mongo = mc

	h := &Helper{
		Client:   mc,
		Database: mc.Database(dbName),
		Config:   cfg,
	}
	t.Cleanup(func() { h.close(t) })
	return h
}

func (h *Helper) close(t *testing.T) {
	t.Helper()
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := h.Database.Drop(ctx); err != nil {
		t.Logf("warning: failed to drop %s: %v", h.Database.Name(), err)
	}
	if err := h.Client.Disconnect(ctx); err != nil {
		t.Logf("warning: failed to disconnect from MongoDB: %v", err)
	}
}

func (h *Helper) CountDocuments(t *testing.T, collectionName string) int64 {
	t.Helper()
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	count, err := h.Database.Collection(collectionName).CountDocuments(ctx, bson.M{})
	if err != nil {
		t.Fatalf("failed to count documents in %s: %v", collectionName, err)
	}
	return count
}
