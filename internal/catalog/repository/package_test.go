package repository

import (
	"context"
	"os"
	"testing"

	"tourenzo/pkg/db/mongo/mongotest"
	"tourenzo/pkg/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

var testPackages = []model.Package{
	{Title: "Tokyo & Kyoto VIP", Location: "Japan", Price: 550000, ImageURL: "japan-1.jpg"},
	{Title: "Bali Bliss", Location: "Indonesia", Price: 100000, ImageURL: "bali-1.jpg"},
	{Title: "Osaka Food Trail", Location: "Japan", Price: 200000, ImageURL: "japan-2.jpg"},
}

func TestPackageRepository_QueriesAgainstMongo(t *testing.T) {
	h := mongotest.New(t, os.Getenv(mongotest.EnvMongoURI))
	ctx := context.Background()
	repo := NewMongoPackageRepository(h.Config)

	inserted, err := repo.InsertMany(ctx, testPackages)
	require.NoError(t, err)
	assert.Equal(t, 3, inserted)

	japan, err := repo.FindAll(ctx, "Japan")
	require.NoError(t, err)
	require.Len(t, japan, 2)
	assert.Equal(t, "Tokyo & Kyoto VIP", japan[0].Title)

	none, err := repo.FindAll(ctx, "japan")
	require.NoError(t, err)
	assert.NotNil(t, none)
	assert.Empty(t, none)

	locations, err := repo.Locations(ctx)
	require.NoError(t, err)
	require.Len(t, locations, 2)
	assert.Equal(t, model.Location{Location: "Indonesia", Image: "bali-1.jpg"}, *locations[0])
	assert.Equal(t, model.Location{Location: "Japan", Image: "japan-1.jpg"}, *locations[1])

	pkg, err := repo.FindByID(ctx, japan[1].ID)
	require.NoError(t, err)
	assert.Equal(t, "Osaka Food Trail", pkg.Title)
}

func TestPackageRepository_InsertManySkipsDuplicateTitles(t *testing.T) {
	h := mongotest.New(t, os.Getenv(mongotest.EnvMongoURI))
	ctx := context.Background()

	_, err := h.Database.Collection(CollectionName).Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "title", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	require.NoError(t, err)

	repo := NewMongoPackageRepository(h.Config)
	_, err = repo.InsertMany(ctx, testPackages[:1])
	require.NoError(t, err)

	inserted, err := repo.InsertMany(ctx, testPackages)
	require.NoError(t, err)
	assert.Equal(t, 2, inserted)
	assert.EqualValues(t, 3, h.CountDocuments(t, CollectionName))
}
