package repository

import (
	"context"
	"fmt"

	"tourenzo/pkg/config"
	mongodb "tourenzo/pkg/db/mongo"
	"tourenzo/pkg/model"

	"go.mongodb.org/mongo-driver/mongo"
)

const (
	CollectionName = "contacts"
)

type ContactRepository interface {
	Create(ctx context.Context, msg *model.ContactMessage) error
}

type mongoContactRepository struct {
	cfg        *config.Config
	collection *mongo.Collection
}

func NewMongoContactRepository(cfg *config.Config) ContactRepository {
	db := cfg.Client.Mongo.Database(cfg.MongoDatabaseName)
	return &mongoContactRepository{
		cfg:        cfg,
		collection: db.Collection(CollectionName),
	}
}

func (r *mongoContactRepository) Create(ctx context.Context, msg *model.ContactMessage) error {
	ctx, cancel := mongodb.WithTimeout(ctx, r.cfg.WriteTimeout)
	defer cancel()

	msg.CreatedAt = mongodb.Now()
	result, err := r.collection.InsertOne(ctx, msg)
	if err != nil {
		return fmt.Errorf("failed to store contact message: %w", err)
	}

	msg.ID = mongodb.InsertedHex(result)
	return nil
}
