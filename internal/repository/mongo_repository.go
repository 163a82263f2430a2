package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/kranthi-07/Dab/internal/domain"
)

type mongoRepository struct {
	collection *mongo.Collection
}

func NewMongoRepository(db *mongo.Database) UserRepository {
	return &mongoRepository{
		collection: db.Collection("users"),
	}
}

func (m *mongoRepository) Create(ctx context.Context, account *domain.UserAccount) error {
	now := time.Now()
	account.CreatedAt = now
	account.UpdatedAt = now
	account.Version = 1

	_, err := m.collection.InsertOne(ctx, account)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return ErrDuplicateUser
		}
		return fmt.Errorf("failed to create user: %w", err)
	}

	return nil
}

func (m *mongoRepository) FindByID(ctx context.Context, id string) (*domain.UserAccount, error) {
	return m.findOne(ctx, bson.M{"_id": id})
}

func (m *mongoRepository) FindByMobile(ctx context.Context, mobile string) (*domain.UserAccount, error) {
	return m.findOne(ctx, bson.M{"mobile": mobile})
}

func (m *mongoRepository) findOne(ctx context.Context, filter bson.M) (*domain.UserAccount, error) {
	var account domain.UserAccount

	err := m.collection.FindOne(ctx, filter).Decode(&account)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to find user: %w", err)
	}

	return &account, nil
}

func (m *mongoRepository) Update(ctx context.Context, account *domain.UserAccount) error {
	now := time.Now()

	// Guard on the version the caller loaded; a concurrent writer bumps it
	// and the filter stops matching.
	filter := bson.M{"_id": account.ID, "version": account.Version}
	update := bson.M{
		"$set": bson.M{
			"name":       account.Name,
			"password":   account.PasswordHash,
			"cart":       account.Cart,
			"favorites":  account.Favorites,
			"updated_at": now,
		},
		"$inc": bson.M{"version": 1},
	}

	result, err := m.collection.UpdateOne(ctx, filter, update)
	if err != nil {
		return fmt.Errorf("failed to update user: %w", err)
	}

	if result.MatchedCount == 0 {
		// Distinguish a vanished document from a stale version.
		if _, findErr := m.FindByID(ctx, account.ID); findErr != nil {
			return findErr
		}
		return ErrVersionConflict
	}

	account.Version++
	account.UpdatedAt = now
	return nil
}

// CreateIndexes sets up the unique index on the signin key.
func CreateIndexes(ctx context.Context, db *mongo.Database) error {
	index := mongo.IndexModel{
		Keys:    bson.D{{Key: "mobile", Value: 1}},
		Options: options.Index().SetUnique(true),
	}

	_, err := db.Collection("users").Indexes().CreateOne(ctx, index)
	if err != nil {
		return fmt.Errorf("failed to create indexes: %w", err)
	}

	return nil
}
