package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"authstack/internal/common"
	"authstack/internal/domain/model"
)

type mongoUserRepository struct {
	users *mongo.Collection
}

func NewMongoUserRepository(db *mongo.Database) UserRepository {
	return &mongoUserRepository{users: db.Collection("users")}
}

func (r *mongoUserRepository) Create(ctx context.Context, user *model.User) error {
	now := time.Now()
	user.CreatedAt = now
	user.UpdatedAt = now

	if _, err := r.users.InsertOne(ctx, user); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return fmt.Errorf("user with given username or email already exists: %w", common.ErrDuplicateKey)
		}
		return fmt.Errorf("mongoUserRepository.Create: %w", err)
	}
	return nil
}

func (r *mongoUserRepository) FindByID(ctx context.Context, id string) (*model.User, error) {
	user := &model.User{}
	err := r.users.FindOne(ctx, bson.M{"_id": id}).Decode(user)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, common.ErrNotFound
		}
		return nil, fmt.Errorf("mongoUserRepository.FindByID: %w", err)
	}
	return user, nil
}

func (r *mongoUserRepository) FindByIdentifier(ctx context.Context, identifier string) (*model.User, error) {
	filter := bson.M{"$or": []bson.M{
		{"email": identifier},
		{"username": identifier},
	}}
	user := &model.User{}
	err := r.users.FindOne(ctx, filter).Decode(user)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, common.ErrNotFound
		}
		return nil, fmt.Errorf("mongoUserRepository.FindByIdentifier: %w", err)
	}
	return user, nil
}

func (r *mongoUserRepository) SetVerificationToken(ctx context.Context, userID, tokenHash string, expiry time.Time) error {
	return r.setTokenPair(ctx, userID, "verifyTokenHash", "verifyTokenExpiry", tokenHash, expiry)
}

func (r *mongoUserRepository) SetResetToken(ctx context.Context, userID, tokenHash string, expiry time.Time) error {
	return r.setTokenPair(ctx, userID, "resetTokenHash", "resetTokenExpiry", tokenHash, expiry)
}

func (r *mongoUserRepository) setTokenPair(ctx context.Context, userID, hashField, expiryField, tokenHash string, expiry time.Time) error {
	update := bson.M{"$set": bson.M{
		hashField:   tokenHash,
		expiryField: expiry,
		"updatedAt": time.Now(),
	}}
	res, err := r.users.UpdateByID(ctx, userID, update)
	if err != nil {
		return fmt.Errorf("mongoUserRepository.setTokenPair: %w", err)
	}
	if res.MatchedCount == 0 {
		return common.ErrNotFound
	}
	return nil
}

// ConsumeVerificationToken is a single conditional find-and-update: of N
// concurrent consumers presenting the same token, exactly one matches the
// still-set hash and clears it; the rest observe no match.
func (r *mongoUserRepository) ConsumeVerificationToken(ctx context.Context, tokenHash string, now time.Time) (*model.User, error) {
	filter := bson.M{
		"verifyTokenHash":   tokenHash,
		"verifyTokenExpiry": bson.M{"$gt": now},
	}
	update := bson.M{
		"$set":   bson.M{"isVerified": true, "updatedAt": now},
		"$unset": bson.M{"verifyTokenHash": "", "verifyTokenExpiry": ""},
	}
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	user := &model.User{}
	err := r.users.FindOneAndUpdate(ctx, filter, update, opts).Decode(user)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, common.ErrInvalidOrExpiredToken
		}
		return nil, fmt.Errorf("mongoUserRepository.ConsumeVerificationToken: %w", err)
	}
	return user, nil
}

func (r *mongoUserRepository) ConsumeResetToken(ctx context.Context, tokenHash, newPasswordHash string, now time.Time) (*model.User, error) {
	filter := bson.M{
		"resetTokenHash":   tokenHash,
		"resetTokenExpiry": bson.M{"$gt": now},
	}
	update := bson.M{
		"$set":   bson.M{"password": newPasswordHash, "updatedAt": now},
		"$unset": bson.M{"resetTokenHash": "", "resetTokenExpiry": ""},
	}
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	user := &model.User{}
	err := r.users.FindOneAndUpdate(ctx, filter, update, opts).Decode(user)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, common.ErrInvalidOrExpiredToken
		}
		return nil, fmt.Errorf("mongoUserRepository.ConsumeResetToken: %w", err)
	}
	return user, nil
}
