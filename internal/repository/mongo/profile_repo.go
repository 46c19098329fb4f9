package mongo

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"gymzen/gymlog-app/internal/domain"
	"gymzen/gymlog-app/internal/repository"
)

const profileCollectionName = "profiles"

// mongoProfileRepository implements repository.ProfileRepository. Profiles
// are keyed directly by user id: one document per user.
type mongoProfileRepository struct {
	collection *mongo.Collection
}

// NewMongoProfileRepository creates a new profile repository.
func NewMongoProfileRepository(db *mongo.Database) repository.ProfileRepository {
	return &mongoProfileRepository{
		collection: db.Collection(profileCollectionName),
	}
}

// Get retrieves the profile for a user. ErrNotFound means the user has never
// completed onboarding.
func (r *mongoProfileRepository) Get(ctx context.Context, userID string) (*domain.Profile, error) {
	var profile domain.Profile
	err := r.collection.FindOne(ctx, bson.M{"_id": userID}).Decode(&profile)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}
	profile.UserID = userID
	return &profile, nil
}

// Save upserts the profile document.
func (r *mongoProfileRepository) Save(ctx context.Context, profile *domain.Profile) error {
	if profile.UserID == "" {
		return errors.New("profile requires a user id")
	}
	profile.UpdatedAt = time.Now().UTC()

	opts := options.Replace().SetUpsert(true)
	_, err := r.collection.ReplaceOne(ctx, bson.M{"_id": profile.UserID}, profile, opts)
	return err
}
