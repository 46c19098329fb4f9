package mongo

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"gymzen/gymlog-app/internal/domain"
	"gymzen/gymlog-app/internal/repository"
)

const workoutCollectionName = "workouts"

// mongoWorkoutRepository implements repository.WorkoutRepository.
type mongoWorkoutRepository struct {
	collection *mongo.Collection
}

// NewMongoWorkoutRepository creates a new workout history repository.
func NewMongoWorkoutRepository(db *mongo.Database) repository.WorkoutRepository {
	return &mongoWorkoutRepository{
		collection: db.Collection(workoutCollectionName),
	}
}

// Create inserts a finalized workout session.
func (r *mongoWorkoutRepository) Create(ctx context.Context, session *domain.WorkoutSession) (primitive.ObjectID, error) {
	if session.UserID == "" {
		return primitive.NilObjectID, errors.New("workout session requires a user id")
	}
	session.ID = primitive.NewObjectID()

	result, err := r.collection.InsertOne(ctx, session)
	if err != nil {
		return primitive.NilObjectID, err
	}
	insertedID, ok := result.InsertedID.(primitive.ObjectID)
	if !ok {
		return primitive.NilObjectID, errors.New("failed to convert inserted workout ID")
	}
	return insertedID, nil
}

// GetByUserID retrieves a user's full history, newest first.
func (r *mongoWorkoutRepository) GetByUserID(ctx context.Context, userID string) ([]domain.WorkoutSession, error) {
	filter := bson.M{"userId": userID}
	findOptions := options.Find().SetSort(bson.D{{Key: "date", Value: -1}})

	cursor, err := r.collection.Find(ctx, filter, findOptions)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var sessions []domain.WorkoutSession
	if err = cursor.All(ctx, &sessions); err != nil {
		return nil, err
	}
	return sessions, nil
}

// Update overwrites the exercises and dates of a persisted session. The
// filter includes the user id so one user can never touch another's history.
func (r *mongoWorkoutRepository) Update(ctx context.Context, id primitive.ObjectID, userID string, exercises []domain.SessionExercise, date, loggedAt time.Time) error {
	if id == primitive.NilObjectID || userID == "" {
		return errors.New("workout ID and user ID are required for update")
	}

	filter := bson.M{"_id": id, "userId": userID}
	updateDoc := bson.M{
		"$set": bson.M{
			"exercises": exercises,
			"date":      date,
			"loggedAt":  loggedAt,
		},
	}

	result, err := r.collection.UpdateOne(ctx, filter, updateDoc)
	if err != nil {
		return err
	}
	if result.MatchedCount == 0 {
		return repository.ErrNotFound
	}
	return nil
}

// EnsureWorkoutIndexes creates the history query indexes. Call during
// startup.
func EnsureWorkoutIndexes(ctx context.Context, collection *mongo.Collection) {
	indexes := []mongo.IndexModel{
		{
			// History is always fetched per user, sorted by date.
			Keys:    bson.D{{Key: "userId", Value: 1}, {Key: "date", Value: -1}},
			Options: options.Index(),
		},
	}
	_, _ = collection.Indexes().CreateMany(ctx, indexes)
}
