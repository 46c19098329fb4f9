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

const templateCollectionName = "templates"

// mongoTemplateRepository implements repository.TemplateRepository for
// custom templates. The built-in default template lives in code and never
// reaches this collection.
type mongoTemplateRepository struct {
	collection *mongo.Collection
}

// NewMongoTemplateRepository creates a new template repository.
func NewMongoTemplateRepository(db *mongo.Database) repository.TemplateRepository {
	return &mongoTemplateRepository{
		collection: db.Collection(templateCollectionName),
	}
}

// Create inserts a custom template and returns its generated id.
func (r *mongoTemplateRepository) Create(ctx context.Context, template *domain.Template) (string, error) {
	if template.UserID == "" || template.Name == "" {
		return "", errors.New("template requires a user id and a name")
	}
	template.ID = primitive.NewObjectID().Hex()
	now := time.Now().UTC()
	template.CreatedAt = now
	template.UpdatedAt = now

	if _, err := r.collection.InsertOne(ctx, template); err != nil {
		return "", err
	}
	return template.ID, nil
}

// Update overwrites an existing custom template, scoped to its owner.
func (r *mongoTemplateRepository) Update(ctx context.Context, template *domain.Template) error {
	if template.ID == "" || template.UserID == "" {
		return errors.New("template ID and user ID are required for update")
	}

	filter := bson.M{"_id": template.ID, "userId": template.UserID}
	updateDoc := bson.M{
		"$set": bson.M{
			"name":      template.Name,
			"days":      template.Days,
			"updatedAt": time.Now().UTC(),
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

// GetByUserID retrieves all custom templates owned by a user.
func (r *mongoTemplateRepository) GetByUserID(ctx context.Context, userID string) ([]domain.Template, error) {
	findOptions := options.Find().SetSort(bson.D{{Key: "createdAt", Value: 1}})
	cursor, err := r.collection.Find(ctx, bson.M{"userId": userID}, findOptions)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var templates []domain.Template
	if err = cursor.All(ctx, &templates); err != nil {
		return nil, err
	}
	return templates, nil
}

// Delete removes a custom template. The filter includes the owner so the
// call doubles as an ownership check.
func (r *mongoTemplateRepository) Delete(ctx context.Context, id, userID string) error {
	if id == "" || userID == "" {
		return errors.New("template ID and user ID are required for deletion")
	}

	result, err := r.collection.DeleteOne(ctx, bson.M{"_id": id, "userId": userID})
	if err != nil {
		return err
	}
	if result.DeletedCount == 0 {
		return repository.ErrNotFound
	}
	return nil
}

// EnsureTemplateIndexes creates the per-user lookup index. Call during
// startup.
func EnsureTemplateIndexes(ctx context.Context, collection *mongo.Collection) {
	indexes := []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "userId", Value: 1}},
			Options: options.Index(),
		},
	}
	_, _ = collection.Indexes().CreateMany(ctx, indexes)
}
