package mongo

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"gymzen/gymlog-app/internal/domain"
	"gymzen/gymlog-app/internal/repository"
)

const catalogCollectionName = "catalog"

// mongoCatalogRepository implements repository.CatalogRepository. The catalog
// is shared across all users and seeded once from the built-in entries.
type mongoCatalogRepository struct {
	collection *mongo.Collection
}

// NewMongoCatalogRepository creates a new catalog repository.
func NewMongoCatalogRepository(db *mongo.Database) repository.CatalogRepository {
	return &mongoCatalogRepository{
		collection: db.Collection(catalogCollectionName),
	}
}

// GetAll returns every catalog entry. A nil slice means the collection has
// never been seeded, which callers treat differently from an empty catalog.
func (r *mongoCatalogRepository) GetAll(ctx context.Context) ([]domain.CatalogEntry, error) {
	cursor, err := r.collection.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var entries []domain.CatalogEntry
	if err = cursor.All(ctx, &entries); err != nil {
		return nil, err
	}
	return entries, nil
}

// Seed bulk-inserts the catalog entries. Entries are keyed by their stable
// exercise id, so re-seeding an already seeded catalog fails on duplicates
// rather than duplicating documents.
func (r *mongoCatalogRepository) Seed(ctx context.Context, entries []domain.CatalogEntry) error {
	if len(entries) == 0 {
		return nil
	}
	docs := make([]interface{}, len(entries))
	for i := range entries {
		docs[i] = entries[i]
	}
	_, err := r.collection.InsertMany(ctx, docs)
	return err
}
