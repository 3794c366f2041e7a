package repository

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/guttosm/bakery-service/internal/domain/model"
)

// CatalogConfig is a stored option list for one category. Exactly one
// document per category is active at a time; older versions are kept for
// audit.
type CatalogConfig struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Category  model.Category     `bson:"category" json:"category"`
	Options   []model.Option     `bson:"options" json:"options"`
	Active    bool               `bson:"active" json:"active"`
	Version   int                `bson:"version" json:"version"`
	CreatedAt time.Time          `bson:"created_at" json:"created_at"`
	UpdatedAt time.Time          `bson:"updated_at" json:"updated_at"`
	CreatedBy string             `bson:"created_by,omitempty" json:"created_by,omitempty"`
}

// CatalogRepository provides catalog configuration storage in MongoDB.
type CatalogRepository struct {
	collection *mongo.Collection
}

// NewCatalogRepository creates a new catalog repository.
func NewCatalogRepository(db *MongoDB) *CatalogRepository {
	return &CatalogRepository{collection: db.Catalogs}
}

// GetActive returns the active catalog configuration for a category, or
// nil when none has been stored yet.
func (r *CatalogRepository) GetActive(ctx context.Context, category model.Category) (*CatalogConfig, error) {
	var config CatalogConfig
	err := r.collection.FindOne(ctx, bson.M{"category": category, "active": true}).Decode(&config)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &config, nil
}

// Create stores a new active catalog configuration for a category,
// deactivating any previous one.
func (r *CatalogRepository) Create(ctx context.Context, category model.Category, opts []model.Option, createdBy string) (*CatalogConfig, error) {
	_, err := r.collection.UpdateMany(
		ctx,
		bson.M{"category": category, "active": true},
		bson.M{"$set": bson.M{"active": false, "updated_at": time.Now()}},
	)
	if err != nil {
		return nil, err
	}

	config := CatalogConfig{
		ID:        primitive.NewObjectID(),
		Category:  category,
		Options:   opts,
		Active:    true,
		Version:   1,
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
		CreatedBy: createdBy,
	}

	if _, err := r.collection.InsertOne(ctx, config); err != nil {
		return nil, err
	}
	return &config, nil
}

// Update replaces the option list of an existing configuration and bumps
// its version.
func (r *CatalogRepository) Update(ctx context.Context, id primitive.ObjectID, opts []model.Option, updatedBy string) (*CatalogConfig, error) {
	var current CatalogConfig
	if err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&current); err != nil {
		return nil, err
	}

	update := bson.M{
		"$set": bson.M{
			"options":    opts,
			"updated_at": time.Now(),
			"version":    current.Version + 1,
		},
	}
	if updatedBy != "" {
		if setDoc, ok := update["$set"].(bson.M); ok {
			setDoc["updated_by"] = updatedBy
		}
	}

	var config CatalogConfig
	err := r.collection.FindOneAndUpdate(
		ctx,
		bson.M{"_id": id},
		update,
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&config)
	if err != nil {
		return nil, err
	}
	return &config, nil
}

// List returns stored catalog configurations for a category, newest first.
func (r *CatalogRepository) List(ctx context.Context, category model.Category, limit int) ([]CatalogConfig, error) {
	opts := options.Find().SetSort(bson.M{"created_at": -1})
	if limit > 0 {
		opts.SetLimit(int64(limit))
	}

	cursor, err := r.collection.Find(ctx, bson.M{"category": category}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var configs []CatalogConfig
	if err := cursor.All(ctx, &configs); err != nil {
		return nil, err
	}
	return configs, nil
}
