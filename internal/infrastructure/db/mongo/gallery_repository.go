package mongo

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/gracepoint/church-admin-api/internal/core/domain"
)

const collectionGallery = "gallery_items"

type GalleryRepository struct {
	col *mongo.Collection
}

func NewGalleryRepository(db *mongo.Database) *GalleryRepository {
	return &GalleryRepository{col: db.Collection(collectionGallery)}
}

func (r *GalleryRepository) Create(ctx context.Context, item *domain.GalleryItem) (*domain.GalleryItem, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	item.ID = primitive.NewObjectID().Hex()
	if _, err := r.col.InsertOne(ctx, item); err != nil {
		return nil, fmt.Errorf("insert gallery item: %w", err)
	}
	return item, nil
}

func (r *GalleryRepository) FindByID(ctx context.Context, id string) (*domain.GalleryItem, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var item domain.GalleryItem
	if err := r.col.FindOne(ctx, bson.M{"_id": id}).Decode(&item); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrGalleryItemNotFound
		}
		return nil, fmt.Errorf("find gallery item: %w", err)
	}
	return &item, nil
}

func (r *GalleryRepository) List(ctx context.Context, category string) ([]*domain.GalleryItem, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	filter := bson.M{}
	if category != "" {
		filter["category"] = category
	}

	cur, err := r.col.Find(ctx, filter, options.Find().SetSort(bson.D{{Key: "sort_order", Value: 1}}))
	if err != nil {
		return nil, fmt.Errorf("list gallery items: %w", err)
	}
	defer cur.Close(ctx)

	var items []*domain.GalleryItem
	for cur.Next(ctx) {
		var item domain.GalleryItem
		if err := cur.Decode(&item); err != nil {
			return nil, fmt.Errorf("decode gallery item: %w", err)
		}
		items = append(items, &item)
	}
	return items, cur.Err()
}

func (r *GalleryRepository) Update(ctx context.Context, item *domain.GalleryItem) (*domain.GalleryItem, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.col.ReplaceOne(ctx, bson.M{"_id": item.ID}, item)
	if err != nil {
		return nil, fmt.Errorf("update gallery item: %w", err)
	}
	if res.MatchedCount == 0 {
		return nil, domain.ErrGalleryItemNotFound
	}
	return item, nil
}

func (r *GalleryRepository) Delete(ctx context.Context, id string) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.col.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return fmt.Errorf("delete gallery item: %w", err)
	}
	if res.DeletedCount == 0 {
		return domain.ErrGalleryItemNotFound
	}
	return nil
}
