package mongo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/gracepoint/church-admin-api/internal/core/domain"
)

const collectionPages = "pages"

type PageRepository struct {
	col *mongo.Collection
}

func NewPageRepository(db *mongo.Database) *PageRepository {
	return &PageRepository{col: db.Collection(collectionPages)}
}

func (r *PageRepository) Create(ctx context.Context, p *domain.Page) (*domain.Page, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	p.ID = primitive.NewObjectID().Hex()
	if _, err := r.col.InsertOne(ctx, p); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return nil, domain.ErrPageExists
		}
		return nil, fmt.Errorf("insert page: %w", err)
	}
	return p, nil
}

func (r *PageRepository) FindByID(ctx context.Context, id string) (*domain.Page, error) {
	return r.findOne(ctx, bson.M{"_id": id})
}

func (r *PageRepository) FindBySlug(ctx context.Context, slug string) (*domain.Page, error) {
	return r.findOne(ctx, bson.M{"slug": slug})
}

func (r *PageRepository) List(ctx context.Context, publishedOnly bool) ([]*domain.Page, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	filter := bson.M{}
	if publishedOnly {
		filter["published"] = true
	}

	cur, err := r.col.Find(ctx, filter, options.Find().SetSort(bson.D{{Key: "slug", Value: 1}}))
	if err != nil {
		return nil, fmt.Errorf("list pages: %w", err)
	}
	defer cur.Close(ctx)

	var pages []*domain.Page
	for cur.Next(ctx) {
		var p domain.Page
		if err := cur.Decode(&p); err != nil {
			return nil, fmt.Errorf("decode page: %w", err)
		}
		pages = append(pages, &p)
	}
	return pages, cur.Err()
}

func (r *PageRepository) Update(ctx context.Context, p *domain.Page) (*domain.Page, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.col.ReplaceOne(ctx, bson.M{"_id": p.ID}, p)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return nil, domain.ErrPageExists
		}
		return nil, fmt.Errorf("update page: %w", err)
	}
	if res.MatchedCount == 0 {
		return nil, domain.ErrPageNotFound
	}
	return p, nil
}

func (r *PageRepository) Delete(ctx context.Context, id string) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.col.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return fmt.Errorf("delete page: %w", err)
	}
	if res.DeletedCount == 0 {
		return domain.ErrPageNotFound
	}
	return nil
}

// EnsureIndexes creates the unique slug index.
func (r *PageRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	_, err := r.col.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "slug", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	return err
}

func (r *PageRepository) findOne(ctx context.Context, filter bson.M) (*domain.Page, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var p domain.Page
	if err := r.col.FindOne(ctx, filter).Decode(&p); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrPageNotFound
		}
		return nil, fmt.Errorf("find page: %w", err)
	}
	return &p, nil
}
