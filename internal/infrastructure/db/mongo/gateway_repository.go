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

const collectionGateways = "payment_gateways"

type GatewayRepository struct {
	col *mongo.Collection
}

func NewGatewayRepository(db *mongo.Database) *GatewayRepository {
	return &GatewayRepository{col: db.Collection(collectionGateways)}
}

func (r *GatewayRepository) Create(ctx context.Context, g *domain.GatewayConfig) (*domain.GatewayConfig, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	g.ID = primitive.NewObjectID().Hex()
	if _, err := r.col.InsertOne(ctx, g); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return nil, domain.ErrGatewayExists
		}
		return nil, fmt.Errorf("insert gateway: %w", err)
	}
	return g, nil
}

func (r *GatewayRepository) FindByID(ctx context.Context, id string) (*domain.GatewayConfig, error) {
	return r.findOne(ctx, bson.M{"_id": id})
}

func (r *GatewayRepository) FindByProvider(ctx context.Context, provider string) (*domain.GatewayConfig, error) {
	return r.findOne(ctx, bson.M{"provider": provider})
}

func (r *GatewayRepository) List(ctx context.Context) ([]*domain.GatewayConfig, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	cur, err := r.col.Find(ctx, bson.M{}, options.Find().SetSort(bson.D{{Key: "provider", Value: 1}}))
	if err != nil {
		return nil, fmt.Errorf("list gateways: %w", err)
	}
	defer cur.Close(ctx)

	var gateways []*domain.GatewayConfig
	for cur.Next(ctx) {
		var g domain.GatewayConfig
		if err := cur.Decode(&g); err != nil {
			return nil, fmt.Errorf("decode gateway: %w", err)
		}
		gateways = append(gateways, &g)
	}
	return gateways, cur.Err()
}

func (r *GatewayRepository) Update(ctx context.Context, g *domain.GatewayConfig) (*domain.GatewayConfig, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.col.ReplaceOne(ctx, bson.M{"_id": g.ID}, g)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return nil, domain.ErrGatewayExists
		}
		return nil, fmt.Errorf("update gateway: %w", err)
	}
	if res.MatchedCount == 0 {
		return nil, domain.ErrGatewayNotFound
	}
	return g, nil
}

func (r *GatewayRepository) Delete(ctx context.Context, id string) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.col.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return fmt.Errorf("delete gateway: %w", err)
	}
	if res.DeletedCount == 0 {
		return domain.ErrGatewayNotFound
	}
	return nil
}

// EnsureIndexes creates the unique provider index.
func (r *GatewayRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	_, err := r.col.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "provider", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	return err
}

func (r *GatewayRepository) findOne(ctx context.Context, filter bson.M) (*domain.GatewayConfig, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var g domain.GatewayConfig
	if err := r.col.FindOne(ctx, filter).Decode(&g); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrGatewayNotFound
		}
		return nil, fmt.Errorf("find gateway: %w", err)
	}
	return &g, nil
}
