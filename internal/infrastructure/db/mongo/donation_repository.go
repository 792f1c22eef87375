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
	"github.com/gracepoint/church-admin-api/internal/core/ports"
)

const collectionDonations = "donations"

type DonationRepository struct {
	col *mongo.Collection
}

func NewDonationRepository(db *mongo.Database) *DonationRepository {
	return &DonationRepository{col: db.Collection(collectionDonations)}
}

func (r *DonationRepository) Create(ctx context.Context, d *domain.Donation) (*domain.Donation, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	d.ID = primitive.NewObjectID().Hex()
	if _, err := r.col.InsertOne(ctx, d); err != nil {
		return nil, fmt.Errorf("insert donation: %w", err)
	}
	return d, nil
}

func (r *DonationRepository) FindByID(ctx context.Context, id string) (*domain.Donation, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var d domain.Donation
	if err := r.col.FindOne(ctx, bson.M{"_id": id}).Decode(&d); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrDonationNotFound
		}
		return nil, fmt.Errorf("find donation: %w", err)
	}
	return &d, nil
}

// List returns a page of donations, newest first, and the total match count.
func (r *DonationRepository) List(ctx context.Context, filter ports.ListDonationsFilter) ([]*domain.Donation, int64, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	query := bson.M{}
	if filter.Status != "" {
		query["status"] = filter.Status
	}
	if filter.Fund != "" {
		query["fund"] = filter.Fund
	}

	total, err := r.col.CountDocuments(ctx, query)
	if err != nil {
		return nil, 0, fmt.Errorf("count donations: %w", err)
	}

	opts := options.Find().
		SetSort(bson.D{{Key: "created_at", Value: -1}}).
		SetSkip(int64((filter.Page - 1) * filter.Limit)).
		SetLimit(int64(filter.Limit))

	cur, err := r.col.Find(ctx, query, opts)
	if err != nil {
		return nil, 0, fmt.Errorf("list donations: %w", err)
	}
	defer cur.Close(ctx)

	var donations []*domain.Donation
	for cur.Next(ctx) {
		var d domain.Donation
		if err := cur.Decode(&d); err != nil {
			return nil, 0, fmt.Errorf("decode donation: %w", err)
		}
		donations = append(donations, &d)
	}
	return donations, total, cur.Err()
}

func (r *DonationRepository) UpdateStatus(ctx context.Context, id string, status domain.DonationStatus, at time.Time) (*domain.Donation, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	update := bson.M{"$set": bson.M{
		"status":     status,
		"updated_at": at,
	}}

	var d domain.Donation
	err := r.col.FindOneAndUpdate(ctx, bson.M{"_id": id}, update,
		options.FindOneAndUpdate().SetReturnDocument(options.After)).Decode(&d)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrDonationNotFound
		}
		return nil, fmt.Errorf("update donation status: %w", err)
	}
	return &d, nil
}

func (r *DonationRepository) Delete(ctx context.Context, id string) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.col.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return fmt.Errorf("delete donation: %w", err)
	}
	if res.DeletedCount == 0 {
		return domain.ErrDonationNotFound
	}
	return nil
}

// EnsureIndexes creates the indexes backing list filters.
func (r *DonationRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	indexes := []mongo.IndexModel{
		{Keys: bson.D{{Key: "status", Value: 1}}},
		{Keys: bson.D{{Key: "fund", Value: 1}}},
		{Keys: bson.D{{Key: "created_at", Value: -1}}},
	}
	_, err := r.col.Indexes().CreateMany(ctx, indexes)
	return err
}
