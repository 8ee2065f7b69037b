package repository

import (
	"context"

	"untwist-backend/internal/models"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
)

// FeedbackStore is the persistence capability the handlers depend on.
// Put is a single atomic write of one full record keyed by its id; there are
// no updates and no multi-record transactions anywhere in the pipeline.
type FeedbackStore interface {
	Put(ctx context.Context, record *models.FeedbackRecord) error
	// QueryByType returns up to limit records of one type, newest-first
	// from the store's index.
	QueryByType(ctx context.Context, feedbackType string, limit int64) ([]models.FeedbackRecord, error)
	// Scan returns up to limit records of any type with no ordering
	// guarantee; callers sort for themselves.
	Scan(ctx context.Context, limit int64) ([]models.FeedbackRecord, error)
}

// FeedbackRepo is the MongoDB-backed FeedbackStore.
type FeedbackRepo struct {
	collection *mongo.Collection
}

func NewFeedbackRepo(db *mongo.Database) *FeedbackRepo {
	return &FeedbackRepo{
		collection: db.Collection("feedback"),
	}
}

func (r *FeedbackRepo) Put(ctx context.Context, record *models.FeedbackRecord) error {
	_, err := r.collection.InsertOne(ctx, record)
	return err
}

func (r *FeedbackRepo) QueryByType(ctx context.Context, feedbackType string, limit int64) ([]models.FeedbackRecord, error) {
	opts := options.Find().
		SetSort(bson.D{{Key: "timestamp", Value: -1}}).
		SetLimit(limit)

	cursor, err := r.collection.Find(ctx, bson.M{"type": feedbackType}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	records := []models.FeedbackRecord{}
	if err := cursor.All(ctx, &records); err != nil {
		return nil, err
	}
	return records, nil
}

func (r *FeedbackRepo) Scan(ctx context.Context, limit int64) ([]models.FeedbackRecord, error) {
	cursor, err := r.collection.Find(ctx, bson.M{}, options.Find().SetLimit(limit))
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	records := []models.FeedbackRecord{}
	if err := cursor.All(ctx, &records); err != nil {
		return nil, err
	}
	return records, nil
}

// EnsureIndexes creates the indexes the query path and the TTL reaper rely
// on: a compound type+timestamp index for filtered listings and a TTL index
// on received_at matching the record's 2-year ttl field.
func (r *FeedbackRepo) EnsureIndexes(ctx context.Context) error {
	indexes := []mongo.IndexModel{
		{
			Keys: bson.D{{Key: "type", Value: 1}, {Key: "timestamp", Value: -1}},
		},
		{
			Keys:    bson.D{{Key: "received_at", Value: 1}},
			Options: options.Index().SetExpireAfterSeconds(models.RecordTTLSeconds),
		},
	}
	_, err := r.collection.Indexes().CreateMany(ctx, indexes)
	return err
}
