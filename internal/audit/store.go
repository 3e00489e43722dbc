package audit

import (
	"context"
	"regexp"

	"backoffice/internal/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Store is the persistence seam of the recorder. Keeping it an interface
// lets tests swap the Mongo collection for an in-memory sink.
type Store interface {
	Append(ctx context.Context, entry models.LogEntry) error
	AppendMany(ctx context.Context, entries []models.LogEntry) error
	Search(ctx context.Context, filter string, limit int64) ([]models.LogEntry, error)
}

type MongoStore struct {
	coll *mongo.Collection
}

func NewMongoStore(coll *mongo.Collection) *MongoStore {
	return &MongoStore{coll: coll}
}

func (s *MongoStore) Append(ctx context.Context, entry models.LogEntry) error {
	_, err := s.coll.InsertOne(ctx, entry)
	return err
}

func (s *MongoStore) AppendMany(ctx context.Context, entries []models.LogEntry) error {
	docs := make([]interface{}, len(entries))
	for i, entry := range entries {
		docs[i] = entry
	}

	_, err := s.coll.InsertMany(ctx, docs)
	return err
}

// Search returns the most recent limit entries newest-first, optionally
// matching a free-text filter against the actor label, the action kind, or
// the serialized details.
func (s *MongoStore) Search(ctx context.Context, filter string, limit int64) ([]models.LogEntry, error) {
	query := bson.M{}
	if filter != "" {
		pattern := bson.M{"$regex": regexp.QuoteMeta(filter), "$options": "i"}
		query["$or"] = bson.A{
			bson.M{"actorLabel": pattern},
			bson.M{"action": pattern},
			bson.M{"details": pattern},
		}
	}

	cursor, err := s.coll.Find(
		ctx,
		query,
		options.Find().
			SetSort(bson.D{{Key: "timestamp", Value: -1}}).
			SetLimit(limit),
	)
	if err != nil {
		return nil, err
	}

	var entries []models.LogEntry
	if err := cursor.All(ctx, &entries); err != nil {
		return nil, err
	}

	return entries, nil
}
