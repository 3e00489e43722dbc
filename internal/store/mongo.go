package store

import (
	"bytes"
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Mongo backs the facade with named mongo collections. Subscriptions are
// poll-based full-result snapshots; change streams need a replica set, which
// small deployments of this service do not have.
type Mongo struct {
	colls map[string]*mongo.Collection
	poll  time.Duration
}

func NewMongo(colls map[string]*mongo.Collection) *Mongo {
	return &Mongo{
		colls: colls,
		poll:  500 * time.Millisecond,
	}
}

func (m *Mongo) collection(name string) (*mongo.Collection, error) {
	coll, ok := m.colls[name]
	if !ok {
		return nil, fmt.Errorf("%w: unknown collection %q", ErrNotFound, name)
	}
	return coll, nil
}

func (m *Mongo) Write(ctx context.Context, collection string, id string, payload any) (string, error) {
	coll, err := m.collection(collection)
	if err != nil {
		return "", err
	}

	doc, err := toDocument(payload)
	if err != nil {
		return "", err
	}

	if id == "" {
		id = uuid.NewString()
		doc["_id"] = id

		if _, err := coll.InsertOne(ctx, doc); err != nil {
			return "", fmt.Errorf("%w: %v", ErrUnavailable, err)
		}
		return id, nil
	}

	delete(doc, "_id")

	res, err := coll.UpdateByID(ctx, id, bson.M{"$set": doc})
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	if res.MatchedCount == 0 {
		return "", ErrNotFound
	}

	return id, nil
}

func (m *Mongo) Delete(ctx context.Context, collection string, id string) error {
	coll, err := m.collection(collection)
	if err != nil {
		return err
	}

	res, err := coll.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	if res.DeletedCount == 0 {
		return ErrNotFound
	}

	return nil
}

func (m *Mongo) Subscribe(ctx context.Context, collection string, q Query) (*Subscription, error) {
	coll, err := m.collection(collection)
	if err != nil {
		return nil, err
	}

	subCtx, cancel := context.WithCancel(ctx)
	out := make(chan Snapshot, 1)

	go func() {
		defer close(out)

		ticker := time.NewTicker(m.poll)
		defer ticker.Stop()

		var last []byte

		for {
			snapshot, err := fetch(subCtx, coll, q)
			if err == nil {
				fingerprint, _ := bson.Marshal(bson.M{"docs": snapshot})
				if !bytes.Equal(fingerprint, last) {
					last = fingerprint
					deliver(out, snapshot)
				}
			}

			select {
			case <-subCtx.Done():
				return
			case <-ticker.C:
			}
		}
	}()

	return &Subscription{C: out, cancel: cancel}, nil
}

func fetch(ctx context.Context, coll *mongo.Collection, q Query) (Snapshot, error) {
	opts := options.Find()
	if q.Sort != "" {
		order := 1
		if q.Descending {
			order = -1
		}
		opts.SetSort(bson.D{{Key: q.Sort, Value: order}})
	}
	if q.Limit > 0 {
		opts.SetLimit(q.Limit)
	}

	cursor, err := coll.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}

	var docs []bson.M
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, err
	}

	return Snapshot(docs), nil
}

// deliver replaces a stale undelivered snapshot instead of blocking.
func deliver(out chan Snapshot, snapshot Snapshot) {
	for {
		select {
		case out <- snapshot:
			return
		default:
			select {
			case <-out:
			default:
			}
		}
	}
}

func toDocument(payload any) (bson.M, error) {
	raw, err := bson.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}

	var doc bson.M
	if err := bson.Unmarshal(raw, &doc); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}

	return doc, nil
}
