package store

import (
	"context"
	"sort"
	"sync"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Memory implements the facade for tests: mutations notify subscribers
// immediately instead of waiting for a poll tick.
type Memory struct {
	mu    sync.Mutex
	colls map[string]map[string]bson.M
	subs  map[string][]*memorySub

	// FailWrites makes Write and Delete return ErrUnavailable when set.
	FailWrites bool
}

type memorySub struct {
	out    chan Snapshot
	q      Query
	ctx    context.Context
	closed bool
}

func NewMemory() *Memory {
	return &Memory{
		colls: make(map[string]map[string]bson.M),
		subs:  make(map[string][]*memorySub),
	}
}

func (m *Memory) Write(ctx context.Context, collection string, id string, payload any) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.FailWrites {
		return "", ErrUnavailable
	}

	doc, err := toDocument(payload)
	if err != nil {
		return "", err
	}

	coll, ok := m.colls[collection]
	if !ok {
		coll = make(map[string]bson.M)
		m.colls[collection] = coll
	}

	if id == "" {
		id = uuid.NewString()
	} else if _, exists := coll[id]; !exists {
		return "", ErrNotFound
	}
	doc["_id"] = id
	coll[id] = doc

	m.notifyLocked(collection)
	return id, nil
}

func (m *Memory) Delete(ctx context.Context, collection string, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.FailWrites {
		return ErrUnavailable
	}

	coll := m.colls[collection]
	if _, ok := coll[id]; !ok {
		return ErrNotFound
	}
	delete(coll, id)

	m.notifyLocked(collection)
	return nil
}

func (m *Memory) Subscribe(ctx context.Context, collection string, q Query) (*Subscription, error) {
	subCtx, cancel := context.WithCancel(ctx)

	sub := &memorySub{
		out: make(chan Snapshot, 1),
		q:   q,
		ctx: subCtx,
	}

	m.mu.Lock()
	m.subs[collection] = append(m.subs[collection], sub)
	deliver(sub.out, m.snapshotLocked(collection, q))
	m.mu.Unlock()

	go func() {
		<-subCtx.Done()

		m.mu.Lock()
		defer m.mu.Unlock()
		if !sub.closed {
			sub.closed = true
			close(sub.out)
		}
	}()

	return &Subscription{C: sub.out, cancel: cancel}, nil
}

func (m *Memory) notifyLocked(collection string) {
	kept := m.subs[collection][:0]
	for _, sub := range m.subs[collection] {
		select {
		case <-sub.ctx.Done():
			continue
		default:
		}

		deliver(sub.out, m.snapshotLocked(collection, sub.q))
		kept = append(kept, sub)
	}
	m.subs[collection] = kept
}

func (m *Memory) snapshotLocked(collection string, q Query) Snapshot {
	var docs []bson.M
	for _, doc := range m.colls[collection] {
		docs = append(docs, doc)
	}

	if q.Sort != "" {
		sort.SliceStable(docs, func(i, j int) bool {
			less := compare(docs[i][q.Sort], docs[j][q.Sort])
			if q.Descending {
				return !less
			}
			return less
		})
	}

	if q.Limit > 0 && int64(len(docs)) > q.Limit {
		docs = docs[:q.Limit]
	}

	return Snapshot(docs)
}

func compare(a, b any) bool {
	switch av := a.(type) {
	case string:
		if bv, ok := b.(string); ok {
			return av < bv
		}
	case primitive.DateTime:
		if bv, ok := b.(primitive.DateTime); ok {
			return av < bv
		}
	}
	// other sort keys keep insertion order
	return false
}
