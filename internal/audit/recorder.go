package audit

import (
	"context"
	"encoding/json"
	"log"
	"sync"
	"time"

	"backoffice/internal/models"
)

var Rec *Recorder

type Config struct {
	Buffer     int
	BatchSize  int
	FlushEvery time.Duration
}

var (
	defaultConfig = Config{
		Buffer:     1000,
		BatchSize:  50,
		FlushEvery: 2 * time.Second,
	}
	fastConfig = Config{
		Buffer:     1000,
		BatchSize:  50,
		FlushEvery: 50 * time.Millisecond,
	}
)

// Recorder appends audit entries to the store in the background. Appends are
// best-effort: a failed flush is logged locally and the entries are dropped,
// the guarded mutation is never rolled back or reported as failed because of
// it. There is no dedup and no ordering across actors beyond each entry's
// own timestamp.
type Recorder struct {
	store Store
	buf   chan models.LogEntry
	cfg   Config

	wg        sync.WaitGroup
	onceClose sync.Once
}

func NewRecorder(store Store, deployment string) *Recorder {
	return NewRecorderWithConfig(store, selectConfig(deployment))
}

func NewRecorderWithConfig(store Store, cfg Config) *Recorder {
	r := &Recorder{
		store: store,
		buf:   make(chan models.LogEntry, cfg.Buffer),
		cfg:   cfg,
	}

	r.wg.Add(1)
	go r.worker()

	return r
}

func selectConfig(deployment string) Config {
	switch deployment {
	case "test":
		return fastConfig
	default:
		return defaultConfig
	}
}

// Record appends one entry for an attempted action. A nil actor marks an
// unauthenticated attempt (failed login). details is serialized to a JSON
// string; what cannot be serialized is recorded as an empty payload rather
// than dropped.
func (r *Recorder) Record(actor *models.StaffUser, action string, details any) {
	entry := models.LogEntry{
		Timestamp: time.Now(),
		Action:    action,
		Details:   "{}",
	}

	if actor != nil {
		entry.ActorID = actor.ID
		entry.ActorLabel = actor.Label()
	}

	if details != nil {
		raw, err := json.Marshal(details)
		if err != nil {
			log.Printf("audit: could not serialize %s details: %v", action, err)
		} else {
			entry.Details = string(raw)
		}
	}

	select {
	case r.buf <- entry:
	default:
		// buffer full, write through directly
		ctx, cancel := context.WithTimeout(
			context.Background(),
			2*time.Second,
		)
		defer cancel()

		if err := r.store.Append(ctx, entry); err != nil {
			log.Printf("audit: dropped %s entry: %v", action, err)
		}
	}
}

// Query returns a finite snapshot of the most recent limit entries matching
// the free-text filter, newest first.
func (r *Recorder) Query(ctx context.Context, filter string, limit int64) ([]models.LogEntry, error) {
	if limit <= 0 || limit > 500 {
		limit = 100
	}

	return r.store.Search(ctx, filter, limit)
}

func (r *Recorder) Close() {
	r.onceClose.Do(func() {
		close(r.buf)
		r.wg.Wait()
	})
}

func (r *Recorder) worker() {
	defer r.wg.Done()

	batch := make([]models.LogEntry, 0, r.cfg.BatchSize)
	timer := time.NewTimer(r.cfg.FlushEvery)

	defer timer.Stop()

	flush := func() {
		if len(batch) == 0 {
			timer.Reset(r.cfg.FlushEvery)
			return
		}

		ctx, cancel := context.WithTimeout(
			context.Background(),
			2*time.Second,
		)

		if err := r.store.AppendMany(ctx, batch); err != nil {
			log.Printf("audit: dropped %d entries: %v", len(batch), err)
		}

		cancel()

		batch = batch[:0]
		timer.Reset(r.cfg.FlushEvery)
	}

	for {
		select {
		case entry, ok := <-r.buf:
			if !ok {
				flush()
				return
			}

			batch = append(batch, entry)

			if len(batch) >= r.cfg.BatchSize {
				flush()
			}
		case <-timer.C:
			flush()
		}
	}
}
