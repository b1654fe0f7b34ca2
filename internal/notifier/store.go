package notifier

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
)

// StoreCapacity bounds the rolling log; appending past it evicts the
// oldest entry.
const StoreCapacity = 50

const (
	logKeyPrefix = "smart_notifications"
	pushTokenKey = "push_token"
)

var ErrDuplicateID = errors.New("notifier: duplicate notification id")

// KV is the persistence surface the store writes through. The whole log is
// one value under one key, so a reader never sees a partial write.
type KV interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Put(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, key string) error
}

// Store is an append-only, capacity-bounded notification log with
// read-tracking, newest entry first. Mutations are serialized by a single
// mutex; persistence failures leave the in-memory state in place (the
// notification may already have been delivered, so rolling back would
// lose it twice).
type Store struct {
	mu      sync.Mutex
	kv      KV
	key     string
	entries []Notification
	loaded  bool
}

func NewStore(kv KV, key string) *Store {
	return &Store{kv: kv, key: key}
}

// load reads the persisted log once. A missing or corrupt value starts an
// empty log rather than failing.
func (s *Store) load(ctx context.Context) {
	if s.loaded {
		return
	}
	s.loaded = true

	raw, err := s.kv.Get(ctx, s.key)
	if err != nil || len(raw) == 0 {
		return
	}
	var entries []Notification
	if err := json.Unmarshal(raw, &entries); err != nil {
		return
	}
	s.entries = entries
}

func (s *Store) persist(ctx context.Context) error {
	raw, err := json.Marshal(s.entries)
	if err != nil {
		return err
	}
	return s.kv.Put(ctx, s.key, raw)
}

// Append inserts at the head and evicts from the tail past capacity. The
// in-memory insert stands even when persistence fails; the returned error
// is for the caller's log.
func (s *Store) Append(ctx context.Context, n Notification) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.load(ctx)

	for _, e := range s.entries {
		if e.ID == n.ID {
			return fmt.Errorf("%w: %s", ErrDuplicateID, n.ID)
		}
	}

	s.entries = append([]Notification{n}, s.entries...)
	if len(s.entries) > StoreCapacity {
		s.entries = s.entries[:StoreCapacity]
	}

	return s.persist(ctx)
}

// List returns a snapshot copy, newest first.
func (s *Store) List(ctx context.Context) []Notification {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.load(ctx)

	out := make([]Notification, len(s.entries))
	copy(out, s.entries)
	return out
}

// MarkRead sets is_read on the matching entry. A missing id is a no-op;
// a read entry never goes back to unread.
func (s *Store) MarkRead(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.load(ctx)

	for i := range s.entries {
		if s.entries[i].ID == id {
			if s.entries[i].IsRead {
				return nil
			}
			s.entries[i].IsRead = true
			return s.persist(ctx)
		}
	}
	return nil
}

// Clear empties the log.
func (s *Store) Clear(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.load(ctx)

	s.entries = nil
	return s.kv.Delete(ctx, s.key)
}

// StoreSet hands out one Store per user, each persisted under its own key.
// The capacity and ordering invariants hold per store.
type StoreSet struct {
	mu     sync.Mutex
	kv     KV
	stores map[int64]*Store
}

func NewStoreSet(kv KV) *StoreSet {
	return &StoreSet{kv: kv, stores: make(map[int64]*Store)}
}

func (ss *StoreSet) For(userID int64) *Store {
	ss.mu.Lock()
	defer ss.mu.Unlock()

	st, ok := ss.stores[userID]
	if !ok {
		st = NewStore(ss.kv, fmt.Sprintf("%s:%d", logKeyPrefix, userID))
		ss.stores[userID] = st
	}
	return st
}
