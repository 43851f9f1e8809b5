// ABOUTME: Badger-backed entity store with whole-collection snapshots
// ABOUTME: Each collection persists as one JSON blob rewritten on every mutation
package store

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"sync"

	badger "github.com/dgraph-io/badger/v3"
)

// Collection keys. History entries live under a per-client key.
const (
	keyClients    = "clients"
	keyMeetings   = "meetings"
	keyObjectives = "objectives"
	keyTasks      = "tasks"
	historyPrefix = "history/"
)

// snapshotSchema is the current envelope version. Snapshots are
// written as {"schema":1,"items":[...]}; a bare JSON array is also
// accepted on load. Unknown fields inside items are ignored, which is
// the forward-compatibility policy.
const snapshotSchema = 1

// ErrNotFound is returned for lookups of entities that do not exist.
var ErrNotFound = errors.New("entity not found")

// Store owns the local database and the id counter. A single process
// owns the store; concurrent writers across processes are last-write-
// wins with no locking, same as the product this replaces.
type Store struct {
	db *badger.DB

	mu      sync.Mutex
	counter int
}

// Open opens (or creates) the store at path and seeds the id counter
// from the highest id already issued, so restarts never reuse an id.
func Open(path string) (*Store, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return nil, fmt.Errorf("failed to create data directory: %w", err)
	}

	opts := badger.DefaultOptions(path).WithLogger(nil)
	db, err := badger.Open(opts)
	if err != nil {
		return nil, fmt.Errorf("failed to open store: %w", err)
	}

	s := &Store{db: db}
	if err := s.seedCounter(); err != nil {
		_ = db.Close()
		return nil, err
	}
	return s, nil
}

// OpenInMemory opens an ephemeral store, used by tests.
func OpenInMemory() (*Store, error) {
	opts := badger.DefaultOptions("").WithInMemory(true).WithLogger(nil)
	db, err := badger.Open(opts)
	if err != nil {
		return nil, fmt.Errorf("failed to open in-memory store: %w", err)
	}
	s := &Store{db: db}
	if err := s.seedCounter(); err != nil {
		_ = db.Close()
		return nil, err
	}
	return s, nil
}

func (s *Store) Close() error {
	return s.db.Close()
}

// NextID returns prefix+counter and advances the counter. Never
// returns the same value twice within one store lifetime.
func (s *Store) NextID(prefix string) string {
	s.mu.Lock()
	defer s.mu.Unlock()
	id := fmt.Sprintf("%s%d", prefix, s.counter)
	s.counter++
	return id
}

// counterSeed is where the counter starts on an empty store.
const counterSeed = 100

// seedCounter scans every persisted collection for the largest numeric
// id suffix and starts the counter above it. The product this replaces
// reset its counter on every reload and relied on luck to avoid
// collisions; persisting the high-water mark closes that gap.
func (s *Store) seedCounter() error {
	max := counterSeed - 1
	for _, key := range []string{keyClients, keyMeetings, keyObjectives, keyTasks} {
		var items []struct {
			ID string `json:"id"`
		}
		if err := s.loadCollection(key, &items); err != nil {
			return err
		}
		for _, item := range items {
			if n, ok := idSuffix(item.ID); ok && n > max {
				max = n
			}
		}
	}
	s.mu.Lock()
	s.counter = max + 1
	s.mu.Unlock()
	return nil
}

// idSuffix extracts the trailing integer of an id like "c104".
func idSuffix(id string) (int, bool) {
	i := 0
	for i < len(id) && (id[i] < '0' || id[i] > '9') {
		i++
	}
	if i == len(id) {
		return 0, false
	}
	n, err := strconv.Atoi(id[i:])
	if err != nil {
		return 0, false
	}
	return n, true
}

type snapshot struct {
	Schema int             `json:"schema"`
	Items  json.RawMessage `json:"items"`
}

// loadCollection reads one collection snapshot into dest (a pointer to
// a slice). A missing key leaves dest empty.
func (s *Store) loadCollection(key string, dest any) error {
	var raw []byte
	err := s.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get([]byte(key))
		if err != nil {
			return err
		}
		raw, err = item.ValueCopy(nil)
		return err
	})
	if errors.Is(err, badger.ErrKeyNotFound) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", key, err)
	}
	return decodeSnapshot(raw, dest)
}

func decodeSnapshot(raw []byte, dest any) error {
	var env snapshot
	if err := json.Unmarshal(raw, &env); err == nil && env.Items != nil {
		return json.Unmarshal(env.Items, dest)
	}
	// Bare-array layout, as written by the original product.
	return json.Unmarshal(raw, dest)
}

// saveCollection rewrites one collection snapshot.
func (s *Store) saveCollection(key string, items any) error {
	return s.db.Update(func(txn *badger.Txn) error {
		raw, err := encodeSnapshot(items)
		if err != nil {
			return err
		}
		return txn.Set([]byte(key), raw)
	})
}

func encodeSnapshot(items any) ([]byte, error) {
	inner, err := json.Marshal(items)
	if err != nil {
		return nil, fmt.Errorf("failed to encode snapshot: %w", err)
	}
	return json.Marshal(snapshot{Schema: snapshotSchema, Items: inner})
}

// saveCollections writes several snapshots in one transaction, so a
// multi-collection mutation (playbook apply) is never observed half
// done.
func (s *Store) saveCollections(pairs map[string]any) error {
	return s.db.Update(func(txn *badger.Txn) error {
		for key, items := range pairs {
			raw, err := encodeSnapshot(items)
			if err != nil {
				return err
			}
			if err := txn.Set([]byte(key), raw); err != nil {
				return err
			}
		}
		return nil
	})
}
