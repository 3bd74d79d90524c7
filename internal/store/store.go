// Package store is the persisted collection layer: a process-wide mapping
// from a collection key to one serialized list of records, exposed to callers
// as ordinary in-memory slices with write-through persistence. Storage
// failures never propagate; they are logged and resolved to the collection's
// default, so a broken backing store degrades to an ephemeral session.
package store

import (
	"encoding/json"

	"github.com/rs/zerolog"

	"github.com/karvel/folio/internal/model"
)

// Collection keys in the backing store.
const (
	KeyDiary     = "diary_entries"
	KeyAcademics = "academics_data"
	KeyProjects  = "projects_data"
	KeyStories   = "stories_data"
)

// Keys returns every collection key.
func Keys() []string {
	return []string{KeyDiary, KeyAcademics, KeyProjects, KeyStories}
}

// Backend is the raw key to serialized-list mapping. Get reports whether the
// key has ever been written.
type Backend interface {
	Get(key string) ([]byte, bool, error)
	Put(key string, value []byte) error
	Delete(key string) error
}

// quarantiner is implemented by backends that can set aside an unparseable
// value for inspection instead of silently losing it.
type quarantiner interface {
	Quarantine(key string)
}

// Store binds a Backend to the catch-and-log error policy. All read and
// write failures stop here.
type Store struct {
	backend Backend
	log     zerolog.Logger
}

// New returns a Store over the given backend.
func New(backend Backend, log zerolog.Logger) *Store {
	return &Store{backend: backend, log: log}
}

// Purge removes every collection key from the backing store. Failures are
// logged and skipped.
func (s *Store) Purge() {
	for _, key := range Keys() {
		if err := s.backend.Delete(key); err != nil {
			s.log.Warn().Err(err).Str("key", key).Msg("purge failed for key")
		}
	}
}

// Collection is a typed list bound to one key. It hydrates from the backend
// on first access and caches thereafter; every Save writes through
// best-effort, keeping the in-memory value even when the write fails.
type Collection[T any] struct {
	store  *Store
	key    string
	loaded bool
	items  []T
}

// NewCollection binds a typed collection to a key.
func NewCollection[T any](s *Store, key string) *Collection[T] {
	return &Collection[T]{store: s, key: key}
}

// Load returns the current list: the cached value after any Save, otherwise
// the stored value, otherwise the empty list. Unreadable or unparseable
// stored data degrades to the empty list.
func (c *Collection[T]) Load() []T {
	if !c.loaded {
		c.items = c.hydrate()
		c.loaded = true
	}
	return c.items
}

func (c *Collection[T]) hydrate() []T {
	data, ok, err := c.store.backend.Get(c.key)
	if err != nil {
		c.store.log.Warn().Err(err).Str("key", c.key).Msg("storage unavailable, starting from empty collection")
		return []T{}
	}
	if !ok {
		return []T{}
	}
	var items []T
	if err := json.Unmarshal(data, &items); err != nil {
		if q, ok := c.store.backend.(quarantiner); ok {
			q.Quarantine(c.key)
		}
		c.store.log.Warn().Err(err).Str("key", c.key).Msg("stored collection is corrupt, starting from empty collection")
		return []T{}
	}
	if items == nil {
		items = []T{}
	}
	return items
}

// Save replaces the list and writes it through to the backend. A failed
// write is logged; the in-memory value stands and may not survive a restart.
func (c *Collection[T]) Save(items []T) {
	if items == nil {
		items = []T{}
	}
	c.items = items
	c.loaded = true

	data, err := json.MarshalIndent(items, "", "  ")
	if err != nil {
		c.store.log.Warn().Err(err).Str("key", c.key).Msg("could not serialize collection")
		return
	}
	if err := c.store.backend.Put(c.key, data); err != nil {
		c.store.log.Warn().Err(err).Str("key", c.key).Msg("write failed, changes are in-memory only")
	}
}

// Update applies fn to the current list and saves the result. The
// function-of-previous form avoids stale reads between load and save.
func (c *Collection[T]) Update(fn func([]T) []T) {
	c.Save(fn(c.Load()))
}

// Diary returns the diary entry collection.
func Diary(s *Store) *Collection[model.DiaryEntry] {
	return NewCollection[model.DiaryEntry](s, KeyDiary)
}

// Academics returns the semester collection.
func Academics(s *Store) *Collection[model.Semester] {
	return NewCollection[model.Semester](s, KeyAcademics)
}

// Projects returns the portfolio project collection.
func Projects(s *Store) *Collection[model.Project] {
	return NewCollection[model.Project](s, KeyProjects)
}

// Stories returns the interview story collection.
func Stories(s *Store) *Collection[model.Story] {
	return NewCollection[model.Story](s, KeyStories)
}
