package store_test

import (
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/karvel/folio/internal/model"
	"github.com/karvel/folio/internal/store"
)

func memStore() *store.Store {
	return store.New(store.NewMemory(), zerolog.Nop())
}

func sampleEntries() []model.DiaryEntry {
	created := time.Date(2026, 3, 15, 9, 0, 0, 0, time.UTC)
	return []model.DiaryEntry{
		{ID: "e1", Date: "2026-03-15", Title: "First", Tags: []string{"a"}, Mood: 4, CreatedAt: created},
		{ID: "e2", Date: "2026-03-14", Title: "Second", Tags: []string{}, Mood: 2, CreatedAt: created},
		{ID: "e3", Date: "2026-03-13", Title: "Third", Tags: []string{"b", "c"}, Mood: 5, CreatedAt: created},
	}
}

func TestSaveThenLoadRoundTrip(t *testing.T) {
	st := memStore()
	want := sampleEntries()

	store.Diary(st).Save(want)

	// A fresh collection hydrates from the backend, not the cache.
	got := store.Diary(st).Load()
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Load after Save = %+v, want %+v", got, want)
	}
}

func TestLoadDefaultsWhenNeverSaved(t *testing.T) {
	got := store.Diary(memStore()).Load()
	if got == nil {
		t.Fatal("Load on empty store returned nil, want empty list")
	}
	if len(got) != 0 {
		t.Errorf("Load on empty store returned %d entries, want 0", len(got))
	}
}

func TestLoadDefaultsOnCorruptValue(t *testing.T) {
	backend := store.NewMemory()
	if err := backend.Put(store.KeyDiary, []byte("{bad json")); err != nil {
		t.Fatal(err)
	}
	st := store.New(backend, zerolog.Nop())

	got := store.Diary(st).Load()
	if len(got) != 0 {
		t.Errorf("Load on corrupt value returned %d entries, want 0", len(got))
	}
}

func TestUpdateFunctionOfPrevious(t *testing.T) {
	st := memStore()
	col := store.Diary(st)

	col.Update(func(entries []model.DiaryEntry) []model.DiaryEntry {
		return append(entries, model.DiaryEntry{ID: "e1"})
	})
	col.Update(func(entries []model.DiaryEntry) []model.DiaryEntry {
		return append(entries, model.DiaryEntry{ID: "e2"})
	})

	got := store.Diary(st).Load()
	if len(got) != 2 {
		t.Fatalf("after two appends Load returned %d entries, want 2", len(got))
	}
	if got[0].ID != "e1" || got[1].ID != "e2" {
		t.Errorf("entry order = [%s %s], want [e1 e2]", got[0].ID, got[1].ID)
	}
}

func TestDeleteByID(t *testing.T) {
	st := memStore()
	store.Diary(st).Save(sampleEntries())

	col := store.Diary(st)
	col.Update(func(entries []model.DiaryEntry) []model.DiaryEntry {
		kept := make([]model.DiaryEntry, 0, len(entries))
		for _, e := range entries {
			if e.ID != "e2" {
				kept = append(kept, e)
			}
		}
		return kept
	})

	got := store.Diary(st).Load()
	if len(got) != 2 {
		t.Fatalf("after delete Load returned %d entries, want 2", len(got))
	}
	for _, e := range got {
		if e.ID == "e2" {
			t.Error("deleted id still present after reload")
		}
	}
}

// failBackend refuses all I/O, standing in for an unavailable backing store.
type failBackend struct{}

func (failBackend) Get(string) ([]byte, bool, error) { return nil, false, errors.New("unavailable") }
func (failBackend) Put(string, []byte) error         { return errors.New("unavailable") }
func (failBackend) Delete(string) error              { return errors.New("unavailable") }

func TestUnavailableBackendDegradesToMemory(t *testing.T) {
	st := store.New(failBackend{}, zerolog.Nop())
	col := store.Diary(st)

	if got := col.Load(); len(got) != 0 {
		t.Fatalf("Load on unavailable backend returned %d entries, want 0", len(got))
	}

	// A failed write keeps the in-memory value for the rest of the session.
	want := sampleEntries()
	col.Save(want)
	if got := col.Load(); !reflect.DeepEqual(got, want) {
		t.Errorf("Load after failed Save = %+v, want %+v", got, want)
	}
}

func TestFileBackendRoundTrip(t *testing.T) {
	dir := t.TempDir()
	backend, err := store.NewFile(dir)
	if err != nil {
		t.Fatal(err)
	}
	st := store.New(backend, zerolog.Nop())

	want := []model.Project{
		{ID: "p1", Title: "Folio", Slug: "folio", Technologies: []string{"go"}},
	}
	store.Projects(st).Save(want)

	if _, err := os.Stat(filepath.Join(dir, store.KeyProjects+".json")); err != nil {
		t.Fatalf("expected projects file on disk: %v", err)
	}

	// Reload through a second store over the same directory.
	backend2, err := store.NewFile(dir)
	if err != nil {
		t.Fatal(err)
	}
	got := store.Projects(store.New(backend2, zerolog.Nop())).Load()
	if !reflect.DeepEqual(got, want) {
		t.Errorf("reloaded projects = %+v, want %+v", got, want)
	}
}

func TestFileBackendQuarantinesCorruptFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, store.KeyStories+".json")
	if err := os.WriteFile(path, []byte("{bad json"), 0o600); err != nil {
		t.Fatal(err)
	}

	backend, err := store.NewFile(dir)
	if err != nil {
		t.Fatal(err)
	}
	st := store.New(backend, zerolog.Nop())

	if got := store.Stories(st).Load(); len(got) != 0 {
		t.Fatalf("Load on corrupt file returned %d stories, want 0", len(got))
	}
	if _, err := os.Stat(path + ".corrupt"); err != nil {
		t.Error("expected corrupt file to be set aside as .corrupt")
	}
	if _, err := os.Stat(path); !os.IsNotExist(err) {
		t.Error("expected original corrupt file to be gone")
	}
}

func TestPurgeRemovesAllKeys(t *testing.T) {
	backend := store.NewMemory()
	st := store.New(backend, zerolog.Nop())
	store.Diary(st).Save(sampleEntries())
	store.Stories(st).Save([]model.Story{{ID: "s1", Title: "Story"}})

	st.Purge()

	for _, key := range store.Keys() {
		if _, ok, _ := backend.Get(key); ok {
			t.Errorf("key %q still present after purge", key)
		}
	}
}
