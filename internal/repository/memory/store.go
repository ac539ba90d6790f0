// Package memory is a process-local document store with the same collection
// layout as Firestore. It backs local development and tests.
package memory

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"sort"
	"sync"
	"time"

	"go-interview-report-backend/internal/repository/projection"
)

// Collection names shared with the Firestore backend.
const (
	CollectionInterviews = "interviews"
	CollectionUsers      = "users"
)

// Store is a thread-safe map of [collection][docID]fields.
type Store struct {
	mu        sync.RWMutex
	data      map[string]map[string]map[string]any
	now       func() time.Time
	lastWrite time.Time
	writeErr  error
}

type document struct {
	id     string
	fields map[string]any
}

// NewStore creates an empty store. A nil clock uses time.Now.
func NewStore(clock func() time.Time) *Store {
	if clock == nil {
		clock = time.Now
	}
	return &Store{
		data: make(map[string]map[string]map[string]any),
		now:  clock,
	}
}

// Seed stores a copy of fields under collection/id, replacing any previous document.
func (s *Store) Seed(collection, id string, fields map[string]any) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.data[collection] == nil {
		s.data[collection] = make(map[string]map[string]any)
	}
	s.data[collection][id] = copyFields(fields)
}

// LoadFile seeds the store from a JSON file shaped {"collection": {"id": {fields}}}.
func (s *Store) LoadFile(path string) error {
	raw, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read seed file: %w", err)
	}

	var seed map[string]map[string]map[string]any
	if err := json.Unmarshal(raw, &seed); err != nil {
		return fmt.Errorf("decode seed file: %w", err)
	}

	for collection, docs := range seed {
		for id, fields := range docs {
			s.Seed(collection, id, fields)
		}
	}
	return nil
}

// FailWrites makes every following update return err. Nil restores writes.
func (s *Store) FailWrites(err error) {
	s.mu.Lock()
	s.writeErr = err
	s.mu.Unlock()
}

func (s *Store) get(collection, id string) (document, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	fields, ok := s.data[collection][id]
	if !ok {
		return document{}, false
	}
	return document{id: id, fields: copyFields(fields)}, true
}

// where returns copies of the documents whose field equals value.
func (s *Store) where(collection, field string, value any) []document {
	s.mu.RLock()
	defer s.mu.RUnlock()

	docs := make([]document, 0)
	for id, fields := range s.data[collection] {
		if fields[field] == value {
			docs = append(docs, document{id: id, fields: copyFields(fields)})
		}
	}
	return docs
}

var errMissingDocument = errors.New("no document to update")

// update merges changes into an existing document and stamps field stampField
// with the write time. Write times are strictly increasing.
func (s *Store) update(collection, id string, changes map[string]any, stampField string) (time.Time, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.writeErr != nil {
		return time.Time{}, s.writeErr
	}

	fields, ok := s.data[collection][id]
	if !ok {
		return time.Time{}, errMissingDocument
	}

	at := s.now().UTC()
	if !at.After(s.lastWrite) {
		at = s.lastWrite.Add(time.Nanosecond)
	}
	s.lastWrite = at

	for k, v := range changes {
		fields[k] = v
	}
	if stampField != "" {
		fields[stampField] = at
	}
	return at, nil
}

// sortDesc orders documents by a timestamp field, newest first. Ties keep
// document id order so results are deterministic.
func sortDesc(docs []document, field string) {
	sort.SliceStable(docs, func(i, j int) bool {
		ti, tj := projection.Time(docs[i].fields[field]), projection.Time(docs[j].fields[field])
		if !ti.Equal(tj) {
			return ti.After(tj)
		}
		return docs[i].id < docs[j].id
	})
}

func copyFields(fields map[string]any) map[string]any {
	out := make(map[string]any, len(fields))
	for k, v := range fields {
		out[k] = v
	}
	return out
}
