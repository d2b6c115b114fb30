// Package store holds the in-memory registries for the workbench: one
// mapping per entity type plus the counters behind T<n>/A<n> id generation.
// It is the single source of truth for what exists right now; persistence
// and domain operations both go through it.
package store

import (
	"errors"
	"fmt"
	"sort"
	"sync"

	"github.com/mlaforge/annobench/internal/model"
)

// ErrCollectionExists indicates a collection with that name is already
// registered. Texts and annotations keep last-writer-wins semantics instead
// (the loader relies on plain puts); collections are the one registry the
// callers were already half-guarding, so the store enforces it.
var ErrCollectionExists = errors.New("collection already exists")

// Store is safe for concurrent use: every registry access and both counters
// sit behind one mutex so a mutate-then-notify sequence stays atomic from an
// observer's point of view.
type Store struct {
	mu sync.Mutex

	users       map[string]model.User
	texts       map[string]*model.Text
	annotations map[string]*model.Annotation
	collections map[string]*model.Collection

	nextText       int
	nextAnnotation int
}

// New returns an empty store with both id counters at 1.
func New() *Store {
	return &Store{
		users:          make(map[string]model.User),
		texts:          make(map[string]*model.Text),
		annotations:    make(map[string]*model.Annotation),
		collections:    make(map[string]*model.Collection),
		nextText:       1,
		nextAnnotation: 1,
	}
}

// PutUser registers u, replacing any user with the same id.
func (s *Store) PutUser(u model.User) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.users[u.ID()] = u
}

// PutText registers t, replacing any text with the same id, and advances the
// text counter past t's numeric suffix so generated ids never collide with
// restored ones.
func (s *Store) PutText(t *model.Text) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.texts[t.ID] = t
	if n := idSuffix(t.ID); n >= s.nextText {
		s.nextText = n + 1
	}
}

// PutAnnotation registers ann, replacing any annotation with the same id,
// and advances the annotation counter past ann's numeric suffix.
func (s *Store) PutAnnotation(ann *model.Annotation) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.annotations[ann.ID] = ann
	if n := idSuffix(ann.ID); n >= s.nextAnnotation {
		s.nextAnnotation = n + 1
	}
}

// AddCollection registers c. Re-adding an existing name is rejected with
// ErrCollectionExists.
func (s *Store) AddCollection(c *model.Collection) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.collections[c.Name]; ok {
		return fmt.Errorf("%w: %s", ErrCollectionExists, c.Name)
	}
	s.collections[c.Name] = c
	return nil
}

// User returns the user with the given id.
func (s *Store) User(id string) (model.User, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	u, ok := s.users[id]
	return u, ok
}

// Text returns the text with the given id.
func (s *Store) Text(id string) (*model.Text, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	t, ok := s.texts[id]
	return t, ok
}

// Annotation returns the annotation with the given id.
func (s *Store) Annotation(id string) (*model.Annotation, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	a, ok := s.annotations[id]
	return a, ok
}

// Collection returns the collection with the given name.
func (s *Store) Collection(name string) (*model.Collection, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	c, ok := s.collections[name]
	return c, ok
}

// Users returns all users sorted by id.
func (s *Store) Users() []model.User {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]model.User, 0, len(s.users))
	for _, u := range s.users {
		out = append(out, u)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID() < out[j].ID() })
	return out
}

// Texts returns all texts ordered by numeric id suffix (T2 before T10).
func (s *Store) Texts() []*model.Text {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]*model.Text, 0, len(s.texts))
	for _, t := range s.texts {
		out = append(out, t)
	}
	sort.Slice(out, func(i, j int) bool { return lessID(out[i].ID, out[j].ID) })
	return out
}

// Annotations returns all annotations ordered by numeric id suffix.
func (s *Store) Annotations() []*model.Annotation {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]*model.Annotation, 0, len(s.annotations))
	for _, a := range s.annotations {
		out = append(out, a)
	}
	sort.Slice(out, func(i, j int) bool { return lessID(out[i].ID, out[j].ID) })
	return out
}

// Collections returns all collections sorted by name.
func (s *Store) Collections() []*model.Collection {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]*model.Collection, 0, len(s.collections))
	for _, c := range s.collections {
		out = append(out, c)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}
