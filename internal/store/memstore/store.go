// Package memstore is the in-process gateway used by tests and the demo mode
// (database.in_memory). Data lives in maps guarded by one mutex and does not
// survive a restart.
package memstore

import (
	"context"
	"sort"
	"sync"
	"time"

	"catedra-calendar/internal/model"
	"catedra-calendar/internal/store"
)

type Store struct {
	mu           sync.RWMutex
	entries      map[int]model.Entry
	tasks        map[int]model.Task
	profiles     map[string]string
	announcement string
	nextID       int
}

func New() *Store {
	return &Store{
		entries:  make(map[int]model.Entry),
		tasks:    make(map[int]model.Task),
		profiles: make(map[string]string),
		nextID:   1,
	}
}

func (s *Store) ListEntries(ctx context.Context) ([]model.Entry, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]model.Entry, 0, len(s.entries))
	for _, e := range s.entries {
		out = append(out, e)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Date != out[j].Date {
			return out[i].Date < out[j].Date
		}
		return out[i].ID < out[j].ID
	})
	return out, nil
}

func (s *Store) GetEntry(ctx context.Context, id int) (*model.Entry, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	e, ok := s.entries[id]
	if !ok {
		return nil, store.ErrNotFound
	}
	return &e, nil
}

func (s *Store) CreateEntry(ctx context.Context, e *model.Entry) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	e.ID = s.nextID
	s.nextID++
	now := time.Now()
	e.CreatedAt, e.UpdatedAt = now, now
	s.entries[e.ID] = *e
	return nil
}

func (s *Store) UpdateEntry(ctx context.Context, e *model.Entry) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	cur, ok := s.entries[e.ID]
	if !ok {
		return store.ErrNotFound
	}
	cur.Text = e.Text
	cur.Type = e.Type
	cur.Participants = e.Participants
	cur.Completed = e.Completed
	cur.UpdatedAt = time.Now()
	s.entries[e.ID] = cur
	return nil
}

func (s *Store) DeleteEntry(ctx context.Context, id int) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.entries[id]; !ok {
		return store.ErrNotFound
	}
	delete(s.entries, id)
	return nil
}

func (s *Store) ListTasks(ctx context.Context, person string) ([]model.Task, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var out []model.Task
	for _, t := range s.tasks {
		if t.Person == person {
			out = append(out, t)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (s *Store) GetTask(ctx context.Context, id int) (*model.Task, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	t, ok := s.tasks[id]
	if !ok {
		return nil, store.ErrNotFound
	}
	return &t, nil
}

func (s *Store) CreateTask(ctx context.Context, t *model.Task) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	t.ID = s.nextID
	s.nextID++
	t.CreatedAt = time.Now()
	s.tasks[t.ID] = *t
	return nil
}

func (s *Store) UpdateTask(ctx context.Context, t *model.Task) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	cur, ok := s.tasks[t.ID]
	if !ok {
		return store.ErrNotFound
	}
	cur.Completed = t.Completed
	s.tasks[t.ID] = cur
	return nil
}

func (s *Store) DeleteTask(ctx context.Context, id int) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.tasks[id]; !ok {
		return store.ErrNotFound
	}
	delete(s.tasks, id)
	return nil
}

func (s *Store) Announcement(ctx context.Context) (string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.announcement, nil
}

func (s *Store) SetAnnouncement(ctx context.Context, text string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.announcement = text
	return nil
}

func (s *Store) ListProfiles(ctx context.Context) ([]model.Profile, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]model.Profile, 0, len(s.profiles))
	i := 1
	for name, end := range s.profiles {
		out = append(out, model.Profile{ID: i, UserName: name, EndDate: end})
		i++
	}
	sort.Slice(out, func(i, j int) bool { return out[i].UserName < out[j].UserName })
	return out, nil
}

func (s *Store) UpsertProfile(ctx context.Context, userName, endDate string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.profiles[userName] = endDate
	return nil
}
