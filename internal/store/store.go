// Package store defines the data gateway contract. The core never talks to a
// database directly; it goes through these interfaces, satisfied by MySQL in
// production (gormstore) and by an in-process map store for tests and demos
// (memstore).
package store

import (
	"context"
	"errors"

	"catedra-calendar/internal/model"
)

var ErrNotFound = errors.New("not found")

type EntryStore interface {
	ListEntries(ctx context.Context) ([]model.Entry, error)
	GetEntry(ctx context.Context, id int) (*model.Entry, error)
	// CreateEntry persists e and fills in its server-assigned ID.
	CreateEntry(ctx context.Context, e *model.Entry) error
	UpdateEntry(ctx context.Context, e *model.Entry) error
	DeleteEntry(ctx context.Context, id int) error
}

type TaskStore interface {
	ListTasks(ctx context.Context, person string) ([]model.Task, error)
	GetTask(ctx context.Context, id int) (*model.Task, error)
	CreateTask(ctx context.Context, t *model.Task) error
	UpdateTask(ctx context.Context, t *model.Task) error
	DeleteTask(ctx context.Context, id int) error
}

type BoardStore interface {
	// Announcement returns the singleton banner text, empty when unset.
	Announcement(ctx context.Context) (string, error)
	SetAnnouncement(ctx context.Context, text string) error
	ListProfiles(ctx context.Context) ([]model.Profile, error)
	UpsertProfile(ctx context.Context, userName, endDate string) error
}

// Store is the full gateway a backend must provide.
type Store interface {
	EntryStore
	TaskStore
	BoardStore
}
