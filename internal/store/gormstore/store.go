// Package gormstore backs the data gateway with MySQL through gorm.
package gormstore

import (
	"context"
	"errors"
	"fmt"

	"catedra-calendar/internal/model"
	"catedra-calendar/internal/store"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type Store struct {
	db *gorm.DB
}

// New migrates the schema and wraps the connection.
func New(db *gorm.DB) (*Store, error) {
	if err := db.AutoMigrate(&model.Entry{}, &model.Task{}, &model.Profile{}, &model.Announcement{}); err != nil {
		return nil, fmt.Errorf("migrate: %w", err)
	}
	return &Store{db: db}, nil
}

func (s *Store) ListEntries(ctx context.Context) ([]model.Entry, error) {
	var entries []model.Entry
	if err := s.db.WithContext(ctx).Order("date, id").Find(&entries).Error; err != nil {
		return nil, fmt.Errorf("list entries: %w", err)
	}
	return entries, nil
}

func (s *Store) GetEntry(ctx context.Context, id int) (*model.Entry, error) {
	var e model.Entry
	err := s.db.WithContext(ctx).First(&e, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, store.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get entry %d: %w", id, err)
	}
	return &e, nil
}

func (s *Store) CreateEntry(ctx context.Context, e *model.Entry) error {
	if err := s.db.WithContext(ctx).Create(e).Error; err != nil {
		return fmt.Errorf("insert entry: %w", err)
	}
	return nil
}

// UpdateEntry relies on CLIENT_FOUND_ROWS (set in config.OpenGormDB):
// RowsAffected then counts matched rows, so a save that changes nothing is
// still distinguishable from a missing row.
func (s *Store) UpdateEntry(ctx context.Context, e *model.Entry) error {
	res := s.db.WithContext(ctx).Model(&model.Entry{ID: e.ID}).
		Select("text", "type", "participants", "completed").Updates(e)
	if res.Error != nil {
		return fmt.Errorf("update entry %d: %w", e.ID, res.Error)
	}
	if res.RowsAffected == 0 {
		return store.ErrNotFound
	}
	return nil
}

func (s *Store) DeleteEntry(ctx context.Context, id int) error {
	res := s.db.WithContext(ctx).Delete(&model.Entry{}, id)
	if res.Error != nil {
		return fmt.Errorf("delete entry %d: %w", id, res.Error)
	}
	if res.RowsAffected == 0 {
		return store.ErrNotFound
	}
	return nil
}

func (s *Store) ListTasks(ctx context.Context, person string) ([]model.Task, error) {
	var tasks []model.Task
	err := s.db.WithContext(ctx).Where("person = ?", person).Order("created_at, id").Find(&tasks).Error
	if err != nil {
		return nil, fmt.Errorf("list tasks: %w", err)
	}
	return tasks, nil
}

func (s *Store) GetTask(ctx context.Context, id int) (*model.Task, error) {
	var t model.Task
	err := s.db.WithContext(ctx).First(&t, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, store.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get task %d: %w", id, err)
	}
	return &t, nil
}

func (s *Store) CreateTask(ctx context.Context, t *model.Task) error {
	if err := s.db.WithContext(ctx).Create(t).Error; err != nil {
		return fmt.Errorf("insert task: %w", err)
	}
	return nil
}

func (s *Store) UpdateTask(ctx context.Context, t *model.Task) error {
	res := s.db.WithContext(ctx).Model(&model.Task{ID: t.ID}).Select("completed").Updates(t)
	if res.Error != nil {
		return fmt.Errorf("update task %d: %w", t.ID, res.Error)
	}
	if res.RowsAffected == 0 {
		return store.ErrNotFound
	}
	return nil
}

func (s *Store) DeleteTask(ctx context.Context, id int) error {
	res := s.db.WithContext(ctx).Delete(&model.Task{}, id)
	if res.Error != nil {
		return fmt.Errorf("delete task %d: %w", id, res.Error)
	}
	if res.RowsAffected == 0 {
		return store.ErrNotFound
	}
	return nil
}

func (s *Store) Announcement(ctx context.Context) (string, error) {
	var a model.Announcement
	err := s.db.WithContext(ctx).First(&a, 1).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("get announcement: %w", err)
	}
	return a.Text, nil
}

func (s *Store) SetAnnouncement(ctx context.Context, text string) error {
	a := model.Announcement{ID: 1, Text: text}
	err := s.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "id"}},
		DoUpdates: clause.AssignmentColumns([]string{"text", "updated_at"}),
	}).Create(&a).Error
	if err != nil {
		return fmt.Errorf("set announcement: %w", err)
	}
	return nil
}

func (s *Store) ListProfiles(ctx context.Context) ([]model.Profile, error) {
	var profiles []model.Profile
	if err := s.db.WithContext(ctx).Order("user_name").Find(&profiles).Error; err != nil {
		return nil, fmt.Errorf("list profiles: %w", err)
	}
	return profiles, nil
}

func (s *Store) UpsertProfile(ctx context.Context, userName, endDate string) error {
	p := model.Profile{UserName: userName, EndDate: endDate}
	err := s.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "user_name"}},
		DoUpdates: clause.AssignmentColumns([]string{"end_date"}),
	}).Create(&p).Error
	if err != nil {
		return fmt.Errorf("upsert profile %s: %w", userName, err)
	}
	return nil
}
