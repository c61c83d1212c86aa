package service

import (
	"context"
	"fmt"

	"catedra-calendar/internal/model"
	"catedra-calendar/internal/store"
)

// TaskService manages the personal quick-task list. Tasks are strictly
// private: every operation is scoped to the owning person and touching
// someone else's task is forbidden.
type TaskService struct {
	store store.TaskStore
}

func NewTaskService(st store.TaskStore) *TaskService { return &TaskService{store: st} }

func (s *TaskService) List(ctx context.Context, person string) ([]model.Task, error) {
	return s.store.ListTasks(ctx, person)
}

func (s *TaskService) Add(ctx context.Context, person, text string) (*model.Task, error) {
	if text == "" {
		return nil, fmt.Errorf("%w: empty text", ErrInvalid)
	}
	t := &model.Task{Person: person, Text: text}
	if err := s.store.CreateTask(ctx, t); err != nil {
		return nil, err
	}
	return t, nil
}

func (s *TaskService) Toggle(ctx context.Context, person string, id int) error {
	t, err := s.store.GetTask(ctx, id)
	if err != nil {
		return err
	}
	if t.Person != person {
		return ErrForbidden
	}
	t.Completed = !t.Completed
	return s.store.UpdateTask(ctx, t)
}

func (s *TaskService) Delete(ctx context.Context, person string, id int) error {
	t, err := s.store.GetTask(ctx, id)
	if err != nil {
		return err
	}
	if t.Person != person {
		return ErrForbidden
	}
	return s.store.DeleteTask(ctx, id)
}
