package service

import (
	"context"
	"fmt"
	"sync"

	"catedra-calendar/internal/calendar"
	"catedra-calendar/internal/logger"
	"catedra-calendar/internal/model"
	"catedra-calendar/internal/roster"
	"catedra-calendar/internal/store"
)

type EntryService struct {
	store store.EntryStore
}

func NewEntryService(st store.EntryStore) *EntryService { return &EntryService{store: st} }

func (s *EntryService) List(ctx context.Context) ([]model.Entry, error) {
	return s.store.ListEntries(ctx)
}

type CreateRange struct {
	StartDate    string
	EndDate      string
	Text         string
	Type         string
	Participants []string
}

// CreateRange fans out one entry per calendar day of the inclusive range, all
// created concurrently. The batch is best effort: there is no rollback, so on
// a partial failure the rows written before the failure stay written. Callers
// that care must re-list and reconcile. Returns how many rows were created.
func (s *EntryService) CreateRange(ctx context.Context, creator roster.User, in CreateRange) (int, error) {
	if in.Text == "" {
		return 0, fmt.Errorf("%w: empty text", ErrInvalid)
	}
	start, err := calendar.ParseDay(in.StartDate)
	if err != nil {
		return 0, fmt.Errorf("%w: start date %q", ErrInvalid, in.StartDate)
	}
	end, err := calendar.ParseDay(in.EndDate)
	if err != nil {
		return 0, fmt.Errorf("%w: end date %q", ErrInvalid, in.EndDate)
	}
	if end.Before(start) {
		return 0, fmt.Errorf("%w: end date before start date", ErrInvalid)
	}

	typ := in.Type
	if typ == "" {
		typ = model.TypeDiario
	}
	participants := in.Participants
	if len(participants) == 0 {
		participants = []string{creator.Name}
	}

	var days []string
	for d := start; !d.After(end); d = d.AddDate(0, 0, 1) {
		days = append(days, calendar.FormatDay(d))
	}

	// Independent rows, so the creates run concurrently and we only wait for
	// the whole batch. First error wins; order among the days is irrelevant.
	var (
		wg       sync.WaitGroup
		mu       sync.Mutex
		firstErr error
		created  int
	)
	for _, day := range days {
		wg.Add(1)
		go func(day string) {
			defer wg.Done()
			e := &model.Entry{
				Date:         day,
				Text:         in.Text,
				Type:         typ,
				Person:       creator.Name,
				Participants: participants,
				CreatedBy:    creator.ID,
			}
			err := s.store.CreateEntry(ctx, e)
			mu.Lock()
			defer mu.Unlock()
			if err != nil {
				if firstErr == nil {
					firstErr = err
				}
				return
			}
			created++
		}(day)
	}
	wg.Wait()

	if firstErr != nil {
		logger.Warn("entries.create partial", "requested", len(days), "created", created, "err", firstErr)
		return created, fmt.Errorf("create %d of %d entries: %w", len(days)-created, len(days), firstErr)
	}
	logger.Info("entries.create", "person", creator.Name, "days", len(days), "type", typ)
	return created, nil
}

// Edit updates text, type and participants. Date and person are immutable
// after creation; only the creator or a participant may edit.
func (s *EntryService) Edit(ctx context.Context, userName string, id int, in model.UpdateEntryRequest) error {
	e, err := s.store.GetEntry(ctx, id)
	if err != nil {
		return err
	}
	if !e.CanMutate(userName) {
		return ErrForbidden
	}
	e.Text = in.Text
	if in.Type != "" {
		e.Type = in.Type
	}
	if len(in.Participants) > 0 {
		e.Participants = in.Participants
	}
	return s.store.UpdateEntry(ctx, e)
}

// ToggleComplete flips the completed flag under the same creator-or-
// participant rule. Completion only means anything for plan entries, but the
// flag flip itself is type-agnostic.
func (s *EntryService) ToggleComplete(ctx context.Context, userName string, id int) error {
	e, err := s.store.GetEntry(ctx, id)
	if err != nil {
		return err
	}
	if !e.CanMutate(userName) {
		return ErrForbidden
	}
	e.Completed = !e.Completed
	return s.store.UpdateEntry(ctx, e)
}

func (s *EntryService) Delete(ctx context.Context, userName string, id int) error {
	e, err := s.store.GetEntry(ctx, id)
	if err != nil {
		return err
	}
	if !e.CanMutate(userName) {
		return ErrForbidden
	}
	return s.store.DeleteEntry(ctx, id)
}
