package service

import (
	"context"
	"fmt"
	"math"
	"time"

	"catedra-calendar/internal/calendar"
	"catedra-calendar/internal/logger"
	"catedra-calendar/internal/model"
	"catedra-calendar/internal/roster"
	"catedra-calendar/internal/store"
)

// BoardService owns the shared announcement banner and the progress tracker
// profiles.
type BoardService struct {
	store store.BoardStore
}

func NewBoardService(st store.BoardStore) *BoardService { return &BoardService{store: st} }

func (s *BoardService) Announcement(ctx context.Context) (string, error) {
	return s.store.Announcement(ctx)
}

// SetAnnouncement persists the banner. The gate is the explicit capability,
// not the role tag; see the roster package for how the default is derived.
func (s *BoardService) SetAnnouncement(ctx context.Context, user roster.User, text string) error {
	if !user.BoardEditor() {
		return ErrForbidden
	}
	if err := s.store.SetAnnouncement(ctx, text); err != nil {
		return err
	}
	logger.Info("board.announcement", "by", user.Name)
	return nil
}

// SetProfile upserts the caller's own end date. Only editors track progress.
func (s *BoardService) SetProfile(ctx context.Context, user roster.User, endDate string) error {
	if !user.IsEditor() {
		return ErrForbidden
	}
	if _, err := calendar.ParseDay(endDate); err != nil {
		return fmt.Errorf("%w: end date %q", ErrInvalid, endDate)
	}
	return s.store.UpsertProfile(ctx, user.Name, endDate)
}

// Profiles returns every stored profile with its countdown relative to now.
func (s *BoardService) Profiles(ctx context.Context, now time.Time) ([]model.ProfileView, error) {
	profiles, err := s.store.ListProfiles(ctx)
	if err != nil {
		return nil, err
	}
	views := make([]model.ProfileView, 0, len(profiles))
	for _, p := range profiles {
		v := model.ProfileView{UserName: p.UserName, EndDate: p.EndDate}
		if d, ok := DaysLeft(p.EndDate, now); ok {
			days := d
			v.DaysLeft = &days
		}
		views = append(views, v)
	}
	return views, nil
}

// DaysLeft counts whole days from today until the end date, both taken at
// local midnight, clamped at zero once the date has passed. The second result
// is false when no parseable end date is set.
func DaysLeft(endDate string, now time.Time) (int, bool) {
	if endDate == "" {
		return 0, false
	}
	end, err := time.ParseInLocation(calendar.DayFormat, endDate, now.Location())
	if err != nil {
		return 0, false
	}
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	days := int(math.Ceil(end.Sub(today).Hours() / 24))
	if days < 0 {
		days = 0
	}
	return days, true
}
