package service

import (
	"context"
	"time"

	"catedra-calendar/internal/calendar"
	"catedra-calendar/internal/logger"
	"catedra-calendar/internal/roster"
	"catedra-calendar/internal/store"
)

// CalendarService composes the pure core into the view state a client
// renders: filter the loaded entries, lay out the grid for the requested
// period, classify each day cell.
type CalendarService struct {
	store         store.EntryStore
	roster        *roster.Roster
	searchEnabled bool
}

func NewCalendarService(st store.EntryStore, r *roster.Roster, searchEnabled bool) *CalendarService {
	return &CalendarService{store: st, roster: r, searchEnabled: searchEnabled}
}

// Cell couples a grid slot with its classification. Indicator is the
// attention dot, shown only on busy current-period cells.
type Cell struct {
	calendar.DayCell
	Today     bool               `json:"today"`
	Indicator bool               `json:"indicator"`
	Render    calendar.DayRender `json:"render"`
}

type CalendarView struct {
	View  calendar.View `json:"view"`
	Date  string        `json:"date"`
	Cells []Cell        `json:"cells"`
}

// View builds the render intent for the period around ref. A gateway read
// failure degrades to an empty calendar rather than an error: the UI stays
// usable on the last consistent state it has.
func (s *CalendarService) View(ctx context.Context, ref time.Time, view calendar.View, f calendar.FilterState, now time.Time) CalendarView {
	entries, err := s.store.ListEntries(ctx)
	if err != nil {
		logger.Warn("calendar.load failed, rendering empty", "err", err)
		entries = nil
	}

	if !s.searchEnabled {
		f.Search = ""
	}
	filtered := calendar.Filter(entries, f)
	byDay := calendar.GroupByDay(filtered)

	today := calendar.FormatDay(calendar.Noon(now))
	cells := make([]Cell, 0, 42)
	for _, dc := range calendar.Grid(ref, view) {
		render := calendar.ClassifyDay(dc.Day, byDay[dc.Day], s.roster)
		cells = append(cells, Cell{
			DayCell:   dc,
			Today:     dc.Day == today,
			Indicator: dc.Current && render.Busyness != calendar.BusyNormal,
			Render:    render,
		})
	}
	return CalendarView{View: view, Date: calendar.FormatDay(calendar.Noon(ref)), Cells: cells}
}
