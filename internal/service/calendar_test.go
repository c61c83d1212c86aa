package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"catedra-calendar/internal/calendar"
	"catedra-calendar/internal/model"
	"catedra-calendar/internal/roster"
	"catedra-calendar/internal/store/memstore"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testRoster(t *testing.T) *roster.Roster {
	t.Helper()
	r, err := roster.New([]roster.User{
		{ID: "ana", Name: "Ana", Email: "ana@test.es", Role: roster.RoleEditor, Color: "#e91e63"},
		{ID: "luis", Name: "Luis", Email: "luis@test.es", Role: roster.RoleEditor, Color: "#3f51b5"},
	})
	require.NoError(t, err)
	return r
}

func cellByDay(t *testing.T, cells []Cell, day string) Cell {
	t.Helper()
	for _, c := range cells {
		if c.Day == day {
			return c
		}
	}
	t.Fatalf("no cell for %s", day)
	return Cell{}
}

func TestViewMonth(t *testing.T) {
	st := memstore.New()
	for i := 0; i < 4; i++ {
		require.NoError(t, st.CreateEntry(context.Background(), &model.Entry{
			Date: "2024-06-10", Text: "x", Type: model.TypeDiario, Person: "Ana", Participants: []string{"Ana"},
		}))
	}
	svc := NewCalendarService(st, testRoster(t), true)

	ref := time.Date(2024, 6, 15, 12, 0, 0, 0, time.UTC)
	now := time.Date(2024, 6, 10, 9, 0, 0, 0, time.UTC)
	v := svc.View(context.Background(), ref, calendar.ViewMonth, calendar.FilterState{Persons: []string{"Ana", "Luis"}}, now)

	assert.Equal(t, calendar.ViewMonth, v.View)
	assert.Equal(t, "2024-06-15", v.Date)
	// June 2024 starts on a Saturday: 5 lead-in cells plus 30 days
	assert.Len(t, v.Cells, 35)

	busy := cellByDay(t, v.Cells, "2024-06-10")
	assert.True(t, busy.Today)
	assert.True(t, busy.Current)
	assert.Equal(t, calendar.Busy, busy.Render.Busyness)
	assert.True(t, busy.Indicator)
	assert.Equal(t, 4, busy.Render.Total)

	quiet := cellByDay(t, v.Cells, "2024-06-11")
	assert.False(t, quiet.Today)
	assert.False(t, quiet.Indicator)
	assert.Equal(t, calendar.BusyNormal, quiet.Render.Busyness)
}

func TestViewIndicatorSkipsLeadInCells(t *testing.T) {
	st := memstore.New()
	// busy day in the lead-in week of June (belongs to May)
	for i := 0; i < 5; i++ {
		require.NoError(t, st.CreateEntry(context.Background(), &model.Entry{
			Date: "2024-05-28", Text: "x", Person: "Ana", Participants: []string{"Ana"},
		}))
	}
	svc := NewCalendarService(st, testRoster(t), true)

	ref := time.Date(2024, 6, 15, 12, 0, 0, 0, time.UTC)
	v := svc.View(context.Background(), ref, calendar.ViewMonth, calendar.FilterState{Persons: []string{"Ana"}}, ref)

	cell := cellByDay(t, v.Cells, "2024-05-28")
	assert.False(t, cell.Current)
	assert.Equal(t, calendar.Busy, cell.Render.Busyness)
	assert.False(t, cell.Indicator)
}

func TestViewFiltersByPerson(t *testing.T) {
	st := memstore.New()
	ctx := context.Background()
	require.NoError(t, st.CreateEntry(ctx, &model.Entry{Date: "2024-06-10", Text: "a", Person: "Ana", Participants: []string{"Ana"}}))
	require.NoError(t, st.CreateEntry(ctx, &model.Entry{Date: "2024-06-10", Text: "b", Person: "Luis", Participants: []string{"Luis"}}))
	svc := NewCalendarService(st, testRoster(t), true)

	ref := time.Date(2024, 6, 15, 12, 0, 0, 0, time.UTC)
	v := svc.View(ctx, ref, calendar.ViewMonth, calendar.FilterState{Persons: []string{"Luis"}}, ref)
	assert.Equal(t, 1, cellByDay(t, v.Cells, "2024-06-10").Render.Total)
}

func TestViewSearchDisabledIgnoresQuery(t *testing.T) {
	st := memstore.New()
	ctx := context.Background()
	require.NoError(t, st.CreateEntry(ctx, &model.Entry{Date: "2024-06-10", Text: "feria", Person: "Ana", Participants: []string{"Ana"}}))
	require.NoError(t, st.CreateEntry(ctx, &model.Entry{Date: "2024-06-10", Text: "pedido", Person: "Ana", Participants: []string{"Ana"}}))

	ref := time.Date(2024, 6, 15, 12, 0, 0, 0, time.UTC)
	f := calendar.FilterState{Persons: []string{"Ana"}, Search: "feria"}

	on := NewCalendarService(st, testRoster(t), true).View(ctx, ref, calendar.ViewMonth, f, ref)
	assert.Equal(t, 1, cellByDay(t, on.Cells, "2024-06-10").Render.Total)

	off := NewCalendarService(st, testRoster(t), false).View(ctx, ref, calendar.ViewMonth, f, ref)
	assert.Equal(t, 2, cellByDay(t, off.Cells, "2024-06-10").Render.Total)
}

type brokenStore struct{ *memstore.Store }

func (brokenStore) ListEntries(ctx context.Context) ([]model.Entry, error) {
	return nil, errors.New("gateway down")
}

func TestViewDegradesToEmptyOnLoadFailure(t *testing.T) {
	svc := NewCalendarService(brokenStore{memstore.New()}, testRoster(t), true)
	ref := time.Date(2024, 6, 15, 12, 0, 0, 0, time.UTC)

	v := svc.View(context.Background(), ref, calendar.ViewWeek, calendar.FilterState{Persons: []string{"Ana"}}, ref)
	require.Len(t, v.Cells, 7)
	for _, c := range v.Cells {
		assert.Equal(t, calendar.BusyNormal, c.Render.Busyness)
		assert.Zero(t, c.Render.Total)
	}
}
