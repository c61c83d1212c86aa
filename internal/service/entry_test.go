package service

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"

	"catedra-calendar/internal/model"
	"catedra-calendar/internal/roster"
	"catedra-calendar/internal/store"
	"catedra-calendar/internal/store/memstore"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	ana  = roster.User{ID: "ana", Name: "Ana", Role: roster.RoleEditor, Color: "#e91e63"}
	luis = roster.User{ID: "luis", Name: "Luis", Role: roster.RoleEditor, Color: "#3f51b5"}
)

func TestCreateRangeFansOutPerDay(t *testing.T) {
	st := memstore.New()
	svc := NewEntryService(st)

	created, err := svc.CreateRange(context.Background(), ana, CreateRange{
		StartDate:    "2024-06-01",
		EndDate:      "2024-06-03",
		Text:         "Feria local",
		Type:         model.TypePlan,
		Participants: []string{"Ana"},
	})
	require.NoError(t, err)
	assert.Equal(t, 3, created)

	entries, err := svc.List(context.Background())
	require.NoError(t, err)
	require.Len(t, entries, 3)

	days := map[string]bool{}
	for _, e := range entries {
		days[e.Date] = true
		assert.Equal(t, "Feria local", e.Text)
		assert.Equal(t, model.TypePlan, e.Type)
		assert.Equal(t, []string{"Ana"}, e.Participants)
		assert.Equal(t, "Ana", e.Person)
		assert.Equal(t, "ana", e.CreatedBy)
		assert.NotZero(t, e.ID)
	}
	assert.Equal(t, map[string]bool{"2024-06-01": true, "2024-06-02": true, "2024-06-03": true}, days)
}

func TestCreateRangeSingleDay(t *testing.T) {
	st := memstore.New()
	svc := NewEntryService(st)
	created, err := svc.CreateRange(context.Background(), ana, CreateRange{
		StartDate: "2024-06-01", EndDate: "2024-06-01", Text: "x",
	})
	require.NoError(t, err)
	assert.Equal(t, 1, created)

	entries, _ := svc.List(context.Background())
	require.Len(t, entries, 1)
	// defaults: diario type, creator as sole participant
	assert.Equal(t, model.TypeDiario, entries[0].Type)
	assert.Equal(t, []string{"Ana"}, entries[0].Participants)
}

func TestCreateRangeValidation(t *testing.T) {
	svc := NewEntryService(memstore.New())
	tests := []struct {
		name string
		in   CreateRange
	}{
		{"empty text", CreateRange{StartDate: "2024-06-01", EndDate: "2024-06-02"}},
		{"bad start", CreateRange{StartDate: "junk", EndDate: "2024-06-02", Text: "x"}},
		{"bad end", CreateRange{StartDate: "2024-06-01", EndDate: "junk", Text: "x"}},
		{"end before start", CreateRange{StartDate: "2024-06-03", EndDate: "2024-06-01", Text: "x"}},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := svc.CreateRange(context.Background(), ana, tc.in)
			assert.ErrorIs(t, err, ErrInvalid)
		})
	}
}

// flakyStore fails every create after the first n.
type flakyStore struct {
	*memstore.Store
	allowed int32
	used    int32
}

func (f *flakyStore) CreateEntry(ctx context.Context, e *model.Entry) error {
	if atomic.AddInt32(&f.used, 1) > f.allowed {
		return errors.New("gateway down")
	}
	return f.Store.CreateEntry(ctx, e)
}

func TestCreateRangeIsBestEffort(t *testing.T) {
	st := &flakyStore{Store: memstore.New(), allowed: 2}
	svc := NewEntryService(st)

	created, err := svc.CreateRange(context.Background(), ana, CreateRange{
		StartDate: "2024-06-01", EndDate: "2024-06-05", Text: "x",
	})
	require.Error(t, err)
	assert.Equal(t, 2, created)

	// no rollback: the rows that made it stay
	entries, listErr := svc.List(context.Background())
	require.NoError(t, listErr)
	assert.Len(t, entries, 2)
}

func seedEntry(t *testing.T, st store.EntryStore, person string, participants ...string) *model.Entry {
	t.Helper()
	e := &model.Entry{Date: "2024-06-01", Text: "seed", Type: model.TypePlan, Person: person, Participants: participants}
	require.NoError(t, st.CreateEntry(context.Background(), e))
	return e
}

func TestEditRequiresCreatorOrParticipant(t *testing.T) {
	st := memstore.New()
	svc := NewEntryService(st)
	e := seedEntry(t, st, "Ana", "Ana", "Sara")

	err := svc.Edit(context.Background(), "Luis", e.ID, model.UpdateEntryRequest{Text: "hacked"})
	assert.ErrorIs(t, err, ErrForbidden)

	// untouched
	cur, _ := st.GetEntry(context.Background(), e.ID)
	assert.Equal(t, "seed", cur.Text)

	// participant may edit
	require.NoError(t, svc.Edit(context.Background(), "Sara", e.ID, model.UpdateEntryRequest{Text: "nuevo", Type: model.TypeDiario}))
	cur, _ = st.GetEntry(context.Background(), e.ID)
	assert.Equal(t, "nuevo", cur.Text)
	assert.Equal(t, model.TypeDiario, cur.Type)
	// date and person are immutable through the edit flow
	assert.Equal(t, "2024-06-01", cur.Date)
	assert.Equal(t, "Ana", cur.Person)
}

func TestToggleCompleteGate(t *testing.T) {
	st := memstore.New()
	svc := NewEntryService(st)
	e := seedEntry(t, st, "Ana", "Ana")

	assert.ErrorIs(t, svc.ToggleComplete(context.Background(), "Luis", e.ID), ErrForbidden)
	cur, _ := st.GetEntry(context.Background(), e.ID)
	assert.False(t, cur.Completed)

	require.NoError(t, svc.ToggleComplete(context.Background(), "Ana", e.ID))
	cur, _ = st.GetEntry(context.Background(), e.ID)
	assert.True(t, cur.Completed)

	require.NoError(t, svc.ToggleComplete(context.Background(), "Ana", e.ID))
	cur, _ = st.GetEntry(context.Background(), e.ID)
	assert.False(t, cur.Completed)
}

func TestCreatorFallbackWhenNoParticipants(t *testing.T) {
	st := memstore.New()
	svc := NewEntryService(st)
	e := &model.Entry{Date: "2024-06-01", Text: "solo", Person: "Ana"}
	require.NoError(t, st.CreateEntry(context.Background(), e))

	// no participants list: the person field is the sole owner
	assert.ErrorIs(t, svc.ToggleComplete(context.Background(), "Luis", e.ID), ErrForbidden)
	assert.NoError(t, svc.ToggleComplete(context.Background(), "Ana", e.ID))
}

func TestDelete(t *testing.T) {
	st := memstore.New()
	svc := NewEntryService(st)
	e := seedEntry(t, st, "Ana", "Ana")

	assert.ErrorIs(t, svc.Delete(context.Background(), "Luis", e.ID), ErrForbidden)
	require.NoError(t, svc.Delete(context.Background(), "Ana", e.ID))
	_, err := st.GetEntry(context.Background(), e.ID)
	assert.ErrorIs(t, err, store.ErrNotFound)

	assert.ErrorIs(t, svc.Delete(context.Background(), "Ana", e.ID), store.ErrNotFound)
}
