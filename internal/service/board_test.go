package service

import (
	"context"
	"testing"
	"time"

	"catedra-calendar/internal/roster"
	"catedra-calendar/internal/store/memstore"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func boolPtr(b bool) *bool { return &b }

func TestDaysLeft(t *testing.T) {
	now := time.Date(2024, 6, 1, 15, 30, 0, 0, time.UTC)
	tests := []struct {
		name    string
		endDate string
		want    int
		ok      bool
	}{
		{"ten days out", "2024-06-11", 10, true},
		{"tomorrow", "2024-06-02", 1, true},
		{"same day", "2024-06-01", 0, true},
		{"already passed", "2024-05-20", 0, true},
		{"unset", "", 0, false},
		{"garbage", "pronto", 0, false},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, ok := DaysLeft(tc.endDate, now)
			assert.Equal(t, tc.ok, ok)
			assert.Equal(t, tc.want, got)
		})
	}
}

// The countdown is whole calendar days, so the time of day must not shift it.
func TestDaysLeftIgnoresTimeOfDay(t *testing.T) {
	for _, hour := range []int{0, 12, 23} {
		now := time.Date(2024, 6, 1, hour, 59, 0, 0, time.UTC)
		got, ok := DaysLeft("2024-06-04", now)
		require.True(t, ok)
		assert.Equal(t, 3, got, "hour %d", hour)
	}
}

func TestAnnouncementGate(t *testing.T) {
	svc := NewBoardService(memstore.New())
	ctx := context.Background()

	// default rule: viewers hold the banner, editors do not
	viewer := roster.User{Name: "José", Role: roster.RoleViewer}
	editor := roster.User{Name: "Ana", Role: roster.RoleEditor}

	assert.ErrorIs(t, svc.SetAnnouncement(ctx, editor, "no"), ErrForbidden)
	require.NoError(t, svc.SetAnnouncement(ctx, viewer, "Reunión el lunes"))

	text, err := svc.Announcement(ctx)
	require.NoError(t, err)
	assert.Equal(t, "Reunión el lunes", text)

	// the explicit capability wins over the role default
	granted := roster.User{Name: "Ana", Role: roster.RoleEditor, CanEditBoard: boolPtr(true)}
	revoked := roster.User{Name: "José", Role: roster.RoleViewer, CanEditBoard: boolPtr(false)}
	assert.NoError(t, svc.SetAnnouncement(ctx, granted, "ok"))
	assert.ErrorIs(t, svc.SetAnnouncement(ctx, revoked, "no"), ErrForbidden)
}

func TestSetProfile(t *testing.T) {
	svc := NewBoardService(memstore.New())
	ctx := context.Background()
	editor := roster.User{Name: "Ana", Role: roster.RoleEditor}
	viewer := roster.User{Name: "José", Role: roster.RoleViewer}

	assert.ErrorIs(t, svc.SetProfile(ctx, viewer, "2024-09-01"), ErrForbidden)
	assert.ErrorIs(t, svc.SetProfile(ctx, editor, "soon"), ErrInvalid)
	require.NoError(t, svc.SetProfile(ctx, editor, "2024-09-01"))

	now := time.Date(2024, 8, 30, 10, 0, 0, 0, time.UTC)
	views, err := svc.Profiles(ctx, now)
	require.NoError(t, err)
	require.Len(t, views, 1)
	assert.Equal(t, "Ana", views[0].UserName)
	assert.Equal(t, "2024-09-01", views[0].EndDate)
	require.NotNil(t, views[0].DaysLeft)
	assert.Equal(t, 2, *views[0].DaysLeft)

	// upsert replaces, never duplicates
	require.NoError(t, svc.SetProfile(ctx, editor, "2024-10-01"))
	views, err = svc.Profiles(ctx, now)
	require.NoError(t, err)
	require.Len(t, views, 1)
	assert.Equal(t, "2024-10-01", views[0].EndDate)
}
