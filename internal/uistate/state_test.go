package uistate

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BruksfildServices01/banquet-admin/internal/httperr"
)

func TestGetReturnsDefaultsWhenNothingSaved(t *testing.T) {
	svc := NewService(NewMemoryStore())

	st, err := svc.Get(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, Default(), st)
}

func TestPutThenGetRoundTripsPerUser(t *testing.T) {
	ctx := context.Background()
	svc := NewService(NewMemoryStore())

	saved, err := svc.Put(ctx, 1, State{
		SidebarCollapsed: true,
		SelectedRecord:   &RecordRef{Entity: "booking", ID: 9},
	})
	require.NoError(t, err)
	assert.Equal(t, "month", saved.CalendarView)

	st, err := svc.Get(ctx, 1)
	require.NoError(t, err)
	assert.True(t, st.SidebarCollapsed)
	require.NotNil(t, st.SelectedRecord)
	assert.Equal(t, uint(9), st.SelectedRecord.ID)

	other, err := svc.Get(ctx, 2)
	require.NoError(t, err)
	assert.False(t, other.SidebarCollapsed)
}

func TestPutRejectsUnknownValues(t *testing.T) {
	svc := NewService(NewMemoryStore())

	_, err := svc.Put(context.Background(), 1, State{CalendarView: "year"})
	assert.True(t, httperr.IsValidation(err))

	_, err = svc.Put(context.Background(), 1, State{SelectedRecord: &RecordRef{Entity: "staff", ID: 1}})
	assert.True(t, httperr.IsValidation(err))
}
