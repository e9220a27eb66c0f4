package services

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"mycloth-atelier/internal/adapters/persistence/localstore"
	"mycloth-atelier/internal/core/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestStaff(t *testing.T) (*StaffService, context.Context) {
	t.Helper()
	store, err := localstore.Open(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })

	return NewStaffService(localstore.NewStaffStore(store)), context.Background()
}

func TestHireStampsJoinDate(t *testing.T) {
	svc, ctx := newTestStaff(t)

	member, err := svc.Hire(ctx, &HireInput{Name: "Mira", Email: "mira@mycloth.in", Role: domain.StaffRoleCurator})

	require.NoError(t, err)
	assert.NotEmpty(t, member.ID)
	assert.Equal(t, time.Now().Format("2006-01-02"), member.JoinedAt)
	assert.Equal(t, domain.StaffStatusActive, member.Status)
}

func TestHireValidation(t *testing.T) {
	svc, ctx := newTestStaff(t)

	tests := []struct {
		name  string
		input HireInput
	}{
		{"empty name", HireInput{Email: "a@b.c", Role: domain.StaffRoleSupport}},
		{"bad email", HireInput{Name: "X", Email: "not-an-email", Role: domain.StaffRoleSupport}},
		{"unknown role", HireInput{Name: "X", Email: "a@b.c", Role: "Janitor"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.Hire(ctx, &tt.input)
			assert.ErrorIs(t, err, domain.ErrInvalidInput)
		})
	}
}

func TestDismissRemovesFromRoster(t *testing.T) {
	svc, ctx := newTestStaff(t)

	member, err := svc.Hire(ctx, &HireInput{Name: "Mira", Email: "mira@mycloth.in", Role: domain.StaffRoleManager})
	require.NoError(t, err)
	require.Len(t, svc.List(ctx), 1)

	require.NoError(t, svc.Dismiss(ctx, member.ID))
	assert.Empty(t, svc.List(ctx))

	// A repeated dismissal is a no-op, not an error
	assert.NoError(t, svc.Dismiss(ctx, member.ID))
}

func TestListFallsBackToEmptyRoster(t *testing.T) {
	svc, ctx := newTestStaff(t)

	members := svc.List(ctx)
	assert.NotNil(t, members)
	assert.Empty(t, members)
}
