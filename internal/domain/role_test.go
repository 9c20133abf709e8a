package domain_test

import (
	"testing"

	"bands-console/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func intPtr(v int) *int { return &v }

func TestRoleAvailability_FullRoleNotHeld(t *testing.T) {
	role := domain.RoleSnapshot{ID: "president", MaxUsers: intPtr(5), UserCount: 5}

	a := domain.RoleAvailability(role, false, false)

	assert.False(t, a.IsAvailable)
	require.NotNil(t, a.SpotsLeft)
	assert.Equal(t, 0, *a.SpotsLeft)
}

func TestRoleAvailability_HeldAndDeselected(t *testing.T) {
	role := domain.RoleSnapshot{ID: "president", MaxUsers: intPtr(5), UserCount: 5}

	a := domain.RoleAvailability(role, true, false)

	assert.True(t, a.IsAvailable)
	assert.Equal(t, 4, a.AdjustedCount)
	require.NotNil(t, a.SpotsLeft)
	assert.Equal(t, 1, *a.SpotsLeft)
}

func TestRoleAvailability_Branches(t *testing.T) {
	role := domain.RoleSnapshot{ID: "member", MaxUsers: intPtr(10), UserCount: 3}

	tests := []struct {
		name          string
		held, chosen  bool
		expectedCount int
	}{
		{"held and kept", true, true, 3},
		{"held and removed", true, false, 2},
		{"added", false, true, 4},
		{"untouched", false, false, 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := domain.RoleAvailability(role, tt.held, tt.chosen)
			assert.Equal(t, tt.expectedCount, a.AdjustedCount)
			assert.Equal(t, 10-tt.expectedCount, *a.SpotsLeft)
			assert.True(t, a.IsAvailable)
		})
	}
}

func TestRoleAvailability_Unlimited(t *testing.T) {
	a := domain.RoleAvailability(domain.RoleSnapshot{ID: "member", UserCount: 400}, false, true)

	assert.True(t, a.IsAvailable)
	assert.Nil(t, a.SpotsLeft)
	assert.Equal(t, 401, a.AdjustedCount)
}

func TestSelectRoleIn_FullRoleIsNoOp(t *testing.T) {
	catalog := []domain.RoleSnapshot{
		{ID: "president", MaxUsers: intPtr(5), UserCount: 5},
		{ID: "member"},
	}
	current := domain.RoleSelection{"member"}

	out, err := domain.SelectRoleIn(current, nil, catalog, "president")

	assert.ErrorIs(t, err, domain.ErrRoleFull)
	assert.Equal(t, current, out)
}

func TestSelectRoleIn_HeldFullRoleCanBeReselected(t *testing.T) {
	catalog := []domain.RoleSnapshot{{ID: "president", MaxUsers: intPtr(1), UserCount: 1}, {ID: "member"}}

	out, err := domain.SelectRoleIn(domain.RoleSelection{"member"}, domain.RoleSelection{"president"}, catalog, "president")

	require.NoError(t, err)
	assert.Equal(t, domain.RoleSelection{"president"}, out)
}

func TestSelectRoleIn_UnknownRole(t *testing.T) {
	_, err := domain.SelectRoleIn(nil, nil, nil, "ghost")
	assert.ErrorIs(t, err, domain.ErrRoleNotFound)
}

func TestHighestWeightRole(t *testing.T) {
	sel := domain.HighestWeightRole([]domain.RoleRef{
		{ID: "member", Weight: 1},
		{ID: "president", Weight: 100},
		{ID: "treasurer", Weight: 50},
	})

	assert.Equal(t, domain.RoleSelection{"president"}, sel)
	assert.Empty(t, domain.HighestWeightRole(nil))
}
