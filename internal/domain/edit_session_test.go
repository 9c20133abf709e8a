package domain_test

import (
	"testing"
	"time"

	"bands-console/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func loadedUser(status domain.MemberStatus) domain.User {
	return domain.User{
		ID: "u1",
		Profile: domain.Profile{
			PersonalInfo: domain.PersonalInfo{FirstName: "Alice", LastName: "Martin", Email: "alice@isep.fr"},
			Status:       status,
			Roles:        domain.RoleSelection{"president"},
			Instruments: domain.InstrumentList{
				{Instrument: "guitar", Level: domain.LevelAdvanced, IsPrimary: true},
				{Instrument: "piano", Level: domain.LevelBeginner, IsPrimary: true},
			},
		},
	}
}

func TestEditSession_NormalizesOnLoad(t *testing.T) {
	s := domain.NewEditSession("s1", loadedUser(domain.StatusCurrent), "admin", testCatalog(), wizardNow)

	assert.Equal(t, "guitar", s.Current.Instruments.Primary())
	assert.False(t, s.Current.Instruments[1].IsPrimary)
	assert.False(t, s.Dirty)
}

func TestEditSession_ApplyKeepsOriginal(t *testing.T) {
	s := domain.NewEditSession("s1", loadedUser(domain.StatusCurrent), "admin", testCatalog(), wizardNow)

	require.NoError(t, s.Apply(domain.SetPersonalField{Field: "firstName", Value: "Alicia"}, wizardNow.Add(time.Minute)))

	assert.True(t, s.Dirty)
	assert.Equal(t, "Alicia", s.Current.FirstName)
	assert.Equal(t, "Alice", s.Original.FirstName)
	assert.True(t, s.AllowedActions().Save)
}

func TestEditSession_HeldFullRoleAvailability(t *testing.T) {
	s := domain.NewEditSession("s1", loadedUser(domain.StatusCurrent), "admin", testCatalog(), wizardNow)

	require.NoError(t, s.Apply(domain.SelectRole{RoleID: "member"}, wizardNow))

	var president domain.RoleOption
	for _, o := range s.RoleOptions() {
		if o.ID == "president" {
			president = o
		}
	}
	assert.True(t, president.Availability.IsAvailable)
	assert.Equal(t, 0, president.Availability.AdjustedCount)
	require.NotNil(t, president.Availability.SpotsLeft)
	assert.Equal(t, 1, *president.Availability.SpotsLeft)

	require.NoError(t, s.Apply(domain.SelectRole{RoleID: "president"}, wizardNow))
	assert.Equal(t, domain.RoleSelection{"president"}, s.Current.Roles)
}

func TestEditSession_AllowedActions(t *testing.T) {
	tests := []struct {
		name          string
		status        domain.MemberStatus
		currentUserID string
		expected      domain.AllowedActions
	}{
		{
			name:          "other active user",
			status:        domain.StatusCurrent,
			currentUserID: "admin",
			expected:      domain.AllowedActions{Delete: true, Archive: true, ResetPassword: true},
		},
		{
			name:          "own account",
			status:        domain.StatusCurrent,
			currentUserID: "u1",
			expected:      domain.AllowedActions{ResetPassword: true},
		},
		{
			name:          "deleted user",
			status:        domain.StatusDeleted,
			currentUserID: "admin",
			expected:      domain.AllowedActions{Delete: true, Restore: true, ResetPassword: true},
		},
		{
			name:          "suspended user",
			status:        domain.StatusSuspended,
			currentUserID: "admin",
			expected:      domain.AllowedActions{Delete: true, Archive: true, Restore: true, ResetPassword: true},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := domain.NewEditSession("s1", loadedUser(tt.status), tt.currentUserID, testCatalog(), wizardNow)
			assert.Equal(t, tt.expected, s.AllowedActions())
		})
	}
}

func TestEditSession_ViewProfile(t *testing.T) {
	s := domain.NewEditSession("s1", loadedUser(domain.StatusCurrent), "admin", testCatalog(), wizardNow)
	require.NoError(t, s.Apply(domain.ClearPhoto{}, wizardNow))

	_, err := s.ViewProfile(false, wizardNow)
	assert.ErrorIs(t, err, domain.ErrUnsavedChanges)
	assert.True(t, s.Dirty)

	path, err := s.ViewProfile(true, wizardNow)
	require.NoError(t, err)
	assert.Equal(t, "/profile/u1", path)
	assert.False(t, s.Dirty)
}

func TestEditSession_Saved(t *testing.T) {
	s := domain.NewEditSession("s1", loadedUser(domain.StatusCurrent), "admin", testCatalog(), wizardNow)
	require.NoError(t, s.Apply(domain.SetStatus{Status: domain.StatusFormer}, wizardNow))
	s.AttachPhoto(domain.PhotoFile{FileName: "a.png"}, wizardNow)

	saved := s.Current
	s.Saved(saved, wizardNow)

	assert.False(t, s.Dirty)
	assert.Nil(t, s.PendingPhoto)
	assert.Equal(t, domain.StatusFormer, s.Original.Status)
}

func TestParseEditTab(t *testing.T) {
	tab, err := domain.ParseEditTab("activity")
	require.NoError(t, err)
	assert.Equal(t, domain.TabActivity, tab)

	_, err = domain.ParseEditTab("secrets")
	assert.ErrorIs(t, err, domain.ErrUnknownTab)
}

func TestEditSession_PhotoActionDropsPendingFile(t *testing.T) {
	for _, action := range []domain.Action{domain.ClearPhoto{}, domain.SetPhoto{URL: "https://cdn/other.png"}} {
		t.Run(string(action.Type()), func(t *testing.T) {
			s := domain.NewEditSession("s1", loadedUser(domain.StatusCurrent), "admin", testCatalog(), wizardNow)
			s.AttachPhoto(domain.PhotoFile{FileName: "x.png", ContentType: "image/png", Data: []byte("png")}, wizardNow)

			require.NoError(t, s.Apply(action, wizardNow))

			assert.Nil(t, s.PendingPhoto)
			assert.True(t, s.Dirty)
		})
	}
}
