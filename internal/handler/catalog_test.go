package handler_test

import (
	"errors"
	"net/http"
	"testing"

	"bands-console/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestCatalogHandler_GetRoles_Availability(t *testing.T) {
	s := newConsoleServer()
	s.catalog.On("Roles", mock.Anything).Return(testCatalog().Roles, nil)

	rec := s.do(jsonRequest(http.MethodGet, "/console/catalog/roles", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	var out struct {
		Roles []domain.RoleOption `json:"roles"`
	}
	decodeJSON(t, rec, &out)
	require.Len(t, out.Roles, 2)

	president := out.Roles[0]
	assert.Equal(t, "president", president.ID)
	assert.False(t, president.Availability.IsAvailable)
	require.NotNil(t, president.Availability.SpotsLeft)
	assert.Equal(t, 0, *president.Availability.SpotsLeft)

	member := out.Roles[1]
	assert.True(t, member.Availability.IsAvailable)
	assert.Nil(t, member.Availability.SpotsLeft)
}

func TestCatalogHandler_GetInstruments(t *testing.T) {
	s := newConsoleServer()
	s.catalog.On("Instruments", mock.Anything).Return([]domain.InstrumentDefinition{
		{ID: "guitar", Name: "Guitare", Category: "strings"},
	}, nil)

	rec := s.do(jsonRequest(http.MethodGet, "/console/catalog/instruments", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"guitar"`)
}

func TestCatalogHandler_GetBadges_Error(t *testing.T) {
	s := newConsoleServer()
	s.catalog.On("Badges", mock.Anything).Return(nil, errors.New("connection refused"))

	rec := s.do(jsonRequest(http.MethodGet, "/console/catalog/badges", nil))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}

func TestNewsletterHandler_Subscribe(t *testing.T) {
	s := newConsoleServer()
	s.newsletter.On("Subscribe", mock.Anything, "fan@isep.fr").Return(nil)

	rec := s.do(jsonRequest(http.MethodPost, "/console/newsletter", map[string]string{"email": "fan@isep.fr"}))

	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.JSONEq(t, `{"subscribed":true}`, rec.Body.String())
}

func TestNewsletterHandler_Subscribe_MissingEmail(t *testing.T) {
	s := newConsoleServer()

	rec := s.do(jsonRequest(http.MethodPost, "/console/newsletter", map[string]string{}))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	s.newsletter.AssertNotCalled(t, "Subscribe", mock.Anything, mock.Anything)
}

func TestNewsletterHandler_Subscribe_Errors(t *testing.T) {
	cases := []struct {
		err    error
		status int
	}{
		{domain.ErrInvalidEmail, http.StatusBadRequest},
		{domain.ErrAlreadySubscribed, http.StatusConflict},
	}
	for _, tc := range cases {
		t.Run(tc.err.Error(), func(t *testing.T) {
			s := newConsoleServer()
			s.newsletter.On("Subscribe", mock.Anything, "x").Return(tc.err)

			rec := s.do(jsonRequest(http.MethodPost, "/console/newsletter", map[string]string{"email": "x"}))

			assert.Equal(t, tc.status, rec.Code)
		})
	}
}
