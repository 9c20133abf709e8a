package handler_test

import (
	"net/http"
	"testing"

	"bands-console/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestListingHandler_ListUsers_BindsFilters(t *testing.T) {
	s := newConsoleServer()
	want := domain.ListFilters{
		MemberStatus: "current",
		Search:       "alice",
		Promotion:    "2026",
		RoleID:       "member",
		Instrument:   "guitar",
		Page:         2,
		Limit:        25,
	}
	result := &domain.UserListResult{
		Sections: []domain.UserSection{},
		Page:     domain.PageInfo{Page: 2, Limit: 25, Total: 30},
		Filters:  want,
	}
	s.listing.On("Users", mock.Anything, want).Return(result, nil)

	rec := s.do(jsonRequest(http.MethodGet,
		"/console/users?memberStatus=current&search=alice&promotion=2026&role=member&instrument=guitar&page=2&limit=25", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	var out domain.UserListResult
	decodeJSON(t, rec, &out)
	assert.Equal(t, 30, out.Page.Total)
	s.assertExpectations(t)
}

func TestListingHandler_ListUsers_NoFilters(t *testing.T) {
	s := newConsoleServer()
	s.listing.On("Users", mock.Anything, domain.ListFilters{}).Return(&domain.UserListResult{}, nil)

	rec := s.do(jsonRequest(http.MethodGet, "/console/users", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	s.assertExpectations(t)
}

func TestListingHandler_ListUsers_BadPage(t *testing.T) {
	s := newConsoleServer()

	rec := s.do(jsonRequest(http.MethodGet, "/console/users?page=two", nil))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "INVALID_REQUEST", decodeError(t, rec).Code)
	s.listing.AssertNotCalled(t, "Users", mock.Anything, mock.Anything)
}

func TestListingHandler_ListUsers_InvalidStatus(t *testing.T) {
	s := newConsoleServer()
	s.listing.On("Users", mock.Anything, domain.ListFilters{MemberStatus: "vip"}).Return(nil, domain.ErrInvalidFilters)

	rec := s.do(jsonRequest(http.MethodGet, "/console/users?memberStatus=vip", nil))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "INVALID_FILTERS", decodeError(t, rec).Code)
}

func TestListingHandler_ListEvents(t *testing.T) {
	s := newConsoleServer()
	buckets := &domain.EventBuckets{
		Today:    []domain.Event{{ID: "e1", Title: "Jam"}},
		Upcoming: []domain.Event{},
		Past:     []domain.Event{},
	}
	s.listing.On("Events", mock.Anything, domain.EventQuery{Search: "jam", VenueID: "v1"}).Return(buckets, nil)

	rec := s.do(jsonRequest(http.MethodGet, "/console/events?search=jam&venueId=v1", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	var out domain.EventBuckets
	decodeJSON(t, rec, &out)
	assert.Len(t, out.Today, 1)
}

func TestListingHandler_ListVenues(t *testing.T) {
	s := newConsoleServer()
	s.listing.On("Venues", mock.Anything, domain.VenueFilters{City: "Paris", ActiveOnly: true}).
		Return([]domain.Venue{{ID: "v1", Name: "Le Local", City: "Paris", IsActive: true}}, nil)

	rec := s.do(jsonRequest(http.MethodGet, "/console/venues?city=Paris&activeOnly=true", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	var out struct {
		Venues []domain.Venue `json:"venues"`
	}
	decodeJSON(t, rec, &out)
	assert.Len(t, out.Venues, 1)
}

func TestListingHandler_ListVenues_BadBool(t *testing.T) {
	s := newConsoleServer()

	rec := s.do(jsonRequest(http.MethodGet, "/console/venues?activeOnly=maybe", nil))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestListingHandler_ArchivedUsers(t *testing.T) {
	s := newConsoleServer()
	s.listing.On("ArchivedUsers", mock.Anything, 1, 10).Return(&domain.ArchivedUsersResult{
		Users: []domain.UserSummary{{ID: "u9", Status: domain.StatusDeleted}},
		Page:  domain.PageInfo{Page: 1, Limit: 10, Total: 1},
	}, nil)

	rec := s.do(jsonRequest(http.MethodGet, "/console/archive/users?page=1&limit=10", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	s.assertExpectations(t)
}

func TestListingHandler_RestoreArchivedUser(t *testing.T) {
	s := newConsoleServer()
	s.listing.On("RestoreUser", mock.Anything, "u9", 0, 0).Return(&domain.ArchivedUsersResult{
		Users: []domain.UserSummary{},
	}, nil)

	rec := s.do(jsonRequest(http.MethodPost, "/console/archive/users/u9/restore", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	s.assertExpectations(t)
}

func TestListingHandler_ArchivedPosts(t *testing.T) {
	s := newConsoleServer()
	s.listing.On("ArchivedPosts", mock.Anything, 0, 0).Return(&domain.ArchivedPostsResult{
		Posts: []domain.ArchivedPost{{ID: "p1", Title: "Old news"}},
	}, nil)

	rec := s.do(jsonRequest(http.MethodGet, "/console/archive/posts", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	var out domain.ArchivedPostsResult
	decodeJSON(t, rec, &out)
	assert.Len(t, out.Posts, 1)
}

func TestListingHandler_RestoreArchivedPost(t *testing.T) {
	s := newConsoleServer()
	s.listing.On("RestorePost", mock.Anything, "p1", 2, 0).Return(&domain.ArchivedPostsResult{}, nil)

	rec := s.do(jsonRequest(http.MethodPost, "/console/archive/posts/p1/restore?page=2", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	s.assertExpectations(t)
}

func TestListingHandler_DeleteArchivedPost_Upstream404(t *testing.T) {
	s := newConsoleServer()
	s.listing.On("DeletePost", mock.Anything, "p404", 0, 0).
		Return(nil, &domain.UpstreamError{Status: http.StatusNotFound, Message: "Post not found"})

	rec := s.do(jsonRequest(http.MethodDelete, "/console/archive/posts/p404", nil))

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "Post not found", decodeError(t, rec).Message)
}
