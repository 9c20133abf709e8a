package domain_test

import (
	"testing"
	"time"

	"bands-console/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func summaries() []domain.UserSummary {
	return []domain.UserSummary{
		{ID: "1", Status: domain.StatusCurrent},
		{ID: "2", Status: domain.StatusPending},
		{ID: "3", Status: domain.StatusDeleted},
		{ID: "4", Status: domain.StatusCurrent},
	}
}

func sectionKeys(sections []domain.UserSection) []string {
	keys := make([]string, 0, len(sections))
	for _, s := range sections {
		keys = append(keys, s.Key)
	}
	return keys
}

func TestBucketUsers_DefaultHidesDeleted(t *testing.T) {
	for _, filter := range []string{"", "all"} {
		sections := domain.BucketUsers(summaries(), filter)
		assert.Equal(t, []string{"pending", "current"}, sectionKeys(sections))
		assert.Len(t, sections[1].Users, 2)
	}
}

func TestBucketUsers_ConcreteFilter(t *testing.T) {
	sections := domain.BucketUsers(summaries(), "deleted")

	require.Len(t, sections, 1)
	assert.Equal(t, "Deleted/Archived Members", sections[0].Title)

	assert.Empty(t, domain.BucketUsers(summaries(), "suspended"))
}

func TestListFilters_Normalize(t *testing.T) {
	f, err := domain.ListFilters{MemberStatus: " Current ", Limit: 33}.Normalize()
	require.NoError(t, err)
	assert.Equal(t, "current", f.MemberStatus)
	assert.Equal(t, 1, f.Page)
	assert.Equal(t, domain.DefaultLimit, f.Limit)
	assert.Equal(t, domain.StatusCurrent, f.StatusFilter())

	_, err = domain.ListFilters{MemberStatus: "archived"}.Normalize()
	assert.ErrorIs(t, err, domain.ErrInvalidFilters)
}

func TestPaginate(t *testing.T) {
	assert.Equal(t, domain.PageInfo{Page: 2, Limit: 20, Total: 41, TotalPages: 3}, domain.Paginate(41, 2, 20))
	assert.Equal(t, 0, domain.Paginate(0, 1, 10).TotalPages)
}

func TestBucketEvents(t *testing.T) {
	paris, err := time.LoadLocation("Europe/Paris")
	require.NoError(t, err)
	now := time.Date(2025, 6, 15, 10, 0, 0, 0, paris)

	events := []domain.Event{
		{ID: "late-tonight", StartsAt: time.Date(2025, 6, 15, 23, 30, 0, 0, paris)},
		{ID: "next-month", StartsAt: time.Date(2025, 7, 1, 20, 0, 0, 0, paris)},
		{ID: "tomorrow", StartsAt: time.Date(2025, 6, 16, 20, 0, 0, 0, paris)},
		{ID: "last-year", StartsAt: time.Date(2024, 6, 1, 20, 0, 0, 0, paris)},
		{ID: "yesterday", StartsAt: time.Date(2025, 6, 14, 20, 0, 0, 0, paris)},
	}

	b := domain.BucketEvents(events, now, paris)

	require.Len(t, b.Today, 1)
	assert.Equal(t, "late-tonight", b.Today[0].ID)
	require.Len(t, b.Upcoming, 2)
	assert.Equal(t, "tomorrow", b.Upcoming[0].ID)
	require.Len(t, b.Past, 2)
	assert.Equal(t, "yesterday", b.Past[0].ID)
}

func TestFilterVenues(t *testing.T) {
	venues := []domain.Venue{
		{ID: "1", Name: "Zenith", City: "Paris", IsActive: true},
		{ID: "2", Name: "Bataclan", City: "Paris", Address: "50 bd Voltaire", IsActive: false},
		{ID: "3", Name: "Transbordeur", City: "Lyon", IsActive: true},
	}

	out := domain.FilterVenues(venues, domain.VenueFilters{City: "paris"})
	require.Len(t, out, 2)
	assert.Equal(t, "Bataclan", out[0].Name)

	out = domain.FilterVenues(venues, domain.VenueFilters{ActiveOnly: true, Search: "trans"})
	require.Len(t, out, 1)
	assert.Equal(t, "3", out[0].ID)

	out = domain.FilterVenues(venues, domain.VenueFilters{Search: "voltaire"})
	require.Len(t, out, 1)
}
