package domain

import (
	"fmt"
	"sort"
	"strings"
	"time"
)

// DefaultLimit: размер страницы по умолчанию.
const DefaultLimit = 20

// LimitOptions: допустимые размеры страницы.
var LimitOptions = []int{10, 20, 50, 100}

// StatusFilterAll: значение фильтра, показывающее все секции, кроме архивной.
const StatusFilterAll = "all"

// ListFilters: фильтры списков консоли.
type ListFilters struct {
	MemberStatus string `json:"memberStatus,omitempty"`
	Search       string `json:"search,omitempty"`
	Promotion    string `json:"promotion,omitempty"`
	RoleID       string `json:"roleId,omitempty"`
	Instrument   string `json:"instrument,omitempty"`
	Page         int    `json:"page"`
	Limit        int    `json:"limit"`
}

// Normalize применяет значения по умолчанию и проверяет фильтр статуса.
func (f ListFilters) Normalize() (ListFilters, error) {
	f.MemberStatus = strings.ToLower(strings.TrimSpace(f.MemberStatus))
	f.Search = strings.TrimSpace(f.Search)
	if f.MemberStatus != "" && f.MemberStatus != StatusFilterAll {
		if _, err := ParseUIStatus(f.MemberStatus); err != nil {
			return f, fmt.Errorf("%w: %v", ErrInvalidFilters, err)
		}
	}
	if f.Page < 1 {
		f.Page = 1
	}
	if !isLimitOption(f.Limit) {
		f.Limit = DefaultLimit
	}
	return f, nil
}

// StatusFilter возвращает конкретный статус фильтра или StatusUnknown.
func (f ListFilters) StatusFilter() MemberStatus {
	s, err := ParseUIStatus(f.MemberStatus)
	if err != nil {
		return StatusUnknown
	}
	return s
}

func isLimitOption(v int) bool {
	for _, o := range LimitOptions {
		if o == v {
			return true
		}
	}
	return false
}

// PageInfo: метаданные пагинации.
type PageInfo struct {
	Page       int `json:"page"`
	Limit      int `json:"limit"`
	Total      int `json:"total"`
	TotalPages int `json:"totalPages"`
}

// Paginate считает число страниц.
func Paginate(total, page, limit int) PageInfo {
	if limit <= 0 {
		limit = DefaultLimit
	}
	if page < 1 {
		page = 1
	}
	pages := (total + limit - 1) / limit
	return PageInfo{Page: page, Limit: limit, Total: total, TotalPages: pages}
}

// UserSection: сворачиваемая секция списка пользователей.
type UserSection struct {
	Key   string        `json:"key"`
	Title string        `json:"title"`
	Users []UserSummary `json:"users"`
}

var sectionTitles = map[MemberStatus]string{
	StatusPending:   "Pending Members",
	StatusCurrent:   "Current Members",
	StatusFormer:    "Former Members",
	StatusRefused:   "Refused Members",
	StatusSuspended: "Suspended Members",
	StatusDeleted:   "Deleted/Archived Members",
}

// BucketUsers раскладывает пользователей по секциям статусов.
// Конкретный фильтр оставляет только свою секцию; без фильтра архивная секция не показывается.
// Пустые секции отбрасываются.
func BucketUsers(users []UserSummary, memberStatus string) []UserSection {
	only, _ := ParseUIStatus(strings.ToLower(strings.TrimSpace(memberStatus)))

	buckets := make(map[MemberStatus][]UserSummary)
	for _, u := range users {
		buckets[u.Status] = append(buckets[u.Status], u)
	}

	var sections []UserSection
	for _, s := range AllStatuses() {
		if only != StatusUnknown && s != only {
			continue
		}
		if only == StatusUnknown && s == StatusDeleted {
			continue
		}
		if len(buckets[s]) == 0 {
			continue
		}
		sections = append(sections, UserSection{Key: s.UI(), Title: sectionTitles[s], Users: buckets[s]})
	}
	return sections
}

// EventBuckets: события, разделённые относительно текущей даты.
type EventBuckets struct {
	Today    []Event `json:"today"`
	Upcoming []Event `json:"upcoming"`
	Past     []Event `json:"past"`
}

// BucketEvents делит события на сегодня / будущие / прошедшие по календарной дате в loc.
func BucketEvents(events []Event, now time.Time, loc *time.Location) EventBuckets {
	if loc == nil {
		loc = time.UTC
	}
	today := dateOf(now.In(loc))

	out := EventBuckets{Today: []Event{}, Upcoming: []Event{}, Past: []Event{}}
	for _, e := range events {
		d := dateOf(e.StartsAt.In(loc))
		switch {
		case d.Equal(today):
			out.Today = append(out.Today, e)
		case d.After(today):
			out.Upcoming = append(out.Upcoming, e)
		default:
			out.Past = append(out.Past, e)
		}
	}

	sort.SliceStable(out.Today, func(i, j int) bool { return out.Today[i].StartsAt.Before(out.Today[j].StartsAt) })
	sort.SliceStable(out.Upcoming, func(i, j int) bool { return out.Upcoming[i].StartsAt.Before(out.Upcoming[j].StartsAt) })
	sort.SliceStable(out.Past, func(i, j int) bool { return out.Past[i].StartsAt.After(out.Past[j].StartsAt) })
	return out
}

func dateOf(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// VenueFilters: фильтры списка площадок.
type VenueFilters struct {
	Search     string
	City       string
	ActiveOnly bool
}

// FilterVenues фильтрует площадки по названию/адресу, городу и активности.
func FilterVenues(venues []Venue, f VenueFilters) []Venue {
	search := strings.ToLower(strings.TrimSpace(f.Search))
	city := strings.ToLower(strings.TrimSpace(f.City))

	out := make([]Venue, 0, len(venues))
	for _, v := range venues {
		if f.ActiveOnly && !v.IsActive {
			continue
		}
		if city != "" && strings.ToLower(v.City) != city {
			continue
		}
		if search != "" &&
			!strings.Contains(strings.ToLower(v.Name), search) &&
			!strings.Contains(strings.ToLower(v.Address), search) {
			continue
		}
		out = append(out, v)
	}
	sort.SliceStable(out, func(i, j int) bool { return strings.ToLower(out[i].Name) < strings.ToLower(out[j].Name) })
	return out
}
