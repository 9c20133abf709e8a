package domain

import "time"

// InstrumentDefinition: инструмент из справочника.
type InstrumentDefinition struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Category string `json:"category,omitempty"`
}

// Event: событие ассоциации (концерт, джем, репетиция).
type Event struct {
	ID        string     `json:"id"`
	Title     string     `json:"title"`
	Type      string     `json:"type,omitempty"`
	StartsAt  time.Time  `json:"startsAt"`
	EndsAt    *time.Time `json:"endsAt,omitempty"`
	VenueID   string     `json:"venueId,omitempty"`
	VenueName string     `json:"venueName,omitempty"`
	Status    string     `json:"status,omitempty"`
}

// EventQuery: фильтры списка событий.
type EventQuery struct {
	Search  string
	Type    string
	VenueID string
}

// Venue: площадка.
type Venue struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Address  string `json:"address,omitempty"`
	City     string `json:"city,omitempty"`
	Capacity *int   `json:"capacity,omitempty"`
	IsActive bool   `json:"isActive"`
}

// Group: группа (band), в которой состоит пользователь.
type Group struct {
	ID       string     `json:"id"`
	Name     string     `json:"name"`
	Role     string     `json:"role,omitempty"`
	IsLeader bool       `json:"isLeader"`
	JoinedAt *time.Time `json:"joinedAt,omitempty"`
}

// UserEvent: участие пользователя в событии.
type UserEvent struct {
	ID       string    `json:"id"`
	Title    string    `json:"title"`
	StartsAt time.Time `json:"startsAt"`
	Role     string    `json:"role,omitempty"`
}

// ActivityEntry: запись журнала действий пользователя.
type ActivityEntry struct {
	ID          string    `json:"id"`
	Action      string    `json:"action"`
	Description string    `json:"description,omitempty"`
	CreatedAt   time.Time `json:"createdAt"`
}

// ArchivedPost: публикация в архиве.
type ArchivedPost struct {
	ID         string     `json:"id"`
	Title      string     `json:"title"`
	AuthorName string     `json:"authorName,omitempty"`
	DeletedAt  *time.Time `json:"deletedAt,omitempty"`
}

// PostPage: страница архивных публикаций.
type PostPage struct {
	Posts []ArchivedPost
	Total int
}
