package domain

import (
	"context"
	"time"
)

// PersonalInfo: личные данные (шаг 1 мастера, вкладка Main).
type PersonalInfo struct {
	FirstName   string `json:"firstName"`
	LastName    string `json:"lastName"`
	Email       string `json:"email"`
	PhoneNumber string `json:"phoneNumber,omitempty"`
	BirthDate   string `json:"birthDate"`
	Promotion   string `json:"promotion"`
	Biography   string `json:"biography,omitempty"`
	Pronouns    string `json:"pronouns,omitempty"`
}

// SocialLinks: ссылки на соцсети и музыкальные платформы.
type SocialLinks struct {
	Instagram  string `json:"instagram,omitempty"`
	Facebook   string `json:"facebook,omitempty"`
	Twitter    string `json:"twitter,omitempty"`
	TikTok     string `json:"tiktok,omitempty"`
	YouTube    string `json:"youtube,omitempty"`
	SoundCloud string `json:"soundcloud,omitempty"`
	Spotify    string `json:"spotify,omitempty"`
}

// Preferences: настройки профиля.
type Preferences struct {
	EmailNotifications bool `json:"emailNotifications"`
	PublicProfile      bool `json:"publicProfile"`
}

// Profile: общий агрегат формы создания и редактирования.
// Изменяется только через Reduce.
type Profile struct {
	PersonalInfo
	Socials     SocialLinks    `json:"socials"`
	Preferences Preferences    `json:"preferences"`
	Status      MemberStatus   `json:"status"`
	Avatar      *string        `json:"avatar"`
	Instruments InstrumentList `json:"instruments"`
	Roles       RoleSelection  `json:"roles"`
	Badges      BadgeList      `json:"badges"`
}

func (p Profile) clone() Profile {
	out := p
	if p.Avatar != nil {
		a := *p.Avatar
		out.Avatar = &a
	}
	out.Instruments = p.Instruments.clone()
	out.Badges = p.Badges.clone()
	if p.Roles != nil {
		out.Roles = append(RoleSelection{}, p.Roles...)
	}
	return out
}

// User представляет пользователя в редакторе.
type User struct {
	ID string `json:"id"`
	Profile
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// UserFormData: данные мастера создания пользователя.
type UserFormData struct {
	Profile
	TemporaryPassword string `json:"temporaryPassword"`
}

// UserSummary: строка в списках пользователей.
type UserSummary struct {
	ID                string       `json:"id"`
	FirstName         string       `json:"firstName"`
	LastName          string       `json:"lastName"`
	Email             string       `json:"email"`
	Promotion         string       `json:"promotion,omitempty"`
	Status            MemberStatus `json:"status"`
	Avatar            *string      `json:"avatar"`
	Roles             []string     `json:"roles"`
	PrimaryInstrument string       `json:"primaryInstrument,omitempty"`
	DeletedAt         *time.Time   `json:"deletedAt,omitempty"`
}

// UserPage: страница пользователей от upstream API.
type UserPage struct {
	Users []UserSummary
	Total int
}

// PhotoFile: фото, ожидающее загрузки в хранилище.
type PhotoFile struct {
	FileName    string `json:"fileName"`
	ContentType string `json:"contentType"`
	Data        []byte `json:"data"`
}

// SessionInfo: текущий пользователь консоли.
type SessionInfo struct {
	UserID string `json:"userId"`
	Email  string `json:"email"`
	Name   string `json:"name"`
}

// Catalog: справочники, с которыми работает редьюсер.
type Catalog struct {
	Roles  []RoleSnapshot    `json:"roles"`
	Badges []BadgeDefinition `json:"badges"`
}

// UserQuery: параметры запроса списка пользователей к upstream API.
type UserQuery struct {
	Status     MemberStatus
	Search     string
	Promotion  string
	RoleID     string
	Instrument string
	Page       int
	Limit      int
}

// AdminAPI определяет контракт клиента ISEP Bands API.
type AdminAPI interface {
	CurrentSession(ctx context.Context) (*SessionInfo, error)

	ListUsers(ctx context.Context, q UserQuery) (*UserPage, error)
	GetUser(ctx context.Context, userID string) (*User, error)
	CreateUser(ctx context.Context, payload CreateUserPayload) (*User, error)
	UpdateUser(ctx context.Context, userID string, payload UpdateUserPayload) (*User, error)
	DeleteUser(ctx context.Context, userID string) error
	ArchiveUser(ctx context.Context, userID string) error
	RestoreUser(ctx context.Context, userID string) error
	ResetPassword(ctx context.Context, userID string) error

	UserGroups(ctx context.Context, userID string) ([]Group, error)
	UserEvents(ctx context.Context, userID string) ([]UserEvent, error)
	UserActivity(ctx context.Context, userID string) ([]ActivityEntry, error)

	ListRoles(ctx context.Context) ([]RoleSnapshot, error)
	ListInstruments(ctx context.Context) ([]InstrumentDefinition, error)
	ListBadges(ctx context.Context) ([]BadgeDefinition, error)

	ListEvents(ctx context.Context, q EventQuery) ([]Event, error)
	ListVenues(ctx context.Context) ([]Venue, error)

	ArchivedUsers(ctx context.Context, page, limit int) (*UserPage, error)
	ArchivedPosts(ctx context.Context, page, limit int) (*PostPage, error)
	RestorePost(ctx context.Context, postID string) error
	DeletePost(ctx context.Context, postID string) error

	UploadPhoto(ctx context.Context, file PhotoFile) (string, error)
	SubscribeNewsletter(ctx context.Context, email string) error
}
