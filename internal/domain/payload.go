package domain

import (
	"fmt"
	"strings"
	"time"

	openapi_types "github.com/oapi-codegen/runtime/types"
)

// InstrumentPayload: инструмент в формате upstream API.
type InstrumentPayload struct {
	Instrument   string `json:"instrument"`
	Level        string `json:"level"`
	YearsPlaying *int   `json:"yearsPlaying,omitempty"`
	IsPrimary    bool   `json:"isPrimary"`
}

// BadgePayload: бейдж в формате upstream API. Временные ID не отправляются.
type BadgePayload struct {
	ID                string  `json:"id,omitempty"`
	BadgeDefinitionID *string `json:"badgeDefinitionId,omitempty"`
	Name              string  `json:"name,omitempty"`
	Description       string  `json:"description,omitempty"`
	Color             string  `json:"color,omitempty"`
	Icon              string  `json:"icon,omitempty"`
}

// SocialPayload: соцсети; пустые значения не отправляются.
type SocialPayload struct {
	Instagram  *string `json:"instagram,omitempty"`
	Facebook   *string `json:"facebook,omitempty"`
	Twitter    *string `json:"twitter,omitempty"`
	TikTok     *string `json:"tiktok,omitempty"`
	YouTube    *string `json:"youtube,omitempty"`
	SoundCloud *string `json:"soundcloud,omitempty"`
	Spotify    *string `json:"spotify,omitempty"`
}

// CreateUserPayload: тело POST /api/admin/users.
// photoUrl отправляется всегда: null, если фото нет.
type CreateUserPayload struct {
	FirstName          string              `json:"firstName"`
	LastName           string              `json:"lastName"`
	Email              string              `json:"email"`
	Phone              *string             `json:"phone,omitempty"`
	BirthDate          *openapi_types.Date `json:"birthDate,omitempty"`
	Promotion          string              `json:"promotion"`
	Biography          *string             `json:"biography,omitempty"`
	Pronouns           *string             `json:"pronouns,omitempty"`
	Status             WireStatus          `json:"status"`
	Password           string              `json:"password"`
	PhotoURL           *string             `json:"photoUrl"`
	EmailNotifications bool                `json:"emailNotifications"`
	PublicProfile      bool                `json:"publicProfile"`
	SocialPayload
	Instruments []InstrumentPayload `json:"instruments"`
	Roles       []string            `json:"roles"`
	Badges      []BadgePayload      `json:"badges"`
}

// UpdateUserPayload: тело PUT /api/admin/users/:id.
// photoUrl и необязательные текстовые поля отправляются всегда: null очищает значение.
type UpdateUserPayload struct {
	FirstName          string              `json:"firstName"`
	LastName           string              `json:"lastName"`
	Email              string              `json:"email"`
	Phone              *string             `json:"phone"`
	BirthDate          *openapi_types.Date `json:"birthDate,omitempty"`
	Promotion          *string             `json:"promotion"`
	Biography          *string             `json:"biography"`
	Pronouns           *string             `json:"pronouns"`
	Status             WireStatus          `json:"status"`
	PhotoURL           *string             `json:"photoUrl"`
	EmailNotifications bool                `json:"emailNotifications"`
	PublicProfile      bool                `json:"publicProfile"`
	SocialPayload
	Instruments []InstrumentPayload `json:"instruments"`
	Roles       []string            `json:"roles"`
	Badges      []BadgePayload      `json:"badges"`
}

// BuildCreatePayload собирает тело создания пользователя из данных мастера.
func BuildCreatePayload(form UserFormData, photoURL *string) (CreateUserPayload, error) {
	birth, err := ParseBirthDate(form.BirthDate)
	if err != nil {
		return CreateUserPayload{}, err
	}
	status := form.Status
	if status == StatusUnknown {
		status = StatusCurrent
	}
	return CreateUserPayload{
		FirstName:          strings.TrimSpace(form.FirstName),
		LastName:           strings.TrimSpace(form.LastName),
		Email:              NormalizeEmail(form.Email),
		Phone:              optional(CleanPhone(form.PhoneNumber)),
		BirthDate:          birth,
		Promotion:          strings.TrimSpace(form.Promotion),
		Biography:          optional(form.Biography),
		Pronouns:           optional(form.Pronouns),
		Status:             WireStatus(status),
		Password:           form.TemporaryPassword,
		PhotoURL:           normalizePhoto(photoURL),
		EmailNotifications: form.Preferences.EmailNotifications,
		PublicProfile:      form.Preferences.PublicProfile,
		SocialPayload:      socialPayload(form.Socials),
		Instruments:        instrumentPayloads(form.Instruments),
		Roles:              rolePayload(form.Roles),
		Badges:             badgePayloads(form.Badges),
	}, nil
}

// BuildUpdatePayload собирает тело сохранения пользователя.
func BuildUpdatePayload(p Profile) (UpdateUserPayload, error) {
	birth, err := ParseBirthDate(p.BirthDate)
	if err != nil {
		return UpdateUserPayload{}, err
	}
	return UpdateUserPayload{
		FirstName:          strings.TrimSpace(p.FirstName),
		LastName:           strings.TrimSpace(p.LastName),
		Email:              NormalizeEmail(p.Email),
		Phone:              optional(CleanPhone(p.PhoneNumber)),
		BirthDate:          birth,
		Promotion:          optional(p.Promotion),
		Biography:          optional(p.Biography),
		Pronouns:           optional(p.Pronouns),
		Status:             WireStatus(p.Status),
		PhotoURL:           normalizePhoto(p.Avatar),
		EmailNotifications: p.Preferences.EmailNotifications,
		PublicProfile:      p.Preferences.PublicProfile,
		SocialPayload:      socialPayload(p.Socials),
		Instruments:        instrumentPayloads(p.Instruments),
		Roles:              rolePayload(p.Roles),
		Badges:             badgePayloads(p.Badges),
	}, nil
}

// ParseBirthDate принимает YYYY-MM-DD или RFC3339; пустая строка даёт nil.
func ParseBirthDate(v string) (*openapi_types.Date, error) {
	v = strings.TrimSpace(v)
	if v == "" {
		return nil, nil
	}
	t, err := time.Parse(openapi_types.DateFormat, v)
	if err != nil {
		t, err = time.Parse(time.RFC3339, v)
		if err != nil {
			return nil, fmt.Errorf("%w: %q", ErrInvalidBirthDate, v)
		}
	}
	return &openapi_types.Date{Time: t}, nil
}

// FormatBirthDate приводит дату из API к виду для <input type=date>.
func FormatBirthDate(v string) string {
	d, err := ParseBirthDate(v)
	if err != nil || d == nil {
		return ""
	}
	return d.Format(openapi_types.DateFormat)
}

// CleanPhone убирает разделители; префикс 00 заменяется на +.
func CleanPhone(v string) string {
	cleaned := strings.Map(func(r rune) rune {
		switch r {
		case ' ', '.', '-', '(', ')', '\t':
			return -1
		}
		return r
	}, v)
	if strings.HasPrefix(cleaned, "00") {
		cleaned = "+" + cleaned[2:]
	}
	return cleaned
}

// NormalizeEmail обрезает пробелы и приводит email к нижнему регистру.
func NormalizeEmail(v string) string {
	return strings.ToLower(strings.TrimSpace(v))
}

func optional(v string) *string {
	v = strings.TrimSpace(v)
	if v == "" {
		return nil
	}
	return &v
}

func normalizePhoto(url *string) *string {
	if url == nil {
		return nil
	}
	return optional(*url)
}

func socialPayload(s SocialLinks) SocialPayload {
	return SocialPayload{
		Instagram:  optional(s.Instagram),
		Facebook:   optional(s.Facebook),
		Twitter:    optional(s.Twitter),
		TikTok:     optional(s.TikTok),
		YouTube:    optional(s.YouTube),
		SoundCloud: optional(s.SoundCloud),
		Spotify:    optional(s.Spotify),
	}
}

func instrumentPayloads(list InstrumentList) []InstrumentPayload {
	out := make([]InstrumentPayload, 0, len(list))
	for _, e := range list.Normalize() {
		out = append(out, InstrumentPayload{
			Instrument:   e.Instrument,
			Level:        e.Level.Wire(),
			YearsPlaying: e.YearsPlaying,
			IsPrimary:    e.IsPrimary,
		})
	}
	return out
}

func rolePayload(roles RoleSelection) []string {
	if id := roles.Selected(); id != "" {
		return []string{id}
	}
	return []string{}
}

func badgePayloads(list BadgeList) []BadgePayload {
	out := make([]BadgePayload, 0, len(list))
	for _, b := range list {
		p := BadgePayload{BadgeDefinitionID: b.BadgeDefinitionID}
		if b.IsPersisted() {
			p.ID = b.ID
		}
		if b.BadgeDefinitionID == nil {
			p.Name = b.Name
			p.Description = b.Description
			p.Color = b.Color
			p.Icon = b.Icon
		}
		out = append(out, p)
	}
	return out
}
