package upstream

import (
	"encoding/json"
	"strings"
	"time"

	"bands-console/internal/domain"
)

// roleDTO принимает роль в трёх формах: "id", {id,name,weight} или {role: {...}}.
type roleDTO struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	DisplayName string `json:"displayName"`
	Weight      int    `json:"weight"`
	MaxUsers    *int   `json:"maxUsers"`
	UserCount   *int   `json:"userCount"`
	Count       *struct {
		Users int `json:"users"`
	} `json:"_count"`
}

func (r *roleDTO) UnmarshalJSON(data []byte) error {
	var id string
	if err := json.Unmarshal(data, &id); err == nil {
		*r = roleDTO{ID: id}
		return nil
	}

	type plain roleDTO
	var wrapped struct {
		Role *plain `json:"role"`
	}
	if err := json.Unmarshal(data, &wrapped); err == nil && wrapped.Role != nil {
		*r = roleDTO(*wrapped.Role)
		return nil
	}

	var p plain
	if err := json.Unmarshal(data, &p); err != nil {
		return err
	}
	*r = roleDTO(p)
	return nil
}

func (r roleDTO) snapshot() domain.RoleSnapshot {
	count := 0
	switch {
	case r.UserCount != nil:
		count = *r.UserCount
	case r.Count != nil:
		count = r.Count.Users
	}
	display := r.DisplayName
	if display == "" {
		display = r.Name
	}
	return domain.RoleSnapshot{
		ID:          r.ID,
		Name:        r.Name,
		DisplayName: display,
		Weight:      r.Weight,
		MaxUsers:    r.MaxUsers,
		UserCount:   count,
	}
}

type instrumentDTO struct {
	Instrument   string `json:"instrument"`
	Level        string `json:"level"`
	YearsPlaying *int   `json:"yearsPlaying"`
	IsPrimary    bool   `json:"isPrimary"`
}

type badgeDTO struct {
	ID                string  `json:"id"`
	BadgeDefinitionID *string `json:"badgeDefinitionId"`
	Name              string  `json:"name"`
	Description       string  `json:"description"`
	Color             string  `json:"color"`
	Icon              string  `json:"icon"`
	BadgeDefinition   *struct {
		Name        string `json:"name"`
		Description string `json:"description"`
		Color       string `json:"color"`
		Icon        string `json:"icon"`
	} `json:"badgeDefinition"`
}

func (b badgeDTO) toDomain() domain.Badge {
	out := domain.Badge{
		ID:                b.ID,
		BadgeDefinitionID: b.BadgeDefinitionID,
		Name:              b.Name,
		Description:       b.Description,
		Color:             b.Color,
		Icon:              b.Icon,
	}
	if def := b.BadgeDefinition; def != nil {
		if out.Name == "" {
			out.Name = def.Name
		}
		if out.Description == "" {
			out.Description = def.Description
		}
		if out.Color == "" {
			out.Color = def.Color
		}
		if out.Icon == "" {
			out.Icon = def.Icon
		}
	}
	return out
}

// userDTO: пользователь в формате API.
type userDTO struct {
	ID                 string            `json:"id"`
	FirstName          string            `json:"firstName"`
	LastName           string            `json:"lastName"`
	Email              string            `json:"email"`
	Phone              *string           `json:"phone"`
	BirthDate          *string           `json:"birthDate"`
	Promotion          *string           `json:"promotion"`
	Biography          *string           `json:"biography"`
	Pronouns           *string           `json:"pronouns"`
	Status             domain.WireStatus `json:"status"`
	PhotoURL           *string           `json:"photoUrl"`
	EmailNotifications *bool             `json:"emailNotifications"`
	PublicProfile      *bool             `json:"publicProfile"`
	Instagram          *string           `json:"instagram"`
	Facebook           *string           `json:"facebook"`
	Twitter            *string           `json:"twitter"`
	TikTok             *string           `json:"tiktok"`
	YouTube            *string           `json:"youtube"`
	SoundCloud         *string           `json:"soundcloud"`
	Spotify            *string           `json:"spotify"`
	Instruments        []instrumentDTO   `json:"instruments"`
	Roles              []roleDTO         `json:"roles"`
	Badges             []badgeDTO        `json:"badges"`
	CreatedAt          time.Time         `json:"createdAt"`
	UpdatedAt          time.Time         `json:"updatedAt"`
	DeletedAt          *time.Time        `json:"deletedAt"`
}

func deref(v *string) string {
	if v == nil {
		return ""
	}
	return *v
}

func (u userDTO) instruments() domain.InstrumentList {
	list := make(domain.InstrumentList, 0, len(u.Instruments))
	for _, i := range u.Instruments {
		level, err := domain.ParseSkillLevel(i.Level)
		if err != nil {
			level = domain.LevelBeginner
		}
		list = append(list, domain.InstrumentEntry{
			Instrument:   i.Instrument,
			Level:        level,
			YearsPlaying: i.YearsPlaying,
			IsPrimary:    i.IsPrimary,
		})
	}
	return list.Normalize()
}

func (u userDTO) roleRefs() []domain.RoleRef {
	refs := make([]domain.RoleRef, 0, len(u.Roles))
	for _, r := range u.Roles {
		refs = append(refs, domain.RoleRef{ID: r.ID, Name: r.Name, Weight: r.Weight})
	}
	return refs
}

// toDomain переводит ответ API в модель редактора:
// photoUrl → avatar, phone → phoneNumber, дата рождения в YYYY-MM-DD, роль с наибольшим весом.
func (u userDTO) toDomain() *domain.User {
	badges := make(domain.BadgeList, 0, len(u.Badges))
	for _, b := range u.Badges {
		badges = append(badges, b.toDomain())
	}

	prefs := domain.Preferences{EmailNotifications: true}
	if u.EmailNotifications != nil {
		prefs.EmailNotifications = *u.EmailNotifications
	}
	if u.PublicProfile != nil {
		prefs.PublicProfile = *u.PublicProfile
	}

	var avatar *string
	if url := strings.TrimSpace(deref(u.PhotoURL)); url != "" {
		avatar = &url
	}

	return &domain.User{
		ID: u.ID,
		Profile: domain.Profile{
			PersonalInfo: domain.PersonalInfo{
				FirstName:   u.FirstName,
				LastName:    u.LastName,
				Email:       u.Email,
				PhoneNumber: deref(u.Phone),
				BirthDate:   domain.FormatBirthDate(deref(u.BirthDate)),
				Promotion:   deref(u.Promotion),
				Biography:   deref(u.Biography),
				Pronouns:    deref(u.Pronouns),
			},
			Socials: domain.SocialLinks{
				Instagram:  deref(u.Instagram),
				Facebook:   deref(u.Facebook),
				Twitter:    deref(u.Twitter),
				TikTok:     deref(u.TikTok),
				YouTube:    deref(u.YouTube),
				SoundCloud: deref(u.SoundCloud),
				Spotify:    deref(u.Spotify),
			},
			Preferences: prefs,
			Status:      domain.MemberStatus(u.Status),
			Avatar:      avatar,
			Instruments: u.instruments(),
			Roles:       domain.HighestWeightRole(u.roleRefs()),
			Badges:      badges,
		},
		CreatedAt: u.CreatedAt,
		UpdatedAt: u.UpdatedAt,
	}
}

func (u userDTO) toSummary() domain.UserSummary {
	roles := make([]string, 0, len(u.Roles))
	for _, r := range u.Roles {
		name := r.DisplayName
		if name == "" {
			name = r.Name
		}
		if name == "" {
			name = r.ID
		}
		roles = append(roles, name)
	}

	var avatar *string
	if url := strings.TrimSpace(deref(u.PhotoURL)); url != "" {
		avatar = &url
	}

	return domain.UserSummary{
		ID:                u.ID,
		FirstName:         u.FirstName,
		LastName:          u.LastName,
		Email:             u.Email,
		Promotion:         deref(u.Promotion),
		Status:            domain.MemberStatus(u.Status),
		Avatar:            avatar,
		Roles:             roles,
		PrimaryInstrument: u.instruments().Primary(),
		DeletedAt:         u.DeletedAt,
	}
}

type eventDTO struct {
	ID       string     `json:"id"`
	Title    string     `json:"title"`
	Type     string     `json:"type"`
	StartsAt time.Time  `json:"startsAt"`
	Date     *time.Time `json:"date"`
	EndsAt   *time.Time `json:"endsAt"`
	Status   string     `json:"status"`
	VenueID  string     `json:"venueId"`
	Venue    *struct {
		ID   string `json:"id"`
		Name string `json:"name"`
	} `json:"venue"`
}

func (e eventDTO) toDomain() domain.Event {
	out := domain.Event{
		ID:       e.ID,
		Title:    e.Title,
		Type:     e.Type,
		StartsAt: e.StartsAt,
		EndsAt:   e.EndsAt,
		VenueID:  e.VenueID,
		Status:   e.Status,
	}
	if out.StartsAt.IsZero() && e.Date != nil {
		out.StartsAt = *e.Date
	}
	if e.Venue != nil {
		if out.VenueID == "" {
			out.VenueID = e.Venue.ID
		}
		out.VenueName = e.Venue.Name
	}
	return out
}

type postDTO struct {
	ID        string     `json:"id"`
	Title     string     `json:"title"`
	DeletedAt *time.Time `json:"deletedAt"`
	Author    *struct {
		FirstName string `json:"firstName"`
		LastName  string `json:"lastName"`
	} `json:"author"`
}

func (p postDTO) toDomain() domain.ArchivedPost {
	out := domain.ArchivedPost{ID: p.ID, Title: p.Title, DeletedAt: p.DeletedAt}
	if p.Author != nil {
		out.AuthorName = strings.TrimSpace(p.Author.FirstName + " " + p.Author.LastName)
	}
	return out
}
