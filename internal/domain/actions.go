package domain

import (
	"encoding/json"
	"fmt"
	"strings"
)

// ActionType: имя действия над профилем.
type ActionType string

const (
	ActionSetPersonalField        ActionType = "SetPersonalField"
	ActionSetStatus               ActionType = "SetStatus"
	ActionSetPreference           ActionType = "SetPreference"
	ActionAddInstrument           ActionType = "AddInstrument"
	ActionRemoveInstrument        ActionType = "RemoveInstrument"
	ActionSetInstrumentLevel      ActionType = "SetInstrumentLevel"
	ActionSetInstrumentYears      ActionType = "SetInstrumentYears"
	ActionTogglePrimaryInstrument ActionType = "TogglePrimaryInstrument"
	ActionSelectRole              ActionType = "SelectRole"
	ActionClearRole               ActionType = "ClearRole"
	ActionAddBadge                ActionType = "AddBadge"
	ActionAddCustomBadge          ActionType = "AddCustomBadge"
	ActionRemoveBadge             ActionType = "RemoveBadge"
	ActionSetPhoto                ActionType = "SetPhoto"
	ActionClearPhoto              ActionType = "ClearPhoto"
)

// ReduceContext: данные, нужные редьюсеру помимо самого профиля.
type ReduceContext struct {
	Catalog       Catalog
	OriginalRoles RoleSelection
	NewID         func() string
}

// Action: именованное изменение профиля.
type Action interface {
	Type() ActionType
	apply(p *Profile, rc ReduceContext) error
}

// Reduce: единственная точка изменения профиля.
// Действие применяется к копии; при ошибке профиль не меняется.
func Reduce(p *Profile, a Action, rc ReduceContext) error {
	if a == nil {
		return ErrUnknownAction
	}
	next := p.clone()
	if err := a.apply(&next, rc); err != nil {
		return err
	}
	next.Instruments = next.Instruments.Normalize()
	if len(next.Roles) > 1 {
		next.Roles = RoleSelection{next.Roles[0]}
	}
	*p = next
	return nil
}

// SetPersonalField меняет текстовое поле профиля (личные данные или ссылку на соцсеть).
type SetPersonalField struct {
	Field string `json:"field"`
	Value string `json:"value"`
}

// Type возвращает ActionSetPersonalField.
func (SetPersonalField) Type() ActionType { return ActionSetPersonalField }

func (a SetPersonalField) apply(p *Profile, _ ReduceContext) error {
	target := personalField(p, a.Field)
	if target == nil {
		return fmt.Errorf("%w: %q", ErrUnknownField, a.Field)
	}
	*target = a.Value
	return nil
}

func personalField(p *Profile, field string) *string {
	switch field {
	case "firstName":
		return &p.FirstName
	case "lastName":
		return &p.LastName
	case "email":
		return &p.Email
	case "phoneNumber":
		return &p.PhoneNumber
	case "birthDate":
		return &p.BirthDate
	case "promotion":
		return &p.Promotion
	case "biography":
		return &p.Biography
	case "pronouns":
		return &p.Pronouns
	case "instagram":
		return &p.Socials.Instagram
	case "facebook":
		return &p.Socials.Facebook
	case "twitter":
		return &p.Socials.Twitter
	case "tiktok":
		return &p.Socials.TikTok
	case "youtube":
		return &p.Socials.YouTube
	case "soundcloud":
		return &p.Socials.SoundCloud
	case "spotify":
		return &p.Socials.Spotify
	}
	return nil
}

// SetStatus меняет статус участника.
type SetStatus struct {
	Status MemberStatus `json:"status"`
}

// Type возвращает ActionSetStatus.
func (SetStatus) Type() ActionType { return ActionSetStatus }

func (a SetStatus) apply(p *Profile, _ ReduceContext) error {
	if a.Status == StatusUnknown {
		return ErrInvalidStatus
	}
	p.Status = a.Status
	return nil
}

// SetPreference меняет настройку профиля.
type SetPreference struct {
	Name  string `json:"name"`
	Value bool   `json:"value"`
}

// Type возвращает ActionSetPreference.
func (SetPreference) Type() ActionType { return ActionSetPreference }

func (a SetPreference) apply(p *Profile, _ ReduceContext) error {
	switch a.Name {
	case "emailNotifications":
		p.Preferences.EmailNotifications = a.Value
	case "publicProfile":
		p.Preferences.PublicProfile = a.Value
	default:
		return fmt.Errorf("%w: %q", ErrUnknownField, a.Name)
	}
	return nil
}

// AddInstrument добавляет инструмент.
type AddInstrument struct {
	Instrument   string     `json:"instrument"`
	Level        SkillLevel `json:"level"`
	YearsPlaying *int       `json:"yearsPlaying,omitempty"`
	IsPrimary    bool       `json:"isPrimary"`
}

// Type возвращает ActionAddInstrument.
func (AddInstrument) Type() ActionType { return ActionAddInstrument }

func (a AddInstrument) apply(p *Profile, _ ReduceContext) error {
	list, err := p.Instruments.Add(InstrumentEntry{
		Instrument:   a.Instrument,
		Level:        a.Level,
		YearsPlaying: a.YearsPlaying,
		IsPrimary:    a.IsPrimary,
	})
	if err != nil {
		return err
	}
	p.Instruments = list
	return nil
}

// RemoveInstrument удаляет инструмент.
type RemoveInstrument struct {
	Instrument string `json:"instrument"`
}

// Type возвращает ActionRemoveInstrument.
func (RemoveInstrument) Type() ActionType { return ActionRemoveInstrument }

func (a RemoveInstrument) apply(p *Profile, _ ReduceContext) error {
	list, err := p.Instruments.Remove(a.Instrument)
	if err != nil {
		return err
	}
	p.Instruments = list
	return nil
}

// SetInstrumentLevel меняет уровень владения инструментом.
type SetInstrumentLevel struct {
	Instrument string     `json:"instrument"`
	Level      SkillLevel `json:"level"`
}

// Type возвращает ActionSetInstrumentLevel.
func (SetInstrumentLevel) Type() ActionType { return ActionSetInstrumentLevel }

func (a SetInstrumentLevel) apply(p *Profile, _ ReduceContext) error {
	list, err := p.Instruments.SetLevel(a.Instrument, a.Level)
	if err != nil {
		return err
	}
	p.Instruments = list
	return nil
}

// SetInstrumentYears меняет стаж игры на инструменте.
type SetInstrumentYears struct {
	Instrument   string `json:"instrument"`
	YearsPlaying *int   `json:"yearsPlaying"`
}

// Type возвращает ActionSetInstrumentYears.
func (SetInstrumentYears) Type() ActionType { return ActionSetInstrumentYears }

func (a SetInstrumentYears) apply(p *Profile, _ ReduceContext) error {
	list, err := p.Instruments.SetYears(a.Instrument, a.YearsPlaying)
	if err != nil {
		return err
	}
	p.Instruments = list
	return nil
}

// TogglePrimaryInstrument переключает основной инструмент.
type TogglePrimaryInstrument struct {
	Instrument string `json:"instrument"`
}

// Type возвращает ActionTogglePrimaryInstrument.
func (TogglePrimaryInstrument) Type() ActionType { return ActionTogglePrimaryInstrument }

func (a TogglePrimaryInstrument) apply(p *Profile, _ ReduceContext) error {
	list, err := p.Instruments.TogglePrimary(a.Instrument)
	if err != nil {
		return err
	}
	p.Instruments = list
	return nil
}

// SelectRole выбирает роль с учётом её вместимости.
type SelectRole struct {
	RoleID string `json:"roleId"`
}

// Type возвращает ActionSelectRole.
func (SelectRole) Type() ActionType { return ActionSelectRole }

func (a SelectRole) apply(p *Profile, rc ReduceContext) error {
	roles, err := SelectRoleIn(p.Roles, rc.OriginalRoles, rc.Catalog.Roles, a.RoleID)
	if err != nil {
		return err
	}
	p.Roles = roles
	return nil
}

// ClearRole снимает выбранную роль.
type ClearRole struct{}

// Type возвращает ActionClearRole.
func (ClearRole) Type() ActionType { return ActionClearRole }

func (ClearRole) apply(p *Profile, _ ReduceContext) error {
	p.Roles = RoleSelection{}
	return nil
}

// AddBadge назначает системный бейдж из каталога.
type AddBadge struct {
	BadgeDefinitionID string `json:"badgeDefinitionId"`
}

// Type возвращает ActionAddBadge.
func (AddBadge) Type() ActionType { return ActionAddBadge }

func (a AddBadge) apply(p *Profile, rc ReduceContext) error {
	for _, def := range rc.Catalog.Badges {
		if def.ID == a.BadgeDefinitionID {
			list, err := p.Badges.AddFromDefinition(def, rc.newID())
			if err != nil {
				return err
			}
			p.Badges = list
			return nil
		}
	}
	return ErrBadgeNotFound
}

// AddCustomBadge назначает произвольный бейдж.
type AddCustomBadge struct {
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	Color       string `json:"color,omitempty"`
	Icon        string `json:"icon,omitempty"`
}

// Type возвращает ActionAddCustomBadge.
func (AddCustomBadge) Type() ActionType { return ActionAddCustomBadge }

func (a AddCustomBadge) apply(p *Profile, rc ReduceContext) error {
	list, err := p.Badges.AddCustom(Badge{
		Name:        a.Name,
		Description: a.Description,
		Color:       a.Color,
		Icon:        a.Icon,
	}, rc.newID())
	if err != nil {
		return err
	}
	p.Badges = list
	return nil
}

// RemoveBadge снимает бейдж.
type RemoveBadge struct {
	BadgeID string `json:"badgeId"`
}

// Type возвращает ActionRemoveBadge.
func (RemoveBadge) Type() ActionType { return ActionRemoveBadge }

func (a RemoveBadge) apply(p *Profile, _ ReduceContext) error {
	list, err := p.Badges.Remove(a.BadgeID)
	if err != nil {
		return err
	}
	p.Badges = list
	return nil
}

// SetPhoto задаёт URL фото; пустое значение удаляет фото.
type SetPhoto struct {
	URL string `json:"url"`
}

// Type возвращает ActionSetPhoto.
func (SetPhoto) Type() ActionType { return ActionSetPhoto }

func (a SetPhoto) apply(p *Profile, _ ReduceContext) error {
	url := strings.TrimSpace(a.URL)
	if url == "" || url == "null" {
		p.Avatar = nil
		return nil
	}
	p.Avatar = &url
	return nil
}

// ClearPhoto удаляет фото.
type ClearPhoto struct{}

// Type возвращает ActionClearPhoto.
func (ClearPhoto) Type() ActionType { return ActionClearPhoto }

func (ClearPhoto) apply(p *Profile, _ ReduceContext) error {
	p.Avatar = nil
	return nil
}

// replacesPhoto сообщает, заменяет ли действие фото профиля.
// После такого действия отложенный файл больше не загружается.
func replacesPhoto(a Action) bool {
	switch a.Type() {
	case ActionSetPhoto, ActionClearPhoto:
		return true
	}
	return false
}

func (rc ReduceContext) newID() string {
	if rc.NewID != nil {
		return rc.NewID()
	}
	return NewID()
}

// actionEnvelope: JSON-представление действия: {"type": "...", "payload": {...}}.
type actionEnvelope struct {
	Type    ActionType      `json:"type"`
	Payload json.RawMessage `json:"payload"`
}

var actionFactories = map[ActionType]func() Action{
	ActionSetPersonalField:        func() Action { return &SetPersonalField{} },
	ActionSetStatus:               func() Action { return &SetStatus{} },
	ActionSetPreference:           func() Action { return &SetPreference{} },
	ActionAddInstrument:           func() Action { return &AddInstrument{} },
	ActionRemoveInstrument:        func() Action { return &RemoveInstrument{} },
	ActionSetInstrumentLevel:      func() Action { return &SetInstrumentLevel{} },
	ActionSetInstrumentYears:      func() Action { return &SetInstrumentYears{} },
	ActionTogglePrimaryInstrument: func() Action { return &TogglePrimaryInstrument{} },
	ActionSelectRole:              func() Action { return &SelectRole{} },
	ActionClearRole:               func() Action { return &ClearRole{} },
	ActionAddBadge:                func() Action { return &AddBadge{} },
	ActionAddCustomBadge:          func() Action { return &AddCustomBadge{} },
	ActionRemoveBadge:             func() Action { return &RemoveBadge{} },
	ActionSetPhoto:                func() Action { return &SetPhoto{} },
	ActionClearPhoto:              func() Action { return &ClearPhoto{} },
}

// DecodeAction разбирает действие из JSON-конверта.
func DecodeAction(data []byte) (Action, error) {
	var env actionEnvelope
	if err := json.Unmarshal(data, &env); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnknownAction, err)
	}
	factory, ok := actionFactories[env.Type]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownAction, env.Type)
	}
	action := factory()
	if len(env.Payload) > 0 && string(env.Payload) != "null" {
		if err := json.Unmarshal(env.Payload, action); err != nil {
			return nil, &ValidationError{Fields: map[string]string{"payload": err.Error()}}
		}
	}
	return action, nil
}
