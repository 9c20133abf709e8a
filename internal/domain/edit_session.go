package domain

import (
	"strings"
	"time"
)

// EditTab: вкладка редактора пользователя.
type EditTab string

const (
	TabMain        EditTab = "main"
	TabPermissions EditTab = "permissions"
	TabInstruments EditTab = "instruments"
	TabBadges      EditTab = "badges"
	TabGroups      EditTab = "groups"
	TabEvents      EditTab = "events"
	TabActivity    EditTab = "activity"
)

// ParseEditTab разбирает имя вкладки.
func ParseEditTab(v string) (EditTab, error) {
	switch t := EditTab(v); t {
	case TabMain, TabPermissions, TabInstruments, TabBadges, TabGroups, TabEvents, TabActivity:
		return t, nil
	}
	return "", ErrUnknownTab
}

// AllowedActions: кнопки панели действий редактора.
type AllowedActions struct {
	Save          bool `json:"save"`
	Delete        bool `json:"delete"`
	Archive       bool `json:"archive"`
	Restore       bool `json:"restore"`
	ResetPassword bool `json:"resetPassword"`
}

// EditSession: сессия редактирования существующего пользователя.
type EditSession struct {
	ID            string     `json:"id"`
	UserID        string     `json:"userId"`
	CurrentUserID string     `json:"currentUserId"`
	Original      User       `json:"original"`
	Current       User       `json:"current"`
	Catalog       Catalog    `json:"catalog"`
	Dirty         bool       `json:"dirty"`
	PendingPhoto  *PhotoFile `json:"pendingPhoto,omitempty"`
	CreatedAt     time.Time  `json:"createdAt"`
	UpdatedAt     time.Time  `json:"updatedAt"`
}

// NewEditSession открывает сессию над загруженным пользователем.
func NewEditSession(id string, user User, currentUserID string, catalog Catalog, now time.Time) *EditSession {
	user.Instruments = user.Instruments.Normalize()
	return &EditSession{
		ID:            id,
		UserID:        user.ID,
		CurrentUserID: currentUserID,
		Original:      User{ID: user.ID, Profile: user.Profile.clone(), CreatedAt: user.CreatedAt, UpdatedAt: user.UpdatedAt},
		Current:       User{ID: user.ID, Profile: user.Profile.clone(), CreatedAt: user.CreatedAt, UpdatedAt: user.UpdatedAt},
		Catalog:       catalog,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
}

// Apply применяет действие к рабочей копии и помечает сессию изменённой.
func (s *EditSession) Apply(a Action, now time.Time) error {
	rc := ReduceContext{Catalog: s.Catalog, OriginalRoles: s.Original.Roles}
	if err := Reduce(&s.Current.Profile, a, rc); err != nil {
		return err
	}
	if replacesPhoto(a) {
		s.PendingPhoto = nil
	}
	s.Dirty = true
	s.UpdatedAt = now
	return nil
}

// AttachPhoto запоминает новое фото до сохранения.
func (s *EditSession) AttachPhoto(file PhotoFile, now time.Time) {
	s.PendingPhoto = &file
	s.Dirty = true
	s.UpdatedAt = now
}

// Saved заменяет обе копии ответом сервера и сбрасывает флаг изменений.
func (s *EditSession) Saved(user User, now time.Time) {
	user.Instruments = user.Instruments.Normalize()
	s.Original = User{ID: user.ID, Profile: user.Profile.clone(), CreatedAt: user.CreatedAt, UpdatedAt: user.UpdatedAt}
	s.Current = User{ID: user.ID, Profile: user.Profile.clone(), CreatedAt: user.CreatedAt, UpdatedAt: user.UpdatedAt}
	s.Dirty = false
	s.PendingPhoto = nil
	s.UpdatedAt = now
}

// IsSelf сообщает, редактирует ли администратор собственный аккаунт.
func (s *EditSession) IsSelf() bool {
	return s.CurrentUserID != "" && s.CurrentUserID == s.UserID
}

// AllowedActions вычисляет доступные действия.
// Удаление и архивирование собственного аккаунта скрыты.
// Восстановление доступно для удалённых, отклонённых и приостановленных участников.
func (s *EditSession) AllowedActions() AllowedActions {
	deleted := s.Original.Status == StatusDeleted
	return AllowedActions{
		Save:          s.Dirty,
		Delete:        !s.IsSelf(),
		Archive:       !s.IsSelf() && !deleted,
		Restore:       IsRestorable(s.Original.Status),
		ResetPassword: strings.TrimSpace(s.Original.Email) != "",
	}
}

// IsRestorable сообщает, можно ли вернуть участника в статус current.
func IsRestorable(status MemberStatus) bool {
	switch status {
	case StatusDeleted, StatusRefused, StatusSuspended:
		return true
	}
	return false
}

// RoleOptions возвращает роли с доступностью с учётом несохранённого выбора.
func (s *EditSession) RoleOptions() []RoleOption {
	return RoleOptions(s.Catalog.Roles, s.Original.Roles, s.Current.Roles)
}

// ProfilePath: путь публичного профиля пользователя.
func (s *EditSession) ProfilePath() string {
	return "/profile/" + s.UserID
}

// Discard отбрасывает несохранённые изменения.
func (s *EditSession) Discard(now time.Time) {
	s.Current = User{ID: s.Original.ID, Profile: s.Original.Profile.clone(), CreatedAt: s.Original.CreatedAt, UpdatedAt: s.Original.UpdatedAt}
	s.Dirty = false
	s.PendingPhoto = nil
	s.UpdatedAt = now
}

// ViewProfile: переход к публичному профилю, защищённый окном несохранённых изменений.
func (s *EditSession) ViewProfile(confirmDiscard bool, now time.Time) (string, error) {
	if s.Dirty && !confirmDiscard {
		return "", ErrUnsavedChanges
	}
	if s.Dirty {
		s.Discard(now)
	}
	return s.ProfilePath(), nil
}
