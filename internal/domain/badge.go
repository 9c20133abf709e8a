package domain

import "strings"

// TempBadgePrefix помечает бейджи, ещё не сохранённые на сервере.
const TempBadgePrefix = "tmp-"

// BadgeDefinition: системный бейдж из каталога.
type BadgeDefinition struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	Color       string `json:"color,omitempty"`
	Icon        string `json:"icon,omitempty"`
}

// Badge: бейдж пользователя: системный (BadgeDefinitionID != nil) или произвольный.
type Badge struct {
	ID                string  `json:"id"`
	BadgeDefinitionID *string `json:"badgeDefinitionId,omitempty"`
	Name              string  `json:"name"`
	Description       string  `json:"description,omitempty"`
	Color             string  `json:"color,omitempty"`
	Icon              string  `json:"icon,omitempty"`
}

// IsPersisted сообщает, есть ли у бейджа серверный ID.
func (b Badge) IsPersisted() bool {
	return b.ID != "" && !strings.HasPrefix(b.ID, TempBadgePrefix)
}

// BadgeList: бейджи пользователя.
type BadgeList []Badge

// HasDefinition проверяет, назначен ли уже бейдж из каталога.
func (l BadgeList) HasDefinition(definitionID string) bool {
	for _, b := range l {
		if b.BadgeDefinitionID != nil && *b.BadgeDefinitionID == definitionID {
			return true
		}
	}
	return false
}

// AddFromDefinition назначает системный бейдж.
func (l BadgeList) AddFromDefinition(def BadgeDefinition, newID string) (BadgeList, error) {
	if l.HasDefinition(def.ID) {
		return l, ErrBadgeAlreadyAssigned
	}
	defID := def.ID
	out := append(l.clone(), Badge{
		ID:                TempBadgePrefix + newID,
		BadgeDefinitionID: &defID,
		Name:              def.Name,
		Description:       def.Description,
		Color:             def.Color,
		Icon:              def.Icon,
	})
	return out, nil
}

// AddCustom назначает произвольный бейдж.
func (l BadgeList) AddCustom(b Badge, newID string) (BadgeList, error) {
	b.Name = strings.TrimSpace(b.Name)
	if b.Name == "" {
		return l, &ValidationError{Fields: map[string]string{"name": "required"}}
	}
	b.ID = TempBadgePrefix + newID
	b.BadgeDefinitionID = nil
	return append(l.clone(), b), nil
}

// Remove снимает бейдж по ID.
func (l BadgeList) Remove(id string) (BadgeList, error) {
	for i, b := range l {
		if b.ID == id {
			out := make(BadgeList, 0, len(l)-1)
			out = append(out, l[:i]...)
			return append(out, l[i+1:]...), nil
		}
	}
	return l, ErrBadgeNotFound
}

func (l BadgeList) clone() BadgeList {
	if l == nil {
		return nil
	}
	out := make(BadgeList, len(l))
	for i, b := range l {
		if b.BadgeDefinitionID != nil {
			id := *b.BadgeDefinitionID
			b.BadgeDefinitionID = &id
		}
		out[i] = b
	}
	return out
}
