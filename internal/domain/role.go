package domain

// RoleSnapshot: роль ассоциации в том виде, как её отдаёт upstream API.
// MaxUsers == nil означает отсутствие ограничения.
type RoleSnapshot struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	DisplayName string `json:"displayName"`
	Weight      int    `json:"weight"`
	MaxUsers    *int   `json:"maxUsers,omitempty"`
	UserCount   int    `json:"userCount"`
}

// RoleRef: назначенная пользователю роль.
type RoleRef struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Weight int    `json:"weight"`
}

// Availability: состояние роли с учётом несохранённого выбора.
type Availability struct {
	AdjustedCount  int  `json:"adjustedCount"`
	SpotsLeft      *int `json:"spotsLeft,omitempty"`
	IsAvailable    bool `json:"isAvailable"`
	Selected       bool `json:"selected"`
	OriginallyHeld bool `json:"originallyHeld"`
}

// RoleOption: роль каталога вместе с её доступностью для текущего выбора.
type RoleOption struct {
	RoleSnapshot
	Availability Availability `json:"availability"`
}

// RoleAvailability пересчитывает счётчик роли так, как он будет выглядеть после сохранения.
// Сервер остаётся источником истины при сохранении.
func RoleAvailability(role RoleSnapshot, originallyHeld, selected bool) Availability {
	adjusted := role.UserCount
	switch {
	case originallyHeld && selected:
		// счётчик уже учитывает пользователя
	case originallyHeld && !selected:
		adjusted = role.UserCount - 1
	case !originallyHeld && selected:
		adjusted = role.UserCount + 1
	}
	if adjusted < 0 {
		adjusted = 0
	}

	a := Availability{
		AdjustedCount:  adjusted,
		Selected:       selected,
		OriginallyHeld: originallyHeld,
	}
	if role.MaxUsers == nil {
		a.IsAvailable = true
		return a
	}

	left := *role.MaxUsers - adjusted
	if left < 0 {
		left = 0
	}
	a.SpotsLeft = &left
	a.IsAvailable = selected || originallyHeld || role.UserCount < *role.MaxUsers
	return a
}

// RoleOptions строит список ролей с доступностью для выбора selected.
func RoleOptions(catalog []RoleSnapshot, original, selected RoleSelection) []RoleOption {
	out := make([]RoleOption, 0, len(catalog))
	for _, r := range catalog {
		out = append(out, RoleOption{
			RoleSnapshot: r,
			Availability: RoleAvailability(r, original.Has(r.ID), selected.Has(r.ID)),
		})
	}
	return out
}

// RoleSelection: выбранные роли. Модель: массив (как в API),
// но редьюсер держит не более одного элемента.
type RoleSelection []string

// Has сообщает, выбрана ли роль.
func (s RoleSelection) Has(id string) bool {
	for _, v := range s {
		if v == id {
			return true
		}
	}
	return false
}

// Selected возвращает выбранную роль или пустую строку.
func (s RoleSelection) Selected() string {
	if len(s) == 0 {
		return ""
	}
	return s[0]
}

// HighestWeightRole выбирает роль с наибольшим весом.
// Используется при загрузке пользователя, у которого в API несколько ролей.
func HighestWeightRole(roles []RoleRef) RoleSelection {
	if len(roles) == 0 {
		return RoleSelection{}
	}
	best := roles[0]
	for _, r := range roles[1:] {
		if r.Weight > best.Weight {
			best = r
		}
	}
	return RoleSelection{best.ID}
}

// SelectRoleIn применяет выбор роли с проверкой вместимости.
// Выбор недоступной роли ничего не меняет и возвращает ErrRoleFull.
func SelectRoleIn(current, original RoleSelection, catalog []RoleSnapshot, roleID string) (RoleSelection, error) {
	var role *RoleSnapshot
	for i := range catalog {
		if catalog[i].ID == roleID {
			role = &catalog[i]
			break
		}
	}
	if role == nil {
		return current, ErrRoleNotFound
	}
	if current.Has(roleID) {
		return RoleSelection{roleID}, nil
	}
	if !RoleAvailability(*role, original.Has(roleID), false).IsAvailable {
		return current, ErrRoleFull
	}
	return RoleSelection{roleID}, nil
}
