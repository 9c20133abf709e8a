package domain

import (
	"encoding/json"
	"fmt"
)

// MemberStatus: статус участника ассоциации.
// Консоль отдаёт его в нижнем регистре, upstream API ждёт верхний регистр.
// Преобразование делается только через UI()/Wire().
type MemberStatus int

const (
	StatusUnknown MemberStatus = iota
	StatusPending
	StatusCurrent
	StatusFormer
	StatusRefused
	StatusSuspended
	StatusDeleted
)

var statusUI = map[MemberStatus]string{
	StatusPending:   "pending",
	StatusCurrent:   "current",
	StatusFormer:    "former",
	StatusRefused:   "refused",
	StatusSuspended: "suspended",
	StatusDeleted:   "deleted",
}

var statusWire = map[MemberStatus]string{
	StatusPending:   "PENDING",
	StatusCurrent:   "CURRENT",
	StatusFormer:    "FORMER",
	StatusRefused:   "REFUSED",
	StatusSuspended: "SUSPENDED",
	StatusDeleted:   "DELETED",
}

// AllStatuses возвращает статусы в порядке отображения секций.
func AllStatuses() []MemberStatus {
	return []MemberStatus{StatusPending, StatusCurrent, StatusFormer, StatusRefused, StatusSuspended, StatusDeleted}
}

// UI возвращает представление для консоли ("current").
func (s MemberStatus) UI() string {
	return statusUI[s]
}

// Wire возвращает представление для upstream API ("CURRENT").
func (s MemberStatus) Wire() string {
	return statusWire[s]
}

func (s MemberStatus) String() string {
	if v, ok := statusUI[s]; ok {
		return v
	}
	return "unknown"
}

// ParseUIStatus разбирает статус в формате консоли.
func ParseUIStatus(v string) (MemberStatus, error) {
	for s, name := range statusUI {
		if name == v {
			return s, nil
		}
	}
	return StatusUnknown, fmt.Errorf("%w: %q", ErrInvalidStatus, v)
}

// ParseWireStatus разбирает статус в формате upstream API.
func ParseWireStatus(v string) (MemberStatus, error) {
	for s, name := range statusWire {
		if name == v {
			return s, nil
		}
	}
	return StatusUnknown, fmt.Errorf("%w: %q", ErrInvalidStatus, v)
}

func (s MemberStatus) MarshalJSON() ([]byte, error) {
	if s == StatusUnknown {
		return []byte(`""`), nil
	}
	return json.Marshal(s.UI())
}

func (s *MemberStatus) UnmarshalJSON(data []byte) error {
	var raw string
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	if raw == "" {
		*s = StatusUnknown
		return nil
	}
	parsed, err := ParseUIStatus(raw)
	if err != nil {
		return err
	}
	*s = parsed
	return nil
}

// WireStatus: тот же статус, сериализуемый в формате upstream API.
type WireStatus MemberStatus

func (s WireStatus) MarshalJSON() ([]byte, error) {
	if MemberStatus(s) == StatusUnknown {
		return []byte("null"), nil
	}
	return json.Marshal(MemberStatus(s).Wire())
}

func (s *WireStatus) UnmarshalJSON(data []byte) error {
	var raw *string
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	if raw == nil || *raw == "" {
		*s = WireStatus(StatusUnknown)
		return nil
	}
	parsed, err := ParseWireStatus(*raw)
	if err != nil {
		return err
	}
	*s = WireStatus(parsed)
	return nil
}
