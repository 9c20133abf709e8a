package domain

import (
	"fmt"
	"strings"
)

// SkillLevel: уровень владения инструментом.
type SkillLevel string

const (
	LevelBeginner     SkillLevel = "beginner"
	LevelIntermediate SkillLevel = "intermediate"
	LevelAdvanced     SkillLevel = "advanced"
	LevelExpert       SkillLevel = "expert"
)

// ParseSkillLevel принимает уровень в любом регистре.
func ParseSkillLevel(v string) (SkillLevel, error) {
	switch l := SkillLevel(strings.ToLower(strings.TrimSpace(v))); l {
	case LevelBeginner, LevelIntermediate, LevelAdvanced, LevelExpert:
		return l, nil
	}
	return "", fmt.Errorf("%w: %q", ErrInvalidSkillLevel, v)
}

// Wire возвращает уровень в формате upstream API.
func (l SkillLevel) Wire() string {
	return strings.ToUpper(string(l))
}

// InstrumentEntry: инструмент в профиле участника.
type InstrumentEntry struct {
	Instrument   string     `json:"instrument"`
	Level        SkillLevel `json:"level"`
	YearsPlaying *int       `json:"yearsPlaying,omitempty"`
	IsPrimary    bool       `json:"isPrimary"`
}

// InstrumentList: список инструментов.
// Инвариант: не более одного элемента с IsPrimary.
type InstrumentList []InstrumentEntry

func (l InstrumentList) indexOf(instrument string) int {
	for i, e := range l {
		if strings.EqualFold(e.Instrument, instrument) {
			return i
		}
	}
	return -1
}

// Primary возвращает основной инструмент или пустую строку.
func (l InstrumentList) Primary() string {
	for _, e := range l {
		if e.IsPrimary {
			return e.Instrument
		}
	}
	return ""
}

// Add добавляет инструмент; основной инструмент снимает флаг с остальных.
func (l InstrumentList) Add(entry InstrumentEntry) (InstrumentList, error) {
	entry.Instrument = strings.TrimSpace(entry.Instrument)
	if entry.Instrument == "" {
		return l, &ValidationError{Fields: map[string]string{"instrument": "required"}}
	}
	if l.indexOf(entry.Instrument) >= 0 {
		return l, ErrInstrumentAlreadyAdded
	}
	if entry.Level == "" {
		entry.Level = LevelBeginner
	}
	if _, err := ParseSkillLevel(string(entry.Level)); err != nil {
		return l, err
	}
	if entry.YearsPlaying != nil && *entry.YearsPlaying < 0 {
		return l, &ValidationError{Fields: map[string]string{"yearsPlaying": "must be positive"}}
	}

	out := l.clone()
	if entry.IsPrimary {
		for i := range out {
			out[i].IsPrimary = false
		}
	}
	return append(out, entry), nil
}

// Remove удаляет инструмент из списка.
func (l InstrumentList) Remove(instrument string) (InstrumentList, error) {
	idx := l.indexOf(instrument)
	if idx < 0 {
		return l, ErrInstrumentNotFound
	}
	out := make(InstrumentList, 0, len(l)-1)
	out = append(out, l[:idx]...)
	return append(out, l[idx+1:]...), nil
}

// SetLevel меняет уровень инструмента.
func (l InstrumentList) SetLevel(instrument string, level SkillLevel) (InstrumentList, error) {
	idx := l.indexOf(instrument)
	if idx < 0 {
		return l, ErrInstrumentNotFound
	}
	parsed, err := ParseSkillLevel(string(level))
	if err != nil {
		return l, err
	}
	out := l.clone()
	out[idx].Level = parsed
	return out, nil
}

// SetYears меняет стаж игры; nil очищает значение.
func (l InstrumentList) SetYears(instrument string, years *int) (InstrumentList, error) {
	idx := l.indexOf(instrument)
	if idx < 0 {
		return l, ErrInstrumentNotFound
	}
	if years != nil && *years < 0 {
		return l, &ValidationError{Fields: map[string]string{"yearsPlaying": "must be positive"}}
	}
	out := l.clone()
	out[idx].YearsPlaying = years
	return out, nil
}

// TogglePrimary делает инструмент основным, снимая флаг с остальных.
// Повторный вызов для текущего основного инструмента снимает флаг.
func (l InstrumentList) TogglePrimary(instrument string) (InstrumentList, error) {
	idx := l.indexOf(instrument)
	if idx < 0 {
		return l, ErrInstrumentNotFound
	}
	out := l.clone()
	wasPrimary := out[idx].IsPrimary
	for i := range out {
		out[i].IsPrimary = false
	}
	out[idx].IsPrimary = !wasPrimary
	return out, nil
}

// Normalize оставляет только первый основной инструмент.
func (l InstrumentList) Normalize() InstrumentList {
	out := l.clone()
	seen := false
	for i := range out {
		if out[i].IsPrimary {
			if seen {
				out[i].IsPrimary = false
			}
			seen = true
		}
	}
	return out
}

func (l InstrumentList) clone() InstrumentList {
	if l == nil {
		return nil
	}
	out := make(InstrumentList, len(l))
	for i, e := range l {
		if e.YearsPlaying != nil {
			y := *e.YearsPlaying
			e.YearsPlaying = &y
		}
		out[i] = e
	}
	return out
}
