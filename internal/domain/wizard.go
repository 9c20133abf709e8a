package domain

import (
	"reflect"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
)

// WizardStep: шаг мастера создания пользователя.
type WizardStep int

const (
	StepPersonal WizardStep = iota + 1
	StepInstruments
	StepRole
	StepBadges
	StepProfile
	StepReview
)

var stepNames = map[WizardStep]string{
	StepPersonal:    "personal",
	StepInstruments: "instruments",
	StepRole:        "role",
	StepBadges:      "badges",
	StepProfile:     "profile",
	StepReview:      "review",
}

func (s WizardStep) String() string {
	return stepNames[s]
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// personalStepFields: обязательные поля шага 1.
type personalStepFields struct {
	FirstName string `json:"firstName" validate:"required"`
	LastName  string `json:"lastName" validate:"required"`
	Email     string `json:"email" validate:"required"`
	BirthDate string `json:"birthDate" validate:"required"`
	Promotion string `json:"promotion" validate:"required"`
}

// ValidatePersonalStep проверяет, что обязательные поля шага 1 не пустые
// (строка из пробелов считается пустой).
func ValidatePersonalStep(info PersonalInfo) error {
	fields := personalStepFields{
		FirstName: strings.TrimSpace(info.FirstName),
		LastName:  strings.TrimSpace(info.LastName),
		Email:     strings.TrimSpace(info.Email),
		BirthDate: strings.TrimSpace(info.BirthDate),
		Promotion: strings.TrimSpace(info.Promotion),
	}
	err := validate.Struct(fields)
	if err == nil {
		return nil
	}
	verrs, ok := err.(validator.ValidationErrors)
	if !ok {
		return err
	}
	out := &ValidationError{Fields: make(map[string]string, len(verrs))}
	for _, fe := range verrs {
		out.Fields[fe.Field()] = fe.Tag()
	}
	return out
}

// Wizard: мастер создания пользователя из шести шагов.
type Wizard struct {
	ID           string       `json:"id"`
	Step         WizardStep   `json:"step"`
	Form         UserFormData `json:"form"`
	Catalog      Catalog      `json:"catalog"`
	PendingPhoto *PhotoFile   `json:"pendingPhoto,omitempty"`
	CreatedAt    time.Time    `json:"createdAt"`
	UpdatedAt    time.Time    `json:"updatedAt"`
}

// NewWizard создаёт мастер на первом шаге со статусом current по умолчанию.
func NewWizard(id string, catalog Catalog, password string, now time.Time) *Wizard {
	return &Wizard{
		ID:   id,
		Step: StepPersonal,
		Form: UserFormData{
			Profile: Profile{
				Status:      StatusCurrent,
				Instruments: InstrumentList{},
				Roles:       RoleSelection{},
				Badges:      BadgeList{},
				Preferences: Preferences{EmailNotifications: true},
			},
			TemporaryPassword: password,
		},
		Catalog:   catalog,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// Next переходит на следующий шаг. С шага 1 можно уйти, только если заполнены обязательные поля.
// На последнем шаге ничего не делает.
func (w *Wizard) Next(now time.Time) error {
	if w.Step == StepPersonal {
		if err := ValidatePersonalStep(w.Form.PersonalInfo); err != nil {
			return err
		}
	}
	if w.Step < StepReview {
		w.Step++
		w.UpdatedAt = now
	}
	return nil
}

// Back возвращается на предыдущий шаг без проверок.
func (w *Wizard) Back(now time.Time) {
	if w.Step > StepPersonal {
		w.Step--
		w.UpdatedAt = now
	}
}

// Apply применяет действие к форме.
func (w *Wizard) Apply(a Action, now time.Time) error {
	if err := Reduce(&w.Form.Profile, a, ReduceContext{Catalog: w.Catalog}); err != nil {
		return err
	}
	if replacesPhoto(a) {
		w.PendingPhoto = nil
	}
	w.UpdatedAt = now
	return nil
}

// AttachPhoto запоминает фото до отправки формы.
func (w *Wizard) AttachPhoto(file PhotoFile, now time.Time) {
	w.PendingPhoto = &file
	w.UpdatedAt = now
}

// ReadyToSubmit проверяет, что форму можно отправлять.
// Обязательные поля шага 1 проверяются повторно: их могли очистить на следующих шагах.
func (w *Wizard) ReadyToSubmit() error {
	if w.Step != StepReview {
		return ErrNotOnReviewStep
	}
	return ValidatePersonalStep(w.Form.PersonalInfo)
}

// RoleOptions возвращает роли с доступностью для текущего выбора.
func (w *Wizard) RoleOptions() []RoleOption {
	return RoleOptions(w.Catalog.Roles, nil, w.Form.Roles)
}
