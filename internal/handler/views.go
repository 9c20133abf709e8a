package handler

import (
	"bands-console/internal/domain"
)

// Представления для ответов консоли. Байты фото в ответ не попадают.

type photoView struct {
	FileName    string `json:"fileName"`
	ContentType string `json:"contentType"`
	Size        int    `json:"size"`
}

type wizardView struct {
	ID               string                   `json:"id"`
	Step             domain.WizardStep        `json:"step"`
	StepName         string                   `json:"stepName"`
	Form             domain.UserFormData      `json:"form"`
	RoleOptions      []domain.RoleOption      `json:"roleOptions"`
	BadgeDefinitions []domain.BadgeDefinition `json:"badgeDefinitions"`
	PendingPhoto     *photoView               `json:"pendingPhoto,omitempty"`
}

type editSessionView struct {
	ID             string                `json:"id"`
	UserID         string                `json:"userId"`
	Original       domain.User           `json:"original"`
	Current        domain.User           `json:"current"`
	Dirty          bool                  `json:"dirty"`
	IsSelf         bool                  `json:"isSelf"`
	AllowedActions domain.AllowedActions `json:"allowedActions"`
	RoleOptions    []domain.RoleOption   `json:"roleOptions"`
	ProfilePath    string                `json:"profilePath"`
	PendingPhoto   *photoView            `json:"pendingPhoto,omitempty"`
}

type saveView struct {
	Session      editSessionView `json:"session"`
	PhotoWarning string          `json:"photoWarning,omitempty"`
}

type actionView struct {
	Redirect string           `json:"redirect,omitempty"`
	Session  *editSessionView `json:"session,omitempty"`
}

func toPhotoView(p *domain.PhotoFile) *photoView {
	if p == nil {
		return nil
	}
	return &photoView{FileName: p.FileName, ContentType: p.ContentType, Size: len(p.Data)}
}

func toWizardView(w *domain.Wizard) wizardView {
	return wizardView{
		ID:               w.ID,
		Step:             w.Step,
		StepName:         w.Step.String(),
		Form:             w.Form,
		RoleOptions:      w.RoleOptions(),
		BadgeDefinitions: w.Catalog.Badges,
		PendingPhoto:     toPhotoView(w.PendingPhoto),
	}
}

func toEditSessionView(s *domain.EditSession) editSessionView {
	return editSessionView{
		ID:             s.ID,
		UserID:         s.UserID,
		Original:       s.Original,
		Current:        s.Current,
		Dirty:          s.Dirty,
		IsSelf:         s.IsSelf(),
		AllowedActions: s.AllowedActions(),
		RoleOptions:    s.RoleOptions(),
		ProfilePath:    s.ProfilePath(),
		PendingPhoto:   toPhotoView(s.PendingPhoto),
	}
}

func toActionView(r *domain.ActionResult) actionView {
	out := actionView{Redirect: r.Redirect}
	if r.Session != nil {
		v := toEditSessionView(r.Session)
		out.Session = &v
	}
	return out
}
