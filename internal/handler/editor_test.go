package handler_test

import (
	"net/http"
	"testing"

	"bands-console/internal/domain"
	"bands-console/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestEditorHandler_Open(t *testing.T) {
	s := newConsoleServer()
	session := testSession()
	s.editor.On("Open", mock.Anything, "u1").Return(session, nil)

	rec := s.do(jsonRequest(http.MethodPost, "/console/users/u1/edit", nil))

	assert.Equal(t, http.StatusCreated, rec.Code)
	var view map[string]any
	decodeJSON(t, rec, &view)
	assert.Equal(t, session.ID, view["id"])
	assert.Equal(t, "u1", view["userId"])
	assert.Equal(t, "/profile/u1", view["profilePath"])
	assert.Equal(t, false, view["isSelf"])
	assert.Contains(t, view, "allowedActions")
	s.assertExpectations(t)
}

func TestEditorHandler_Open_UserMissing(t *testing.T) {
	s := newConsoleServer()
	s.editor.On("Open", mock.Anything, "ghost").Return(nil, domain.ErrUserNotFound)

	rec := s.do(jsonRequest(http.MethodPost, "/console/users/ghost/edit", nil))

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestEditorHandler_ApplyAction(t *testing.T) {
	s := newConsoleServer()
	session := testSession()
	session.Dirty = true
	s.editor.On("Apply", mock.Anything, session.ID, mock.MatchedBy(func(a domain.Action) bool {
		return a.Type() == domain.ActionSelectRole
	})).Return(session, nil)

	rec := s.do(jsonRequest(http.MethodPost, "/console/edit-sessions/"+session.ID+"/actions", map[string]any{
		"type":    "SelectRole",
		"payload": map[string]string{"roleId": "member"},
	}))

	assert.Equal(t, http.StatusOK, rec.Code)
	var view map[string]any
	decodeJSON(t, rec, &view)
	assert.Equal(t, true, view["dirty"])
}

func TestEditorHandler_GetTab(t *testing.T) {
	s := newConsoleServer()
	tabData := domain.BadgesTabView{Available: []domain.BadgeDefinition{{ID: "founder", Name: "Founder"}}}
	s.editor.On("Tab", mock.Anything, "s1", domain.TabBadges).Return(tabData, nil)

	rec := s.do(jsonRequest(http.MethodGet, "/console/edit-sessions/s1/tabs/badges", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	var out struct {
		Tab  string               `json:"tab"`
		Data domain.BadgesTabView `json:"data"`
	}
	decodeJSON(t, rec, &out)
	assert.Equal(t, "badges", out.Tab)
	assert.Len(t, out.Data.Available, 1)
}

func TestEditorHandler_GetTab_Unknown(t *testing.T) {
	s := newConsoleServer()

	rec := s.do(jsonRequest(http.MethodGet, "/console/edit-sessions/s1/tabs/secrets", nil))

	assert.Equal(t, http.StatusNotFound, rec.Code)
	s.editor.AssertNotCalled(t, "Tab", mock.Anything, mock.Anything, mock.Anything)
}

func TestEditorHandler_GetPermissions(t *testing.T) {
	s := newConsoleServer()
	options := domain.RoleOptions(testCatalog().Roles, nil, nil)
	s.editor.On("Permissions", mock.Anything, "s1").Return(options, nil)

	rec := s.do(jsonRequest(http.MethodGet, "/console/edit-sessions/s1/permissions", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	var out struct {
		Roles []domain.RoleOption `json:"roles"`
	}
	decodeJSON(t, rec, &out)
	assert.Len(t, out.Roles, 2)
}

func TestEditorHandler_Save_WithPhotoWarning(t *testing.T) {
	s := newConsoleServer()
	session := testSession()
	s.editor.On("Save", mock.Anything, "s1").Return(&domain.SaveResult{
		Session:      session,
		PhotoWarning: usecase.PhotoWarning,
	}, nil)

	rec := s.do(jsonRequest(http.MethodPost, "/console/edit-sessions/s1/save", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	var out struct {
		Session      map[string]any `json:"session"`
		PhotoWarning string         `json:"photoWarning"`
	}
	decodeJSON(t, rec, &out)
	assert.Equal(t, usecase.PhotoWarning, out.PhotoWarning)
	assert.Equal(t, session.ID, out.Session["id"])
}

func TestEditorHandler_Delete_ConfirmInBody(t *testing.T) {
	s := newConsoleServer()
	s.editor.On("Delete", mock.Anything, "s1", true).Return(&domain.ActionResult{Redirect: usecase.UsersListPath}, nil)

	rec := s.do(jsonRequest(http.MethodPost, "/console/edit-sessions/s1/delete", map[string]bool{"confirm": true}))

	assert.Equal(t, http.StatusOK, rec.Code)
	var out map[string]any
	decodeJSON(t, rec, &out)
	assert.Equal(t, usecase.UsersListPath, out["redirect"])
	assert.NotContains(t, out, "session")
}

func TestEditorHandler_Archive_ConfirmInQuery(t *testing.T) {
	s := newConsoleServer()
	session := testSession()
	s.editor.On("Archive", mock.Anything, "s1", true).Return(&domain.ActionResult{Session: session}, nil)

	rec := s.do(jsonRequest(http.MethodPost, "/console/edit-sessions/s1/archive?confirm=true", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	var out map[string]any
	decodeJSON(t, rec, &out)
	assert.Contains(t, out, "session")
}

func TestEditorHandler_Restore_NotConfirmed(t *testing.T) {
	s := newConsoleServer()
	s.editor.On("Restore", mock.Anything, "s1", false).Return(nil, domain.ErrConfirmationRequired)

	rec := s.do(jsonRequest(http.MethodPost, "/console/edit-sessions/s1/restore", nil))

	assert.Equal(t, http.StatusPreconditionRequired, rec.Code)
	assert.Equal(t, "CONFIRMATION_REQUIRED", decodeError(t, rec).Code)
}

func TestEditorHandler_ResetPassword_Self(t *testing.T) {
	s := newConsoleServer()
	s.editor.On("ResetPassword", mock.Anything, "s1", true).Return(nil, domain.ErrSelfAction)

	rec := s.do(jsonRequest(http.MethodPost, "/console/edit-sessions/s1/reset-password", map[string]bool{"confirm": true}))

	assert.Equal(t, http.StatusForbidden, rec.Code)
}

func TestEditorHandler_Restore_NotAllowed(t *testing.T) {
	s := newConsoleServer()
	s.editor.On("Restore", mock.Anything, "s1", true).Return(nil, domain.ErrActionNotAllowed)

	rec := s.do(jsonRequest(http.MethodPost, "/console/edit-sessions/s1/restore?confirm=1", nil))

	assert.Equal(t, http.StatusConflict, rec.Code)
}

func TestEditorHandler_ProfileLink(t *testing.T) {
	s := newConsoleServer()
	s.editor.On("ViewProfile", mock.Anything, "s1", false).Return("", domain.ErrUnsavedChanges).Once()
	s.editor.On("ViewProfile", mock.Anything, "s1", true).Return("/profile/u1", nil).Once()

	rec := s.do(jsonRequest(http.MethodGet, "/console/edit-sessions/s1/profile-link", nil))
	assert.Equal(t, http.StatusConflict, rec.Code)
	assert.Equal(t, "UNSAVED_CHANGES", decodeError(t, rec).Code)

	rec = s.do(jsonRequest(http.MethodGet, "/console/edit-sessions/s1/profile-link?confirmDiscard=true", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
	var out map[string]string
	decodeJSON(t, rec, &out)
	assert.Equal(t, "/profile/u1", out["path"])
	s.assertExpectations(t)
}

func TestEditorHandler_AttachPhoto_Unsupported(t *testing.T) {
	s := newConsoleServer()
	s.editor.On("AttachPhoto", mock.Anything, "s1", mock.Anything).Return(nil, domain.ErrUnsupportedPhoto)

	rec := s.do(multipartPhoto(t, "/console/edit-sessions/s1/photo", "notes.txt", []byte("plain text")))

	assert.Equal(t, http.StatusUnsupportedMediaType, rec.Code)
	assert.Equal(t, "UNSUPPORTED_PHOTO", decodeError(t, rec).Code)
}
