package handler

import (
	"context"
	"net/http"
	"strconv"

	"bands-console/internal/domain"

	"github.com/labstack/echo/v4"
	"github.com/sirupsen/logrus"
)

// EditorHandler обрабатывает HTTP-запросы редактора пользователя.
type EditorHandler struct {
	*BaseHandler
	editorUseCase domain.EditorUseCase
}

// NewEditorHandler создает новый экземпляр EditorHandler.
func NewEditorHandler(editorUseCase domain.EditorUseCase, logger *logrus.Logger) *EditorHandler {
	return &EditorHandler{
		BaseHandler:   NewBaseHandler(logger),
		editorUseCase: editorUseCase,
	}
}

type confirmRequest struct {
	Confirm bool `json:"confirm"`
}

// OpenEditor открывает сессию редактирования пользователя.
func (h *EditorHandler) OpenEditor(c echo.Context) error {
	userID := c.Param("userId")
	logEntry := h.logRequest(c, "open_editor").WithField("user_id", userID)

	s, err := h.editorUseCase.Open(c.Request().Context(), userID)
	if err != nil {
		return respondError(c, logEntry, err)
	}

	logEntry.WithField("session_id", s.ID).Info("Edit session opened")
	return c.JSON(http.StatusCreated, toEditSessionView(s))
}

// GetEditSession возвращает сессию редактирования.
func (h *EditorHandler) GetEditSession(c echo.Context) error {
	id := c.Param("id")
	logEntry := h.logRequest(c, "get_edit_session").WithField("session_id", id)

	s, err := h.editorUseCase.Get(c.Request().Context(), id)
	if err != nil {
		return respondError(c, logEntry, err)
	}
	return c.JSON(http.StatusOK, toEditSessionView(s))
}

// ApplyEditAction применяет действие к рабочей копии.
func (h *EditorHandler) ApplyEditAction(c echo.Context) error {
	id := c.Param("id")
	logEntry := h.logRequest(c, "apply_edit_action").WithField("session_id", id)

	action, err := readAction(c)
	if err != nil {
		return respondError(c, logEntry, err)
	}
	logEntry = logEntry.WithField("action", action.Type())

	s, err := h.editorUseCase.Apply(c.Request().Context(), id, action)
	if err != nil {
		return respondError(c, logEntry, err)
	}
	return c.JSON(http.StatusOK, toEditSessionView(s))
}

// AttachEditPhoto принимает новое фото профиля.
func (h *EditorHandler) AttachEditPhoto(c echo.Context) error {
	id := c.Param("id")
	logEntry := h.logRequest(c, "attach_edit_photo").WithField("session_id", id)

	file, err := readPhoto(c)
	if err != nil {
		return respondError(c, logEntry, err)
	}

	s, err := h.editorUseCase.AttachPhoto(c.Request().Context(), id, file)
	if err != nil {
		return respondError(c, logEntry, err)
	}
	return c.JSON(http.StatusOK, toEditSessionView(s))
}

// GetPermissions возвращает роли с доступностью для рабочей копии.
func (h *EditorHandler) GetPermissions(c echo.Context) error {
	id := c.Param("id")
	logEntry := h.logRequest(c, "get_permissions").WithField("session_id", id)

	options, err := h.editorUseCase.Permissions(c.Request().Context(), id)
	if err != nil {
		return respondError(c, logEntry, err)
	}
	return c.JSON(http.StatusOK, map[string]interface{}{
		"roles": options,
	})
}

// GetTab возвращает данные вкладки редактора.
func (h *EditorHandler) GetTab(c echo.Context) error {
	id := c.Param("id")
	logEntry := h.logRequest(c, "get_tab").WithFields(logrus.Fields{
		"session_id": id,
		"tab":        c.Param("tab"),
	})

	tab, err := domain.ParseEditTab(c.Param("tab"))
	if err != nil {
		return respondError(c, logEntry, err)
	}

	data, err := h.editorUseCase.Tab(c.Request().Context(), id, tab)
	if err != nil {
		return respondError(c, logEntry, err)
	}
	return c.JSON(http.StatusOK, map[string]interface{}{
		"tab":  tab,
		"data": data,
	})
}

// SaveEditSession сохраняет рабочую копию.
func (h *EditorHandler) SaveEditSession(c echo.Context) error {
	id := c.Param("id")
	logEntry := h.logRequest(c, "save_user").WithField("session_id", id)
	logEntry.Info("Saving user")

	result, err := h.editorUseCase.Save(c.Request().Context(), id)
	if err != nil {
		return respondError(c, logEntry, err)
	}

	if result.PhotoWarning != "" {
		logEntry.Warn("User saved without the new photo")
	}
	return c.JSON(http.StatusOK, saveView{
		Session:      toEditSessionView(result.Session),
		PhotoWarning: result.PhotoWarning,
	})
}

// DeleteUser удаляет пользователя.
func (h *EditorHandler) DeleteUser(c echo.Context) error {
	return h.confirmed(c, "delete_user", h.editorUseCase.Delete)
}

// ArchiveUser архивирует пользователя.
func (h *EditorHandler) ArchiveUser(c echo.Context) error {
	return h.confirmed(c, "archive_user", h.editorUseCase.Archive)
}

// RestoreUser восстанавливает пользователя.
func (h *EditorHandler) RestoreUser(c echo.Context) error {
	return h.confirmed(c, "restore_user", h.editorUseCase.Restore)
}

// ResetPassword отправляет письмо для сброса пароля.
func (h *EditorHandler) ResetPassword(c echo.Context) error {
	return h.confirmed(c, "reset_password", h.editorUseCase.ResetPassword)
}

// GetProfileLink возвращает путь публичного профиля.
// С несохранёнными изменениями нужен confirmDiscard=true.
func (h *EditorHandler) GetProfileLink(c echo.Context) error {
	id := c.Param("id")
	logEntry := h.logRequest(c, "view_profile").WithField("session_id", id)

	confirmDiscard, _ := strconv.ParseBool(c.QueryParam("confirmDiscard"))
	path, err := h.editorUseCase.ViewProfile(c.Request().Context(), id, confirmDiscard)
	if err != nil {
		return respondError(c, logEntry, err)
	}
	return c.JSON(http.StatusOK, map[string]interface{}{
		"path": path,
	})
}

type confirmedAction func(ctx context.Context, sessionID string, confirm bool) (*domain.ActionResult, error)

// confirmed выполняет разрушительное действие; подтверждение берётся из тела {"confirm": true}
// или из параметра ?confirm=true.
func (h *EditorHandler) confirmed(c echo.Context, operation string, action confirmedAction) error {
	id := c.Param("id")
	logEntry := h.logRequest(c, operation).WithField("session_id", id)

	var req confirmRequest
	if c.Request().ContentLength > 0 {
		if err := c.Bind(&req); err != nil {
			return badRequest(c, logEntry, err)
		}
	}
	if !req.Confirm {
		req.Confirm, _ = strconv.ParseBool(c.QueryParam("confirm"))
	}

	result, err := action(c.Request().Context(), id, req.Confirm)
	if err != nil {
		return respondError(c, logEntry, err)
	}

	logEntry.Info("User action completed")
	return c.JSON(http.StatusOK, toActionView(result))
}
