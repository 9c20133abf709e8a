package handler

import (
	"fmt"
	"io"
	"net/http"

	"bands-console/internal/domain"
	"bands-console/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/sirupsen/logrus"
)

const maxActionBody = 64 << 10

// WizardHandler обрабатывает HTTP-запросы мастера создания пользователя.
type WizardHandler struct {
	*BaseHandler
	creationUseCase domain.CreationUseCase
}

// NewWizardHandler создает новый экземпляр WizardHandler.
func NewWizardHandler(creationUseCase domain.CreationUseCase, logger *logrus.Logger) *WizardHandler {
	return &WizardHandler{
		BaseHandler:     NewBaseHandler(logger),
		creationUseCase: creationUseCase,
	}
}

// StartWizard открывает новый мастер.
func (h *WizardHandler) StartWizard(c echo.Context) error {
	logEntry := h.logRequest(c, "start_wizard")

	w, err := h.creationUseCase.Start(c.Request().Context())
	if err != nil {
		return respondError(c, logEntry, err)
	}

	logEntry.WithField("wizard_id", w.ID).Info("Wizard started")
	return c.JSON(http.StatusCreated, toWizardView(w))
}

// GetWizard возвращает состояние мастера.
func (h *WizardHandler) GetWizard(c echo.Context) error {
	id := c.Param("id")
	logEntry := h.logRequest(c, "get_wizard").WithField("wizard_id", id)

	w, err := h.creationUseCase.Get(c.Request().Context(), id)
	if err != nil {
		return respondError(c, logEntry, err)
	}
	return c.JSON(http.StatusOK, toWizardView(w))
}

// ApplyWizardAction применяет действие к форме мастера.
func (h *WizardHandler) ApplyWizardAction(c echo.Context) error {
	id := c.Param("id")
	logEntry := h.logRequest(c, "apply_wizard_action").WithField("wizard_id", id)

	action, err := readAction(c)
	if err != nil {
		return respondError(c, logEntry, err)
	}
	logEntry = logEntry.WithField("action", action.Type())

	w, err := h.creationUseCase.Apply(c.Request().Context(), id, action)
	if err != nil {
		return respondError(c, logEntry, err)
	}

	logEntry.Debug("Wizard action applied")
	return c.JSON(http.StatusOK, toWizardView(w))
}

// NextStep переходит на следующий шаг.
func (h *WizardHandler) NextStep(c echo.Context) error {
	id := c.Param("id")
	logEntry := h.logRequest(c, "wizard_next").WithField("wizard_id", id)

	w, err := h.creationUseCase.Next(c.Request().Context(), id)
	if err != nil {
		return respondError(c, logEntry, err)
	}
	return c.JSON(http.StatusOK, toWizardView(w))
}

// PreviousStep возвращается на предыдущий шаг.
func (h *WizardHandler) PreviousStep(c echo.Context) error {
	id := c.Param("id")
	logEntry := h.logRequest(c, "wizard_back").WithField("wizard_id", id)

	w, err := h.creationUseCase.Back(c.Request().Context(), id)
	if err != nil {
		return respondError(c, logEntry, err)
	}
	return c.JSON(http.StatusOK, toWizardView(w))
}

// AttachWizardPhoto принимает фото профиля (multipart, поле "photo").
func (h *WizardHandler) AttachWizardPhoto(c echo.Context) error {
	id := c.Param("id")
	logEntry := h.logRequest(c, "attach_wizard_photo").WithField("wizard_id", id)

	file, err := readPhoto(c)
	if err != nil {
		return respondError(c, logEntry, err)
	}

	w, err := h.creationUseCase.AttachPhoto(c.Request().Context(), id, file)
	if err != nil {
		return respondError(c, logEntry, err)
	}

	logEntry.WithField("size", len(file.Data)).Info("Photo attached to wizard")
	return c.JSON(http.StatusOK, toWizardView(w))
}

// SubmitWizard создаёт пользователя.
func (h *WizardHandler) SubmitWizard(c echo.Context) error {
	id := c.Param("id")
	logEntry := h.logRequest(c, "submit_wizard").WithField("wizard_id", id)
	logEntry.Info("Submitting wizard")

	result, err := h.creationUseCase.Submit(c.Request().Context(), id)
	if err != nil {
		return respondError(c, logEntry, err)
	}

	logEntry.WithField("user_id", result.User.ID).Info("User created successfully")
	return c.JSON(http.StatusCreated, result)
}

// CancelWizard закрывает мастер.
func (h *WizardHandler) CancelWizard(c echo.Context) error {
	id := c.Param("id")
	logEntry := h.logRequest(c, "cancel_wizard").WithField("wizard_id", id)

	if err := h.creationUseCase.Cancel(c.Request().Context(), id); err != nil {
		return respondError(c, logEntry, err)
	}

	logEntry.Info("Wizard cancelled")
	return c.NoContent(http.StatusNoContent)
}

func readAction(c echo.Context) (domain.Action, error) {
	body, err := io.ReadAll(io.LimitReader(c.Request().Body, maxActionBody))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrUnknownAction, err)
	}
	return domain.DecodeAction(body)
}

func readPhoto(c echo.Context) (domain.PhotoFile, error) {
	header, err := c.FormFile("photo")
	if err != nil {
		return domain.PhotoFile{}, fmt.Errorf("%w: %v", domain.ErrUnsupportedPhoto, err)
	}
	if header.Size > usecase.MaxPhotoSize {
		return domain.PhotoFile{}, domain.ErrPhotoTooLarge
	}

	src, err := header.Open()
	if err != nil {
		return domain.PhotoFile{}, fmt.Errorf("failed to open photo: %w", err)
	}
	defer src.Close()

	data, err := io.ReadAll(io.LimitReader(src, usecase.MaxPhotoSize+1))
	if err != nil {
		return domain.PhotoFile{}, fmt.Errorf("failed to read photo: %w", err)
	}
	return domain.PhotoFile{
		FileName:    header.Filename,
		ContentType: header.Header.Get(echo.HeaderContentType),
		Data:        data,
	}, nil
}
