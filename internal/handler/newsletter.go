package handler

import (
	"net/http"

	"bands-console/internal/domain"

	"github.com/labstack/echo/v4"
	"github.com/sirupsen/logrus"
)

// NewsletterHandler обрабатывает подписку на рассылку.
type NewsletterHandler struct {
	*BaseHandler
	newsletterUseCase domain.NewsletterUseCase
}

// NewNewsletterHandler создает новый экземпляр NewsletterHandler.
func NewNewsletterHandler(newsletterUseCase domain.NewsletterUseCase, logger *logrus.Logger) *NewsletterHandler {
	return &NewsletterHandler{
		BaseHandler:       NewBaseHandler(logger),
		newsletterUseCase: newsletterUseCase,
	}
}

type subscribeRequest struct {
	Email string `json:"email" validate:"required"`
}

// Subscribe подписывает email на рассылку.
func (h *NewsletterHandler) Subscribe(c echo.Context) error {
	logEntry := h.logRequest(c, "newsletter_subscribe")

	var req subscribeRequest
	if err := h.bindAndValidate(c, &req); err != nil {
		return badRequest(c, logEntry, err)
	}

	if err := h.newsletterUseCase.Subscribe(c.Request().Context(), req.Email); err != nil {
		return respondError(c, logEntry, err)
	}

	logEntry.Info("Newsletter subscription recorded")
	return c.JSON(http.StatusCreated, map[string]interface{}{
		"subscribed": true,
	})
}
