package handler

import (
	"time"

	"bands-console/internal/upstream"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/sirupsen/logrus"
)

// LoggingMiddleware добавляет структурированное логирование
func LoggingMiddleware(logger *logrus.Logger) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()

			// Выполняем запрос
			err := next(c)

			// Логируем детали запроса
			latency := time.Since(start)
			status := c.Response().Status

			entry := logger.WithFields(logrus.Fields{
				"method":     c.Request().Method,
				"uri":        c.Request().URL.Path,
				"status":     status,
				"latency":    latency,
				"user_agent": c.Request().UserAgent(),
				"ip":         c.RealIP(),
				"request_id": c.Response().Header().Get(echo.HeaderXRequestID),
			})

			if err != nil {
				entry = entry.WithField("error", err.Error())
			}

			if status >= 500 {
				entry.Error("Server error")
			} else if status >= 400 {
				entry.Warn("Client error")
			} else {
				entry.Info("Request processed")
			}

			return err
		}
	}
}

// CredentialsMiddleware передаёт cookie и Authorization администратора в контекст,
// чтобы клиент upstream API отправил их дальше.
func CredentialsMiddleware() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			req := c.Request()
			creds := upstream.Credentials{
				Cookie:        req.Header.Get(echo.HeaderCookie),
				Authorization: req.Header.Get(echo.HeaderAuthorization),
			}
			if creds.Cookie != "" || creds.Authorization != "" {
				c.SetRequest(req.WithContext(upstream.WithCredentials(req.Context(), creds)))
			}
			return next(c)
		}
	}
}

// RequestValidator подключает validator к echo.Context.Validate.
type RequestValidator struct {
	validate *validator.Validate
}

// NewRequestValidator создает валидатор запросов для echo.
func NewRequestValidator() *RequestValidator {
	return &RequestValidator{validate: validator.New()}
}

// Validate проверяет структуру по тегам validate.
func (v *RequestValidator) Validate(i interface{}) error {
	return v.validate.Struct(i)
}
