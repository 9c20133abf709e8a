package handler

import (
	"net/http"

	"bands-console/internal/domain"

	"github.com/labstack/echo/v4"
	"github.com/sirupsen/logrus"
)

// CatalogHandler отдаёт справочники ролей, инструментов и бейджей.
type CatalogHandler struct {
	*BaseHandler
	catalogUseCase domain.CatalogUseCase
}

// NewCatalogHandler создает новый экземпляр CatalogHandler.
func NewCatalogHandler(catalogUseCase domain.CatalogUseCase, logger *logrus.Logger) *CatalogHandler {
	return &CatalogHandler{
		BaseHandler:    NewBaseHandler(logger),
		catalogUseCase: catalogUseCase,
	}
}

func (h *CatalogHandler) GetRoles(c echo.Context) error {
	logEntry := h.logRequest(c, "get_roles")

	roles, err := h.catalogUseCase.Roles(c.Request().Context())
	if err != nil {
		return respondError(c, logEntry, err)
	}

	options := make([]domain.RoleOption, 0, len(roles))
	for _, r := range roles {
		options = append(options, domain.RoleOption{
			RoleSnapshot: r,
			Availability: domain.RoleAvailability(r, false, false),
		})
	}
	return c.JSON(http.StatusOK, map[string]interface{}{
		"roles": options,
	})
}

func (h *CatalogHandler) GetInstruments(c echo.Context) error {
	logEntry := h.logRequest(c, "get_instruments")

	instruments, err := h.catalogUseCase.Instruments(c.Request().Context())
	if err != nil {
		return respondError(c, logEntry, err)
	}
	return c.JSON(http.StatusOK, map[string]interface{}{
		"instruments": instruments,
	})
}

func (h *CatalogHandler) GetBadges(c echo.Context) error {
	logEntry := h.logRequest(c, "get_badges")

	badges, err := h.catalogUseCase.Badges(c.Request().Context())
	if err != nil {
		return respondError(c, logEntry, err)
	}
	return c.JSON(http.StatusOK, map[string]interface{}{
		"badges": badges,
	})
}
