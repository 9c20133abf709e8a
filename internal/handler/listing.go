package handler

import (
	"fmt"
	"net/http"

	"bands-console/internal/domain"

	"github.com/labstack/echo/v4"
	"github.com/oapi-codegen/runtime"
	"github.com/sirupsen/logrus"
)

// ListingHandler обрабатывает списки консоли и архив.
type ListingHandler struct {
	*BaseHandler
	listingUseCase domain.ListingUseCase
}

// NewListingHandler создает новый экземпляр ListingHandler.
func NewListingHandler(listingUseCase domain.ListingUseCase, logger *logrus.Logger) *ListingHandler {
	return &ListingHandler{
		BaseHandler:    NewBaseHandler(logger),
		listingUseCase: listingUseCase,
	}
}

// ListUsersParams: параметры GET /console/users.
type ListUsersParams struct {
	MemberStatus *string
	Search       *string
	Promotion    *string
	Role         *string
	Instrument   *string
	Page         *int
	Limit        *int
}

// PageParams: параметры пагинации архива.
type PageParams struct {
	Page  *int
	Limit *int
}

// EventsParams: параметры GET /console/events.
type EventsParams struct {
	Search  *string
	Type    *string
	VenueID *string
}

// VenuesParams: параметры GET /console/venues.
type VenuesParams struct {
	Search     *string
	City       *string
	ActiveOnly *bool
}

// ListUsers возвращает пользователей по секциям статусов.
func (h *ListingHandler) ListUsers(c echo.Context) error {
	logEntry := h.logRequest(c, "list_users")

	var params ListUsersParams
	if err := bindQuery(c, map[string]any{
		"memberStatus": &params.MemberStatus,
		"search":       &params.Search,
		"promotion":    &params.Promotion,
		"role":         &params.Role,
		"instrument":   &params.Instrument,
		"page":         &params.Page,
		"limit":        &params.Limit,
	}); err != nil {
		return badRequest(c, logEntry, err)
	}

	filters := domain.ListFilters{
		MemberStatus: deref(params.MemberStatus),
		Search:       deref(params.Search),
		Promotion:    deref(params.Promotion),
		RoleID:       deref(params.Role),
		Instrument:   deref(params.Instrument),
		Page:         deref(params.Page),
		Limit:        deref(params.Limit),
	}

	result, err := h.listingUseCase.Users(c.Request().Context(), filters)
	if err != nil {
		return respondError(c, logEntry, err)
	}

	logEntry.WithField("total", result.Page.Total).Debug("Users listed")
	return c.JSON(http.StatusOK, result)
}

// ListEvents возвращает события сегодня/будущие/прошедшие.
func (h *ListingHandler) ListEvents(c echo.Context) error {
	logEntry := h.logRequest(c, "list_events")

	var params EventsParams
	if err := bindQuery(c, map[string]any{
		"search":  &params.Search,
		"type":    &params.Type,
		"venueId": &params.VenueID,
	}); err != nil {
		return badRequest(c, logEntry, err)
	}

	result, err := h.listingUseCase.Events(c.Request().Context(), domain.EventQuery{
		Search:  deref(params.Search),
		Type:    deref(params.Type),
		VenueID: deref(params.VenueID),
	})
	if err != nil {
		return respondError(c, logEntry, err)
	}
	return c.JSON(http.StatusOK, result)
}

// ListVenues возвращает площадки.
func (h *ListingHandler) ListVenues(c echo.Context) error {
	logEntry := h.logRequest(c, "list_venues")

	var params VenuesParams
	if err := bindQuery(c, map[string]any{
		"search":     &params.Search,
		"city":       &params.City,
		"activeOnly": &params.ActiveOnly,
	}); err != nil {
		return badRequest(c, logEntry, err)
	}

	venues, err := h.listingUseCase.Venues(c.Request().Context(), domain.VenueFilters{
		Search:     deref(params.Search),
		City:       deref(params.City),
		ActiveOnly: deref(params.ActiveOnly),
	})
	if err != nil {
		return respondError(c, logEntry, err)
	}
	return c.JSON(http.StatusOK, map[string]interface{}{
		"venues": venues,
	})
}

// ListArchivedUsers возвращает архивных пользователей.
func (h *ListingHandler) ListArchivedUsers(c echo.Context) error {
	logEntry := h.logRequest(c, "list_archived_users")

	page, limit, err := pageParams(c)
	if err != nil {
		return badRequest(c, logEntry, err)
	}

	result, err := h.listingUseCase.ArchivedUsers(c.Request().Context(), page, limit)
	if err != nil {
		return respondError(c, logEntry, err)
	}
	return c.JSON(http.StatusOK, result)
}

// ListArchivedPosts возвращает архивные публикации.
func (h *ListingHandler) ListArchivedPosts(c echo.Context) error {
	logEntry := h.logRequest(c, "list_archived_posts")

	page, limit, err := pageParams(c)
	if err != nil {
		return badRequest(c, logEntry, err)
	}

	result, err := h.listingUseCase.ArchivedPosts(c.Request().Context(), page, limit)
	if err != nil {
		return respondError(c, logEntry, err)
	}
	return c.JSON(http.StatusOK, result)
}

// RestoreArchivedUser восстанавливает пользователя и возвращает обновлённый архив.
func (h *ListingHandler) RestoreArchivedUser(c echo.Context) error {
	id := c.Param("id")
	logEntry := h.logRequest(c, "restore_archived_user").WithField("user_id", id)

	page, limit, err := pageParams(c)
	if err != nil {
		return badRequest(c, logEntry, err)
	}

	result, err := h.listingUseCase.RestoreUser(c.Request().Context(), id, page, limit)
	if err != nil {
		return respondError(c, logEntry, err)
	}

	logEntry.Info("Archived user restored")
	return c.JSON(http.StatusOK, result)
}

// RestoreArchivedPost восстанавливает публикацию и возвращает обновлённый архив.
func (h *ListingHandler) RestoreArchivedPost(c echo.Context) error {
	id := c.Param("id")
	logEntry := h.logRequest(c, "restore_archived_post").WithField("post_id", id)

	page, limit, err := pageParams(c)
	if err != nil {
		return badRequest(c, logEntry, err)
	}

	result, err := h.listingUseCase.RestorePost(c.Request().Context(), id, page, limit)
	if err != nil {
		return respondError(c, logEntry, err)
	}

	logEntry.Info("Archived post restored")
	return c.JSON(http.StatusOK, result)
}

// DeleteArchivedPost окончательно удаляет публикацию.
func (h *ListingHandler) DeleteArchivedPost(c echo.Context) error {
	id := c.Param("id")
	logEntry := h.logRequest(c, "delete_archived_post").WithField("post_id", id)

	page, limit, err := pageParams(c)
	if err != nil {
		return badRequest(c, logEntry, err)
	}

	result, err := h.listingUseCase.DeletePost(c.Request().Context(), id, page, limit)
	if err != nil {
		return respondError(c, logEntry, err)
	}

	logEntry.Info("Archived post deleted")
	return c.JSON(http.StatusOK, result)
}

func pageParams(c echo.Context) (int, int, error) {
	var params PageParams
	if err := bindQuery(c, map[string]any{
		"page":  &params.Page,
		"limit": &params.Limit,
	}); err != nil {
		return 0, 0, err
	}
	return deref(params.Page), deref(params.Limit), nil
}

// bindQuery разбирает необязательные query-параметры (style=form, explode=true).
func bindQuery(c echo.Context, dest map[string]any) error {
	query := c.QueryParams()
	for name, target := range dest {
		if err := runtime.BindQueryParameter("form", true, false, name, query, target); err != nil {
			return fmt.Errorf("invalid format for parameter %s: %w", name, err)
		}
	}
	return nil
}

func deref[T any](v *T) T {
	var zero T
	if v == nil {
		return zero
	}
	return *v
}
