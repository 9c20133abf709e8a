package upstream

import (
	"context"
	"encoding/json"
	"net/http"
	"net/url"

	"bands-console/internal/domain"
)

// ListRoles возвращает роли со счётчиками участников.
// GET /api/admin/roles
func (c *Client) ListRoles(ctx context.Context) ([]domain.RoleSnapshot, error) {
	var dtos []roleDTO
	if err := c.list(ctx, "/api/admin/roles", nil, "roles", &dtos); err != nil {
		return nil, err
	}
	roles := make([]domain.RoleSnapshot, 0, len(dtos))
	for _, r := range dtos {
		roles = append(roles, r.snapshot())
	}
	return roles, nil
}

// ListInstruments возвращает справочник инструментов.
// GET /api/instruments
func (c *Client) ListInstruments(ctx context.Context) ([]domain.InstrumentDefinition, error) {
	var out []domain.InstrumentDefinition
	if err := c.list(ctx, "/api/instruments", nil, "instruments", &out); err != nil {
		return nil, err
	}
	return out, nil
}

// ListBadges возвращает справочник системных бейджей.
// GET /api/badges
func (c *Client) ListBadges(ctx context.Context) ([]domain.BadgeDefinition, error) {
	var out []domain.BadgeDefinition
	if err := c.list(ctx, "/api/badges", nil, "badges", &out); err != nil {
		return nil, err
	}
	return out, nil
}

// ListEvents возвращает события.
// GET /api/admin/events
func (c *Client) ListEvents(ctx context.Context, q domain.EventQuery) ([]domain.Event, error) {
	query := url.Values{}
	setIfNotEmpty(query, "search", q.Search)
	setIfNotEmpty(query, "type", q.Type)
	setIfNotEmpty(query, "venueId", q.VenueID)

	var dtos []eventDTO
	if err := c.list(ctx, "/api/admin/events", query, "events", &dtos); err != nil {
		return nil, err
	}
	events := make([]domain.Event, 0, len(dtos))
	for _, e := range dtos {
		events = append(events, e.toDomain())
	}
	return events, nil
}

// ListVenues возвращает площадки.
// GET /api/admin/venues
func (c *Client) ListVenues(ctx context.Context) ([]domain.Venue, error) {
	var out []domain.Venue
	if err := c.list(ctx, "/api/admin/venues", nil, "venues", &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) list(ctx context.Context, path string, query url.Values, key string, out any) error {
	var raw json.RawMessage
	err := c.do(ctx, request{method: http.MethodGet, route: path, path: path, query: query}, &raw)
	if err != nil {
		return err
	}
	return unwrap(raw, key, out)
}
