package upstream

import (
	"context"
	"encoding/json"
	"net/http"
	"net/url"

	"bands-console/internal/domain"
)

// CurrentSession возвращает администратора, от имени которого работает консоль.
// GET /api/auth/session
func (c *Client) CurrentSession(ctx context.Context) (*domain.SessionInfo, error) {
	var resp struct {
		User *struct {
			ID    string `json:"id"`
			Email string `json:"email"`
			Name  string `json:"name"`
		} `json:"user"`
	}
	err := c.do(ctx, request{method: http.MethodGet, route: "/api/auth/session", path: "/api/auth/session"}, &resp)
	if err != nil {
		return nil, err
	}
	if resp.User == nil {
		return &domain.SessionInfo{}, nil
	}
	return &domain.SessionInfo{UserID: resp.User.ID, Email: resp.User.Email, Name: resp.User.Name}, nil
}

// ListUsers возвращает страницу пользователей.
// GET /api/admin/users
func (c *Client) ListUsers(ctx context.Context, q domain.UserQuery) (*domain.UserPage, error) {
	query := pageQuery(q.Page, q.Limit)
	if q.Status != domain.StatusUnknown {
		query.Set("status", q.Status.Wire())
	}
	setIfNotEmpty(query, "search", q.Search)
	setIfNotEmpty(query, "promotion", q.Promotion)
	setIfNotEmpty(query, "role", q.RoleID)
	setIfNotEmpty(query, "instrument", q.Instrument)

	return c.userPage(ctx, request{
		method: http.MethodGet,
		route:  "/api/admin/users",
		path:   "/api/admin/users",
		query:  query,
	})
}

// ArchivedUsers возвращает страницу архивных пользователей.
// GET /api/admin/archive/users
func (c *Client) ArchivedUsers(ctx context.Context, page, limit int) (*domain.UserPage, error) {
	return c.userPage(ctx, request{
		method: http.MethodGet,
		route:  "/api/admin/archive/users",
		path:   "/api/admin/archive/users",
		query:  pageQuery(page, limit),
	})
}

func (c *Client) userPage(ctx context.Context, r request) (*domain.UserPage, error) {
	var raw json.RawMessage
	if err := c.do(ctx, r, &raw); err != nil {
		return nil, err
	}
	var dtos []userDTO
	if err := unwrap(raw, "users", &dtos); err != nil {
		return nil, err
	}
	users := make([]domain.UserSummary, 0, len(dtos))
	for _, u := range dtos {
		users = append(users, u.toSummary())
	}
	return &domain.UserPage{Users: users, Total: totalFrom(raw, len(users))}, nil
}

// GetUser загружает пользователя.
// GET /api/admin/users/:id
func (c *Client) GetUser(ctx context.Context, userID string) (*domain.User, error) {
	return c.user(ctx, request{
		method: http.MethodGet,
		route:  "/api/admin/users/:id",
		path:   userPath(userID),
	})
}

// CreateUser создаёт пользователя.
// POST /api/admin/users
func (c *Client) CreateUser(ctx context.Context, payload domain.CreateUserPayload) (*domain.User, error) {
	return c.user(ctx, request{
		method: http.MethodPost,
		route:  "/api/admin/users",
		path:   "/api/admin/users",
		body:   payload,
	})
}

// UpdateUser сохраняет пользователя.
// PUT /api/admin/users/:id
func (c *Client) UpdateUser(ctx context.Context, userID string, payload domain.UpdateUserPayload) (*domain.User, error) {
	return c.user(ctx, request{
		method: http.MethodPut,
		route:  "/api/admin/users/:id",
		path:   userPath(userID),
		body:   payload,
	})
}

func (c *Client) user(ctx context.Context, r request) (*domain.User, error) {
	var raw json.RawMessage
	if err := c.do(ctx, r, &raw); err != nil {
		return nil, userError(err)
	}
	var dto userDTO
	if err := unwrap(raw, "user", &dto); err != nil {
		return nil, err
	}
	return dto.toDomain(), nil
}

// DeleteUser удаляет пользователя.
// DELETE /api/admin/users/:id
func (c *Client) DeleteUser(ctx context.Context, userID string) error {
	return userError(c.do(ctx, request{
		method: http.MethodDelete,
		route:  "/api/admin/users/:id",
		path:   userPath(userID),
	}, nil))
}

// ArchiveUser архивирует пользователя.
func (c *Client) ArchiveUser(ctx context.Context, userID string) error {
	return c.userCommand(ctx, userID, "archive")
}

// RestoreUser восстанавливает пользователя из архива.
func (c *Client) RestoreUser(ctx context.Context, userID string) error {
	return c.userCommand(ctx, userID, "restore")
}

// ResetPassword отправляет пользователю ссылку для сброса пароля.
func (c *Client) ResetPassword(ctx context.Context, userID string) error {
	return c.userCommand(ctx, userID, "reset-password")
}

// userCommand: POST /api/admin/users/:id/<command>.
func (c *Client) userCommand(ctx context.Context, userID, command string) error {
	return userError(c.do(ctx, request{
		method: http.MethodPost,
		route:  "/api/admin/users/:id/" + command,
		path:   userPath(userID) + "/" + command,
	}, nil))
}

// UserGroups возвращает группы пользователя.
func (c *Client) UserGroups(ctx context.Context, userID string) ([]domain.Group, error) {
	var groups []domain.Group
	if err := c.userSubresource(ctx, userID, "groups", &groups); err != nil {
		return nil, err
	}
	return groups, nil
}

// UserEvents возвращает события пользователя.
func (c *Client) UserEvents(ctx context.Context, userID string) ([]domain.UserEvent, error) {
	var events []domain.UserEvent
	if err := c.userSubresource(ctx, userID, "events", &events); err != nil {
		return nil, err
	}
	return events, nil
}

// UserActivity возвращает журнал действий пользователя.
func (c *Client) UserActivity(ctx context.Context, userID string) ([]domain.ActivityEntry, error) {
	var entries []domain.ActivityEntry
	if err := c.userSubresource(ctx, userID, "activity", &entries); err != nil {
		return nil, err
	}
	return entries, nil
}

func (c *Client) userSubresource(ctx context.Context, userID, name string, out any) error {
	var raw json.RawMessage
	err := c.do(ctx, request{
		method: http.MethodGet,
		route:  "/api/admin/users/:id/" + name,
		path:   userPath(userID) + "/" + name,
	}, &raw)
	if err != nil {
		return userError(err)
	}
	return unwrap(raw, name, out)
}

func userPath(userID string) string {
	return "/api/admin/users/" + url.PathEscape(userID)
}

func setIfNotEmpty(q url.Values, key, value string) {
	if value != "" {
		q.Set(key, value)
	}
}

