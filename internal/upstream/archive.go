package upstream

import (
	"context"
	"encoding/json"
	"net/http"
	"net/url"

	"bands-console/internal/domain"
)

// ArchivedPosts возвращает страницу архивных публикаций.
// GET /api/admin/archive/posts
func (c *Client) ArchivedPosts(ctx context.Context, page, limit int) (*domain.PostPage, error) {
	var raw json.RawMessage
	err := c.do(ctx, request{
		method: http.MethodGet,
		route:  "/api/admin/archive/posts",
		path:   "/api/admin/archive/posts",
		query:  pageQuery(page, limit),
	}, &raw)
	if err != nil {
		return nil, err
	}

	var dtos []postDTO
	if err := unwrap(raw, "posts", &dtos); err != nil {
		return nil, err
	}
	posts := make([]domain.ArchivedPost, 0, len(dtos))
	for _, p := range dtos {
		posts = append(posts, p.toDomain())
	}
	return &domain.PostPage{Posts: posts, Total: totalFrom(raw, len(posts))}, nil
}

// RestorePost восстанавливает публикацию.
// POST /api/admin/archive/posts/:id/restore
func (c *Client) RestorePost(ctx context.Context, postID string) error {
	return c.do(ctx, request{
		method: http.MethodPost,
		route:  "/api/admin/archive/posts/:id/restore",
		path:   "/api/admin/archive/posts/" + url.PathEscape(postID) + "/restore",
	}, nil)
}

// DeletePost окончательно удаляет публикацию.
// DELETE /api/admin/archive/posts/:id
func (c *Client) DeletePost(ctx context.Context, postID string) error {
	return c.do(ctx, request{
		method: http.MethodDelete,
		route:  "/api/admin/archive/posts/:id",
		path:   "/api/admin/archive/posts/" + url.PathEscape(postID),
	}, nil)
}

// SubscribeNewsletter подписывает email на рассылку.
// POST /api/newsletter/subscribe
func (c *Client) SubscribeNewsletter(ctx context.Context, email string) error {
	return c.do(ctx, request{
		method: http.MethodPost,
		route:  "/api/newsletter/subscribe",
		path:   "/api/newsletter/subscribe",
		body:   map[string]string{"email": email},
	}, nil)
}
