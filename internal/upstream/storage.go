package upstream

import (
	"bytes"
	"context"
	"fmt"
	"mime/multipart"
	"net/http"
	"net/textproto"

	"bands-console/internal/domain"
)

// UploadPhoto загружает фото в хранилище и возвращает его URL.
// POST /api/storage (multipart, поле "file")
func (c *Client) UploadPhoto(ctx context.Context, file domain.PhotoFile) (string, error) {
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)

	header := make(textproto.MIMEHeader)
	header.Set("Content-Disposition", fmt.Sprintf(`form-data; name="file"; filename=%q`, file.FileName))
	header.Set("Content-Type", file.ContentType)
	part, err := w.CreatePart(header)
	if err != nil {
		return "", fmt.Errorf("failed to build upload: %w", err)
	}
	if _, err := part.Write(file.Data); err != nil {
		return "", fmt.Errorf("failed to build upload: %w", err)
	}
	if err := w.Close(); err != nil {
		return "", fmt.Errorf("failed to build upload: %w", err)
	}

	var resp struct {
		URL string `json:"url"`
	}
	err = c.do(ctx, request{
		method:      http.MethodPost,
		route:       "/api/storage",
		path:        "/api/storage",
		contentType: w.FormDataContentType(),
		rawBody:     &buf,
	}, &resp)
	if err != nil {
		return "", err
	}
	if resp.URL == "" {
		return "", fmt.Errorf("%w: empty url in storage response", domain.ErrPhotoUploadFailed)
	}
	return resp.URL, nil
}
