// Пакет upstream: HTTP-клиент ISEP Bands API.
// Каждый вызов принимает context.Context: отмена запроса консоли прерывает запрос к API.
package upstream

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"bands-console/internal/domain"

	"github.com/sirupsen/logrus"
)

// maxErrorBody ограничивает чтение тела ошибки.
const maxErrorBody = 64 << 10

// Credentials: учётные данные администратора, пробрасываемые в API.
type Credentials struct {
	Cookie        string
	Authorization string
}

type credentialsKey struct{}

// WithCredentials кладёт учётные данные в контекст запроса.
func WithCredentials(ctx context.Context, creds Credentials) context.Context {
	return context.WithValue(ctx, credentialsKey{}, creds)
}

func credentialsFrom(ctx context.Context) Credentials {
	creds, _ := ctx.Value(credentialsKey{}).(Credentials)
	return creds
}

// Client реализует domain.AdminAPI поверх REST API.
type Client struct {
	httpClient *http.Client
	baseURL    string
	logger     *logrus.Logger
}

var _ domain.AdminAPI = (*Client)(nil)

// New создаёт клиент. timeout задаёт таймаут одного HTTP-запроса.
func New(baseURL string, timeout time.Duration, logger *logrus.Logger) *Client {
	return &Client{
		httpClient: &http.Client{Timeout: timeout},
		baseURL:    strings.TrimRight(baseURL, "/"),
		logger:     logger,
	}
}

// request описывает один вызов API.
// route: шаблон пути для метрик ("/api/admin/users/:id").
type request struct {
	method      string
	route       string
	path        string
	query       url.Values
	body        any
	contentType string
	rawBody     io.Reader
}

func (c *Client) do(ctx context.Context, r request, out any) error {
	var body io.Reader = http.NoBody
	contentType := r.contentType
	switch {
	case r.rawBody != nil:
		body = r.rawBody
	case r.body != nil:
		data, err := json.Marshal(r.body)
		if err != nil {
			return fmt.Errorf("failed to encode %s %s: %w", r.method, r.route, err)
		}
		body = bytes.NewReader(data)
		contentType = "application/json"
	}

	target := c.baseURL + r.path
	if len(r.query) > 0 {
		target += "?" + r.query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, r.method, target, body)
	if err != nil {
		return fmt.Errorf("failed to build %s %s: %w", r.method, r.route, err)
	}
	req.Header.Set("Accept", "application/json")
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	creds := credentialsFrom(ctx)
	if creds.Cookie != "" {
		req.Header.Set("Cookie", creds.Cookie)
	}
	if creds.Authorization != "" {
		req.Header.Set("Authorization", creds.Authorization)
	}

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		observe(r.method, r.route, "error", time.Since(start))
		if ctxErr := ctx.Err(); ctxErr != nil {
			return ctxErr
		}
		return fmt.Errorf("failed to call %s %s: %w", r.method, r.route, err)
	}
	defer resp.Body.Close()
	observe(r.method, r.route, strconv.Itoa(resp.StatusCode), time.Since(start))

	logEntry := c.logger.WithFields(logrus.Fields{
		"method":  r.method,
		"route":   r.route,
		"status":  resp.StatusCode,
		"latency": time.Since(start),
	})

	if err := checkResponse(resp); err != nil {
		logEntry.WithError(err).Warn("Upstream returned error")
		return err
	}
	logEntry.Debug("Upstream call succeeded")

	if out == nil {
		_, _ = io.Copy(io.Discard, resp.Body)
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		if errors.Is(err, io.EOF) {
			return nil
		}
		return fmt.Errorf("failed to decode %s %s: %w", r.method, r.route, err)
	}
	return nil
}

// checkResponse превращает ответ не 2xx в *domain.UpstreamError.
// Тело ошибки имеет вид {error, details?}; details может быть строкой или объектом.
func checkResponse(resp *http.Response) error {
	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		return nil
	}

	raw, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
	apiErr := &domain.UpstreamError{Status: resp.StatusCode}

	var payload struct {
		Error   string          `json:"error"`
		Message string          `json:"message"`
		Details json.RawMessage `json:"details"`
	}
	if err := json.Unmarshal(raw, &payload); err == nil {
		apiErr.Message = payload.Error
		if apiErr.Message == "" {
			apiErr.Message = payload.Message
		}
		apiErr.Details = detailsString(payload.Details)
	}
	if apiErr.Message == "" {
		apiErr.Message = http.StatusText(resp.StatusCode)
	}
	return apiErr
}

func detailsString(raw json.RawMessage) string {
	if len(raw) == 0 || string(raw) == "null" {
		return ""
	}
	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		return s
	}
	return string(raw)
}

// userError заменяет 404 на domain.ErrUserNotFound для вызовов по ID пользователя.
func userError(err error) error {
	var apiErr *domain.UpstreamError
	if errors.As(err, &apiErr) && apiErr.Status == http.StatusNotFound {
		return domain.ErrUserNotFound
	}
	return err
}

// unwrap достаёт поле key из объекта-обёртки; если обёртки нет, декодирует raw целиком.
// API отдаёт и {"users": [...]}, и голые массивы.
func unwrap(raw json.RawMessage, key string, out any) error {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) > 0 && trimmed[0] == '{' {
		var envelope map[string]json.RawMessage
		if err := json.Unmarshal(trimmed, &envelope); err != nil {
			return err
		}
		if inner, ok := envelope[key]; ok {
			return json.Unmarshal(inner, out)
		}
	}
	if len(trimmed) == 0 {
		return nil
	}
	return json.Unmarshal(trimmed, out)
}

// totalFrom читает общее число записей из обёртки списка.
func totalFrom(raw json.RawMessage, fallback int) int {
	var envelope struct {
		Total      *int `json:"total"`
		Pagination *struct {
			Total int `json:"total"`
		} `json:"pagination"`
	}
	if err := json.Unmarshal(raw, &envelope); err != nil {
		return fallback
	}
	switch {
	case envelope.Total != nil:
		return *envelope.Total
	case envelope.Pagination != nil:
		return envelope.Pagination.Total
	}
	return fallback
}

func pageQuery(page, limit int) url.Values {
	q := url.Values{}
	if page > 0 {
		q.Set("page", strconv.Itoa(page))
	}
	if limit > 0 {
		q.Set("limit", strconv.Itoa(limit))
	}
	return q
}
