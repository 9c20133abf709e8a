package handler_test

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"bands-console/internal/domain"
	"bands-console/internal/handler"
	"bands-console/internal/mocks"

	"github.com/labstack/echo/v4"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/require"
)

// consoleServer собирает echo со всеми маршрутами консоли поверх моков.
type consoleServer struct {
	echo       *echo.Echo
	creation   *mocks.CreationUseCase
	editor     *mocks.EditorUseCase
	listing    *mocks.ListingUseCase
	catalog    *mocks.CatalogUseCase
	newsletter *mocks.NewsletterUseCase
}

func newConsoleServer() *consoleServer {
	logger, _ := test.NewNullLogger()
	s := &consoleServer{
		echo:       echo.New(),
		creation:   &mocks.CreationUseCase{},
		editor:     &mocks.EditorUseCase{},
		listing:    &mocks.ListingUseCase{},
		catalog:    &mocks.CatalogUseCase{},
		newsletter: &mocks.NewsletterUseCase{},
	}
	s.echo.Validator = handler.NewRequestValidator()
	h := handler.NewAPIHandler(s.creation, s.editor, s.listing, s.catalog, s.newsletter, logger)
	handler.RegisterHandlers(s.echo, h)
	return s
}

func (s *consoleServer) do(req *http.Request) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	s.echo.ServeHTTP(rec, req)
	return rec
}

func (s *consoleServer) assertExpectations(t *testing.T) {
	s.creation.AssertExpectations(t)
	s.editor.AssertExpectations(t)
	s.listing.AssertExpectations(t)
	s.catalog.AssertExpectations(t)
	s.newsletter.AssertExpectations(t)
}

func jsonRequest(method, target string, body any) *http.Request {
	var r io.Reader = http.NoBody
	if body != nil {
		b, _ := json.Marshal(body)
		r = bytes.NewReader(b)
	}
	req := httptest.NewRequest(method, target, r)
	if body != nil {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	return req
}

func decodeJSON(t *testing.T, rec *httptest.ResponseRecorder, out any) {
	t.Helper()
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), out))
}

func decodeError(t *testing.T, rec *httptest.ResponseRecorder) domain.HTTPError {
	t.Helper()
	var resp struct {
		Error domain.HTTPError `json:"error"`
	}
	decodeJSON(t, rec, &resp)
	return resp.Error
}

var testTime = time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)

func testCatalog() domain.Catalog {
	one := 1
	return domain.Catalog{
		Roles: []domain.RoleSnapshot{
			{ID: "president", Name: "president", DisplayName: "Président", Weight: 100, MaxUsers: &one, UserCount: 1},
			{ID: "member", Name: "member", DisplayName: "Membre", Weight: 1},
		},
		Badges: []domain.BadgeDefinition{{ID: "founder", Name: "Founder"}},
	}
}

func testWizard() *domain.Wizard {
	return domain.NewWizard("11111111-1111-1111-1111-111111111111", testCatalog(), "Tmp-Password-1", testTime)
}

func testSession() *domain.EditSession {
	user := domain.User{
		ID: "u1",
		Profile: domain.Profile{
			PersonalInfo: domain.PersonalInfo{FirstName: "Alice", LastName: "Martin", Email: "alice@isep.fr"},
			Status:       domain.StatusCurrent,
		},
	}
	return domain.NewEditSession("22222222-2222-2222-2222-222222222222", user, "admin", testCatalog(), testTime)
}
