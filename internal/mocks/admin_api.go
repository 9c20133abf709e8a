package mocks

import (
	"context"

	"bands-console/internal/domain"

	"github.com/stretchr/testify/mock"
)

// AdminAPI: мок domain.AdminAPI.
type AdminAPI struct {
	mock.Mock
}

func (m *AdminAPI) CurrentSession(ctx context.Context) (*domain.SessionInfo, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.SessionInfo), args.Error(1)
}

func (m *AdminAPI) ListUsers(ctx context.Context, q domain.UserQuery) (*domain.UserPage, error) {
	args := m.Called(ctx, q)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.UserPage), args.Error(1)
}

func (m *AdminAPI) GetUser(ctx context.Context, userID string) (*domain.User, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *AdminAPI) CreateUser(ctx context.Context, payload domain.CreateUserPayload) (*domain.User, error) {
	args := m.Called(ctx, payload)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *AdminAPI) UpdateUser(ctx context.Context, userID string, payload domain.UpdateUserPayload) (*domain.User, error) {
	args := m.Called(ctx, userID, payload)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *AdminAPI) DeleteUser(ctx context.Context, userID string) error {
	return m.Called(ctx, userID).Error(0)
}

func (m *AdminAPI) ArchiveUser(ctx context.Context, userID string) error {
	return m.Called(ctx, userID).Error(0)
}

func (m *AdminAPI) RestoreUser(ctx context.Context, userID string) error {
	return m.Called(ctx, userID).Error(0)
}

func (m *AdminAPI) ResetPassword(ctx context.Context, userID string) error {
	return m.Called(ctx, userID).Error(0)
}

func (m *AdminAPI) UserGroups(ctx context.Context, userID string) ([]domain.Group, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Group), args.Error(1)
}

func (m *AdminAPI) UserEvents(ctx context.Context, userID string) ([]domain.UserEvent, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.UserEvent), args.Error(1)
}

func (m *AdminAPI) UserActivity(ctx context.Context, userID string) ([]domain.ActivityEntry, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.ActivityEntry), args.Error(1)
}

func (m *AdminAPI) ListRoles(ctx context.Context) ([]domain.RoleSnapshot, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.RoleSnapshot), args.Error(1)
}

func (m *AdminAPI) ListInstruments(ctx context.Context) ([]domain.InstrumentDefinition, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.InstrumentDefinition), args.Error(1)
}

func (m *AdminAPI) ListBadges(ctx context.Context) ([]domain.BadgeDefinition, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.BadgeDefinition), args.Error(1)
}

func (m *AdminAPI) ListEvents(ctx context.Context, q domain.EventQuery) ([]domain.Event, error) {
	args := m.Called(ctx, q)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Event), args.Error(1)
}

func (m *AdminAPI) ListVenues(ctx context.Context) ([]domain.Venue, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Venue), args.Error(1)
}

func (m *AdminAPI) ArchivedUsers(ctx context.Context, page, limit int) (*domain.UserPage, error) {
	args := m.Called(ctx, page, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.UserPage), args.Error(1)
}

func (m *AdminAPI) ArchivedPosts(ctx context.Context, page, limit int) (*domain.PostPage, error) {
	args := m.Called(ctx, page, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.PostPage), args.Error(1)
}

func (m *AdminAPI) RestorePost(ctx context.Context, postID string) error {
	return m.Called(ctx, postID).Error(0)
}

func (m *AdminAPI) DeletePost(ctx context.Context, postID string) error {
	return m.Called(ctx, postID).Error(0)
}

func (m *AdminAPI) UploadPhoto(ctx context.Context, file domain.PhotoFile) (string, error) {
	args := m.Called(ctx, file)
	return args.String(0), args.Error(1)
}

func (m *AdminAPI) SubscribeNewsletter(ctx context.Context, email string) error {
	return m.Called(ctx, email).Error(0)
}
