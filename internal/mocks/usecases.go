package mocks

import (
	"context"

	"bands-console/internal/domain"

	"github.com/stretchr/testify/mock"
)

// CreationUseCase: мок domain.CreationUseCase.
type CreationUseCase struct {
	mock.Mock
}

func (m *CreationUseCase) wizard(args mock.Arguments) (*domain.Wizard, error) {
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Wizard), args.Error(1)
}

func (m *CreationUseCase) Start(ctx context.Context) (*domain.Wizard, error) {
	return m.wizard(m.Called(ctx))
}

func (m *CreationUseCase) Get(ctx context.Context, wizardID string) (*domain.Wizard, error) {
	return m.wizard(m.Called(ctx, wizardID))
}

func (m *CreationUseCase) Apply(ctx context.Context, wizardID string, action domain.Action) (*domain.Wizard, error) {
	return m.wizard(m.Called(ctx, wizardID, action))
}

func (m *CreationUseCase) Next(ctx context.Context, wizardID string) (*domain.Wizard, error) {
	return m.wizard(m.Called(ctx, wizardID))
}

func (m *CreationUseCase) Back(ctx context.Context, wizardID string) (*domain.Wizard, error) {
	return m.wizard(m.Called(ctx, wizardID))
}

func (m *CreationUseCase) AttachPhoto(ctx context.Context, wizardID string, file domain.PhotoFile) (*domain.Wizard, error) {
	return m.wizard(m.Called(ctx, wizardID, file))
}

func (m *CreationUseCase) Cancel(ctx context.Context, wizardID string) error {
	args := m.Called(ctx, wizardID)
	return args.Error(0)
}

func (m *CreationUseCase) Submit(ctx context.Context, wizardID string) (*domain.CreationResult, error) {
	args := m.Called(ctx, wizardID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.CreationResult), args.Error(1)
}

// EditorUseCase: мок domain.EditorUseCase.
type EditorUseCase struct {
	mock.Mock
}

func (m *EditorUseCase) session(args mock.Arguments) (*domain.EditSession, error) {
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.EditSession), args.Error(1)
}

func (m *EditorUseCase) result(args mock.Arguments) (*domain.ActionResult, error) {
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ActionResult), args.Error(1)
}

func (m *EditorUseCase) Open(ctx context.Context, userID string) (*domain.EditSession, error) {
	return m.session(m.Called(ctx, userID))
}

func (m *EditorUseCase) Get(ctx context.Context, sessionID string) (*domain.EditSession, error) {
	return m.session(m.Called(ctx, sessionID))
}

func (m *EditorUseCase) Apply(ctx context.Context, sessionID string, action domain.Action) (*domain.EditSession, error) {
	return m.session(m.Called(ctx, sessionID, action))
}

func (m *EditorUseCase) AttachPhoto(ctx context.Context, sessionID string, file domain.PhotoFile) (*domain.EditSession, error) {
	return m.session(m.Called(ctx, sessionID, file))
}

func (m *EditorUseCase) Permissions(ctx context.Context, sessionID string) ([]domain.RoleOption, error) {
	args := m.Called(ctx, sessionID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.RoleOption), args.Error(1)
}

func (m *EditorUseCase) Tab(ctx context.Context, sessionID string, tab domain.EditTab) (any, error) {
	args := m.Called(ctx, sessionID, tab)
	return args.Get(0), args.Error(1)
}

func (m *EditorUseCase) Save(ctx context.Context, sessionID string) (*domain.SaveResult, error) {
	args := m.Called(ctx, sessionID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.SaveResult), args.Error(1)
}

func (m *EditorUseCase) Delete(ctx context.Context, sessionID string, confirm bool) (*domain.ActionResult, error) {
	return m.result(m.Called(ctx, sessionID, confirm))
}

func (m *EditorUseCase) Archive(ctx context.Context, sessionID string, confirm bool) (*domain.ActionResult, error) {
	return m.result(m.Called(ctx, sessionID, confirm))
}

func (m *EditorUseCase) Restore(ctx context.Context, sessionID string, confirm bool) (*domain.ActionResult, error) {
	return m.result(m.Called(ctx, sessionID, confirm))
}

func (m *EditorUseCase) ResetPassword(ctx context.Context, sessionID string, confirm bool) (*domain.ActionResult, error) {
	return m.result(m.Called(ctx, sessionID, confirm))
}

func (m *EditorUseCase) ViewProfile(ctx context.Context, sessionID string, confirmDiscard bool) (string, error) {
	args := m.Called(ctx, sessionID, confirmDiscard)
	return args.String(0), args.Error(1)
}

// ListingUseCase: мок domain.ListingUseCase.
type ListingUseCase struct {
	mock.Mock
}

func (m *ListingUseCase) Users(ctx context.Context, filters domain.ListFilters) (*domain.UserListResult, error) {
	args := m.Called(ctx, filters)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.UserListResult), args.Error(1)
}

func (m *ListingUseCase) Events(ctx context.Context, q domain.EventQuery) (*domain.EventBuckets, error) {
	args := m.Called(ctx, q)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.EventBuckets), args.Error(1)
}

func (m *ListingUseCase) Venues(ctx context.Context, f domain.VenueFilters) ([]domain.Venue, error) {
	args := m.Called(ctx, f)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Venue), args.Error(1)
}

func (m *ListingUseCase) archivedUsers(args mock.Arguments) (*domain.ArchivedUsersResult, error) {
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ArchivedUsersResult), args.Error(1)
}

func (m *ListingUseCase) archivedPosts(args mock.Arguments) (*domain.ArchivedPostsResult, error) {
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ArchivedPostsResult), args.Error(1)
}

func (m *ListingUseCase) ArchivedUsers(ctx context.Context, page, limit int) (*domain.ArchivedUsersResult, error) {
	return m.archivedUsers(m.Called(ctx, page, limit))
}

func (m *ListingUseCase) ArchivedPosts(ctx context.Context, page, limit int) (*domain.ArchivedPostsResult, error) {
	return m.archivedPosts(m.Called(ctx, page, limit))
}

func (m *ListingUseCase) RestoreUser(ctx context.Context, userID string, page, limit int) (*domain.ArchivedUsersResult, error) {
	return m.archivedUsers(m.Called(ctx, userID, page, limit))
}

func (m *ListingUseCase) RestorePost(ctx context.Context, postID string, page, limit int) (*domain.ArchivedPostsResult, error) {
	return m.archivedPosts(m.Called(ctx, postID, page, limit))
}

func (m *ListingUseCase) DeletePost(ctx context.Context, postID string, page, limit int) (*domain.ArchivedPostsResult, error) {
	return m.archivedPosts(m.Called(ctx, postID, page, limit))
}

// CatalogUseCase: мок domain.CatalogUseCase.
type CatalogUseCase struct {
	mock.Mock
}

func (m *CatalogUseCase) Roles(ctx context.Context) ([]domain.RoleSnapshot, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.RoleSnapshot), args.Error(1)
}

func (m *CatalogUseCase) Instruments(ctx context.Context) ([]domain.InstrumentDefinition, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.InstrumentDefinition), args.Error(1)
}

func (m *CatalogUseCase) Badges(ctx context.Context) ([]domain.BadgeDefinition, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.BadgeDefinition), args.Error(1)
}

// NewsletterUseCase: мок domain.NewsletterUseCase.
type NewsletterUseCase struct {
	mock.Mock
}

func (m *NewsletterUseCase) Subscribe(ctx context.Context, email string) error {
	args := m.Called(ctx, email)
	return args.Error(0)
}
