package usecase

import (
	"context"
	"time"

	"bands-console/internal/domain"

	"github.com/sirupsen/logrus"
)

// ListingUseCase реализует списки консоли и архив.
// После восстановления или удаления список всегда перечитывается.
type ListingUseCase struct {
	api    domain.AdminAPI
	loc    *time.Location
	logger *logrus.Logger
	now    func() time.Time
}

// NewListingUseCase создает новый экземпляр ListingUseCase.
// loc задаёт календарь, по которому события делятся на сегодня/будущие/прошедшие.
func NewListingUseCase(api domain.AdminAPI, loc *time.Location, logger *logrus.Logger) domain.ListingUseCase {
	if loc == nil {
		loc = time.UTC
	}
	return &ListingUseCase{
		api:    api,
		loc:    loc,
		logger: logger,
		now:    time.Now,
	}
}

// Users возвращает пользователей, разложенных по секциям статусов.
func (uc *ListingUseCase) Users(ctx context.Context, filters domain.ListFilters) (*domain.UserListResult, error) {
	f, err := filters.Normalize()
	if err != nil {
		return nil, err
	}

	page, err := uc.api.ListUsers(ctx, domain.UserQuery{
		Status:     f.StatusFilter(),
		Search:     f.Search,
		Promotion:  f.Promotion,
		RoleID:     f.RoleID,
		Instrument: f.Instrument,
		Page:       f.Page,
		Limit:      f.Limit,
	})
	if err != nil {
		return nil, err
	}

	sections := domain.BucketUsers(page.Users, f.MemberStatus)
	if sections == nil {
		sections = []domain.UserSection{}
	}
	return &domain.UserListResult{
		Sections: sections,
		Page:     domain.Paginate(page.Total, f.Page, f.Limit),
		Filters:  f,
	}, nil
}

// Events возвращает события, разделённые на сегодня/будущие/прошедшие.
func (uc *ListingUseCase) Events(ctx context.Context, q domain.EventQuery) (*domain.EventBuckets, error) {
	events, err := uc.api.ListEvents(ctx, q)
	if err != nil {
		return nil, err
	}
	buckets := domain.BucketEvents(events, uc.now(), uc.loc)
	return &buckets, nil
}

// Venues возвращает отфильтрованные площадки.
func (uc *ListingUseCase) Venues(ctx context.Context, f domain.VenueFilters) ([]domain.Venue, error) {
	venues, err := uc.api.ListVenues(ctx)
	if err != nil {
		return nil, err
	}
	return domain.FilterVenues(venues, f), nil
}

// ArchivedUsers возвращает страницу архивных пользователей.
func (uc *ListingUseCase) ArchivedUsers(ctx context.Context, page, limit int) (*domain.ArchivedUsersResult, error) {
	page, limit = pageDefaults(page, limit)
	res, err := uc.api.ArchivedUsers(ctx, page, limit)
	if err != nil {
		return nil, err
	}
	return &domain.ArchivedUsersResult{Users: res.Users, Page: domain.Paginate(res.Total, page, limit)}, nil
}

// ArchivedPosts возвращает страницу архивных публикаций.
func (uc *ListingUseCase) ArchivedPosts(ctx context.Context, page, limit int) (*domain.ArchivedPostsResult, error) {
	page, limit = pageDefaults(page, limit)
	res, err := uc.api.ArchivedPosts(ctx, page, limit)
	if err != nil {
		return nil, err
	}
	return &domain.ArchivedPostsResult{Posts: res.Posts, Page: domain.Paginate(res.Total, page, limit)}, nil
}

// RestoreUser восстанавливает пользователя и перечитывает архив.
func (uc *ListingUseCase) RestoreUser(ctx context.Context, userID string, page, limit int) (*domain.ArchivedUsersResult, error) {
	if err := uc.api.RestoreUser(ctx, userID); err != nil {
		return nil, err
	}
	uc.logger.WithField("user_id", userID).Info("User restored from archive")
	return uc.ArchivedUsers(ctx, page, limit)
}

// RestorePost восстанавливает публикацию и перечитывает архив.
func (uc *ListingUseCase) RestorePost(ctx context.Context, postID string, page, limit int) (*domain.ArchivedPostsResult, error) {
	if err := uc.api.RestorePost(ctx, postID); err != nil {
		return nil, err
	}
	uc.logger.WithField("post_id", postID).Info("Post restored from archive")
	return uc.ArchivedPosts(ctx, page, limit)
}

// DeletePost окончательно удаляет публикацию и перечитывает архив.
func (uc *ListingUseCase) DeletePost(ctx context.Context, postID string, page, limit int) (*domain.ArchivedPostsResult, error) {
	if err := uc.api.DeletePost(ctx, postID); err != nil {
		return nil, err
	}
	uc.logger.WithField("post_id", postID).Info("Post deleted permanently")
	return uc.ArchivedPosts(ctx, page, limit)
}

func pageDefaults(page, limit int) (int, int) {
	f, _ := domain.ListFilters{Page: page, Limit: limit}.Normalize()
	return f.Page, f.Limit
}
