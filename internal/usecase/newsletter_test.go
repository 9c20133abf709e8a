package usecase_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"bands-console/internal/domain"
	"bands-console/internal/mocks"
	"bands-console/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestNewsletterUseCase_Subscribe(t *testing.T) {
	ctx := context.Background()
	api := &mocks.AdminAPI{}
	repo := &mocks.NewsletterRepository{}
	uc := usecase.NewNewsletterUseCase(api, repo, testLogger())

	repo.On("LastSubscribedAt", ctx, "fan@isep.fr").Return(time.Time{}, false, nil)
	api.On("SubscribeNewsletter", ctx, "fan@isep.fr").Return(nil)
	repo.On("RecordSubscription", ctx, "fan@isep.fr", mock.AnythingOfType("time.Time")).Return(nil)

	err := uc.Subscribe(ctx, "  Fan@ISEP.fr ")

	assert.NoError(t, err)
	api.AssertExpectations(t)
	repo.AssertExpectations(t)
}

func TestNewsletterUseCase_Subscribe_InvalidEmail(t *testing.T) {
	for _, email := range []string{"", "   ", "not-an-email", "fan@"} {
		t.Run(email, func(t *testing.T) {
			api := &mocks.AdminAPI{}
			repo := &mocks.NewsletterRepository{}
			uc := usecase.NewNewsletterUseCase(api, repo, testLogger())

			err := uc.Subscribe(context.Background(), email)

			assert.ErrorIs(t, err, domain.ErrInvalidEmail)
			api.AssertNotCalled(t, "SubscribeNewsletter", mock.Anything, mock.Anything)
		})
	}
}

func TestNewsletterUseCase_Subscribe_RecentlySubscribed(t *testing.T) {
	ctx := context.Background()
	api := &mocks.AdminAPI{}
	repo := &mocks.NewsletterRepository{}
	uc := usecase.NewNewsletterUseCase(api, repo, testLogger())

	repo.On("LastSubscribedAt", ctx, "fan@isep.fr").Return(time.Now().Add(-48*time.Hour), true, nil)

	err := uc.Subscribe(ctx, "fan@isep.fr")

	assert.ErrorIs(t, err, domain.ErrAlreadySubscribed)
	api.AssertNotCalled(t, "SubscribeNewsletter", mock.Anything, mock.Anything)
}

func TestNewsletterUseCase_Subscribe_AfterWindow(t *testing.T) {
	ctx := context.Background()
	api := &mocks.AdminAPI{}
	repo := &mocks.NewsletterRepository{}
	uc := usecase.NewNewsletterUseCase(api, repo, testLogger())

	repo.On("LastSubscribedAt", ctx, "fan@isep.fr").Return(time.Now().Add(-usecase.SubscriptionWindow-time.Hour), true, nil)
	api.On("SubscribeNewsletter", ctx, "fan@isep.fr").Return(nil)
	repo.On("RecordSubscription", ctx, "fan@isep.fr", mock.Anything).Return(errors.New("db down"))

	err := uc.Subscribe(ctx, "fan@isep.fr")

	assert.NoError(t, err)
}

func TestNewsletterUseCase_Subscribe_UpstreamFailure(t *testing.T) {
	ctx := context.Background()
	api := &mocks.AdminAPI{}
	repo := &mocks.NewsletterRepository{}
	uc := usecase.NewNewsletterUseCase(api, repo, testLogger())

	repo.On("LastSubscribedAt", ctx, "fan@isep.fr").Return(time.Time{}, false, nil)
	api.On("SubscribeNewsletter", ctx, "fan@isep.fr").Return(&domain.UpstreamError{Status: 502, Message: "bad gateway"})

	err := uc.Subscribe(ctx, "fan@isep.fr")

	var upstreamErr *domain.UpstreamError
	assert.ErrorAs(t, err, &upstreamErr)
	repo.AssertNotCalled(t, "RecordSubscription", mock.Anything, mock.Anything, mock.Anything)
}
