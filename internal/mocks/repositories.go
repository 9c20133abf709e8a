package mocks

import (
	"context"
	"time"

	"bands-console/internal/domain"

	"github.com/stretchr/testify/mock"
)

// DraftRepository: мок domain.DraftRepository.
type DraftRepository struct {
	mock.Mock
}

func (m *DraftRepository) SaveWizard(ctx context.Context, w *domain.Wizard) error {
	return m.Called(ctx, w).Error(0)
}

func (m *DraftRepository) GetWizard(ctx context.Context, wizardID string) (*domain.Wizard, error) {
	args := m.Called(ctx, wizardID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Wizard), args.Error(1)
}

func (m *DraftRepository) SaveEditSession(ctx context.Context, s *domain.EditSession) error {
	return m.Called(ctx, s).Error(0)
}

func (m *DraftRepository) GetEditSession(ctx context.Context, sessionID string) (*domain.EditSession, error) {
	args := m.Called(ctx, sessionID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.EditSession), args.Error(1)
}

func (m *DraftRepository) DeleteDraft(ctx context.Context, draftID string) error {
	return m.Called(ctx, draftID).Error(0)
}

func (m *DraftRepository) PurgeOlderThan(ctx context.Context, before time.Time) (int64, error) {
	args := m.Called(ctx, before)
	return args.Get(0).(int64), args.Error(1)
}

// NewsletterRepository: мок domain.NewsletterRepository.
type NewsletterRepository struct {
	mock.Mock
}

func (m *NewsletterRepository) LastSubscribedAt(ctx context.Context, email string) (time.Time, bool, error) {
	args := m.Called(ctx, email)
	return args.Get(0).(time.Time), args.Bool(1), args.Error(2)
}

func (m *NewsletterRepository) RecordSubscription(ctx context.Context, email string, at time.Time) error {
	return m.Called(ctx, email, at).Error(0)
}
