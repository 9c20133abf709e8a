package domain

import (
	"context"
	"time"
)

// DraftRepository определяет контракт хранилища черновиков консоли
// (мастера создания и сессии редактирования).
type DraftRepository interface {
	SaveWizard(ctx context.Context, w *Wizard) error
	GetWizard(ctx context.Context, wizardID string) (*Wizard, error)
	SaveEditSession(ctx context.Context, s *EditSession) error
	GetEditSession(ctx context.Context, sessionID string) (*EditSession, error)
	DeleteDraft(ctx context.Context, draftID string) error
	PurgeOlderThan(ctx context.Context, before time.Time) (int64, error)
}

// NewsletterRepository определяет контракт хранилища подписок на рассылку.
type NewsletterRepository interface {
	LastSubscribedAt(ctx context.Context, email string) (time.Time, bool, error)
	RecordSubscription(ctx context.Context, email string, at time.Time) error
}
