package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"bands-console/internal/database"
	"bands-console/internal/domain"
)

// NewsletterRepository хранит время последней подписки по email.
type NewsletterRepository struct {
	db      *sql.DB
	queries *database.Queries
}

// NewNewsletterRepository создает новый экземпляр NewsletterRepository.
func NewNewsletterRepository(db *sql.DB, queries *database.Queries) domain.NewsletterRepository {
	return &NewsletterRepository{
		db:      db,
		queries: queries,
	}
}

// LastSubscribedAt возвращает время последней подписки; found == false, если её не было.
func (r *NewsletterRepository) LastSubscribedAt(ctx context.Context, email string) (time.Time, bool, error) {
	at, err := r.queries.GetSubscription(ctx, email)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return time.Time{}, false, nil
		}
		return time.Time{}, false, fmt.Errorf("failed to get subscription: %w", err)
	}
	return at, true, nil
}

// RecordSubscription запоминает подписку.
func (r *NewsletterRepository) RecordSubscription(ctx context.Context, email string, at time.Time) error {
	err := r.queries.UpsertSubscription(ctx, database.UpsertSubscriptionParams{Email: email, SubscribedAt: at})
	if err != nil {
		return fmt.Errorf("failed to record subscription: %w", err)
	}
	return nil
}
