package usecase

import (
	"context"
	"time"

	"bands-console/internal/domain"

	"github.com/sirupsen/logrus"
)

// DraftPurger удаляет брошенные мастера и сессии редактирования.
type DraftPurger struct {
	drafts   domain.DraftRepository
	ttl      time.Duration
	interval time.Duration
	logger   *logrus.Logger
	now      func() time.Time
}

// NewDraftPurger создает новый экземпляр DraftPurger.
func NewDraftPurger(drafts domain.DraftRepository, ttl, interval time.Duration, logger *logrus.Logger) *DraftPurger {
	return &DraftPurger{
		drafts:   drafts,
		ttl:      ttl,
		interval: interval,
		logger:   logger,
		now:      time.Now,
	}
}

// PurgeOnce удаляет черновики, не обновлявшиеся дольше ttl.
func (p *DraftPurger) PurgeOnce(ctx context.Context) (int64, error) {
	removed, err := p.drafts.PurgeOlderThan(ctx, p.now().Add(-p.ttl))
	if err != nil {
		return 0, err
	}
	if removed > 0 {
		p.logger.WithField("removed", removed).Info("Stale drafts purged")
	}
	return removed, nil
}

// Run чистит черновики каждые interval до отмены ctx.
func (p *DraftPurger) Run(ctx context.Context) {
	if p.interval <= 0 {
		return
	}
	ticker := time.NewTicker(p.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if _, err := p.PurgeOnce(ctx); err != nil && ctx.Err() == nil {
				p.logger.WithError(err).Warn("Failed to purge drafts")
			}
		}
	}
}
