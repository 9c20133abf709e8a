package usecase

import (
	"context"
	"time"

	"bands-console/internal/domain"

	"github.com/go-playground/validator/v10"
	"github.com/sirupsen/logrus"
)

// SubscriptionWindow: повторная подписка того же email в этом окне отклоняется.
const SubscriptionWindow = 30 * 24 * time.Hour

// NewsletterUseCase реализует подписку на рассылку с защитой от повторов.
type NewsletterUseCase struct {
	api      domain.AdminAPI
	repo     domain.NewsletterRepository
	validate *validator.Validate
	logger   *logrus.Logger
	now      func() time.Time
}

// NewNewsletterUseCase создает новый экземпляр NewsletterUseCase.
func NewNewsletterUseCase(api domain.AdminAPI, repo domain.NewsletterRepository, logger *logrus.Logger) domain.NewsletterUseCase {
	return &NewsletterUseCase{
		api:      api,
		repo:     repo,
		validate: validator.New(),
		logger:   logger,
		now:      time.Now,
	}
}

// Subscribe подписывает email, если он не подписывался последние 30 дней.
func (uc *NewsletterUseCase) Subscribe(ctx context.Context, email string) error {
	email = domain.NormalizeEmail(email)
	if err := uc.validate.Var(email, "required,email"); err != nil {
		return domain.ErrInvalidEmail
	}

	last, found, err := uc.repo.LastSubscribedAt(ctx, email)
	if err != nil {
		return err
	}
	now := uc.now()
	if found && now.Sub(last) < SubscriptionWindow {
		return domain.ErrAlreadySubscribed
	}

	if err := uc.api.SubscribeNewsletter(ctx, email); err != nil {
		return err
	}
	if err := uc.repo.RecordSubscription(ctx, email, now); err != nil {
		uc.logger.WithError(err).Warn("Failed to record newsletter subscription")
	}
	return nil
}
