package usecase

import (
	"context"
	"fmt"
	"time"

	"bands-console/internal/domain"

	"github.com/sirupsen/logrus"
)

// CreationUseCase реализует мастер создания пользователя.
// Состояние мастера хранится черновиком в DraftRepository.
type CreationUseCase struct {
	api     domain.AdminAPI
	drafts  domain.DraftRepository
	catalog domain.CatalogUseCase
	logger  *logrus.Logger
	now     func() time.Time
}

// NewCreationUseCase создает новый экземпляр CreationUseCase.
func NewCreationUseCase(
	api domain.AdminAPI,
	drafts domain.DraftRepository,
	catalog domain.CatalogUseCase,
	logger *logrus.Logger,
) domain.CreationUseCase {
	return &CreationUseCase{
		api:     api,
		drafts:  drafts,
		catalog: catalog,
		logger:  logger,
		now:     time.Now,
	}
}

// Start открывает новый мастер с временным паролем и свежими справочниками.
func (uc *CreationUseCase) Start(ctx context.Context) (*domain.Wizard, error) {
	catalog, err := loadCatalog(ctx, uc.catalog)
	if err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	password, err := domain.GenerateTemporaryPassword()
	if err != nil {
		return nil, err
	}

	w := domain.NewWizard(domain.NewID(), catalog, password, uc.now())
	if err := uc.drafts.SaveWizard(ctx, w); err != nil {
		return nil, err
	}
	return w, nil
}

// Get возвращает мастер по ID.
func (uc *CreationUseCase) Get(ctx context.Context, wizardID string) (*domain.Wizard, error) {
	return uc.drafts.GetWizard(ctx, wizardID)
}

// Apply применяет действие к форме мастера.
func (uc *CreationUseCase) Apply(ctx context.Context, wizardID string, action domain.Action) (*domain.Wizard, error) {
	return uc.update(ctx, wizardID, func(w *domain.Wizard) error {
		return w.Apply(action, uc.now())
	})
}

// Next переходит на следующий шаг; с шага 1 только при заполненных обязательных полях.
func (uc *CreationUseCase) Next(ctx context.Context, wizardID string) (*domain.Wizard, error) {
	return uc.update(ctx, wizardID, func(w *domain.Wizard) error {
		return w.Next(uc.now())
	})
}

// Back возвращается на предыдущий шаг.
func (uc *CreationUseCase) Back(ctx context.Context, wizardID string) (*domain.Wizard, error) {
	return uc.update(ctx, wizardID, func(w *domain.Wizard) error {
		w.Back(uc.now())
		return nil
	})
}

// AttachPhoto проверяет фото и откладывает его загрузку до отправки формы.
func (uc *CreationUseCase) AttachPhoto(ctx context.Context, wizardID string, file domain.PhotoFile) (*domain.Wizard, error) {
	photo, err := inspectPhoto(file)
	if err != nil {
		return nil, err
	}
	return uc.update(ctx, wizardID, func(w *domain.Wizard) error {
		w.AttachPhoto(photo, uc.now())
		return nil
	})
}

// Cancel закрывает мастер без создания пользователя.
func (uc *CreationUseCase) Cancel(ctx context.Context, wizardID string) error {
	if _, err := uc.drafts.GetWizard(ctx, wizardID); err != nil {
		return err
	}
	return uc.drafts.DeleteDraft(ctx, wizardID)
}

// Submit создаёт пользователя.
// Ошибка загрузки фото прерывает создание; черновик сохраняется для повторной попытки.
func (uc *CreationUseCase) Submit(ctx context.Context, wizardID string) (*domain.CreationResult, error) {
	w, err := uc.drafts.GetWizard(ctx, wizardID)
	if err != nil {
		return nil, err
	}
	if err := w.ReadyToSubmit(); err != nil {
		return nil, err
	}

	logEntry := uc.logger.WithField("wizard_id", w.ID)

	if w.PendingPhoto != nil {
		url, err := uc.api.UploadPhoto(ctx, *w.PendingPhoto)
		if err != nil {
			if ctxErr := ctx.Err(); ctxErr != nil {
				return nil, ctxErr
			}
			logEntry.WithError(err).Warn("Photo upload failed, user not created")
			return nil, fmt.Errorf("%w: %v", domain.ErrPhotoUploadFailed, err)
		}
		if err := w.Apply(domain.SetPhoto{URL: url}, uc.now()); err != nil {
			return nil, err
		}
		w.PendingPhoto = nil
		if err := uc.drafts.SaveWizard(context.WithoutCancel(ctx), w); err != nil {
			logEntry.WithError(err).Warn("Failed to remember uploaded photo")
		}
	}

	payload, err := domain.BuildCreatePayload(w.Form, w.Form.Avatar)
	if err != nil {
		return nil, err
	}

	user, err := uc.api.CreateUser(ctx, payload)
	if err != nil {
		logEntry.WithError(err).Warn("User creation rejected")
		return nil, err
	}

	// Пользователь уже создан: черновик удаляем даже если клиент ушёл.
	if err := uc.drafts.DeleteDraft(context.WithoutCancel(ctx), w.ID); err != nil {
		logEntry.WithError(err).Warn("Failed to delete wizard draft")
	}

	logEntry.WithField("user_id", user.ID).Info("User created")
	return &domain.CreationResult{User: user, TemporaryPassword: w.Form.TemporaryPassword}, nil
}

// update загружает мастер, применяет изменение и сохраняет его.
// Если запрос отменён, результат не записывается.
func (uc *CreationUseCase) update(ctx context.Context, wizardID string, change func(w *domain.Wizard) error) (*domain.Wizard, error) {
	w, err := uc.drafts.GetWizard(ctx, wizardID)
	if err != nil {
		return nil, err
	}
	if err := change(w); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if err := uc.drafts.SaveWizard(ctx, w); err != nil {
		return nil, err
	}
	return w, nil
}
