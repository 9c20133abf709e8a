package usecase

import (
	"context"
	"time"

	"bands-console/internal/domain"

	"github.com/sirupsen/logrus"
)

// UsersListPath: куда консоль уходит после удаления пользователя.
const UsersListPath = "/admin/users"

// PhotoWarning: сообщение, если фото не удалось загрузить при сохранении.
const PhotoWarning = "photo upload failed, profile saved without the new photo"

// EditorUseCase реализует редактор существующего пользователя.
type EditorUseCase struct {
	api     domain.AdminAPI
	drafts  domain.DraftRepository
	catalog domain.CatalogUseCase
	logger  *logrus.Logger
	now     func() time.Time
}

// NewEditorUseCase создает новый экземпляр EditorUseCase.
func NewEditorUseCase(
	api domain.AdminAPI,
	drafts domain.DraftRepository,
	catalog domain.CatalogUseCase,
	logger *logrus.Logger,
) domain.EditorUseCase {
	return &EditorUseCase{
		api:     api,
		drafts:  drafts,
		catalog: catalog,
		logger:  logger,
		now:     time.Now,
	}
}

// Open загружает пользователя, справочники и текущую сессию и открывает сессию редактирования.
func (uc *EditorUseCase) Open(ctx context.Context, userID string) (*domain.EditSession, error) {
	user, err := uc.api.GetUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	session, err := uc.api.CurrentSession(ctx)
	if err != nil {
		return nil, err
	}
	catalog, err := loadCatalog(ctx, uc.catalog)
	if err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	s := domain.NewEditSession(domain.NewID(), *user, session.UserID, catalog, uc.now())
	if err := uc.drafts.SaveEditSession(ctx, s); err != nil {
		return nil, err
	}
	return s, nil
}

// Get возвращает сессию редактирования.
func (uc *EditorUseCase) Get(ctx context.Context, sessionID string) (*domain.EditSession, error) {
	return uc.drafts.GetEditSession(ctx, sessionID)
}

// Apply применяет действие к рабочей копии.
func (uc *EditorUseCase) Apply(ctx context.Context, sessionID string, action domain.Action) (*domain.EditSession, error) {
	return uc.update(ctx, sessionID, func(s *domain.EditSession) error {
		return s.Apply(action, uc.now())
	})
}

// AttachPhoto проверяет фото и откладывает загрузку до сохранения.
func (uc *EditorUseCase) AttachPhoto(ctx context.Context, sessionID string, file domain.PhotoFile) (*domain.EditSession, error) {
	photo, err := inspectPhoto(file)
	if err != nil {
		return nil, err
	}
	return uc.update(ctx, sessionID, func(s *domain.EditSession) error {
		s.AttachPhoto(photo, uc.now())
		return nil
	})
}

// Permissions обновляет счётчики ролей и возвращает их доступность для рабочей копии.
func (uc *EditorUseCase) Permissions(ctx context.Context, sessionID string) ([]domain.RoleOption, error) {
	s, err := uc.drafts.GetEditSession(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	roles, err := uc.catalog.Roles(ctx)
	if err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	s.Catalog.Roles = roles
	if err := uc.drafts.SaveEditSession(ctx, s); err != nil {
		return nil, err
	}
	return s.RoleOptions(), nil
}

// Tab возвращает данные вкладки редактора.
func (uc *EditorUseCase) Tab(ctx context.Context, sessionID string, tab domain.EditTab) (any, error) {
	if tab == domain.TabPermissions {
		return uc.Permissions(ctx, sessionID)
	}

	s, err := uc.drafts.GetEditSession(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	switch tab {
	case domain.TabMain:
		return s.Current, nil
	case domain.TabInstruments:
		catalog, err := uc.catalog.Instruments(ctx)
		if err != nil {
			return nil, err
		}
		return domain.InstrumentsTabView{Instruments: s.Current.Instruments, Catalog: catalog}, nil
	case domain.TabBadges:
		available := make([]domain.BadgeDefinition, 0, len(s.Catalog.Badges))
		for _, def := range s.Catalog.Badges {
			if !s.Current.Badges.HasDefinition(def.ID) {
				available = append(available, def)
			}
		}
		return domain.BadgesTabView{Assigned: s.Current.Badges, Available: available}, nil
	case domain.TabGroups:
		return uc.api.UserGroups(ctx, s.UserID)
	case domain.TabEvents:
		return uc.api.UserEvents(ctx, s.UserID)
	case domain.TabActivity:
		return uc.api.UserActivity(ctx, s.UserID)
	}
	return nil, domain.ErrUnknownTab
}

// Save отправляет рабочую копию в API.
// Фото загружается по возможности: при ошибке профиль сохраняется без нового фото.
func (uc *EditorUseCase) Save(ctx context.Context, sessionID string) (*domain.SaveResult, error) {
	s, err := uc.drafts.GetEditSession(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	logEntry := uc.logger.WithFields(logrus.Fields{"session_id": s.ID, "user_id": s.UserID})
	result := &domain.SaveResult{}

	if s.PendingPhoto != nil {
		url, err := uc.api.UploadPhoto(ctx, *s.PendingPhoto)
		switch {
		case ctx.Err() != nil:
			return nil, ctx.Err()
		case err != nil:
			logEntry.WithError(err).Warn("Photo upload failed, saving without it")
			result.PhotoWarning = PhotoWarning
		default:
			// Фото уже в хранилище: повторное сохранение не загружает его снова.
			s.Current.Avatar = &url
			s.PendingPhoto = nil
			if err := uc.drafts.SaveEditSession(context.WithoutCancel(ctx), s); err != nil {
				logEntry.WithError(err).Warn("Failed to remember uploaded photo")
			}
		}
	}

	payload, err := domain.BuildUpdatePayload(s.Current.Profile)
	if err != nil {
		return nil, err
	}
	user, err := uc.api.UpdateUser(ctx, s.UserID, payload)
	if err != nil {
		logEntry.WithError(err).Warn("Save rejected")
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	s.Saved(*user, uc.now())
	if err := uc.drafts.SaveEditSession(ctx, s); err != nil {
		return nil, err
	}

	logEntry.Info("User saved")
	result.Session = s
	return result, nil
}

// Delete удаляет пользователя и закрывает сессию.
func (uc *EditorUseCase) Delete(ctx context.Context, sessionID string, confirm bool) (*domain.ActionResult, error) {
	s, err := uc.guard(ctx, sessionID, confirm, func(a domain.AllowedActions) bool { return a.Delete })
	if err != nil {
		return nil, err
	}
	if err := uc.api.DeleteUser(ctx, s.UserID); err != nil {
		return nil, err
	}
	if err := uc.drafts.DeleteDraft(context.WithoutCancel(ctx), s.ID); err != nil {
		uc.logger.WithError(err).WithField("session_id", s.ID).Warn("Failed to delete edit session")
	}
	uc.logger.WithField("user_id", s.UserID).Info("User deleted")
	return &domain.ActionResult{Redirect: UsersListPath}, nil
}

// Archive переводит пользователя в архив и перечитывает его.
func (uc *EditorUseCase) Archive(ctx context.Context, sessionID string, confirm bool) (*domain.ActionResult, error) {
	s, err := uc.guard(ctx, sessionID, confirm, func(a domain.AllowedActions) bool { return a.Archive })
	if err != nil {
		return nil, err
	}
	if err := uc.api.ArchiveUser(ctx, s.UserID); err != nil {
		return nil, err
	}
	return uc.refetch(ctx, s)
}

// Restore возвращает пользователя из архива и перечитывает его.
func (uc *EditorUseCase) Restore(ctx context.Context, sessionID string, confirm bool) (*domain.ActionResult, error) {
	s, err := uc.guard(ctx, sessionID, confirm, func(a domain.AllowedActions) bool { return a.Restore })
	if err != nil {
		return nil, err
	}
	if err := uc.api.RestoreUser(ctx, s.UserID); err != nil {
		return nil, err
	}
	return uc.refetch(ctx, s)
}

// ResetPassword отправляет пользователю письмо для сброса пароля.
func (uc *EditorUseCase) ResetPassword(ctx context.Context, sessionID string, confirm bool) (*domain.ActionResult, error) {
	s, err := uc.guard(ctx, sessionID, confirm, func(a domain.AllowedActions) bool { return a.ResetPassword })
	if err != nil {
		return nil, err
	}
	if err := uc.api.ResetPassword(ctx, s.UserID); err != nil {
		return nil, err
	}
	return &domain.ActionResult{Session: s}, nil
}

// ViewProfile возвращает путь публичного профиля, если нет несохранённых изменений
// или пользователь подтвердил их сброс.
func (uc *EditorUseCase) ViewProfile(ctx context.Context, sessionID string, confirmDiscard bool) (string, error) {
	s, err := uc.drafts.GetEditSession(ctx, sessionID)
	if err != nil {
		return "", err
	}
	wasDirty := s.Dirty
	path, err := s.ViewProfile(confirmDiscard, uc.now())
	if err != nil {
		return "", err
	}
	if wasDirty {
		if err := uc.drafts.SaveEditSession(ctx, s); err != nil {
			return "", err
		}
	}
	return path, nil
}

// guard проверяет подтверждение и доступность действия.
// Для собственного аккаунта удаление и архивирование запрещены.
func (uc *EditorUseCase) guard(
	ctx context.Context,
	sessionID string,
	confirm bool,
	allowed func(domain.AllowedActions) bool,
) (*domain.EditSession, error) {
	s, err := uc.drafts.GetEditSession(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if !confirm {
		return nil, domain.ErrConfirmationRequired
	}
	if !allowed(s.AllowedActions()) {
		if s.IsSelf() {
			return nil, domain.ErrSelfAction
		}
		return nil, domain.ErrActionNotAllowed
	}
	return s, nil
}

func (uc *EditorUseCase) refetch(ctx context.Context, s *domain.EditSession) (*domain.ActionResult, error) {
	user, err := uc.api.GetUser(ctx, s.UserID)
	if err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	s.Saved(*user, uc.now())
	if err := uc.drafts.SaveEditSession(ctx, s); err != nil {
		return nil, err
	}
	return &domain.ActionResult{Session: s}, nil
}

func (uc *EditorUseCase) update(ctx context.Context, sessionID string, change func(s *domain.EditSession) error) (*domain.EditSession, error) {
	s, err := uc.drafts.GetEditSession(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if err := change(s); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if err := uc.drafts.SaveEditSession(ctx, s); err != nil {
		return nil, err
	}
	return s, nil
}
