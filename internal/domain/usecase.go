package domain

import "context"

// CreationResult: результат мастера создания.
type CreationResult struct {
	User              *User  `json:"user"`
	TemporaryPassword string `json:"temporaryPassword"`
}

// SaveResult: результат сохранения сессии редактирования.
type SaveResult struct {
	Session      *EditSession `json:"session"`
	PhotoWarning string       `json:"photoWarning,omitempty"`
}

// ActionResult: результат разрушительного действия над пользователем.
type ActionResult struct {
	Redirect string       `json:"redirect,omitempty"`
	Session  *EditSession `json:"session,omitempty"`
}

// UserListResult: секции списка пользователей.
type UserListResult struct {
	Sections []UserSection `json:"sections"`
	Page     PageInfo      `json:"page"`
	Filters  ListFilters   `json:"filters"`
}

// ArchivedUsersResult: архивные пользователи.
type ArchivedUsersResult struct {
	Users []UserSummary `json:"users"`
	Page  PageInfo      `json:"page"`
}

// ArchivedPostsResult: архивные публикации.
type ArchivedPostsResult struct {
	Posts []ArchivedPost `json:"posts"`
	Page  PageInfo       `json:"page"`
}

// InstrumentsTabView: вкладка инструментов редактора.
type InstrumentsTabView struct {
	Instruments InstrumentList         `json:"instruments"`
	Catalog     []InstrumentDefinition `json:"catalog"`
}

// BadgesTabView: вкладка бейджей: назначенные и ещё доступные системные бейджи.
type BadgesTabView struct {
	Assigned  BadgeList         `json:"assigned"`
	Available []BadgeDefinition `json:"available"`
}

// CreationUseCase определяет логику мастера создания пользователя.
type CreationUseCase interface {
	Start(ctx context.Context) (*Wizard, error)
	Get(ctx context.Context, wizardID string) (*Wizard, error)
	Apply(ctx context.Context, wizardID string, action Action) (*Wizard, error)
	Next(ctx context.Context, wizardID string) (*Wizard, error)
	Back(ctx context.Context, wizardID string) (*Wizard, error)
	AttachPhoto(ctx context.Context, wizardID string, file PhotoFile) (*Wizard, error)
	Cancel(ctx context.Context, wizardID string) error
	Submit(ctx context.Context, wizardID string) (*CreationResult, error)
}

// EditorUseCase определяет логику редактора пользователя.
type EditorUseCase interface {
	Open(ctx context.Context, userID string) (*EditSession, error)
	Get(ctx context.Context, sessionID string) (*EditSession, error)
	Apply(ctx context.Context, sessionID string, action Action) (*EditSession, error)
	AttachPhoto(ctx context.Context, sessionID string, file PhotoFile) (*EditSession, error)
	Permissions(ctx context.Context, sessionID string) ([]RoleOption, error)
	Tab(ctx context.Context, sessionID string, tab EditTab) (any, error)
	Save(ctx context.Context, sessionID string) (*SaveResult, error)
	Delete(ctx context.Context, sessionID string, confirm bool) (*ActionResult, error)
	Archive(ctx context.Context, sessionID string, confirm bool) (*ActionResult, error)
	Restore(ctx context.Context, sessionID string, confirm bool) (*ActionResult, error)
	ResetPassword(ctx context.Context, sessionID string, confirm bool) (*ActionResult, error)
	ViewProfile(ctx context.Context, sessionID string, confirmDiscard bool) (string, error)
}

// CatalogUseCase определяет доступ к справочникам.
type CatalogUseCase interface {
	Roles(ctx context.Context) ([]RoleSnapshot, error)
	Instruments(ctx context.Context) ([]InstrumentDefinition, error)
	Badges(ctx context.Context) ([]BadgeDefinition, error)
}

// ListingUseCase определяет логику списков и архива.
type ListingUseCase interface {
	Users(ctx context.Context, filters ListFilters) (*UserListResult, error)
	Events(ctx context.Context, q EventQuery) (*EventBuckets, error)
	Venues(ctx context.Context, f VenueFilters) ([]Venue, error)
	ArchivedUsers(ctx context.Context, page, limit int) (*ArchivedUsersResult, error)
	ArchivedPosts(ctx context.Context, page, limit int) (*ArchivedPostsResult, error)
	RestoreUser(ctx context.Context, userID string, page, limit int) (*ArchivedUsersResult, error)
	RestorePost(ctx context.Context, postID string, page, limit int) (*ArchivedPostsResult, error)
	DeletePost(ctx context.Context, postID string, page, limit int) (*ArchivedPostsResult, error)
}

// NewsletterUseCase определяет подписку на рассылку.
type NewsletterUseCase interface {
	Subscribe(ctx context.Context, email string) error
}
