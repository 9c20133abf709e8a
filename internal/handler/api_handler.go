package handler

import (
	"bands-console/internal/domain"

	"github.com/labstack/echo/v4"
	"github.com/sirupsen/logrus"
)

type APIHandler struct {
	*WizardHandler
	*EditorHandler
	*ListingHandler
	*CatalogHandler
	*NewsletterHandler
}

func NewAPIHandler(
	creationUseCase domain.CreationUseCase,
	editorUseCase domain.EditorUseCase,
	listingUseCase domain.ListingUseCase,
	catalogUseCase domain.CatalogUseCase,
	newsletterUseCase domain.NewsletterUseCase,
	logger *logrus.Logger,
) *APIHandler {

	return &APIHandler{
		WizardHandler:     NewWizardHandler(creationUseCase, logger),
		EditorHandler:     NewEditorHandler(editorUseCase, logger),
		ListingHandler:    NewListingHandler(listingUseCase, logger),
		CatalogHandler:    NewCatalogHandler(catalogUseCase, logger),
		NewsletterHandler: NewNewsletterHandler(newsletterUseCase, logger),
	}
}

// RegisterHandlers регистрирует маршруты консоли.
func RegisterHandlers(e *echo.Echo, h *APIHandler) {
	console := e.Group("/console", CredentialsMiddleware())

	wizards := console.Group("/wizards")
	wizards.POST("", h.StartWizard)
	wizards.GET("/:id", h.GetWizard)
	wizards.DELETE("/:id", h.CancelWizard)
	wizards.POST("/:id/actions", h.ApplyWizardAction)
	wizards.POST("/:id/next", h.NextStep)
	wizards.POST("/:id/back", h.PreviousStep)
	wizards.POST("/:id/photo", h.AttachWizardPhoto)
	wizards.POST("/:id/submit", h.SubmitWizard)

	console.POST("/users/:userId/edit", h.OpenEditor)
	sessions := console.Group("/edit-sessions")
	sessions.GET("/:id", h.GetEditSession)
	sessions.POST("/:id/actions", h.ApplyEditAction)
	sessions.POST("/:id/photo", h.AttachEditPhoto)
	sessions.POST("/:id/save", h.SaveEditSession)
	sessions.POST("/:id/delete", h.DeleteUser)
	sessions.POST("/:id/archive", h.ArchiveUser)
	sessions.POST("/:id/restore", h.RestoreUser)
	sessions.POST("/:id/reset-password", h.ResetPassword)
	sessions.GET("/:id/tabs/:tab", h.GetTab)
	sessions.GET("/:id/permissions", h.GetPermissions)
	sessions.GET("/:id/profile-link", h.GetProfileLink)

	console.GET("/users", h.ListUsers)
	console.GET("/events", h.ListEvents)
	console.GET("/venues", h.ListVenues)
	console.GET("/archive/users", h.ListArchivedUsers)
	console.POST("/archive/users/:id/restore", h.RestoreArchivedUser)
	console.GET("/archive/posts", h.ListArchivedPosts)
	console.POST("/archive/posts/:id/restore", h.RestoreArchivedPost)
	console.DELETE("/archive/posts/:id", h.DeleteArchivedPost)

	console.GET("/catalog/roles", h.GetRoles)
	console.GET("/catalog/instruments", h.GetInstruments)
	console.GET("/catalog/badges", h.GetBadges)

	console.POST("/newsletter", h.Subscribe)
}
