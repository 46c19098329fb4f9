package api

import (
	"net/http"
	"sync"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"gymzen/gymlog-app/internal/domain"
	"gymzen/gymlog-app/internal/program"
	"gymzen/gymlog-app/internal/service"
)

// BootstrapHandler serves the single payload a client needs on startup:
// profile, templates, history and catalog, fetched concurrently. A failed
// fetch degrades to a usable fallback instead of failing the whole load.
type BootstrapHandler struct {
	profileService  service.ProfileService
	templateService service.TemplateService
	workoutService  service.WorkoutService
	catalogService  service.CatalogService
	logger          *logrus.Logger
}

// NewBootstrapHandler creates a new BootstrapHandler.
func NewBootstrapHandler(
	profileService service.ProfileService,
	templateService service.TemplateService,
	workoutService service.WorkoutService,
	catalogService service.CatalogService,
	logger *logrus.Logger,
) *BootstrapHandler {
	return &BootstrapHandler{
		profileService:  profileService,
		templateService: templateService,
		workoutService:  workoutService,
		catalogService:  catalogService,
		logger:          logger,
	}
}

type BootstrapResponse struct {
	Profile   *domain.Profile            `json:"profile"`
	Templates []domain.Template          `json:"templates"`
	History   []domain.WorkoutSession    `json:"history"`
	Catalog   []domain.CatalogEntry      `json:"catalog"`
	Active    *service.ActiveSessionView `json:"activeSession,omitempty"`
}

// Bootstrap loads everything the client needs to render its first screen.
func (h *BootstrapHandler) Bootstrap(c *gin.Context) {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		abortWithError(c, http.StatusInternalServerError, "Failed to identify user")
		return
	}
	ctx := c.Request.Context()

	var resp BootstrapResponse
	var wg sync.WaitGroup
	wg.Add(4)

	go func() {
		defer wg.Done()
		profile, err := h.profileService.GetProfile(ctx, userID)
		if err != nil {
			h.logger.WithError(err).Warn("bootstrap: profile load failed, using default")
			profile = domain.DefaultProfile(userID)
		}
		resp.Profile = profile
	}()

	go func() {
		defer wg.Done()
		templates, err := h.templateService.GetTemplates(ctx, userID)
		if err != nil {
			h.logger.WithError(err).Warn("bootstrap: template load failed, serving default only")
			templates = []domain.Template{program.DefaultTemplate()}
		}
		resp.Templates = templates
	}()

	go func() {
		defer wg.Done()
		history, err := h.workoutService.GetHistory(ctx, userID)
		if err != nil {
			h.logger.WithError(err).Warn("bootstrap: history load failed, serving empty history")
			history = nil
		}
		if history == nil {
			history = []domain.WorkoutSession{}
		}
		resp.History = history
	}()

	go func() {
		defer wg.Done()
		catalog, err := h.catalogService.GetCatalog(ctx)
		if err != nil {
			h.logger.WithError(err).Warn("bootstrap: catalog load failed, serving built-in entries")
			catalog = program.BuiltinCatalog()
		}
		resp.Catalog = catalog
	}()

	wg.Wait()

	if view, err := h.workoutService.ActiveSession(userID); err == nil {
		resp.Active = view
	}

	c.JSON(http.StatusOK, resp)
}
