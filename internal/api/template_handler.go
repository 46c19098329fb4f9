package api

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"gymzen/gymlog-app/internal/domain"
	"gymzen/gymlog-app/internal/service"
)

// TemplateHandler exposes training template management.
type TemplateHandler struct {
	templateService service.TemplateService
	catalogService  service.CatalogService
}

// NewTemplateHandler creates a new TemplateHandler.
func NewTemplateHandler(templateService service.TemplateService, catalogService service.CatalogService) *TemplateHandler {
	return &TemplateHandler{
		templateService: templateService,
		catalogService:  catalogService,
	}
}

type TemplateRequest struct {
	Name string               `json:"name" binding:"required"`
	Days []domain.TemplateDay `json:"days" binding:"required"`
}

func templateErrorStatus(err error) int {
	switch {
	case errors.Is(err, service.ErrInvalidTemplate):
		return http.StatusBadRequest
	case errors.Is(err, service.ErrDefaultTemplate):
		return http.StatusForbidden
	case errors.Is(err, service.ErrTemplateNotFound):
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}

// GetTemplates lists the default template followed by the user's own.
func (h *TemplateHandler) GetTemplates(c *gin.Context) {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		abortWithError(c, http.StatusInternalServerError, "Failed to identify user")
		return
	}
	templates, err := h.templateService.GetTemplates(c.Request.Context(), userID)
	if err != nil {
		abortWithError(c, http.StatusInternalServerError, "Failed to load templates")
		return
	}
	c.JSON(http.StatusOK, templates)
}

// CreateTemplate saves a new custom template.
func (h *TemplateHandler) CreateTemplate(c *gin.Context) {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		abortWithError(c, http.StatusInternalServerError, "Failed to identify user")
		return
	}
	var req TemplateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, fmt.Sprintf("Validation error: %v", err))
		return
	}

	template, err := h.templateService.CreateTemplate(c.Request.Context(), userID, req.Name, req.Days)
	if err != nil {
		abortWithError(c, templateErrorStatus(err), err.Error())
		return
	}
	c.JSON(http.StatusCreated, template)
}

// UpdateTemplate overwrites a custom template.
func (h *TemplateHandler) UpdateTemplate(c *gin.Context) {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		abortWithError(c, http.StatusInternalServerError, "Failed to identify user")
		return
	}
	var req TemplateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, fmt.Sprintf("Validation error: %v", err))
		return
	}

	err = h.templateService.UpdateTemplate(c.Request.Context(), userID, c.Param("id"), req.Name, req.Days)
	if err != nil {
		abortWithError(c, templateErrorStatus(err), err.Error())
		return
	}
	c.Status(http.StatusNoContent)
}

// DeleteTemplate removes a custom template.
func (h *TemplateHandler) DeleteTemplate(c *gin.Context) {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		abortWithError(c, http.StatusInternalServerError, "Failed to identify user")
		return
	}
	err = h.templateService.DeleteTemplate(c.Request.Context(), userID, c.Param("id"))
	if err != nil {
		abortWithError(c, templateErrorStatus(err), err.Error())
		return
	}
	c.Status(http.StatusNoContent)
}

// GetCatalog returns the shared exercise catalog for the template editor.
func (h *TemplateHandler) GetCatalog(c *gin.Context) {
	entries, err := h.catalogService.GetCatalog(c.Request.Context())
	if err != nil {
		abortWithError(c, http.StatusInternalServerError, "Failed to load exercise catalog")
		return
	}
	c.JSON(http.StatusOK, entries)
}
