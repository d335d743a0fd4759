package resource

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"trackd/internal/application/resource/usecases"
	"trackd/internal/domain/resource"
	"trackd/internal/shared/errors"
	"trackd/internal/shared/logger"
	"trackd/internal/shared/utils"
)

// ComponentHandler handles component HTTP requests nested under a product.
type ComponentHandler struct {
	crud   usecases.ScopedCRUDExecutor[*resource.Component]
	logger logger.Interface
}

// NewComponentHandler creates a new component handler.
func NewComponentHandler(crud usecases.ScopedCRUDExecutor[*resource.Component]) *ComponentHandler {
	return &ComponentHandler{
		crud:   crud,
		logger: logger.NewLogger().Named("component-handler"),
	}
}

// Create handles POST /products/:prefix/components.
func (h *ComponentHandler) Create(c *gin.Context) {
	prefix := c.Param("prefix")

	var req CreateComponentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid create component request", "product", prefix, "error", err)
		utils.ErrorResponse(c, http.StatusBadRequest, "invalid request body: "+err.Error())
		return
	}

	component, err := resource.NewComponent(prefix, req.Name, req.Owner, req.Description)
	if err != nil {
		utils.ErrorResponseWithError(c, errors.NewValidationError(err.Error()))
		return
	}

	if err := h.crud.Create(c.Request.Context(), component); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, component, "component created successfully")
}

// Update handles PUT /products/:prefix/components/:name.
func (h *ComponentHandler) Update(c *gin.Context) {
	prefix := c.Param("prefix")
	name := c.Param("name")

	var req UpdateComponentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid update component request", "product", prefix, "name", name, "error", err)
		utils.ErrorResponse(c, http.StatusBadRequest, "invalid request body: "+err.Error())
		return
	}

	component, err := resource.NewComponent(prefix, name, req.Owner, req.Description)
	if err != nil {
		utils.ErrorResponseWithError(c, errors.NewValidationError(err.Error()))
		return
	}

	if err := h.crud.Update(c.Request.Context(), component); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "component updated successfully", component)
}

// Delete handles DELETE /products/:prefix/components/:name.
func (h *ComponentHandler) Delete(c *gin.Context) {
	if err := h.crud.Delete(c.Request.Context(), c.Param("prefix"), c.Param("name")); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	utils.NoContentResponse(c)
}

// Get handles GET /products/:prefix/components/:name.
func (h *ComponentHandler) Get(c *gin.Context) {
	component, err := h.crud.Get(c.Request.Context(), c.Param("prefix"), c.Param("name"))
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	utils.SuccessResponse(c, http.StatusOK, "", component)
}

// List handles GET /products/:prefix/components.
func (h *ComponentHandler) List(c *gin.Context) {
	components, err := h.crud.List(c.Request.Context(), c.Param("prefix"))
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	utils.SuccessResponse(c, http.StatusOK, "", components)
}

// MilestoneHandler handles milestone HTTP requests nested under a product.
type MilestoneHandler struct {
	crud   usecases.ScopedCRUDExecutor[*resource.Milestone]
	logger logger.Interface
}

// NewMilestoneHandler creates a new milestone handler.
func NewMilestoneHandler(crud usecases.ScopedCRUDExecutor[*resource.Milestone]) *MilestoneHandler {
	return &MilestoneHandler{
		crud:   crud,
		logger: logger.NewLogger().Named("milestone-handler"),
	}
}

// Create handles POST /products/:prefix/milestones.
func (h *MilestoneHandler) Create(c *gin.Context) {
	prefix := c.Param("prefix")

	var req CreateMilestoneRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid create milestone request", "product", prefix, "error", err)
		utils.ErrorResponse(c, http.StatusBadRequest, "invalid request body: "+err.Error())
		return
	}

	milestone, err := resource.NewMilestone(prefix, req.Name, req.Due, req.Completed, req.Description)
	if err != nil {
		utils.ErrorResponseWithError(c, errors.NewValidationError(err.Error()))
		return
	}

	if err := h.crud.Create(c.Request.Context(), milestone); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, milestone, "milestone created successfully")
}

// Update handles PUT /products/:prefix/milestones/:name.
func (h *MilestoneHandler) Update(c *gin.Context) {
	prefix := c.Param("prefix")
	name := c.Param("name")

	var req UpdateMilestoneRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid update milestone request", "product", prefix, "name", name, "error", err)
		utils.ErrorResponse(c, http.StatusBadRequest, "invalid request body: "+err.Error())
		return
	}

	milestone, err := resource.NewMilestone(prefix, name, req.Due, req.Completed, req.Description)
	if err != nil {
		utils.ErrorResponseWithError(c, errors.NewValidationError(err.Error()))
		return
	}

	if err := h.crud.Update(c.Request.Context(), milestone); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "milestone updated successfully", milestone)
}

// Delete handles DELETE /products/:prefix/milestones/:name.
func (h *MilestoneHandler) Delete(c *gin.Context) {
	if err := h.crud.Delete(c.Request.Context(), c.Param("prefix"), c.Param("name")); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	utils.NoContentResponse(c)
}

// Get handles GET /products/:prefix/milestones/:name.
func (h *MilestoneHandler) Get(c *gin.Context) {
	milestone, err := h.crud.Get(c.Request.Context(), c.Param("prefix"), c.Param("name"))
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	utils.SuccessResponse(c, http.StatusOK, "", milestone)
}

// List handles GET /products/:prefix/milestones.
func (h *MilestoneHandler) List(c *gin.Context) {
	milestones, err := h.crud.List(c.Request.Context(), c.Param("prefix"))
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	utils.SuccessResponse(c, http.StatusOK, "", milestones)
}

// VersionHandler handles version HTTP requests nested under a product.
type VersionHandler struct {
	crud   usecases.ScopedCRUDExecutor[*resource.Version]
	logger logger.Interface
}

// NewVersionHandler creates a new version handler.
func NewVersionHandler(crud usecases.ScopedCRUDExecutor[*resource.Version]) *VersionHandler {
	return &VersionHandler{
		crud:   crud,
		logger: logger.NewLogger().Named("version-handler"),
	}
}

// Create handles POST /products/:prefix/versions.
func (h *VersionHandler) Create(c *gin.Context) {
	prefix := c.Param("prefix")

	var req CreateVersionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid create version request", "product", prefix, "error", err)
		utils.ErrorResponse(c, http.StatusBadRequest, "invalid request body: "+err.Error())
		return
	}

	version, err := resource.NewVersion(prefix, req.Name, req.Time, req.Description)
	if err != nil {
		utils.ErrorResponseWithError(c, errors.NewValidationError(err.Error()))
		return
	}

	if err := h.crud.Create(c.Request.Context(), version); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, version, "version created successfully")
}

// Update handles PUT /products/:prefix/versions/:name.
func (h *VersionHandler) Update(c *gin.Context) {
	prefix := c.Param("prefix")
	name := c.Param("name")

	var req UpdateVersionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid update version request", "product", prefix, "name", name, "error", err)
		utils.ErrorResponse(c, http.StatusBadRequest, "invalid request body: "+err.Error())
		return
	}

	version, err := resource.NewVersion(prefix, name, req.Time, req.Description)
	if err != nil {
		utils.ErrorResponseWithError(c, errors.NewValidationError(err.Error()))
		return
	}

	if err := h.crud.Update(c.Request.Context(), version); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "version updated successfully", version)
}

// Delete handles DELETE /products/:prefix/versions/:name.
func (h *VersionHandler) Delete(c *gin.Context) {
	if err := h.crud.Delete(c.Request.Context(), c.Param("prefix"), c.Param("name")); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	utils.NoContentResponse(c)
}

// Get handles GET /products/:prefix/versions/:name.
func (h *VersionHandler) Get(c *gin.Context) {
	version, err := h.crud.Get(c.Request.Context(), c.Param("prefix"), c.Param("name"))
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	utils.SuccessResponse(c, http.StatusOK, "", version)
}

// List handles GET /products/:prefix/versions.
func (h *VersionHandler) List(c *gin.Context) {
	versions, err := h.crud.List(c.Request.Context(), c.Param("prefix"))
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	utils.SuccessResponse(c, http.StatusOK, "", versions)
}
