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

// EnumHandler handles enumeration HTTP requests nested under a product.
// Rows are grouped by type (ticket_type, priority, severity, resolution).
type EnumHandler struct {
	crud   usecases.EnumCRUDExecutor
	logger logger.Interface
}

// NewEnumHandler creates a new enum handler.
func NewEnumHandler(crud usecases.EnumCRUDExecutor) *EnumHandler {
	return &EnumHandler{
		crud:   crud,
		logger: logger.NewLogger().Named("enum-handler"),
	}
}

// Create handles POST /products/:prefix/enums/:type.
func (h *EnumHandler) Create(c *gin.Context) {
	prefix := c.Param("prefix")
	enumType := c.Param("type")

	var req CreateEnumRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid create enum request", "product", prefix, "type", enumType, "error", err)
		utils.ErrorResponse(c, http.StatusBadRequest, "invalid request body: "+err.Error())
		return
	}

	enum, err := resource.NewEnum(prefix, enumType, req.Name, req.Value)
	if err != nil {
		utils.ErrorResponseWithError(c, errors.NewValidationError(err.Error()))
		return
	}

	if err := h.crud.Create(c.Request.Context(), enum); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, enum, "enum created successfully")
}

// Update handles PUT /products/:prefix/enums/:type/:name.
func (h *EnumHandler) Update(c *gin.Context) {
	prefix := c.Param("prefix")
	enumType := c.Param("type")
	name := c.Param("name")

	var req UpdateEnumRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid update enum request", "product", prefix, "type", enumType, "name", name, "error", err)
		utils.ErrorResponse(c, http.StatusBadRequest, "invalid request body: "+err.Error())
		return
	}

	enum, err := resource.NewEnum(prefix, enumType, name, req.Value)
	if err != nil {
		utils.ErrorResponseWithError(c, errors.NewValidationError(err.Error()))
		return
	}

	if err := h.crud.Update(c.Request.Context(), enum); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "enum updated successfully", enum)
}

// Delete handles DELETE /products/:prefix/enums/:type/:name.
func (h *EnumHandler) Delete(c *gin.Context) {
	err := h.crud.Delete(c.Request.Context(), c.Param("prefix"), c.Param("type"), c.Param("name"))
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	utils.NoContentResponse(c)
}

// Get handles GET /products/:prefix/enums/:type/:name.
func (h *EnumHandler) Get(c *gin.Context) {
	enum, err := h.crud.Get(c.Request.Context(), c.Param("prefix"), c.Param("type"), c.Param("name"))
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	utils.SuccessResponse(c, http.StatusOK, "", enum)
}

// List handles GET /products/:prefix/enums and
// GET /products/:prefix/enums/:type. Without a type it returns every
// enumeration row of the product.
func (h *EnumHandler) List(c *gin.Context) {
	enums, err := h.crud.List(c.Request.Context(), c.Param("prefix"), c.Param("type"))
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	utils.SuccessResponse(c, http.StatusOK, "", enums)
}
