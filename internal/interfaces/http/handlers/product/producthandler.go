package product

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"trackd/internal/application/product/usecases"
	"trackd/internal/shared/logger"
	"trackd/internal/shared/utils"
)

// Handler handles product management HTTP requests.
type Handler struct {
	createProduct usecases.CreateProductExecutor
	updateProduct usecases.UpdateProductExecutor
	deleteProduct usecases.DeleteProductExecutor
	getProduct    usecases.GetProductExecutor
	listProducts  usecases.ListProductsExecutor
	logger        logger.Interface
}

// NewHandler creates a new product handler.
func NewHandler(
	createProduct usecases.CreateProductExecutor,
	updateProduct usecases.UpdateProductExecutor,
	deleteProduct usecases.DeleteProductExecutor,
	getProduct usecases.GetProductExecutor,
	listProducts usecases.ListProductsExecutor,
) *Handler {
	return &Handler{
		createProduct: createProduct,
		updateProduct: updateProduct,
		deleteProduct: deleteProduct,
		getProduct:    getProduct,
		listProducts:  listProducts,
		logger:        logger.NewLogger().Named("product-handler"),
	}
}

// CreateProduct handles POST /products.
func (h *Handler) CreateProduct(c *gin.Context) {
	var req CreateProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid create product request", "error", err)
		utils.ErrorResponse(c, http.StatusBadRequest, "invalid request body: "+err.Error())
		return
	}

	result, err := h.createProduct.Execute(c.Request.Context(), req.ToCommand())
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, result, "product created successfully")
}

// UpdateProduct handles PUT /products/:prefix.
func (h *Handler) UpdateProduct(c *gin.Context) {
	prefix := c.Param("prefix")

	var req UpdateProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid update product request", "prefix", prefix, "error", err)
		utils.ErrorResponse(c, http.StatusBadRequest, "invalid request body: "+err.Error())
		return
	}

	result, err := h.updateProduct.Execute(c.Request.Context(), req.ToCommand(prefix))
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "product updated successfully", result)
}

// DeleteProduct handles DELETE /products/:prefix.
func (h *Handler) DeleteProduct(c *gin.Context) {
	prefix := c.Param("prefix")

	if _, err := h.deleteProduct.Execute(c.Request.Context(), usecases.DeleteProductCommand{Prefix: prefix}); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.NoContentResponse(c)
}

// GetProduct handles GET /products/:prefix.
func (h *Handler) GetProduct(c *gin.Context) {
	prefix := c.Param("prefix")

	result, err := h.getProduct.Execute(c.Request.Context(), usecases.GetProductQuery{Prefix: prefix})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}

// ListProducts handles GET /products.
func (h *Handler) ListProducts(c *gin.Context) {
	pagination := utils.ParsePagination(c)

	result, err := h.listProducts.Execute(c.Request.Context(), usecases.ListProductsQuery{
		Page:     pagination.Page,
		PageSize: pagination.PageSize,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.ListSuccessResponse(c, result.Products, result.Total, pagination.Page, pagination.PageSize)
}
