package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"tradeport.backend/internal/domain/entities"
	domainerrors "tradeport.backend/internal/domain/errors"
	"tradeport.backend/internal/interfaces/http/middleware"
	"tradeport.backend/internal/interfaces/http/response"
	"tradeport.backend/internal/usecases"
	"tradeport.backend/pkg/utils"
)

// ProductHandler handles catalog endpoints
type ProductHandler struct {
	catalogUsecase *usecases.CatalogUsecase
}

// NewProductHandler creates a new product handler
func NewProductHandler(catalogUsecase *usecases.CatalogUsecase) *ProductHandler {
	return &ProductHandler{
		catalogUsecase: catalogUsecase,
	}
}

func paginationFromQuery(c *gin.Context) utils.PaginationParams {
	var params utils.PaginationParams
	_ = c.ShouldBindQuery(&params)
	return utils.GetPaginationParams(params.Page, params.Limit)
}

// BrowseProducts returns the public catalog
// GET /api/v1/products
func (h *ProductHandler) BrowseProducts(c *gin.Context) {
	var filter entities.ProductFilter
	_ = c.ShouldBindQuery(&filter)
	pagination := paginationFromQuery(c)

	products, total, err := h.catalogUsecase.BrowseProducts(c.Request.Context(), filter, pagination)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Paginated(c, products, utils.CalculateMeta(total, pagination.Page, pagination.Limit))
}

// GetProduct returns one listing
// GET /api/v1/products/:id
func (h *ProductHandler) GetProduct(c *gin.Context) {
	productID, err := utils.ParseUUID(c.Param("id"))
	if err != nil {
		response.Error(c, domainerrors.BadRequest("invalid product id"))
		return
	}

	product, err := h.catalogUsecase.GetProduct(c.Request.Context(), productID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"product": product})
}

// CreateProduct creates a listing for the authenticated seller
// POST /api/v1/seller/products
func (h *ProductHandler) CreateProduct(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		response.Error(c, domainerrors.Unauthorized("authentication required"))
		return
	}

	var input entities.CreateProductInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.BindError(c, err)
		return
	}

	product, err := h.catalogUsecase.CreateProduct(c.Request.Context(), userID, &input)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusCreated, gin.H{"product": product})
}

// UpdateProduct updates the seller's own listing
// PUT /api/v1/seller/products/:id
func (h *ProductHandler) UpdateProduct(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		response.Error(c, domainerrors.Unauthorized("authentication required"))
		return
	}

	productID, err := utils.ParseUUID(c.Param("id"))
	if err != nil {
		response.Error(c, domainerrors.BadRequest("invalid product id"))
		return
	}

	var input entities.UpdateProductInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.BindError(c, err)
		return
	}

	product, err := h.catalogUsecase.UpdateProduct(c.Request.Context(), userID, productID, &input)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"product": product})
}

// DeleteProduct removes the seller's own listing
// DELETE /api/v1/seller/products/:id
func (h *ProductHandler) DeleteProduct(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		response.Error(c, domainerrors.Unauthorized("authentication required"))
		return
	}

	productID, err := utils.ParseUUID(c.Param("id"))
	if err != nil {
		response.Error(c, domainerrors.BadRequest("invalid product id"))
		return
	}

	if err := h.catalogUsecase.DeleteProduct(c.Request.Context(), userID, productID); err != nil {
		response.Error(c, err)
		return
	}

	response.SuccessWithMessage(c, http.StatusOK, "product deleted", nil)
}

// MyProducts returns the seller's own listings
// GET /api/v1/seller/products
func (h *ProductHandler) MyProducts(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		response.Error(c, domainerrors.Unauthorized("authentication required"))
		return
	}

	pagination := paginationFromQuery(c)
	products, total, err := h.catalogUsecase.MyProducts(c.Request.Context(), userID, pagination)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Paginated(c, products, utils.CalculateMeta(total, pagination.Page, pagination.Limit))
}
