package handler

import (
	"github.com/gin-gonic/gin"
	catalogapp "github.com/toystore/backend/internal/application/catalog"
	"github.com/toystore/backend/internal/interfaces/http/middleware"
)

// ToyHandler handles toy-related API endpoints
type ToyHandler struct {
	BaseHandler
	toyService *catalogapp.ToyService
}

// NewToyHandler creates a new ToyHandler
func NewToyHandler(toyService *catalogapp.ToyService) *ToyHandler {
	return &ToyHandler{
		toyService: toyService,
	}
}

// Create handles POST /catalog/toys
func (h *ToyHandler) Create(c *gin.Context) {
	var req catalogapp.CreateToyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		middleware.HandleValidationError(c, err)
		return
	}

	toy, err := h.toyService.Create(c.Request.Context(), req)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Created(c, toy)
}

// GetByID handles GET /catalog/toys/:id
func (h *ToyHandler) GetByID(c *gin.Context) {
	id, err := parseIDParam(c)
	if err != nil {
		h.BadRequest(c, "Invalid toy ID")
		return
	}

	toy, err := h.toyService.GetByID(c.Request.Context(), id)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, toy)
}

// List handles GET /catalog/toys. When a price bound or a category filter
// is present the filtered, unpaginated listing is returned instead.
func (h *ToyHandler) List(c *gin.Context) {
	var filter catalogapp.ToyListFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		middleware.HandleValidationError(c, err)
		return
	}

	if filter.MinPrice != nil || filter.MaxPrice != nil || len(filter.Categories) > 0 {
		toys, err := h.toyService.Filter(c.Request.Context(), filter)
		if err != nil {
			h.HandleDomainError(c, err)
			return
		}
		h.Success(c, toys)
		return
	}

	toys, total, err := h.toyService.List(c.Request.Context(), filter.Page, filter.PageSize)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	page := filter.Page
	if page <= 0 {
		page = 1
	}
	pageSize := filter.PageSize
	if pageSize <= 0 {
		pageSize = 20
	}
	h.SuccessWithMeta(c, toys, total, page, pageSize)
}

// Update handles PATCH /catalog/toys/:id
func (h *ToyHandler) Update(c *gin.Context) {
	id, err := parseIDParam(c)
	if err != nil {
		h.BadRequest(c, "Invalid toy ID")
		return
	}

	var req catalogapp.UpdateToyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		middleware.HandleValidationError(c, err)
		return
	}

	toy, err := h.toyService.Update(c.Request.Context(), id, req)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, toy)
}

// ApplyCategorySale handles POST /catalog/toys/category-sale
func (h *ToyHandler) ApplyCategorySale(c *gin.Context) {
	var req catalogapp.CategorySaleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		middleware.HandleValidationError(c, err)
		return
	}

	result, err := h.toyService.ApplyCategorySale(c.Request.Context(), req)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, result)
}
