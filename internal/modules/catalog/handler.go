package catalog

import (
	"errors"
	"net/http"
	"strconv"

	"sportrent/internal/middleware"
	"sportrent/internal/pkg/response"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterPublicRoutes mounts the read-only catalog endpoints.
func (h *Handler) RegisterPublicRoutes(rg *gin.RouterGroup) {
	rg.GET("/items", h.listItems)
	rg.GET("/items/:id", h.getItem)
	rg.GET("/categories", h.listCategories)
}

// RegisterAdminRoutes mounts the mutating endpoints; callers must already
// be authenticated, the admin role is enforced here.
func (h *Handler) RegisterAdminRoutes(rg *gin.RouterGroup) {
	admin := rg.Group("/", middleware.AdminOnly())
	admin.POST("/items", h.createItem)
	admin.PATCH("/items/:id", h.updateItem)
	admin.PATCH("/items/:id/availability", h.setAvailability)
	admin.DELETE("/items/:id", h.deleteItem)
	admin.POST("/categories", h.createCategory)
	admin.DELETE("/categories/:id", h.deleteCategory)
}

func (h *Handler) listItems(c *gin.Context) {
	var categoryID *int64
	if raw := c.Query("category_id"); raw != "" {
		id, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "category_id must be an integer")
			return
		}
		categoryID = &id
	}
	availableOnly := c.Query("available") == "true"

	items, err := h.service.ListItems(c.Request.Context(), categoryID, availableOnly)
	if err != nil {
		h.handleError(c, err)
		return
	}
	response.Success(c, http.StatusOK, items)
}

func (h *Handler) getItem(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	item, err := h.service.GetItem(c.Request.Context(), id)
	if err != nil {
		h.handleError(c, err)
		return
	}
	response.Success(c, http.StatusOK, item)
}

func (h *Handler) createItem(c *gin.Context) {
	var req CreateItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
		return
	}

	item, err := h.service.CreateItem(c.Request.Context(), req)
	if err != nil {
		h.handleError(c, err)
		return
	}
	response.Success(c, http.StatusCreated, item)
}

func (h *Handler) updateItem(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	var req UpdateItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
		return
	}

	item, err := h.service.UpdateItem(c.Request.Context(), id, req)
	if err != nil {
		h.handleError(c, err)
		return
	}
	response.Success(c, http.StatusOK, item)
}

func (h *Handler) setAvailability(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	var req SetAvailabilityRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.Available == nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "available is required")
		return
	}

	item, err := h.service.SetAvailability(c.Request.Context(), id, *req.Available)
	if err != nil {
		h.handleError(c, err)
		return
	}
	response.Success(c, http.StatusOK, item)
}

func (h *Handler) deleteItem(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	if err := h.service.DeleteItem(c.Request.Context(), id); err != nil {
		h.handleError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"deleted": true})
}

func (h *Handler) listCategories(c *gin.Context) {
	ctx := c.Request.Context()
	cats, err := h.service.ListCategories(ctx)
	if err != nil {
		h.handleError(c, err)
		return
	}

	out := make([]CategoryResponse, 0, len(cats))
	for _, cat := range cats {
		count, err := h.service.ItemCount(ctx, cat.ID)
		if err != nil {
			h.handleError(c, err)
			return
		}
		out = append(out, CategoryResponse{
			ID:          cat.ID,
			Name:        cat.Name,
			Description: cat.Description,
			ItemCount:   count,
		})
	}
	response.Success(c, http.StatusOK, out)
}

func (h *Handler) createCategory(c *gin.Context) {
	var req CreateCategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
		return
	}

	cat, err := h.service.CreateCategory(c.Request.Context(), req)
	if err != nil {
		h.handleError(c, err)
		return
	}
	response.Success(c, http.StatusCreated, cat)
}

func (h *Handler) deleteCategory(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	if err := h.service.DeleteCategory(c.Request.Context(), id); err != nil {
		h.handleError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"deleted": true})
}

func (h *Handler) handleError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, ErrValidation):
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
	case errors.Is(err, ErrNotFound):
		response.Error(c, http.StatusNotFound, "NOT_FOUND", err.Error())
	case errors.Is(err, ErrCategoryNotEmpty), errors.Is(err, ErrItemReserved):
		response.Error(c, http.StatusConflict, "CONSTRAINT_VIOLATION", err.Error())
	default:
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "internal error")
	}
}

func pathID(c *gin.Context, name string) (int64, bool) {
	id, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", name+" must be an integer")
		return 0, false
	}
	return id, true
}
