package reservation

import (
	"context"
	"errors"
	"net/http"
	"strconv"

	"sportrent/internal/domain"
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

// RegisterRoutes mounts the reservation endpoints on an authenticated
// group. Clients act on their own reservations; admins on any. Complete is
// admin-only, matching the original's return-desk flow.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/reservations", h.create)
	rg.GET("/reservations", h.list)
	rg.GET("/reservations/:id", h.get)
	rg.POST("/reservations/:id/items", h.addItem)
	rg.DELETE("/reservations/:id/items/:itemID", h.removeItem)
	rg.POST("/reservations/:id/confirm", h.confirm)
	rg.POST("/reservations/:id/cancel", h.cancel)
	rg.POST("/reservations/:id/complete", middleware.AdminOnly(), h.complete)
}

func (h *Handler) create(c *gin.Context) {
	var req CreateReservationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
		return
	}

	// clients can only book for themselves
	if !isAdmin(c) && req.ClientID != callerID(c) {
		response.Error(c, http.StatusForbidden, "FORBIDDEN", "cannot create a reservation for another client")
		return
	}

	res, err := h.service.Create(c.Request.Context(), req)
	if err != nil {
		h.handleError(c, err)
		return
	}
	response.Success(c, http.StatusCreated, res)
}

func (h *Handler) list(c *gin.Context) {
	var clientID *int64
	var state *domain.ReservationState

	if raw := c.Query("client_id"); raw != "" {
		id, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "client_id must be an integer")
			return
		}
		clientID = &id
	}
	if raw := c.Query("state"); raw != "" {
		st, ok := domain.ParseReservationState(raw)
		if !ok {
			response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "unknown state")
			return
		}
		state = &st
	}

	// non-admins always see their own history only
	if !isAdmin(c) {
		id := callerID(c)
		clientID = &id
	}

	out, err := h.service.List(c.Request.Context(), clientID, state)
	if err != nil {
		h.handleError(c, err)
		return
	}
	response.Success(c, http.StatusOK, out)
}

func (h *Handler) get(c *gin.Context) {
	res, ok := h.loadOwned(c)
	if !ok {
		return
	}
	response.Success(c, http.StatusOK, res)
}

func (h *Handler) addItem(c *gin.Context) {
	res, ok := h.loadOwned(c)
	if !ok {
		return
	}

	var req AddItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
		return
	}

	done, err := h.service.AddItem(c.Request.Context(), res.ID, req.ItemID)
	if err != nil {
		h.handleError(c, err)
		return
	}
	if !done {
		response.Error(c, http.StatusUnprocessableEntity, "ITEM_UNAVAILABLE", "item cannot be added to this reservation")
		return
	}
	h.respondCurrent(c, res.ID)
}

func (h *Handler) removeItem(c *gin.Context) {
	res, ok := h.loadOwned(c)
	if !ok {
		return
	}

	itemID, ok := pathID(c, "itemID")
	if !ok {
		return
	}

	done, err := h.service.RemoveItem(c.Request.Context(), res.ID, itemID)
	if err != nil {
		h.handleError(c, err)
		return
	}
	if !done {
		response.Error(c, http.StatusUnprocessableEntity, "INVALID_TRANSITION", "item cannot be removed from this reservation")
		return
	}
	h.respondCurrent(c, res.ID)
}

func (h *Handler) confirm(c *gin.Context) {
	h.transition(c, h.service.Confirm, "reservation cannot be confirmed")
}

func (h *Handler) cancel(c *gin.Context) {
	h.transition(c, h.service.Cancel, "reservation cannot be cancelled")
}

func (h *Handler) complete(c *gin.Context) {
	h.transition(c, h.service.Complete, "reservation cannot be completed")
}

func (h *Handler) transition(c *gin.Context, op func(ctx context.Context, id int64) (bool, error), refusedMsg string) {
	res, ok := h.loadOwned(c)
	if !ok {
		return
	}

	done, err := op(c.Request.Context(), res.ID)
	if err != nil {
		h.handleError(c, err)
		return
	}
	if !done {
		response.Error(c, http.StatusUnprocessableEntity, "INVALID_TRANSITION", refusedMsg)
		return
	}
	h.respondCurrent(c, res.ID)
}

// loadOwned resolves the :id reservation and enforces ownership: clients
// may only touch their own reservations.
func (h *Handler) loadOwned(c *gin.Context) (*domain.Reservation, bool) {
	id, ok := pathID(c, "id")
	if !ok {
		return nil, false
	}

	res, err := h.service.Get(c.Request.Context(), id)
	if err != nil {
		h.handleError(c, err)
		return nil, false
	}

	if !isAdmin(c) && res.ClientID != callerID(c) {
		response.Error(c, http.StatusForbidden, "FORBIDDEN", "not your reservation")
		return nil, false
	}
	return res, true
}

func (h *Handler) respondCurrent(c *gin.Context, id int64) {
	res, err := h.service.Get(c.Request.Context(), id)
	if err != nil {
		h.handleError(c, err)
		return
	}
	response.Success(c, http.StatusOK, res)
}

func (h *Handler) handleError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, ErrValidation):
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
	case errors.Is(err, ErrNotFound):
		response.Error(c, http.StatusNotFound, "NOT_FOUND", err.Error())
	case errors.Is(err, ErrForbidden):
		response.Error(c, http.StatusForbidden, "FORBIDDEN", err.Error())
	default:
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "internal error")
	}
}

func callerID(c *gin.Context) int64 {
	return c.GetInt64("user_id")
}

func isAdmin(c *gin.Context) bool {
	return c.GetString("role") == string(domain.RoleAdmin)
}

func pathID(c *gin.Context, name string) (int64, bool) {
	id, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", name+" must be an integer")
		return 0, false
	}
	return id, true
}
