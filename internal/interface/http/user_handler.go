package http

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/yanqian/product-reviews/internal/domain/user"
)

// CreateUser handles POST /users.
func (h *Handler) CreateUser(c *gin.Context) {
	var req user.CreateRequest
	if !bindJSON(c, &req) {
		return
	}
	if err := req.Validate(); err != nil {
		abortWithAppError(c, err)
		return
	}

	view, err := h.userSvc.Create(c.Request.Context(), req)
	if err != nil {
		abortWithAppError(c, err)
		return
	}
	c.JSON(http.StatusCreated, view)
}

// ListUsers handles GET /users. With ?email= it resolves a single user.
func (h *Handler) ListUsers(c *gin.Context) {
	if email := strings.TrimSpace(c.Query("email")); email != "" {
		view, err := h.userSvc.FindByEmail(c.Request.Context(), email)
		if err != nil {
			abortWithAppError(c, err)
			return
		}
		c.JSON(http.StatusOK, []user.View{view})
		return
	}

	views, err := h.userSvc.List(c.Request.Context())
	if err != nil {
		abortWithAppError(c, err)
		return
	}
	c.JSON(http.StatusOK, views)
}

// GetUser handles GET /users/:id.
func (h *Handler) GetUser(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	view, err := h.userSvc.FindByID(c.Request.Context(), id)
	if err != nil {
		abortWithAppError(c, err)
		return
	}
	c.JSON(http.StatusOK, view)
}

// UpdateUser handles PATCH /users/:id.
func (h *Handler) UpdateUser(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	var req user.UpdateRequest
	if !bindJSON(c, &req) {
		return
	}
	if err := req.Validate(); err != nil {
		abortWithAppError(c, err)
		return
	}

	view, err := h.userSvc.Update(c.Request.Context(), id, req)
	if err != nil {
		abortWithAppError(c, err)
		return
	}
	c.JSON(http.StatusOK, view)
}

// DeleteUser handles DELETE /users/:id.
func (h *Handler) DeleteUser(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	if err := h.userSvc.Delete(c.Request.Context(), id); err != nil {
		abortWithAppError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
