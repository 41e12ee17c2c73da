package httpserver

import (
	"log"
	"net/http"

	"ecofinds/internal/domain"
	"ecofinds/internal/store"

	"github.com/gin-gonic/gin"
)

type handlers struct {
	store  *store.Store
	logger *log.Logger
}

type loginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type registerRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
	Username string `json:"username" binding:"required"`
}

type updateUserRequest struct {
	Username string `json:"username" binding:"required"`
}

func (h *handlers) login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	user, err := h.store.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"user": user})
}

func (h *handlers) register(c *gin.Context) {
	var req registerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	user, err := h.store.Register(c.Request.Context(), req.Email, req.Password, req.Username)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"user": user})
}

func (h *handlers) logout(c *gin.Context) {
	h.store.Logout(c.Request.Context())
	c.Status(http.StatusNoContent)
}

func (h *handlers) me(c *gin.Context) {
	user := h.store.CurrentUser()
	if user == nil {
		writeError(c, domain.ErrNotAuthenticated)
		return
	}
	c.JSON(http.StatusOK, gin.H{"user": user})
}

func (h *handlers) updateMe(c *gin.Context) {
	if h.store.CurrentUser() == nil {
		writeError(c, domain.ErrNotAuthenticated)
		return
	}
	var req updateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	user, err := h.store.UpdateUser(c.Request.Context(), req.Username)
	if err != nil {
		writeError(c, err)
		return
	}
	if user == nil {
		writeError(c, domain.ErrNotAuthenticated)
		return
	}
	c.JSON(http.StatusOK, gin.H{"user": user})
}
