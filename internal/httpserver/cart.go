package httpserver

import (
	"net/http"

	"ecofinds/internal/domain"
	"ecofinds/internal/store"

	"github.com/gin-gonic/gin"
)

type addToCartRequest struct {
	ProductID string `json:"productId" binding:"required"`
}

func (h *handlers) getCart(c *gin.Context) {
	if h.store.CurrentUser() == nil {
		writeError(c, domain.ErrNotAuthenticated)
		return
	}
	cart := h.store.Cart()
	c.JSON(http.StatusOK, gin.H{"items": cart, "total": store.CartTotal(cart)})
}

func (h *handlers) addToCart(c *gin.Context) {
	if h.store.CurrentUser() == nil {
		writeError(c, domain.ErrNotAuthenticated)
		return
	}
	var req addToCartRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	product, err := h.store.GetProductByID(req.ProductID)
	if err != nil {
		writeError(c, err)
		return
	}
	if err := h.store.AddToCart(c.Request.Context(), *product); err != nil {
		writeError(c, err)
		return
	}
	cart := h.store.Cart()
	c.JSON(http.StatusOK, gin.H{"items": cart, "total": store.CartTotal(cart)})
}

func (h *handlers) removeFromCart(c *gin.Context) {
	if h.store.CurrentUser() == nil {
		writeError(c, domain.ErrNotAuthenticated)
		return
	}
	h.store.RemoveFromCart(c.Request.Context(), c.Param("productId"))
	cart := h.store.Cart()
	c.JSON(http.StatusOK, gin.H{"items": cart, "total": store.CartTotal(cart)})
}

func (h *handlers) checkout(c *gin.Context) {
	order, err := h.store.Checkout(c.Request.Context())
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"order": order})
}

func (h *handlers) listOrders(c *gin.Context) {
	if h.store.CurrentUser() == nil {
		writeError(c, domain.ErrNotAuthenticated)
		return
	}
	orders := h.store.Orders()
	c.JSON(http.StatusOK, gin.H{"orders": orders, "total": len(orders)})
}
