package httpserver

import (
	"net/http"

	"ecofinds/internal/domain"
	"ecofinds/internal/store"

	"github.com/gin-gonic/gin"
)

func (h *handlers) listProducts(c *gin.Context) {
	category := c.Query("category")
	query := c.Query("q")
	products := store.FilterProducts(h.store.Products(), category, query)
	c.JSON(http.StatusOK, gin.H{"products": products, "total": len(products)})
}

func (h *handlers) suggestProducts(c *gin.Context) {
	matches := store.Suggest(h.store.Products(), c.Query("q"))
	titles := make([]string, 0, len(matches))
	for _, p := range matches {
		titles = append(titles, p.Title)
	}
	c.JSON(http.StatusOK, gin.H{"suggestions": titles})
}

func (h *handlers) myListings(c *gin.Context) {
	user := h.store.CurrentUser()
	if user == nil {
		writeError(c, domain.ErrNotAuthenticated)
		return
	}
	products := store.ListingsBySeller(h.store.Products(), user.ID)
	c.JSON(http.StatusOK, gin.H{"products": products, "total": len(products)})
}

func (h *handlers) getProduct(c *gin.Context) {
	product, err := h.store.GetProductByID(c.Param("id"))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"product": product})
}

func (h *handlers) createProduct(c *gin.Context) {
	var in store.ProductInput
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	product, err := h.store.CreateProduct(c.Request.Context(), in)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"product": product})
}

func (h *handlers) updateProduct(c *gin.Context) {
	product, ok := h.ownedProduct(c)
	if !ok {
		return
	}
	var in store.ProductInput
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	updated, err := h.store.UpdateProduct(c.Request.Context(), product.ID, in)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"product": updated})
}

func (h *handlers) deleteProduct(c *gin.Context) {
	product, ok := h.ownedProduct(c)
	if !ok {
		return
	}
	h.store.DeleteProduct(c.Request.Context(), product.ID)
	c.Status(http.StatusNoContent)
}

// ownedProduct resolves the :id product and enforces that the session user
// is its seller. Ownership lives at this boundary so the store keeps the
// presentation-agnostic merge semantics.
func (h *handlers) ownedProduct(c *gin.Context) (*domain.Product, bool) {
	user := h.store.CurrentUser()
	if user == nil {
		writeError(c, domain.ErrNotAuthenticated)
		return nil, false
	}
	product, err := h.store.GetProductByID(c.Param("id"))
	if err != nil {
		writeError(c, err)
		return nil, false
	}
	if product.SellerID != user.ID {
		c.JSON(http.StatusForbidden, gin.H{"error": "not the seller of this listing"})
		return nil, false
	}
	return product, true
}
