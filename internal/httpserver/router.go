package httpserver

import (
	"log"

	"ecofinds/internal/storage"
	"ecofinds/internal/store"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// buildRouter wires routes for the API.
func buildRouter(logger *log.Logger, st *store.Store, backing storage.Backing) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	router := gin.New()
	router.Use(gin.LoggerWithWriter(logger.Writer()), gin.Recovery())
	router.Use(cors.Default())

	router.GET("/healthz", healthHandler)
	router.GET("/readyz", readyHandler(backing))

	h := &handlers{store: st, logger: logger}

	router.POST("/auth/login", h.login)
	router.POST("/auth/register", h.register)
	router.POST("/auth/logout", h.logout)
	router.GET("/me", h.me)
	router.PATCH("/me", h.updateMe)

	router.GET("/products", h.listProducts)
	router.GET("/products/suggest", h.suggestProducts)
	router.GET("/products/mine", h.myListings)
	router.POST("/products", h.createProduct)
	router.GET("/products/:id", h.getProduct)
	router.PUT("/products/:id", h.updateProduct)
	router.DELETE("/products/:id", h.deleteProduct)

	router.GET("/cart", h.getCart)
	router.POST("/cart/items", h.addToCart)
	router.DELETE("/cart/items/:productId", h.removeFromCart)
	router.POST("/checkout", h.checkout)
	router.GET("/orders", h.listOrders)

	return router
}
