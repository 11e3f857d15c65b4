package routes

import (
	"minikart/cart"
	"minikart/catalog"
	"minikart/checkout"
	"minikart/ratelim"

	"github.com/julienschmidt/httprouter"
)

func AddProductRoutes(router *httprouter.Router, rateLimiter *ratelim.RateLimiter, h *catalog.Handler) {
	router.GET("/api/products", rateLimiter.Limit(h.GetProducts))
}

func AddCartRoutes(router *httprouter.Router, rateLimiter *ratelim.RateLimiter, h *cart.Handler) {
	router.GET("/api/cart", rateLimiter.Limit(h.GetCart))
	router.POST("/api/cart", rateLimiter.Limit(h.AddToCart))
	router.DELETE("/api/cart/:id", rateLimiter.Limit(h.RemoveFromCart))
}

func AddCheckoutRoutes(router *httprouter.Router, rateLimiter *ratelim.RateLimiter, h *checkout.Handler) {
	router.POST("/api/checkout", rateLimiter.Limit(h.Checkout))
	router.POST("/api/checkout/receipt", rateLimiter.Limit(h.PrintReceipt))
}
