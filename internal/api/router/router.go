package router

import (
	"github.com/wb-go/wbf/ginext"

	"github.com/ekorolev/cart-recovery/internal/api/handlers/cart"
)

func New(handler *cart.Handler) *ginext.Engine {
	e := ginext.New()
	e.Use(ginext.Logger())
	e.Use(ginext.Recovery())

	// Recovery links land outside the API prefix; the path mirrors the
	// storefront URL customers click in their email.
	e.GET("/cart/recover", handler.Recover)

	api := e.Group("/api")

	api.POST("/carts", handler.Capture)
	api.GET("/carts", handler.List)
	api.POST("/orders/events", handler.OrderEvent)

	return e
}
