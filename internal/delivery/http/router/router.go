// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"github.com/gerysx/spb-ecommerce/internal/delivery/http/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	CustomerHandler *handler.CustomerHandler
	ProductHandler  *handler.ProductHandler
	OrderHandler    *handler.OrderHandler
}

// router holds all the handlers that need to be registered.
type router struct {
	customerHandler *handler.CustomerHandler
	productHandler  *handler.ProductHandler
	orderHandler    *handler.OrderHandler
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		customerHandler: params.CustomerHandler,
		productHandler:  params.ProductHandler,
		orderHandler:    params.OrderHandler,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	api := e.Group("/api")

	customerGroup := api.Group("/customers")
	{
		customerGroup.POST("", r.customerHandler.Create)
		customerGroup.GET("", r.customerHandler.Search)
		customerGroup.GET("/:id", r.customerHandler.GetByID)
		customerGroup.PUT("/:id", r.customerHandler.Update)
		customerGroup.DELETE("/:id", r.customerHandler.Delete)

		customerGroup.POST("/:id/addresses", r.customerHandler.AddAddress)
		customerGroup.GET("/:id/addresses", r.customerHandler.ListAddresses)
		customerGroup.PUT("/:id/addresses/:addressId/default", r.customerHandler.SetDefaultAddress)
	}

	productGroup := api.Group("/products")
	{
		productGroup.POST("", r.productHandler.Create)
		productGroup.GET("", r.productHandler.Search)
		productGroup.GET("/:id", r.productHandler.GetByID)
		productGroup.PUT("/:id", r.productHandler.Update)
		productGroup.DELETE("/:id", r.productHandler.Deactivate)
	}

	orderGroup := api.Group("/orders")
	{
		orderGroup.POST("", r.orderHandler.Create)
		orderGroup.GET("", r.orderHandler.Search)
		orderGroup.GET("/:id", r.orderHandler.GetByID)
		orderGroup.PATCH("/:id/status", r.orderHandler.ChangeStatus)
	}
}
