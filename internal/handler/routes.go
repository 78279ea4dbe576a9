package handler

import (
	"github.com/labstack/echo/v4"
)

// Handlers bundles every route handler for registration.
type Handlers struct {
	Products    *ProductHandler
	Cart        *CartHandler
	Checkout    *CheckoutHandler
	Auth        *AuthHandler
	Orders      *OrderHandler
	Categories  *CategoryHandler
	Collections *CollectionHandler
	Inventory   *InventoryHandler
	Store       *StoreHandler
	Health      *HealthHandler
}

// RegisterRoutes wires the versioned API under /{prefix}/v1. rateLimit may be
// nil, in which case the storefront group runs unlimited.
func RegisterRoutes(e *echo.Echo, prefix string, h Handlers, rateLimit echo.MiddlewareFunc) {
	e.GET("/health", h.Health.Health)
	e.GET("/health/live", h.Health.Live)
	e.GET("/health/ready", h.Health.Ready)

	api := e.Group("/" + prefix + "/v1")

	storefront := api.Group("")
	if rateLimit != nil {
		storefront.Use(rateLimit)
	}

	products := storefront.Group("/products")
	products.GET("", h.Products.List)
	products.POST("", h.Products.Create)
	products.GET("/handle/:handle", h.Products.GetByHandle)
	products.GET("/category/:id", h.Products.ListByCategory)
	products.GET("/collection/:id", h.Products.ListByCollection)
	products.GET("/:id", h.Products.Get)

	cart := storefront.Group("/cart")
	cart.POST("", h.Cart.Create)
	cart.GET("/:id", h.Cart.Get)
	cart.POST("/:id/line-items", h.Cart.AddLineItem)
	cart.PUT("/:id/line-items/:itemId", h.Cart.UpdateLineItem)
	cart.DELETE("/:id/line-items/:itemId", h.Cart.RemoveLineItem)

	checkout := storefront.Group("/checkout")
	checkout.GET("/:cartId/shipping-options", h.Checkout.ShippingOptions)
	checkout.POST("/:cartId/shipping-address", h.Checkout.ShippingAddress)
	checkout.POST("/:cartId/shipping-option", h.Checkout.ShippingOption)
	checkout.POST("/:cartId/payment-sessions", h.Checkout.PaymentSessions)
	checkout.POST("/:cartId/complete", h.Checkout.Complete)

	auth := storefront.Group("/auth")
	auth.POST("/register", h.Auth.Register)
	auth.POST("/login", h.Auth.Login)
	auth.GET("/me", h.Auth.Me)
	auth.POST("/logout", h.Auth.Logout)

	orders := storefront.Group("/orders")
	orders.GET("", h.Orders.List)
	orders.GET("/confirmation/:id", h.Orders.Confirmation)
	orders.GET("/:id", h.Orders.Get)

	categories := api.Group("/categories")
	categories.GET("", h.Categories.List)
	categories.GET("/tree", h.Categories.Tree)
	categories.POST("", h.Categories.Create)
	categories.GET("/:id", h.Categories.Get)
	categories.PUT("/:id", h.Categories.Update)
	categories.DELETE("/:id", h.Categories.Delete)

	collections := api.Group("/collections")
	collections.GET("", h.Collections.List)
	collections.POST("", h.Collections.Create)
	collections.GET("/:id", h.Collections.Get)
	collections.PUT("/:id", h.Collections.Update)
	collections.DELETE("/:id", h.Collections.Delete)
	collections.POST("/:id/products", h.Collections.UpdateProducts)

	inventory := api.Group("/inventory")
	inventory.GET("", h.Inventory.List)
	inventory.GET("/location/:locationId", h.Inventory.ListByLocation)
	inventory.GET("/:id", h.Inventory.Get)
	inventory.PUT("/:id", h.Inventory.UpdateItem)
	inventory.POST("/:id/location-levels", h.Inventory.AddLocationLevel)
	inventory.PUT("/:id/location-levels/:locationId", h.Inventory.UpdateLocationLevel)
	inventory.DELETE("/:id/location-levels/:locationId", h.Inventory.DeleteLocationLevel)

	store := api.Group("/store")
	store.GET("", h.Store.GetStore)
	store.PUT("", h.Store.UpdateStore)
	store.GET("/currencies", h.Store.ListCurrencies)
	store.POST("/currencies", h.Store.AddCurrency)
	store.DELETE("/currencies/:code", h.Store.RemoveCurrency)

	store.GET("/sales-channels", h.Store.ListSalesChannels)
	store.POST("/sales-channels", h.Store.CreateSalesChannel)
	store.GET("/sales-channels/:id", h.Store.GetSalesChannel)
	store.PUT("/sales-channels/:id", h.Store.UpdateSalesChannel)
	store.DELETE("/sales-channels/:id", h.Store.DeleteSalesChannel)
	store.POST("/sales-channels/:id/products", h.Store.ManageSalesChannelProducts)

	store.GET("/regions", h.Store.ListRegions)
	store.POST("/regions", h.Store.CreateRegion)
	store.GET("/regions/:id", h.Store.GetRegion)
	store.PUT("/regions/:id", h.Store.UpdateRegion)
	store.DELETE("/regions/:id", h.Store.DeleteRegion)

	store.GET("/stock-locations", h.Store.ListStockLocations)
	store.POST("/stock-locations", h.Store.CreateStockLocation)
	store.GET("/stock-locations/:id", h.Store.GetStockLocation)
	store.PUT("/stock-locations/:id", h.Store.UpdateStockLocation)
	store.DELETE("/stock-locations/:id", h.Store.DeleteStockLocation)
	store.POST("/stock-locations/:id/sales-channels", h.Store.ManageStockLocationSalesChannels)

	store.GET("/api-keys", h.Store.ListAPIKeys)
	store.POST("/api-keys", h.Store.CreateAPIKey)
	store.GET("/api-keys/:id", h.Store.GetAPIKey)
	store.PUT("/api-keys/:id", h.Store.UpdateAPIKey)
	store.DELETE("/api-keys/:id", h.Store.DeleteAPIKey)
	store.POST("/api-keys/:id/revoke", h.Store.RevokeAPIKey)
	store.POST("/api-keys/:id/sales-channels", h.Store.ManageAPIKeySalesChannels)
}
