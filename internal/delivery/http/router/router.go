// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"backoffice/internal/delivery/http/middleware"
	"backoffice/internal/delivery/http/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	AuthHandler     *handler.AuthHandler
	ProductHandler  *handler.ProductHandler
	BundleHandler   *handler.BundleHandler
	CategoryHandler *handler.CategoryHandler
	DiscountHandler *handler.DiscountHandler
	SaleHandler     *handler.SaleHandler
	AuthMiddleware  *middleware.AuthMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	authHandler     *handler.AuthHandler
	productHandler  *handler.ProductHandler
	bundleHandler   *handler.BundleHandler
	categoryHandler *handler.CategoryHandler
	discountHandler *handler.DiscountHandler
	saleHandler     *handler.SaleHandler
	authMiddleware  *middleware.AuthMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		authHandler:     params.AuthHandler,
		productHandler:  params.ProductHandler,
		bundleHandler:   params.BundleHandler,
		categoryHandler: params.CategoryHandler,
		discountHandler: params.DiscountHandler,
		saleHandler:     params.SaleHandler,
		authMiddleware:  params.AuthMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	// Auth routes
	authGroup := e.Group("/auth")
	{
		authGroup.POST("/login", r.authHandler.Login)
		authGroup.GET("/profile", r.authHandler.GetProfile, r.authMiddleware.Authenticate)
	}

	// Product routes: reads plus availability cascades
	productGroup := e.Group("/products")
	productGroup.Use(r.authMiddleware.Authenticate)
	{
		productGroup.GET("", r.productHandler.ListProducts)
		productGroup.GET("/:productId", r.productHandler.GetProduct)
		productGroup.POST("/:productId/block", r.productHandler.BlockProduct)
		productGroup.POST("/:productId/unblock", r.productHandler.UnblockProduct)
	}

	// Bundle routes
	bundleGroup := e.Group("/bundles")
	bundleGroup.Use(r.authMiddleware.Authenticate)
	{
		bundleGroup.POST("", r.bundleHandler.CreateBundle)
		bundleGroup.GET("", r.bundleHandler.ListBundles)
		bundleGroup.GET("/:bundleId", r.bundleHandler.GetBundle)
		bundleGroup.PATCH("/:bundleId", r.bundleHandler.UpdateBundle)
		bundleGroup.DELETE("/:bundleId", r.bundleHandler.DeleteBundle)
		bundleGroup.POST("/:bundleId/block", r.bundleHandler.BlockBundle)
		bundleGroup.POST("/:bundleId/unblock", r.bundleHandler.UnblockBundle)
	}

	// Category routes
	categoryGroup := e.Group("/categories")
	categoryGroup.Use(r.authMiddleware.Authenticate)
	{
		categoryGroup.POST("", r.categoryHandler.CreateCategory)
		categoryGroup.GET("", r.categoryHandler.ListCategories)
		categoryGroup.GET("/:categoryId", r.categoryHandler.GetCategory)
		categoryGroup.DELETE("/:categoryId", r.categoryHandler.DeleteCategory)
	}

	// Discount routes
	discountGroup := e.Group("/discounts")
	discountGroup.Use(r.authMiddleware.Authenticate)
	{
		discountGroup.POST("", r.discountHandler.CreateDiscount)
		discountGroup.GET("", r.discountHandler.ListDiscounts)
		discountGroup.GET("/:discountId", r.discountHandler.GetDiscount)
		discountGroup.PATCH("/:discountId", r.discountHandler.UpdateDiscount)
		discountGroup.DELETE("/:discountId", r.discountHandler.DeleteDiscount)
		discountGroup.POST("/:discountId/apply", r.discountHandler.ApplyDiscount)
		discountGroup.DELETE("/:discountId/products/:productId", r.discountHandler.RemoveProductFromDiscount)
		discountGroup.DELETE("/:discountId/bundles/:bundleId", r.discountHandler.RemoveBundleFromDiscount)
	}

	// Sale routes
	saleGroup := e.Group("/sales")
	saleGroup.Use(r.authMiddleware.Authenticate)
	{
		saleGroup.POST("", r.saleHandler.CreateSale)
		saleGroup.GET("", r.saleHandler.ListSales)
		saleGroup.GET("/:saleId", r.saleHandler.GetSale)
		saleGroup.PATCH("/:saleId", r.saleHandler.UpdateSale)
		saleGroup.DELETE("/:saleId", r.saleHandler.DeleteSale)
		saleGroup.POST("/:saleId/products", r.saleHandler.AddProductsToSale)
		saleGroup.POST("/:saleId/bundles", r.saleHandler.AddBundlesToSale)
		saleGroup.DELETE("/:saleId/products/:productId", r.saleHandler.RemoveProductFromSale)
		saleGroup.DELETE("/:saleId/categories/:categoryId", r.saleHandler.RemoveCategoryFromSale)
	}
}
