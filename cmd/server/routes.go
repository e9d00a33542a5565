package main

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"tradeport.backend/internal/interfaces/http/handlers"
	"tradeport.backend/internal/interfaces/http/middleware"
	"tradeport.backend/pkg/metrics"
)

type routeDeps struct {
	authHandler         *handlers.AuthHandler
	onboardingHandler   *handlers.OnboardingHandler
	verificationHandler *handlers.VerificationHandler
	adminHandler        *handlers.AdminHandler
	productHandler      *handlers.ProductHandler
	orderHandler        *handlers.OrderHandler
	authMiddleware      gin.HandlerFunc
}

func applyCORSMiddleware(r *gin.Engine) {
	r.Use(func(c *gin.Context) {
		c.Header("Access-Control-Allow-Origin", "*")
		c.Header("Access-Control-Allow-Methods", "GET, POST, PUT, PATCH, DELETE, OPTIONS")
		c.Header("Access-Control-Allow-Headers", "Authorization, Content-Type, X-Request-ID, Idempotency-Key")

		if c.Request.Method == http.MethodOptions {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}
		c.Next()
	})
}

func registerHealthRoute(r *gin.Engine) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	r.GET("/metrics", metrics.Handler())
}

func registerAPIV1Routes(r *gin.Engine, d routeDeps) {
	v1 := r.Group("/api/v1")
	{
		// Auth routes (public except /me)
		auth := v1.Group("/auth")
		{
			auth.POST("/register", d.authHandler.Register)
			auth.POST("/login", d.authHandler.Login)
			auth.POST("/refresh", d.authHandler.RefreshToken)
			auth.GET("/me", d.authMiddleware, d.authHandler.GetMe)
			auth.PUT("/me", d.authMiddleware, d.authHandler.UpdateMe)
		}

		// Public catalog
		products := v1.Group("/products")
		{
			products.GET("", d.productHandler.BrowseProducts)
			products.GET("/:id", d.productHandler.GetProduct)
		}

		// Seller routes (SELLER role)
		seller := v1.Group("/seller")
		seller.Use(d.authMiddleware, middleware.RequireSeller())
		{
			register := seller.Group("/register")
			{
				register.PUT("/business", d.onboardingHandler.SubmitBusinessInfo)
				register.POST("/identity", d.onboardingHandler.UploadIdentityDocument)
				register.PUT("/identity", d.onboardingHandler.SaveDocumentMetadata)
				register.POST("/submit", d.onboardingHandler.FinalizeRegistration)
				register.POST("/resubmit", d.onboardingHandler.Resubmit)
				register.GET("/status", d.onboardingHandler.RegistrationStatus)
			}

			sellerProducts := seller.Group("/products")
			{
				sellerProducts.POST("", d.productHandler.CreateProduct)
				sellerProducts.GET("", d.productHandler.MyProducts)
				sellerProducts.PUT("/:id", d.productHandler.UpdateProduct)
				sellerProducts.DELETE("/:id", d.productHandler.DeleteProduct)
			}
		}

		// Buyer routes (BUYER role)
		buyer := v1.Group("/buyer")
		buyer.Use(d.authMiddleware, middleware.RequireBuyer())
		{
			buyer.POST("/verify-identity", d.verificationHandler.VerifyIdentity)

			orders := buyer.Group("/orders")
			{
				orders.POST("", middleware.IdempotencyMiddleware(), d.orderHandler.CreateOrder)
				orders.GET("", d.orderHandler.ListOrders)
				orders.GET("/:id", d.orderHandler.GetOrder)
			}
		}

		// Admin routes (ADMIN role)
		admin := v1.Group("/admin")
		admin.Use(d.authMiddleware, middleware.RequireAdmin())
		{
			approvals := admin.Group("/seller-approvals")
			{
				approvals.GET("/pending", d.adminHandler.ListPendingApprovals)
				approvals.POST("/:id/approve", d.adminHandler.ApproveSeller)
				approvals.POST("/:id/reject", d.adminHandler.RejectSeller)
			}

			admin.GET("/sellers", d.adminHandler.ListSellers)
			admin.GET("/users", d.adminHandler.ListUsers)
			admin.DELETE("/users/:id", d.adminHandler.DeleteUser)
			admin.POST("/users/:id/block", d.adminHandler.BlockUser)
			admin.POST("/users/:id/unblock", d.adminHandler.UnblockUser)
		}
	}
}
