package routes

import (
	"sabores-api/handlers"
	"sabores-api/middleware"
	"sabores-api/models"

	"github.com/gin-gonic/gin"
)

func SetupRoutes(r *gin.Engine) {
	// ── Public routes ──────────────────────────────────────────────
	public := r.Group("/api")
	{
		// Auth
		public.POST("/auth/register", handlers.Register)
		public.POST("/auth/login", handlers.Login)

		// Menu (no auth needed)
		public.GET("/menu", handlers.GetMenu)
		public.GET("/categories", handlers.GetMenuByCategories)
		public.GET("/menu/:id", handlers.GetMenuItem)

		// State machine info (great for docs/Postman)
		public.GET("/state-machine", handlers.GetStateMachineInfo)
	}

	// ── Session routes (guests welcome) ────────────────────────────
	session := r.Group("/api")
	session.Use(middleware.AuthOptional())
	{
		session.GET("/cart", handlers.GetCart)
		session.POST("/cart/items", handlers.AddToCart)
		session.PUT("/cart/items/:itemId", handlers.UpdateCartItem)
		session.DELETE("/cart/items/:itemId", handlers.RemoveCartItem)
		session.PUT("/cart/lines/:lineId", handlers.UpdateCartLine)
		session.DELETE("/cart/lines/:lineId", handlers.RemoveCartLine)
		session.DELETE("/cart", handlers.ClearCart)

		session.POST("/orders", handlers.Checkout)
	}

	// ── Authenticated routes ───────────────────────────────────────
	auth := r.Group("/api")
	auth.Use(middleware.AuthRequired())
	{
		auth.GET("/profile", handlers.GetProfile)
		auth.PUT("/profile", handlers.UpdateProfile)

		auth.GET("/orders", handlers.GetMyOrders)
		auth.GET("/orders/:id", handlers.GetOrderDetail)
		auth.PUT("/orders/:id/cancel", handlers.CancelOrder)

		auth.GET("/favorites", handlers.GetFavorites)
		auth.POST("/favorites/:itemId", handlers.AddFavorite)
		auth.DELETE("/favorites/:itemId", handlers.RemoveFavorite)
	}

	// ── Delivery routes ────────────────────────────────────────────
	delivery := r.Group("/api/delivery")
	delivery.Use(middleware.AuthRequired(), middleware.RoleRequired(models.RoleDelivery))
	{
		delivery.GET("/orders/ready", handlers.GetReadyOrders)
		delivery.PUT("/orders/:id/deliver", handlers.DeliverOrder)
	}

	// ── Admin routes ───────────────────────────────────────────────
	admin := r.Group("/api/admin")
	admin.Use(middleware.AuthRequired(), middleware.RoleRequired(models.RoleAdmin))
	{
		// Menu management
		admin.POST("/menu", handlers.AddMenuItem)
		admin.PUT("/menu/:itemId", handlers.UpdateMenuItem)
		admin.DELETE("/menu/:itemId", handlers.DeleteMenuItem)

		// Stock management
		admin.GET("/ingredients", handlers.GetIngredients)
		admin.POST("/ingredients", handlers.CreateIngredient)
		admin.PUT("/ingredients/:id", handlers.UpdateIngredient)
		admin.PUT("/ingredients/:id/stock", handlers.RestockIngredient)
		admin.DELETE("/ingredients/:id", handlers.DeleteIngredient)

		// Order management
		admin.GET("/orders", handlers.AdminGetAllOrders)
		admin.PUT("/orders/:id/status", handlers.AdminUpdateOrderStatus)
		admin.PUT("/orders/:id/force-status", handlers.AdminForceOrderStatus)
		admin.DELETE("/orders/:id", handlers.AdminDeleteOrder)

		// User management
		admin.GET("/users", handlers.AdminGetAllUsers)
		admin.GET("/users/:id", handlers.AdminGetUser)
		admin.DELETE("/users/:id", handlers.AdminDeleteUser)
	}
}
