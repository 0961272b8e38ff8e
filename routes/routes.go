package routes

import (
	"time"

	"game-store-service/controllers"
	"game-store-service/middleware"
	"game-store-service/services"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"
)

// Controllers bundles everything Register wires into the router.
type Controllers struct {
	Products   *controllers.ProductController
	Categories *controllers.CategoryController
	Campaigns  *controllers.CampaignController
	Inventory  *controllers.InventoryController
	Orders     *controllers.OrderController
	Auth       *controllers.AuthController
	Content    *controllers.ContentController
}

// Register sets up all storefront and admin routes.
func Register(r *gin.Engine, c Controllers, tokens *services.TokenService) {
	// Public storefront
	r.GET("/products", c.Products.ListProducts)
	r.GET("/products/:id", c.Products.GetProduct)
	r.GET("/categories", c.Categories.ListCategories)
	r.GET("/content/slides", c.Content.ListSlides)
	r.GET("/content/site-config", c.Content.GetSiteConfig)

	// Checkout works for both guests and signed-in customers.
	r.POST("/orders", middleware.OptionalAuth(tokens), c.Orders.Checkout)

	// Auth, rate-limited per client IP
	auth := r.Group("/auth")
	auth.Use(middleware.RateLimitMiddleware(rate.Every(time.Minute/30), 10))
	auth.POST("/register", c.Auth.Register)
	auth.POST("/login", c.Auth.Login)
	auth.POST("/otp", c.Auth.RequestOTP)
	auth.POST("/otp/verify", c.Auth.VerifyOTP)

	// Signed-in customers
	me := r.Group("")
	me.Use(middleware.AuthMiddleware(tokens))
	me.GET("/auth/me", c.Auth.GetProfile)
	me.GET("/auth/me/vouchers", c.Auth.ListMyVouchers)
	me.GET("/orders/mine", c.Orders.ListMyOrders)

	// Admin console
	admin := r.Group("/admin")
	admin.Use(middleware.AuthMiddleware(tokens), middleware.AdminOnly())

	admin.POST("/products", c.Products.CreateProduct)
	admin.PATCH("/products/:id", c.Products.UpdateProduct)
	admin.DELETE("/products/:id", c.Products.DeleteProduct)

	admin.POST("/categories", c.Categories.CreateCategory)
	admin.PATCH("/categories/:id", c.Categories.UpdateCategory)
	admin.DELETE("/categories/:id", c.Categories.DeleteCategory)

	admin.POST("/campaigns", c.Campaigns.CreateCampaign)
	admin.GET("/campaigns", c.Campaigns.ListCampaigns)
	admin.GET("/campaigns/:id", c.Campaigns.GetCampaign)
	admin.PATCH("/campaigns/:id", c.Campaigns.UpdateCampaign)
	admin.DELETE("/campaigns/:id", c.Campaigns.DeleteCampaign)

	admin.POST("/stock-imports", c.Inventory.ImportStock)
	admin.GET("/stock-imports", c.Inventory.ListImports)

	admin.GET("/orders", c.Orders.ListOrders)
	admin.GET("/orders/:id", c.Orders.GetOrder)
	admin.PATCH("/orders/:id/status", c.Orders.UpdateStatus)

	admin.PUT("/content/slides", c.Content.SaveSlide)
	admin.DELETE("/content/slides/:id", c.Content.DeleteSlide)
	admin.PUT("/content/site-config", c.Content.SetSiteConfig)
}
