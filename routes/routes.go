package routes

import (
	"context"
	"log"
	"os"

	"slime-shop/config"
	"slime-shop/controllers"
	"slime-shop/middleware"
	"slime-shop/repositories"
	"slime-shop/services"
	"slime-shop/utils"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

func SetupRoutes(router *gin.Engine) {
	productRepo := repositories.NewProductRepository(config.DB)
	categoryRepo := repositories.NewCategoryRepository(config.DB)
	orderRepo := repositories.NewOrderRepository(config.DB)
	adminRepo := repositories.NewAdminRepository(config.DB)
	cartStore := repositories.NewCartStore(config.RedisClient, config.AppConfig.CartTTL)

	seedAdmin(adminRepo)

	var mailer services.Mailer
	if emailService, err := services.NewEmailService(); err != nil {
		log.Println("Warning:", err, "- checkout dispatch will fail until SMTP is configured")
	} else {
		mailer = emailService
	}

	cartCookie := utils.NewCartCookie(
		[]byte(config.AppConfig.CartCookieSecret),
		config.AppConfig.CartCookieName,
		config.AppConfig.CartTTL,
		config.AppConfig.AppEnv == "production",
	)

	cartService := services.NewCartService(productRepo, cartStore)
	checkoutService := services.NewCheckoutService(cartStore, orderRepo, mailer)
	authService := services.NewAuthService(services.NewDBCredentialVerifier(adminRepo))

	productCtrl := controllers.NewProductController(productRepo, categoryRepo)
	categoryCtrl := controllers.NewCategoryController(categoryRepo)
	cartCtrl := controllers.NewCartController(cartService, cartCookie)
	checkoutCtrl := controllers.NewCheckoutController(checkoutService, cartCookie)
	authCtrl := controllers.NewAuthController(authService)
	uploadCtrl := controllers.NewUploadController()

	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	router.GET("/health", func(c *gin.Context) { c.JSON(200, gin.H{"status": "ok"}) })

	api := router.Group("/api")
	api.Use(middleware.DBCheckMiddleware())
	{
		api.GET("/products", productCtrl.GetProducts)
		api.GET("/products/:id", productCtrl.GetProductByID)
		api.GET("/categories", categoryCtrl.GetCategories)
		api.POST("/auth/login", authCtrl.Login)

		api.GET("/cart", cartCtrl.GetCart)
		api.POST("/cart/items", cartCtrl.AddItem)
		api.PATCH("/cart/items/:productID", cartCtrl.UpdateItem)
		api.DELETE("/cart/items/:productID", cartCtrl.RemoveItem)
		api.DELETE("/cart", cartCtrl.ClearCart)
		api.POST("/checkout", checkoutCtrl.Submit)

		admin := api.Group("/")
		admin.Use(middleware.AuthMiddleware(), middleware.AdminMiddleware())
		{
			admin.POST("/products", productCtrl.CreateProduct)
			admin.PUT("/products/:id", productCtrl.UpdateProduct)
			admin.DELETE("/products/:id", productCtrl.DeleteProduct)

			admin.POST("/categories", categoryCtrl.CreateCategory)
			admin.PUT("/categories/:id", categoryCtrl.UpdateCategory)
			admin.DELETE("/categories/:id", categoryCtrl.DeleteCategory)
			admin.PATCH("/categories/:id/reorder", categoryCtrl.ReorderCategory)

			admin.POST("/uploads", uploadCtrl.UploadImage)
		}
	}

	router.Static("/uploads", config.AppConfig.UploadDir)
}

// seedAdmin creates the initial admin account from the environment so a
// fresh deployment can log in without a manual insert.
func seedAdmin(adminRepo *repositories.AdminRepository) {
	email := os.Getenv("ADMIN_EMAIL")
	password := os.Getenv("ADMIN_PASSWORD")
	if email == "" || password == "" {
		return
	}

	hash, err := utils.HashPassword(password)
	if err != nil {
		log.Println("Warning: failed to hash admin password:", err)
		return
	}
	if err := adminRepo.EnsureSeed(context.Background(), email, hash); err != nil {
		log.Println("Warning: failed to seed admin account:", err)
		return
	}
	log.Println("Admin account ensured for", email)
}
