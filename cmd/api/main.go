package main

import (
	"os"
	"os/signal"
	"syscall"

	"go-salestrack/internal/handler"
	"go-salestrack/internal/middleware"
	"go-salestrack/internal/model"
	"go-salestrack/internal/repository"
	"go-salestrack/internal/service"
	"go-salestrack/pkg/database"
	"go-salestrack/pkg/mailer"
	"go-salestrack/pkg/upload"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

func main() {
	// 1. Load Env
	if err := godotenv.Load(); err != nil {
		logrus.Warn(".env file not found")
	}
	if os.Getenv("JWT_SECRET") == "" {
		logrus.Fatal("JWT_SECRET is not set")
	}

	// 2. Setup Database
	db := database.ConnectDB()
	migrate(db)

	// 3. Upload directories must exist before the first multipart request
	if err := upload.EnsureDirs(); err != nil {
		logrus.Fatalf("Failed to create upload directories: %v", err)
	}

	// 4. Dependency Injection (Wiring Layers)
	accountRepo := repository.NewAccountRepo(db)
	shopRepo := repository.NewShopRepo(db)
	categoryRepo := repository.NewCategoryRepo(db)
	productRepo := repository.NewProductRepo(db)
	imageRepo := repository.NewProductImageRepo(db)
	verificationRepo := repository.NewVerificationRepo(db)

	authService := service.NewAuthService(accountRepo, shopRepo, verificationRepo, mailer.NewFromEnv())
	adminService := service.NewAdminService(accountRepo)
	shopService := service.NewShopService(shopRepo, productRepo)
	categoryService := service.NewCategoryService(categoryRepo, shopRepo, productRepo)
	productService := service.NewProductService(productRepo, imageRepo, categoryRepo, shopRepo)

	authHandler := handler.NewAuthHandler(authService)
	adminHandler := handler.NewAdminHandler(adminService)
	customerHandler := handler.NewCustomerHandler(authService)
	shopHandler := handler.NewShopHandler(shopService)
	categoryHandler := handler.NewCategoryHandler(categoryService)
	productHandler := handler.NewProductHandler(productService)
	publicHandler := handler.NewPublicHandler(productService)

	// 5. Setup Fiber
	app := fiber.New(fiber.Config{
		AppName:   "SalesTrack API v1.0",
		BodyLimit: 25 * 1024 * 1024, // 4 images + form fields
	})

	// Middleware
	app.Use(logger.New())  // Logging request
	app.Use(recover.New()) // Panic recovery
	app.Use(cors.New())    // CORS

	// Uploaded files are served statically
	app.Static("/uploads", "./uploads")

	// 6. Routes
	app.Get("/", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"message": "SalesTrack API",
			"version": "1.0.0",
		})
	})

	api := app.Group("/api")

	// ============ PUBLIC ROUTES ============
	auth := api.Group("/auth")
	auth.Post("/login", authHandler.Login)
	auth.Post("/admin/login", authHandler.AdminLogin)
	auth.Post("/register-admin", adminHandler.RegisterAdmin)
	auth.Post("/forgot-password", authHandler.ForgotPassword)
	auth.Post("/verify-email", authHandler.VerifyEmail)
	auth.Post("/reset-password", authHandler.ResetPassword)
	auth.Get("/profile", middleware.RequireAuth(accountRepo), authHandler.GetProfile)

	// Public storefront listing (no authentication)
	api.Get("/products", publicHandler.GetProducts)

	// ============ ADMIN ROUTES ============
	admin := api.Group("/admin", middleware.RequireAuth(accountRepo), middleware.RequireAdmin())
	admin.Post("/customers", adminHandler.CreateCustomer)
	admin.Get("/customers", adminHandler.GetCustomers)
	admin.Get("/customers/:id", adminHandler.GetCustomer)
	admin.Put("/customers/:id/status", adminHandler.UpdateCustomerStatus)
	admin.Delete("/customers/:id", adminHandler.DeleteCustomer)

	// ============ CUSTOMER ROUTES ============
	customer := api.Group("/customer", middleware.RequireAuth(accountRepo), middleware.RequireCustomer())

	customer.Get("/profile", customerHandler.GetProfile)
	customer.Put("/profile", customerHandler.UpdateProfile)

	customer.Post("/shops", shopHandler.CreateShop)
	customer.Get("/shops", shopHandler.GetMyShops)
	customer.Get("/shops/:id", shopHandler.GetShop)
	customer.Put("/shops/:id", shopHandler.UpdateShop)
	customer.Delete("/shops/:id", shopHandler.DeleteShop)

	customer.Post("/categories", categoryHandler.CreateCategory)
	customer.Get("/categories", categoryHandler.GetCategories)
	customer.Get("/categories/simple", categoryHandler.GetCategoriesSimple)
	customer.Get("/categories/:id", categoryHandler.GetCategory)
	customer.Put("/categories/:id", categoryHandler.UpdateCategory)
	customer.Delete("/categories/:id", categoryHandler.DeleteCategory)

	customer.Post("/products", productHandler.CreateProduct)
	customer.Get("/products", productHandler.GetProducts)
	customer.Get("/products/:id", productHandler.GetProduct)
	customer.Put("/products/:id", productHandler.UpdateProduct)
	customer.Delete("/products/:id", productHandler.DeleteProduct)
	customer.Post("/products/:id/images", productHandler.AddImages)
	customer.Delete("/products/images/:imageId", productHandler.DeleteImage)

	// Unknown routes get a JSON 404 instead of Fiber's plain text
	app.Use(func(c *fiber.Ctx) error {
		return c.Status(404).JSON(fiber.Map{"message": "Route not found"})
	})

	// 7. Graceful Shutdown
	go func() {
		if err := app.Listen(":" + listenPort()); err != nil {
			logrus.Panic(err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logrus.Info("Shutting down server...")
	if err := app.Shutdown(); err != nil {
		logrus.Fatal("Server forced to shutdown: ", err)
	}

	logrus.Info("Server exited")
}

// listenPort returns the PORT env value, defaulting to 8000
func listenPort() string {
	if port := os.Getenv("PORT"); port != "" {
		return port
	}
	return "8000"
}

// uniqueIndexDDL holds the unique indexes GORM tags can't express. Every
// index is partial over live rows: a soft-deleted account or shop must not
// hold an email or phone hostage, and the single-admin rule only counts a
// live admin.
var uniqueIndexDDL = []string{
	`CREATE UNIQUE INDEX IF NOT EXISTS idx_accounts_email_live
		ON accounts (email) WHERE deleted_at IS NULL`,
	`CREATE UNIQUE INDEX IF NOT EXISTS idx_accounts_phone_live
		ON accounts (phone) WHERE deleted_at IS NULL`,
	`CREATE UNIQUE INDEX IF NOT EXISTS idx_accounts_single_admin
		ON accounts (role) WHERE role = 'admin' AND deleted_at IS NULL`,
	`CREATE UNIQUE INDEX IF NOT EXISTS idx_shops_email_live
		ON shops (shop_email) WHERE deleted_at IS NULL`,
	`CREATE UNIQUE INDEX IF NOT EXISTS idx_shops_phone_live
		ON shops (phone) WHERE deleted_at IS NULL`,
}

// migrate runs the schema migration plus the partial unique indexes
func migrate(db *gorm.DB) {
	if err := db.AutoMigrate(
		&model.Account{},
		&model.Shop{},
		&model.Category{},
		&model.Product{},
		&model.ProductImage{},
		&model.VerificationCode{},
	); err != nil {
		logrus.Fatalf("Migration failed: %v", err)
	}

	for _, ddl := range uniqueIndexDDL {
		if err := db.Exec(ddl).Error; err != nil {
			logrus.Fatalf("Failed to create unique index: %v", err)
		}
	}
}
