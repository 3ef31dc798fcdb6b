package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"go-shop-ledger/internal/calendar"
	"go-shop-ledger/internal/config"
	"go-shop-ledger/internal/handler"
	"go-shop-ledger/internal/middleware"
	"go-shop-ledger/internal/model"
	"go-shop-ledger/internal/repository"
	"go-shop-ledger/internal/scheduler"
	"go-shop-ledger/internal/service"
	"go-shop-ledger/internal/ws"
	"go-shop-ledger/pkg/database"

	"github.com/gofiber/contrib/websocket"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/joho/godotenv"
	"gorm.io/gorm"
)

func main() {
	// 1. Load Env
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: .env file not found")
	}
	cfg := config.Load()

	// 2. Setup Database
	db := database.ConnectDB()
	db.AutoMigrate(
		&model.Product{},
		&model.Shop{},
		&model.Stock{},
		&model.DailySale{},
		&model.LedgerEntry{},
		&model.User{},
	)

	// 3. Seed default operator account
	seedOperator(db)

	// 4. Setup WebSocket Hub
	wsHub := ws.NewHub()
	go wsHub.Run()

	// 5. Dependency Injection (Wiring Layers)
	store := repository.NewStore(db)
	userRepo := repository.NewUserRepo(db)

	ledgerService := service.NewLedgerService(store, cfg.LookbackDays)
	reportService := service.NewReportService(store, wsHub, cfg.LookbackDays)
	backfillService := service.NewBackfillService(store, reportService, cfg.BackfillIdleDays)
	catalogService := service.NewCatalogService(store)
	overviewService := service.NewOverviewService(store)
	authService := service.NewAuthService(userRepo)

	reportHandler := handler.NewReportHandler(reportService)
	catalogHandler := handler.NewCatalogHandler(catalogService, ledgerService)
	overviewHandler := handler.NewOverviewHandler(overviewService)
	authHandler := handler.NewAuthHandler(authService)

	// 6. Setup Fiber
	app := fiber.New(fiber.Config{
		AppName: "Shop Ledger v1.0",
	})

	// Middleware
	app.Use(logger.New())  // Logging request
	app.Use(recover.New()) // Panic recovery
	app.Use(cors.New())    // CORS

	// 7. Routes
	api := app.Group("/api/v1")

	// ============ PUBLIC ROUTES ============
	auth := api.Group("/auth")
	auth.Post("/login", authHandler.Login)
	auth.Post("/reset-password", authHandler.ResetPassword)

	// ============ PROTECTED ROUTES ============
	protected := api.Group("", middleware.RequireAuth(userRepo))

	// Overview
	protected.Get("/overview/daily-sales", overviewHandler.GetDailySales)
	protected.Get("/stocks", overviewHandler.GetStockDetails)

	// Reports
	protected.Post("/reports", reportHandler.SubmitReport)

	// Products
	protected.Get("/products", catalogHandler.GetProducts)
	protected.Post("/products", catalogHandler.CreateProduct)

	// Shops
	protected.Get("/shops", catalogHandler.GetShops)
	protected.Post("/shops", catalogHandler.CreateShop)
	protected.Get("/shops/:id", catalogHandler.GetShop)
	protected.Put("/shops/:id", catalogHandler.UpdateShop)
	protected.Delete("/shops/:id", catalogHandler.DeleteShop)
	protected.Get("/shops/:id/products", catalogHandler.GetShopProducts)
	protected.Get("/shops/:id/ledger", catalogHandler.GetShopLedger)

	// WebSocket Route
	app.Use("/ws", func(c *fiber.Ctx) error {
		if websocket.IsWebSocketUpgrade(c) {
			return c.Next()
		}
		return c.SendStatus(fiber.StatusUpgradeRequired)
	})
	app.Get("/ws", websocket.New(func(c *websocket.Conn) {
		wsHub.Register <- c
		defer func() { wsHub.Unregister <- c }()

		for {
			// Keep alive loop
			if _, _, err := c.ReadMessage(); err != nil {
				break
			}
		}
	}))

	// 8. Daily backfill scheduler
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	backfill := scheduler.NewDaily(cfg.BackfillAt, func() {
		backfillService.Run(calendar.Today())
	})
	backfill.Start(ctx)

	// 9. Graceful Shutdown
	go func() {
		if err := app.Listen(":" + cfg.HTTPPort); err != nil {
			log.Panic(err)
		}
	}()

	// Wait for interrupt signal to gracefully shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("Shutting down server...")
	cancel()
	if err := app.Shutdown(); err != nil {
		log.Fatal("Server forced to shutdown:", err)
	}

	log.Println("Server exited")
}

// seedOperator creates the default operator account if it doesn't exist
func seedOperator(db *gorm.DB) {
	userRepo := repository.NewUserRepo(db)

	if _, err := userRepo.FindByEmail("admin@example.com"); err == nil {
		return
	}

	admin := &model.User{
		Email:    "admin@example.com",
		FullName: "Shop Administrator",
		IsActive: true,
	}
	if err := admin.SetPassword("admin123"); err != nil {
		log.Printf("Warning: Failed to hash admin password: %v", err)
		return
	}

	if err := userRepo.Create(admin); err != nil {
		log.Printf("Warning: Failed to create admin user: %v", err)
	} else {
		log.Println("Admin user created: admin@example.com / admin123")
	}
}
