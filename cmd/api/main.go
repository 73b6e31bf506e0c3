package main

import (
	"log"
	"os"
	"os/signal"
	"syscall"

	"go-dashboard-api/internal/access"
	"go-dashboard-api/internal/handler"
	"go-dashboard-api/internal/middleware"
	"go-dashboard-api/internal/model"
	"go-dashboard-api/internal/repository"
	"go-dashboard-api/internal/service"
	"go-dashboard-api/internal/ws"
	"go-dashboard-api/pkg/database"

	"github.com/gofiber/contrib/websocket"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"gorm.io/gorm"

	"github.com/joho/godotenv"
)

func main() {
	// 1. Load Env
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: .env file not found")
	}

	// 2. Setup Database
	db := database.ConnectDB()
	db.AutoMigrate(
		&model.CustomRole{},
		&model.User{},
		&model.Client{},
		&model.Activity{},
		&model.Notification{},
		&model.Setting{},
	)

	// 3. Seed superadmin account
	seedSuperadmin(db)

	// 4. Setup WebSocket Hub
	wsHub := ws.NewHub()
	go wsHub.Run()

	// 5. Dependency Injection (Wiring Layers)
	userRepo := repository.NewUserRepo(db)
	roleRepo := repository.NewCustomRoleRepo(db)
	clientRepo := repository.NewClientRepo(db)
	activityRepo := repository.NewActivityRepo(db)
	notificationRepo := repository.NewNotificationRepo(db)
	settingRepo := repository.NewSettingRepo(db)

	authService := service.NewAuthService(userRepo, wsHub)
	userService := service.NewUserService(userRepo, roleRepo, activityRepo)
	roleService := service.NewCustomRoleService(roleRepo, activityRepo)
	clientService := service.NewClientService(clientRepo, activityRepo, notificationRepo, wsHub)
	activityService := service.NewActivityService(activityRepo)
	notificationService := service.NewNotificationService(notificationRepo, wsHub)
	settingsService := service.NewSettingsService(settingRepo, activityRepo)
	dashService := service.NewDashboardService(clientRepo, userRepo, activityRepo)

	authHandler := handler.NewAuthHandler(authService)
	userHandler := handler.NewUserHandler(userService)
	roleHandler := handler.NewRoleHandler(roleService)
	clientHandler := handler.NewClientHandler(clientService)
	activityHandler := handler.NewActivityHandler(activityService)
	notificationHandler := handler.NewNotificationHandler(notificationService)
	settingsHandler := handler.NewSettingsHandler(settingsService)
	dashHandler := handler.NewDashboardHandler(dashService)

	// 6. Setup Fiber
	app := fiber.New(fiber.Config{
		AppName: "Marketing Dashboard API v1.0",
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
	auth.Post("/validate-token", authHandler.ValidateToken)
	auth.Post("/heartbeat", middleware.RequireAuth(userRepo), authHandler.Heartbeat)

	// ============ PROTECTED ROUTES ============
	// All routes below require authentication
	protected := api.Group("", middleware.RequireAuth(userRepo))

	// Dashboard + capability probe (any authenticated user)
	protected.Get("/dashboard/stats", dashHandler.GetDashboardStats)
	protected.Get("/capabilities", dashHandler.GetCapabilities)

	// Client Routes (with permission checks)
	protected.Get("/clients", middleware.RequirePermission(access.ModuleClients, access.ActionRead), clientHandler.GetClients)
	protected.Get("/clients/:id", middleware.RequirePermission(access.ModuleClients, access.ActionRead), clientHandler.GetClient)
	protected.Post("/clients", middleware.RequirePermission(access.ModuleClients, access.ActionCreate), clientHandler.CreateClient)
	protected.Put("/clients/:id", middleware.RequirePermission(access.ModuleClients, access.ActionUpdate), clientHandler.UpdateClient)
	protected.Delete("/clients/:id", middleware.RequirePermission(access.ModuleClients, access.ActionDelete), clientHandler.DeleteClient)

	// User Management Routes (with permission checks)
	protected.Get("/users", middleware.RequirePermission(access.ModuleUsers, access.ActionRead), userHandler.GetUsers)
	protected.Get("/users/:id", middleware.RequirePermission(access.ModuleUsers, access.ActionRead), userHandler.GetUser)
	protected.Post("/users", middleware.RequirePermission(access.ModuleUsers, access.ActionCreate), userHandler.CreateUser)
	protected.Put("/users/:id", middleware.RequirePermission(access.ModuleUsers, access.ActionUpdate), userHandler.UpdateUser)
	protected.Delete("/users/:id", middleware.RequirePermission(access.ModuleUsers, access.ActionDelete), userHandler.DeleteUser)

	// Custom Role Routes (full access only)
	protected.Get("/roles", middleware.RequireFullAccess(), roleHandler.GetRoles)
	protected.Get("/roles/:id", middleware.RequireFullAccess(), roleHandler.GetRole)
	protected.Post("/roles", middleware.RequireFullAccess(), roleHandler.CreateRole)
	protected.Put("/roles/:id", middleware.RequireFullAccess(), roleHandler.UpdateRole)
	protected.Delete("/roles/:id", middleware.RequireFullAccess(), roleHandler.DeleteRole)

	// Activity Log (visibility scoped inside the service)
	protected.Get("/activities", middleware.RequirePermission(access.ModuleActivities, access.ActionRead), activityHandler.GetActivities)

	// Notifications (own records only)
	protected.Get("/notifications", notificationHandler.GetNotifications)
	protected.Put("/notifications/:id/read", notificationHandler.MarkRead)

	// Settings Routes
	protected.Get("/settings", middleware.RequirePermission(access.ModuleSettings, access.ActionRead), settingsHandler.GetSettings)
	protected.Get("/settings/:key", middleware.RequirePermission(access.ModuleSettings, access.ActionRead), settingsHandler.GetSetting)
	protected.Put("/settings/:key", middleware.RequirePermission(access.ModuleSettings, access.ActionUpdate), settingsHandler.PutSetting)

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

	// 8. Graceful Shutdown
	go func() {
		port := os.Getenv("PORT")
		if port == "" {
			port = "3000"
		}
		if err := app.Listen(":" + port); err != nil {
			log.Panic(err)
		}
	}()

	// Wait for interrupt signal to gracefully shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("Shutting down server...")
	if err := app.Shutdown(); err != nil {
		log.Fatal("Server forced to shutdown:", err)
	}

	log.Println("Server exited")
}

// seedSuperadmin creates the bootstrap superadmin user if it doesn't exist.
// The account has no custom role, so it gets full access through the legacy
// superadmin default.
func seedSuperadmin(db *gorm.DB) {
	userRepo := repository.NewUserRepo(db)

	email := os.Getenv("SUPERADMIN_EMAIL")
	if email == "" {
		email = "admin@example.com"
	}

	if _, err := userRepo.FindByEmail(email); err == nil {
		return
	}

	password := os.Getenv("SUPERADMIN_PASSWORD")
	if password == "" {
		password = "admin123"
	}

	admin := &model.User{
		Email:    email,
		FullName: "Super Administrator",
		Role:     model.RoleSuperadmin,
		IsActive: true,
	}
	admin.CreatedBy = "system"
	admin.UpdatedBy = "system"

	if err := admin.SetPassword(password); err != nil {
		log.Printf("Warning: Failed to hash superadmin password: %v", err)
		return
	}

	if err := userRepo.Create(admin); err != nil {
		log.Printf("Warning: Failed to create superadmin user: %v", err)
	} else {
		log.Printf("✅ Superadmin user created: %s", email)
	}
}
