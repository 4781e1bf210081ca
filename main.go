package main

import (
	"eduverse/config"
	"eduverse/engine"
	adminRoutes "eduverse/routers/adminRoutes"
	courseRoutes "eduverse/routers/courseRoutes"
	notificationRoutes "eduverse/routers/notificationRoutes"
	sessionRoutes "eduverse/routers/sessionRoutes"
	"eduverse/store"
	"eduverse/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"log"
)

func openStore() (store.Store, error) {
	if config.AppConfig.StoreBackend == "gorm" {
		return store.OpenGormStore(config.AppConfig.DBDriver, config.AppConfig.DSN)
	}
	return store.NewFileStore(config.AppConfig.DataDir)
}

func main() {
	config.LoadConfig()

	st, err := openStore()
	if err != nil {
		log.Fatalf("Failed to open store: %v", err)
	}

	e, err := engine.New(st, engine.Options{
		EnforcePrerequisites: config.AppConfig.EnforcePrerequisites,
	})
	if err != nil {
		log.Fatalf("Failed to initialize engine: %v", err)
	}

	app := fiber.New()

	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowMethods: "GET,POST,PUT,DELETE",        // Allowed HTTP methods
		AllowHeaders: "Content-Type,Authorization", // Allowed headers
	}))

	// Enable the built-in logger middleware to log all requests
	app.Use(logger.New(logger.Config{
		Format: "[${time}] ${ip} ${method} ${path} ${status} ${latency}\n",
	}))

	sessionRoutes.SetupSessionRoutes(app, e)
	courseRoutes.SetupCourseRoutes(app, e)
	notificationRoutes.SetupNotificationRoutes(app, e)
	adminRoutes.SetupAdminRoutes(app, e)

	if _, err := utils.InitializeBackupScheduler(e, config.AppConfig.BackupDir, config.AppConfig.BackupSchedule); err != nil {
		log.Printf("Warning: backup scheduler not started: %v", err)
	}

	log.Printf("Server is running on port %s", config.AppConfig.Port)
	log.Fatal(app.Listen(":" + config.AppConfig.Port))
}
