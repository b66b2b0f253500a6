package FiberConfig

import (
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/compress"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"gorm.io/gorm"

	"Tasker/Config"
	"Tasker/Controllers"
	"Tasker/middleware"
)

// SetupRoutes registers the task API routes
func SetupRoutes(app *fiber.App, db *gorm.DB) {
	taskController := Controllers.NewTaskController(db)

	api := app.Group("/api")

	// Static task routes before the :id routes to avoid conflicts
	api.Get("/tasks/export", taskController.ExportTasks)

	api.Get("/tasks", taskController.GetTasks)
	api.Post("/tasks", taskController.CreateTask)
	api.Put("/tasks/:id", taskController.UpdateTask)
	api.Patch("/tasks/:id/status", taskController.UpdateTaskStatus)
	api.Delete("/tasks/:id", taskController.DeleteTask)

	// Helper routes for filter dropdowns
	api.Get("/task-types", taskController.GetTaskTypes)
	api.Get("/contact-persons", taskController.GetContactPersons)
}

// NewApp builds the Fiber application with its middleware stack and routes
func NewApp(cfg *Config.Config, db *gorm.DB) *fiber.App {
	app := fiber.New()

	app.Use(middleware.RequestLogger(cfg.LogFile))
	app.Use(compress.New(compress.Config{
		Level: compress.LevelBestCompression,
	}))
	app.Use(cors.New(cors.Config{
		AllowOrigins: cfg.CORSOrigin,
		AllowMethods: "GET,POST,PUT,DELETE,OPTIONS,PATCH",
		AllowHeaders: "Origin, Content-Type, Accept, Authorization, X-Requested-With",
		MaxAge:       300, // Max age for preflight requests caching (5 minutes)
	}))

	SetupRoutes(app, db)

	return app
}

// Run builds the application and serves it on the configured port
func Run(cfg *Config.Config, db *gorm.DB) error {
	log.Println("Server Up...")
	app := NewApp(cfg, db)
	return app.Listen(":" + cfg.Port)
}
