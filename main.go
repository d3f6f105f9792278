package main

import (
	"database/sql"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/stdlib"
	"github.com/streadway/amqp"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"assignments/internal/config"
	"assignments/internal/handlers"
	"assignments/internal/middleware"
	"assignments/internal/models"
	"assignments/internal/repositories"
	"assignments/internal/services"
	"assignments/pkg/rabbitmq"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	db, err := gorm.Open(postgres.Open(cfg.DatabaseDSN), &gorm.Config{})
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	if err := db.AutoMigrate(&models.User{}, &models.Assignment{}); err != nil {
		log.Fatalf("Failed to migrate database: %v", err)
	}

	// The procedural store variant talks to the same database over
	// database/sql; the pool is only opened when that variant is selected.
	var procDB *sql.DB
	if cfg.AssignmentStore == config.StoreProcedure {
		pgCfg, err := pgx.ParseConfig(cfg.DatabaseDSN)
		if err != nil {
			log.Fatalf("Failed to parse database DSN: %v", err)
		}
		procDB = stdlib.OpenDB(*pgCfg)
		defer procDB.Close()
	}

	// Lifecycle events are optional; an empty broker URL disables them.
	var events services.EventPublisher
	var mqClient *rabbitmq.Client
	if cfg.RabbitMQURL != "" {
		mqClient, err = rabbitmq.NewClient(rabbitmq.Config{URL: cfg.RabbitMQURL})
		if err != nil {
			log.Fatalf("Failed to initialize RabbitMQ client: %v", err)
		}
		defer mqClient.Close()
		events = mqClient

		go func() {
			messageHandler := func(msg amqp.Delivery) error {
				log.Printf("Received assignment event (tag: %d): %s", msg.DeliveryTag, string(msg.Body))
				return nil
			}
			if consumerErr := mqClient.ConsumeAssignmentEvents(messageHandler); consumerErr != nil {
				log.Printf("Failed to start RabbitMQ consumer: %v", consumerErr)
			}
		}()
	}

	app := newApp(cfg, db, procDB, events)

	log.Printf("Starting server on port %s (assignment store: %s)", cfg.AppPort, cfg.AssignmentStore)

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		if err := app.Listen(cfg.AppPort); err != nil {
			log.Fatalf("Server failed to start: %v", err)
		}
	}()

	<-quit
	log.Println("Shutting down server...")

	if err := app.Shutdown(); err != nil {
		log.Printf("Error during Fiber shutdown: %v", err)
	}

	log.Println("Server gracefully stopped")
}

// newApp wires repositories, services, handlers, and routes. The assignment
// store variant is chosen here, once, from configuration; nothing switches
// implementations at request time.
func newApp(cfg config.Config, db *gorm.DB, procDB *sql.DB, events services.EventPublisher) *fiber.App {
	var store repositories.AssignmentStore
	if cfg.AssignmentStore == config.StoreProcedure {
		store = repositories.NewProcAssignmentStore(procDB)
	} else {
		store = repositories.NewGormAssignmentStore(db)
	}

	userRepo := repositories.NewGormUserRepository(db)
	authService := services.NewAuthService(userRepo, cfg)
	assignmentService := services.NewAssignmentService(store, events)

	authHandler := handlers.NewAuthHandler(authService)
	assignmentHandler := handlers.NewAssignmentHandler(assignmentService)

	app := fiber.New()
	app.Use(logger.New())

	apiV1 := app.Group("/api/v1")

	// Registration and login stay unauthenticated; everything else is gated.
	authHandler.RegisterRoutes(apiV1)
	protected := apiV1.Group("", middleware.AuthRequired(authService))
	assignmentHandler.RegisterRoutes(protected)

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.Status(fiber.StatusOK).JSON(fiber.Map{
			"status": "healthy",
			"time":   time.Now().Format(time.RFC3339),
			"store":  cfg.AssignmentStore,
		})
	})

	return app
}
