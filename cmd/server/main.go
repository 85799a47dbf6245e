package main

import (
	"log"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/yukikurage/slack-task-bot/internal/config"
	"github.com/yukikurage/slack-task-bot/internal/database"
	"github.com/yukikurage/slack-task-bot/internal/handlers"
	"github.com/yukikurage/slack-task-bot/internal/middleware"
	"github.com/yukikurage/slack-task-bot/internal/repository"
	"github.com/yukikurage/slack-task-bot/internal/services"
	"github.com/yukikurage/slack-task-bot/internal/slackapi"
)

func main() {
	// Load .env if present, then configuration
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, reading configuration from environment")
	}
	cfg := config.Load()

	if cfg.SlackBotToken == "" || cfg.SlackSigningSecret == "" {
		log.Fatal("SLACK_BOT_TOKEN and SLACK_SIGNING_SECRET are required")
	}

	// Set Gin mode
	gin.SetMode(cfg.GinMode)

	// Connect to database
	if err := database.Connect(cfg); err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	// Run migrations
	if err := database.Migrate(); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}

	// Initialize Slack client and services
	slackClient := slackapi.New(cfg.SlackBotToken)
	taskRepo := repository.NewTaskRepository(database.GetDB())
	resolver := services.NewMentionResolver(slackClient)
	notifier := services.NewNotifier(slackClient)
	dedupe := services.NewDedupeGuard()
	taskService := services.NewTaskService(taskRepo, notifier, dedupe)
	parser := services.NewCommandParser(slackClient, resolver)

	// Initialize handlers
	commandHandler := handlers.NewCommandHandler(parser, taskService, slackClient)
	interactionHandler := handlers.NewInteractionHandler(taskService)
	taskHandler := handlers.NewTaskHandler(taskRepo)

	// Initialize Gin router
	r := gin.Default()
	r.HandleMethodNotAllowed = true
	r.Use(middleware.RequestID())

	// Health check endpoint
	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status":  "ok",
			"message": "Slack task bot is running",
		})
	})

	// Slack webhooks (signature-verified)
	slackGroup := r.Group("/slack")
	slackGroup.Use(middleware.VerifySlackSignature(cfg.SlackSigningSecret))
	{
		slackGroup.POST("/command", commandHandler.HandleCommand)
		slackGroup.POST("/interactions", interactionHandler.HandleInteraction)
	}

	// Read-only API
	api := r.Group("/api")
	{
		api.GET("/tasks", taskHandler.ListTasks)
	}

	// Start server
	log.Printf("Server starting on :%s", cfg.Port)
	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
