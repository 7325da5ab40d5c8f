package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"time"

	"workpulse/database"
	"workpulse/handlers"
	repository "workpulse/repositories"
	routes "workpulse/routes"
	services "workpulse/services"

	"github.com/joho/godotenv"
	"github.com/robfig/cron/v3"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/zap"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Fatal("Error loading .env file:", err)
	}

	zapLogger, err := zap.NewProduction()
	if err != nil {
		log.Fatal("Failed to initialize logger:", err)
	}
	defer zapLogger.Sync()
	logger := zapLogger.Sugar()

	// Get MongoDB credentials from environment variables
	username := os.Getenv("MONGO_USERNAME")
	password := os.Getenv("MONGO_PASSWORD")
	cluster := os.Getenv("MONGO_CLUSTER")
	appName := os.Getenv("MONGO_APP_NAME")
	jwtSecret := os.Getenv("JWT_SECRET")

	if username == "" || password == "" || cluster == "" || appName == "" {
		logger.Fatal("Missing required environment variables")
	}
	if jwtSecret == "" {
		logger.Fatal("JWT_SECRET must be set")
	}

	// Build MongoDB Atlas connection string
	uri := fmt.Sprintf("mongodb+srv://%s:%s@%s/?retryWrites=true&w=majority&appName=%s",
		username, password, cluster, appName)

	clientOptions := options.Client().ApplyURI(uri)
	client, err := mongo.Connect(context.TODO(), clientOptions)
	if err != nil {
		logger.Fatalw("Failed to connect to MongoDB", "error", err)
	}
	defer func() {
		if err = client.Disconnect(context.TODO()); err != nil {
			logger.Fatalw("Failed to disconnect from MongoDB", "error", err)
		}
	}()

	// Set a timeout for the ping operation
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	// Ping the primary to verify connection
	if err := client.Ping(ctx, nil); err != nil {
		logger.Fatalw("Failed to ping MongoDB", "error", err)
	}

	logger.Info("Connected to MongoDB")

	// Atomic category adjustments need a replica set for retryable writes
	checkIfReplicaSet(client, logger)

	db := client.Database("workpulse")

	logger.Info("Creating database indexes...")
	if err := database.CreateIndexes(db); err != nil {
		logger.Warnw("Failed to create indexes", "error", err)
	}

	// Repositories
	projectRepo := repository.NewProjectRepository(db)
	taskRepo := repository.NewTaskRepository(db)
	okrRepo := repository.NewOKRRepository(db)
	reviewRepo := repository.NewReviewRepository(db)
	budgetRepo := repository.NewBudgetRepository(db)
	systemRepo := repository.NewSystemRepository(db)

	// Services
	projectService := services.NewProjectService(projectRepo, logger)
	taskService := services.NewTaskService(taskRepo, logger)
	okrService := services.NewOKRService(okrRepo, logger)
	reviewService := services.NewReviewService(reviewRepo, logger)
	budgetService := services.NewBudgetService(budgetRepo, logger)
	systemService := services.NewSystemService(systemRepo, taskRepo, logger)

	// Handlers
	h := routes.Handlers{
		Projects: handlers.NewProjectHandler(projectService, systemService),
		Tasks:    handlers.NewTaskHandler(taskService, systemService),
		OKRs:     handlers.NewOKRHandler(okrService, systemService),
		Reviews:  handlers.NewReviewHandler(reviewService, systemService),
		Budgets:  handlers.NewBudgetHandler(budgetService, systemService),
		System:   handlers.NewSystemHandler(systemService),
	}

	mux := routes.SetupRoutes(h, jwtSecret)

	// Nightly retention sweep: expired reports, notifications,
	// attachments and aged low/medium audit entries.
	scheduler := cron.New()
	if _, err := scheduler.AddFunc("@daily", func() {
		sweepCtx, sweepCancel := context.WithTimeout(context.Background(), 5*time.Minute)
		defer sweepCancel()
		if err := systemService.SweepExpired(sweepCtx); err != nil {
			logger.Errorw("Retention sweep failed", "error", err)
		}
	}); err != nil {
		logger.Fatalw("Failed to schedule retention sweep", "error", err)
	}
	scheduler.Start()
	defer scheduler.Stop()

	port := os.Getenv("PORT")
	if port == "" {
		port = "8081"
	}

	logger.Infof("Server starting on port %s", port)
	logger.Fatal(http.ListenAndServe(":"+port, mux))
}

func checkIfReplicaSet(client *mongo.Client, logger *zap.SugaredLogger) bool {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	var result bson.M
	// Use the newer "hello" command instead of deprecated "isMaster"
	err := client.Database("admin").RunCommand(ctx, bson.M{"hello": 1}).Decode(&result)

	if err != nil {
		logger.Warnw("Error checking replica set", "error", err)
		return false
	}

	if setName, exists := result["setName"]; exists {
		logger.Infof("Part of replica set: %v", setName)
		return true
	}

	logger.Info("Not part of a replica set")
	return false
}
