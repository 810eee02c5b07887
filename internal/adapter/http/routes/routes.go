package routes

import (
	"context"
	"log"
	"os"
	"strings"
	"time"

	_ "laptopcare/docs" // This will be auto-generated
	"laptopcare/internal/adapter/http/handlers"
	repository2 "laptopcare/internal/adapter/persistence/repository"
	"laptopcare/internal/infrastructure/ai"
	"laptopcare/internal/infrastructure/database"
	"laptopcare/internal/infrastructure/notifications"
	"laptopcare/internal/infrastructure/token"
	"laptopcare/internal/usecase"
	"laptopcare/internal/usecase/interfaces"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

var router = gin.Default()

// Run will start the server
func Run() {
	setMiddlewares()

	// Swagger documentation endpoint
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	getRoutes()

	port := getenvDefault("PORT", "8080")
	err := router.Run(":" + port)
	if err != nil {
		log.Fatalf("Failed to startup the application: %v", err.Error())
	}
}

func getRoutes() {
	userRepo, problemRepo, bookingRepo, locationRepo := buildRepositories()

	tokens := token.NewJWTService(
		getenvDefault("JWT_SIGNING_KEY", "local-dev-signing-key"),
		"laptopcare",
		parseDurationEnv("JWT_TTL", time.Hour),
	)

	var generator interfaces.IStepGenerator
	gemini, err := ai.NewGeminiStepGenerator(context.Background(), os.Getenv("GEMINI_API_KEY"), os.Getenv("GEMINI_MODEL"))
	if err != nil {
		log.Printf("Gemini step generator not configured: %v", err)
	} else {
		generator = gemini
	}

	var notifier interfaces.IBookingNotifier
	nats, err := notifications.NewNATSBookingNotifier(os.Getenv("NATS_URL"))
	if err != nil {
		log.Printf("Booking notifier not configured: %v", err)
	} else {
		notifier = nats
	}

	authUseCase := usecase.NewAuthUseCase(userRepo, tokens)
	troubleshootUseCase := usecase.NewTroubleshootingUseCase(problemRepo, generator, parseDurationEnv("STEP_GENERATOR_TIMEOUT", 30*time.Second))
	locatorUseCase := usecase.NewEngineerLocatorUseCase(locationRepo, userRepo)
	bookingUseCase := usecase.NewBookingUseCase(bookingRepo, problemRepo, userRepo, notifier)

	authHandler := handlers.NewAuthHandler(authUseCase)
	troubleshootHandler := handlers.NewTroubleshootHandler(troubleshootUseCase)
	engineerHandler := handlers.NewEngineerHandler(locatorUseCase)
	bookingHandler := handlers.NewBookingHandler(bookingUseCase)

	root := router.Group("")
	addPingRoutes(root)
	addAuthRoutes(root, authHandler, tokens)
	addTroubleshootRoutes(root, tokens, troubleshootHandler, engineerHandler, bookingHandler)
}

// buildRepositories selects the storage backend. DynamoDB is the default;
// STORAGE_BACKEND=memory runs everything in-process for local development.
func buildRepositories() (interfaces.IUserRepository, interfaces.IProblemRepository, interfaces.IBookingRepository, interfaces.IEngineerLocationRepository) {
	if strings.EqualFold(os.Getenv("STORAGE_BACKEND"), "memory") {
		log.Printf("[storage] using in-memory backend")
		return repository2.NewUserMemoryRepository(),
			repository2.NewProblemMemoryRepository(),
			repository2.NewBookingMemoryRepository(),
			repository2.NewEngineerLocationMemoryRepository()
	}

	ddb := database.ConnectDynamoDB()
	return repository2.NewUserDynamoRepository(ddb),
		repository2.NewProblemDynamoRepository(ddb),
		repository2.NewBookingDynamoRepository(ddb),
		repository2.NewEngineerLocationDynamoRepository(ddb)
}

func setMiddlewares() {
	router.Use(gin.Logger())
	router.Use(gin.Recovery())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		log.Printf("Recovered from panic: %v", recovered)
		c.AbortWithStatus(500)
	}))
}

func getenvDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func parseDurationEnv(key string, def time.Duration) time.Duration {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		log.Printf("invalid %s=%q, using default %s", key, v, def)
		return def
	}
	return d
}
