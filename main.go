package main

import (
	"context"
	"log"

	"github.com/KBARATH13/QuizCraft/internal/config"
	"github.com/KBARATH13/QuizCraft/internal/db"
	"github.com/KBARATH13/QuizCraft/internal/event"
	"github.com/KBARATH13/QuizCraft/internal/gamification"
	"github.com/KBARATH13/QuizCraft/internal/generation"
	"github.com/KBARATH13/QuizCraft/internal/handlers"
	"github.com/KBARATH13/QuizCraft/internal/repository"
	"github.com/KBARATH13/QuizCraft/internal/service"
	"github.com/KBARATH13/QuizCraft/internal/ws"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"
)

func main() {
	config.LoadConfig()
	cfg := config.AppConfig

	gin.SetMode(cfg.GinMode)

	db.InitMongo(cfg.MongoURI)
	database := db.Client.Database(cfg.MongoDatabase)

	users := repository.NewUserRepository(database)
	quizzes := repository.NewQuizRepository(database)
	attempts := repository.NewAttemptRepository(database)
	badges := repository.NewBadgeRepository(database)
	chats := repository.NewChatRepository(database)

	if err := badges.SeedIfEmpty(context.Background(), gamification.DefaultBadges); err != nil {
		log.Fatalf("Failed to seed badges: %v", err)
	}

	var publisher *event.EventPublisher
	if cfg.RabbitMQURI != "" {
		p, err := event.NewEventPublisher(cfg.RabbitMQURI, cfg.RabbitMQExchange)
		if err != nil {
			log.Printf("RabbitMQ unavailable, events disabled: %v", err)
		} else {
			publisher = p
			defer publisher.Close()
		}
	}

	cache := redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPassword,
	})

	engine := gamification.NewEngine(
		repository.NewBadgeStore(users, badges, attempts, quizzes), publisher)

	quizBackend := generation.NewClient(cfg.OllamaBaseURL, cfg.OllamaModel)
	if !quizBackend.IsConnected() {
		log.Printf("Warning: generation backend at %s is not reachable", cfg.OllamaBaseURL)
	}
	// Free-text answers must not be forced into JSON.
	textBackend := generation.NewClient(cfg.OllamaBaseURL, cfg.OllamaModel)
	textBackend.Format = ""

	quizService := service.NewQuizService(quizzes, attempts, users, engine, publisher)
	friendService := service.NewFriendService(users, engine, publisher)
	leaderboardService := service.NewLeaderboardService(users, cache)

	registry := ws.NewRegistry()
	chatService := service.NewChatService(chats, registry)
	wsHandler := ws.NewHandler(registry, quizBackend, chatService)

	quizHandler := handlers.NewQuizHandler(quizService)
	gamificationHandler := handlers.NewGamificationHandler(users, badges, leaderboardService)
	userHandler := handlers.NewUserHandler(users, friendService)
	aiHandler := handlers.NewAIHandler(generation.NewAssistant(textBackend))

	r := gin.Default()
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		AllowCredentials: false,
	}))

	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status":  "healthy",
			"service": cfg.ServiceName,
			"version": cfg.ServiceVersion,
		})
	})
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))
	r.GET("/ws", wsHandler.Serve)

	api := r.Group("/api", handlers.AuthMiddleware())
	{
		api.GET("/quizzes", quizHandler.ListQuizzes)
		api.POST("/quizzes", quizHandler.CreateQuiz)
		api.GET("/quizzes/categories", quizHandler.ListCategories)
		api.GET("/quizzes/:id", quizHandler.GetQuiz)
		api.DELETE("/quizzes/:id", quizHandler.DeleteQuiz)
		api.POST("/quizzes/:id/submit", quizHandler.SubmitQuiz)
		api.GET("/attempts", quizHandler.ListAttempts)

		api.GET("/badges", gamificationHandler.ListBadges)
		api.PUT("/badges/displayed", gamificationHandler.UpdateDisplayedBadges)
		api.GET("/level", gamificationHandler.GetLevel)
		api.GET("/leaderboard", gamificationHandler.GetLeaderboard)
		api.GET("/leaderboard/classroom/:id", gamificationHandler.GetClassroomLeaderboard)

		api.GET("/users/me", userHandler.GetProfile)
		api.GET("/users/:id", userHandler.GetProfile)
		api.GET("/friends", userHandler.ListFriends)
		api.POST("/friends/request", userHandler.SendFriendRequest)
		api.POST("/friends/accept", userHandler.AcceptFriendRequest)
		api.DELETE("/friends/:id", userHandler.RemoveFriend)

		api.POST("/ai/doubt", aiHandler.AskDoubt)
	}

	log.Printf("%s v%s listening on port %s", cfg.ServiceName, cfg.ServiceVersion, cfg.Port)
	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
