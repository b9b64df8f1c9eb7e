package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/yourusername/vocab-api/internal/config"
	"github.com/yourusername/vocab-api/internal/domain/repository"
	"github.com/yourusername/vocab-api/internal/handler"
	"github.com/yourusername/vocab-api/internal/middleware"
	pgRepo "github.com/yourusername/vocab-api/internal/repository/postgres"
	redisRepo "github.com/yourusername/vocab-api/internal/repository/redis"
	"github.com/yourusername/vocab-api/internal/service"
	"github.com/yourusername/vocab-api/pkg/database"
)

func main() {
	// Загружаем конфигурацию
	configPath := os.Getenv("CONFIG_PATH")
	if configPath == "" {
		configPath = "config/config.yaml"
	}
	log.Printf("Загрузка конфигурации из %s", configPath)

	cfg, err := config.Load(configPath)
	if err != nil {
		log.Printf("Failed to load config: %v", err)
		os.Exit(1)
	}

	// Инициализируем подключение к PostgreSQL
	db, err := database.NewPostgresDB(cfg.Database.PostgresConnectionString())
	if err != nil {
		log.Printf("Failed to connect to database: %v", err)
		os.Exit(1)
	}

	// Приводим схему к актуальному состоянию и засеваем справочник уровней
	if err := database.InitSchema(db); err != nil {
		log.Printf("Failed to init database schema: %v", err)
		os.Exit(1)
	}

	// Кеш необязателен: без Redis приложение ходит только в PostgreSQL
	var cacheRepo repository.CacheRepository
	if cfg.Redis.IsConfigured() {
		redisClient, err := database.NewUniversalRedisClient(cfg.Redis)
		if err != nil {
			log.Printf("Failed to connect to Redis: %v", err)
			os.Exit(1)
		}
		log.Println("Successfully connected to Redis")

		cacheRepo, err = redisRepo.NewCacheRepo(redisClient)
		if err != nil {
			log.Printf("Failed to initialize CacheRepo: %v", err)
			os.Exit(1)
		}
	} else {
		log.Println("Redis не сконфигурирован, кеширование тестов отключено")
	}

	// Инициализируем репозитории
	quizRepo := pgRepo.NewQuizRepo(db)
	questionRepo := pgRepo.NewQuestionRepo(db)
	testRepo := pgRepo.NewTestRepo(db)
	entryRepo := pgRepo.NewEntryRepo(db)

	// Инициализируем сервисы
	testService := service.NewTestService(questionRepo, testRepo, cacheRepo)
	quizService := service.NewQuizService(db, quizRepo, questionRepo)
	statsService := service.NewStatsService(questionRepo, entryRepo)

	// Инициализируем обработчики
	testHandler := handler.NewTestHandler(testService)
	quizHandler := handler.NewQuizHandler(quizService)
	statsHandler := handler.NewStatsHandler(statsService)

	// Инициализируем роутер Gin
	router := gin.Default()

	isProduction := gin.Mode() == gin.ReleaseMode
	if isProduction {
		// Production: не доверять прокси-заголовкам
		if err := router.SetTrustedProxies(nil); err != nil {
			log.Printf("Warning: failed to set trusted proxies: %v", err)
		}
	} else {
		// Development: доверяем localhost
		if err := router.SetTrustedProxies([]string{"127.0.0.1", "::1"}); err != nil {
			log.Printf("Warning: failed to set trusted proxies: %v", err)
		}
	}

	// Настройка CORS: API открыт для любых источников, аутентификации нет
	router.Use(cors.New(cors.Config{
		AllowOrigins:  []string{"*"},
		AllowMethods:  []string{"GET", "POST", "DELETE", "OPTIONS"},
		AllowHeaders:  []string{"Origin", "Content-Type", "Accept", middleware.RequestIDHeader},
		ExposeHeaders: []string{"Content-Length", middleware.RequestIDHeader},
		MaxAge:        12 * time.Hour,
	}))

	router.Use(middleware.RequestID())

	// Настраиваем маршруты API
	api := router.Group("/api")
	{
		// Викторины
		quizzes := api.Group("/quizzes")
		{
			quizzes.GET("", quizHandler.ListQuizzes)
			quizzes.POST("", quizHandler.CreateQuiz)

			quizByID := quizzes.Group("/:id")
			quizByID.Use(middleware.ExtractUintParam("id", "quizID"))
			{
				quizByID.GET("", quizHandler.GetQuiz)
				quizByID.DELETE("", quizHandler.DeleteQuiz)
			}
		}

		// Тесты
		tests := api.Group("/tests")
		{
			tests.POST("", testHandler.CreateTest)

			testByID := tests.Group("/:id")
			testByID.Use(middleware.ExtractUintParam("id", "testID"))
			{
				testByID.GET("", testHandler.GetTest)
			}
		}

		// Диагностика
		api.GET("/debug/stats", statsHandler.GetBankStats)
	}

	srv := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      router,
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeout) * time.Second,
	}

	// Запускаем сервер в горутине
	go func() {
		log.Printf("Starting server on port %s", cfg.Server.Port)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Printf("Failed to start server: %v", err)
		}
	}()

	log.Printf("Server started on port %s", cfg.Server.Port)

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Println("Shutting down server...")

	// Контекст с таймаутом для graceful shutdown сервера
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Printf("Server forced to shutdown: %v", err)
		os.Exit(1)
	}

	log.Println("Server exited properly")
}
