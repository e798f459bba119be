package main

import (
	"context"
	"log"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	_ "github.com/go-sql-driver/mysql"
	"github.com/redis/go-redis/v9"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"

	"github.com/pagetalk/comment-api/internal/config"
	mysqlRepo "github.com/pagetalk/comment-api/internal/repository/mysql"
	"github.com/pagetalk/comment-api/internal/repository/mysql/model"
	"github.com/pagetalk/comment-api/internal/rest"
	"github.com/pagetalk/comment-api/internal/rest/middleware"
	authUC "github.com/pagetalk/comment-api/internal/usecase/auth"
	commentUC "github.com/pagetalk/comment-api/internal/usecase/comment"
)

const (
	dbMaxRetry         = 10
	dbRetryIntervalSec = 2
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal("failed to load configuration: ", err)
	}

	// prepare database
	var db *gorm.DB
	for i := range dbMaxRetry {
		db, err = gorm.Open(mysql.Open(cfg.DatabaseDSN), &gorm.Config{TranslateError: true})
		if err != nil {
			log.Printf("failed to open connection to database (attempt %d/%d): %v", i+1, dbMaxRetry, err)
		} else {
			sqlDB, err := db.DB()
			if err != nil {
				log.Printf("failed to get sql.DB from gorm.DB (attempt %d/%d): %v", i+1, dbMaxRetry, err)
				continue
			}
			err = sqlDB.Ping()
			if err == nil {
				break
			}
			log.Printf("failed to ping database (attempt %d/%d): %v", i+1, dbMaxRetry, err)
			_ = sqlDB.Close()
		}

		time.Sleep(dbRetryIntervalSec * time.Second)
	}

	if err != nil {
		log.Fatal("could not connect to database after retries:", err)
	}

	defer func() {
		sqlDB, err := db.DB()
		if err != nil {
			log.Fatal("got error when getting sql.DB from gorm.DB", err)
		}
		if err := sqlDB.Close(); err != nil {
			log.Fatal("got error when closing the DB connection", err)
		}
	}()

	if err := db.AutoMigrate(&model.User{}, &model.Comment{}, &model.CommentReaction{}); err != nil {
		log.Fatal("failed to migrate database schema: ", err)
	}

	// prepare cache (rate limiter backend)
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.CacheAddr,
		Password: cfg.CachePassword,
		DB:       cfg.CacheDB,
	})
	defer func() {
		if err := client.Close(); err != nil {
			log.Fatal("got error when closing the cache connection", err)
		}
	}()

	if _, err := client.Ping(context.Background()).Result(); err != nil {
		log.Fatal("failed to open connection to cache", err)
	}

	// prepare gin
	route := gin.Default()
	route.Use(middleware.CORS())
	route.Use(middleware.SetRequestContextWithTimeout(cfg.ContextTimeout))

	// Prepare Repository
	userRepo := mysqlRepo.NewUserRepository(db)
	commentRepo := mysqlRepo.NewCommentRepository(db)

	// Build service layer
	authSvc := authUC.NewService(userRepo, []byte(cfg.JWTSecret), cfg.TokenTTL)
	commentSvc := commentUC.NewService(commentRepo)

	authHandler := rest.NewAuthHandler(authSvc)
	commentHandler := rest.NewCommentHandler(commentSvc)

	authMiddleware := middleware.AuthMiddleware(cfg.JWTSecret)

	// Register routes
	api := route.Group("/api")
	api.Use(middleware.RateLimit(client, cfg.RateLimitWindow, cfg.RateLimitMax))

	api.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"success":   true,
			"message":   "API is running",
			"timestamp": time.Now().UTC().Format(time.RFC3339),
		})
	})

	api.POST("/auth/register", authHandler.Register)
	api.POST("/auth/login", authHandler.Login)
	api.GET("/auth/profile", authMiddleware, authHandler.Profile)

	api.GET("/comments", commentHandler.Fetch)

	authorized := api.Group("/comments")
	authorized.Use(authMiddleware)
	{
		authorized.POST("", commentHandler.Create)
		authorized.GET("/:id", commentHandler.GetByID)
		authorized.PUT("/:id", commentHandler.Update)
		authorized.DELETE("/:id", commentHandler.Delete)
		authorized.POST("/:id/like", commentHandler.Like)
		authorized.POST("/:id/dislike", commentHandler.Dislike)
		authorized.GET("/:id/replies", commentHandler.FetchReplies)
	}

	// Start Server
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	srv := &http.Server{
		Addr:    cfg.Address,
		Handler: route,
	}
	go func() {
		log.Printf("Server is running on %s\n", cfg.Address)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("listen: %s\n", err) // nolint
		}
	}()

	// shutdown
	<-ctx.Done()
	log.Println("Shutdown signal received, stopping server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Fatal("Server forced to shutdown: ", err)
	}

	log.Println("Server exiting")
}
