package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"notekeep/config"
	"notekeep/handler"
	"notekeep/middleware"
	"notekeep/repository"
	"notekeep/services"
	"notekeep/usecase"
	"notekeep/utils"
)

const maxRequestBody = 1 << 20 // 1 MiB

func setupRouter(deps *dependencies) *gin.Engine {
	router := gin.New()

	router.Use(middleware.RecoveryMiddleware())
	router.Use(middleware.RequestTracingMiddleware())
	router.Use(middleware.MetricsMiddleware())
	router.Use(middleware.CORSMiddleware())
	router.Use(middleware.RequestSizeLimiter(maxRequestBody))

	router.GET("/health", deps.health.Check)
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	public := router.Group("/api")
	{
		auth := public.Group("/auth")
		{
			auth.POST("/register", deps.auth.Register)
			auth.POST("/login", deps.auth.Login)
			auth.POST("/refresh", deps.auth.Refresh)
		}
	}

	protected := router.Group("/api")
	protected.Use(middleware.AuthMiddleware(deps.tokens, deps.blacklist))
	{
		notes := protected.Group("/notes")
		{
			notes.GET("", deps.notes.List)
			notes.GET("/:id", deps.notes.Get)
			notes.POST("", deps.notes.Create)
			notes.PUT("/:id", deps.notes.Update)
			notes.DELETE("/:id", deps.notes.Delete)
		}

		folders := protected.Group("/folders")
		{
			folders.GET("", deps.folders.List)
			folders.GET("/:id", deps.folders.Get)
			folders.POST("", deps.folders.Create)
			folders.PUT("/:id", deps.folders.Rename)
			folders.DELETE("/:id", deps.folders.Delete)
		}

		tags := protected.Group("/tags")
		{
			tags.GET("", deps.tags.List)
			tags.GET("/:id", deps.tags.Get)
			tags.POST("", deps.tags.Create)
			tags.PUT("/:id", deps.tags.Rename)
			tags.DELETE("/:id", deps.tags.Delete)
		}

		user := protected.Group("/user")
		{
			user.GET("/profile", deps.user.Profile)
			user.POST("/change-password", deps.user.ChangePassword)
			user.POST("/logout", deps.user.Logout)
			user.DELETE("", deps.user.Delete)
			user.POST("/2fa/enable", deps.user.EnableTwoFactor)
			user.POST("/2fa/disable", deps.user.DisableTwoFactor)
		}

		sessions := protected.Group("/sessions")
		{
			sessions.GET("/active", deps.sessions.ListActive)
			sessions.POST("/logout-all", deps.sessions.LogoutAll)
		}
	}

	return router
}

type dependencies struct {
	tokens    *services.TokenService
	blacklist *services.TokenBlacklist

	notes    *handler.NoteHandler
	folders  *handler.FolderHandler
	tags     *handler.TagHandler
	auth     *handler.AuthHandler
	user     *handler.UserHandler
	sessions *handler.SessionHandler
	health   *handler.HealthHandler
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load configuration: %v", err)
	}

	utils.InitValidator()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	client, err := repository.Connect(ctx, cfg.Mongo)
	if err != nil {
		log.Fatalf("failed to connect to MongoDB: %v", err)
	}
	defer func() {
		if err := client.Disconnect(context.Background()); err != nil {
			log.Printf("error disconnecting from MongoDB: %v", err)
		}
	}()

	db := client.Database(cfg.Mongo.DatabaseName)
	if err := repository.SetupIndexes(db); err != nil {
		log.Fatalf("failed to create indexes: %v", err)
	}

	var blacklist *services.TokenBlacklist
	if cfg.RedisURL != "" {
		blacklist, err = services.NewTokenBlacklist(cfg.RedisURL, cfg.RefreshTokenTTL)
		if err != nil {
			log.Fatalf("failed to initialize token blacklist: %v", err)
		}
		defer blacklist.Close()
	} else {
		log.Println("REDIS_URL not set, token revocation disabled")
	}

	tokens := services.NewTokenService(cfg.JWTSecret, cfg.JWTIssuer, cfg.AccessTokenTTL, cfg.RefreshTokenTTL)

	noteRepo := repository.NewNoteRepo(db)
	folderRepo := repository.NewFolderRepo(db)
	tagRepo := repository.NewTagRepo(db)
	userRepo := repository.NewUserRepo(db)
	sessionRepo := repository.NewSessionRepo(db)

	refs := usecase.NewReferenceValidator(folderRepo, tagRepo)
	noteService := usecase.NewNoteService(noteRepo, refs)
	folderService := usecase.NewFolderService(folderRepo)
	tagService := usecase.NewTagService(tagRepo)
	userService := usecase.NewUserService(userRepo, cfg.JWTIssuer)
	sessionService := usecase.NewSessionService(sessionRepo, cfg.SessionTTL, cfg.MaxActiveSessions)

	deps := &dependencies{
		tokens:    tokens,
		blacklist: blacklist,
		notes:     handler.NewNoteHandler(noteService),
		folders:   handler.NewFolderHandler(folderService),
		tags:      handler.NewTagHandler(tagService),
		auth:      handler.NewAuthHandler(userService, sessionService, tokens, blacklist),
		user:      handler.NewUserHandler(userService, sessionService, blacklist),
		sessions:  handler.NewSessionHandler(sessionService),
		health:    handler.NewHealthHandler(client),
	}

	stopMetrics := make(chan struct{})
	utils.StartSystemMetrics(15*time.Second, stopMetrics)
	defer close(stopMetrics)

	router := setupRouter(deps)

	server := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: router,
	}

	go func() {
		log.Printf("server starting on %s", server.Addr)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("failed to start server: %v", err)
		}
	}()

	<-ctx.Done()
	log.Println("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Printf("server shutdown error: %v", err)
	}
}
