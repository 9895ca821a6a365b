package main

import (
	"context"
	"log"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/taskhub/backend/internal/config"
	"github.com/taskhub/backend/internal/db"
	"github.com/taskhub/backend/internal/handler"
	"github.com/taskhub/backend/internal/service"
	"github.com/taskhub/backend/internal/store"
)

// @title Task Manager API
// @version 1.0
// @description A task management REST API with JWT authentication, per-user task ownership and aggregate statistics.
// @BasePath /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	// Missing .env is fine; plain env vars still apply.
	_ = godotenv.Load()
	cfg := config.Load()
	ctx := context.Background()

	router := gin.Default()
	if len(cfg.CORSOrigins) > 0 {
		router.Use(handler.CORSMiddleware(cfg.CORSOrigins))
	}

	router.GET("/", handler.Root)
	router.GET("/ping", handler.Ping)
	router.GET("/info", handler.Info)
	router.GET("/api-docs", handler.SwaggerUI)
	router.GET("/swagger.json", handler.OpenAPIDoc)
	router.NoRoute(handler.NoRoute)

	switch cfg.StoreDriver {
	case config.DriverMemory:
		// Ownerless mode: one shared in-process task list, no auth routes.
		tasks := handler.NewTaskHandler(service.NewTaskService(store.NewMemory()))
		registerTaskRoutes(router.Group("/api"), tasks)

	case config.DriverPostgres:
		pool, err := db.NewPostgresPool(ctx, cfg.Postgres)
		if err != nil {
			log.Fatalf("postgres init failed: %v", err)
		}
		pg := db.New(pool)
		if err := pg.EnsureSchema(ctx); err != nil {
			log.Fatalf("schema init failed: %v", err)
		}

		tokens, err := service.NewJWTManager(cfg.Auth)
		if err != nil {
			log.Fatalf("token manager init failed: %v", err)
		}
		auth := handler.NewAuthHandler(service.NewAuthService(pg, service.BcryptHasher{}, tokens))
		tasks := handler.NewTaskHandler(service.NewTaskService(pg))

		users := router.Group("/api/users")
		users.POST("/register", auth.Register)
		users.POST("/login", auth.Login)
		users.GET("/me", handler.AuthMiddleware(tokens, pg), auth.Me)

		registerTaskRoutes(router.Group("/api", handler.AuthMiddleware(tokens, pg)), tasks)

	default:
		log.Fatalf("unknown STORE_DRIVER %q", cfg.StoreDriver)
	}

	if err := router.Run(":" + cfg.Port); err != nil {
		log.Fatalf("server stopped: %v", err)
	}
}

func registerTaskRoutes(api *gin.RouterGroup, tasks *handler.TaskHandler) {
	api.GET("/tasks", tasks.List)
	api.POST("/tasks", tasks.Create)
	api.GET("/tasks/:id", tasks.Get)
	api.PUT("/tasks/:id", tasks.Update)
	api.DELETE("/tasks/:id", tasks.Delete)
	api.GET("/stats", tasks.Stats)
}
