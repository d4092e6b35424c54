package main

import (
	"log"
	"strings"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/loopline/loopline-services-gateway/admin"
	"github.com/loopline/loopline-services-gateway/auth/handlers"
	"github.com/loopline/loopline-services-gateway/events"
	"github.com/loopline/loopline-services-gateway/health"
	"github.com/loopline/loopline-services-gateway/logging"
	"github.com/loopline/loopline-services-gateway/middleware"
	"github.com/loopline/loopline-services-gateway/posts"
	"github.com/loopline/loopline-services-gateway/ratelimit"
	"github.com/loopline/loopline-services-gateway/responses"
	"github.com/loopline/loopline-services-gateway/routers"
	"github.com/loopline/loopline-services-gateway/users"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"
)

func BuildRouter(app *App) *gin.Engine {
	r := gin.New()

	applyCors(r, app)
	applyLogging(r, app)
	applyRateLimiting(r, app)
	applyTracing(r, app)
	applySwagger(r, app)

	registerRoutes(r, app, app.Services)

	return r
}

func applyCors(r *gin.Engine, app *App) {
	origins := strings.Split(app.Config.CorsConfig.Origins, ",")
	r.Use(cors.New(
		cors.Config{
			AllowOrigins:     origins,
			AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
			AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization"},
			AllowCredentials: true,
		},
	))
}

func applyLogging(r *gin.Engine, app *App) {
	baseLogger := logging.CreateLogger(app.Config.Env)
	r.Use(logging.LoggerMiddleware(baseLogger))
}

func applyRateLimiting(r *gin.Engine, app *App) {
	rateLimiter := ratelimit.NewRedisRateLimiter(app.Redis)
	r.Use(middleware.RateLimiterMiddleware(rateLimiter, 100, time.Minute))
}

func applyTracing(r *gin.Engine, app *App) {
	if !app.Config.Tracing {
		return
	}

	tp, err := StartTracing()
	if err != nil {
		log.Fatalf("failed to start tracing: %v", err)
	}

	app.TracerProvider = tp
	r.Use(otelgin.Middleware("gateway"))
}

func applySwagger(r *gin.Engine, app *App) {
	if app.Config.Env == "PROD" {
		return
	}
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
}

func registerRoutes(r *gin.Engine, app *App, s *Services) {
	r.GET("/test", func(ctx *gin.Context) {
		responses.JSONSuccess(ctx, "ok")
	})

	health.RegisterHealthRoutes(
		health.NewHealthHandler(
			s.Stores.users,
		),
		r,
	)

	routers.RegisterAuthRoutes(
		handlers.NewAuth0Handler(app.Config.Env, app.Config.FrontendURL, s.Provider, s.Auth, s.Exchanger, s.AdminLogger),
		handlers.NewAuthHandler(s.Auth),
		r,
	)

	routers.RegisterAdminRoutes(
		admin.NewAdminHandler(s.Stores.authEvents),
		r,
	)

	routers.RegisterPostsRoutes(
		posts.NewPostsHandler(s.Posts),
		app.Config.JWTConfig.SecretKey,
		r,
	)

	routers.RegisterEventsRoutes(
		events.NewEventsHandler(s.Events),
		app.Config.JWTConfig.SecretKey,
		r,
	)

	routers.RegisterUserRoutes(
		users.NewUsersHandler(s.Users),
		app.Config.JWTConfig.SecretKey,
		r,
	)
}
