package router

import (
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/scafflow-dev/scafflow/internal/handlers"
	"github.com/scafflow-dev/scafflow/internal/middleware"
	"github.com/scafflow-dev/scafflow/internal/rollup"
	"github.com/scafflow-dev/scafflow/internal/store"
	"github.com/scafflow-dev/scafflow/internal/types"
	"gorm.io/gorm"
)

func NewRouter(gdb *gorm.DB) *gin.Engine {
	r := gin.Default()

	r.Use(middleware.RequestID())
	r.Use(cors.New(cors.Config{
		AllowOrigins:     types.AllowedOrigins(),
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "HEAD", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Length", "Content-Type", "Authorization", "Accept", "X-Requested-With", "X-Request-ID"},
		ExposeHeaders:    []string{"Content-Length", "X-Request-ID"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	engine := rollup.NewEngine(gdb)

	userStore := store.NewUserStore(gdb)
	projectStore := store.NewProjectStore(gdb)
	taskStore := store.NewTaskStore(gdb, engine)
	budgetStore := store.NewBudgetStore(gdb)
	orderStore := store.NewChangeOrderStore(gdb)
	drawStore := store.NewProgressDrawStore(gdb)
	safetyStore := store.NewSafetyStore(gdb)

	authHandler := handlers.NewAuthHandler(userStore)
	adminHandler := handlers.NewAdminHandler(userStore)
	projectHandler := handlers.NewProjectHandler(projectStore)
	taskHandler := handlers.NewTaskHandler(taskStore)
	budgetHandler := handlers.NewBudgetHandler(budgetStore)
	orderHandler := handlers.NewChangeOrderHandler(orderStore)
	drawHandler := handlers.NewProgressDrawHandler(drawStore)
	safetyHandler := handlers.NewSafetyHandler(safetyStore)
	metricsHandler := handlers.NewMetricsHandler(projectStore, taskStore, budgetStore, orderStore, drawStore, safetyStore)

	api := r.Group("/api")
	{
		api.GET("/health", handlers.HealthCheck)

		auth := api.Group("/auth")
		{
			auth.POST("/signup", authHandler.Signup)
			auth.POST("/login", authHandler.Login)
			auth.GET("/me", middleware.AuthMiddleware(gdb), authHandler.Me)
		}

		admin := api.Group("/admin", middleware.AuthMiddleware(gdb))
		{
			admin.GET("/users", adminHandler.ListUsers)
		}

		projects := api.Group("/projects", middleware.AuthMiddleware(gdb))
		{
			projects.POST("", projectHandler.Create)
			projects.GET("", projectHandler.List)
			projects.GET("/:project_id", projectHandler.Get)
			projects.PATCH("/:project_id", projectHandler.Update)

			projects.GET("/:project_id/dashboard", metricsHandler.GetDashboard)
			projects.GET("/:project_id/metrics", metricsHandler.GetMetrics)

			projects.GET("/:project_id/tasks", taskHandler.List)
			projects.POST("/:project_id/tasks", taskHandler.Create)
			projects.PUT("/:project_id/tasks/:task_id", taskHandler.Update)

			projects.GET("/:project_id/budget-items", budgetHandler.List)
			projects.POST("/:project_id/budget-items", budgetHandler.Create)

			projects.GET("/:project_id/change-orders", orderHandler.List)
			projects.POST("/:project_id/change-orders", orderHandler.Create)

			projects.GET("/:project_id/progress-draws", drawHandler.List)
			projects.POST("/:project_id/progress-draws", drawHandler.Create)

			projects.GET("/:project_id/safety-incidents", safetyHandler.List)
			projects.POST("/:project_id/safety-incidents", safetyHandler.Create)
		}
	}

	return r
}
