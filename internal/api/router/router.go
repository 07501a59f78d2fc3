package router

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/fx"
	"go.uber.org/zap"

	"sportapp/internal/api/controllers"
	"sportapp/internal/config"
	"sportapp/internal/metrics"
	"sportapp/pkg/middleware"
	"sportapp/pkg/utils"
)

type Params struct {
	fx.In

	Config  *config.Config
	Log     *zap.Logger
	Metrics *metrics.Manager
	Tokens  *utils.TokenIssuer

	Accounts  *controllers.AccountController
	Workouts  *controllers.WorkoutController
	Sessions  *controllers.SessionController
	Dashboard *controllers.DashboardController
	Health    *controllers.HealthController
}

func New(p Params) *gin.Engine {
	if p.Config.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.Use(
		middleware.TraceIDMiddleware(),
		middleware.PanicRecovery(p.Metrics, p.Log),
		middleware.RequestLogger(p.Log),
		middleware.RequestMetrics(p.Metrics),
		middleware.CORSMiddleware(p.Config.CORS.AllowedOrigins),
	)

	RegisterRoutes(r, p)
	return r
}

func RegisterRoutes(r *gin.Engine, p Params) {
	auth := middleware.JWTAuthMiddleware(p.Tokens)

	r.GET("/healthz", p.Health.Healthz)
	r.GET("/metrics", p.Health.Metrics())

	accountsGroup := r.Group("/accounts")
	accountsGroup.POST("/register", p.Accounts.Register)
	accountsGroup.POST("/login", p.Accounts.Login)
	accountsGroup.DELETE("/me", auth, p.Accounts.DeleteAccount)

	profileGroup := r.Group("/profile", auth)
	profileGroup.GET("", p.Accounts.GetProfile)
	profileGroup.PUT("", p.Accounts.UpdateProfile)

	workoutsGroup := r.Group("/workouts")
	workoutsGroup.GET("", p.Workouts.ListWorkouts)
	workoutsGroup.POST("", auth, p.Workouts.CreateWorkout)
	workoutsGroup.GET("/:id", auth, p.Workouts.GetWorkout)
	workoutsGroup.DELETE("/:id", auth, p.Workouts.DeleteWorkout)
	workoutsGroup.POST("/:id/image-upload-url", auth, p.Workouts.RequestImageUpload)
	workoutsGroup.POST("/:id/start", auth, p.Sessions.StartSession)
	workoutsGroup.GET("/sessions/:session_id", auth, p.Sessions.GetSession)
	workoutsGroup.POST("/sessions/:session_id/complete", auth, p.Sessions.CompleteSession)

	progressGroup := r.Group("/progress", auth)
	progressGroup.GET("", p.Dashboard.GetDashboard)
	progressGroup.GET("/sessions", p.Dashboard.GetRecentSessions)

	r.POST("/api/save-exercise", auth, p.Sessions.SaveExercise)
}
