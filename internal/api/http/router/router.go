// Package router assembles the gin engine serving the dashboard API.
package router

import (
	"net/http"

	"github.com/entnt/dentalcare-server/internal/api/http/handler"
	"github.com/entnt/dentalcare-server/internal/api/http/middleware"
	"github.com/entnt/dentalcare-server/internal/api/http/response"
	"github.com/entnt/dentalcare-server/internal/logger"
	"github.com/entnt/dentalcare-server/internal/model"
	"github.com/entnt/dentalcare-server/internal/service"
	"github.com/gin-gonic/gin"
)

// Router wires handlers and middleware into a gin engine.
type Router struct {
	auth      *handler.Auth
	patients  *handler.Patient
	incidents *handler.Incident
	dashboard *handler.Dashboard
	authMW    *middleware.Auth
	rateMW    *middleware.RateLimit
	logMW     *middleware.Logging
}

// New creates a Router over the clinic store and token manager.
func New(clinic *service.Clinic, tokens model.TokenManager, logger *logger.Logger) *Router {
	return &Router{
		auth:      handler.NewAuth(clinic, tokens, logger),
		patients:  handler.NewPatient(clinic, logger),
		incidents: handler.NewIncident(clinic, logger),
		dashboard: handler.NewDashboard(clinic, logger),
		authMW:    middleware.NewAuth(tokens, clinic, logger),
		rateMW:    middleware.NewRateLimit(5, 10),
		logMW:     middleware.NewLogging(logger),
	}
}

// Register builds the engine with all routes and middleware attached.
func (r *Router) Register() *gin.Engine {
	engine := gin.New()
	engine.Use(gin.Recovery(), r.logMW.Handle(), r.rateMW.Handle())

	engine.GET("/ping", func(c *gin.Context) {
		response.JSON(c, http.StatusOK, true, "ok", nil)
	})

	api := engine.Group("/api/v1")

	api.POST("/auth/login", r.auth.Login)

	protected := api.Group("/")
	protected.Use(r.authMW.Handle())
	{
		protected.POST("/auth/logout", r.auth.Logout)
		protected.GET("/profile", r.auth.Profile)

		protected.GET("/patients", r.patients.List)
		protected.POST("/patients", r.patients.Create)
		protected.GET("/patients/:id", r.patients.Get)
		protected.PUT("/patients/:id", r.patients.Update)
		protected.DELETE("/patients/:id", r.patients.Delete)

		protected.GET("/incidents", r.incidents.List)
		protected.POST("/incidents", r.incidents.Create)
		protected.GET("/incidents/:id", r.incidents.Get)
		protected.PUT("/incidents/:id", r.incidents.Update)
		protected.DELETE("/incidents/:id", r.incidents.Delete)

		protected.GET("/dashboard", r.dashboard.Stats)
		protected.GET("/calendar", r.dashboard.Calendar)
	}

	return engine
}
