package routes

import (
	"time"

	"nestulasli/handlers"
	"nestulasli/middleware"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// RegisterVillaRoutes registers the villa configuration endpoints.
func RegisterVillaRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/villas")
	{
		api.GET("", hb.Villa.GetVillasHandler)
		api.GET("/:key/blocked", hb.Villa.GetBlockedPeriodsHandler)
	}
}

// RegisterQuoteRoutes registers the one-shot quote endpoint.
func RegisterQuoteRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	r.POST("/api/quote", hb.Quote.ComputeQuoteHandler)
}

// RegisterEnquiryRoutes sets up the endpoints for the enquiry-session flow.
func RegisterEnquiryRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	enquiryGroup := r.Group("/api/enquiry")
	{
		enquiryGroup.POST("/session", hb.Enquiry.InitiateSession)
		enquiryGroup.GET("/session/:sessionID", hb.Enquiry.GetSession)
		enquiryGroup.PUT("/session/:sessionID", hb.Enquiry.UpdateSession)
		enquiryGroup.DELETE("/session/:sessionID", hb.Enquiry.CancelSession)
		enquiryGroup.POST("/session/:sessionID/handoff", hb.Enquiry.Handoff)
	}
}

// RegisterPlannerRoutes registers the profit-planner endpoints.
func RegisterPlannerRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/planner")
	{
		api.GET("/scenarios", hb.Planner.GetScenariosHandler)
		api.POST("/projection", hb.Planner.ProjectionHandler)
		api.POST("/scenario/:name", hb.Planner.ApplyScenarioHandler)
	}
}

// RegisterRatesRoute registers the display-rate endpoint.
func RegisterRatesRoute(r *gin.Engine, hb *handlers.HandlerBundle) {
	r.GET("/api/rates", hb.Rates.GetRatesHandler)
}

// RegisterAdminRoutes sets up endpoints for runtime configuration.
func RegisterAdminRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	adminGroup := r.Group("/api/admin")
	{
		adminGroup.Use(middleware.JWTAuthAdminMiddleware())
		adminGroup.PUT("/scenarios", hb.Admin.UpdateScenariosHandler)
		adminGroup.POST("/villas/:key/blocked", hb.Admin.AddBlockedPeriodHandler)
		adminGroup.DELETE("/villas/:key/blocked", hb.Admin.ClearBlockedPeriodsHandler)
	}
}

// RegisterHealthRoute registers a health-check endpoint.
func RegisterHealthRoute(r *gin.Engine) {
	r.GET("/health", handlers.HealthHandler)
}

// RegisterRoutes centralizes registration of all endpoints and middleware.
func RegisterRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	// Setup global middleware (e.g., CORS) here.
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	RegisterVillaRoutes(r, hb)
	RegisterQuoteRoutes(r, hb)
	RegisterEnquiryRoutes(r, hb)
	RegisterPlannerRoutes(r, hb)
	RegisterRatesRoute(r, hb)
	RegisterAdminRoutes(r, hb)
	RegisterHealthRoute(r)
}
