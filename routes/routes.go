package routes

import (
	"net/http"
	"time"

	"growlife/config"
	"growlife/handlers"
	"growlife/middleware"
	"growlife/models"
	"growlife/utils"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// RegisterAuthRoutes registers signup, login and the OTP endpoints.
func RegisterAuthRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api")
	{
		api.POST("/send-otp", hb.Auth.SendOTPHandler)
		api.POST("/verify-otp", hb.Auth.VerifyOTPHandler)
		api.POST("/signup", hb.Auth.SignupHandler)
		api.POST("/login", hb.Auth.LoginHandler)
	}
}

// RegisterPolicyRoutes registers the policy catalog endpoints, plus the
// public listing aliases the storefront pages call.
func RegisterPolicyRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/policies")
	{
		api.GET("", hb.Policy.ListPoliciesHandler)
		api.GET("/:id", hb.Policy.GetPolicyHandler)
		api.POST("", hb.Policy.CreatePolicyHandler)
		api.PUT("/:id", hb.Policy.UpdatePolicyHandler)
		api.DELETE("/:id", hb.Policy.DeletePolicyHandler)
	}

	r.GET("/api/home/list", hb.Policy.ListPoliciesHandler)
	r.GET("/api/fetchpolicies/list", hb.Policy.ListPoliciesHandler)
}

// RegisterUserRoutes registers the customer profile, purchase and
// notification endpoints.
func RegisterUserRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/users")
	{
		api.GET("", hb.User.AllUsersHandler)
		api.GET("/all-purchased-policies", hb.User.AllPurchasedPoliciesHandler)
		api.GET("/:username", hb.User.ProfileHandler)
		api.POST("/:username/purchase-policy", hb.User.PurchasePolicyHandler)
		api.GET("/:username/notifications", hb.User.NotificationsHandler)
	}
}

// RegisterClaimRoutes registers the claim lifecycle endpoints. All of them
// require authentication; review operations additionally require an admin or
// agent role.
func RegisterClaimRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/claims")
	api.Use(middleware.AuthRequired())
	{
		api.POST("", hb.Claim.FileClaimHandler)
		api.GET("/user-policies", hb.Claim.UserPoliciesHandler)
		api.GET("/user", hb.Claim.UserClaimsHandler)
		api.GET("/:claimId", hb.Claim.GetClaimHandler)

		review := api.Group("")
		review.Use(middleware.RequireRoles(models.RoleAdmin, models.RoleAgent))
		review.GET("/all", hb.Claim.AllClaimsHandler)
		review.PUT("/:claimId/status", hb.Claim.UpdateClaimStatusHandler)
		review.DELETE("/:claimId", hb.Claim.DeleteClaimHandler)
	}
}

// RegisterAccountRoutes registers the administrative customer and agent CRUD
// endpoints.
func RegisterAccountRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	customers := r.Group("/api/customers")
	{
		customers.GET("", hb.Account.ListCustomersHandler)
		customers.POST("", hb.Account.CreateCustomerHandler)
		customers.PUT("/:id", hb.Account.UpdateCustomerHandler)
		customers.DELETE("/:id", hb.Account.DeleteCustomerHandler)
	}

	agents := r.Group("/api/agents")
	{
		agents.GET("", hb.Account.ListAgentsHandler)
		agents.POST("", hb.Account.CreateAgentHandler)
		agents.PUT("/:id", hb.Account.UpdateAgentHandler)
		agents.DELETE("/:id", hb.Account.DeleteAgentHandler)
	}
}

// RegisterAssignRoutes registers the agent-assignment endpoints.
func RegisterAssignRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/assignagents")
	{
		api.GET("/list", hb.Assign.ListAgentRefsHandler)
		api.POST("/assign-policy", hb.Assign.AssignPolicyHandler)
		api.GET("/auth/policies", hb.Assign.AgentPoliciesHandler)
		api.GET("/agents-with-policies", hb.Assign.AgentsWithPoliciesHandler)
	}
}

// RegisterDashboardRoutes registers the admin and agent dashboard endpoints.
func RegisterDashboardRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	r.GET("/api/admin/dashboard", hb.Dashboard.AdminDashboardHandler)

	agent := r.Group("/api/agent/dashboard")
	agent.Use(middleware.AuthRequired(), middleware.RequireRoles(models.RoleAgent))
	{
		agent.GET("/my-stats", hb.Dashboard.AgentStatsHandler)
	}
}

// RegisterSiteRoutes registers the activity feed and public feedback
// endpoints.
func RegisterSiteRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	activity := r.Group("/api/activity")
	{
		activity.GET("", hb.Activity.RecentActivityHandler)
		activity.POST("", hb.Activity.RecordActivityHandler)
	}

	feedback := r.Group("/api/feedback")
	{
		feedback.GET("", hb.Feedback.ListFeedbackHandler)
		feedback.POST("", hb.Feedback.SubmitFeedbackHandler)
	}
}

// RegisterHealthRoute registers a health-check endpoint.
func RegisterHealthRoute(r *gin.Engine) {
	r.GET("/health", func(c *gin.Context) {
		status := utils.GetHealthStatus()
		code := http.StatusOK
		if !status.Mongo || !status.Redis {
			code = http.StatusServiceUnavailable
		}
		c.JSON(code, status)
	})
}

// RegisterRoutes centralizes registration of all endpoints and middleware.
func RegisterRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{config.AppConfig.CORSOrigin},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type", "username"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	RegisterAuthRoutes(r, hb)
	RegisterPolicyRoutes(r, hb)
	RegisterUserRoutes(r, hb)
	RegisterClaimRoutes(r, hb)
	RegisterAccountRoutes(r, hb)
	RegisterAssignRoutes(r, hb)
	RegisterDashboardRoutes(r, hb)
	RegisterSiteRoutes(r, hb)
	RegisterHealthRoute(r)
}
