// File: growlife/main.go
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"growlife/config"
	"growlife/cron"
	"growlife/database"
	activityRepo "growlife/database/repository/activity"
	feedbackRepo "growlife/database/repository/feedback"
	policyRepoPkg "growlife/database/repository/policy"
	userRepoPkg "growlife/database/repository/user"
	"growlife/handlers"
	"growlife/routes"
	"growlife/services/auth"
	"growlife/services/claim"
	"growlife/services/mail"
	"growlife/services/policy"
	"growlife/services/user"
	"growlife/utils"

	"github.com/gin-gonic/gin"
	"github.com/hibiken/asynq"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	database.InitDB()
	utils.InitOTPCache()

	// Outgoing email: one SMTP sender shared by the synchronous path and the
	// background queue worker.
	smtpSender := mail.NewSMTPSender()
	asynqClient := asynq.NewClient(asynq.RedisClientOpt{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisQueueDB,
	})
	defer asynqClient.Close()
	mailService := mail.NewService(smtpSender, asynqClient)
	cron.InitEmailWorker(smtpSender)

	utils.StartHealthMonitor(utils.GetOTPCacheClient(), database.MongoClient)

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())

	// repositories.
	users := userRepoPkg.NewMongoUserRepo()
	policies := policyRepoPkg.NewMongoPolicyRepo()
	activities := activityRepo.NewMongoActivityRepo()
	feedback := feedbackRepo.NewMongoFeedbackRepo()

	// services.
	authService := &auth.DefaultAuthService{
		Users: users,
		OTP:   auth.NewOTPStore(utils.GetOTPCacheClient()),
		Mail:  mailService,
	}
	claimService := &claim.DefaultClaimService{
		Users:    users,
		Policies: policies,
		Mail:     mailService,
	}
	policyService := &policy.DefaultPolicyService{
		Policies: policies,
		Users:    users,
		Mail:     mailService,
	}
	userService := &user.DefaultUserService{
		Users:    users,
		Policies: policies,
	}

	// Assemble the handler bundle.
	handlerBundle := &handlers.HandlerBundle{
		Auth:      handlers.NewAuthHandler(authService, config.AppConfig.UploadDir),
		Policy:    handlers.NewPolicyHandler(policyService),
		User:      handlers.NewUserHandler(userService, policyService),
		Claim:     handlers.NewClaimHandler(claimService),
		Account:   handlers.NewAccountHandler(userService),
		Assign:    handlers.NewAssignHandler(userService, policyService),
		Dashboard: handlers.NewDashboardHandler(userService),
		Activity:  handlers.NewActivityHandler(activities),
		Feedback:  handlers.NewFeedbackHandler(feedback),
	}

	routes.RegisterRoutes(router, handlerBundle)

	// Start the HTTP server.
	port := config.AppConfig.AppPort
	if port == "" {
		port = "5000"
	}
	srv := &http.Server{
		Addr:    "0.0.0.0:" + port,
		Handler: router,
	}

	logger.Sugar().Infof("Starting server on %s...", srv.Addr)
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Sugar().Fatalf("main: server failed to start: %v", err)
		}
	}()

	// Wait for an OS signal to gracefully shutdown.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Sugar().Info("main: server is shutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Sugar().Fatalf("main: server forced to shutdown: %v", err)
	}

	logger.Sugar().Info("main: server stopped gracefully")
}
