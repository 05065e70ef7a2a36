package routes

import (
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/sahayognepal/charity-backend/config"
	"github.com/sahayognepal/charity-backend/internal/auditlog"
	"github.com/sahayognepal/charity-backend/internal/auth"
	"github.com/sahayognepal/charity-backend/internal/donation"
	"github.com/sahayognepal/charity-backend/internal/helprequest"
	"github.com/sahayognepal/charity-backend/internal/notification"
	"github.com/sahayognepal/charity-backend/internal/ourwork"
	"github.com/sahayognepal/charity-backend/internal/paymentmethod"
	"github.com/sahayognepal/charity-backend/internal/reports"
	"github.com/sahayognepal/charity-backend/internal/storage"
	"github.com/sahayognepal/charity-backend/internal/transaction"
	"github.com/sahayognepal/charity-backend/middleware"
)

// Setup builds the router and wires every feature's repository,
// service and handler against the shared DB and storage client.
func Setup(cfg *config.Config, db *gorm.DB, store storage.Service) *gin.Engine {
	registerValidators()

	router := gin.Default()

	router.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		ExposeHeaders:    []string{"Content-Length", "Content-Disposition"},
		AllowCredentials: false,
		MaxAge:           12 * time.Hour,
	}))
	router.Use(middleware.RateLimiter())
	router.Use(middleware.AuditMiddleware())

	// Repositories and services
	auditRepo := auditlog.NewRepository(db)
	auditSvc := auditlog.NewService(auditRepo)
	auditHandler := auditlog.NewHandler(auditSvc)

	authRepo := auth.NewRepository(db)
	authSvc := auth.NewService(authRepo, cfg)
	authHandler := auth.NewHandler(authSvc, auditSvc)

	methodRepo := paymentmethod.NewRepository(db)
	methodSvc := paymentmethod.NewService(methodRepo, store)
	methodHandler := paymentmethod.NewHandler(methodSvc)

	notifRepo := notification.NewRepository(db)
	notifSvc := notification.NewService(notifRepo)
	notifHandler := notification.NewHandler(notifSvc)

	donationRepo := donation.NewRepository(db)
	donationSvc := donation.NewService(donationRepo, methodSvc, notifSvc, store)
	donationHandler := donation.NewHandler(donationSvc, auditSvc)

	helpRepo := helprequest.NewRepository(db)
	helpSvc := helprequest.NewService(helpRepo)
	helpHandler := helprequest.NewHandler(helpSvc)

	workRepo := ourwork.NewRepository(db)
	workSvc := ourwork.NewService(workRepo, store)
	workHandler := ourwork.NewHandler(workSvc)

	txRepo := transaction.NewRepository(db)
	txSvc := transaction.NewService(txRepo)
	txHandler := transaction.NewHandler(txSvc)

	reportSvc := reports.NewService(donationSvc, txSvc)
	reportHandler := reports.NewHandler(reportSvc)

	api := router.Group("/api")

	// Public endpoints
	api.POST("/auth/register", authHandler.Register)
	api.POST("/auth/login", authHandler.Login)
	api.POST("/auth/refresh", authHandler.Refresh)
	api.POST("/auth/forgot-password", authHandler.ForgotPassword)
	api.POST("/auth/reset-password", authHandler.ResetPassword)

	api.GET("/payment-methods", methodHandler.ListPublic)
	api.GET("/donors/top", donationHandler.TopDonors)
	api.GET("/our-work", workHandler.ListPublished)
	api.GET("/transactions", txHandler.List)
	api.POST("/help-requests", helpHandler.Submit)

	// Donation submission accepts anonymous donors but attaches the
	// account when a valid token is present.
	api.POST("/donations", middleware.OptionalAuthMiddleware(cfg, authSvc), donationHandler.Submit)

	// Authenticated endpoints
	authed := api.Group("")
	authed.Use(middleware.AuthMiddleware(cfg, authSvc))
	{
		authed.POST("/auth/logout", authHandler.Logout)
		authed.GET("/me", authHandler.Me)
		authed.PUT("/me", authHandler.UpdateMe)
		authed.GET("/me/donations", donationHandler.MyDonations)
		authed.GET("/donations/:id/receipt", donationHandler.Receipt)
		authed.GET("/notifications", notifHandler.List)
		authed.POST("/notifications/:id/read", notifHandler.MarkRead)
		authed.POST("/notifications/read-all", notifHandler.MarkAllRead)
	}

	// Admin endpoints; role is loaded fresh on every request so a
	// downgrade locks the account out immediately.
	admin := api.Group("/admin")
	admin.Use(middleware.AuthMiddleware(cfg, authSvc), middleware.RequireAdmin())
	{
		admin.GET("/dashboard", donationHandler.Dashboard)

		admin.GET("/donations", donationHandler.List)
		admin.GET("/donations/pending", donationHandler.ListPending)
		admin.GET("/donations/:id", donationHandler.Get)
		admin.POST("/donations/:id/verify", donationHandler.Verify)
		admin.POST("/donations/:id/reject", donationHandler.Reject)

		admin.GET("/payment-methods", methodHandler.ListAll)
		admin.POST("/payment-methods", methodHandler.Create)
		admin.PUT("/payment-methods/:id", methodHandler.Update)
		admin.PATCH("/payment-methods/:id/active", methodHandler.Toggle)
		admin.DELETE("/payment-methods/:id", methodHandler.Delete)

		admin.POST("/transactions", txHandler.Create)

		admin.GET("/reports/donations", reportHandler.ExportDonations)
		admin.GET("/reports/ledger", reportHandler.ExportLedger)

		admin.GET("/audit-logs", auditHandler.List)
		admin.GET("/audit-logs/:id", auditHandler.Get)
	}

	// Moderators share the content and triage surfaces with admins but
	// cannot touch donations or payment methods.
	staff := api.Group("/admin")
	staff.Use(middleware.AuthMiddleware(cfg, authSvc), middleware.RBACMiddleware(auth.RoleAdmin, auth.RoleModerator))
	{
		staff.GET("/help-requests", helpHandler.List)
		staff.PATCH("/help-requests/:id/status", helpHandler.UpdateStatus)

		staff.GET("/our-work", workHandler.ListAll)
		staff.POST("/our-work", workHandler.Create)
		staff.PUT("/our-work/:id", workHandler.Update)
		staff.DELETE("/our-work/:id", workHandler.Delete)
	}

	return router
}
