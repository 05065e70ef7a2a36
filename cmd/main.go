package main

import (
	"log"

	"github.com/sahayognepal/charity-backend/config"
	"github.com/sahayognepal/charity-backend/database"
	"github.com/sahayognepal/charity-backend/internal/auditlog"
	"github.com/sahayognepal/charity-backend/internal/auth"
	"github.com/sahayognepal/charity-backend/internal/donation"
	"github.com/sahayognepal/charity-backend/internal/helprequest"
	"github.com/sahayognepal/charity-backend/internal/notification"
	"github.com/sahayognepal/charity-backend/internal/ourwork"
	"github.com/sahayognepal/charity-backend/internal/paymentmethod"
	"github.com/sahayognepal/charity-backend/internal/storage"
	"github.com/sahayognepal/charity-backend/internal/transaction"
	"github.com/sahayognepal/charity-backend/routes"
	"github.com/sahayognepal/charity-backend/utils"
)

func main() {
	cfg := config.Load()

	db := database.Connect(cfg)

	if err := db.AutoMigrate(
		&auth.UserRole{},
		&auth.User{},
		&donation.Donation{},
		&donation.UserDonationStats{},
		&paymentmethod.PaymentMethod{},
		&helprequest.HelpRequest{},
		&ourwork.WorkItem{},
		&transaction.Transaction{},
		&notification.Notification{},
		&auditlog.AuditLog{},
	); err != nil {
		log.Fatalf("❌ Migration failed: %v", err)
	}
	log.Println("✅ Database migrated")

	if err := auth.SeedUserRoles(db); err != nil {
		log.Fatalf("❌ Failed to seed roles: %v", err)
	}
	if err := auth.SeedAdminUser(db, cfg); err != nil {
		log.Fatalf("❌ Failed to seed admin user: %v", err)
	}

	utils.InitMailer(cfg)
	if err := utils.InitRedis(cfg); err != nil {
		log.Printf("⚠️ Redis unavailable, password reset disabled: %v", err)
	}

	var store storage.Service
	if cfg.StorageBucket != "" {
		s3Store, err := storage.NewS3Storage(cfg)
		if err != nil {
			log.Fatalf("❌ Failed to initialize object storage: %v", err)
		}
		store = s3Store
		log.Printf("✅ Using S3 storage bucket %s", cfg.StorageBucket)
	} else {
		localStore, err := storage.NewLocalStorage(cfg.UploadPath, cfg.BaseURL)
		if err != nil {
			log.Fatalf("❌ Failed to initialize local storage: %v", err)
		}
		store = localStore
		log.Printf("ℹ️ No storage bucket configured, saving uploads to %s", cfg.UploadPath)
	}

	router := routes.Setup(cfg, db, store)

	// Receipts and QR codes land here when local storage is in use.
	if cfg.StorageBucket == "" {
		router.Static("/uploads", cfg.UploadPath)
	}

	log.Printf("✅ Server starting on port %s", cfg.Port)
	if err := router.Run(":" + cfg.Port); err != nil {
		log.Fatalf("❌ Server failed: %v", err)
	}
}
