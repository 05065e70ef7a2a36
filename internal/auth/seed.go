package auth

import (
	"errors"
	"log"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/sahayognepal/charity-backend/config"
)

// SeedUserRoles inserts the three role tiers if they don't exist yet.
func SeedUserRoles(db *gorm.DB) error {
	roles := []UserRole{
		{RoleName: RoleAdmin, Description: "Full access: verify donations, manage payment methods and content"},
		{RoleName: RoleModerator, Description: "Review help requests and published work"},
		{RoleName: RoleUser, Description: "Donate and view personal donation history"},
	}

	for _, role := range roles {
		var existing UserRole
		err := db.Where("role_name = ?", role.RoleName).First(&existing).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			if err := db.Create(&role).Error; err != nil {
				return err
			}
			log.Printf("✅ Seeded role %q", role.RoleName)
		} else if err != nil {
			return err
		}
	}
	return nil
}

// SeedAdminUser creates the initial admin account from ADMIN_EMAIL /
// ADMIN_PASSWORD. Skipped when unset or when the account already exists.
func SeedAdminUser(db *gorm.DB, cfg *config.Config) error {
	if cfg.AdminEmail == "" || cfg.AdminPassword == "" {
		log.Println("ℹ️ ADMIN_EMAIL/ADMIN_PASSWORD not set, skipping admin seed")
		return nil
	}

	var existing User
	err := db.Where("email = ?", cfg.AdminEmail).First(&existing).Error
	if err == nil {
		return nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}

	var role UserRole
	if err := db.Where("role_name = ?", RoleAdmin).First(&role).Error; err != nil {
		return err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(cfg.AdminPassword), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	admin := &User{
		FullName:     "Administrator",
		Email:        cfg.AdminEmail,
		PasswordHash: string(hash),
		RoleID:       role.ID,
	}
	if err := db.Create(admin).Error; err != nil {
		return err
	}

	log.Printf("✅ Seeded admin user %s", cfg.AdminEmail)
	return nil
}
