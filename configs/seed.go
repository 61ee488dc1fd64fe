package configs

import (
	"errors"

	"github.com/cooper235/Canteen-project-sub000/entity"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// SeedAdmin creates the admin account once. Skipped when ADMIN_PASSWORD is
// unset or the account already exists.
func SeedAdmin(db *gorm.DB, cfg *Config) error {
	if cfg.AdminPassword == "" {
		return nil
	}

	var existing entity.User
	err := db.Where("email = ?", cfg.AdminEmail).First(&existing).Error
	if err == nil {
		return nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(cfg.AdminPassword), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	admin := entity.User{
		Email:     cfg.AdminEmail,
		Password:  string(hash),
		FirstName: "Admin",
		Role:      "admin",
	}
	return db.Create(&admin).Error
}
