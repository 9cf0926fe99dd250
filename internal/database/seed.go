package database

import (
	"log"

	"gorm.io/gorm"

	"github.com/Maclean-Holdbrook/Hood-eatery-backend/internal/models"
	"github.com/Maclean-Holdbrook/Hood-eatery-backend/internal/utils"
)

// Seed ensures an admin account and the default menu categories exist.
func Seed(conn *gorm.DB, adminEmail, adminPassword string) error {
	if err := seedAdmin(conn, adminEmail, adminPassword); err != nil {
		return err
	}
	return seedCategories(conn)
}

func seedAdmin(conn *gorm.DB, email, password string) error {
	if email == "" || password == "" {
		log.Println("admin credentials not configured, skipping admin seed")
		return nil
	}

	var count int64
	if err := conn.Model(&models.User{}).Where("email = ?", email).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	hash, err := utils.HashPassword(password)
	if err != nil {
		return err
	}

	admin := models.User{
		Email:        email,
		PasswordHash: hash,
		FullName:     "Admin User",
		Role:         models.RoleAdmin,
	}

	if err := conn.Create(&admin).Error; err != nil {
		return err
	}

	log.Printf("admin user %s created", email)
	return nil
}

func seedCategories(conn *gorm.DB) error {
	var count int64
	if err := conn.Model(&models.MenuCategory{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	categories := []models.MenuCategory{
		{Name: "Appetizers", Description: "Start your meal with our delicious appetizers", DisplayOrder: 1},
		{Name: "Main Course", Description: "Hearty and satisfying main dishes", DisplayOrder: 2},
		{Name: "Desserts", Description: "Sweet treats to end your meal", DisplayOrder: 3},
		{Name: "Beverages", Description: "Refreshing drinks and beverages", DisplayOrder: 4},
	}

	return conn.Create(&categories).Error
}
