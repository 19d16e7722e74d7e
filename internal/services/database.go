package services

import (
	"log"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"nigerland_backend/internal/models"
)

// InitDB initializes the database connection with connection pooling
func InitDB(dsn string) (*gorm.DB, error) {
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Warn),
	})
	if err != nil {
		return nil, err
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}

	// Connection pool settings
	sqlDB.SetMaxIdleConns(10)
	sqlDB.SetMaxOpenConns(100)
	sqlDB.SetConnMaxLifetime(time.Hour)

	log.Println("Database connection established")
	return db, nil
}

// AutoMigrate runs database migrations for all models
func AutoMigrate(db *gorm.DB) error {
	log.Println("Running database migrations...")

	err := db.AutoMigrate(
		&models.Admin{},
		&models.Registration{},
		&models.Contact{},
		&models.Book{},
		&models.BookPurchase{},
		&models.Conference{},
		&models.TrainingProgram{},
		&models.TrainingEnrollment{},
		&models.MoreLifeAssessment{},
		&models.TeamMember{},
		&models.Project{},
		&models.Announcement{},
	)
	if err != nil {
		return err
	}

	log.Println("Database migrations completed")
	return nil
}
