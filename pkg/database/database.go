package database

import (
	"edu_resources_backend/internal/config"
	"edu_resources_backend/internal/model"
	"fmt"
	"log"
	"strconv"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func InitDB(cfg *config.DatabaseConfig) (*gorm.DB, error) {
	dsn := fmt.Sprintf("%s:%s@tcp(%s:%d)/%s?charset=%s&parseTime=%t&loc=UTC",
		cfg.User,
		cfg.Password,
		cfg.Host,
		cfg.Port,
		cfg.DBName,
		cfg.Charset,
		cfg.ParseTime,
	)

	db, err := gorm.Open(mysql.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Info),
	})

	if err != nil {
		return nil, err
	}

	log.Println("Database connection established")

	if err := Migrate(db); err != nil {
		return nil, err
	}

	log.Println("Database migration completed")

	return db, nil
}

// Migrate creates the schema and seeds the default settings. Shared with the
// sqlite-backed test databases.
func Migrate(db *gorm.DB) error {
	err := db.AutoMigrate(
		&model.User{},
		&model.ContentItem{},
		&model.Term{},
		&model.ResourceMeta{},
		&model.ResourceEvent{},
		&model.Setting{},
	)
	if err != nil {
		return err
	}

	return seedDefaultSettings(db)
}

func seedDefaultSettings(db *gorm.DB) error {
	defaults := map[string]string{
		model.SettingResourcesPerPage:    strconv.Itoa(12),
		model.SettingEnableRestAPI:       "true",
		model.SettingDefaultDifficulty:   string(model.DifficultyBeginner),
		model.SettingEnableDownloadCount: "true",
	}

	for key, value := range defaults {
		var count int64
		if err := db.Model(&model.Setting{}).Where("settings.key = ?", key).Count(&count).Error; err != nil {
			return err
		}
		if count == 0 {
			if err := db.Create(&model.Setting{Key: key, Value: value}).Error; err != nil {
				return err
			}
		}
	}
	return nil
}

// SeedAdminUser creates the initial admin account when the user table is
// empty. Called from app startup with the configured credentials.
func SeedAdminUser(db *gorm.DB, email, password string) error {
	if email == "" || password == "" {
		return nil
	}

	var count int64
	if err := db.Model(&model.User{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	return db.Create(&model.User{
		Name:     "Administrator",
		Email:    email,
		Password: string(hash),
		Role:     model.Admin,
	}).Error
}
