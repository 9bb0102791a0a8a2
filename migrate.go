package party_sdk

import (
	"errors"
	"fmt"
	"log"

	"github.com/cydxin/party-sdk/models"
	"gorm.io/gorm"
)

// Migrate 建表/补列。用户和主题表只在 SDK 自带目录实现时需要。
func Migrate(db *gorm.DB) error {
	if db == nil {
		return errors.New("migrate: nil db")
	}
	log.Println("AutoMigrate...")
	if err := db.AutoMigrate(
		&models.User{},
		&models.Theme{},
		&models.PartyPost{},
		&models.PartyJoin{},
		&models.PartyComment{},
		&models.Notification{},
	); err != nil {
		return fmt.Errorf("auto migrate: %w", err)
	}
	return nil
}

func (e *PartyEngine) AutoMigrate() error {
	return Migrate(e.config.DB)
}
