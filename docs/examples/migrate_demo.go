//go:build ignore
// +build ignore

package main

import (
	"log"

	party "github.com/cydxin/party-sdk"
	"github.com/cydxin/party-sdk/models"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
)

// Example: 单独运行建表（不启动 engine）
//
// 用户表和主题表只在使用 SDK 自带的 UserDirectory / ActivityCatalog 时需要；
// 接入方有自己的账号体系时，可以只迁移组局相关的四张表。

func main() {
	dsn := "user:password@tcp(127.0.0.1:3306)/partydb?charset=utf8mb4&parseTime=True&loc=Local"
	db, err := gorm.Open(mysql.Open(dsn), &gorm.Config{TranslateError: true})
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	if err := party.Migrate(db); err != nil {
		log.Fatalf("Migration failed: %v", err)
	}

	for _, m := range []any{&models.PartyPost{}, &models.PartyJoin{}, &models.PartyComment{}, &models.Notification{}} {
		log.Printf("table ok: %v", db.Migrator().HasTable(m))
	}

	// (post_id, user_id) 唯一索引是防重复申请的最后一道防线
	if !db.Migrator().HasIndex(&models.PartyJoin{}, "idx_post_user") {
		log.Fatal("missing unique index idx_post_user")
	}
	log.Println("迁移完成")
}
