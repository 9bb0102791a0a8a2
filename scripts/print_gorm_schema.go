package main

import (
	"fmt"
	"log"
	"os"
	"sort"

	"github.com/cydxin/party-sdk/models"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/schema"
)

// Usage:
//
//	export PARTY_MYSQL_DSN='user:pass@tcp(127.0.0.1:3306)/dbname?charset=utf8mb4&parseTime=true&loc=Local'
//	go run ./scripts/print_gorm_schema.go
//
// 对比 GORM 解析出来的列类型和库里实际的列类型（排查 AutoMigrate 没补上的列）。
func main() {
	dsn := os.Getenv("PARTY_MYSQL_DSN")
	if dsn == "" {
		log.Fatal("PARTY_MYSQL_DSN is empty")
	}

	db, err := gorm.Open(mysql.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatalf("open db: %v", err)
	}

	for _, m := range []any{&models.PartyPost{}, &models.PartyJoin{}, &models.PartyComment{}, &models.Notification{}} {
		stmt := &gorm.Statement{DB: db}
		if err := stmt.Parse(m); err != nil {
			log.Fatalf("parse %T: %v", m, err)
		}
		printModel(db, stmt.Schema)
	}
}

func printModel(db *gorm.DB, s *schema.Schema) {
	fmt.Printf("=== %s (%s) ===\n", s.Name, s.Table)

	// Dialect SQL type (what GORM will use in CREATE TABLE / ALTER TABLE)
	for _, name := range keysByName(s.FieldsByDBName) {
		f := s.FieldsByDBName[name]
		fmt.Printf("%s\t%s\t%s\n", f.DBName, db.Dialector.DataTypeOf(f), f.Tag.Get("gorm"))
	}

	type col struct {
		Field string
		Type  string
		Null  string
		Key   string
	}
	var cols []col
	// Works on MySQL
	if err := db.Raw("SHOW COLUMNS FROM " + s.Table).Scan(&cols).Error; err != nil {
		fmt.Printf("SHOW COLUMNS FROM %s failed: %v\n", s.Table, err)
		return
	}
	fmt.Printf("--- SHOW COLUMNS FROM %s ---\n", s.Table)
	for _, c := range cols {
		fmt.Printf("%s\t%s\t%s\t%s\n", c.Field, c.Type, c.Null, c.Key)
	}
}

func keysByName(m map[string]*schema.Field) []string {
	out := make([]string, 0, len(m))
	for k := range m {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}
