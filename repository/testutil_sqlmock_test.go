package repository

import (
	"database/sql"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
)

// newMockDB 用 go-sqlmock 创建一个可被 GORM 使用的 *gorm.DB。
// mysql dialector 只是为了让生成的 SQL/占位符风格稳定，不会连接真实 MySQL。
// TranslateError 与线上配置保持一致，唯一键冲突才能翻译成 gorm.ErrDuplicatedKey。
func newMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock, *sql.DB) {
	t.Helper()

	sqldb, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}

	db, err := gorm.Open(mysql.New(mysql.Config{Conn: sqldb, SkipInitializeWithVersion: true}), &gorm.Config{
		SkipDefaultTransaction: true,
		TranslateError:         true,
	})
	if err != nil {
		_ = sqldb.Close()
		t.Fatalf("gorm.Open: %v", err)
	}

	return db, mock, sqldb
}
