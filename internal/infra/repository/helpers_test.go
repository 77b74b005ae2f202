package repository

import (
	"context"
	"fmt"
	"os"
	"testing"
	"time"

	"storefront/internal/domain/model"
	"storefront/internal/infra/db"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	"gorm.io/gorm/logger"
)

// DB接続文字列を環境変数から読む。無ければスキップ。
func testDSN() string {
	if v := os.Getenv("TEST_DATABASE_DSN"); v != "" {
		return v
	}
	return os.Getenv("DATABASE_URL")
}

// テストごとに専用スキーマを作ってトランザクション内で使う。
// 終了時にロールバックするのでテーブルも行も残らない。
func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := testDSN()
	if dsn == "" {
		t.Skip("TEST_DATABASE_DSN / DATABASE_URL not set")
	}

	gdb, err := gorm.Open(postgres.Open(dsn), &gorm.Config{Logger: logger.Default.LogMode(logger.Silent)})
	require.NoError(t, err)

	tx := gdb.Begin()
	require.NoError(t, tx.Error)
	t.Cleanup(func() {
		tx.Rollback()
		if sqlDB, err := gdb.DB(); err == nil {
			_ = sqlDB.Close()
		}
	})

	schema := fmt.Sprintf("repo_test_%d", time.Now().UnixNano())
	require.NoError(t, tx.Exec("CREATE SCHEMA "+schema).Error)
	require.NoError(t, tx.Exec("SET LOCAL search_path TO "+schema).Error)
	require.NoError(t, db.Migrate(tx))

	return tx
}

func mustCategory(t *testing.T, tx *gorm.DB, name string) model.Category {
	t.Helper()
	c := model.Category{Name: name}
	require.NoError(t, tx.Create(&c).Error)
	return c
}

func mustProduct(t *testing.T, tx *gorm.DB, name, price string, categoryID int64) model.Product {
	t.Helper()
	p := model.Product{
		Name:       name,
		Price:      decimal.RequireFromString(price),
		CategoryID: categoryID,
	}
	require.NoError(t, tx.Omit(clause.Associations).Create(&p).Error)
	return p
}

func mustUser(t *testing.T, tx *gorm.DB, username string) model.User {
	t.Helper()
	u := model.User{Username: username, PasswordHash: "x", IsActive: true}
	require.NoError(t, NewUserGormRepository(tx).Create(context.Background(), &u))
	return u
}
