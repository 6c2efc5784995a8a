// internal/repository/main_test.go
package repository

import (
	"fmt"
	"testing"

	"go_5_flashcard_keep/internal/model"

	"github.com/google/uuid"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// setupTestDB はテストごとに独立したインメモリsqliteを用意します。
// TranslateError を有効にして重複キーを gorm.ErrDuplicatedKey として
// 受け取れるようにする (本番のpostgresでは pgconn の 23505 で判定)。
func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", uuid.New().String())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	})
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}

	if err := db.AutoMigrate(&model.Flashcard{}, &model.ReviewState{}, &model.UserStreak{}); err != nil {
		t.Fatalf("failed to migrate test database: %v", err)
	}

	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			sqlDB.Close()
		}
	})
	return db
}

// createTestFlashcard はセットに属するカードを1枚作成します
func createTestFlashcard(t *testing.T, db *gorm.DB, setID uuid.UUID) *model.Flashcard {
	t.Helper()

	card := &model.Flashcard{
		FlashcardID: uuid.New(),
		SetID:       setID,
		Front:       "front_" + uuid.New().String()[:8],
		Back:        "back",
	}
	if err := db.Create(card).Error; err != nil {
		t.Fatalf("failed to create test flashcard: %v", err)
	}
	return card
}
