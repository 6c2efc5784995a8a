// internal/repository/flashcard_repository.go
package repository

import (
	"context"
	"errors"

	"go_5_flashcard_keep/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// FlashcardRepository はフラッシュカードの読み取り専用リポジトリです。
// カードとセットのCRUDはプラットフォーム側が行うため、本サービスでは
// 参照整合性チェックとセット集計に必要なクエリだけを公開します。
type FlashcardRepository interface {
	FindByID(ctx context.Context, db *gorm.DB, flashcardID uuid.UUID) (*model.Flashcard, error)
	CountBySet(ctx context.Context, db *gorm.DB, setID uuid.UUID) (int64, error)
}

type gormFlashcardRepository struct{}

func NewGormFlashcardRepository() FlashcardRepository {
	return &gormFlashcardRepository{}
}

func (r *gormFlashcardRepository) FindByID(ctx context.Context, db *gorm.DB, flashcardID uuid.UUID) (*model.Flashcard, error) {
	var card model.Flashcard
	result := db.WithContext(ctx).Where("flashcard_id = ?", flashcardID).First(&card)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, model.ErrNotFound
		}
		return nil, result.Error
	}
	return &card, nil
}

func (r *gormFlashcardRepository) CountBySet(ctx context.Context, db *gorm.DB, setID uuid.UUID) (int64, error) {
	var count int64
	result := db.WithContext(ctx).
		Model(&model.Flashcard{}).
		Where("set_id = ?", setID).
		Count(&count)
	return count, result.Error
}
