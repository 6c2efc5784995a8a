// internal/model/flashcard.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Flashcard はフラッシュカードを表します。
// カードとセットのCRUDは本サービスの管轄外 (プラットフォーム側) で、
// ここでは参照整合性チェックとセット集計のために読み取りのみ行う。
type Flashcard struct {
	FlashcardID uuid.UUID      `gorm:"type:uuid;primaryKey" json:"flashcard_id"`
	SetID       uuid.UUID      `gorm:"type:uuid;not null;index" json:"set_id"`
	Front       string         `gorm:"not null" json:"front"` // 表面 (設問)
	Back        string         `gorm:"not null" json:"back"`  // 裏面 (解答)
	CreatedAt   time.Time      `json:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at"`
	DeletedAt   gorm.DeletedAt `gorm:"index" json:"-"` // 論理削除用

	// 関連 (Preload用)
	ReviewStates []ReviewState `gorm:"foreignKey:FlashcardID;references:FlashcardID" json:"-"`
}

func (Flashcard) TableName() string {
	return "flashcards"
}
