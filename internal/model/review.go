// internal/model/review.go
package model

import (
	"time"

	"github.com/google/uuid"
)

// ReviewState はユーザー×フラッシュカードごとのスケジューリング状態を表します。
// (user_id, flashcard_id) の組で一意。SM-2アルゴリズムの出力のみが
// このレコードを更新します。
type ReviewState struct {
	StateID         uuid.UUID `gorm:"type:uuid;primaryKey"`
	UserID          uuid.UUID `gorm:"type:uuid;not null;index:idx_user_flashcard,unique"` // 複合ユニークインデックスの一部
	FlashcardID     uuid.UUID `gorm:"type:uuid;not null;index:idx_user_flashcard,unique"` // 複合ユニークインデックスの一部
	EaseFactor      float64   `gorm:"not null;default:2.5"` // 難易度係数 (下限1.3)
	IntervalDays    int       `gorm:"not null;default:0"`   // 次回復習までの日数 (0=未復習)
	RepetitionCount int       `gorm:"not null;default:0"`   // 連続正解回数 (失敗でリセット)
	LastReviewedAt  *time.Time
	NextReviewDate  *time.Time `gorm:"index"` // NULL = 即時復習対象
	IsMastered      bool       `gorm:"not null;default:false"`
	CreatedAt       time.Time
	UpdatedAt       time.Time

	// 関連 (Preload用)
	Flashcard *Flashcard `gorm:"foreignKey:FlashcardID;references:FlashcardID" json:"-"`
}

func (ReviewState) TableName() string {
	return "review_states"
}

// 復習結果送信リクエストのDTO。
// quality=0 が有効値のためポインタで受けて required 判定する。
type SubmitReviewRequest struct {
	Quality *int `json:"quality" validate:"required,min=0,max=5"`
}

// ReviewResultResponse は復習結果送信のレスポンスDTO
type ReviewResultResponse struct {
	FlashcardID    uuid.UUID `json:"flashcard_id"`
	NextReviewDate time.Time `json:"next_review_date"`
	IntervalDays   int       `json:"interval_days"`
	IsMastered     bool      `json:"is_mastered"`
	Message        string    `json:"message"`
}

// DueCardResponse は復習対象カードのレスポンスDTO。
// NextReviewDate が null のカードは一度も復習されていない。
type DueCardResponse struct {
	FlashcardID     uuid.UUID  `json:"flashcard_id"`
	NextReviewDate  *time.Time `json:"next_review_date"`
	IntervalDays    int        `json:"interval_days"`
	RepetitionCount int        `json:"repetition_count"`
}

// ReviewedCardResponse は復習履歴クエリのレスポンスDTO
type ReviewedCardResponse struct {
	FlashcardID     uuid.UUID `json:"flashcard_id"`
	LastReviewedAt  time.Time `json:"last_reviewed_at"`
	RepetitionCount int       `json:"repetition_count"`
	IsMastered      bool      `json:"is_mastered"`
}
