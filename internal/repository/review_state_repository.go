// internal/repository/review_state_repository.go
package repository

import (
	"context"
	"errors"
	"time"

	"go_5_flashcard_keep/internal/model"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

// ReviewStateRepository はReviewStateの永続化を担います。
// スケジューリングのロジックは持たない (それは scheduler パッケージの責務)。
type ReviewStateRepository interface {
	// GetOrCreate は既存レコードを返すか、未復習状態の新規レコードを作成して返します。
	GetOrCreate(ctx context.Context, tx *gorm.DB, userID, flashcardID uuid.UUID) (*model.ReviewState, error)
	// Save はレコード全体を上書き保存します (部分更新はしない)。
	Save(ctx context.Context, tx *gorm.DB, state *model.ReviewState) error
	// FindDueByUser は next_review_date が NULL または asOf 以前のレコードを返します。
	// 並び順: 未復習 (NULL) が先、その後 next_review_date 昇順。
	FindDueByUser(ctx context.Context, db *gorm.DB, userID uuid.UUID, asOf time.Time, limit int) ([]*model.ReviewState, error)
	// FindReviewedSince は last_reviewed_at >= since のレコードを返します。
	FindReviewedSince(ctx context.Context, db *gorm.DB, userID uuid.UUID, since time.Time) ([]*model.ReviewState, error)
	// CountStudiedBySet はセット内で一度以上復習されたカード数を返します。
	CountStudiedBySet(ctx context.Context, db *gorm.DB, userID, setID uuid.UUID) (int64, error)
	// CountMasteredBySet はセット内でマスター済みのカード数を返します。
	CountMasteredBySet(ctx context.Context, db *gorm.DB, userID, setID uuid.UUID) (int64, error)
}

type gormReviewStateRepository struct {
	// DB接続はService層から渡される想定
}

func NewGormReviewStateRepository() ReviewStateRepository {
	return &gormReviewStateRepository{}
}

// newReviewState は未復習状態の初期値を持つレコードを作ります。
// interval_days=0, ease_factor=2.5, next_review_date=NULL (即時復習対象)。
func newReviewState(userID, flashcardID uuid.UUID) *model.ReviewState {
	return &model.ReviewState{
		StateID:         uuid.New(),
		UserID:          userID,
		FlashcardID:     flashcardID,
		EaseFactor:      2.5,
		IntervalDays:    0,
		RepetitionCount: 0,
	}
}

func (r *gormReviewStateRepository) GetOrCreate(ctx context.Context, tx *gorm.DB, userID, flashcardID uuid.UUID) (*model.ReviewState, error) {
	var state model.ReviewState
	result := tx.WithContext(ctx).
		Where("user_id = ? AND flashcard_id = ?", userID, flashcardID).
		First(&state)
	if result.Error == nil {
		return &state, nil
	}
	if !errors.Is(result.Error, gorm.ErrRecordNotFound) {
		return nil, result.Error
	}

	created := newReviewState(userID, flashcardID)
	if err := tx.WithContext(ctx).Create(created).Error; err != nil {
		// 同一 (user, flashcard) の同時初回アクセスは複合ユニーク制約で片方が弾かれる。
		// その場合は勝った方のレコードを読み直す。
		var pgErr *pgconn.PgError
		if (errors.As(err, &pgErr) && pgErr.Code == "23505") || errors.Is(err, gorm.ErrDuplicatedKey) {
			var existing model.ReviewState
			if ferr := tx.WithContext(ctx).
				Where("user_id = ? AND flashcard_id = ?", userID, flashcardID).
				First(&existing).Error; ferr != nil {
				return nil, ferr
			}
			return &existing, nil
		}
		return nil, err
	}
	return created, nil
}

func (r *gormReviewStateRepository) Save(ctx context.Context, tx *gorm.DB, state *model.ReviewState) error {
	// Saveは主キーに基づく全カラム上書き。部分更新が並行リーダーから見えることはない。
	result := tx.WithContext(ctx).Save(state)
	return result.Error
}

func (r *gormReviewStateRepository) FindDueByUser(ctx context.Context, db *gorm.DB, userID uuid.UUID, asOf time.Time, limit int) ([]*model.ReviewState, error) {
	var states []*model.ReviewState

	// 論理削除されたカードの状態は復習対象から除外する
	result := db.WithContext(ctx).
		Joins("JOIN flashcards ON flashcards.flashcard_id = review_states.flashcard_id AND flashcards.deleted_at IS NULL").
		Where("review_states.user_id = ?", userID).
		Where("review_states.next_review_date IS NULL OR review_states.next_review_date <= ?", asOf).
		Order("review_states.next_review_date ASC NULLS FIRST, review_states.created_at ASC").
		Limit(limit).
		Find(&states)
	if result.Error != nil {
		return nil, result.Error
	}
	return states, nil
}

func (r *gormReviewStateRepository) FindReviewedSince(ctx context.Context, db *gorm.DB, userID uuid.UUID, since time.Time) ([]*model.ReviewState, error) {
	var states []*model.ReviewState
	result := db.WithContext(ctx).
		Where("user_id = ? AND last_reviewed_at >= ?", userID, since).
		Order("last_reviewed_at DESC").
		Find(&states)
	if result.Error != nil {
		return nil, result.Error
	}
	return states, nil
}

func (r *gormReviewStateRepository) CountStudiedBySet(ctx context.Context, db *gorm.DB, userID, setID uuid.UUID) (int64, error) {
	var count int64
	result := db.WithContext(ctx).
		Model(&model.ReviewState{}).
		Joins("JOIN flashcards ON flashcards.flashcard_id = review_states.flashcard_id AND flashcards.deleted_at IS NULL").
		Where("review_states.user_id = ? AND flashcards.set_id = ?", userID, setID).
		Where("review_states.last_reviewed_at IS NOT NULL").
		Count(&count)
	return count, result.Error
}

func (r *gormReviewStateRepository) CountMasteredBySet(ctx context.Context, db *gorm.DB, userID, setID uuid.UUID) (int64, error) {
	var count int64
	result := db.WithContext(ctx).
		Model(&model.ReviewState{}).
		Joins("JOIN flashcards ON flashcards.flashcard_id = review_states.flashcard_id AND flashcards.deleted_at IS NULL").
		Where("review_states.user_id = ? AND flashcards.set_id = ?", userID, setID).
		Where("review_states.is_mastered = ?", true).
		Count(&count)
	return count, result.Error
}
