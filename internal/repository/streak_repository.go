// internal/repository/streak_repository.go
package repository

import (
	"context"
	"errors"

	"go_5_flashcard_keep/internal/model"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

// StreakRepository はUserStreakの永続化を担います。
// 遷移判定のロジックは持たない (それは StreakService の責務)。
type StreakRepository interface {
	FindByUser(ctx context.Context, db *gorm.DB, userID uuid.UUID) (*model.UserStreak, error)
	Create(ctx context.Context, tx *gorm.DB, streak *model.UserStreak) error
	Update(ctx context.Context, tx *gorm.DB, streak *model.UserStreak) error
}

type gormStreakRepository struct{}

func NewGormStreakRepository() StreakRepository {
	return &gormStreakRepository{}
}

func (r *gormStreakRepository) FindByUser(ctx context.Context, db *gorm.DB, userID uuid.UUID) (*model.UserStreak, error) {
	var streak model.UserStreak
	result := db.WithContext(ctx).Where("user_id = ?", userID).First(&streak)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, model.ErrNotFound
		}
		return nil, result.Error
	}
	return &streak, nil
}

func (r *gormStreakRepository) Create(ctx context.Context, tx *gorm.DB, streak *model.UserStreak) error {
	if err := tx.WithContext(ctx).Create(streak).Error; err != nil {
		// 初回活動が同時に2本走った場合は主キー制約で片方が弾かれる
		var pgErr *pgconn.PgError
		if (errors.As(err, &pgErr) && pgErr.Code == "23505") || errors.Is(err, gorm.ErrDuplicatedKey) {
			return model.ErrConflict
		}
		return err
	}
	return nil
}

func (r *gormStreakRepository) Update(ctx context.Context, tx *gorm.DB, streak *model.UserStreak) error {
	result := tx.WithContext(ctx).Save(streak)
	return result.Error
}
