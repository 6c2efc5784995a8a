// internal/service/streak_service.go
package service

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"go_5_flashcard_keep/internal/lock"
	"go_5_flashcard_keep/internal/middleware"
	"go_5_flashcard_keep/internal/model"
	"go_5_flashcard_keep/internal/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// StreakService インターフェース
type StreakService interface {
	// RecordActivity は学習活動を1件記録し、更新後のストリークを返します。
	// 同一ユーザー・同一日の2回目以降の呼び出しは no-op (冪等)。
	RecordActivity(ctx context.Context, userID uuid.UUID, activityDate time.Time) (*model.StreakResponse, error)
	// GetStreak は現在のストリークサマリを返します。活動歴がなければゼロ値。
	GetStreak(ctx context.Context, userID uuid.UUID) (*model.StreakResponse, error)
}

type streakService struct {
	db         *gorm.DB
	streakRepo repository.StreakRepository
	locks      *lock.KeyedMutex
	now        func() time.Time // テストで固定クロックを注入するためのフック
}

func NewStreakService(db *gorm.DB, streakRepo repository.StreakRepository, locks *lock.KeyedMutex) StreakService {
	return &streakService{
		db:         db,
		streakRepo: streakRepo,
		locks:      locks,
		now:        time.Now,
	}
}

// normalizeDate は時刻を暦日 (UTC 00:00) に正規化します。
// 時刻やタイムゾーンの揺れがストリーク遷移に影響しないようにする。
func normalizeDate(t time.Time) time.Time {
	u := t.UTC()
	return time.Date(u.Year(), u.Month(), u.Day(), 0, 0, 0, 0, time.UTC)
}

// daysBetween は正規化済みの2つの暦日の差を日数で返します
func daysBetween(from, to time.Time) int {
	return int(to.Sub(from).Hours() / 24)
}

func (s *streakService) RecordActivity(ctx context.Context, userID uuid.UUID, activityDate time.Time) (*model.StreakResponse, error) {
	logger := middleware.GetLogger(ctx).With("user_id", userID)

	// 「今日最初の活動」が並行して2本走った場合に両方が Δ>0 を観測して
	// 二重加算しないよう、ユーザー単位で read-compute-write を直列化する
	unlock := s.locks.Lock("streak:" + userID.String())
	defer unlock()

	today := normalizeDate(activityDate)
	var updated *model.UserStreak

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		streak, err := s.streakRepo.FindByUser(ctx, tx, userID)
		if err != nil && !errors.Is(err, model.ErrNotFound) {
			logger.Error("Error finding streak in transaction", "error", err)
			return model.NewAppError("INTERNAL_SERVER_ERROR", "ストリークの確認中にエラーが発生しました。", "", err)
		}

		if errors.Is(err, model.ErrNotFound) {
			// 初回活動: ストリーク1日目として作成
			created := &model.UserStreak{
				UserID:           userID,
				CurrentStreak:    1,
				LongestStreak:    1,
				LastActivityDate: today,
				TotalActiveDays:  1,
			}
			if createErr := s.streakRepo.Create(ctx, tx, created); createErr != nil {
				if errors.Is(createErr, model.ErrConflict) {
					// プロセス外との競合。勝った方を読み直して遷移を適用する。
					existing, ferr := s.streakRepo.FindByUser(ctx, tx, userID)
					if ferr != nil {
						return model.NewAppError("INTERNAL_SERVER_ERROR", "ストリークの再取得に失敗しました。", "", ferr)
					}
					return s.applyTransition(ctx, tx, existing, today, logger, &updated)
				}
				logger.Error("Error creating streak", "error", createErr)
				return model.NewAppError("INTERNAL_SERVER_ERROR", "ストリークの作成に失敗しました。", "", createErr)
			}
			updated = created
			return nil
		}

		return s.applyTransition(ctx, tx, streak, today, logger, &updated)
	})
	if err != nil {
		return nil, err
	}

	return s.toResponse(updated), nil
}

// applyTransition はストリーク状態機械の遷移表を適用します。
//
//	Δ=0  : no-op (同日重複は二重加算しない)
//	Δ=1  : 連続日数を伸ばす
//	Δ>1  : ストリークは途切れ、1から再開
//	Δ<0  : InvalidClock (過去日付の活動は適用しない)
func (s *streakService) applyTransition(ctx context.Context, tx *gorm.DB, streak *model.UserStreak, today time.Time, logger *slog.Logger, updated **model.UserStreak) error {
	delta := daysBetween(normalizeDate(streak.LastActivityDate), today)

	switch {
	case delta == 0:
		*updated = streak
		return nil
	case delta < 0:
		logger.Warn("Rejected activity dated before last recorded activity", "last_activity_date", streak.LastActivityDate, "activity_date", today)
		return model.NewAppError("INVALID_CLOCK", "最終活動日より前の日付の活動は記録できません。", "activity_date", model.ErrInvalidClock)
	case delta == 1:
		streak.CurrentStreak++
	default: // delta > 1
		streak.CurrentStreak = 1
	}

	streak.TotalActiveDays++
	if streak.CurrentStreak > streak.LongestStreak {
		streak.LongestStreak = streak.CurrentStreak
	}
	streak.LastActivityDate = today

	if err := s.streakRepo.Update(ctx, tx, streak); err != nil {
		logger.Error("Error updating streak", "error", err)
		return model.NewAppError("INTERNAL_SERVER_ERROR", "ストリークの更新に失敗しました。", "", err)
	}
	*updated = streak
	return nil
}

func (s *streakService) GetStreak(ctx context.Context, userID uuid.UUID) (*model.StreakResponse, error) {
	logger := middleware.GetLogger(ctx).With("user_id", userID)

	streak, err := s.streakRepo.FindByUser(ctx, s.db, userID)
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			// 活動歴なし: ゼロ値のサマリを返す
			return &model.StreakResponse{}, nil
		}
		logger.Error("Failed to find streak from repository", "error", err)
		return nil, model.NewAppError("INTERNAL_SERVER_ERROR", "ストリークの取得に失敗しました。", "", err)
	}

	return s.toResponse(streak), nil
}

func (s *streakService) toResponse(streak *model.UserStreak) *model.StreakResponse {
	today := normalizeDate(s.now())
	return &model.StreakResponse{
		CurrentStreak:    streak.CurrentStreak,
		LongestStreak:    streak.LongestStreak,
		LastActivityDate: normalizeDate(streak.LastActivityDate).Format("2006-01-02"),
		TotalActiveDays:  streak.TotalActiveDays,
		IsActiveToday:    normalizeDate(streak.LastActivityDate).Equal(today),
	}
}
