// internal/service/review_service.go
package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go_5_flashcard_keep/internal/config"
	"go_5_flashcard_keep/internal/lock"
	"go_5_flashcard_keep/internal/middleware"
	"go_5_flashcard_keep/internal/model"
	"go_5_flashcard_keep/internal/repository"
	"go_5_flashcard_keep/internal/scheduler"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ReviewService インターフェース
type ReviewService interface {
	// SubmitReview は1回の復習結果を適用し、次回スケジュールを返します。
	SubmitReview(ctx context.Context, userID, flashcardID uuid.UUID, quality int) (*model.ReviewResultResponse, error)
	// GetDueCards は asOf 時点で復習対象のカードを返します (未復習が先頭)。
	GetDueCards(ctx context.Context, userID uuid.UUID, asOf time.Time) ([]*model.DueCardResponse, error)
	// GetReviewHistory は since 以降に復習されたカードを返します。
	GetReviewHistory(ctx context.Context, userID uuid.UUID, since time.Time) ([]*model.ReviewedCardResponse, error)
}

type reviewService struct {
	db        *gorm.DB
	stateRepo repository.ReviewStateRepository
	cardRepo  repository.FlashcardRepository
	streakSvc StreakService
	sched     *scheduler.Scheduler
	locks     *lock.KeyedMutex
	cfg       *config.Config
	now       func() time.Time // テストで固定クロックを注入するためのフック
}

func NewReviewService(db *gorm.DB, stateRepo repository.ReviewStateRepository, cardRepo repository.FlashcardRepository, streakSvc StreakService, sched *scheduler.Scheduler, locks *lock.KeyedMutex, cfg *config.Config) ReviewService {
	return &reviewService{
		db:        db,
		stateRepo: stateRepo,
		cardRepo:  cardRepo,
		streakSvc: streakSvc,
		sched:     sched,
		locks:     locks,
		cfg:       cfg,
		now:       time.Now,
	}
}

// reviewLockKey は (user, flashcard) 単位の排他キーを作ります
func reviewLockKey(userID, flashcardID uuid.UUID) string {
	return fmt.Sprintf("review:%s:%s", userID, flashcardID)
}

func (s *reviewService) SubmitReview(ctx context.Context, userID, flashcardID uuid.UUID, quality int) (*model.ReviewResultResponse, error) {
	logger := middleware.GetLogger(ctx).With("user_id", userID, "flashcard_id", flashcardID)

	// 状態を一切変更する前に品質値を検証する
	if quality < 0 || quality > scheduler.MaxQuality {
		return nil, model.NewAppError("INVALID_INPUT", "品質は0〜5の整数で指定してください。", "quality", model.ErrInvalidInput)
	}

	// カードの実在確認。存在しない参照はそのまま NotFound として返す。
	if _, err := s.cardRepo.FindByID(ctx, s.db, flashcardID); err != nil {
		if errors.Is(err, model.ErrNotFound) {
			return nil, model.NewAppError("NOT_FOUND", "フラッシュカードが見つかりません。", "", model.ErrNotFound)
		}
		logger.Error("Error finding flashcard", "error", err)
		return nil, model.NewAppError("INTERNAL_SERVER_ERROR", "フラッシュカードの確認中にエラーが発生しました。", "", err)
	}

	// 同一 (user, flashcard) の read-compute-write を直列化する。
	// ネットワークリトライによる二重送信が最後の書き込み勝ちで収束する。
	unlock := s.locks.Lock(reviewLockKey(userID, flashcardID))
	defer unlock()

	now := s.now()
	var resp *model.ReviewResultResponse

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		state, err := s.stateRepo.GetOrCreate(ctx, tx, userID, flashcardID)
		if err != nil {
			logger.Error("Error getting or creating review state", "error", err)
			return model.NewAppError("INTERNAL_SERVER_ERROR", "復習状態の取得に失敗しました。", "", err)
		}

		newState, result, err := s.sched.Schedule(*state, quality, now)
		if err != nil {
			// 品質値は事前検証済みのため通常ここには来ない
			return model.NewAppError("INVALID_INPUT", "品質は0〜5の整数で指定してください。", "quality", err)
		}

		if err := s.stateRepo.Save(ctx, tx, &newState); err != nil {
			logger.Error("Error saving review state", "error", err)
			return model.NewAppError("INTERNAL_SERVER_ERROR", "復習状態の保存に失敗しました。", "", err)
		}

		resp = &model.ReviewResultResponse{
			FlashcardID:    result.FlashcardID,
			NextReviewDate: result.NextReviewDate,
			IntervalDays:   result.IntervalDays,
			IsMastered:     result.IsMastered,
			Message:        result.Message,
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	// 復習は「その日の学習活動」としてストリークにも記録する。
	// 同日2回目以降は no-op なのでリトライしても二重加算されない。
	// ストリーク更新の失敗で復習自体を失敗扱いにはしない。
	if _, err := s.streakSvc.RecordActivity(ctx, userID, now); err != nil {
		logger.Warn("Failed to record streak activity after review", "error", err)
	}

	logger.Info("Review submitted", "quality", quality, "interval_days", resp.IntervalDays, "is_mastered", resp.IsMastered)
	return resp, nil
}

func (s *reviewService) GetDueCards(ctx context.Context, userID uuid.UUID, asOf time.Time) ([]*model.DueCardResponse, error) {
	logger := middleware.GetLogger(ctx).With("user_id", userID)

	states, err := s.stateRepo.FindDueByUser(ctx, s.db, userID, asOf, s.cfg.App.DueLimit)
	if err != nil {
		logger.Error("Failed to find due cards from repository", "error", err)
		return nil, model.NewAppError("INTERNAL_SERVER_ERROR", "復習対象カードの取得に失敗しました。", "", err)
	}

	responses := make([]*model.DueCardResponse, 0, len(states))
	for _, st := range states {
		responses = append(responses, &model.DueCardResponse{
			FlashcardID:     st.FlashcardID,
			NextReviewDate:  st.NextReviewDate,
			IntervalDays:    st.IntervalDays,
			RepetitionCount: st.RepetitionCount,
		})
	}

	logger.Info("Successfully retrieved due cards", "count", len(responses))
	return responses, nil
}

func (s *reviewService) GetReviewHistory(ctx context.Context, userID uuid.UUID, since time.Time) ([]*model.ReviewedCardResponse, error) {
	logger := middleware.GetLogger(ctx).With("user_id", userID)

	states, err := s.stateRepo.FindReviewedSince(ctx, s.db, userID, since)
	if err != nil {
		logger.Error("Failed to find reviewed cards from repository", "error", err)
		return nil, model.NewAppError("INTERNAL_SERVER_ERROR", "復習履歴の取得に失敗しました。", "", err)
	}

	responses := make([]*model.ReviewedCardResponse, 0, len(states))
	for _, st := range states {
		if st.LastReviewedAt == nil {
			// FindReviewedSince の条件上あり得ないが、念のためスキップ
			logger.Warn("Found state with nil LastReviewedAt in history, skipping", "state_id", st.StateID)
			continue
		}
		responses = append(responses, &model.ReviewedCardResponse{
			FlashcardID:     st.FlashcardID,
			LastReviewedAt:  *st.LastReviewedAt,
			RepetitionCount: st.RepetitionCount,
			IsMastered:      st.IsMastered,
		})
	}

	return responses, nil
}
