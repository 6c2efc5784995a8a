// internal/service/progress_service.go
package service

import (
	"context"

	"go_5_flashcard_keep/internal/middleware"
	"go_5_flashcard_keep/internal/model"
	"go_5_flashcard_keep/internal/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ProgressService インターフェース
type ProgressService interface {
	// GetSetProgress はセット単位の進捗スナップショットを計算します。
	// 読み取り専用で副作用なし。集計は都度再計算し、非正規化カウンタは持たない。
	GetSetProgress(ctx context.Context, userID, setID uuid.UUID) (*model.SetProgressSnapshot, error)
}

type progressService struct {
	db        *gorm.DB
	stateRepo repository.ReviewStateRepository
	cardRepo  repository.FlashcardRepository
}

func NewProgressService(db *gorm.DB, stateRepo repository.ReviewStateRepository, cardRepo repository.FlashcardRepository) ProgressService {
	return &progressService{
		db:        db,
		stateRepo: stateRepo,
		cardRepo:  cardRepo,
	}
}

func (s *progressService) GetSetProgress(ctx context.Context, userID, setID uuid.UUID) (*model.SetProgressSnapshot, error) {
	logger := middleware.GetLogger(ctx).With("user_id", userID, "set_id", setID)

	total, err := s.cardRepo.CountBySet(ctx, s.db, setID)
	if err != nil {
		logger.Error("Failed to count cards in set", "error", err)
		return nil, model.NewAppError("INTERNAL_SERVER_ERROR", "セット内のカード数の取得に失敗しました。", "", err)
	}

	snapshot := &model.SetProgressSnapshot{SetID: setID, TotalCards: int(total)}
	if total == 0 {
		// カードのないセット: 進捗0%、完了扱いにはしない
		return snapshot, nil
	}

	studied, err := s.stateRepo.CountStudiedBySet(ctx, s.db, userID, setID)
	if err != nil {
		logger.Error("Failed to count studied cards", "error", err)
		return nil, model.NewAppError("INTERNAL_SERVER_ERROR", "学習済みカード数の取得に失敗しました。", "", err)
	}
	mastered, err := s.stateRepo.CountMasteredBySet(ctx, s.db, userID, setID)
	if err != nil {
		logger.Error("Failed to count mastered cards", "error", err)
		return nil, model.NewAppError("INTERNAL_SERVER_ERROR", "マスター済みカード数の取得に失敗しました。", "", err)
	}

	snapshot.StudiedCards = int(studied)
	snapshot.MasteredCards = int(mastered)
	snapshot.ProgressPercentage = float64(snapshot.StudiedCards) / float64(snapshot.TotalCards) * 100
	snapshot.IsCompleted = snapshot.StudiedCards == snapshot.TotalCards

	logger.Info("Set progress computed", "total", snapshot.TotalCards, "studied", snapshot.StudiedCards)
	return snapshot, nil
}
