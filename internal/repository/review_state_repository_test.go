// internal/repository/review_state_repository_test.go
package repository

import (
	"context"
	"testing"
	"time"

	"go_5_flashcard_keep/internal/model"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGormReviewStateRepository_GetOrCreate(t *testing.T) {
	ctx := context.Background()
	db := setupTestDB(t)
	repo := NewGormReviewStateRepository()

	userID := uuid.New()
	card := createTestFlashcard(t, db, uuid.New())

	t.Run("正常系: 初回アクセスで未復習状態のレコードを作成", func(t *testing.T) {
		state, err := repo.GetOrCreate(ctx, db, userID, card.FlashcardID)
		require.NoError(t, err)
		require.NotNil(t, state)

		assert.Equal(t, userID, state.UserID)
		assert.Equal(t, card.FlashcardID, state.FlashcardID)
		assert.InDelta(t, 2.5, state.EaseFactor, 1e-9)
		assert.Equal(t, 0, state.IntervalDays)
		assert.Equal(t, 0, state.RepetitionCount)
		assert.Nil(t, state.LastReviewedAt)
		assert.Nil(t, state.NextReviewDate) // NULL = 即時復習対象
		assert.False(t, state.IsMastered)
	})

	t.Run("正常系: 2回目以降は既存レコードを返す", func(t *testing.T) {
		first, err := repo.GetOrCreate(ctx, db, userID, card.FlashcardID)
		require.NoError(t, err)
		second, err := repo.GetOrCreate(ctx, db, userID, card.FlashcardID)
		require.NoError(t, err)

		assert.Equal(t, first.StateID, second.StateID)

		var count int64
		require.NoError(t, db.Model(&model.ReviewState{}).
			Where("user_id = ? AND flashcard_id = ?", userID, card.FlashcardID).
			Count(&count).Error)
		assert.EqualValues(t, 1, count)
	})

	t.Run("正常系: 別ユーザーは同じカードでも独立した状態を持つ", func(t *testing.T) {
		otherUser := uuid.New()
		mine, err := repo.GetOrCreate(ctx, db, userID, card.FlashcardID)
		require.NoError(t, err)
		theirs, err := repo.GetOrCreate(ctx, db, otherUser, card.FlashcardID)
		require.NoError(t, err)

		assert.NotEqual(t, mine.StateID, theirs.StateID)
	})
}

func TestGormReviewStateRepository_Save(t *testing.T) {
	ctx := context.Background()
	db := setupTestDB(t)
	repo := NewGormReviewStateRepository()

	userID := uuid.New()
	card := createTestFlashcard(t, db, uuid.New())

	state, err := repo.GetOrCreate(ctx, db, userID, card.FlashcardID)
	require.NoError(t, err)

	reviewedAt := time.Date(2025, 6, 1, 9, 0, 0, 0, time.UTC)
	nextReview := reviewedAt.AddDate(0, 0, 6)
	state.EaseFactor = 2.6
	state.IntervalDays = 6
	state.RepetitionCount = 2
	state.LastReviewedAt = &reviewedAt
	state.NextReviewDate = &nextReview

	require.NoError(t, repo.Save(ctx, db, state))

	reloaded, err := repo.GetOrCreate(ctx, db, userID, card.FlashcardID)
	require.NoError(t, err)
	assert.InDelta(t, 2.6, reloaded.EaseFactor, 1e-9)
	assert.Equal(t, 6, reloaded.IntervalDays)
	assert.Equal(t, 2, reloaded.RepetitionCount)
	require.NotNil(t, reloaded.NextReviewDate)
	assert.WithinDuration(t, nextReview, *reloaded.NextReviewDate, time.Second)
}

func TestGormReviewStateRepository_FindDueByUser(t *testing.T) {
	ctx := context.Background()
	db := setupTestDB(t)
	repo := NewGormReviewStateRepository()

	userID := uuid.New()
	setID := uuid.New()
	asOf := time.Date(2025, 6, 10, 0, 0, 0, 0, time.UTC)

	// 期日の異なる状態を用意するヘルパー
	saveState := func(t *testing.T, card *model.Flashcard, nextReview *time.Time) *model.ReviewState {
		state, err := repo.GetOrCreate(ctx, db, userID, card.FlashcardID)
		require.NoError(t, err)
		if nextReview != nil {
			reviewedAt := nextReview.AddDate(0, 0, -1)
			state.LastReviewedAt = &reviewedAt
			state.NextReviewDate = nextReview
			state.RepetitionCount = 1
			state.IntervalDays = 1
			require.NoError(t, repo.Save(ctx, db, state))
		}
		return state
	}

	overdueDate := asOf.AddDate(0, 0, -3)
	dueTodayDate := asOf
	futureDate := asOf.AddDate(0, 0, 5)

	cardNever := createTestFlashcard(t, db, setID)   // 未復習 (NULL)
	cardOverdue := createTestFlashcard(t, db, setID) // 3日超過
	cardToday := createTestFlashcard(t, db, setID)   // ちょうど期日
	cardFuture := createTestFlashcard(t, db, setID)  // まだ先
	cardDeleted := createTestFlashcard(t, db, setID) // 論理削除済みカード

	saveState(t, cardNever, nil)
	saveState(t, cardOverdue, &overdueDate)
	saveState(t, cardToday, &dueTodayDate)
	saveState(t, cardFuture, &futureDate)
	saveState(t, cardDeleted, &overdueDate)
	require.NoError(t, db.Delete(cardDeleted).Error)

	t.Run("正常系: 未復習が先頭、期日昇順、期限未到来と削除済みは含まない", func(t *testing.T) {
		states, err := repo.FindDueByUser(ctx, db, userID, asOf, 50)
		require.NoError(t, err)
		require.Len(t, states, 3)

		assert.Equal(t, cardNever.FlashcardID, states[0].FlashcardID) // NULLS FIRST
		assert.Equal(t, cardOverdue.FlashcardID, states[1].FlashcardID)
		assert.Equal(t, cardToday.FlashcardID, states[2].FlashcardID)
	})

	t.Run("正常系: limit で件数を制限", func(t *testing.T) {
		states, err := repo.FindDueByUser(ctx, db, userID, asOf, 2)
		require.NoError(t, err)
		require.Len(t, states, 2)
		assert.Equal(t, cardNever.FlashcardID, states[0].FlashcardID)
	})

	t.Run("正常系: 他ユーザーの状態は含まない", func(t *testing.T) {
		states, err := repo.FindDueByUser(ctx, db, uuid.New(), asOf, 50)
		require.NoError(t, err)
		assert.Empty(t, states)
	})
}

func TestGormReviewStateRepository_FindReviewedSince(t *testing.T) {
	ctx := context.Background()
	db := setupTestDB(t)
	repo := NewGormReviewStateRepository()

	userID := uuid.New()
	setID := uuid.New()
	since := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)

	saveReviewed := func(t *testing.T, reviewedAt time.Time) *model.Flashcard {
		card := createTestFlashcard(t, db, setID)
		state, err := repo.GetOrCreate(ctx, db, userID, card.FlashcardID)
		require.NoError(t, err)
		next := reviewedAt.AddDate(0, 0, 1)
		state.LastReviewedAt = &reviewedAt
		state.NextReviewDate = &next
		require.NoError(t, repo.Save(ctx, db, state))
		return card
	}

	cardRecent := saveReviewed(t, since.AddDate(0, 0, 3))
	cardBoundary := saveReviewed(t, since) // ちょうど since (境界は含む)
	saveReviewed(t, since.AddDate(0, 0, -2))
	createTestFlashcard(t, db, setID) // 状態なしのカードはそもそも対象外

	states, err := repo.FindReviewedSince(ctx, db, userID, since)
	require.NoError(t, err)
	require.Len(t, states, 2)

	// last_reviewed_at 降順
	assert.Equal(t, cardRecent.FlashcardID, states[0].FlashcardID)
	assert.Equal(t, cardBoundary.FlashcardID, states[1].FlashcardID)
}

func TestGormReviewStateRepository_CountsBySet(t *testing.T) {
	ctx := context.Background()
	db := setupTestDB(t)
	repo := NewGormReviewStateRepository()

	userID := uuid.New()
	setID := uuid.New()
	otherSetID := uuid.New()
	reviewedAt := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)

	addState := func(t *testing.T, setID uuid.UUID, studied, mastered bool) {
		card := createTestFlashcard(t, db, setID)
		state, err := repo.GetOrCreate(ctx, db, userID, card.FlashcardID)
		require.NoError(t, err)
		if studied {
			state.LastReviewedAt = &reviewedAt
			state.IsMastered = mastered
			require.NoError(t, repo.Save(ctx, db, state))
		}
	}

	addState(t, setID, true, true)
	addState(t, setID, true, false)
	addState(t, setID, false, false)     // 未学習
	addState(t, otherSetID, true, true)  // 別セット

	studied, err := repo.CountStudiedBySet(ctx, db, userID, setID)
	require.NoError(t, err)
	assert.EqualValues(t, 2, studied)

	mastered, err := repo.CountMasteredBySet(ctx, db, userID, setID)
	require.NoError(t, err)
	assert.EqualValues(t, 1, mastered)

	// 状態レコードを持たない他ユーザーは0
	studied, err = repo.CountStudiedBySet(ctx, db, uuid.New(), setID)
	require.NoError(t, err)
	assert.EqualValues(t, 0, studied)
}
