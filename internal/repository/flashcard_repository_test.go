// internal/repository/flashcard_repository_test.go
package repository

import (
	"context"
	"testing"

	"go_5_flashcard_keep/internal/model"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGormFlashcardRepository_FindByID(t *testing.T) {
	ctx := context.Background()
	db := setupTestDB(t)
	repo := NewGormFlashcardRepository()

	card := createTestFlashcard(t, db, uuid.New())

	t.Run("正常系: 既存カードを取得", func(t *testing.T) {
		found, err := repo.FindByID(ctx, db, card.FlashcardID)
		require.NoError(t, err)
		assert.Equal(t, card.FlashcardID, found.FlashcardID)
		assert.Equal(t, card.SetID, found.SetID)
	})

	t.Run("異常系: 存在しないIDは ErrNotFound", func(t *testing.T) {
		_, err := repo.FindByID(ctx, db, uuid.New())
		assert.ErrorIs(t, err, model.ErrNotFound)
	})

	t.Run("異常系: 論理削除済みカードは ErrNotFound", func(t *testing.T) {
		deleted := createTestFlashcard(t, db, uuid.New())
		require.NoError(t, db.Delete(deleted).Error)

		_, err := repo.FindByID(ctx, db, deleted.FlashcardID)
		assert.ErrorIs(t, err, model.ErrNotFound)
	})
}

func TestGormFlashcardRepository_CountBySet(t *testing.T) {
	ctx := context.Background()
	db := setupTestDB(t)
	repo := NewGormFlashcardRepository()

	setID := uuid.New()
	createTestFlashcard(t, db, setID)
	createTestFlashcard(t, db, setID)
	createTestFlashcard(t, db, uuid.New()) // 別セット

	count, err := repo.CountBySet(ctx, db, setID)
	require.NoError(t, err)
	assert.EqualValues(t, 2, count)

	count, err = repo.CountBySet(ctx, db, uuid.New())
	require.NoError(t, err)
	assert.EqualValues(t, 0, count)
}
