// internal/model/progress.go
package model

import "github.com/google/uuid"

// SetProgressSnapshot はセット単位の進捗集計結果です。永続化しない派生値。
type SetProgressSnapshot struct {
	SetID              uuid.UUID `json:"set_id"`
	TotalCards         int       `json:"total_cards"`
	StudiedCards       int       `json:"studied_cards"`  // last_reviewed_at が非NULLのカード数
	MasteredCards      int       `json:"mastered_cards"` // is_mastered = true のカード数
	ProgressPercentage float64   `json:"progress_percentage"`
	IsCompleted        bool      `json:"is_completed"`
}
