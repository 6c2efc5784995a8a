// internal/model/streak.go
package model

import (
	"time"

	"github.com/google/uuid"
)

// UserStreak はユーザーごとの連続学習日数レコードです。
// 1日1回だけ更新される (同日2回目以降の活動は no-op)。
// 不変条件: longest_streak >= current_streak。
type UserStreak struct {
	UserID           uuid.UUID `gorm:"type:uuid;primaryKey"`
	CurrentStreak    int       `gorm:"not null;default:0"`
	LongestStreak    int       `gorm:"not null;default:0"`
	LastActivityDate time.Time `gorm:"not null"` // 暦日 (UTC 00:00 に正規化して保存)
	TotalActiveDays  int       `gorm:"not null;default:0"`
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

func (UserStreak) TableName() string {
	return "user_streaks"
}

// 活動記録リクエストのDTO。日付省略時はサーバ側の今日を使う。
type RecordActivityRequest struct {
	ActivityDate string `json:"activity_date" validate:"omitempty,datetime=2006-01-02"`
}

// StreakResponse はストリークサマリのレスポンスDTO
type StreakResponse struct {
	CurrentStreak    int    `json:"current_streak"`
	LongestStreak    int    `json:"longest_streak"`
	LastActivityDate string `json:"last_activity_date"` // "2006-01-02" 形式、活動なしなら空文字
	TotalActiveDays  int    `json:"total_active_days"`
	IsActiveToday    bool   `json:"is_active_today"`
}
