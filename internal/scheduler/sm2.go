// internal/scheduler/sm2.go
package scheduler

import (
	"fmt"
	"math"
	"time"

	"github.com/google/uuid"

	"go_5_flashcard_keep/internal/model"
)

// 回答品質 (SM-2 の 0〜5 の自己評価)
const (
	QualityBlackout          = 0 // 完全に忘れていた
	QualityIncorrect         = 1 // 不正解。正解を見て思い出した
	QualityIncorrectFamiliar = 2 // 不正解。正解に見覚えはあった
	QualityCorrectDifficult  = 3 // 正解。かなり苦労した
	QualityCorrectHesitation = 4 // 正解。少し迷った
	QualityPerfect           = 5 // 即答
)

const (
	MaxQuality    = 5
	MinEaseFactor = 1.3 // EFの下限。これ未満には下がらない
	PassThreshold = 3   // これ以上の品質を「成功」とみなす
)

// Scheduler はSM-2系アルゴリズムで次回復習日を決定する純粋な計算機です。
// I/Oを持たず、現在時刻は引数で受け取るため同一入力に対して常に同一出力を返します。
// マスター判定の閾値はアルゴリズム定数ではなく設定値 (ポリシー) として注入されます。
type Scheduler struct {
	MasteryRepetitions     int
	MasteryMinIntervalDays int
}

func New(masteryRepetitions, masteryMinIntervalDays int) *Scheduler {
	return &Scheduler{
		MasteryRepetitions:     masteryRepetitions,
		MasteryMinIntervalDays: masteryMinIntervalDays,
	}
}

// Result は1回の復習のスケジューリング結果です
type Result struct {
	FlashcardID    uuid.UUID
	NextReviewDate time.Time
	IntervalDays   int
	IsMastered     bool
	Message        string
}

// Schedule は現在の状態と回答品質から新しい状態を計算します。
// state は変更せず、更新後のコピーを返します。
// quality が [0,5] の範囲外なら model.ErrInvalidInput を返し、状態は一切変化しません。
func (s *Scheduler) Schedule(state model.ReviewState, quality int, now time.Time) (model.ReviewState, Result, error) {
	if quality < 0 || quality > MaxQuality {
		return state, Result{}, model.ErrInvalidInput
	}

	// EF' = EF + (0.1 - (5-q) * (0.08 + (5-q)*0.02))
	// 失敗時もEFは更新される (下限1.3で止まるだけでリセットはされない)
	q := float64(quality)
	newEase := state.EaseFactor + (0.1 - (5-q)*(0.08+(5-q)*0.02))
	if newEase < MinEaseFactor {
		newEase = MinEaseFactor
	}

	next := state
	next.EaseFactor = newEase

	if quality < PassThreshold {
		// 失敗: 連続正解回数をリセットし翌日に再復習
		next.RepetitionCount = 0
		next.IntervalDays = 1
	} else {
		next.RepetitionCount = state.RepetitionCount + 1
		switch {
		case next.RepetitionCount == 1:
			next.IntervalDays = 1
		case next.RepetitionCount == 2:
			next.IntervalDays = 6
		default:
			next.IntervalDays = int(math.Round(float64(state.IntervalDays) * newEase))
			if next.IntervalDays < 1 {
				next.IntervalDays = 1
			}
		}
	}

	reviewedAt := now
	nextReview := now.AddDate(0, 0, next.IntervalDays)
	next.LastReviewedAt = &reviewedAt
	next.NextReviewDate = &nextReview
	next.IsMastered = next.RepetitionCount >= s.MasteryRepetitions &&
		next.IntervalDays >= s.MasteryMinIntervalDays

	result := Result{
		FlashcardID:    next.FlashcardID,
		NextReviewDate: nextReview,
		IntervalDays:   next.IntervalDays,
		IsMastered:     next.IsMastered,
		Message:        buildMessage(quality, next),
	}
	return next, result, nil
}

// buildMessage は結果メッセージを組み立てます。
// 失敗・進捗・マスター到達の3種類。文言は表示用でありAPI契約には含まれない。
func buildMessage(quality int, next model.ReviewState) string {
	switch {
	case quality < PassThreshold:
		return "不正解。明日もう一度復習しましょう。"
	case next.IsMastered:
		return "マスターしました！このカードの復習頻度は大きく下がります。"
	default:
		return fmt.Sprintf("正解！次回の復習は%d日後です。", next.IntervalDays)
	}
}
