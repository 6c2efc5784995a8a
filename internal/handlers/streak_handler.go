// internal/handlers/streak_handler.go
package handlers

import (
	"errors"
	"log/slog"
	"net/http"
	"time"

	"go_5_flashcard_keep/internal/middleware"
	"go_5_flashcard_keep/internal/model"
	"go_5_flashcard_keep/internal/service"
	"go_5_flashcard_keep/internal/webutil"

	"github.com/go-playground/validator/v10"
)

type StreakHandler struct {
	service service.StreakService
	logger  *slog.Logger
}

func NewStreakHandler(s service.StreakService, logger *slog.Logger) *StreakHandler {
	return &StreakHandler{service: s, logger: logger}
}

// GetStreak は GET /streaks を処理します
func (h *StreakHandler) GetStreak(w http.ResponseWriter, r *http.Request) {
	logger := middleware.GetLogger(r.Context())

	userID, err := middleware.GetUserIDFromContext(r.Context())
	if err != nil {
		webutil.HandleError(w, logger, model.NewAppError("UNAUTHORIZED", "認証情報が見つかりません。", "", model.ErrForbidden))
		return
	}

	streak, err := h.service.GetStreak(r.Context(), userID)
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}

	webutil.RespondWithJSON(w, logger, http.StatusOK, streak)
}

// RecordActivity は POST /streaks/activity を処理します。
// クイズ・試験など復習以外の学習活動からも呼ばれる内部向けフック。
// activity_date ("2006-01-02") 省略時はサーバ側の今日を使う。
func (h *StreakHandler) RecordActivity(w http.ResponseWriter, r *http.Request) {
	logger := middleware.GetLogger(r.Context())

	userID, err := middleware.GetUserIDFromContext(r.Context())
	if err != nil {
		webutil.HandleError(w, logger, model.NewAppError("UNAUTHORIZED", "認証情報が見つかりません。", "", model.ErrForbidden))
		return
	}

	var req model.RecordActivityRequest
	if err := webutil.DecodeJSONBody(r, &req); err != nil {
		webutil.HandleError(w, logger, model.NewAppError("INVALID_INPUT", "リクエストボディが正しくありません。", "", model.ErrInvalidInput))
		return
	}
	if err := webutil.Validator.Struct(req); err != nil {
		var validationErrs validator.ValidationErrors
		if errors.As(err, &validationErrs) {
			webutil.HandleError(w, logger, webutil.NewValidationErrorResponse(validationErrs))
			return
		}
		webutil.HandleError(w, logger, model.NewAppError("INVALID_INPUT", "リクエストの検証に失敗しました。", "", model.ErrInvalidInput))
		return
	}

	activityDate := time.Now()
	if req.ActivityDate != "" {
		parsed, err := time.ParseInLocation("2006-01-02", req.ActivityDate, time.UTC)
		if err != nil {
			webutil.HandleError(w, logger, model.NewAppError("INVALID_INPUT", "活動日の形式が正しくありません (YYYY-MM-DD)。", "activity_date", model.ErrInvalidInput))
			return
		}
		activityDate = parsed
	}

	streak, err := h.service.RecordActivity(r.Context(), userID, activityDate)
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}

	webutil.RespondWithJSON(w, logger, http.StatusOK, streak)
}
