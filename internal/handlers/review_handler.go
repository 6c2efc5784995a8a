// internal/handlers/review_handler.go
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

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

type ReviewHandler struct {
	service service.ReviewService
	logger  *slog.Logger
}

func NewReviewHandler(s service.ReviewService, logger *slog.Logger) *ReviewHandler {
	return &ReviewHandler{service: s, logger: logger}
}

// SubmitReview は POST /reviews/{flashcard_id} を処理します
func (h *ReviewHandler) SubmitReview(w http.ResponseWriter, r *http.Request) {
	logger := middleware.GetLogger(r.Context())

	userID, err := middleware.GetUserIDFromContext(r.Context())
	if err != nil {
		webutil.HandleError(w, logger, model.NewAppError("UNAUTHORIZED", "認証情報が見つかりません。", "", model.ErrForbidden))
		return
	}

	flashcardIDStr := chi.URLParam(r, "flashcard_id")
	flashcardID, err := uuid.Parse(flashcardIDStr)
	if err != nil {
		webutil.HandleError(w, logger, model.NewAppError("INVALID_INPUT", "フラッシュカードIDの形式が正しくありません。", "flashcard_id", model.ErrInvalidInput))
		return
	}

	var req model.SubmitReviewRequest
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

	result, err := h.service.SubmitReview(r.Context(), userID, flashcardID, *req.Quality)
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}

	webutil.RespondWithJSON(w, logger, http.StatusOK, result)
}

// GetDueCards は GET /reviews/due を処理します。
// as_of クエリパラメータ (RFC3339) 省略時は現在時刻を基準にする。
func (h *ReviewHandler) GetDueCards(w http.ResponseWriter, r *http.Request) {
	logger := middleware.GetLogger(r.Context())

	userID, err := middleware.GetUserIDFromContext(r.Context())
	if err != nil {
		webutil.HandleError(w, logger, model.NewAppError("UNAUTHORIZED", "認証情報が見つかりません。", "", model.ErrForbidden))
		return
	}

	asOf := time.Now()
	if asOfStr := r.URL.Query().Get("as_of"); asOfStr != "" {
		parsed, err := time.Parse(time.RFC3339, asOfStr)
		if err != nil {
			webutil.HandleError(w, logger, model.NewAppError("INVALID_INPUT", "基準日時の形式が正しくありません (RFC3339)。", "as_of", model.ErrInvalidInput))
			return
		}
		asOf = parsed
	}

	dueCards, err := h.service.GetDueCards(r.Context(), userID, asOf)
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}

	if dueCards == nil {
		dueCards = []*model.DueCardResponse{}
	}
	webutil.RespondWithJSON(w, logger, http.StatusOK, dueCards)
}

// GetReviewHistory は GET /reviews/history を処理します。
// since クエリパラメータ (RFC3339) 省略時は過去30日分。
func (h *ReviewHandler) GetReviewHistory(w http.ResponseWriter, r *http.Request) {
	logger := middleware.GetLogger(r.Context())

	userID, err := middleware.GetUserIDFromContext(r.Context())
	if err != nil {
		webutil.HandleError(w, logger, model.NewAppError("UNAUTHORIZED", "認証情報が見つかりません。", "", model.ErrForbidden))
		return
	}

	since := time.Now().AddDate(0, 0, -30)
	if sinceStr := r.URL.Query().Get("since"); sinceStr != "" {
		parsed, err := time.Parse(time.RFC3339, sinceStr)
		if err != nil {
			webutil.HandleError(w, logger, model.NewAppError("INVALID_INPUT", "開始日時の形式が正しくありません (RFC3339)。", "since", model.ErrInvalidInput))
			return
		}
		since = parsed
	}

	history, err := h.service.GetReviewHistory(r.Context(), userID, since)
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}

	if history == nil {
		history = []*model.ReviewedCardResponse{}
	}
	webutil.RespondWithJSON(w, logger, http.StatusOK, history)
}
