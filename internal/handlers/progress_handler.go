// internal/handlers/progress_handler.go
package handlers

import (
	"log/slog"
	"net/http"

	"go_5_flashcard_keep/internal/middleware"
	"go_5_flashcard_keep/internal/model"
	"go_5_flashcard_keep/internal/service"
	"go_5_flashcard_keep/internal/webutil"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

type ProgressHandler struct {
	service service.ProgressService
	logger  *slog.Logger
}

func NewProgressHandler(s service.ProgressService, logger *slog.Logger) *ProgressHandler {
	return &ProgressHandler{service: s, logger: logger}
}

// GetSetProgress は GET /sets/{set_id}/progress を処理します
func (h *ProgressHandler) GetSetProgress(w http.ResponseWriter, r *http.Request) {
	logger := middleware.GetLogger(r.Context())

	userID, err := middleware.GetUserIDFromContext(r.Context())
	if err != nil {
		webutil.HandleError(w, logger, model.NewAppError("UNAUTHORIZED", "認証情報が見つかりません。", "", model.ErrForbidden))
		return
	}

	setIDStr := chi.URLParam(r, "set_id")
	setID, err := uuid.Parse(setIDStr)
	if err != nil {
		webutil.HandleError(w, logger, model.NewAppError("INVALID_INPUT", "セットIDの形式が正しくありません。", "set_id", model.ErrInvalidInput))
		return
	}

	snapshot, err := h.service.GetSetProgress(r.Context(), userID, setID)
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}

	webutil.RespondWithJSON(w, logger, http.StatusOK, snapshot)
}
