// internal/middleware/auth_test.go
package middleware_test

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"go_5_flashcard_keep/internal/config"
	"go_5_flashcard_keep/internal/middleware"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "test-secret-key"

func init() {
	slog.SetDefault(slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func signedToken(t *testing.T, subject string, secret string, expiresAt time.Time) string {
	t.Helper()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub": subject,
		"exp": expiresAt.Unix(),
	})
	signed, err := token.SignedString([]byte(secret))
	require.NoError(t, err)
	return signed
}

func TestJWTAuthMiddleware(t *testing.T) {
	cfg := &config.Config{JWT: config.JWTConfig{SecretKey: testSecret}}
	userID := uuid.New()

	// 通過時にコンテキストのユーザーIDを書き出すハンドラ
	var gotUserID uuid.UUID
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id, err := middleware.GetUserIDFromContext(r.Context())
		require.NoError(t, err)
		gotUserID = id
		w.WriteHeader(http.StatusOK)
	})
	handler := middleware.JWTAuthMiddleware(cfg)(next)

	tests := []struct {
		name       string
		authHeader string
		wantStatus int
	}{
		{
			name:       "正常系: 有効なトークン",
			authHeader: "Bearer " + signedToken(t, userID.String(), testSecret, time.Now().Add(time.Hour)),
			wantStatus: http.StatusOK,
		},
		{
			name:       "異常系: ヘッダーなし",
			authHeader: "",
			wantStatus: http.StatusForbidden,
		},
		{
			name:       "異常系: Bearer形式でない",
			authHeader: "Basic abcdef",
			wantStatus: http.StatusForbidden,
		},
		{
			name:       "異常系: 署名キーが異なる",
			authHeader: "Bearer " + signedToken(t, userID.String(), "wrong-secret", time.Now().Add(time.Hour)),
			wantStatus: http.StatusForbidden,
		},
		{
			name:       "異常系: 期限切れトークン",
			authHeader: "Bearer " + signedToken(t, userID.String(), testSecret, time.Now().Add(-time.Hour)),
			wantStatus: http.StatusForbidden,
		},
		{
			name:       "異常系: subject がUUIDでない",
			authHeader: "Bearer " + signedToken(t, "user-123", testSecret, time.Now().Add(time.Hour)),
			wantStatus: http.StatusForbidden,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gotUserID = uuid.Nil
			req := httptest.NewRequest(http.MethodGet, "/api/v1/streaks", nil)
			if tt.authHeader != "" {
				req.Header.Set("Authorization", tt.authHeader)
			}
			rr := httptest.NewRecorder()
			handler.ServeHTTP(rr, req)

			assert.Equal(t, tt.wantStatus, rr.Code)
			if tt.wantStatus == http.StatusOK {
				assert.Equal(t, userID, gotUserID)
			}
		})
	}
}

func TestGetUserIDFromContext(t *testing.T) {
	t.Run("異常系: コンテキストにユーザーIDがない", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		_, err := middleware.GetUserIDFromContext(req.Context())
		assert.Error(t, err)
	})
}
