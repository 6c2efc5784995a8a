// internal/model/user.go
package model

// ユーザー管理 (登録・認証) はプラットフォーム側の管轄。
// 本サービスはJWTから解決したユーザーIDをコンテキスト経由で受け取るだけ。

type ContextKey string

const (
	UserIDKey ContextKey = "userID"
)
