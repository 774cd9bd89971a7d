package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
)

// Config はsheetgate全体の設定。環境変数から読み込む。
// 認証プロバイダやアクセス表の設定が欠けたまま起動しても
// 最初のリクエストで失敗するだけなので、起動時に検証して即座に落とす。
type Config struct {
	// Port はHTTPサーバーのリッスンポート。
	Port string `env:"PORT,notEmpty"`
	// GoogleClientID はGoogle OAuth2クライアントID。
	GoogleClientID string `env:"GOOGLE_CLIENT_ID,notEmpty"`
	// GoogleClientSecret はGoogle OAuth2クライアントシークレット。
	GoogleClientSecret string `env:"GOOGLE_CLIENT_SECRET,notEmpty"`
	// GoogleCallbackURL はGoogle OAuth2認証後のコールバックURL。
	GoogleCallbackURL string `env:"GOOGLE_CALLBACK_URL,notEmpty"`
	// SheetID はアクセス表が格納されたスプレッドシートのID。
	SheetID string `env:"SHEET_ID,notEmpty"`
	// GoogleAPIKey はスプレッドシート読み取り用の静的APIキー。
	// エンドユーザーの認証情報とは独立した、読み取り専用の資格情報。
	GoogleAPIKey string `env:"GOOGLE_API_KEY,notEmpty"`
	// SessionSecret はOAuth2のstateパラメータ署名用の秘密鍵。
	SessionSecret string `env:"SESSION_SECRET,notEmpty"`
	// SessionTTL はセッションの有効期間。期限は固定で、活動による延長はしない。
	SessionTTL time.Duration `env:"SESSION_TTL" envDefault:"1h"`
	// FetchTimeout はアクセス表取得のHTTPタイムアウト。
	FetchTimeout time.Duration `env:"FETCH_TIMEOUT" envDefault:"10s"`
}

// Load は環境変数から設定を読み込む。
// 必須項目が欠けている場合はエラーを返す。
func Load() (*Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return nil, fmt.Errorf("環境変数の読み込みに失敗: %w", err)
	}
	return &cfg, nil
}
