package oauth

import (
	"context"
	"errors"
	"fmt"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
	googleoauth2 "google.golang.org/api/oauth2/v2"
	"google.golang.org/api/option"
)

// ErrProviderFailure は認証プロバイダでの認証が失敗した場合のエラー。
// 詳細はサーバーのログにのみ残し、クライアントには未認証状態への
// 復帰以外の情報を見せない。
var ErrProviderFailure = errors.New("認証プロバイダでの認証に失敗")

// Provider は外部の認証プロバイダへの認可コードフローを抽象化する。
// ゲートウェイにはこのインターフェースを注入し、テストではフェイクに差し替える。
type Provider interface {
	// AuthCodeURL は認可コード取得のための同意画面URLを返す。
	AuthCodeURL(state string) string
	// Authenticate は認可コードをトークンに交換し、本人情報を取得する。
	// 検証済みメールアドレスを持たない場合は失敗として扱う。
	Authenticate(ctx context.Context, code string) (Identity, error)
}

// Google はGoogleをプロバイダとするProvider実装。
// 要求スコープはprofileとemailのみ。
type Google struct {
	// conf はOAuth2クライアント設定。
	conf *oauth2.Config
	// clientOpts はユーザー情報取得クライアントの追加オプション。
	// テストでエンドポイントを差し替えるために使う。
	clientOpts []option.ClientOption
}

// NewGoogle は新しいGoogleプロバイダを生成する。
func NewGoogle(clientID, clientSecret, callbackURL string) *Google {
	return &Google{
		conf: &oauth2.Config{
			ClientID:     clientID,
			ClientSecret: clientSecret,
			RedirectURL:  callbackURL,
			Scopes:       []string{"profile", "email"},
			Endpoint:     google.Endpoint,
		},
	}
}

// AuthCodeURL は同意画面のURLを返す。
func (g *Google) AuthCodeURL(state string) string {
	return g.conf.AuthCodeURL(state)
}

// Authenticate は認可コードをアクセストークンに交換し、
// ユーザー情報エンドポイントから本人情報を取得する。
func (g *Google) Authenticate(ctx context.Context, code string) (Identity, error) {
	token, err := g.conf.Exchange(ctx, code)
	if err != nil {
		return Identity{}, fmt.Errorf("%w: コード交換: %v", ErrProviderFailure, err)
	}

	opts := append([]option.ClientOption{
		option.WithTokenSource(g.conf.TokenSource(ctx, token)),
	}, g.clientOpts...)
	service, err := googleoauth2.NewService(ctx, opts...)
	if err != nil {
		return Identity{}, fmt.Errorf("%w: クライアント初期化: %v", ErrProviderFailure, err)
	}

	info, err := service.Userinfo.Get().Context(ctx).Do()
	if err != nil {
		return Identity{}, fmt.Errorf("%w: ユーザー情報取得: %v", ErrProviderFailure, err)
	}
	if info.Email == "" || info.VerifiedEmail == nil || !*info.VerifiedEmail {
		return Identity{}, fmt.Errorf("%w: 検証済みメールアドレスがない", ErrProviderFailure)
	}

	return Identity{
		Email:       info.Email,
		DisplayName: info.Name,
	}, nil
}
