package gateway

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/nao1215/sheetgate/internal/accesstable"
	"github.com/nao1215/sheetgate/internal/config"
	"github.com/nao1215/sheetgate/internal/oauth"
	"github.com/nao1215/sheetgate/internal/session"
	"github.com/nao1215/sheetgate/pkg/middleware"
)

// Server は認証ポータルのHTTPサーバー。
type Server struct {
	// router はGinのHTTPルーター。
	router *gin.Engine
	// port はサーバーのリッスンポート。
	port string
	// sessions はセッションストア。
	sessions session.Store
	// provider は外部の認証プロバイダ。
	provider oauth.Provider
	// fetcher はアクセス表の取得クライアント。
	fetcher accesstable.Fetcher
	// stateSecret はOAuth2のstateパラメータ署名用の秘密鍵。
	stateSecret string
	// sessionTTL はセッションの有効期間。失効は固定で、活動による延長はしない。
	sessionTTL time.Duration
}

// NewServer は設定から本番用の依存を組み立てて新しいサーバーを生成する。
func NewServer(ctx context.Context, cfg *config.Config) (*Server, error) {
	fetcher, err := accesstable.NewSheetsFetcher(ctx, cfg.SheetID, cfg.GoogleAPIKey, cfg.FetchTimeout)
	if err != nil {
		return nil, fmt.Errorf("アクセス表クライアントの初期化に失敗: %w", err)
	}

	router := gin.New()
	router.Use(middleware.Recovery())
	router.Use(gin.Logger())

	s := &Server{
		router:      router,
		port:        cfg.Port,
		sessions:    session.NewMemoryStore(),
		provider:    oauth.NewGoogle(cfg.GoogleClientID, cfg.GoogleClientSecret, cfg.GoogleCallbackURL),
		fetcher:     fetcher,
		stateSecret: cfg.SessionSecret,
		sessionTTL:  cfg.SessionTTL,
	}
	s.setupRoutes()

	return s, nil
}

// Run はHTTPサーバーを起動する。
func (s *Server) Run() error {
	return s.router.Run(fmt.Sprintf(":%s", s.port))
}

// setupRoutes はルーティングとページテンプレートを設定する。
func (s *Server) setupRoutes() {
	s.router.SetHTMLTemplate(pageTemplates)
	s.router.Use(middleware.Session(s.sessions))

	// ルートがセッション状態と認可結果に応じた3つの応答の分岐点
	s.router.GET("/", s.handleRoot())

	auth := s.router.Group("/auth")
	{
		auth.GET("/google", s.handleLogin())
		auth.GET("/google/callback", s.handleCallback())
	}

	s.router.GET("/logout", s.handleLogout())

	// ヘルスチェック
	s.router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "service": "sheetgate"})
	})
}
