package gateway

import (
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/nao1215/sheetgate/internal/accesstable"
	"github.com/nao1215/sheetgate/internal/oauth"
	"github.com/nao1215/sheetgate/internal/session"
	"github.com/nao1215/sheetgate/pkg/middleware"
)

// handleRoot はルートへのリクエストを処理するハンドラを返す。
// セッション状態と認可結果に応じて3つの応答のいずれかを返す。
//
//  1. 未認証: ログインリンク付きのランディングページ
//  2. 認証済みだが許可なし: メールアドレスを含む案内ページ
//  3. 認証済みで許可あり: 遷移先を埋め込んだダッシュボード
//
// アクセス表の取得失敗は「許可なし」に変換せず、インフラ障害として返す。
func (s *Server) handleRoot() gin.HandlerFunc {
	return func(c *gin.Context) {
		identity, ok := middleware.GetIdentity(c)
		if !ok {
			c.HTML(http.StatusOK, "landing", nil)
			return
		}

		grid, err := s.fetcher.FetchTable(c.Request.Context())
		if err != nil {
			log.Printf("アクセス表の取得に失敗: %v", err)
			c.HTML(http.StatusBadGateway, "unavailable", nil)
			return
		}

		destination := accesstable.Resolve(identity.Email, grid)
		if destination == "" {
			c.HTML(http.StatusOK, "unauthorized", gin.H{
				"Email": identity.Email,
			})
			return
		}

		c.HTML(http.StatusOK, "dashboard", gin.H{
			"Name":        greetingName(identity),
			"Destination": destination,
		})
	}
}

// handleLogin は認証プロバイダへのリダイレクトでログインを開始するハンドラを返す。
func (s *Server) handleLogin() gin.HandlerFunc {
	return func(c *gin.Context) {
		state, err := oauth.SignState(s.stateSecret)
		if err != nil {
			log.Printf("stateの生成に失敗: %v", err)
			c.String(http.StatusInternalServerError, "内部サーバーエラーが発生しました")
			return
		}
		c.Redirect(http.StatusTemporaryRedirect, s.provider.AuthCodeURL(state))
	}
}

// handleCallback は認証プロバイダからのコールバックを処理するハンドラを返す。
// 成功時はセッションを作成してルートへ戻す。失敗時は詳細をログにのみ残し、
// クライアントには未認証のルートへ戻す以外の情報を見せない。
func (s *Server) handleCallback() gin.HandlerFunc {
	return func(c *gin.Context) {
		if errParam := c.Query("error"); errParam != "" {
			log.Printf("認証プロバイダがエラーを返却: %s", errParam)
			c.Redirect(http.StatusFound, "/")
			return
		}

		if err := oauth.VerifyState(s.stateSecret, c.Query("state")); err != nil {
			log.Printf("stateの検証に失敗: %v", err)
			c.Redirect(http.StatusFound, "/")
			return
		}

		code := c.Query("code")
		if code == "" {
			log.Print("コールバックに認可コードがない")
			c.Redirect(http.StatusFound, "/")
			return
		}

		identity, err := s.provider.Authenticate(c.Request.Context(), code)
		if err != nil {
			log.Printf("認証プロバイダでの認証に失敗: %v", err)
			c.Redirect(http.StatusFound, "/")
			return
		}

		token := uuid.New().String()
		s.sessions.Put(session.Session{
			Token:     token,
			Identity:  identity,
			ExpiresAt: time.Now().Add(s.sessionTTL),
		})
		s.setSessionCookie(c, token, int(s.sessionTTL.Seconds()))
		c.Redirect(http.StatusFound, "/")
	}
}

// handleLogout はログアウトを処理するハンドラを返す。
// サーバー側のセッション記録を完全に消し、Cookieも失効させる。
// 古いCookieを再送してもセッションは復活しない。
func (s *Server) handleLogout() gin.HandlerFunc {
	return func(c *gin.Context) {
		if token, err := c.Cookie(middleware.SessionCookieName); err == nil && token != "" {
			s.sessions.Delete(token)
		}
		s.setSessionCookie(c, "", -1)
		c.Redirect(http.StatusFound, "/")
	}
}

// setSessionCookie はセッションCookieを設定する。
// maxAgeに負の値を渡すとCookieを失効させる。
func (s *Server) setSessionCookie(c *gin.Context, token string, maxAge int) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(middleware.SessionCookieName, token, maxAge, "/", "", false, true)
}

// greetingName は挨拶表示に使う名前を返す。
// 表示名がない場合はメールアドレスのローカル部にフォールバックする。
func greetingName(identity oauth.Identity) string {
	if identity.DisplayName != "" {
		return identity.DisplayName
	}
	local, _, _ := strings.Cut(identity.Email, "@")
	return local
}
