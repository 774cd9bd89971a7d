package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/nao1215/sheetgate/internal/oauth"
	"github.com/nao1215/sheetgate/internal/session"
)

func init() {
	gin.SetMode(gin.TestMode)
}

// newSessionRouter はSessionミドルウェアを適用したテスト用ルーターを生成する。
// ハンドラはコンテキスト上の本人情報の有無とメールアドレスを返す。
func newSessionRouter(store session.Store) *gin.Engine {
	router := gin.New()
	router.Use(Session(store))
	router.GET("/whoami", func(c *gin.Context) {
		identity, ok := GetIdentity(c)
		if !ok {
			c.String(http.StatusOK, "anonymous")
			return
		}
		c.String(http.StatusOK, identity.Email)
	})
	return router
}

// TestSession はセッション解決ミドルウェアのテスト。
func TestSession(t *testing.T) {
	t.Parallel()

	t.Run("生きたセッションの本人情報をコンテキストに設定する", func(t *testing.T) {
		t.Parallel()

		store := session.NewMemoryStore()
		store.Put(session.Session{
			Token:     "token-1",
			Identity:  oauth.Identity{Email: "alice@example.com"},
			ExpiresAt: time.Now().Add(time.Hour),
		})
		router := newSessionRouter(store)

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/whoami", nil)
		req.AddCookie(&http.Cookie{Name: SessionCookieName, Value: "token-1"})
		router.ServeHTTP(w, req)

		if w.Body.String() != "alice@example.com" {
			t.Errorf("ボディ = %q, want %q", w.Body.String(), "alice@example.com")
		}
	})

	t.Run("Cookieがない場合は未認証として通す", func(t *testing.T) {
		t.Parallel()

		router := newSessionRouter(session.NewMemoryStore())

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/whoami", nil)
		router.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Errorf("ステータスコード = %d, want %d", w.Code, http.StatusOK)
		}
		if w.Body.String() != "anonymous" {
			t.Errorf("ボディ = %q, want %q", w.Body.String(), "anonymous")
		}
	})

	t.Run("未発行のトークンは未認証として通す", func(t *testing.T) {
		t.Parallel()

		router := newSessionRouter(session.NewMemoryStore())

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/whoami", nil)
		req.AddCookie(&http.Cookie{Name: SessionCookieName, Value: "forged-token"})
		router.ServeHTTP(w, req)

		if w.Body.String() != "anonymous" {
			t.Errorf("ボディ = %q, want %q", w.Body.String(), "anonymous")
		}
	})

	t.Run("期限切れのセッションは未認証として通す", func(t *testing.T) {
		t.Parallel()

		store := session.NewMemoryStore()
		store.Put(session.Session{
			Token:     "token-1",
			Identity:  oauth.Identity{Email: "alice@example.com"},
			ExpiresAt: time.Now().Add(-time.Minute),
		})
		router := newSessionRouter(store)

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/whoami", nil)
		req.AddCookie(&http.Cookie{Name: SessionCookieName, Value: "token-1"})
		router.ServeHTTP(w, req)

		if w.Body.String() != "anonymous" {
			t.Errorf("ボディ = %q, want %q", w.Body.String(), "anonymous")
		}
	})
}
