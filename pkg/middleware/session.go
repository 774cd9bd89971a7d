package middleware

import (
	"github.com/gin-gonic/gin"

	"github.com/nao1215/sheetgate/internal/oauth"
	"github.com/nao1215/sheetgate/internal/session"
)

// SessionCookieName はセッショントークンを保持するCookie名。
const SessionCookieName = "sid"

// contextKeyIdentity はGinコンテキストに本人情報を格納するためのキー。
const contextKeyIdentity = "identity"

// Session はセッションCookieを解決するGinミドルウェアを返す。
// Cookieのトークンがストア上の生きたセッションに対応する場合、
// コンテキストに本人情報を設定する。
//
// 不在・期限切れ・削除済みのセッションは未認証として扱い、
// リクエストを中断しない。認証状態による分岐はハンドラ側の責務。
func Session(store session.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, err := c.Cookie(SessionCookieName)
		if err == nil && token != "" {
			if sess, ok := store.Get(token); ok {
				c.Set(contextKeyIdentity, sess.Identity)
			}
		}
		c.Next()
	}
}

// GetIdentity はGinコンテキストから本人情報を取得する。
// Sessionミドルウェアが事前に適用されている必要がある。
// 未認証の場合は2番目の戻り値がfalseになる。
func GetIdentity(c *gin.Context) (oauth.Identity, bool) {
	v, ok := c.Get(contextKeyIdentity)
	if !ok {
		return oauth.Identity{}, false
	}
	identity, ok := v.(oauth.Identity)
	return identity, ok
}
