package session

import (
	"time"

	"github.com/nao1215/sheetgate/internal/oauth"
)

// Session は1つのブラウザクライアントと本人情報の結びつき。
type Session struct {
	// Token はクライアントに発行する不透明なセッショントークン。
	Token string
	// Identity は認証プロバイダから得た本人情報。
	Identity oauth.Identity
	// ExpiresAt はセッションの失効時刻。
	// ログイン時に固定され、活動によって延長されることはない。
	ExpiresAt time.Time
}

// IsExpired はセッションが失効しているかどうかを返す。
func (s Session) IsExpired() bool {
	return time.Now().After(s.ExpiresAt)
}

// Store はセッションストアのインターフェース。
// ゲートウェイにはこのインターフェースを注入する。プロセス全体で
// 共有するグローバル変数は持たない。
type Store interface {
	// Get はトークンに対応する生きたセッションを返す。
	// 存在しないトークンと期限切れのトークンは区別せずfalseを返す。
	Get(token string) (Session, bool)
	// Put はセッションを保存する。同じトークンへの再保存は上書きになる。
	Put(sess Session)
	// Delete はセッションの記録を完全に消す。
	// 削除後のトークンは未発行のトークンと区別がつかない。
	Delete(token string)
}
