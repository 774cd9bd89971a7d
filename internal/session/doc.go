// Package session は認証済みの本人情報とブラウザセッションを結びつける
// プロセス内のセッションストアを提供する。
//
// セッションはログイン成功時に作られ、ログアウトまたは固定の
// 有効期間満了で消える。プロセスの外には一切永続化しない。
package session
