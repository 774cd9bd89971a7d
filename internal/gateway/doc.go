// Package gateway は認証ポータルのHTTPサーバーを提供する。
//
// Google OAuth2によるログイン、スプレッドシート上のアクセス表による
// 遷移先の解決、セッションのライフサイクル管理を担当する。
// ルートへのリクエストはセッション状態と認可結果に応じて、
// 未認証のランディング・許可なしの案内・遷移先の埋め込み表示の
// いずれかを返す。
package gateway
