// Package accesstable はスプレッドシートに格納されたアクセス表の
// 取得と、メールアドレスから遷移先サイトへの解決を提供する。
//
// アクセス表のレイアウト:
//
//	行0:    遷移先サイト（列ごとに1つ）
//	行1以降: 各サイトの列に許可されたメールアドレス
//
// 表はリクエストのたびに再取得する。キャッシュも鮮度管理も持たない。
package accesstable
