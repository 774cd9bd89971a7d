// Package middleware はGinベースのHTTPサーバーで使用する共通ミドルウェアを提供する。
//
// セッションCookieの解決による本人情報のコンテキストへの設定と、
// パニックリカバリを含む。
package middleware
