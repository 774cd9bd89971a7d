// Package oauth は外部の認証プロバイダ（Google OAuth2）との
// 認可コードフローと、署名付きstateパラメータの発行・検証を提供する。
//
// プロバイダのプロトコル自体はライブラリに委譲し、このパッケージは
// 最終的な本人情報（メールアドレスと表示名）の取得だけを担当する。
package oauth
