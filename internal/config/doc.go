// Package config はsheetgateの環境変数ベースの設定を提供する。
//
// すべての必須項目は起動時に検証され、欠けている場合は
// 最初のリクエストを待たずにプロセスを終了させる。
package config
