// 認証ポータルsheetgateのエントリポイント。
// Google OAuth2によるログイン、スプレッドシート上のアクセス表による
// 遷移先の解決、認可されたサイトの埋め込み表示を担当する。
package main

import (
	"context"
	"log"

	"github.com/nao1215/sheetgate/internal/config"
	"github.com/nao1215/sheetgate/internal/gateway"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("設定の読み込みに失敗: %v", err)
	}

	server, err := gateway.NewServer(context.Background(), cfg)
	if err != nil {
		log.Fatalf("サーバーの初期化に失敗: %v", err)
	}

	log.Printf("sheetgateを起動します: :%s", cfg.Port)
	if err := server.Run(); err != nil {
		log.Fatalf("sheetgateの起動に失敗: %v", err)
	}
}
