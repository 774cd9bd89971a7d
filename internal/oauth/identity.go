package oauth

// Identity は認証プロバイダから得た本人情報。
// セッションの中だけで生き、どこにも永続化しない。
type Identity struct {
	// Email は認可判定の主キーとなるメールアドレス。
	Email string
	// DisplayName は挨拶表示にのみ使う表示名。空でもよい。
	DisplayName string
}
