package oauth

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// stateTTL はstateパラメータの有効期間。
// ログイン開始から同意画面を経てコールバックに戻るまでの猶予。
const stateTTL = 10 * time.Minute

// stateIssuer はstateパラメータの発行者名。
const stateIssuer = "sheetgate"

// stateClaims はOAuth2のstateパラメータに埋め込むクレーム。
type stateClaims struct {
	jwt.RegisteredClaims
	// Nonce はstateごとの使い捨て値。
	Nonce string `json:"nonce"`
}

// SignState は署名付きのstateパラメータを生成する。
// サーバー側に状態を保存せずに、コールバックで偽造や期限切れを
// 検出できるようにする。
func SignState(secret string) (string, error) {
	now := time.Now()
	claims := stateClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(stateTTL)),
			IssuedAt:  jwt.NewNumericDate(now),
			Issuer:    stateIssuer,
		},
		Nonce: uuid.New().String(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(secret))
	if err != nil {
		return "", fmt.Errorf("stateの署名に失敗: %w", err)
	}
	return signed, nil
}

// VerifyState はstateパラメータの署名と有効期限を検証する。
// 検証を通らないstateを持つコールバックは処理を進めてはならない。
func VerifyState(secret, state string) error {
	claims := &stateClaims{}
	token, err := jwt.ParseWithClaims(state, claims, func(_ *jwt.Token) (any, error) {
		return []byte(secret), nil
	}, jwt.WithIssuer(stateIssuer), jwt.WithExpirationRequired())
	if err != nil || !token.Valid {
		return fmt.Errorf("%w: 不正なstateパラメータ", ErrProviderFailure)
	}
	return nil
}
