package accesstable

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/cenkalti/backoff/v4"
	"google.golang.org/api/googleapi"
	"google.golang.org/api/option"
	"google.golang.org/api/sheets/v4"
)

// ErrTableUnavailable は外部のアクセス表を取得できない場合のエラー。
// 取得失敗は「許可なし」とは別物として扱う。インフラ障害をアクセス制御の
// 判断にすり替えてはならない。
var ErrTableUnavailable = errors.New("アクセス表を取得できない")

// fetchRange はアクセス表として読み取るセル範囲。列が増えた場合はここを調整する。
const fetchRange = "A:Z"

// fetchMaxRetries は取得失敗時の再試行回数の上限。
const fetchMaxRetries = 2

// Fetcher はアクセス表を取得するインターフェース。
// ゲートウェイにはこのインターフェースを注入し、テストではフェイクに差し替える。
type Fetcher interface {
	// FetchTable はアクセス表の全体を取得する。
	// 行数が2未満の表は空のGridとして返す（エラーではない）。
	FetchTable(ctx context.Context) (Grid, error)
}

// SheetsFetcher はGoogle Sheetsからアクセス表を取得するFetcher実装。
// 静的APIキーで読み取り専用アクセスを行う。ローカルの状態は持たず、
// 呼び出しのたびに再取得する。
type SheetsFetcher struct {
	// service はSheets APIのクライアント。
	service *sheets.Service
	// sheetID は読み取り対象のスプレッドシートID。
	sheetID string
	// timeout は1回の取得全体（再試行を含む）のタイムアウト。
	timeout time.Duration
}

// NewSheetsFetcher は新しいSheetsFetcherを生成する。
// apiKeyはスプレッドシート読み取り用の静的資格情報で、
// エンドユーザーの認証情報とは無関係。
func NewSheetsFetcher(ctx context.Context, sheetID, apiKey string, timeout time.Duration) (*SheetsFetcher, error) {
	service, err := sheets.NewService(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("Sheetsクライアントの初期化に失敗: %w", err)
	}
	return &SheetsFetcher{
		service: service,
		sheetID: sheetID,
		timeout: timeout,
	}, nil
}

// FetchTable はスプレッドシートの全範囲を取得してGridに変換する。
// 一時的な失敗には上限付きの指数バックオフで再試行し、それでも
// 取得できない場合はErrTableUnavailableを返す。
func (f *SheetsFetcher) FetchTable(ctx context.Context) (Grid, error) {
	ctx, cancel := context.WithTimeout(ctx, f.timeout)
	defer cancel()

	var resp *sheets.ValueRange
	operation := func() error {
		var err error
		resp, err = f.service.Spreadsheets.Values.Get(f.sheetID, fetchRange).Context(ctx).Do()
		if err != nil {
			// 4xxは再試行しても結果が変わらないので即座に打ち切る
			var gerr *googleapi.Error
			if errors.As(err, &gerr) && gerr.Code >= 400 && gerr.Code < 500 {
				return backoff.Permanent(err)
			}
			return err
		}
		return nil
	}

	policy := backoff.WithContext(backoff.WithMaxRetries(backoff.NewExponentialBackOff(), fetchMaxRetries), ctx)
	if err := backoff.Retry(operation, policy); err != nil {
		return Grid{}, fmt.Errorf("%w: %v", ErrTableUnavailable, err)
	}

	// 行0は遷移先、行1以降が許可メールアドレス。行が2未満なら誰も許可されていない
	if len(resp.Values) < 2 {
		return Grid{}, nil
	}

	rows := make([][]string, 0, len(resp.Values))
	for _, values := range resp.Values {
		row := make([]string, 0, len(values))
		for _, cell := range values {
			s, ok := cell.(string)
			if !ok {
				s = fmt.Sprint(cell)
			}
			row = append(row, s)
		}
		rows = append(rows, row)
	}
	return NewGrid(rows), nil
}
