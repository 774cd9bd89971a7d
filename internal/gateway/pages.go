package gateway

import "html/template"

// ページは最小限の構成に留める。見た目の装飾はこのシステムの責務ではない。
// 補間される値（表示名・メールアドレス・遷移先）はhtml/templateが
// 文脈に応じてエスケープする。手作業の文字列連結でHTMLを組み立てない。
var pageTemplates = template.Must(template.New("pages").Parse(`
{{define "landing"}}<!DOCTYPE html>
<html lang="ja">
<head>
  <meta charset="utf-8">
  <meta name="viewport" content="width=device-width, initial-scale=1">
  <title>sheetgate</title>
</head>
<body>
  <main>
    <h1>sheetgate</h1>
    <p>Googleアカウントでログインしてください。</p>
    <a href="/auth/google">ログイン</a>
  </main>
</body>
</html>
{{end}}

{{define "unauthorized"}}<!DOCTYPE html>
<html lang="ja">
<head>
  <meta charset="utf-8">
  <title>アクセスが許可されていません</title>
</head>
<body>
  <main>
    <h2>アクセスが許可されていません</h2>
    <p>{{.Email}} は許可されていません。</p>
    <a href="/logout">戻る</a>
  </main>
</body>
</html>
{{end}}

{{define "dashboard"}}<!DOCTYPE html>
<html lang="ja">
<head>
  <meta charset="utf-8">
  <meta name="viewport" content="width=device-width, initial-scale=1">
  <title>sheetgate</title>
  <style>
    body, html { margin: 0; padding: 0; height: 100%; }
    header { display: flex; justify-content: space-between; padding: 8px 16px; }
    iframe { width: 100%; height: calc(100vh - 40px); border: none; display: block; }
  </style>
</head>
<body>
  <header>
    <span>こんにちは、{{.Name}}さん</span>
    <a href="/logout">ログアウト</a>
  </header>
  <iframe src="https://{{.Destination}}" title="接続先サイト"
          sandbox="allow-scripts allow-same-origin allow-forms allow-popups"></iframe>
</body>
</html>
{{end}}

{{define "unavailable"}}<!DOCTYPE html>
<html lang="ja">
<head>
  <meta charset="utf-8">
  <title>一時的なエラー</title>
</head>
<body>
  <main>
    <h2>一時的なエラー</h2>
    <p>アクセス表を取得できませんでした。しばらくしてからやり直してください。</p>
  </main>
</body>
</html>
{{end}}
`))
