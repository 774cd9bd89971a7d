package accesstable

import "strings"

// Resolve はメールアドレスが許可されている遷移先サイトを返す。
// 許可されていない場合は空文字列を返す。
//
// 走査は列優先（行0の並び順）で、各列の中を行1から下へ進む。
// 大文字小文字を区別せずに比較し、最初に一致したセルで走査を打ち切る。
// 同じメールアドレスが複数の列に登録されていても、後のエントリは参照しない。
// 一致した列の見出し（行0）が空の場合も、そこで打ち切って「許可なし」を返す。
//
// 空白の除去やUnicode正規化は行わない。表の値とリテラル一致しない
// メールアドレスは一致しない。
func Resolve(email string, g Grid) string {
	if email == "" {
		return ""
	}

	destinations := g.Destinations()
	for col := range destinations {
		for row := 1; row < g.NumRows(); row++ {
			cell, ok := g.Cell(row, col)
			if !ok || cell == "" {
				continue
			}
			if strings.EqualFold(cell, email) {
				return destinations[col]
			}
		}
	}
	return ""
}
