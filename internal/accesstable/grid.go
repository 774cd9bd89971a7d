package accesstable

// Grid はアクセス表の2次元グリッド。
// 行ごとに列数が異なってもよい（スプレッドシートの空セルは行末から省略される）。
// 範囲外アクセスはエラーではなく「セルなし」として扱う。
type Grid struct {
	rows [][]string
}

// NewGrid は行データからGridを生成する。
func NewGrid(rows [][]string) Grid {
	return Grid{rows: rows}
}

// Cell は指定位置のセル値を返す。
// 範囲外の場合は空文字列とfalseを返す。
func (g Grid) Cell(row, col int) (string, bool) {
	if row < 0 || row >= len(g.rows) {
		return "", false
	}
	if col < 0 || col >= len(g.rows[row]) {
		return "", false
	}
	return g.rows[row][col], true
}

// Destinations は行0（遷移先サイトの並び）を返す。
// 表が空の場合はnilを返す。列の並び順は表の挿入順そのもの。
func (g Grid) Destinations() []string {
	if len(g.rows) == 0 {
		return nil
	}
	return g.rows[0]
}

// NumRows は行数を返す。
func (g Grid) NumRows() int {
	return len(g.rows)
}
