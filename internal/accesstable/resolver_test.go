package accesstable

import (
	"testing"
)

// TestResolve はメールアドレスから遷移先への解決のテスト。
func TestResolve(t *testing.T) {
	t.Parallel()

	t.Run("登録されたメールアドレスの遷移先を返す", func(t *testing.T) {
		t.Parallel()

		g := NewGrid([][]string{
			{"siteA", "siteB", "reports.example.com"},
			{"alice@example.com", "carol@example.com", "bob@x.com"},
		})
		if got := Resolve("bob@x.com", g); got != "reports.example.com" {
			t.Errorf("Resolve: got %q, want %q", got, "reports.example.com")
		}
	})

	t.Run("大文字小文字を区別しない", func(t *testing.T) {
		t.Parallel()

		g := NewGrid([][]string{
			{"siteA"},
			{"a@b.com"},
		})
		lower := Resolve("a@b.com", g)
		upper := Resolve("A@B.COM", g)
		if lower != upper {
			t.Errorf("大文字小文字で結果が異なる: %q vs %q", lower, upper)
		}
		if lower != "siteA" {
			t.Errorf("Resolve: got %q, want %q", lower, "siteA")
		}
	})

	t.Run("複数の列に登録されている場合は左の列が勝つ", func(t *testing.T) {
		t.Parallel()

		g := NewGrid([][]string{
			{"siteA", "siteB", "siteC"},
			{"x@y.com", "other@y.com", "x@y.com"},
		})
		if got := Resolve("x@y.com", g); got != "siteA" {
			t.Errorf("Resolve: got %q, want %q", got, "siteA")
		}
	})

	t.Run("同じ列では上の行が勝つが結果は同じ見出しになる", func(t *testing.T) {
		t.Parallel()

		g := NewGrid([][]string{
			{"siteA"},
			{"x@y.com"},
			{"x@y.com"},
		})
		if got := Resolve("x@y.com", g); got != "siteA" {
			t.Errorf("Resolve: got %q, want %q", got, "siteA")
		}
	})

	t.Run("見出しが空の列に一致した場合は許可なしで打ち切る", func(t *testing.T) {
		t.Parallel()

		// 列1の見出しは空。列2にも同じメールアドレスがあるが、
		// 最初の一致で走査を打ち切るので列2は参照されない
		g := NewGrid([][]string{
			{"siteA", "", "siteC"},
			{"alice@example.com", "x@y.com", "x@y.com"},
		})
		if got := Resolve("x@y.com", g); got != "" {
			t.Errorf("Resolve: got %q, want 空文字列", got)
		}
	})

	t.Run("どのセルにも一致しない場合は許可なし", func(t *testing.T) {
		t.Parallel()

		g := NewGrid([][]string{
			{"siteA"},
			{"alice@example.com"},
		})
		if got := Resolve("eve@x.com", g); got != "" {
			t.Errorf("Resolve: got %q, want 空文字列", got)
		}
	})

	t.Run("空の表では誰も許可されない", func(t *testing.T) {
		t.Parallel()

		for _, g := range []Grid{
			NewGrid(nil),
			NewGrid([][]string{{"siteA"}}),
		} {
			if got := Resolve("alice@example.com", g); got != "" {
				t.Errorf("Resolve: got %q, want 空文字列", got)
			}
		}
	})

	t.Run("空のメールアドレスは一致しない", func(t *testing.T) {
		t.Parallel()

		// 空セルを含む列があっても空メールは一致扱いにしない
		g := NewGrid([][]string{
			{"siteA", "siteB"},
			{"", "alice@example.com"},
		})
		if got := Resolve("", g); got != "" {
			t.Errorf("Resolve: got %q, want 空文字列", got)
		}
	})

	t.Run("空白の除去は行わない", func(t *testing.T) {
		t.Parallel()

		g := NewGrid([][]string{
			{"siteA"},
			{" alice@example.com "},
		})
		if got := Resolve("alice@example.com", g); got != "" {
			t.Errorf("Resolve: got %q, want 空文字列（リテラル一致のみ）", got)
		}
	})

	t.Run("同じ入力に対して常に同じ結果を返す", func(t *testing.T) {
		t.Parallel()

		g := NewGrid([][]string{
			{"siteA", "siteB"},
			{"alice@example.com", "bob@x.com"},
		})
		first := Resolve("bob@x.com", g)
		for i := 0; i < 10; i++ {
			if got := Resolve("bob@x.com", g); got != first {
				t.Fatalf("呼び出し%d回目で結果が変化: got %q, want %q", i, got, first)
			}
		}
	})
}
