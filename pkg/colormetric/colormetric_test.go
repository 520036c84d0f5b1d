package colormetric

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/shouni/go-style-kit/pkg/domain"
)

func TestColorSimilarity(t *testing.T) {
	t.Run("同一色は厳密に100になるのだ", func(t *testing.T) {
		assert.Equal(t, 100.0, ColorSimilarity("#FFFFFF", "#FFFFFF"))
		assert.Equal(t, 100.0, ColorSimilarity("#4A90D9", "#4A90D9"))
		assert.Equal(t, 100.0, ColorSimilarity("000000", "#000000"), "先頭の#は省略できる")
	})

	t.Run("黒と白は0になるのだ", func(t *testing.T) {
		assert.Equal(t, 0.0, ColorSimilarity("#000000", "#FFFFFF"))
	})

	t.Run("不正な16進表記はどちら側でも0になるのだ", func(t *testing.T) {
		tests := []struct {
			name string
			a    string
			b    string
		}{
			{"空文字", "", "#FFFFFF"},
			{"3桁ショートハンド", "#FFF", "#FFFFFF"},
			{"色名", "red", "#FF0000"},
			{"16進以外の文字", "#GGGGGG", "#FFFFFF"},
			{"桁あふれ", "#1234567", "#FFFFFF"},
			{"右側が不正", "#FFFFFF", "zzz"},
		}
		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				assert.Equal(t, 0.0, ColorSimilarity(tt.a, tt.b))
			})
		}
	})

	t.Run("常に0〜100の範囲に収まるのだ", func(t *testing.T) {
		pairs := [][2]string{
			{"#FF0000", "#00FF00"},
			{"#123456", "#654321"},
			{"#FF00FF", "#00FFFF"},
		}
		for _, p := range pairs {
			sim := ColorSimilarity(p[0], p[1])
			assert.GreaterOrEqual(t, sim, 0.0)
			assert.LessOrEqual(t, sim, 100.0)
		}
	})
}

func TestPaletteSimilarity(t *testing.T) {
	t.Run("どちらかが空なら0になるのだ", func(t *testing.T) {
		assert.Equal(t, 0.0, PaletteSimilarity(nil, []string{"#FFFFFF"}))
		assert.Equal(t, 0.0, PaletteSimilarity([]string{"#FFFFFF"}, nil))
		assert.Equal(t, 0.0, PaletteSimilarity([]string{}, []string{}))
	})

	t.Run("A側の各色は最良一致で評価されるのだ", func(t *testing.T) {
		sim := PaletteSimilarity([]string{"#FF0000"}, []string{"#00FF00", "#FF0000"})
		assert.Equal(t, 100.0, sim)
	})

	t.Run("最良一致の平均になるのだ", func(t *testing.T) {
		// 赤は完全一致、青は赤との距離 255*sqrt(5)/765 に基づく 25.46 前後
		sim := PaletteSimilarity([]string{"#FF0000", "#0000FF"}, []string{"#FF0000"})
		assert.InDelta(t, 62.73, sim, 0.01)
	})

	t.Run("不正な色を含んでも落ちずに0として扱うのだ", func(t *testing.T) {
		sim := PaletteSimilarity([]string{"not-a-color"}, []string{"#FF0000"})
		assert.Equal(t, 0.0, sim)
	})
}

func TestIsColorInPalette(t *testing.T) {
	constraint := domain.ColorPaletteConstraint{
		PrimaryColors:   []string{"#4A90D9"},
		AccentColors:    []string{"#FFD700"},
		ForbiddenColors: []string{"#FF0000"},
	}

	t.Run("許容色が未定義ならすべて通すのだ", func(t *testing.T) {
		empty := domain.ColorPaletteConstraint{ForbiddenColors: []string{"#FF0000"}}
		assert.True(t, IsColorInPalette("#FF0000", empty, DefaultTolerance), "禁止色は許容判定の不成立時にしか参照されない")
		assert.True(t, IsColorInPalette("#ABCDEF", empty, DefaultTolerance))
	})

	t.Run("許容色への一致で採用されるのだ", func(t *testing.T) {
		assert.True(t, IsColorInPalette("#4A90D9", constraint, DefaultTolerance))
		assert.True(t, IsColorInPalette("#4A8FD5", constraint, DefaultTolerance), "許容幅内の近い色も通る")
		assert.True(t, IsColorInPalette("#FFD700", constraint, DefaultTolerance), "アクセント色も許容対象")
	})

	t.Run("許容色から遠い色は拒否されるのだ", func(t *testing.T) {
		assert.False(t, IsColorInPalette("#00FF00", constraint, DefaultTolerance))
	})

	t.Run("禁止色に近い色も拒否経路で弾かれるのだ", func(t *testing.T) {
		assert.False(t, IsColorInPalette("#FA0505", constraint, DefaultTolerance))
	})

	t.Run("許容色と禁止色の両方に近い場合は許容が先に勝つのだ", func(t *testing.T) {
		both := domain.ColorPaletteConstraint{
			PrimaryColors:   []string{"#FF0000"},
			ForbiddenColors: []string{"#FF0000"},
		}
		// 既存仕様の非対称性: 禁止リストは拒否経路でのみ参照される
		assert.True(t, IsColorInPalette("#FF0000", both, DefaultTolerance))
	})
}
