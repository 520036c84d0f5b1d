package domain

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func baseStyleForTest() StyleDefinition {
	return StyleDefinition{
		ID:           "style-base",
		Name:         "base",
		ArtDirection: ArtDirectionAnime,
		ColorPalette: ColorPaletteConstraint{
			PrimaryColors:   []string{"#4A90D9"},
			SaturationRange: Range{Min: 30, Max: 80},
			BrightnessRange: Range{Min: 20, Max: 90},
		},
		Lighting: LightingConstraint{
			Type:        "natural",
			Direction:   "three-point",
			ShadowStyle: ShadowSoft,
		},
		PromptPrefix:        "anime style",
		StyleKeywords:       []string{"cel shaded"},
		ConsistencyLevel:    ConsistencyModerate,
		LightingConsistency: LightingSimilar,
		Version:             3,
	}
}

func TestArtDirectionValid(t *testing.T) {
	t.Run("既知の画風は全て有効なのだ", func(t *testing.T) {
		for _, d := range ArtDirections {
			assert.True(t, d.Valid(), "無効と判定された: %s", d)
		}
	})

	t.Run("未知の画風は無効なのだ", func(t *testing.T) {
		assert.False(t, ArtDirection("vaporwave").Valid())
		assert.False(t, ArtDirection("").Valid())
	})
}

func TestRange(t *testing.T) {
	r := Range{Min: 30, Max: 80}

	t.Run("両端を含む閉区間なのだ", func(t *testing.T) {
		assert.True(t, r.Contains(30))
		assert.True(t, r.Contains(80))
		assert.True(t, r.Contains(55))
		assert.False(t, r.Contains(29.9))
		assert.False(t, r.Contains(80.1))
	})

	t.Run("MinがMaxを超えると不正なのだ", func(t *testing.T) {
		assert.True(t, Range{Min: 0, Max: 0}.Valid())
		assert.False(t, Range{Min: 50, Max: 10}.Valid())
	})
}

func TestAllowedColors(t *testing.T) {
	c := ColorPaletteConstraint{
		PrimaryColors:   []string{"#111111"},
		SecondaryColors: []string{"#222222"},
		AccentColors:    []string{"#333333"},
		ForbiddenColors: []string{"#FF0000"},
	}
	allowed := c.AllowedColors()
	assert.Equal(t, []string{"#111111", "#222222", "#333333"}, allowed)
	assert.NotContains(t, allowed, "#FF0000", "禁止色は許容一覧に含まれない")
}

func TestTouch(t *testing.T) {
	def := baseStyleForTest()
	before := def.UpdatedAt

	def.Touch()

	assert.Equal(t, 4, def.Version, "バージョンは単調増加する")
	assert.True(t, def.UpdatedAt.After(before))
}

func TestNewStyleID(t *testing.T) {
	t.Run("形式と一意性が保たれるのだ", func(t *testing.T) {
		id1 := NewStyleID()
		id2 := NewStyleID()

		assert.True(t, strings.HasPrefix(id1, "style-"))
		require.Len(t, strings.SplitN(id1, "-", 3), 3)
		assert.NotEqual(t, id1, id2)
	})
}

func TestMergeStyleDefinition(t *testing.T) {
	t.Run("nilの上書きはコピーを返すだけなのだ", func(t *testing.T) {
		base := baseStyleForTest()
		merged := MergeStyleDefinition(base, nil)

		assert.Equal(t, base, merged)

		// 防御的コピー: スライスを書き換えても元に波及しない
		merged.StyleKeywords[0] = "mutated"
		assert.Equal(t, "cel shaded", base.StyleKeywords[0])
	})

	t.Run("指定フィールドだけが上書きされるのだ", func(t *testing.T) {
		base := baseStyleForTest()
		name := "override"
		dir := ArtDirectionWatercolor
		merged := MergeStyleDefinition(base, &StyleOverrides{
			Name:         &name,
			ArtDirection: &dir,
		})

		assert.Equal(t, "override", merged.Name)
		assert.Equal(t, ArtDirectionWatercolor, merged.ArtDirection)
		assert.Equal(t, "anime style", merged.PromptPrefix, "未指定フィールドは維持される")
		assert.Equal(t, base.ColorPalette, merged.ColorPalette)
	})

	t.Run("ネスト構造は丸ごと差し替えになるのだ", func(t *testing.T) {
		base := baseStyleForTest()
		palette := ColorPaletteConstraint{PrimaryColors: []string{"#000000"}}
		merged := MergeStyleDefinition(base, &StyleOverrides{ColorPalette: &palette})

		assert.Equal(t, []string{"#000000"}, merged.ColorPalette.PrimaryColors)
		// 深いマージはしないので、未指定のレンジはゼロ値になる
		assert.Equal(t, Range{}, merged.ColorPalette.SaturationRange)
	})

	t.Run("マージは純粋でバージョンに触れないのだ", func(t *testing.T) {
		base := baseStyleForTest()
		name := "override"
		merged := MergeStyleDefinition(base, &StyleOverrides{Name: &name})

		assert.Equal(t, base.Version, merged.Version)
		assert.Equal(t, base.UpdatedAt, merged.UpdatedAt)
		assert.Equal(t, "base", base.Name, "元の定義は変更されない")
	})
}

func TestStyleDefinitionString(t *testing.T) {
	def := baseStyleForTest()
	def.UpdatedAt = time.Now()
	assert.Equal(t, "base [anime] v3", def.String())
}
