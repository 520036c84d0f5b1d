// Package preset は、画風ごとのプロンプト素材を収録した静的カタログと、
// そこからスタイル定義を組み立てるビルダーを提供します。
package preset

import "github.com/shouni/go-style-kit/pkg/domain"

// ArtDirectionPreset は画風1つ分のプロンプト素材一式です。
type ArtDirectionPreset struct {
	PromptPrefix       string
	PromptSuffix       string
	NegativePrompt     string
	StyleKeywords      []string
	AvoidKeywords      []string
	ArtisticInfluences []string
}

// artDirectionPresets は全10画風のコンパイル時定数テーブルです。
// 網羅性は preset_test.go が domain.ArtDirections との突き合わせで保証します。
var artDirectionPresets = map[domain.ArtDirection]ArtDirectionPreset{
	domain.ArtDirectionAnime: {
		PromptPrefix:       "anime style character portrait",
		PromptSuffix:       "cel shading, clean lineart, high quality anime art",
		NegativePrompt:     "photorealistic, 3d render, western cartoon, deformed hands",
		StyleKeywords:      []string{"anime", "cel shaded", "vibrant colors", "expressive eyes"},
		AvoidKeywords:      []string{"realistic skin texture", "photograph"},
		ArtisticInfluences: []string{"Makoto Shinkai", "Studio Ghibli"},
	},
	domain.ArtDirectionRealistic: {
		PromptPrefix:       "photorealistic character portrait",
		PromptSuffix:       "detailed skin texture, sharp focus, 8k quality",
		NegativePrompt:     "anime, cartoon, flat shading, illustration",
		StyleKeywords:      []string{"photorealistic", "detailed", "natural skin", "depth of field"},
		AvoidKeywords:      []string{"cel shading", "lineart"},
		ArtisticInfluences: []string{"Annie Leibovitz", "Steve McCurry"},
	},
	domain.ArtDirectionPainterly: {
		PromptPrefix:       "painterly character portrait",
		PromptSuffix:       "visible brushstrokes, rich impasto texture, fine art quality",
		NegativePrompt:     "photograph, flat colors, vector art, hard outlines",
		StyleKeywords:      []string{"oil painting", "brushstrokes", "canvas texture", "classical"},
		AvoidKeywords:      []string{"digital flatness", "pixel art"},
		ArtisticInfluences: []string{"John Singer Sargent", "Rembrandt"},
	},
	domain.ArtDirectionComic: {
		PromptPrefix:       "comic book style character portrait",
		PromptSuffix:       "bold ink outlines, halftone shading, dynamic composition",
		NegativePrompt:     "photorealistic, soft painterly blending, watercolor",
		StyleKeywords:      []string{"comic book", "bold outlines", "flat colors", "ink"},
		AvoidKeywords:      []string{"soft gradients", "photographic lighting"},
		ArtisticInfluences: []string{"Jack Kirby", "Jim Lee"},
	},
	domain.ArtDirectionPixel: {
		PromptPrefix:       "pixel art character portrait",
		PromptSuffix:       "crisp pixels, limited palette, retro game aesthetic",
		NegativePrompt:     "smooth gradients, anti-aliasing, photorealistic, blur",
		StyleKeywords:      []string{"pixel art", "16-bit", "dithering", "sprite"},
		AvoidKeywords:      []string{"high resolution detail", "soft shading"},
		ArtisticInfluences: []string{"classic SNES RPG art", "eBoy"},
	},
	domain.ArtDirectionChibi: {
		PromptPrefix:       "chibi style character portrait",
		PromptSuffix:       "oversized head, tiny body, kawaii aesthetic, soft colors",
		NegativePrompt:     "realistic proportions, photorealistic, gritty, dark",
		StyleKeywords:      []string{"chibi", "super deformed", "cute", "round shapes"},
		AvoidKeywords:      []string{"realistic anatomy", "serious tone"},
		ArtisticInfluences: []string{"Sanrio", "Nendoroid figures"},
	},
	domain.ArtDirectionSemiReal: {
		PromptPrefix:       "semi-realistic character portrait",
		PromptSuffix:       "stylized realism, painterly finish, refined details",
		NegativePrompt:     "full cartoon, chibi, pixel art, heavy outlines",
		StyleKeywords:      []string{"semi-realistic", "stylized", "soft rendering", "detailed eyes"},
		AvoidKeywords:      []string{"flat cel shading", "photograph"},
		ArtisticInfluences: []string{"Artgerm", "WLOP"},
	},
	domain.ArtDirectionWatercolor: {
		PromptPrefix:       "watercolor character portrait",
		PromptSuffix:       "soft washes, paper texture, delicate color bleeding",
		NegativePrompt:     "hard edges, digital flatness, photorealistic, neon colors",
		StyleKeywords:      []string{"watercolor", "wet on wet", "soft edges", "pastel tones"},
		AvoidKeywords:      []string{"bold ink outlines", "high contrast"},
		ArtisticInfluences: []string{"Agnes Cecile", "traditional sumi-e"},
	},
	domain.ArtDirectionSketch: {
		PromptPrefix:       "sketch style character portrait",
		PromptSuffix:       "confident pencil strokes, crosshatching, monochrome shading",
		NegativePrompt:     "full color rendering, photorealistic, polished digital art",
		StyleKeywords:      []string{"pencil sketch", "crosshatch", "line drawing", "rough"},
		AvoidKeywords:      []string{"saturated colors", "smooth shading"},
		ArtisticInfluences: []string{"Kim Jung Gi", "classical figure drawing"},
	},
	domain.ArtDirectionCustom: {
		PromptPrefix:       "",
		PromptSuffix:       "",
		NegativePrompt:     "",
		StyleKeywords:      []string{},
		AvoidKeywords:      []string{},
		ArtisticInfluences: []string{},
	},
}

// For は指定画風のプリセットを防御的コピーで返します。
// 未知の画風は custom（空プリセット）にフォールバックします。
func For(dir domain.ArtDirection) ArtDirectionPreset {
	p, ok := artDirectionPresets[dir]
	if !ok {
		p = artDirectionPresets[domain.ArtDirectionCustom]
	}
	return copyPreset(p)
}

// All は全画風のプリセットをコピーして返します。CLIのカタログ表示用です。
func All() map[domain.ArtDirection]ArtDirectionPreset {
	all := make(map[domain.ArtDirection]ArtDirectionPreset, len(artDirectionPresets))
	for dir, p := range artDirectionPresets {
		all[dir] = copyPreset(p)
	}
	return all
}

// copyPreset は内部テーブルが呼び出し元に書き換えられるのを防ぐコピーヘルパーです。
func copyPreset(p ArtDirectionPreset) ArtDirectionPreset {
	copied := p
	copied.StyleKeywords = cloneStrings(p.StyleKeywords)
	copied.AvoidKeywords = cloneStrings(p.AvoidKeywords)
	copied.ArtisticInfluences = cloneStrings(p.ArtisticInfluences)
	return copied
}

func cloneStrings(src []string) []string {
	if src == nil {
		return nil
	}
	copied := make([]string, len(src))
	copy(copied, src)
	return copied
}

// DefaultColorPalette は許容色なし・類似色相ハーモニー・彩度 [30,80]・明度 [20,90] の
// 標準パレット制約を返します。
func DefaultColorPalette() domain.ColorPaletteConstraint {
	return domain.ColorPaletteConstraint{
		PrimaryColors:   []string{},
		SecondaryColors: []string{},
		AccentColors:    []string{},
		ForbiddenColors: []string{},
		ColorHarmony:    "analogous",
		SaturationRange: domain.Range{Min: 30, Max: 80},
		BrightnessRange: domain.Range{Min: 20, Max: 90},
	}
}

// DefaultLighting は自然光・三点照明・ソフトシャドウ・ハイライト50% の標準設定を返します。
func DefaultLighting() domain.LightingConstraint {
	return domain.LightingConstraint{
		Type:              "natural",
		Direction:         "three-point",
		IntensityRange:    domain.Range{Min: 40, Max: 70},
		ShadowStyle:       domain.ShadowSoft,
		HighlightStrength: 50,
	}
}
