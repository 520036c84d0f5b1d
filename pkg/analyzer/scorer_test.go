package analyzer

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/shouni/go-style-kit/pkg/domain"
)

func deviationTestStyle() domain.StyleDefinition {
	return domain.StyleDefinition{
		ID:           "style-test",
		Name:         "test style",
		ArtDirection: domain.ArtDirectionAnime,
		ColorPalette: domain.ColorPaletteConstraint{
			PrimaryColors:   []string{"#112233"},
			SaturationRange: domain.Range{Min: 30, Max: 80},
			BrightnessRange: domain.Range{Min: 20, Max: 90},
		},
	}
}

func conformingFeatures() *domain.ExtractedStyleFeatures {
	return &domain.ExtractedStyleFeatures{
		DominantColors: []string{"#112233"},
		Brightness:     50,
		Saturation:     50,
		DetectedStyles: []domain.ArtDirection{domain.ArtDirectionAnime},
	}
}

func TestCalculateStyleDeviation(t *testing.T) {
	def := deviationTestStyle()

	t.Run("特徴未抽出なら完全不一致の100になるのだ", func(t *testing.T) {
		profile := domain.CharacterStyleProfile{CharacterID: "c1"}
		assert.Equal(t, 100, CalculateStyleDeviation(profile, def))
	})

	t.Run("全項目が適合すれば0になるのだ", func(t *testing.T) {
		profile := domain.CharacterStyleProfile{CharacterID: "c1", Features: conformingFeatures()}
		assert.Equal(t, 0, CalculateStyleDeviation(profile, def))
	})

	t.Run("単独ペナルティはそれぞれの重み分だけ加算されるのだ", func(t *testing.T) {
		tests := []struct {
			name   string
			mutate func(f *domain.ExtractedStyleFeatures)
			want   int
		}{
			{
				name:   "画風不一致は35",
				mutate: func(f *domain.ExtractedStyleFeatures) { f.DetectedStyles = []domain.ArtDirection{domain.ArtDirectionRealistic} },
				want:   35,
			},
			{
				name:   "彩度レンジ外は15",
				mutate: func(f *domain.ExtractedStyleFeatures) { f.Saturation = 95 },
				want:   15,
			},
			{
				name:   "明度レンジ外は10",
				mutate: func(f *domain.ExtractedStyleFeatures) { f.Brightness = 5 },
				want:   10,
			},
		}
		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				f := conformingFeatures()
				tt.mutate(f)
				profile := domain.CharacterStyleProfile{CharacterID: "c1", Features: f}
				assert.Equal(t, tt.want, CalculateStyleDeviation(profile, def))
			})
		}
	})

	t.Run("白黒の完全乖離と画風不一致の合算で75になるのだ", func(t *testing.T) {
		mono := def
		mono.ColorPalette.PrimaryColors = []string{"#000000"}
		mono.ArtDirection = domain.ArtDirectionRealistic

		f := conformingFeatures()
		f.DominantColors = []string{"#FFFFFF"}
		profile := domain.CharacterStyleProfile{CharacterID: "c1", Features: f}

		// カラー項40 + 画風項35
		assert.Equal(t, 75, CalculateStyleDeviation(profile, mono))
	})

	t.Run("primary color未定義ならカラー項は発火しないのだ", func(t *testing.T) {
		open := def
		open.ColorPalette.PrimaryColors = nil

		f := conformingFeatures()
		f.DominantColors = []string{"#FFFFFF"}
		f.DetectedStyles = []domain.ArtDirection{domain.ArtDirectionRealistic}
		profile := domain.CharacterStyleProfile{CharacterID: "c1", Features: f}

		assert.Equal(t, 35, CalculateStyleDeviation(profile, open))
	})

	t.Run("結果は常に0〜100に収まるのだ", func(t *testing.T) {
		f := conformingFeatures()
		f.DominantColors = []string{"#FFFFFF"}
		f.DetectedStyles = nil
		f.Saturation = 200
		f.Brightness = -10
		profile := domain.CharacterStyleProfile{CharacterID: "c1", Features: f}

		mono := def
		mono.ColorPalette.PrimaryColors = []string{"#000000"}
		got := CalculateStyleDeviation(profile, mono)
		assert.GreaterOrEqual(t, got, 0)
		assert.LessOrEqual(t, got, 100)
	})
}

func TestClampScore(t *testing.T) {
	assert.Equal(t, 0, clampScore(-5))
	assert.Equal(t, 100, clampScore(150))
	assert.Equal(t, 50, clampScore(49.5), "四捨五入される")
	assert.Equal(t, 49, clampScore(49.4))
}
