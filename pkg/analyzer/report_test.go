package analyzer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shouni/go-style-kit/pkg/domain"
)

func reportTestProfiles() []domain.CharacterStyleProfile {
	return []domain.CharacterStyleProfile{
		{
			CharacterID:   "char-a",
			CharacterName: "アルファ",
			Features: &domain.ExtractedStyleFeatures{
				DominantColors: []string{"#112233"},
				Brightness:     95, // レンジ外
				Saturation:     90, // レンジ外
				DetectedStyles: []domain.ArtDirection{domain.ArtDirectionRealistic},
			},
		},
		{
			CharacterID:   "char-b",
			CharacterName: "ベータ",
			Features: &domain.ExtractedStyleFeatures{
				DominantColors: []string{"#112233"},
				Brightness:     10, // レンジ外
				Saturation:     10, // レンジ外
				DetectedStyles: []domain.ArtDirection{domain.ArtDirectionAnime},
			},
		},
		{
			CharacterID:   "char-c",
			CharacterName: "ガンマ",
			Features:      conformingFeatures(),
		},
	}
}

func TestGenerateConsistencyReport(t *testing.T) {
	def := deviationTestStyle()

	t.Run("キャラクター別スコアと集計が一致するのだ", func(t *testing.T) {
		report := GenerateConsistencyReport("proj-1", def, reportTestProfiles())

		require.Len(t, report.CharacterScores, 3)
		assert.Equal(t, "proj-1", report.ProjectID)
		assert.Equal(t, "style-test", report.StyleID)

		// 逸脱 60 / 25 / 0 に対応する総合 40 / 75 / 100
		a, b, c := report.CharacterScores[0], report.CharacterScores[1], report.CharacterScores[2]
		assert.Equal(t, 40, a.OverallScore)
		assert.Equal(t, 75, b.OverallScore)
		assert.Equal(t, 100, c.OverallScore)

		assert.True(t, a.NeedsRegeneration, "60未満は再生成対象")
		assert.False(t, b.NeedsRegeneration)
		assert.False(t, c.NeedsRegeneration)

		// 軸スコア: カラーは全員一致、照明は明度の生値、画風は検出有無で100/30
		assert.Equal(t, 100, a.ColorScore)
		assert.Equal(t, 95, a.LightingScore)
		assert.Equal(t, 30, a.ArtStyleScore)
		assert.Equal(t, 10, b.LightingScore)
		assert.Equal(t, 100, b.ArtStyleScore)

		// 集計は単純平均の四捨五入
		assert.Equal(t, 72, report.OverallScore)
		assert.Equal(t, 100, report.ColorScore)
		assert.Equal(t, 52, report.LightingScore)
		assert.Equal(t, 77, report.ArtStyleScore)
	})

	t.Run("逸脱は軸スコア70未満で記録されるのだ", func(t *testing.T) {
		report := GenerateConsistencyReport("proj-1", def, reportTestProfiles())

		require.Len(t, report.Deviations, 1)
		d := report.Deviations[0]
		assert.Equal(t, "char-a", d.CharacterID)
		assert.Equal(t, domain.DeviationArtStyle, d.Type)
		assert.Equal(t, domain.SeverityHigh, d.Severity)
	})

	t.Run("カラー乖離50未満はseverity highになるのだ", func(t *testing.T) {
		mono := def
		mono.ColorPalette.PrimaryColors = []string{"#000000"}
		mono.ArtDirection = domain.ArtDirectionRealistic

		f := conformingFeatures()
		f.DominantColors = []string{"#FFFFFF"}
		profiles := []domain.CharacterStyleProfile{{CharacterID: "char-w", CharacterName: "白面", Features: f}}

		report := GenerateConsistencyReport("proj-1", mono, profiles)

		require.Len(t, report.CharacterScores, 1)
		score := report.CharacterScores[0]
		assert.Equal(t, 25, score.OverallScore)
		assert.Equal(t, 0, score.ColorScore)
		assert.True(t, score.NeedsRegeneration)

		require.Len(t, report.Deviations, 2)
		var colorDev *domain.StyleDeviation
		for i := range report.Deviations {
			if report.Deviations[i].Type == domain.DeviationColor {
				colorDev = &report.Deviations[i]
			}
		}
		require.NotNil(t, colorDev)
		assert.Equal(t, domain.SeverityHigh, colorDev.Severity)
	})

	t.Run("特徴未抽出のキャラクターはカラー逸脱を記録しないのだ", func(t *testing.T) {
		profiles := []domain.CharacterStyleProfile{{CharacterID: "char-n", CharacterName: "未解析"}}
		report := GenerateConsistencyReport("proj-1", def, profiles)

		require.Len(t, report.CharacterScores, 1)
		score := report.CharacterScores[0]
		assert.Equal(t, 0, score.OverallScore)
		assert.Equal(t, 0, score.ColorScore)
		assert.Equal(t, 30, score.ArtStyleScore)
		assert.True(t, score.NeedsRegeneration)

		// 画風逸脱のみ。カラー逸脱は特徴がある場合に限る。
		require.Len(t, report.Deviations, 1)
		assert.Equal(t, domain.DeviationArtStyle, report.Deviations[0].Type)
	})

	t.Run("primary color未定義なら自己比較で自明に100になるのだ", func(t *testing.T) {
		open := def
		open.ColorPalette.PrimaryColors = nil
		profiles := []domain.CharacterStyleProfile{{CharacterID: "char-c", Features: conformingFeatures()}}

		report := GenerateConsistencyReport("proj-1", open, profiles)
		assert.Equal(t, 100, report.CharacterScores[0].ColorScore)
	})

	t.Run("推奨アクションはスコア帯ごとにまとまるのだ", func(t *testing.T) {
		report := GenerateConsistencyReport("proj-1", def, reportTestProfiles())

		require.Len(t, report.Recommendations, 2)

		regen := report.Recommendations[0]
		assert.Equal(t, domain.ActionRegenerate, regen.Action)
		assert.Equal(t, []string{"char-a"}, regen.CharacterIDs)
		assert.Equal(t, domain.SeverityHigh, regen.Priority)

		adjust := report.Recommendations[1]
		assert.Equal(t, domain.ActionAdjust, adjust.Action)
		assert.Equal(t, []string{"char-b"}, adjust.CharacterIDs)
		assert.Equal(t, domain.SeverityMedium, adjust.Priority)
	})

	t.Run("空のキャストでもゼロ除算せず空レポートになるのだ", func(t *testing.T) {
		report := GenerateConsistencyReport("proj-1", def, nil)

		assert.Equal(t, 0, report.OverallScore)
		assert.Empty(t, report.CharacterScores)
		assert.Empty(t, report.Deviations)
		assert.Empty(t, report.Recommendations)
	})
}
