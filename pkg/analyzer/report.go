package analyzer

import (
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/shouni/go-style-kit/pkg/colormetric"
	"github.com/shouni/go-style-kit/pkg/domain"
)

// レポート判定の閾値。deviation スコアのスケール（scorer.go 参照）に対して調整済み。
const (
	regenerateThreshold = 60 // これ未満は再生成推奨
	adjustThreshold     = 80 // これ未満（かつ60以上）は調整推奨
	deviationThreshold  = 70 // 軸スコアがこれ未満で逸脱として記録
	highSeverityColor   = 50 // カラースコアがこれ未満なら severity high
)

// GenerateConsistencyReport はキャスト全体を採点し、一貫性レポートのスナップショットを返します。
// 入力は一切変更せず、毎回新しいレポートを構築します。
func GenerateConsistencyReport(projectID string, def domain.StyleDefinition, profiles []domain.CharacterStyleProfile) domain.StyleConsistencyReport {
	scores := make([]domain.CharacterStyleScore, 0, len(profiles))
	deviations := make([]domain.StyleDeviation, 0)

	var overallSum, colorSum, lightingSum, artStyleSum float64
	var regenerateIDs, adjustIDs []string

	for _, p := range profiles {
		deviation := CalculateStyleDeviation(p, def)
		overall := 100 - deviation

		var colorScore, lightingScore, artStyleScore float64
		artStyleScore = 30
		if p.Features != nil {
			// スタイル側に primary color がない場合は自分自身との比較に
			// フォールバックし、自明に 100 となる（既存仕様の再現）。
			stylePalette := def.ColorPalette.PrimaryColors
			if len(stylePalette) == 0 {
				stylePalette = p.Features.DominantColors
			}
			colorScore = colormetric.PaletteSimilarity(p.Features.DominantColors, stylePalette)

			lightingScore = p.Features.Brightness

			if p.Features.HasStyle(def.ArtDirection) {
				artStyleScore = 100
			}
		}

		score := domain.CharacterStyleScore{
			CharacterID:       p.CharacterID,
			CharacterName:     p.CharacterName,
			OverallScore:      overall,
			ColorScore:        clampScore(colorScore),
			LightingScore:     clampScore(lightingScore),
			ArtStyleScore:     clampScore(artStyleScore),
			NeedsRegeneration: overall < regenerateThreshold,
		}
		scores = append(scores, score)

		overallSum += float64(overall)
		colorSum += colorScore
		lightingSum += lightingScore
		artStyleSum += artStyleScore

		if p.Features != nil && colorScore < deviationThreshold {
			severity := domain.SeverityMedium
			if colorScore < highSeverityColor {
				severity = domain.SeverityHigh
			}
			deviations = append(deviations, domain.StyleDeviation{
				CharacterID:   p.CharacterID,
				CharacterName: p.CharacterName,
				Type:          domain.DeviationColor,
				Severity:      severity,
				Description:   fmt.Sprintf("%s の配色がスタイルパレットから乖離しています（カラースコア %d）", p.CharacterName, clampScore(colorScore)),
				Suggestion:    "スタイル定義の primary colors を参照画像か生成プロンプトに反映してください",
			})
		}

		if artStyleScore < deviationThreshold {
			deviations = append(deviations, domain.StyleDeviation{
				CharacterID:   p.CharacterID,
				CharacterName: p.CharacterName,
				Type:          domain.DeviationArtStyle,
				Severity:      domain.SeverityHigh,
				Description:   fmt.Sprintf("%s の画風が '%s' として検出されていません", p.CharacterName, def.ArtDirection),
				Suggestion:    "画風キーワードを強めたプロンプトでの再生成を検討してください",
			})
		}

		switch {
		case overall < regenerateThreshold:
			regenerateIDs = append(regenerateIDs, p.CharacterID)
		case overall < adjustThreshold:
			adjustIDs = append(adjustIDs, p.CharacterID)
		}
	}

	count := math.Max(float64(len(profiles)), 1)

	return domain.StyleConsistencyReport{
		ProjectID:       projectID,
		StyleID:         def.ID,
		AnalyzedAt:      time.Now(),
		OverallScore:    clampScore(overallSum / count),
		ColorScore:      clampScore(colorSum / count),
		LightingScore:   clampScore(lightingSum / count),
		ArtStyleScore:   clampScore(artStyleSum / count),
		CharacterScores: scores,
		Deviations:      deviations,
		Recommendations: buildRecommendations(regenerateIDs, adjustIDs),
	}
}

// buildRecommendations はスコア帯ごとのキャラクターを1件ずつの推奨にまとめます。
// 該当キャラクターがいない帯は省略されます。
func buildRecommendations(regenerateIDs, adjustIDs []string) []domain.StyleRecommendation {
	recs := make([]domain.StyleRecommendation, 0, 2)

	if len(regenerateIDs) > 0 {
		recs = append(recs, domain.StyleRecommendation{
			Action:       domain.ActionRegenerate,
			CharacterIDs: regenerateIDs,
			Description:  fmt.Sprintf("スタイルから大きく逸脱しているため再生成を推奨します: %s", strings.Join(regenerateIDs, ", ")),
			Priority:     domain.SeverityHigh,
		})
	}

	if len(adjustIDs) > 0 {
		recs = append(recs, domain.StyleRecommendation{
			Action:       domain.ActionAdjust,
			CharacterIDs: adjustIDs,
			Description:  fmt.Sprintf("軽微な逸脱があるためプロンプト調整を推奨します: %s", strings.Join(adjustIDs, ", ")),
			Priority:     domain.SeverityMedium,
		})
	}

	return recs
}
