// Package prompts は、スタイル定義とキャラクター情報から画像生成用の
// ポジティブ/ネガティブプロンプトの組を合成します。
package prompts

import (
	"fmt"
	"strings"

	"github.com/shouni/go-style-kit/pkg/domain"
)

// BuildStyledPrompt は、ベースとなる説明文にスタイル定義のプロンプト素材を重ねて
// 生成用プロンプトの組を構築します。overrides はキャラクター固有の上書きで、
// フィールド単位で定義に勝ちます。
//
// ポジティブ側の結合順は固定です:
// プレフィックス → ベース → スタイルキーワード → 影響アーティスト → ライティング句 → サフィックス。
// 空のセグメントはスキップされ、ライティング句だけは常に含まれます。
func BuildStyledPrompt(basePrompt string, def domain.StyleDefinition, overrides *domain.StyleOverrides) domain.StylePrompt {
	merged := domain.MergeStyleDefinition(def, overrides)

	parts := make([]string, 0, 6)
	parts = append(parts, merged.PromptPrefix)
	parts = append(parts, basePrompt)

	if len(merged.StyleKeywords) > 0 {
		parts = append(parts, strings.Join(merged.StyleKeywords, ", "))
	}

	if len(merged.ArtisticInfluences) > 0 {
		parts = append(parts, fmt.Sprintf("inspired by %s", strings.Join(merged.ArtisticInfluences, ", ")))
	}

	parts = append(parts, lightingPhrase(merged.Lighting))
	parts = append(parts, merged.PromptSuffix)

	negativeParts := make([]string, 0, 2)
	negativeParts = append(negativeParts, merged.NegativePrompt)
	if len(merged.AvoidKeywords) > 0 {
		negativeParts = append(negativeParts, strings.Join(merged.AvoidKeywords, ", "))
	}

	return domain.StylePrompt{
		Prompt:         joinClean(parts),
		NegativePrompt: joinClean(negativeParts),
	}
}

// lightingPhrase はライティング制約を1つのプロンプト句に合成します。
func lightingPhrase(l domain.LightingConstraint) string {
	return fmt.Sprintf("%s lighting, %s lighting direction, %s shadows", l.Type, l.Direction, l.ShadowStyle)
}

// joinClean は空文字を除去してカンマ区切りで結合するのだ。
func joinClean(parts []string) string {
	clean := make([]string, 0, len(parts))
	for _, p := range parts {
		if s := strings.TrimSpace(p); s != "" {
			clean = append(clean, s)
		}
	}
	return strings.Join(clean, ", ")
}
