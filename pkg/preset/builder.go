package preset

import (
	"time"

	"github.com/shouni/go-style-kit/pkg/domain"
)

// CreateStyleDefinition は画風プリセットとデフォルト制約から新しいスタイル定義を組み立てます。
// overrides が指定された場合はプリセット由来の値の上にフィールド単位で重ねます（上書き側が勝ちます）。
// 返される定義は常に Version 1 の新規作成物です。
func CreateStyleDefinition(name string, dir domain.ArtDirection, overrides *domain.StyleOverrides) domain.StyleDefinition {
	p := For(dir)
	now := time.Now()

	def := domain.StyleDefinition{
		ID:                  domain.NewStyleID(),
		Name:                name,
		ArtDirection:        dir,
		ColorPalette:        DefaultColorPalette(),
		Lighting:            DefaultLighting(),
		PromptPrefix:        p.PromptPrefix,
		PromptSuffix:        p.PromptSuffix,
		NegativePrompt:      p.NegativePrompt,
		StyleKeywords:       p.StyleKeywords,
		AvoidKeywords:       p.AvoidKeywords,
		ArtisticInfluences:  p.ArtisticInfluences,
		ReferenceImages:     []string{},
		ConsistencyLevel:    domain.ConsistencyModerate,
		LightingConsistency: domain.LightingSimilar,
		CreatedAt:           now,
		UpdatedAt:           now,
	}

	def = domain.MergeStyleDefinition(def, overrides)

	// マージ後に設定することで、上書きの有無にかかわらず新規作成は常に v1 になります。
	def.Version = 1
	return def
}
