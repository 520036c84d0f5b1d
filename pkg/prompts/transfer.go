package prompts

import (
	"fmt"

	"github.com/shouni/go-style-kit/pkg/domain"
)

// IdentityClause は、転写強度が100未満のときにプロンプト先頭へ挿入される
// アイデンティティ保持の定型句です。
const IdentityClause = "maintain distinct character features and identity,"

// PrepareStyleTransfer は、ソースキャラクターの確立済みスタイルを各ターゲットへ
// 転写するためのプロンプトの組を、ターゲットIDをキーとして返します。
//
// transferStrength が100未満の間はアイデンティティ保持句が先頭に付きます。
// ちょうど100のときだけ句が外れ、スタイルによる完全な上書きを許します。
// ソースの参照画像の引き回しはアダプター層（pkg/adapters）の責務です。
func PrepareStyleTransfer(source domain.CharacterStyleProfile, targets []domain.CharacterStyleProfile, def domain.StyleDefinition, transferStrength float64) map[string]domain.StylePrompt {
	plan := make(map[string]domain.StylePrompt, len(targets))

	for _, target := range targets {
		base := fmt.Sprintf("character portrait of %s", target.CharacterName)
		sp := BuildStyledPrompt(base, def, nil)

		if transferStrength < 100 {
			sp.Prompt = IdentityClause + " " + sp.Prompt
		}

		plan[target.CharacterID] = sp
	}

	return plan
}
