// Package report は、一貫性レポートを人間が読める Markdown 形式に整形します。
package report

import (
	"fmt"
	"strings"

	"github.com/shouni/go-style-kit/pkg/domain"
)

// MarkdownRenderer は、一貫性レポートを構造化された Markdown 形式で出力する役割を担います。
type MarkdownRenderer struct{}

func NewMarkdownRenderer() *MarkdownRenderer {
	return &MarkdownRenderer{}
}

// Render はレポート全体を1つの Markdown 文字列に整形します。
func (mr *MarkdownRenderer) Render(r domain.StyleConsistencyReport) string {
	var sb strings.Builder

	// 1. ヘッダーと集計スコア
	sb.WriteString(fmt.Sprintf("# スタイル一貫性レポート: %s\n\n", r.ProjectID))
	sb.WriteString(fmt.Sprintf("- style: %s\n", r.StyleID))
	sb.WriteString(fmt.Sprintf("- analyzed_at: %s\n\n", r.AnalyzedAt.Format("2006-01-02 15:04:05")))

	sb.WriteString("## 集計スコア\n\n")
	sb.WriteString("| 軸 | スコア |\n|---|---|\n")
	sb.WriteString(fmt.Sprintf("| 総合 | %d |\n", r.OverallScore))
	sb.WriteString(fmt.Sprintf("| カラー | %d |\n", r.ColorScore))
	sb.WriteString(fmt.Sprintf("| ライティング | %d |\n", r.LightingScore))
	sb.WriteString(fmt.Sprintf("| 画風 | %d |\n\n", r.ArtStyleScore))

	// 2. キャラクター別スコア
	sb.WriteString("## キャラクター別スコア\n\n")
	sb.WriteString("| キャラクター | 総合 | カラー | ライティング | 画風 | 再生成 |\n")
	sb.WriteString("|---|---|---|---|---|---|\n")
	for _, s := range r.CharacterScores {
		regen := ""
		if s.NeedsRegeneration {
			regen = "要"
		}
		sb.WriteString(fmt.Sprintf("| %s | %d | %d | %d | %d | %s |\n",
			s.CharacterName, s.OverallScore, s.ColorScore, s.LightingScore, s.ArtStyleScore, regen))
	}
	sb.WriteString("\n")

	// 3. 検出された逸脱
	if len(r.Deviations) > 0 {
		sb.WriteString("## 検出された逸脱\n\n")
		for _, d := range r.Deviations {
			sb.WriteString(fmt.Sprintf("- **[%s/%s]** %s\n  - 提案: %s\n", d.Type, d.Severity, d.Description, d.Suggestion))
		}
		sb.WriteString("\n")
	}

	// 4. 推奨アクション
	if len(r.Recommendations) > 0 {
		sb.WriteString("## 推奨アクション\n\n")
		for _, rec := range r.Recommendations {
			sb.WriteString(fmt.Sprintf("- **[%s/%s]** %s\n", rec.Action, rec.Priority, rec.Description))
		}
		sb.WriteString("\n")
	}

	return sb.String()
}
