package cmd

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/shouni/go-style-kit/pkg/domain"
	"github.com/shouni/go-style-kit/pkg/preset"

	"github.com/spf13/cobra"
)

// presetsCmd は、画風プリセットのカタログ表示とスタイル定義の雛形出力を行うのだ。
var presetsCmd = &cobra.Command{
	Use:   "presets",
	Short: "画風プリセットのカタログを表示するのだ。",
	Long: `サポートする全10画風のプロンプト素材（プレフィックス・キーワード・影響アーティスト）を
一覧表示するのだ。--style-name を指定すると、その画風から組み立てた
スタイル定義の雛形JSONを出力するのだよ。`,
	RunE: presetsCommand,
}

func presetsCommand(cmd *cobra.Command, args []string) error {
	dir := domain.ArtDirection(opts.ArtDirection)
	if !dir.Valid() {
		return fmt.Errorf("未知の画風なのだ: '%s'。サポートするのは %s なのだ", opts.ArtDirection, supportedDirections())
	}

	out := cmd.OutOrStdout()

	// --style-name が指定されたら、雛形のスタイル定義JSONを出力して終わるのだ
	if opts.StyleName != "" {
		def := preset.CreateStyleDefinition(opts.StyleName, dir, nil)
		encoded, err := json.MarshalIndent(def, "", "  ")
		if err != nil {
			return fmt.Errorf("スタイル定義のJSONエンコードに失敗したのだ: %w", err)
		}
		fmt.Fprintln(out, string(encoded))
		return nil
	}

	// カタログの一覧表示
	for _, d := range domain.ArtDirections {
		p := preset.For(d)
		fmt.Fprintf(out, "## %s\n", d)
		fmt.Fprintf(out, "  prefix:     %s\n", p.PromptPrefix)
		fmt.Fprintf(out, "  keywords:   %s\n", strings.Join(p.StyleKeywords, ", "))
		fmt.Fprintf(out, "  influences: %s\n", strings.Join(p.ArtisticInfluences, ", "))
		fmt.Fprintf(out, "  negative:   %s\n\n", p.NegativePrompt)
	}
	return nil
}

func supportedDirections() string {
	names := make([]string, 0, len(domain.ArtDirections))
	for _, d := range domain.ArtDirections {
		names = append(names, string(d))
	}
	return strings.Join(names, ", ")
}
