package cmd

import (
	"fmt"
	"log/slog"

	"github.com/shouni/go-style-kit/internal/config"
	"github.com/shouni/go-style-kit/internal/pipeline"

	"github.com/spf13/cobra"
)

// promptCmd は、ベースプロンプトにスタイル定義を合成するサブコマンドなのだ。
var promptCmd = &cobra.Command{
	Use:   "prompt",
	Short: "スタイル付き生成プロンプトを合成するのだ。",
	Long: `キャラクターのベース説明文にスタイル定義のプレフィックス・キーワード・
ライティング句を規定の順序で重ね、生成APIへ渡せるポジティブ/ネガティブ
プロンプトの組をJSONで出力するのだ。`,
	RunE: promptCommand,
}

func promptCommand(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	if opts.BasePrompt == "" {
		return fmt.Errorf("ベースプロンプト（--base-prompt）を指定してほしいのだ")
	}

	cfg := config.LoadConfig()
	cfg.Options = opts

	slog.Info("プロンプト合成を起動するのだ！",
		"style_file", opts.StyleFile,
		"base_prompt", opts.BasePrompt)

	return pipeline.ExecutePrompt(ctx, cfg)
}
