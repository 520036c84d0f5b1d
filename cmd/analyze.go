package cmd

import (
	"fmt"
	"log/slog"

	"github.com/shouni/go-style-kit/internal/config"
	"github.com/shouni/go-style-kit/internal/pipeline"

	"github.com/spf13/cobra"
)

// analyzeCmd は、キャスト全体のスタイル一貫性を解析してレポートを出力するのだ。
var analyzeCmd = &cobra.Command{
	Use:   "analyze",
	Short: "キャスト全体のスタイル一貫性を解析するのだ。",
	Long: `スタイル定義とキャストJSON（外部の画像解析が抽出した視覚特徴つき）を読み込み、
キャラクターごとの逸脱スコアと推奨アクションをまとめたレポートを生成するのだ。
出力はJSONとMarkdownの2形式になるのだよ。`,
	RunE: analyzeCommand,
}

func analyzeCommand(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	// 1. 必須チェック
	if len(opts.CastFiles) == 0 {
		return fmt.Errorf("キャスト（--cast-file）を1つ以上指定してほしいのだ")
	}

	// 2. 環境変数等から基本設定をロードするのだ
	cfg := config.LoadConfig()
	cfg.Options = opts

	slog.Info("一貫性解析パイプラインを起動するのだ！",
		"style_file", opts.StyleFile,
		"cast_files", opts.CastFiles,
		"output_dir", opts.OutputDir)

	if err := pipeline.ExecuteAnalyze(ctx, cfg); err != nil {
		return fmt.Errorf("解析パイプライン実行中にエラーが発生したのだ: %w", err)
	}

	slog.Info("すべての解析工程が完了したのだ！")
	return nil
}
