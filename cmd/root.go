package cmd

import (
	"fmt"

	"github.com/shouni/go-style-kit/internal/config"

	clibase "github.com/shouni/go-cli-base"
	"github.com/spf13/cobra"
)

// opts は全サブコマンドで共有する実行時パラメータなのだ。
var opts config.GenerateOptions

// addAppFlags は、アプリケーション全般に適用されるグローバルフラグを定義するのだ。
func addAppFlags(rootCmd *cobra.Command) {
	// --- 入力関連 ---
	rootCmd.PersistentFlags().StringVarP(&opts.StyleFile, "style-file", "s", config.DefaultStyleFile, "スタイル定義JSONのパス（ローカル or gs://...）なのだ。")
	rootCmd.PersistentFlags().StringSliceVarP(&opts.CastFiles, "cast-file", "c", []string{config.DefaultCastFile}, "キャストJSONのパス（複数指定可）なのだ。")

	// --- 出力関連 ---
	rootCmd.PersistentFlags().StringVarP(&opts.OutputDir, "output-dir", "o", config.DefaultOutputDir, "レポートやプランの保存先ディレクトリ（ローカル or gs://...）なのだ。")

	// --- prompt コマンド固有設定 ---
	promptCmd.Flags().StringVarP(&opts.BasePrompt, "base-prompt", "p", "", "スタイルを重ねるベースプロンプトなのだ。")

	// --- transfer コマンド固有設定 ---
	transferCmd.Flags().StringVar(&opts.SourceID, "source", "", "スタイルの転写元となるキャラクターIDなのだ。")
	transferCmd.Flags().StringSliceVar(&opts.TargetIDs, "target", nil, "転写先のキャラクターID（未指定ならソース以外の全員なのだ）。")
	transferCmd.Flags().Float64Var(&opts.TransferStrength, "strength", config.DefaultTransfer, "転写強度（0〜100）。100でアイデンティティ保持句が外れるのだ。")

	// --- presets コマンド固有設定 ---
	presetsCmd.Flags().StringVar(&opts.ArtDirection, "art-direction", config.DefaultArtDirection, "スタイル定義の雛形を出力する画風なのだ。")
	presetsCmd.Flags().StringVar(&opts.StyleName, "style-name", "", "雛形に付けるスタイル名なのだ（省略時は一覧表示のみ）。")
}

// preRunAppE は、コマンド実行前にパラメータの必須チェックを行うのだ。
func preRunAppE(cmd *cobra.Command, args []string) error {
	if opts.TransferStrength < 0 || opts.TransferStrength > 100 {
		return fmt.Errorf("エラー: --strength は 0〜100 の範囲で指定してほしいのだ（指定値: %.1f）", opts.TransferStrength)
	}
	return nil
}

// Execute は、アプリケーションのメインエントリポイントなのだ。
// main.go から呼び出されて、cobra のコマンドライン解析を開始するのだよ。
func Execute() {
	clibase.Execute(
		"go-style-kit",
		addAppFlags,
		preRunAppE,
		analyzeCmd,
		promptCmd,
		transferCmd,
		presetsCmd,
	)
}
