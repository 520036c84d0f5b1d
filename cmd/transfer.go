package cmd

import (
	"fmt"
	"log/slog"

	"github.com/shouni/go-style-kit/internal/config"
	"github.com/shouni/go-style-kit/internal/pipeline"

	"github.com/spf13/cobra"
)

// transferCmd は、ソースキャラクターのスタイルをターゲット群へ転写するプランを作るのだ。
var transferCmd = &cobra.Command{
	Use:   "transfer",
	Short: "スタイル転写プランを構築するのだ。",
	Long: `確立済みのソースキャラクターの見た目を他のキャラクターへ揃えるための
プロンプト一式を構築するのだ。強度が100未満の間はターゲットの
アイデンティティ保持句が自動で付与されるのだよ。`,
	RunE: transferCommand,
}

func transferCommand(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	if opts.SourceID == "" {
		return fmt.Errorf("転写元キャラクター（--source）を指定してほしいのだ")
	}

	cfg := config.LoadConfig()
	cfg.Options = opts

	slog.Info("スタイル転写プランの構築を起動するのだ！",
		"source", opts.SourceID,
		"targets", opts.TargetIDs,
		"strength", opts.TransferStrength)

	return pipeline.ExecuteTransfer(ctx, cfg)
}
