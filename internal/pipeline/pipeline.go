package pipeline

import (
	"context"
	"fmt"

	"github.com/shouni/go-style-kit/internal/builder"
	"github.com/shouni/go-style-kit/internal/config"

	"github.com/patrickmn/go-cache"
	"github.com/shouni/go-remote-io/pkg/gcsfactory"
)

// ExecuteAnalyze は、スタイル定義とキャストJSONを読み込み、
// 一貫性レポートの生成と保存までを一気通貫で実行するのだ。
func ExecuteAnalyze(ctx context.Context, cfg *config.Config) error {
	appCtx, err := setupAppContext(ctx, cfg)
	if err != nil {
		return err
	}

	analyzeRunner, err := builder.BuildAnalyzeRunner(appCtx)
	if err != nil {
		return fmt.Errorf("AnalyzeRunnerの構築に失敗したのだ: %w", err)
	}

	return analyzeRunner.Run(ctx)
}

// ExecutePrompt は、ベースプロンプトへのスタイル合成を実行するのだ。
func ExecutePrompt(ctx context.Context, cfg *config.Config) error {
	appCtx, err := setupAppContext(ctx, cfg)
	if err != nil {
		return err
	}

	promptRunner, err := builder.BuildPromptRunner(appCtx)
	if err != nil {
		return fmt.Errorf("PromptRunnerの構築に失敗したのだ: %w", err)
	}

	return promptRunner.Run(ctx)
}

// ExecuteTransfer は、スタイル転写プランの構築と保存を実行するのだ。
func ExecuteTransfer(ctx context.Context, cfg *config.Config) error {
	appCtx, err := setupAppContext(ctx, cfg)
	if err != nil {
		return err
	}

	transferRunner, err := builder.BuildTransferRunner(appCtx)
	if err != nil {
		return fmt.Errorf("TransferRunnerの構築に失敗したのだ: %w", err)
	}

	return transferRunner.Run(ctx)
}

// setupAppContext は、提供された設定と共有コンポーネントを使用して、アプリケーションコンテキストを初期化して返すのだ。
// リーダー/ライターはローカルパスと gs:// の両方を透過的に扱えるファクトリから取得するのだ。
func setupAppContext(ctx context.Context, cfg *config.Config) (*builder.AppContext, error) {
	gcsFactory, err := gcsfactory.NewGCSClientFactory(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to create GCS client factory: %w", err)
	}

	reader, err := gcsFactory.NewInputReader()
	if err != nil {
		return nil, err
	}
	writer, err := gcsFactory.NewOutputWriter()
	if err != nil {
		return nil, err
	}

	reportCache := cache.New(cfg.ReportCacheTTL, 2*cfg.ReportCacheTTL)

	appCtx := builder.NewAppContext(cfg, reader, writer, reportCache)
	return &appCtx, nil
}
