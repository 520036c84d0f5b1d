package builder

import (
	"fmt"

	"github.com/shouni/go-style-kit/internal/runner"
	"github.com/shouni/go-style-kit/pkg/report"
)

// BuildAnalyzeRunner はキャスト全体の一貫性解析を担当する Runner を構築します。
func BuildAnalyzeRunner(appCtx *AppContext) (*runner.AnalyzeRunner, error) {
	if appCtx.Reader == nil || appCtx.Writer == nil {
		return nil, fmt.Errorf("AnalyzeRunnerの構築にはReaderとWriterが必要なのだ")
	}

	return runner.NewAnalyzeRunner(
		appCtx.Config,
		appCtx.Reader,
		appCtx.Writer,
		appCtx.ReportCache,
		report.NewMarkdownRenderer(),
	), nil
}

// BuildPromptRunner はスタイル付きプロンプト合成を担当する Runner を構築します。
func BuildPromptRunner(appCtx *AppContext) (*runner.PromptRunner, error) {
	if appCtx.Reader == nil || appCtx.Writer == nil {
		return nil, fmt.Errorf("PromptRunnerの構築にはReaderとWriterが必要なのだ")
	}

	return runner.NewPromptRunner(appCtx.Config, appCtx.Reader, appCtx.Writer), nil
}

// BuildTransferRunner はスタイル転写プランの生成を担当する Runner を構築します。
func BuildTransferRunner(appCtx *AppContext) (*runner.TransferRunner, error) {
	if appCtx.Reader == nil || appCtx.Writer == nil {
		return nil, fmt.Errorf("TransferRunnerの構築にはReaderとWriterが必要なのだ")
	}

	return runner.NewTransferRunner(appCtx.Config, appCtx.Reader, appCtx.Writer), nil
}
