package runner

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"path"

	"github.com/shouni/go-style-kit/internal/config"
	"github.com/shouni/go-style-kit/pkg/prompts"

	"github.com/shouni/go-remote-io/pkg/remoteio"
)

// PromptRunner はスタイル付きプロンプトの合成と保存を担当する実行実体なのだ。
type PromptRunner struct {
	cfg    *config.Config
	reader remoteio.InputReader
	writer remoteio.OutputWriter
}

// NewPromptRunner は依存関係を注入して初期化します。
func NewPromptRunner(cfg *config.Config, reader remoteio.InputReader, writer remoteio.OutputWriter) *PromptRunner {
	return &PromptRunner{
		cfg:    cfg,
		reader: reader,
		writer: writer,
	}
}

// Run はベースプロンプトにスタイル定義を重ね、生成用プロンプトの組をJSONで保存するのだ。
func (pr *PromptRunner) Run(ctx context.Context) error {
	def, err := loadStyleDefinition(ctx, pr.reader, pr.cfg.Options.StyleFile)
	if err != nil {
		return err
	}

	sp := prompts.BuildStyledPrompt(pr.cfg.Options.BasePrompt, def, nil)

	data, err := json.MarshalIndent(sp, "", "  ")
	if err != nil {
		return fmt.Errorf("プロンプトのJSONエンコードに失敗しました: %w", err)
	}

	outputPath := path.Join(pr.cfg.Options.OutputDir, "styled_prompt.json")
	if err := pr.writer.Write(ctx, outputPath, bytes.NewReader(data), "application/json"); err != nil {
		return fmt.Errorf("プロンプトの保存に失敗しました: %w", err)
	}

	slog.Info("スタイル付きプロンプトを合成したのだ",
		"style", def.ID,
		"prompt_len", len(sp.Prompt),
		"output", outputPath,
	)
	return nil
}
