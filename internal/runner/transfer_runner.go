package runner

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"path"

	"github.com/shouni/go-style-kit/internal/config"
	"github.com/shouni/go-style-kit/pkg/adapters"
	"github.com/shouni/go-style-kit/pkg/domain"
	"github.com/shouni/go-style-kit/pkg/prompts"

	imgdom "github.com/shouni/gemini-image-kit/pkg/domain"
	"github.com/shouni/go-remote-io/pkg/remoteio"
)

// TransferRunner はスタイル転写プランの生成と保存を担当する実行実体なのだ。
type TransferRunner struct {
	cfg    *config.Config
	reader remoteio.InputReader
	writer remoteio.OutputWriter
}

// NewTransferRunner は依存関係を注入して初期化します。
func NewTransferRunner(cfg *config.Config, reader remoteio.InputReader, writer remoteio.OutputWriter) *TransferRunner {
	return &TransferRunner{
		cfg:    cfg,
		reader: reader,
		writer: writer,
	}
}

// transferPlan は保存用の出力形式です。プロンプトの組に加えて、
// 生成クライアントへそのまま渡せるリクエスト一覧も同梱します。
type transferPlan struct {
	SourceID string                          `json:"source_id"`
	StyleID  string                          `json:"style_id"`
	Strength float64                         `json:"strength"`
	Prompts  map[string]domain.StylePrompt   `json:"prompts"`
	Requests []imgdom.ImageGenerationRequest `json:"requests"`
}

// Run はソースキャラクターのスタイルをターゲット群へ転写するプランを構築して保存するのだ。
func (tr *TransferRunner) Run(ctx context.Context) error {
	opts := tr.cfg.Options

	def, err := loadStyleDefinition(ctx, tr.reader, opts.StyleFile)
	if err != nil {
		return err
	}

	if len(opts.CastFiles) == 0 {
		return fmt.Errorf("転写にはキャストファイル（--cast-file）が必要なのだ")
	}

	data, err := readAll(ctx, tr.reader, opts.CastFiles[0])
	if err != nil {
		return fmt.Errorf("キャストファイル '%s' の読み込みに失敗しました: %w", opts.CastFiles[0], err)
	}
	profiles, err := domain.GetProfiles(data)
	if err != nil {
		return err
	}

	profilesMap := domain.BuildProfilesMap(profiles)
	source := profilesMap.FindProfile(opts.SourceID)
	if source == nil {
		return fmt.Errorf("ソースキャラクター '%s' がキャストに見つからないのだ", opts.SourceID)
	}

	targets := selectTargets(profiles, *source, opts.TargetIDs)
	if len(targets) == 0 {
		return fmt.Errorf("転写対象のターゲットが1人もいないのだ")
	}

	plan := prompts.PrepareStyleTransfer(*source, targets, def, opts.TransferStrength)
	requests := adapters.TransferRequests(plan, *source, targets, def)

	out := transferPlan{
		SourceID: source.CharacterID,
		StyleID:  def.ID,
		Strength: opts.TransferStrength,
		Prompts:  plan,
		Requests: requests,
	}

	encoded, err := json.MarshalIndent(out, "", "  ")
	if err != nil {
		return fmt.Errorf("転写プランのJSONエンコードに失敗しました: %w", err)
	}

	outputPath := path.Join(opts.OutputDir, "transfer_plan.json")
	if err := tr.writer.Write(ctx, outputPath, bytes.NewReader(encoded), "application/json"); err != nil {
		return fmt.Errorf("転写プランの保存に失敗しました: %w", err)
	}

	slog.Info("スタイル転写プランを構築したのだ",
		"source", source.CharacterID,
		"targets", len(targets),
		"strength", opts.TransferStrength,
		"output", outputPath,
	)
	return nil
}

// selectTargets は指定IDのターゲットを抽出します。未指定ならソース以外の全員です。
func selectTargets(profiles []domain.CharacterStyleProfile, source domain.CharacterStyleProfile, targetIDs []string) []domain.CharacterStyleProfile {
	if len(targetIDs) == 0 {
		targets := make([]domain.CharacterStyleProfile, 0, len(profiles))
		for _, p := range profiles {
			if p.CharacterID != source.CharacterID {
				targets = append(targets, p)
			}
		}
		return targets
	}

	wanted := make(map[string]struct{}, len(targetIDs))
	for _, id := range targetIDs {
		wanted[id] = struct{}{}
	}

	targets := make([]domain.CharacterStyleProfile, 0, len(targetIDs))
	for _, p := range profiles {
		if _, ok := wanted[p.CharacterID]; ok {
			targets = append(targets, p)
		}
	}
	return targets
}
