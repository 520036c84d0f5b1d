package runner

import (
	"bytes"
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"path"
	"strings"

	"github.com/shouni/go-style-kit/internal/config"
	"github.com/shouni/go-style-kit/pkg/analyzer"
	"github.com/shouni/go-style-kit/pkg/domain"
	"github.com/shouni/go-style-kit/pkg/report"

	"github.com/patrickmn/go-cache"
	"github.com/shouni/go-remote-io/pkg/remoteio"
	"golang.org/x/sync/errgroup"
)

// AnalyzeRunner はキャストJSONの読み込みからレポート保存までを実行する実体なのだ。
// スコアリング自体は pkg/analyzer の純粋関数に委ね、ここではIOとキャッシュのみを扱う。
type AnalyzeRunner struct {
	cfg         *config.Config
	reader      remoteio.InputReader
	writer      remoteio.OutputWriter
	reportCache *cache.Cache
	renderer    *report.MarkdownRenderer
}

// NewAnalyzeRunner は依存関係を注入して初期化します。
func NewAnalyzeRunner(cfg *config.Config, reader remoteio.InputReader, writer remoteio.OutputWriter, reportCache *cache.Cache, renderer *report.MarkdownRenderer) *AnalyzeRunner {
	return &AnalyzeRunner{
		cfg:         cfg,
		reader:      reader,
		writer:      writer,
		reportCache: reportCache,
		renderer:    renderer,
	}
}

// Run は、スタイル定義を読み込んだうえで、指定された全キャストファイルを並行解析するのだ。
// 並行なのはファイル単位のオーケストレーションであり、エンジン自体は同期的な純粋計算なのだ。
func (ar *AnalyzeRunner) Run(ctx context.Context) error {
	def, err := loadStyleDefinition(ctx, ar.reader, ar.cfg.Options.StyleFile)
	if err != nil {
		return err
	}

	slog.Info("一貫性解析を開始するのだ",
		"project", ar.cfg.ProjectID,
		"style", def.ID,
		"cast_files", len(ar.cfg.Options.CastFiles),
	)

	eg, egCtx := errgroup.WithContext(ctx)
	for _, castFile := range ar.cfg.Options.CastFiles {
		eg.Go(func() error {
			return ar.analyzeOne(egCtx, def, castFile)
		})
	}
	return eg.Wait()
}

// analyzeOne は1ファイル分のキャストを解析し、JSONとMarkdownの両形式で保存します。
func (ar *AnalyzeRunner) analyzeOne(ctx context.Context, def domain.StyleDefinition, castFile string) error {
	data, err := readAll(ctx, ar.reader, castFile)
	if err != nil {
		return fmt.Errorf("キャストファイル '%s' の読み込みに失敗しました: %w", castFile, err)
	}

	rep, err := ar.reportFor(def, castFile, data)
	if err != nil {
		return err
	}

	baseName := strings.TrimSuffix(path.Base(castFile), path.Ext(castFile))

	jsonBytes, err := json.MarshalIndent(rep, "", "  ")
	if err != nil {
		return fmt.Errorf("レポートのJSONエンコードに失敗しました: %w", err)
	}

	jsonPath := path.Join(ar.cfg.Options.OutputDir, baseName+"_report.json")
	if err := ar.writer.Write(ctx, jsonPath, bytes.NewReader(jsonBytes), "application/json"); err != nil {
		return fmt.Errorf("レポートの保存に失敗しました: %w", err)
	}

	mdPath := path.Join(ar.cfg.Options.OutputDir, baseName+"_report.md")
	md := ar.renderer.Render(rep)
	if err := ar.writer.Write(ctx, mdPath, strings.NewReader(md), "text/markdown; charset=utf-8"); err != nil {
		return fmt.Errorf("Markdownレポートの保存に失敗しました: %w", err)
	}

	slog.Info("レポートを保存したのだ",
		"cast", castFile,
		"overall", rep.OverallScore,
		"characters", len(rep.CharacterScores),
		"json", jsonPath,
		"markdown", mdPath,
	)
	return nil
}

// reportFor は入力のフィンガープリントでTTLキャッシュを引き、なければ解析を実行します。
// スタイル定義のバージョンもキーに含めるため、定義の更新後は必ず再計算されるのだ。
func (ar *AnalyzeRunner) reportFor(def domain.StyleDefinition, castFile string, data []byte) (domain.StyleConsistencyReport, error) {
	key := cacheKey(def, data)

	if ar.reportCache != nil {
		if cached, ok := ar.reportCache.Get(key); ok {
			if rep, ok := cached.(domain.StyleConsistencyReport); ok {
				slog.Debug("キャッシュ済みレポートを再利用するのだ", "cast", castFile)
				return rep, nil
			}
		}
	}

	profiles, err := domain.GetProfiles(data)
	if err != nil {
		return domain.StyleConsistencyReport{}, fmt.Errorf("キャストファイル '%s' のパースに失敗しました: %w", castFile, err)
	}

	rep := analyzer.GenerateConsistencyReport(ar.cfg.ProjectID, def, profiles)

	if ar.reportCache != nil {
		ar.reportCache.Set(key, rep, ar.cfg.ReportCacheTTL)
	}
	return rep, nil
}

// cacheKey はキャストのバイト列とスタイルの識別情報からキャッシュキーを導出します。
func cacheKey(def domain.StyleDefinition, data []byte) string {
	h := sha256.New()
	h.Write(data)
	fmt.Fprintf(h, "%s:%d", def.ID, def.Version)
	return "report:" + hex.EncodeToString(h.Sum(nil))[:16]
}

// readAll は remoteio のリーダーからバイト列を読み切る共通ヘルパーなのだ。
func readAll(ctx context.Context, reader remoteio.InputReader, uri string) ([]byte, error) {
	rc, err := reader.Open(ctx, uri)
	if err != nil {
		return nil, err
	}
	defer rc.Close()

	return io.ReadAll(rc)
}

// loadStyleDefinition はローカルまたは gs:// のスタイル定義JSONを読み込むのだ。
func loadStyleDefinition(ctx context.Context, reader remoteio.InputReader, uri string) (domain.StyleDefinition, error) {
	data, err := readAll(ctx, reader, uri)
	if err != nil {
		return domain.StyleDefinition{}, fmt.Errorf("スタイル定義 '%s' の読み込みに失敗しました: %w", uri, err)
	}
	return domain.GetStyleDefinition(data)
}
