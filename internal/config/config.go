package config

import (
	"time"

	"github.com/shouni/go-utils/envutil"
)

// デフォルト値の定義なのだ
const (
	DefaultProjectID    = "default-project"
	DefaultStyleFile    = "examples/style.json" // スタイル定義を記述したJSONパス
	DefaultCastFile     = "examples/cast.json"  // キャスト（プロフィール一覧）を記述したJSONパス
	DefaultOutputDir    = "output"              // レポートやプランの保存先ディレクトリなのだ
	DefaultArtDirection = "anime"               // スタイル新規作成時のデフォルト画風
	DefaultTransfer     = 80.0                  // スタイル転写のデフォルト強度
	DefaultReportTTL    = 10 * time.Minute      // 同一入力に対するレポートキャッシュの保持時間
)

// Config はアプリケーション全体の環境設定を保持する構造体なのだ。
type Config struct {
	ProjectID      string
	ReportCacheTTL time.Duration

	Options GenerateOptions
}

// LoadConfig は環境変数から設定を読み込み、構造体を返すのだ！
func LoadConfig() *Config {
	return &Config{
		ProjectID:      envutil.GetEnv("STYLE_PROJECT_ID", DefaultProjectID),
		ReportCacheTTL: DefaultReportTTL,
	}
}

// GenerateOptions は CLI フラグから渡される実行時のパラメータなのだ。
type GenerateOptions struct {
	// 入力関連
	StyleFile string   // --style-file
	CastFiles []string // --cast-file（複数指定可）

	// 出力関連
	OutputDir string // --output-dir

	// prompt コマンド用
	BasePrompt string // --base-prompt

	// transfer コマンド用
	SourceID         string   // --source
	TargetIDs        []string // --target（未指定ならソース以外の全員なのだ）
	TransferStrength float64  // --strength: 0〜100

	// presets / スタイル新規作成用
	ArtDirection string // --art-direction
	StyleName    string // --style-name
}
