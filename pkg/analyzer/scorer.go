// Package analyzer は、抽出済みの視覚特徴とスタイル定義を突き合わせ、
// 逸脱スコアの算出とキャスト全体の一貫性レポート生成を行います。
// 画像そのものの解析は外部サービスの責務であり、本パッケージは数値計算のみを行います。
package analyzer

import (
	"math"

	"github.com/shouni/go-style-kit/pkg/colormetric"
	"github.com/shouni/go-style-kit/pkg/domain"
)

// ペナルティ項の重み。合計は 1.0 だが、発火しなかった項の重みで再正規化はしない。
// レポート側の閾値（60/70/80）はこのスケールに対して調整されているため、
// ここの算術を変えるとレポートの判定が全て狂う。
const (
	colorWeight        = 0.40
	artDirectionWeight = 0.35
	saturationWeight   = 0.15
	brightnessWeight   = 0.10
)

// CalculateStyleDeviation はキャラクター1体のスタイル逸脱度を 0〜100 で返します。
// 0 が完全一致です。特徴が未抽出のプロフィールは「不明」ではなく
// 「完全な不一致」として 100 を返します。
func CalculateStyleDeviation(profile domain.CharacterStyleProfile, def domain.StyleDefinition) int {
	if profile.Features == nil {
		return 100
	}
	f := *profile.Features

	deviation := 0.0

	// カラーパレット項: スタイル側に primary color が1つ以上あるときだけ発火する。
	if len(def.ColorPalette.PrimaryColors) > 0 {
		sim := colormetric.PaletteSimilarity(f.DominantColors, def.ColorPalette.PrimaryColors)
		deviation += (100 - sim) * colorWeight
	}

	// 画風項: 検出済み画風の集合にスタイルの画風が含まれなければ満額ペナルティ。
	if !f.HasStyle(def.ArtDirection) {
		deviation += artDirectionWeight * 100
	}

	// 彩度レンジ項。
	if !def.ColorPalette.SaturationRange.Contains(f.Saturation) {
		deviation += saturationWeight * 100
	}

	// 明度レンジ項。
	if !def.ColorPalette.BrightnessRange.Contains(f.Brightness) {
		deviation += brightnessWeight * 100
	}

	return clampScore(deviation)
}

// clampScore は [0,100] へのクランプと四捨五入を行います。
func clampScore(v float64) int {
	if v < 0 {
		v = 0
	}
	if v > 100 {
		v = 100
	}
	return int(math.Round(v))
}
