// Package colormetric は、16進カラー同士・パレット同士の知覚的な類似度を 0〜100 で算出します。
// すべての関数は全域関数であり、不正な入力はエラーではなく最悪値（類似度 0）に写像されます。
package colormetric

import (
	"math"
	"regexp"
	"strings"

	"github.com/lucasb-eyer/go-colorful"

	"github.com/shouni/go-style-kit/pkg/domain"
)

// DefaultTolerance はパレット所属判定のデフォルト許容幅です。
const DefaultTolerance = 20.0

// 厳密な6桁16進カラーのみを受け付けます（先頭の # は省略可）。
var hexPattern = regexp.MustCompile(`^#?[0-9a-fA-F]{6}$`)

// チャンネル重みは人間の緑感度を反映した R:2 G:4 B:3 です。
const (
	weightRed   = 2.0
	weightGreen = 4.0
	weightBlue  = 3.0
)

// maxWeightedDistance は重み付き距離の理論最大値（黒と白の距離）です。
// sqrt(2+4+3) * 255 = 765 になります。
var maxWeightedDistance = math.Sqrt(weightRed+weightGreen+weightBlue) * 255

// parseHex は厳密な6桁16進表記のみを RGB に変換します。
func parseHex(hex string) (colorful.Color, bool) {
	if !hexPattern.MatchString(hex) {
		return colorful.Color{}, false
	}
	if !strings.HasPrefix(hex, "#") {
		hex = "#" + hex
	}
	c, err := colorful.Hex(hex)
	if err != nil {
		return colorful.Color{}, false
	}
	return c, true
}

// ColorSimilarity は2色の類似度を 0〜100 で返します。
// どちらかが不正な16進表記なら 0、同一色なら厳密に 100 を返します。
func ColorSimilarity(hexA, hexB string) float64 {
	ca, okA := parseHex(hexA)
	cb, okB := parseHex(hexB)
	if !okA || !okB {
		return 0
	}

	ra, ga, ba := ca.RGB255()
	rb, gb, bb := cb.RGB255()

	dr := float64(ra) - float64(rb)
	dg := float64(ga) - float64(gb)
	db := float64(ba) - float64(bb)

	dist := math.Sqrt(weightRed*dr*dr + weightGreen*dg*dg + weightBlue*db*db)
	return (1 - dist/maxWeightedDistance) * 100
}

// PaletteSimilarity はパレットAの各色について、パレットB内の最良一致を取り、その平均を返します。
// どちらかが空なら 0 です。実装上は非対称ですが、呼び出し側は常に
// （キャラクターの色, スタイルの色）の順で渡す規約です。
func PaletteSimilarity(paletteA, paletteB []string) float64 {
	if len(paletteA) == 0 || len(paletteB) == 0 {
		return 0
	}

	total := 0.0
	for _, a := range paletteA {
		best := 0.0
		for _, b := range paletteB {
			if sim := ColorSimilarity(a, b); sim > best {
				best = sim
			}
		}
		total += best
	}
	return total / float64(len(paletteA))
}

// IsColorInPalette は、色がパレット制約を満たすかを判定します。
// 許容色（primary/secondary/accent）が未定義なら、すべての色を通します。
// 許容色への最良一致が (100 - tolerance) 以上なら採用します。
//
// 禁止色リストは許容判定が不成立だった経路でのみ参照されます。
// つまり許容色に十分近い色は、禁止色にも近くてもブロックされません。
// この非対称性は既存仕様の再現であり、意図的に温存しています。
func IsColorInPalette(color string, constraint domain.ColorPaletteConstraint, tolerance float64) bool {
	allowed := constraint.AllowedColors()
	if len(allowed) == 0 {
		return true
	}

	threshold := 100 - tolerance
	best := 0.0
	for _, a := range allowed {
		if sim := ColorSimilarity(color, a); sim > best {
			best = sim
		}
	}
	if best >= threshold {
		return true
	}

	for _, f := range constraint.ForbiddenColors {
		if ColorSimilarity(color, f) >= threshold {
			return false
		}
	}
	return false
}
