package domain

import (
	"fmt"
	"math/rand/v2"
	"strconv"
	"time"
)

// ArtDirection は作品全体の方向性を示す画風の列挙です。
type ArtDirection string

const (
	ArtDirectionAnime      ArtDirection = "anime"
	ArtDirectionRealistic  ArtDirection = "realistic"
	ArtDirectionPainterly  ArtDirection = "painterly"
	ArtDirectionComic      ArtDirection = "comic"
	ArtDirectionPixel      ArtDirection = "pixel"
	ArtDirectionChibi      ArtDirection = "chibi"
	ArtDirectionSemiReal   ArtDirection = "semi-realistic"
	ArtDirectionWatercolor ArtDirection = "watercolor"
	ArtDirectionSketch     ArtDirection = "sketch"
	ArtDirectionCustom     ArtDirection = "custom"
)

// ArtDirections はサポートする全画風の一覧です。プリセット表の網羅性チェックに使います。
var ArtDirections = []ArtDirection{
	ArtDirectionAnime,
	ArtDirectionRealistic,
	ArtDirectionPainterly,
	ArtDirectionComic,
	ArtDirectionPixel,
	ArtDirectionChibi,
	ArtDirectionSemiReal,
	ArtDirectionWatercolor,
	ArtDirectionSketch,
	ArtDirectionCustom,
}

// Valid は既知の画風かどうかを返します。
func (d ArtDirection) Valid() bool {
	for _, known := range ArtDirections {
		if d == known {
			return true
		}
	}
	return false
}

// ConsistencyLevel はスタイル逸脱をどこまで許容するかの方針です。
type ConsistencyLevel string

const (
	ConsistencyStrict   ConsistencyLevel = "strict"
	ConsistencyModerate ConsistencyLevel = "moderate"
	ConsistencyLoose    ConsistencyLevel = "loose"
)

// LightingConsistency はライティングの統一方針です。
type LightingConsistency string

const (
	LightingSame     LightingConsistency = "same"
	LightingSimilar  LightingConsistency = "similar"
	LightingThematic LightingConsistency = "thematic"
	LightingCustom   LightingConsistency = "custom"
)

// ShadowStyle は影の描画方針です。
type ShadowStyle string

const (
	ShadowSoft    ShadowStyle = "soft"
	ShadowHard    ShadowStyle = "hard"
	ShadowAmbient ShadowStyle = "ambient"
)

// Range は 0〜100 で表現する閉区間 [Min, Max] です。
type Range struct {
	Min float64 `json:"min"`
	Max float64 `json:"max"`
}

// Contains は値が区間内（両端を含む）にあるかを返します。
func (r Range) Contains(v float64) bool {
	return v >= r.Min && v <= r.Max
}

// Valid は Min ≤ Max の不変条件を満たしているかを返します。
func (r Range) Valid() bool {
	return r.Min <= r.Max
}

// ColorPaletteConstraint はスタイルが許容する配色の制約です。
// 許容色が一つも定義されていない場合、パレット判定はすべての色を通します。
type ColorPaletteConstraint struct {
	PrimaryColors   []string `json:"primary_colors"`
	SecondaryColors []string `json:"secondary_colors"`
	AccentColors    []string `json:"accent_colors"`
	ForbiddenColors []string `json:"forbidden_colors"`
	ColorHarmony    string   `json:"color_harmony"`
	SaturationRange Range    `json:"saturation_range"`
	BrightnessRange Range    `json:"brightness_range"`
}

// AllowedColors は primary / secondary / accent を結合した許容色一覧を返します。
func (c ColorPaletteConstraint) AllowedColors() []string {
	allowed := make([]string, 0, len(c.PrimaryColors)+len(c.SecondaryColors)+len(c.AccentColors))
	allowed = append(allowed, c.PrimaryColors...)
	allowed = append(allowed, c.SecondaryColors...)
	allowed = append(allowed, c.AccentColors...)
	return allowed
}

// LightingConstraint はスタイルが要求するライティングの制約です。
type LightingConstraint struct {
	Type              string      `json:"type"`
	Direction         string      `json:"direction"`
	IntensityRange    Range       `json:"intensity_range"`
	ShadowStyle       ShadowStyle `json:"shadow_style"`
	HighlightStrength float64     `json:"highlight_strength"`
}

// StyleDefinition はプロジェクト全体の視覚スタイルを定義する中心的な値オブジェクトです。
// Version は変更のたびに単調増加し、UpdatedAt は常に最終変更時刻を指します。
type StyleDefinition struct {
	ID                  string                 `json:"id"`
	Name                string                 `json:"name"`
	ArtDirection        ArtDirection           `json:"art_direction"`
	ColorPalette        ColorPaletteConstraint `json:"color_palette"`
	Lighting            LightingConstraint     `json:"lighting"`
	PromptPrefix        string                 `json:"prompt_prefix"`
	PromptSuffix        string                 `json:"prompt_suffix"`
	NegativePrompt      string                 `json:"negative_prompt"`
	StyleKeywords       []string               `json:"style_keywords"`
	AvoidKeywords       []string               `json:"avoid_keywords"`
	ArtisticInfluences  []string               `json:"artistic_influences"`
	ReferenceImages     []string               `json:"reference_images"`
	ConsistencyLevel    ConsistencyLevel       `json:"consistency_level"`
	LightingConsistency LightingConsistency    `json:"lighting_consistency"`
	Version             int                    `json:"version"`
	CreatedAt           time.Time              `json:"created_at"`
	UpdatedAt           time.Time              `json:"updated_at"`
}

// String はスタイルの概要を文字列で返すのだ。
func (d StyleDefinition) String() string {
	return fmt.Sprintf("%s [%s] v%d", d.Name, d.ArtDirection, d.Version)
}

// Touch は変更をバージョンと更新時刻に反映します。
// フィールドを書き換えた呼び出し元は必ずこれを呼ぶ契約です。
func (d *StyleDefinition) Touch() {
	d.Version++
	d.UpdatedAt = time.Now()
}

// NewStyleID は `style-{timestamp}-{random}` 形式の一意なIDを発行します。
// プロジェクト内で一意であれば十分なので、暗号学的な強度は求めていません。
func NewStyleID() string {
	suffix := strconv.FormatUint(rand.Uint64()%((1<<45)-1), 36)
	return fmt.Sprintf("style-%d-%s", time.Now().UnixMilli(), suffix)
}

// StyleOverrides は StyleDefinition への部分的な上書きです。
// nil のフィールドは「変更しない」を意味し、ポインタで明示します。
// ColorPalette / Lighting はネスト構造ごと丸ごと差し替えます（深いマージはしません）。
type StyleOverrides struct {
	Name                *string                 `json:"name,omitempty"`
	ArtDirection        *ArtDirection           `json:"art_direction,omitempty"`
	ColorPalette        *ColorPaletteConstraint `json:"color_palette,omitempty"`
	Lighting            *LightingConstraint     `json:"lighting,omitempty"`
	PromptPrefix        *string                 `json:"prompt_prefix,omitempty"`
	PromptSuffix        *string                 `json:"prompt_suffix,omitempty"`
	NegativePrompt      *string                 `json:"negative_prompt,omitempty"`
	StyleKeywords       []string                `json:"style_keywords,omitempty"`
	AvoidKeywords       []string                `json:"avoid_keywords,omitempty"`
	ArtisticInfluences  []string                `json:"artistic_influences,omitempty"`
	ReferenceImages     []string                `json:"reference_images,omitempty"`
	ConsistencyLevel    *ConsistencyLevel       `json:"consistency_level,omitempty"`
	LightingConsistency *LightingConsistency    `json:"lighting_consistency,omitempty"`
}

// MergeStyleDefinition は base に overrides をフィールド単位で重ねた新しい定義を返します。
// 上書き側が常に勝ちます。純粋なコピーであり、Version や UpdatedAt には触れません。
// 永続的な変更として扱う場合は、呼び出し元が結果に対して Touch を呼びます。
func MergeStyleDefinition(base StyleDefinition, o *StyleOverrides) StyleDefinition {
	merged := copyStyleDefinition(base)
	if o == nil {
		return merged
	}

	if o.Name != nil {
		merged.Name = *o.Name
	}
	if o.ArtDirection != nil {
		merged.ArtDirection = *o.ArtDirection
	}
	if o.ColorPalette != nil {
		merged.ColorPalette = copyColorPalette(*o.ColorPalette)
	}
	if o.Lighting != nil {
		merged.Lighting = *o.Lighting
	}
	if o.PromptPrefix != nil {
		merged.PromptPrefix = *o.PromptPrefix
	}
	if o.PromptSuffix != nil {
		merged.PromptSuffix = *o.PromptSuffix
	}
	if o.NegativePrompt != nil {
		merged.NegativePrompt = *o.NegativePrompt
	}
	if o.StyleKeywords != nil {
		merged.StyleKeywords = cloneStrings(o.StyleKeywords)
	}
	if o.AvoidKeywords != nil {
		merged.AvoidKeywords = cloneStrings(o.AvoidKeywords)
	}
	if o.ArtisticInfluences != nil {
		merged.ArtisticInfluences = cloneStrings(o.ArtisticInfluences)
	}
	if o.ReferenceImages != nil {
		merged.ReferenceImages = cloneStrings(o.ReferenceImages)
	}
	if o.ConsistencyLevel != nil {
		merged.ConsistencyLevel = *o.ConsistencyLevel
	}
	if o.LightingConsistency != nil {
		merged.LightingConsistency = *o.LightingConsistency
	}
	return merged
}

// copyStyleDefinition はスライスまで含めた防御的コピーを行う内部ヘルパーです。
func copyStyleDefinition(d StyleDefinition) StyleDefinition {
	copied := d
	copied.ColorPalette = copyColorPalette(d.ColorPalette)
	copied.StyleKeywords = cloneStrings(d.StyleKeywords)
	copied.AvoidKeywords = cloneStrings(d.AvoidKeywords)
	copied.ArtisticInfluences = cloneStrings(d.ArtisticInfluences)
	copied.ReferenceImages = cloneStrings(d.ReferenceImages)
	return copied
}

func copyColorPalette(c ColorPaletteConstraint) ColorPaletteConstraint {
	copied := c
	copied.PrimaryColors = cloneStrings(c.PrimaryColors)
	copied.SecondaryColors = cloneStrings(c.SecondaryColors)
	copied.AccentColors = cloneStrings(c.AccentColors)
	copied.ForbiddenColors = cloneStrings(c.ForbiddenColors)
	return copied
}

// cloneStrings は内部キャッシュや共有スライスの意図しない書き換えを防ぐコピーヘルパーです。
func cloneStrings(src []string) []string {
	if src == nil {
		return nil
	}
	copied := make([]string, len(src))
	copy(copied, src)
	return copied
}
