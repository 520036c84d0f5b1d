package domain

import "time"

// DeviationType は検出された逸脱の分類です。
type DeviationType string

const (
	DeviationColor       DeviationType = "color"
	DeviationLighting    DeviationType = "lighting"
	DeviationArtStyle    DeviationType = "art_style"
	DeviationComposition DeviationType = "composition"
)

// Severity は逸脱や推奨アクションの深刻度です。
type Severity string

const (
	SeverityLow    Severity = "low"
	SeverityMedium Severity = "medium"
	SeverityHigh   Severity = "high"
)

// ActionType は推奨アクションの種類です。
type ActionType string

const (
	ActionRegenerate ActionType = "regenerate"
	ActionAdjust     ActionType = "adjust"
	ActionOverride   ActionType = "override"
)

// CharacterStyleScore はキャラクター1体分の軸別スコアです。
// スコアはすべて 0〜100 で、100 がスタイルへの完全一致を意味します。
type CharacterStyleScore struct {
	CharacterID       string `json:"character_id"`
	CharacterName     string `json:"character_name"`
	OverallScore      int    `json:"overall_score"`
	ColorScore        int    `json:"color_score"`
	LightingScore     int    `json:"lighting_score"`
	ArtStyleScore     int    `json:"art_style_score"`
	NeedsRegeneration bool   `json:"needs_regeneration"` // OverallScore < 60 で true
}

// StyleDeviation は特定キャラクターに検出された個別の逸脱です。
type StyleDeviation struct {
	CharacterID   string        `json:"character_id"`
	CharacterName string        `json:"character_name"`
	Type          DeviationType `json:"type"`
	Severity      Severity      `json:"severity"`
	Description   string        `json:"description"`
	Suggestion    string        `json:"suggestion"`
}

// StyleRecommendation はキャスト全体への推奨アクションです。
type StyleRecommendation struct {
	Action       ActionType `json:"action"`
	CharacterIDs []string   `json:"character_ids"`
	Description  string     `json:"description"`
	Priority     Severity   `json:"priority"`
}

// StyleConsistencyReport は解析実行時点のイミュータブルなスナップショットです。
// 生成後に書き換えられることはなく、毎回新しいインスタンスが作られます。
// 集計スコアは各キャラクターのスコアの算術平均を四捨五入したものです。
type StyleConsistencyReport struct {
	ProjectID       string                `json:"project_id"`
	StyleID         string                `json:"style_id"`
	AnalyzedAt      time.Time             `json:"analyzed_at"`
	OverallScore    int                   `json:"overall_score"`
	ColorScore      int                   `json:"color_score"`
	LightingScore   int                   `json:"lighting_score"`
	ArtStyleScore   int                   `json:"art_style_score"`
	CharacterScores []CharacterStyleScore `json:"character_scores"`
	Deviations      []StyleDeviation      `json:"deviations"`
	Recommendations []StyleRecommendation `json:"recommendations"`
}

// StylePrompt は画像生成APIへそのまま渡せるプロンプトの組です。
// トランスポートや実際の生成呼び出しは本ライブラリの責務外です。
type StylePrompt struct {
	Prompt         string `json:"prompt"`
	NegativePrompt string `json:"negative_prompt"`
}
