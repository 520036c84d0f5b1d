package domain

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

// ExtractedStyleFeatures は外部の画像解析サービスが抽出した視覚特徴です。
// エンジンにとっては読み取り専用の入力であり、画像解析そのものは本ライブラリの責務外です。
type ExtractedStyleFeatures struct {
	DominantColors []string       `json:"dominant_colors"` // 出現頻度の高い順
	ColorHarmony   string         `json:"color_harmony"`
	Brightness     float64        `json:"brightness"` // 0〜100
	Contrast       float64        `json:"contrast"`   // 0〜100
	Saturation     float64        `json:"saturation"` // 0〜100
	DetectedStyles []ArtDirection `json:"detected_styles"`
	StyleVector    []float64      `json:"style_vector,omitempty"`
}

// HasStyle は検出済み画風の集合に指定の画風が含まれるかを返します。
func (f ExtractedStyleFeatures) HasStyle(dir ArtDirection) bool {
	for _, detected := range f.DetectedStyles {
		if detected == dir {
			return true
		}
	}
	return false
}

// CharacterStyleProfile はキャラクター1体分のスタイル状態を保持します。
// アバター生成・解析のたびに呼び出し元が更新し、ライフサイクルも呼び出し元が所有します。
type CharacterStyleProfile struct {
	CharacterID         string                  `json:"character_id"`
	CharacterName       string                  `json:"character_name"`
	AvatarURL           string                  `json:"avatar_url"`
	ThumbnailURL        string                  `json:"thumbnail_url"`
	Features            *ExtractedStyleFeatures `json:"features,omitempty"`
	AppliedStyleID      string                  `json:"applied_style_id"`
	StyleDeviationScore int                     `json:"style_deviation_score"` // 0 = 完全一致
	Overrides           *StyleOverrides         `json:"overrides,omitempty"`
	AnalyzedAt          time.Time               `json:"analyzed_at"`
	GeneratedAt         time.Time               `json:"generated_at"`
}

// String はプロフィールの概要を文字列で返すのだ。
func (p CharacterStyleProfile) String() string {
	return fmt.Sprintf("%s (%s)", p.CharacterName, p.CharacterID)
}

// GetProfiles はJSONバイト列からキャラクタープロフィールの一覧をパースして返します。
// この関数はステートレスであり、キャッシュを行いません。
func GetProfiles(profilesJSON []byte) ([]CharacterStyleProfile, error) {
	var profiles []CharacterStyleProfile
	if err := json.Unmarshal(profilesJSON, &profiles); err != nil {
		return nil, fmt.Errorf("キャラクタープロフィールのJSONパースに失敗しました: %w", err)
	}
	return profiles, nil
}

// LoadProfiles は指定されたファイルパスからJSONを読み込み、プロフィール一覧を返すのだ。
func LoadProfiles(path string) ([]CharacterStyleProfile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("キャストファイルの読み込みに失敗したのだ: %w", err)
	}
	return GetProfiles(data)
}

// GetStyleDefinition はJSONバイト列からスタイル定義をパースして返します。
func GetStyleDefinition(styleJSON []byte) (StyleDefinition, error) {
	var def StyleDefinition
	if err := json.Unmarshal(styleJSON, &def); err != nil {
		return StyleDefinition{}, fmt.Errorf("スタイル定義のJSONパースに失敗しました: %w", err)
	}
	if !def.ColorPalette.SaturationRange.Valid() || !def.ColorPalette.BrightnessRange.Valid() {
		return StyleDefinition{}, fmt.Errorf("スタイル定義 '%s' の彩度・明度レンジが min ≤ max を満たしていません", def.ID)
	}
	return def, nil
}

// LoadStyleDefinition は指定されたファイルパスからJSONを読み込み、スタイル定義を返すのだ。
func LoadStyleDefinition(path string) (StyleDefinition, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return StyleDefinition{}, fmt.Errorf("スタイル定義ファイルの読み込みに失敗したのだ: %w", err)
	}
	return GetStyleDefinition(data)
}

// ProfilesMap はキャラクターIDをキーとした検索用マップなのだ。
type ProfilesMap map[string]CharacterStyleProfile

// BuildProfilesMap はスライス形式のデータを検索効率の良いマップ形式に変換するのだ。
func BuildProfilesMap(profiles []CharacterStyleProfile) ProfilesMap {
	m := make(ProfilesMap, len(profiles))
	for _, p := range profiles {
		key := p.CharacterID
		if key == "" {
			key = p.CharacterName
		}
		m[key] = p
	}
	return m
}

// FindProfile はIDからプロフィールを特定します。見つからない場合は nil を返します。
func (m ProfilesMap) FindProfile(id string) *CharacterStyleProfile {
	if m == nil {
		return nil
	}
	if p, ok := m[id]; ok {
		res := p
		return &res
	}
	return nil
}
