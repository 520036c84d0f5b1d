// Package adapters は、エンジンの出力（プロンプトの組）を外部の画像生成クライアントが
// 受け取るリクエスト型へ写像します。ネットワーク呼び出しは一切行いません。
package adapters

import (
	"crypto/sha256"
	"encoding/binary"

	imgdom "github.com/shouni/gemini-image-kit/pkg/domain"

	"github.com/shouni/go-style-kit/pkg/domain"
)

// PortraitAspectRatio はキャラクターポートレートの推奨アスペクト比です。
const PortraitAspectRatio = "3:4"

// SeedForCharacter はキャラクター名から決定論的なシード値を生成します。
// 同じ名前なら常に同じシードとなり、再生成時の見た目のブレを抑えます。
func SeedForCharacter(name string) int64 {
	hash := sha256.Sum256([]byte(name))
	seed := int32(binary.BigEndian.Uint32(hash[:4]))
	// シード値は正の数が望ましいため、最上位ビットを落とすのが安全なのだ
	return int64(seed & 0x7FFFFFFF)
}

// ToGenerationRequest はプロンプトの組とプロフィールから生成リクエストを組み立てます。
// 参照画像はスタイル定義側を優先し、なければキャラクター自身のアバターを使います。
func ToGenerationRequest(sp domain.StylePrompt, profile domain.CharacterStyleProfile, def domain.StyleDefinition) imgdom.ImageGenerationRequest {
	ref := profile.AvatarURL
	if len(def.ReferenceImages) > 0 {
		ref = def.ReferenceImages[0]
	}

	seed := SeedForCharacter(profile.CharacterName)

	return imgdom.ImageGenerationRequest{
		Prompt:         sp.Prompt,
		NegativePrompt: sp.NegativePrompt,
		AspectRatio:    PortraitAspectRatio,
		ReferenceURL:   ref,
		Seed:           &seed,
	}
}

// TransferRequests はスタイル転写プランを生成リクエストの一覧に変換します。
// ソースキャラクターのアバターを参照画像として各ターゲットに引き回します。
func TransferRequests(plan map[string]domain.StylePrompt, source domain.CharacterStyleProfile, targets []domain.CharacterStyleProfile, def domain.StyleDefinition) []imgdom.ImageGenerationRequest {
	reqs := make([]imgdom.ImageGenerationRequest, 0, len(targets))

	for _, target := range targets {
		sp, ok := plan[target.CharacterID]
		if !ok {
			continue
		}

		req := ToGenerationRequest(sp, target, def)
		if source.AvatarURL != "" {
			req.ReferenceURL = source.AvatarURL
		}
		reqs = append(reqs, req)
	}

	return reqs
}
