package domain

import "errors"

// FeatureType は家具写真に適用する変換モードの種別です。
type FeatureType string

const (
	// FeatureAngle は撮影アングル変更（別視点への回転）です。
	FeatureAngle FeatureType = "ANGLE"
	// FeatureScene は背景シーン差し替え（別環境への合成）です。
	FeatureScene FeatureType = "SCENE"
)

var (
	// ErrEmptyImage は入力画像が空であることを示します。
	ErrEmptyImage = errors.New("image data is required")
	// ErrUnknownFeature は未定義の変換モードが指定されたことを示します。
	ErrUnknownFeature = errors.New("unknown feature type")
	// ErrUnknownOption はカタログに存在しないオプションが指定されたことを示します。
	ErrUnknownOption = errors.New("option is not in the catalog")
)

// GenerationRequest は単一の画像生成要求です。構築後は不変として扱います。
// Option は固定カタログから選択されたキーです。
type GenerationRequest struct {
	Image   []byte
	Feature FeatureType
	Option  string
}

// Validate はリクエストの形式上の妥当性を検証します。
// Option がカタログに存在するかの検証はカタログを持つ prompt 側で行います。
func (r GenerationRequest) Validate() error {
	if len(r.Image) == 0 {
		return ErrEmptyImage
	}
	switch r.Feature {
	case FeatureAngle, FeatureScene:
	default:
		return ErrUnknownFeature
	}
	if r.Option == "" {
		return ErrUnknownOption
	}
	return nil
}

// GenerationResult は生成に成功した1リクエスト分の成果物です。
// ImageURL はそのまま表示・ダウンロードに使える自己完結の data URI です。
type GenerationResult struct {
	ImageURL string
	Cost     CostEstimate
}
