package prompt

import (
	"fmt"

	"github.com/shouni/furniture-studio-kit/pkg/domain"
)

// NamedOption は固定カタログの1項目です。
// Key はリクエストで指定する識別子、Name は表示用ラベル、
// Detail は生成モデルに渡す英語の補足描写です。
type NamedOption struct {
	Key    string
	Name   string
	Detail string
}

var angleOptions = map[string]NamedOption{
	"front_view":    {Key: "front_view", Name: "Front view", Detail: "seen straight-on from the front at eye level"},
	"back_view":     {Key: "back_view", Name: "Back view", Detail: "seen from directly behind the item"},
	"left_side":     {Key: "left_side", Name: "Left side view", Detail: "a full profile seen from the item's left side"},
	"right_side":    {Key: "right_side", Name: "Right side view", Detail: "a full profile seen from the item's right side"},
	"top_down":      {Key: "top_down", Name: "Top-down view", Detail: "looking straight down onto the item from above"},
	"three_quarter": {Key: "three_quarter", Name: "Three-quarter view", Detail: "a 45-degree angle showing the front and one side together"},
}

var sceneOptions = map[string]NamedOption{
	"living_room":  {Key: "living_room", Name: "Living room", Detail: "a bright modern living room with large windows and soft daylight"},
	"bedroom":      {Key: "bedroom", Name: "Bedroom", Detail: "a cozy bedroom with warm ambient lighting and wooden flooring"},
	"dining_room":  {Key: "dining_room", Name: "Dining room", Detail: "an elegant dining room with a neutral palette and pendant lighting"},
	"home_office":  {Key: "home_office", Name: "Home office", Detail: "a tidy home office with bookshelves and natural window light"},
	"cafe":         {Key: "cafe", Name: "Cafe corner", Detail: "a stylish cafe interior with exposed brick and warm spot lighting"},
	"garden_patio": {Key: "garden_patio", Name: "Garden patio", Detail: "an outdoor patio with greenery, stone tiles, and golden-hour sunlight"},
	"showroom":     {Key: "showroom", Name: "Furniture showroom", Detail: "a spacious furniture showroom with polished floors and even lighting"},
}

// カタログの表示順。UI側のボタン並びと一致させるため固定とする。
var (
	angleOrder = []string{"front_view", "back_view", "left_side", "right_side", "top_down", "three_quarter"}
	sceneOrder = []string{"living_room", "bedroom", "dining_room", "home_office", "cafe", "garden_patio", "showroom"}
)

// Angles はアングル変更の選択肢を表示順で返します。
func Angles() []NamedOption {
	return collect(angleOrder, angleOptions)
}

// Scenes は背景シーンの選択肢を表示順で返します。
func Scenes() []NamedOption {
	return collect(sceneOrder, sceneOptions)
}

func collect(order []string, options map[string]NamedOption) []NamedOption {
	out := make([]NamedOption, 0, len(order))
	for _, key := range order {
		if opt, ok := options[key]; ok {
			out = append(out, opt)
		}
	}
	return out
}

// Lookup は機能種別ごとのカタログからオプションを引きます。
// 存在しないキーは domain.ErrUnknownOption を返します。
func Lookup(feature domain.FeatureType, key string) (NamedOption, error) {
	var options map[string]NamedOption
	switch feature {
	case domain.FeatureAngle:
		options = angleOptions
	case domain.FeatureScene:
		options = sceneOptions
	default:
		return NamedOption{}, domain.ErrUnknownFeature
	}

	opt, ok := options[key]
	if !ok {
		return NamedOption{}, fmt.Errorf("%w: %q", domain.ErrUnknownOption, key)
	}
	return opt, nil
}
