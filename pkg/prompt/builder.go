package prompt

import (
	"fmt"
	"strings"

	"github.com/shouni/furniture-studio-kit/pkg/domain"
)

// countClause は両方の指示文に必ず含める点数維持の制約です。
// あくまでプロンプトレベルの契約であり、出力側での機械的な検証は行いません。
const countClause = "The output must contain exactly the same number of furniture pieces as the input photo. Do not add, remove, or duplicate any piece."

// Build は（機能種別・選択オプション）の組を生成モデル向けの指示文へ変換する純関数です。
func Build(feature domain.FeatureType, optionKey string) (string, error) {
	opt, err := Lookup(feature, optionKey)
	if err != nil {
		return "", err
	}

	switch feature {
	case domain.FeatureAngle:
		return buildAngle(opt), nil
	case domain.FeatureScene:
		return buildScene(opt), nil
	}
	return "", domain.ErrUnknownFeature
}

func buildAngle(opt NamedOption) string {
	lines := []string{
		fmt.Sprintf("Rotate the furniture item in this photo so it is shown from the %s: %s.", opt.Name, opt.Detail),
		"Infer any geometry not visible in the original photo from the item's symmetry, construction, and style.",
		"Remove the current background entirely and place the item on a clean, neutral studio backdrop with soft, even lighting.",
		"Preserve the exact materials, colors, textures, proportions, and finish of the original item. Do not redesign it.",
		countClause,
	}
	return strings.Join(lines, "\n")
}

func buildScene(opt NamedOption) string {
	lines := []string{
		fmt.Sprintf("Place the furniture item from this photo into a new scene: the %s, %s.", opt.Name, opt.Detail),
		"Replace the entire background and relight the item so it matches the lighting of the new environment.",
		"Integrate realistic contact shadows and subtle reflections where the item meets the floor and nearby surfaces.",
		"Keep the item itself unchanged: same materials, colors, and design as in the original photo.",
		countClause,
	}
	return strings.Join(lines, "\n")
}
