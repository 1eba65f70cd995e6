package domain

import "strconv"

// 料金は実測のトークン消費からではなく、1生成あたりの固定見積もりとして提示します。
// 入力画像のサイズやプロンプト長によらず、成功した呼び出しごとに常に同額です。
const (
	// FlatCostUSD は1回の生成に対する固定見積もり額（米ドル）です。
	FlatCostUSD = 0.0020
	// USDToVNDRate は表示用の固定為替レート（1 USD あたりの VND）です。
	USDToVNDRate = 26000
)

// CostEstimate はユーザー提示用のコスト見積もりを2通貨で保持します。
type CostEstimate struct {
	AmountUSD string
	AmountVND string
}

// FlatCost は固定見積もりを通貨表記の文字列に変換して返します。
func FlatCost() CostEstimate {
	return CostEstimate{
		AmountUSD: strconv.FormatFloat(FlatCostUSD, 'f', 4, 64),
		AmountVND: strconv.FormatFloat(FlatCostUSD*USDToVNDRate, 'f', 0, 64),
	}
}
