package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFlatCost(t *testing.T) {
	t.Run("固定見積もりが両通貨で期待どおりの表記になること", func(t *testing.T) {
		cost := FlatCost()
		assert.Equal(t, "0.0020", cost.AmountUSD)
		assert.Equal(t, "52", cost.AmountVND)
	})

	t.Run("見積もりは呼び出しごとに常に同額であること", func(t *testing.T) {
		first := FlatCost()
		second := FlatCost()
		assert.Equal(t, first, second)
	})
}
