package imgutil

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDataURIRoundTrip(t *testing.T) {
	t.Run("エンコードした結果をデコードすると元に戻ること", func(t *testing.T) {
		payload := []byte{0x89, 0x50, 0x4e, 0x47, 0x00, 0xff}

		uri := EncodeDataURI("image/png", payload)
		mimeType, data, err := DecodeDataURI(uri)

		require.NoError(t, err)
		assert.Equal(t, "image/png", mimeType)
		assert.Equal(t, payload, data)
	})
}

func TestDecodeDataURI(t *testing.T) {
	t.Run("data:で始まらない文字列はエラーになること", func(t *testing.T) {
		_, _, err := DecodeDataURI("https://example.com/image.png")
		assert.Error(t, err)
	})

	t.Run("ペイロード区切りのない文字列はエラーになること", func(t *testing.T) {
		_, _, err := DecodeDataURI("data:image/png;base64")
		assert.Error(t, err)
	})

	t.Run("base64として不正なペイロードはエラーになること", func(t *testing.T) {
		_, _, err := DecodeDataURI("data:image/png;base64,%%%")
		assert.Error(t, err)
	})

	t.Run("base64指定のないプレーン形式をデコードできること", func(t *testing.T) {
		mimeType, data, err := DecodeDataURI("data:text/plain,hello")

		require.NoError(t, err)
		assert.Equal(t, "text/plain", mimeType)
		assert.Equal(t, []byte("hello"), data)
	})

	t.Run("プレーン形式のパーセントエンコーディングが復元されること", func(t *testing.T) {
		mimeType, data, err := DecodeDataURI("data:text/plain,hello%20world%21")

		require.NoError(t, err)
		assert.Equal(t, "text/plain", mimeType)
		assert.Equal(t, []byte("hello world!"), data)
	})

	t.Run("プレーン形式の不正なエスケープはエラーになること", func(t *testing.T) {
		_, _, err := DecodeDataURI("data:text/plain,bad%zzescape")
		assert.Error(t, err)
	})
}
