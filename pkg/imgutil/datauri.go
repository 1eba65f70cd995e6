package imgutil

import (
	"encoding/base64"
	"fmt"
	"net/url"
	"strings"
)

// EncodeDataURI はMIMEタイプとペイロードを自己完結の data URI に埋め込みます。
func EncodeDataURI(mimeType string, data []byte) string {
	return fmt.Sprintf("data:%s;base64,%s", mimeType, base64.StdEncoding.EncodeToString(data))
}

// DecodeDataURI は data URI をメタデータ部とペイロードに分離します。
// base64形式（;base64付き）とパーセントエンコーディングのプレーン形式の
// 両方に対応します。
func DecodeDataURI(s string) (mimeType string, data []byte, err error) {
	if !strings.HasPrefix(s, "data:") {
		return "", nil, fmt.Errorf("data URIではありません: %.20q", s)
	}

	comma := strings.IndexByte(s, ',')
	if comma < 0 {
		return "", nil, fmt.Errorf("data URIにペイロード区切りがありません")
	}

	meta := s[len("data:"):comma]
	payload := s[comma+1:]

	if mimeType, ok := strings.CutSuffix(meta, ";base64"); ok {
		data, err = base64.StdEncoding.DecodeString(payload)
		if err != nil {
			return "", nil, fmt.Errorf("base64デコードに失敗しました: %w", err)
		}
		return mimeType, data, nil
	}

	decoded, err := url.PathUnescape(payload)
	if err != nil {
		return "", nil, fmt.Errorf("ペイロードのデコードに失敗しました: %w", err)
	}
	return meta, []byte(decoded), nil
}
