package generator

import "time"

const (
	// DefaultModel は家具写真の編集に使用する画像生成モデルです。
	DefaultModel = "gemini-2.5-flash-image"

	// MaxRetries は初回試行の後に許容する再試行回数です（合計3回試行）。
	MaxRetries = 2

	// レート制限時の待機: (attempt+1) * rateLimitUnit + rateLimitExtra
	rateLimitUnit  = 5 * time.Second
	rateLimitExtra = 2 * time.Second

	// それ以外の一過性エラーは一律この待機
	transientDelay = time.Second
)

// RetryState は1回の生成呼び出しの間だけ生存する試行状態です。
// 成功または最終失敗の時点で破棄されます。
type RetryState struct {
	Attempt  int
	LastKind ErrorKind
}

// retryDelay は次の試行までの待機時間を決定します。
func retryDelay(st RetryState) time.Duration {
	if st.LastKind == KindRateLimit {
		return time.Duration(st.Attempt+1)*rateLimitUnit + rateLimitExtra
	}
	return transientDelay
}
