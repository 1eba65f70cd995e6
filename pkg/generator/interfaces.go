package generator

import (
	"context"
	"time"

	"github.com/shouni/go-gemini-client/pkg/gemini"
)

// CredentialSource は、現在選択されているAPIキーを提供するホスト環境側の能力です。
// ユーザーはリクエストの合間にキーを差し替えられるため、キーは生成呼び出しの
// たびに必ず問い合わせ直し、呼び出しをまたいで保持してはいけません。
type CredentialSource interface {
	APIKey(ctx context.Context) (string, error)
}

// ModelFactory は認証済みの生成クライアントを構築します。
// Generate のたびに新しいクライアントを作り、使い回しません。
type ModelFactory interface {
	NewModel(ctx context.Context, apiKey string) (gemini.GenerativeModel, error)
}

// ModelFactoryFunc は関数を ModelFactory として利用するためのアダプターです。
type ModelFactoryFunc func(ctx context.Context, apiKey string) (gemini.GenerativeModel, error)

func (f ModelFactoryFunc) NewModel(ctx context.Context, apiKey string) (gemini.GenerativeModel, error) {
	return f(ctx, apiKey)
}

// CredentialFunc は関数を CredentialSource として利用するためのアダプターです。
type CredentialFunc func(ctx context.Context) (string, error)

func (f CredentialFunc) APIKey(ctx context.Context) (string, error) {
	return f(ctx)
}

// Sleeper はリトライ間の待機を抽象化します（テストで差し替え可能）。
type Sleeper interface {
	Sleep(ctx context.Context, d time.Duration)
}

type realSleeper struct{}

func (realSleeper) Sleep(ctx context.Context, d time.Duration) {
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-t.C:
	case <-ctx.Done():
	}
}
