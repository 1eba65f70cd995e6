package generator

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/shouni/furniture-studio-kit/pkg/domain"
	"github.com/shouni/furniture-studio-kit/pkg/prompt"
)

// StudioClient は1回の生成リクエストを、前処理・プロンプト構築・リトライ・
// エラー正規化まで一括で実行するクライアントです。
// 結果のキャッシュ等、ネットワーク呼び出し以外の副作用は持ちません。
type StudioClient struct {
	creds   CredentialSource
	factory ModelFactory
	model   string
	sleeper Sleeper
}

// NewStudioClient は依存関係を注入して StudioClient を初期化します。
// modelName が空の場合は DefaultModel を使用します。
func NewStudioClient(creds CredentialSource, factory ModelFactory, modelName string) (*StudioClient, error) {
	if creds == nil {
		return nil, fmt.Errorf("creds (CredentialSource) is required")
	}
	if factory == nil {
		return nil, fmt.Errorf("factory (ModelFactory) is required")
	}
	if modelName == "" {
		modelName = DefaultModel
	}

	return &StudioClient{
		creds:   creds,
		factory: factory,
		model:   modelName,
		sleeper: realSleeper{},
	}, nil
}

// Generate は生成リクエストを完了・失敗・リトライ枯渇まで実行します。
// 認証情報は呼び出し開始時に必ず読み直し、認証済みクライアントも毎回
// 作り直します（ユーザーがリクエスト間でキーを差し替えられるため）。
func (c *StudioClient) Generate(ctx context.Context, req domain.GenerationRequest) (*domain.GenerationResult, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}
	// カタログ外のオプションは送信前に弾く
	if _, err := prompt.Lookup(req.Feature, req.Option); err != nil {
		return nil, err
	}

	apiKey, err := c.creds.APIKey(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidAPIKey, err)
	}
	if apiKey == "" {
		return nil, ErrInvalidAPIKey
	}

	model, err := c.factory.NewModel(ctx, apiKey)
	if err != nil {
		return nil, fmt.Errorf("生成クライアントの初期化に失敗しました: %w", err)
	}

	var st RetryState
	var lastErr error
	for st.Attempt = 0; st.Attempt <= MaxRetries; st.Attempt++ {
		res, err := c.attempt(ctx, model, req)
		if err == nil {
			return res, nil
		}

		st.LastKind = ClassifyKind(err)
		if st.LastKind == KindAuth {
			// 認証エラーはリトライせず即座に打ち切る
			slog.WarnContext(ctx, "認証エラーを検知したため生成を中断します",
				"attempt", st.Attempt, "error", err)
			return nil, fmt.Errorf("%w: %v", ErrInvalidAPIKey, err)
		}

		lastErr = err
		if st.Attempt == MaxRetries {
			break
		}

		delay := retryDelay(st)
		slog.InfoContext(ctx, "生成に失敗したため再試行します",
			"attempt", st.Attempt, "delay", delay, "error", err)
		c.sleeper.Sleep(ctx, delay)
	}

	return nil, terminalError(lastErr)
}
