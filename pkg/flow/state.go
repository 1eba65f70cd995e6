package flow

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/shouni/furniture-studio-kit/pkg/domain"
	"github.com/shouni/furniture-studio-kit/pkg/generator"
	"github.com/shouni/furniture-studio-kit/pkg/prompt"
)

// Phase はプレゼンテーション層の表示状態です。
// 遷移は Upload → Selecting → Processing → Result の一方向で、
// Processing からの遷移は生成クライアントの完了または失敗によってのみ起こります。
type Phase int

const (
	PhaseUpload Phase = iota
	PhaseSelecting
	PhaseProcessing
	PhaseResult
)

func (p Phase) String() string {
	switch p {
	case PhaseUpload:
		return "upload"
	case PhaseSelecting:
		return "selecting"
	case PhaseProcessing:
		return "processing"
	case PhaseResult:
		return "result"
	default:
		return fmt.Sprintf("phase(%d)", int(p))
	}
}

var (
	// ErrBusy は生成リクエストの実行中に別の操作が要求されたことを示します。
	// 同時に実行できるリクエストは常に1件だけです。
	ErrBusy = errors.New("a generation request is already in flight")
	// ErrNotReady は現在の状態では実行できない操作が要求されたことを示します。
	ErrNotReady = errors.New("operation is not allowed in the current phase")
)

// CredentialGate はAPIキー選択ダイアログなど、ホスト環境側の認証能力です。
// 「使えるキーがあるか」は送信のたびに問い直します。
type CredentialGate interface {
	HasKey(ctx context.Context) bool
	RequestKey(ctx context.Context) error
}

// Generator は生成クライアントの抽象です（generator.StudioClient が実装）。
type Generator interface {
	Generate(ctx context.Context, req domain.GenerationRequest) (*domain.GenerationResult, error)
}

// Session は1ユーザー分の画面状態を保持する明示的ステートマシンです。
type Session struct {
	mu     sync.Mutex
	phase  Phase
	busy   bool
	hasKey bool // 最後に確認した「使えるキーがある」という信念。KEY_ERROR相当で破棄する。

	image   []byte
	feature domain.FeatureType
	option  string

	result *domain.GenerationResult
	err    error

	gate   CredentialGate
	client Generator
}

// NewSession は依存関係を注入して Session を初期化します。
func NewSession(gate CredentialGate, client Generator) (*Session, error) {
	if gate == nil {
		return nil, fmt.Errorf("gate (CredentialGate) is required")
	}
	if client == nil {
		return nil, fmt.Errorf("client (Generator) is required")
	}

	return &Session{
		phase:  PhaseUpload,
		gate:   gate,
		client: client,
	}, nil
}

// Upload は入力画像を受け取り、オプション選択状態へ遷移します。
func (s *Session) Upload(image []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.busy {
		return ErrBusy
	}
	if len(image) == 0 {
		return domain.ErrEmptyImage
	}

	s.image = image
	s.feature, s.option = "", ""
	s.result, s.err = nil, nil
	s.phase = PhaseSelecting
	return nil
}

// Select は変換モードとオプションを選択します。
// 結果表示後の再選択も許可します（同じ画像に別の変換を適用するため）。
func (s *Session) Select(feature domain.FeatureType, option string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.busy {
		return ErrBusy
	}
	if s.phase != PhaseSelecting && s.phase != PhaseResult {
		return ErrNotReady
	}
	if _, err := prompt.Lookup(feature, option); err != nil {
		return err
	}

	s.feature, s.option = feature, option
	s.phase = PhaseSelecting
	return nil
}

// Submit は生成を実行し、完了または失敗によって次の状態へ遷移します。
// 実行中の再送信は ErrBusy で拒否します。発行済みのリクエストの取り消しは
// サポートしません（結果を捨てるかどうかはホスト側の判断です）。
func (s *Session) Submit(ctx context.Context) (*domain.GenerationResult, error) {
	s.mu.Lock()
	if s.busy {
		s.mu.Unlock()
		return nil, ErrBusy
	}
	if s.phase != PhaseSelecting || s.option == "" {
		s.mu.Unlock()
		return nil, ErrNotReady
	}

	// 認証情報の有無は送信のたびにホストへ問い直す
	if !s.gate.HasKey(ctx) {
		s.hasKey = false
		s.mu.Unlock()
		if err := s.gate.RequestKey(ctx); err != nil {
			return nil, fmt.Errorf("認証情報の取得に失敗しました: %w", err)
		}
		s.mu.Lock()
		// RequestKey でロックを手放している間に別の送信が進んでいる可能性が
		// あるため、ガードを検証し直す。同時に実行できるのは常に1件だけ。
		if s.busy {
			s.mu.Unlock()
			return nil, ErrBusy
		}
		if s.phase != PhaseSelecting || s.option == "" {
			s.mu.Unlock()
			return nil, ErrNotReady
		}
	}
	s.hasKey = true
	s.busy = true
	s.phase = PhaseProcessing
	req := domain.GenerationRequest{Image: s.image, Feature: s.feature, Option: s.option}
	s.mu.Unlock()

	res, err := s.client.Generate(ctx, req)

	s.mu.Lock()
	defer s.mu.Unlock()
	s.busy = false

	if err != nil {
		if errors.Is(err, generator.ErrInvalidAPIKey) {
			// キーが無効だったので「キーあり」の信念を破棄し、次回の送信で再認証させる
			s.hasKey = false
		}
		s.err = err
		s.phase = PhaseSelecting
		return nil, err
	}

	s.err = nil
	s.result = res
	s.phase = PhaseResult
	return res, nil
}

// Reset は新しい画像のアップロード待ちへ戻します。実行中は何もしません。
func (s *Session) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.busy {
		return
	}
	s.image = nil
	s.feature, s.option = "", ""
	s.result, s.err = nil, nil
	s.phase = PhaseUpload
}

// Phase は現在の表示状態を返します。
func (s *Session) Phase() Phase {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.phase
}

// Result は直近の生成結果を返します（未生成なら nil）。
func (s *Session) Result() *domain.GenerationResult {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.result
}

// Err は直近の失敗を返します（エラースロット）。
func (s *Session) Err() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.err
}

// HasKey は最後に確認した認証情報の有無を返します。
func (s *Session) HasKey() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.hasKey
}
