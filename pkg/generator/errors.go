package generator

import (
	"errors"
	"strings"
)

// ErrorKind はプロバイダーエラーの分類です。
// 分類は StudioClient の境界で一度だけ行い、呼び出し側は
// プロバイダー固有のエラー文字列を再解釈する必要がありません。
type ErrorKind int

const (
	// KindTransient はネットワーク断など、一過性とみなすその他全てのエラーです。
	KindTransient ErrorKind = iota
	// KindRateLimit はクォータ・レート制限系のエラーです。
	KindRateLimit
	// KindAuth は認証情報が無効であることを示すエラーです。リトライしません。
	KindAuth
	// KindPayloadTooLarge はペイロードサイズ超過のエラーです。
	KindPayloadTooLarge
	// KindNoImage は構造上正常な応答に画像が含まれなかった状態です。
	KindNoImage
)

// ErrInvalidAPIKey は認証情報が無効または未登録であることを示すセンチネルです。
// 呼び出し側はこのエラーを検知したら、保持している「使えるキーがある」という
// 信念を破棄し、再認証フローへ誘導する必要があります。
var ErrInvalidAPIKey = errors.New("api key invalid or not found")

// ErrNoImage は構造上正常な応答に画像パートが1つも無かったことを示します。
// 転送エラーではなく回復可能なアプリケーションエラーとして扱い、
// 一般の再試行予算の中で再試行されます。
var ErrNoImage = errors.New("no image data in response")

// ユーザー提示用メッセージ（vi-VN）。プレゼンテーション層はそのまま表示します。
const (
	MsgOverloaded      = "Hệ thống đang quá tải, vui lòng thử lại sau 1 phút."
	MsgPayloadTooLarge = "Ảnh quá lớn, vui lòng chọn ảnh có dung lượng nhỏ hơn."
)

// OverloadedError はリトライ予算を使い切ってもレート制限が続いた最終失敗です。
type OverloadedError struct {
	Err error
}

func (e *OverloadedError) Error() string { return MsgOverloaded }
func (e *OverloadedError) Unwrap() error { return e.Err }

// PayloadTooLargeError はペイロードサイズ超過による最終失敗です。
type PayloadTooLargeError struct {
	Err error
}

func (e *PayloadTooLargeError) Error() string { return MsgPayloadTooLarge }
func (e *PayloadTooLargeError) Unwrap() error { return e.Err }

// プロバイダーが実際に返すエラー文字列から拾うシグナル。
// 文字列一致による分類は既知の弱点であり、プロバイダーが構造化エラーコードを
// 公開したらこのテーブルごと置き換える前提で1箇所に集約してあります。
var (
	rateLimitSignals = []string{
		"429",
		"quota",
		"exhausted",
		"resource_exhausted",
		"resource has been exhausted",
		"quota exceeded",
	}
	payloadSignals = []string{
		"413",
		"too large",
	}
)

const authSignal = "requested entity was not found"

// ClassifyKind はエラーを分類します。照合は大文字小文字を無視します。
func ClassifyKind(err error) ErrorKind {
	if err == nil {
		return KindTransient
	}
	if errors.Is(err, ErrNoImage) {
		return KindNoImage
	}

	msg := strings.ToLower(err.Error())
	if strings.Contains(msg, authSignal) {
		return KindAuth
	}
	for _, s := range rateLimitSignals {
		if strings.Contains(msg, s) {
			return KindRateLimit
		}
	}
	for _, s := range payloadSignals {
		if strings.Contains(msg, s) {
			return KindPayloadTooLarge
		}
	}
	return KindTransient
}

// terminalError はリトライ予算を使い切った後の最終エラーを確定します。
// レート制限とサイズ超過はユーザー向けメッセージ付きのエラーに変換し、
// それ以外は元のエラーをそのまま返します。
func terminalError(lastErr error) error {
	switch ClassifyKind(lastErr) {
	case KindRateLimit:
		return &OverloadedError{Err: lastErr}
	case KindPayloadTooLarge:
		return &PayloadTooLargeError{Err: lastErr}
	default:
		return lastErr
	}
}
