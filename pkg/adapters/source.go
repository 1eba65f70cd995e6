package adapters

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net"
	"net/url"
	"strings"
	"time"

	"github.com/shouni/furniture-studio-kit/pkg/imgutil"
	"github.com/shouni/go-http-kit/pkg/httpkit"
	"github.com/shouni/go-remote-io/pkg/remoteio"
)

// ImageCacher は取得済み入力画像のキャッシュ操作を抽象化するインターフェースです。
// キャッシュ対象は入力側の取得結果のみで、生成結果は一切キャッシュしません。
type ImageCacher interface {
	Get(key string) (any, bool)
	Set(key string, value any, d time.Duration)
}

// SourceResolver は、ホストから渡される画像参照を生のバイト列へ解決します。
// 対応する参照形式: data URI / http(s) URL / gs:// オブジェクト。
type SourceResolver struct {
	httpClient httpkit.ClientInterface
	reader     remoteio.InputReader
	cache      ImageCacher
	cacheTTL   time.Duration
}

// NewSourceResolver は依存関係を注入して SourceResolver を初期化します。
// cache は nil を許容します（キャッシュなし動作）。
func NewSourceResolver(httpClient httpkit.ClientInterface, reader remoteio.InputReader, cache ImageCacher, cacheTTL time.Duration) (*SourceResolver, error) {
	if httpClient == nil {
		return nil, fmt.Errorf("httpClient is required")
	}
	if reader == nil {
		return nil, fmt.Errorf("reader is required")
	}

	return &SourceResolver{
		httpClient: httpClient,
		reader:     reader,
		cache:      cache,
		cacheTTL:   cacheTTL,
	}, nil
}

// Resolve は画像参照をバイト列へ解決します。
func (r *SourceResolver) Resolve(ctx context.Context, ref string) ([]byte, error) {
	if strings.HasPrefix(ref, "data:") {
		_, data, err := imgutil.DecodeDataURI(ref)
		if err != nil {
			return nil, fmt.Errorf("data URIの解析に失敗しました: %w", err)
		}
		return data, nil
	}

	if r.cache != nil {
		if val, ok := r.cache.Get(ref); ok {
			if data, ok := val.([]byte); ok {
				return data, nil
			}
			slog.WarnContext(ctx, "キャッシュデータが不正な型です", "ref", ref, "type", fmt.Sprintf("%T", val))
		}
	}

	data, err := r.fetch(ctx, ref)
	if err != nil {
		return nil, err
	}

	if r.cache != nil {
		r.cache.Set(ref, data, r.cacheTTL)
	}
	return data, nil
}

func (r *SourceResolver) fetch(ctx context.Context, ref string) ([]byte, error) {
	if strings.HasPrefix(ref, "gs://") {
		rc, err := r.reader.Open(ctx, ref)
		if err != nil {
			return nil, fmt.Errorf("オブジェクトの読み込みに失敗しました: %w", err)
		}
		defer rc.Close()
		return io.ReadAll(rc)
	}

	if safe, err := isSafeURL(ref); err != nil || !safe {
		return nil, fmt.Errorf("安全ではないURLが指定されました: %w", err)
	}
	return r.httpClient.FetchBytes(ctx, ref)
}

// isSafeURL は SSRF 対策として URL を検証します。
// 名前解決されたすべての IP アドレスに対してプライベート IP チェックを行います。
func isSafeURL(rawURL string) (bool, error) {
	parsedURL, err := url.ParseRequestURI(rawURL)
	if err != nil {
		return false, fmt.Errorf("URLパース失敗: %w", err)
	}

	if parsedURL.Scheme != "http" && parsedURL.Scheme != "https" {
		return false, fmt.Errorf("不許可スキーム: %s", parsedURL.Scheme)
	}

	host := parsedURL.Hostname()
	var ips []net.IP

	if ip := net.ParseIP(host); ip != nil {
		ips = []net.IP{ip}
	} else {
		resolvedIPs, err := net.LookupIP(host)
		if err != nil {
			return false, fmt.Errorf("名前解決失敗: %w", err)
		}
		ips = resolvedIPs
	}

	if len(ips) == 0 {
		return false, fmt.Errorf("IPが見つかりません")
	}

	for _, ip := range ips {
		if ip.IsPrivate() || ip.IsLoopback() || ip.IsLinkLocalUnicast() || ip.IsLinkLocalMulticast() {
			return false, fmt.Errorf("制限されたネットワークへのアクセスを検知: %s", ip.String())
		}
	}

	return true, nil
}
