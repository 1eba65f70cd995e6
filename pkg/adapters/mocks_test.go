package adapters

import (
	"bytes"
	"context"
	"io"
	"net/http"
	"time"

	"github.com/shouni/furniture-studio-kit/pkg/domain"
)

// --- Mocks ---

type mockHTTPClient struct {
	data  []byte
	err   error
	calls int
}

func (m *mockHTTPClient) FetchBytes(ctx context.Context, url string) ([]byte, error) {
	m.calls++
	return m.data, m.err
}

func (m *mockHTTPClient) Do(req *http.Request) (*http.Response, error) {
	panic("not implemented")
}

func (m *mockHTTPClient) DoRequest(req *http.Request) ([]byte, error) {
	panic("not implemented")
}

func (m *mockHTTPClient) FetchAndDecodeJSON(ctx context.Context, url string, v any) error {
	panic("not implemented")
}

func (m *mockHTTPClient) PostJSONAndFetchBytes(ctx context.Context, url string, data any) ([]byte, error) {
	panic("not implemented")
}

func (m *mockHTTPClient) PostRawBodyAndFetchBytes(ctx context.Context, url string, body []byte, contentType string) ([]byte, error) {
	panic("not implemented")
}

func (m *mockHTTPClient) IsSafeURL(urlStr string) (bool, error) {
	panic("not implemented")
}

func (m *mockHTTPClient) IsSecureServiceURL(serviceURL string) bool {
	panic("not implemented")
}

type mockReader struct {
	data  []byte
	err   error
	calls int
}

func (m *mockReader) Open(ctx context.Context, uri string) (io.ReadCloser, error) {
	m.calls++
	if m.err != nil {
		return nil, m.err
	}
	return io.NopCloser(bytes.NewReader(m.data)), nil
}

func (m *mockReader) List(ctx context.Context, uri string, fn func(string) error) error {
	return nil
}

type mockCache struct {
	data map[string]any
}

func (m *mockCache) Get(key string) (any, bool) {
	val, ok := m.data[key]
	return val, ok
}

func (m *mockCache) Set(key string, value any, d time.Duration) {
	m.data[key] = value
}

type stubGenerator struct {
	lastReq domain.GenerationRequest
	result  *domain.GenerationResult
	err     error
}

func (s *stubGenerator) Generate(ctx context.Context, req domain.GenerationRequest) (*domain.GenerationResult, error) {
	s.lastReq = req
	return s.result, s.err
}
