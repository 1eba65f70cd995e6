package generator

import (
	"context"
	"time"

	"github.com/shouni/go-gemini-client/pkg/gemini"
	"google.golang.org/genai"
)

// --- Mocks ---

type mockModel struct {
	generateWithPartsFunc func(ctx context.Context, model string, parts []*genai.Part, opts gemini.GenerateOptions) (*gemini.Response, error)
	calls                 int
	lastParts             []*genai.Part
}

func (m *mockModel) UploadFile(ctx context.Context, data []byte, mimeType, displayName string) (string, string, error) {
	return "", "", nil
}

func (m *mockModel) DeleteFile(ctx context.Context, name string) error { return nil }

func (m *mockModel) GenerateContent(ctx context.Context, model string, prompt string) (*gemini.Response, error) {
	return nil, nil
}

func (m *mockModel) GetFile(ctx context.Context, name string) (*genai.File, error) {
	return nil, nil
}

func (m *mockModel) GenerateWithParts(ctx context.Context, model string, parts []*genai.Part, opts gemini.GenerateOptions) (*gemini.Response, error) {
	m.calls++
	m.lastParts = parts
	return m.generateWithPartsFunc(ctx, model, parts, opts)
}

type mockFactory struct {
	model   *mockModel
	calls   int
	lastKey string
	err     error
}

func (f *mockFactory) NewModel(ctx context.Context, apiKey string) (gemini.GenerativeModel, error) {
	f.calls++
	f.lastKey = apiKey
	if f.err != nil {
		return nil, f.err
	}
	return f.model, nil
}

type mockCreds struct {
	key   string
	err   error
	calls int
}

func (c *mockCreds) APIKey(ctx context.Context) (string, error) {
	c.calls++
	return c.key, c.err
}

// recordSleeper は実際には待機せず、要求された待機時間だけを記録します。
type recordSleeper struct {
	delays []time.Duration
}

func (s *recordSleeper) Sleep(ctx context.Context, d time.Duration) {
	s.delays = append(s.delays, d)
}

// --- Response builders ---

func imageResponse(mimeType string, data []byte) *gemini.Response {
	return &gemini.Response{
		RawResponse: &genai.GenerateContentResponse{
			Candidates: []*genai.Candidate{{
				Content: &genai.Content{
					Parts: []*genai.Part{{InlineData: &genai.Blob{MIMEType: mimeType, Data: data}}},
				},
			}},
		},
	}
}

func textOnlyResponse() *gemini.Response {
	return &gemini.Response{
		RawResponse: &genai.GenerateContentResponse{
			Candidates: []*genai.Candidate{{
				Content: &genai.Content{
					Parts: []*genai.Part{{Text: "I cannot generate that image."}},
				},
			}},
		},
	}
}
