package generator

import (
	"context"
	"fmt"

	"github.com/shouni/furniture-studio-kit/pkg/domain"
	"github.com/shouni/furniture-studio-kit/pkg/imgutil"
	"github.com/shouni/furniture-studio-kit/pkg/prompt"
	"github.com/shouni/go-gemini-client/pkg/gemini"
	"google.golang.org/genai"
)

// attempt は1回分の試行（前処理・プロンプト構築・通信・解析）を実行します。
func (c *StudioClient) attempt(ctx context.Context, model gemini.GenerativeModel, req domain.GenerationRequest) (*domain.GenerationResult, error) {
	instruction, err := prompt.Build(req.Feature, req.Option)
	if err != nil {
		return nil, err
	}

	payload := imgutil.Preprocess(req.Image)
	mimeType, data, err := imgutil.DecodeDataURI(payload)
	if err != nil {
		return nil, fmt.Errorf("前処理結果の解析に失敗しました: %w", err)
	}

	parts := []*genai.Part{
		{Text: instruction},
		{InlineData: &genai.Blob{MIMEType: mimeType, Data: data}},
	}

	resp, err := model.GenerateWithParts(ctx, c.model, parts, gemini.GenerateOptions{})
	if err != nil {
		return nil, err
	}

	return parseToResult(resp)
}

// parseToResult は応答の候補から最初の画像パートを探し、結果に変換します。
// 応答自体は正常で画像が無い場合は ErrNoImage を返します。
func parseToResult(resp *gemini.Response) (*domain.GenerationResult, error) {
	if resp == nil || resp.RawResponse == nil || len(resp.RawResponse.Candidates) == 0 {
		return nil, ErrNoImage
	}

	for _, candidate := range resp.RawResponse.Candidates {
		if candidate.Content == nil {
			continue
		}
		for _, part := range candidate.Content.Parts {
			if part.InlineData != nil && len(part.InlineData.Data) > 0 {
				return &domain.GenerationResult{
					ImageURL: imgutil.EncodeDataURI(part.InlineData.MIMEType, part.InlineData.Data),
					Cost:     domain.FlatCost(),
				}, nil
			}
		}
	}
	return nil, ErrNoImage
}
