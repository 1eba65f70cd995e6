package adapters

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/shouni/furniture-studio-kit/pkg/domain"
)

// FurnitureStudio はホストのプレゼンテーション層が利用する統合窓口です。
type FurnitureStudio interface {
	GenerateFromBytes(ctx context.Context, image []byte, feature domain.FeatureType, option string) (*domain.GenerationResult, error)
	GenerateFromRef(ctx context.Context, ref string, feature domain.FeatureType, option string) (*domain.GenerationResult, error)
}

// Generator は生成クライアントの抽象です（generator.StudioClient が実装）。
type Generator interface {
	Generate(ctx context.Context, req domain.GenerationRequest) (*domain.GenerationResult, error)
}

// StudioAdapter は SourceResolver と生成クライアントを合成するアダプター層です。
type StudioAdapter struct {
	resolver *SourceResolver
	client   Generator
}

// NewStudioAdapter は依存関係を注入して StudioAdapter を初期化します。
func NewStudioAdapter(resolver *SourceResolver, client Generator) (*StudioAdapter, error) {
	if resolver == nil {
		return nil, fmt.Errorf("resolver (SourceResolver) is required")
	}
	if client == nil {
		return nil, fmt.Errorf("client (Generator) is required")
	}

	return &StudioAdapter{
		resolver: resolver,
		client:   client,
	}, nil
}

// GenerateFromBytes はアップロード済みの生バイト列から生成を実行します。
func (a *StudioAdapter) GenerateFromBytes(ctx context.Context, image []byte, feature domain.FeatureType, option string) (*domain.GenerationResult, error) {
	req := domain.GenerationRequest{
		Image:   image,
		Feature: feature,
		Option:  option,
	}
	return a.client.Generate(ctx, req)
}

// GenerateFromRef は画像参照（data URI / URL / gs://）を解決してから生成を実行します。
func (a *StudioAdapter) GenerateFromRef(ctx context.Context, ref string, feature domain.FeatureType, option string) (*domain.GenerationResult, error) {
	slog.InfoContext(ctx, "画像参照を解決します", "feature", feature, "option", option)

	image, err := a.resolver.Resolve(ctx, ref)
	if err != nil {
		return nil, fmt.Errorf("参照画像の解決に失敗しました: %w", err)
	}
	return a.GenerateFromBytes(ctx, image, feature, option)
}

var _ FurnitureStudio = (*StudioAdapter)(nil)
