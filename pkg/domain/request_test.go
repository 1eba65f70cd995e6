package domain

import (
	"errors"
	"testing"
)

func TestGenerationRequest_Validate(t *testing.T) {
	valid := GenerationRequest{
		Image:   []byte("fake-image"),
		Feature: FeatureAngle,
		Option:  "front_view",
	}

	t.Run("正常なリクエストはエラーにならないこと", func(t *testing.T) {
		if err := valid.Validate(); err != nil {
			t.Errorf("unexpected error: %v", err)
		}
	})

	t.Run("画像が空の場合はErrEmptyImageを返すこと", func(t *testing.T) {
		req := valid
		req.Image = nil
		if err := req.Validate(); !errors.Is(err, ErrEmptyImage) {
			t.Errorf("expected ErrEmptyImage, got %v", err)
		}
	})

	t.Run("未定義のFeatureTypeはErrUnknownFeatureを返すこと", func(t *testing.T) {
		req := valid
		req.Feature = FeatureType("ROTATE")
		if err := req.Validate(); !errors.Is(err, ErrUnknownFeature) {
			t.Errorf("expected ErrUnknownFeature, got %v", err)
		}
	})

	t.Run("オプション未選択はErrUnknownOptionを返すこと", func(t *testing.T) {
		req := valid
		req.Option = ""
		if err := req.Validate(); !errors.Is(err, ErrUnknownOption) {
			t.Errorf("expected ErrUnknownOption, got %v", err)
		}
	})
}
